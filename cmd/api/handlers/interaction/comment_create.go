package handlers

import (
	"context"

	"ClipFlow.com/cmd/interaction/service"
	"ClipFlow.com/pkg/errno"
	"ClipFlow.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

// CreateComment adds a top-level comment or a reply to a video.
func CreateComment(ctx context.Context, c *app.RequestContext) {
	videoId := IdParam(c)
	if videoId == 0 {
		SendResponse(c, errno.NotFoundErr.WithMessage("video not found"), nil)
		return
	}
	var req CreateCommentParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.ValidationErr.WithMessage(err.Error()), nil)
		return
	}
	comment, err := service.NewCommentService(ctx).
		AddComment(jwt.CurrentUserId(c), videoId, req.CommentText, req.ParentId)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, comment)
}
