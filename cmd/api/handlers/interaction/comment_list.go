package handlers

import (
	"context"

	"ClipFlow.com/cmd/interaction/service"
	"ClipFlow.com/pkg/constants"
	"ClipFlow.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

// ListComments pages a video's top-level comments with their replies.
func ListComments(ctx context.Context, c *app.RequestContext) {
	videoId := IdParam(c)
	if videoId == 0 {
		SendResponse(c, errno.NotFoundErr.WithMessage("video not found"), nil)
		return
	}
	page := PageParam(c)
	comments, total, err := service.NewCommentService(ctx).
		ListComments(videoId, page, constants.CommentsPageSize)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, Paged(comments, page, constants.CommentsPageSize, total))
}
