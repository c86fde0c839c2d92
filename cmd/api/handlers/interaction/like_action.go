package handlers

import (
	"context"

	"ClipFlow.com/cmd/interaction/service"
	"ClipFlow.com/pkg/errno"
	"ClipFlow.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

// LikeAction toggles the caller's like on a video.
func LikeAction(ctx context.Context, c *app.RequestContext) {
	videoId := IdParam(c)
	if videoId == 0 {
		SendResponse(c, errno.NotFoundErr.WithMessage("video not found"), nil)
		return
	}
	result, err := service.NewLikeActionService(ctx).ToggleLike(jwt.CurrentUserId(c), videoId)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, result)
}
