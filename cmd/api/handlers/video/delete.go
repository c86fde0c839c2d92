package handlers

import (
	"context"

	"ClipFlow.com/cmd/video/service"
	"ClipFlow.com/pkg/errno"
	"ClipFlow.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

// Delete removes an owned video and its blobs.
func Delete(ctx context.Context, c *app.RequestContext) {
	videoId := IdParam(c)
	if videoId == 0 {
		SendResponse(c, errno.NotFoundErr.WithMessage("video not found"), nil)
		return
	}
	if err := service.NewVideoDeleteService(ctx).Delete(jwt.CurrentUserId(c), videoId); err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, nil)
}
