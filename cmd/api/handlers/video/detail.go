package handlers

import (
	"context"

	"ClipFlow.com/cmd/video/service"
	"ClipFlow.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

// Detail returns one video; each fetch counts as a view.
func Detail(ctx context.Context, c *app.RequestContext) {
	videoId := IdParam(c)
	if videoId == 0 {
		SendResponse(c, errno.NotFoundErr.WithMessage("video not found"), nil)
		return
	}
	video, err := service.NewVideoDetailService(ctx).Detail(videoId)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, video)
}

// Share increments the share counter.
func Share(ctx context.Context, c *app.RequestContext) {
	videoId := IdParam(c)
	if videoId == 0 {
		SendResponse(c, errno.NotFoundErr.WithMessage("video not found"), nil)
		return
	}
	count, err := service.NewVideoDetailService(ctx).Share(videoId)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, map[string]interface{}{"shares_count": count})
}
