package handlers

import (
	"context"

	"ClipFlow.com/cmd/video/service"
	"github.com/cloudwego/hertz/pkg/app"
)

// Trending returns the top videos of the trailing week by engagement.
func Trending(ctx context.Context, c *app.RequestContext) {
	videos, err := service.NewTrendingService(ctx).Trending()
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, videos)
}
