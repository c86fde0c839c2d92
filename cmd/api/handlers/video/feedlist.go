package handlers

import (
	"context"

	"ClipFlow.com/cmd/video/service"
	"ClipFlow.com/pkg/constants"
	"ClipFlow.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

// List pages public videos, optionally filtered by category slug.
func List(ctx context.Context, c *app.RequestContext) {
	page := PageParam(c)
	videos, total, err := service.NewVideoListService(ctx).
		List(c.Query("category"), page, constants.DefaultPageSize)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, Paged(videos, page, constants.DefaultPageSize, total))
}

// UserVideos pages one owner's public videos.
func UserVideos(ctx context.Context, c *app.RequestContext) {
	userId := IdParam(c)
	if userId == 0 {
		SendResponse(c, errno.NotFoundErr.WithMessage("user not found"), nil)
		return
	}
	page := PageParam(c)
	videos, total, err := service.NewVideoListService(ctx).
		UserVideos(userId, page, constants.UserVideosPageSize)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, Paged(videos, page, constants.UserVideosPageSize, total))
}

// Categories returns the fixed category list.
func Categories(ctx context.Context, c *app.RequestContext) {
	categories, err := service.NewVideoListService(ctx).Categories()
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, categories)
}
