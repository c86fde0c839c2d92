package handlers

import (
	"context"

	"ClipFlow.com/cmd/video/service"
	"ClipFlow.com/pkg/constants"
	"github.com/cloudwego/hertz/pkg/app"
)

// Search matches public videos by title/description substring or exact
// hashtag. An empty query is an empty result.
func Search(ctx context.Context, c *app.RequestContext) {
	page := PageParam(c)
	videos, total, err := service.NewVideoSearchService(ctx).
		Search(c.Query("q"), page, constants.DefaultPageSize)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, Paged(videos, page, constants.DefaultPageSize, total))
}
