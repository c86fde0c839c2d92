package service

import (
	"context"
	"strings"

	"ClipFlow.com/cmd/model"
	"ClipFlow.com/cmd/video/dal/db"
)

type VideoSearchService struct {
	ctx context.Context
}

func NewVideoSearchService(ctx context.Context) *VideoSearchService {
	return &VideoSearchService{ctx: ctx}
}

// Search matches public videos by title or description substring or an
// exact hashtag entry. An empty query yields an empty result, not an
// error.
func (s *VideoSearchService) Search(keyword string, pageNum, pageSize int64) ([]*model.Video, int64, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return []*model.Video{}, 0, nil
	}
	return db.SearchVideos(s.ctx, keyword, pageNum, pageSize)
}
