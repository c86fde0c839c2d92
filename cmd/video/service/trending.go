package service

import (
	"context"
	"time"

	"ClipFlow.com/cmd/model"
	"ClipFlow.com/cmd/video/dal/db"
	"ClipFlow.com/pkg/constants"
)

type TrendingService struct {
	ctx context.Context
	// Now is swappable so the trailing window is testable
	Now func() time.Time
}

func NewTrendingService(ctx context.Context) *TrendingService {
	return &TrendingService{ctx: ctx, Now: time.Now}
}

// Trending returns up to 20 public videos of the trailing 7 days,
// ranked by likes+comments+shares+views.
func (s *TrendingService) Trending() ([]*model.Video, error) {
	since := s.Now().Add(-constants.TrendingWindow)
	return db.TrendingVideos(s.ctx, since, constants.TrendingLimit)
}
