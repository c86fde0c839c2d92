package service

import (
	"context"

	"ClipFlow.com/cmd/model"
	"ClipFlow.com/cmd/video/dal/db"
	"ClipFlow.com/pkg/errno"
)

type VideoDetailService struct {
	ctx context.Context
}

func NewVideoDetailService(ctx context.Context) *VideoDetailService {
	return &VideoDetailService{ctx: ctx}
}

// Detail returns the video and counts the fetch as a view. Every fetch
// increments views_count; there is no client dedup.
func (s *VideoDetailService) Detail(videoId int64) (*model.Video, error) {
	video, err := db.IncrementViews(s.ctx, videoId)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, errno.NotFoundErr.WithMessage("video not found")
	}
	return video, nil
}

// Share bumps shares_count and returns the new value. No dedup, no
// audit record.
func (s *VideoDetailService) Share(videoId int64) (int64, error) {
	video, err := db.GetVideo(s.ctx, videoId)
	if err != nil {
		return 0, err
	}
	if video == nil {
		return 0, errno.NotFoundErr.WithMessage("video not found")
	}
	return db.IncrementShares(s.ctx, videoId)
}
