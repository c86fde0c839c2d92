package service

import (
	"context"

	videodb "ClipFlow.com/cmd/video/dal/db"

	"ClipFlow.com/cmd/interaction/dal/db"
	"ClipFlow.com/pkg/errno"
)

type LikeActionService struct {
	ctx context.Context
}

func NewLikeActionService(ctx context.Context) *LikeActionService {
	return &LikeActionService{ctx: ctx}
}

type LikeResult struct {
	Liked      bool  `json:"liked"`
	LikesCount int64 `json:"likes_count"`
}

// ToggleLike flips the like state for the (user, video) pair. Toggling
// twice restores the original state and counter.
func (s *LikeActionService) ToggleLike(userId, videoId int64) (*LikeResult, error) {
	video, err := videodb.GetVideo(s.ctx, videoId)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, errno.NotFoundErr.WithMessage("video not found")
	}

	liked, likesCount, err := db.ToggleVideoLike(s.ctx, userId, videoId)
	if err != nil {
		return nil, err
	}
	return &LikeResult{Liked: liked, LikesCount: likesCount}, nil
}
