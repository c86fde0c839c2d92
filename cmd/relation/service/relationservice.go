package service

import (
	"context"

	userdb "ClipFlow.com/cmd/user/dal/db"

	"ClipFlow.com/cmd/relation/dal/db"
	"ClipFlow.com/pkg/errno"
)

type RelationService struct {
	ctx context.Context
}

func NewRelationService(ctx context.Context) *RelationService {
	return &RelationService{ctx: ctx}
}

type FollowResult struct {
	Following      bool  `json:"following"`
	FollowersCount int64 `json:"followers_count"`
}

// ToggleFollow flips the follow edge to targetId. Self-follows are
// rejected regardless of prior state.
func (s *RelationService) ToggleFollow(currentUserId, targetId int64) (*FollowResult, error) {
	if currentUserId == targetId {
		return nil, errno.ValidationErr.WithMessage("you cannot follow yourself")
	}
	target, err := userdb.GetUser(s.ctx, targetId)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, errno.NotFoundErr.WithMessage("user not found")
	}

	following, followersCount, err := db.ToggleFollow(s.ctx, currentUserId, targetId)
	if err != nil {
		return nil, err
	}
	return &FollowResult{Following: following, FollowersCount: followersCount}, nil
}
