package service

import (
	"context"

	"ClipFlow.com/cmd/model"
	"ClipFlow.com/cmd/user/dal/db"
	"ClipFlow.com/pkg/errno"
)

type GetUserInfoService struct {
	ctx context.Context
}

func NewGetUserInfoService(ctx context.Context) *GetUserInfoService {
	return &GetUserInfoService{ctx: ctx}
}

func (s *GetUserInfoService) GetUserInfo(userId int64) (*model.User, error) {
	user, err := db.GetUser(s.ctx, userId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errno.NotFoundErr.WithMessage("user not found")
	}
	return user, nil
}
