package service

import (
	"context"

	"ClipFlow.com/cmd/model"
	"ClipFlow.com/cmd/user/dal/db"
	"ClipFlow.com/pkg/errno"
	"ClipFlow.com/pkg/utils"
)

type LoginUserService struct {
	ctx context.Context
}

func NewLoginUserService(ctx context.Context) *LoginUserService {
	return &LoginUserService{ctx: ctx}
}

// LoginUser checks the credentials and returns the matching user.
func (s *LoginUserService) LoginUser(username, password string) (*model.User, error) {
	if username == "" || password == "" {
		return nil, errno.ValidationErr.WithMessage("username and password are required")
	}
	user, err := db.GetUserByName(s.ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.VerifyPassword(password, user.Password) {
		return nil, errno.AuthErr.WithMessage("incorrect username or password")
	}
	return user, nil
}
