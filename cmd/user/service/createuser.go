package service

import (
	"context"
	"strings"

	"ClipFlow.com/cmd/model"
	"ClipFlow.com/cmd/user/dal/db"
	"ClipFlow.com/pkg/constants"
	"ClipFlow.com/pkg/errno"
	"ClipFlow.com/pkg/utils"
	"github.com/pkg/errors"
)

type CreateUserService struct {
	ctx context.Context
}

func NewCreateUserService(ctx context.Context) *CreateUserService {
	return &CreateUserService{ctx: ctx}
}

type RegisterParams struct {
	UserName string
	Email    string
	Password string
}

func (s *CreateUserService) CreateUser(req *RegisterParams) (*model.User, error) {
	fields := map[string]string{}
	req.UserName = strings.TrimSpace(req.UserName)
	req.Email = strings.TrimSpace(req.Email)
	if req.UserName == "" {
		fields["username"] = "username is required"
	} else if len(req.UserName) > constants.MaxUsernameLen {
		fields["username"] = "username is too long"
	}
	if req.Email == "" {
		fields["email"] = "email is required"
	}
	if len(req.Password) < constants.MinPasswordLen {
		fields["password"] = "password must be at least 8 characters"
	}
	if len(fields) > 0 {
		return nil, errno.ValidationErr.WithFields(fields)
	}

	if taken, err := db.UserNameTaken(s.ctx, req.UserName, 0); err != nil {
		return nil, err
	} else if taken {
		return nil, errno.ValidationErr.WithFields(map[string]string{"username": "username is already taken"})
	}
	if taken, err := db.EmailTaken(s.ctx, req.Email); err != nil {
		return nil, err
	} else if taken {
		return nil, errno.ValidationErr.WithFields(map[string]string{"email": "email is already registered"})
	}

	password, err := utils.Crypt(req.Password)
	if err != nil {
		return nil, errors.WithMessage(err, "password hashing failed")
	}
	user := &model.User{
		UserName: req.UserName,
		Email:    req.Email,
		Password: password,
	}
	if err := db.CreateUser(s.ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
