package handlers

import (
	"context"

	"ClipFlow.com/cmd/user/service"
	"ClipFlow.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

func Register(ctx context.Context, c *app.RequestContext) {
	var req RegisterParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.ValidationErr.WithMessage(err.Error()), nil)
		return
	}
	user, err := service.NewCreateUserService(ctx).CreateUser(&service.RegisterParams{
		UserName: req.UserName,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, user)
}
