package handlers

import (
	"context"

	"ClipFlow.com/cmd/user/service"
	"ClipFlow.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

// Logout revokes the caller's session token.
func Logout(ctx context.Context, c *app.RequestContext) {
	if err := jwt.RevokeCurrent(ctx, c); err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, nil)
}

// Me returns the authenticated user.
func Me(ctx context.Context, c *app.RequestContext) {
	userId := jwt.CurrentUserId(c)
	user, err := service.NewGetUserInfoService(ctx).GetUserInfo(userId)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, user)
}
