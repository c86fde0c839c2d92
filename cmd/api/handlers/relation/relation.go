package handlers

import (
	"context"
	"strconv"

	"ClipFlow.com/cmd/relation/service"
	"ClipFlow.com/pkg/errno"
	"ClipFlow.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

type Response struct {
	Code    int64             `json:"code"`
	Message string            `json:"message"`
	Data    interface{}       `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// SendResponse pack response
func SendResponse(c *app.RequestContext, err error, data interface{}) {
	Err := errno.ConvertErr(err)
	c.JSON(Err.StatusCode, Response{
		Code:    Err.ErrCode,
		Message: Err.ErrMsg,
		Data:    data,
		Errors:  Err.Fields,
	})
}

// FollowAction toggles the caller's follow edge to the target user.
func FollowAction(ctx context.Context, c *app.RequestContext) {
	targetId, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || targetId < 1 {
		SendResponse(c, errno.NotFoundErr.WithMessage("user not found"), nil)
		return
	}
	result, err := service.NewRelationService(ctx).ToggleFollow(jwt.CurrentUserId(c), targetId)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, result)
}
