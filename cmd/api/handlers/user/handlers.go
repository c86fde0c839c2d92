package handlers

import (
	"ClipFlow.com/pkg/errno"
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

type RegisterParam struct {
	UserName string `form:"username" json:"username"`
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

type UpdateProfileParam struct {
	UserName *string `form:"username" json:"username"`
	Bio      *string `form:"bio" json:"bio"`
}
