package handlers

import (
	"strconv"

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

type Pagination struct {
	Page       int64 `json:"page"`
	PageSize   int64 `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
}

func Paged(data interface{}, page, pageSize, total int64) map[string]interface{} {
	totalPages := total / pageSize
	if total%pageSize > 0 {
		totalPages++
	}
	return map[string]interface{}{
		"data": data,
		"pagination": Pagination{
			Page: page, PageSize: pageSize, Total: total, TotalPages: totalPages,
		},
	}
}

func PageParam(c *app.RequestContext) int64 {
	page, err := strconv.ParseInt(c.Query("page"), 10, 64)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func IdParam(c *app.RequestContext) int64 {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0
	}
	return id
}

type CreateCommentParam struct {
	CommentText string `form:"comment_text" json:"comment_text"`
	ParentId    int64  `form:"parent_id" json:"parent_id"`
}
