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

func NewPagination(page, pageSize, total int64) Pagination {
	totalPages := total / pageSize
	if total%pageSize > 0 {
		totalPages++
	}
	return Pagination{Page: page, PageSize: pageSize, Total: total, TotalPages: totalPages}
}

// Paged wraps a page of results with its pagination metadata.
func Paged(data interface{}, page, pageSize, total int64) map[string]interface{} {
	return map[string]interface{}{
		"data":       data,
		"pagination": NewPagination(page, pageSize, total),
	}
}

// PageParam reads the "page" query param, defaulting to 1.
func PageParam(c *app.RequestContext) int64 {
	page, err := strconv.ParseInt(c.Query("page"), 10, 64)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// IdParam reads the path id, 0 when malformed.
func IdParam(c *app.RequestContext) int64 {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0
	}
	return id
}
