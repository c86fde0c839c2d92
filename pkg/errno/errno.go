package errno

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

const (
	SuccessCode    = int64(0)
	ValidationCode = int64(10001)
	AuthCode       = int64(10002)
	ForbiddenCode  = int64(10003)
	NotFoundCode   = int64(10004)
	ServiceCode    = int64(10005)
)

type ErrNo struct {
	ErrCode    int64
	StatusCode int
	ErrMsg     string
	Fields     map[string]string
}

func (e ErrNo) Error() string {
	return fmt.Sprintf("err_code=%d, status=%d, err_msg=%s", e.ErrCode, e.StatusCode, e.ErrMsg)
}

func NewErrNo(code int64, status int, msg string) ErrNo {
	return ErrNo{ErrCode: code, StatusCode: status, ErrMsg: msg}
}

func (e ErrNo) WithMessage(msg string) ErrNo {
	e.ErrMsg = msg
	return e
}

// WithFields attaches a field->message map, surfaced as the "errors"
// object on 422 responses.
func (e ErrNo) WithFields(fields map[string]string) ErrNo {
	e.Fields = fields
	return e
}

var (
	Success       = NewErrNo(SuccessCode, http.StatusOK, "success")
	ValidationErr = NewErrNo(ValidationCode, http.StatusUnprocessableEntity, "validation failed")
	AuthErr       = NewErrNo(AuthCode, http.StatusUnauthorized, "authentication required")
	ForbiddenErr  = NewErrNo(ForbiddenCode, http.StatusForbidden, "forbidden")
	NotFoundErr   = NewErrNo(NotFoundCode, http.StatusNotFound, "resource not found")
	ServiceErr    = NewErrNo(ServiceCode, http.StatusInternalServerError, "internal server error")
)

// ConvertErr maps any error to an ErrNo; unrecognized errors become
// ServiceErr with the original message surfaced.
func ConvertErr(err error) ErrNo {
	if err == nil {
		return Success
	}
	Err := ErrNo{}
	if errors.As(err, &Err) {
		return Err
	}
	s := ServiceErr
	s.ErrMsg = err.Error()
	return s
}
