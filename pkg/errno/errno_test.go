package errno

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
)

func TestConvertErr(t *testing.T) {
	t.Run("nil is success", func(t *testing.T) {
		if got := ConvertErr(nil); got.ErrCode != SuccessCode {
			t.Errorf("code = %d, want %d", got.ErrCode, SuccessCode)
		}
	})

	t.Run("passes an ErrNo through", func(t *testing.T) {
		got := ConvertErr(NotFoundErr.WithMessage("video not found"))
		if got.ErrCode != NotFoundCode || got.StatusCode != http.StatusNotFound {
			t.Errorf("got %+v, want not found", got)
		}
		if got.ErrMsg != "video not found" {
			t.Errorf("msg = %q", got.ErrMsg)
		}
	})

	t.Run("unwraps a wrapped ErrNo", func(t *testing.T) {
		wrapped := errors.WithMessage(ValidationErr.WithFields(map[string]string{"title": "required"}), "publish")
		got := ConvertErr(wrapped)
		if got.ErrCode != ValidationCode {
			t.Errorf("code = %d, want %d", got.ErrCode, ValidationCode)
		}
		if got.Fields["title"] != "required" {
			t.Errorf("fields = %v", got.Fields)
		}
	})

	t.Run("unknown errors become service errors", func(t *testing.T) {
		got := ConvertErr(errors.New("boom"))
		if got.ErrCode != ServiceCode || got.StatusCode != http.StatusInternalServerError {
			t.Errorf("got %+v, want service error", got)
		}
		if got.ErrMsg != "boom" {
			t.Errorf("msg = %q, want original message surfaced", got.ErrMsg)
		}
	})
}
