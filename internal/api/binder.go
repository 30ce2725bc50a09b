package api

import (
	"io"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"
	"github.com/nitadee/roomreport/internal/pkg/constants"
)

// Binder decodes JSON bodies with sonic and defers everything else (query,
// path params) to echo's default binder.
type Binder struct {
	fallback echo.DefaultBinder
}

func NewBinder() *Binder {
	return &Binder{}
}

func (b *Binder) Bind(i interface{}, c echo.Context) error {
	req := c.Request()
	if req.ContentLength > 0 && strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		body, err := io.ReadAll(req.Body)
		if err != nil {
			return constants.NewCodedError(http.StatusBadRequest, "failed to read request body")
		}
		if err := sonic.Unmarshal(body, i); err != nil {
			return constants.NewCodedError(http.StatusBadRequest, "malformed json body")
		}
		return nil
	}

	return b.fallback.Bind(i, c)
}
