package api

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/nitadee/roomreport/internal/pkg/constants"
)

// RequestIDMiddleware tags every request with an id, echoed back in the
// X-Request-ID header and carried on the request context for log correlation.
func RequestIDMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		reqID := ctx.Request().Header.Get(echo.HeaderXRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}

		ctx.Response().Header().Set(echo.HeaderXRequestID, reqID)

		reqCtx := context.WithValue(ctx.Request().Context(), constants.CtxKeyRequestID, reqID)
		ctx.SetRequest(ctx.Request().WithContext(reqCtx))

		return next(ctx)
	}
}
