package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/nitadee/roomreport/internal/api/controller"
	"github.com/nitadee/roomreport/internal/pkg/logger"
	"github.com/nitadee/roomreport/internal/service/report"
)

type APIService struct {
	router        *echo.Echo
	reportService *report.Service
}

func (svc *APIService) Serve(addr string) {
	if err := svc.router.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal(context.Background(), err)
	}
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func NewAPIService(reportService *report.Service, allowOrigins []string) (*APIService, error) {
	svc := &APIService{router: echo.New(), reportService: reportService}

	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.Use(middleware.Logger())
	svc.router.Use(RequestIDMiddleware)
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: allowOrigins,
		AllowMethods: []string{echo.GET},
		AllowHeaders: []string{"Content-Type"},
	}))

	api := svc.router.Group("/api/v1")
	cntrl := controller.NewController(svc.reportService)

	rooms := api.Group("/rooms")
	rooms.GET("", cntrl.ListRooms)
	rooms.GET("/export", cntrl.ExportRooms)
	rooms.GET("/:id", cntrl.GetRoomDetail)

	api.GET("/stats", cntrl.GetStats)
	api.GET("/projects", cntrl.GetProjects)
	api.GET("/status", cntrl.GetStatusSummary)

	return svc, nil
}

// Router exposes the underlying echo instance for tests.
func (svc *APIService) Router() *echo.Echo {
	return svc.router
}
