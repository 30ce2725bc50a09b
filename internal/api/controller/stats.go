package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (c *Controller) GetStats(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, c.service.GetStats(ctx.Request().Context()))
}

func (c *Controller) GetProjects(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, c.service.GetProjects(ctx.Request().Context()))
}

func (c *Controller) GetStatusSummary(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, c.service.GetStatusSummary(ctx.Request().Context()))
}
