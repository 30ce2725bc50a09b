package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nitadee/roomreport/internal/service/report"
)

func filtersFromQuery(ctx echo.Context) report.Filters {
	// Parameter names match the front-end search form fields.
	return report.Filters{
		RoomNumber:   ctx.QueryParams().Get("roomNumber"),
		CustomerName: ctx.QueryParams().Get("customerName"),
		AddressNo:    ctx.QueryParams().Get("addressNo"),
	}
}

func (c *Controller) ListRooms(ctx echo.Context) error {
	filters := filtersFromQuery(ctx)

	rooms := c.service.ListRooms(ctx.Request().Context(), filters)

	return ctx.JSON(http.StatusOK, rooms)
}

func (c *Controller) GetRoomDetail(ctx echo.Context) error {
	id := ctx.Param("id")

	detail, err := c.service.GetRoomDetail(ctx.Request().Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, detail)
}
