package controller

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nitadee/roomreport/internal/domain"
	"github.com/xuri/excelize/v2"
)

var roomExportHeader = []interface{}{
	"Room Number",
	"Customer Name",
	"Address No",
	"Items",
	"Room Type",
	"Install Point",
	"Installed Date",
}

// ExportRooms downloads the filtered browsing list as an xlsx workbook.
func (c *Controller) ExportRooms(ctx echo.Context) error {
	filters := filtersFromQuery(ctx)

	rooms := c.service.ListRooms(ctx.Request().Context(), filters)

	content, err := generateRoomExport(rooms)
	if err != nil {
		return fmt.Errorf("generateRoomExport: %w", err)
	}

	filename := fmt.Sprintf("room-report-%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))

	return ctx.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", content)
}

func generateRoomExport(rooms []domain.RoomSummary) ([]byte, error) {
	f := excelize.NewFile()

	const sheetName = "Rooms"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	_ = f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	if err := f.SetSheetRow(sheetName, "A1", &roomExportHeader); err != nil {
		f.Close()
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, room := range rooms {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, err
		}

		row := []interface{}{
			room.RoomNumber,
			room.CustomerName,
			room.AddressNo,
			room.Items,
			room.RoomType,
			room.InstallPoint,
			room.InstalledDate,
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			f.Close()
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}

	if err := f.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
