package controller

import "github.com/labstack/echo/v4"

type ReportController interface {
	TruckReport(c echo.Context) error
	TruckSchedule(c echo.Context) error
	ExportReport(c echo.Context) error
}
