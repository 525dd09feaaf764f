package controller

import "github.com/labstack/echo/v4"

type RoutingController interface {
	PriorityStatus(c echo.Context) error
	FinishedPlant(c echo.Context) error
	TrucksForCheckIn(c echo.Context) error
	TrucksForCheckOut(c echo.Context) error
	FetchRemarks(c echo.Context) error
	PlantQuantities(c echo.Context) error
}
