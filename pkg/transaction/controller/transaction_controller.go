package controller

import "github.com/labstack/echo/v4"

type TruckTransactionController interface {
	Submit(c echo.Context) error
	UpdateStatus(c echo.Context) error
	ActiveTrucks(c echo.Context) error
	GetByTruckNo(c echo.Context) error
	DeleteDetail(c echo.Context) error
}
