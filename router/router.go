package router

import (
	"github.com/labstack/echo/v4"

	authCtrl "logitrack/pkg/auth/controller"
	plantCtrl "logitrack/pkg/plant/controller"
	reportCtrl "logitrack/pkg/report/controller"
	routingCtrl "logitrack/pkg/routing/controller"
	txCtrl "logitrack/pkg/transaction/controller"
	userCtrl "logitrack/pkg/user/controller"
)

func New(
	e *echo.Echo,
	auth authCtrl.AuthController,
	plants plantCtrl.PlantController,
	users userCtrl.UserController,
	trucks txCtrl.TruckTransactionController,
	routing routingCtrl.RoutingController,
	reports reportCtrl.ReportController,
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)

	api := e.Group("/api")

	api.POST("/login", auth.Login)

	// Plant master
	api.GET("/plant-master", plants.List)
	api.GET("/plant-master/:id", plants.Get)
	api.POST("/plant-master", plants.Create)
	api.PUT("/plant-master/:id", plants.Update)
	api.DELETE("/plant-master/:id", plants.Delete)
	api.GET("/plants", plants.ListActive)
	api.GET("/plantmaster", plants.ListPicker)

	// Users
	api.GET("/users", users.List)
	api.POST("/users", users.Create)
	api.PUT("/users/:username", users.Update)
	api.DELETE("/users/:username", users.Delete)

	// Truck transactions
	api.POST("/truck-transaction", trucks.Submit)
	api.GET("/truck-find", trucks.ActiveTrucks)
	api.GET("/truck-transaction/:truckNo", trucks.GetByTruckNo)
	api.DELETE("/truck-transaction/detail/:detailId", trucks.DeleteDetail)
	api.POST("/update-truck-status", trucks.UpdateStatus)

	// Gate / priority queries
	api.GET("/check-priority-status", routing.PriorityStatus)
	api.GET("/finished-plant", routing.FinishedPlant)
	api.GET("/trucks", routing.TrucksForCheckIn)
	api.GET("/checked-in-trucks", routing.TrucksForCheckOut)
	api.GET("/fetch-remarks", routing.FetchRemarks)
	api.GET("/truck-plant-quantities", routing.PlantQuantities)

	// Reports
	api.GET("/truck-report", reports.TruckReport)
	api.GET("/truck-schedule", reports.TruckSchedule)
	api.GET("/truck-report/export", reports.ExportReport)

	return e
}
