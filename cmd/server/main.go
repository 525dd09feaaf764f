package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"logitrack/config"
	"logitrack/database"
	"logitrack/router"

	// Auth
	authCtrlImp "logitrack/pkg/auth/controllerImp"

	// Plant master
	plantCtrlImp "logitrack/pkg/plant/controllerImp"
	plantRepoImp "logitrack/pkg/plant/repositoryImp"
	plantSvcImp "logitrack/pkg/plant/serviceImp"

	// Users
	userCtrlImp "logitrack/pkg/user/controllerImp"
	userRepoImp "logitrack/pkg/user/repositoryImp"
	userSvcImp "logitrack/pkg/user/serviceImp"

	// Truck transactions
	txCtrlImp "logitrack/pkg/transaction/controllerImp"
	txRepoImp "logitrack/pkg/transaction/repositoryImp"
	txSvcImp "logitrack/pkg/transaction/serviceImp"

	// Priority routing
	routingCtrlImp "logitrack/pkg/routing/controllerImp"
	routingSvcImp "logitrack/pkg/routing/serviceImp"

	// Reports
	reportCtrlImp "logitrack/pkg/report/controllerImp"
	reportRepoImp "logitrack/pkg/report/repositoryImp"
	reportSvcImp "logitrack/pkg/report/serviceImp"

	// Health
	healthCtrlImp "logitrack/pkg/health/controllerImp"

	appMiddleware "logitrack/pkg/middleware"
	"logitrack/pkg/validation"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB + automigrate
	db := database.Open(cfg.DBDSN, cfg.DBPath)
	if cfg.SeedAdmin {
		database.SeedAdmin(db)
	}

	// 3) Echo
	e := echo.New()
	e.Validator = validation.New()
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowCredentials: true,
	}))
	e.Use(appMiddleware.Auth(cfg.JWTSecret))

	// 4) Repositories
	plantRepo := plantRepoImp.New(db)
	userRepo := userRepoImp.New(db)
	txRepo := txRepoImp.New(db)
	reportRepo := reportRepoImp.New(db)

	// 5) Services
	plantSvc := plantSvcImp.NewPlantService(plantRepo)
	userSvc := userSvcImp.NewUserService(userRepo)
	txSvc := txSvcImp.NewTruckTransactionService(txRepo, plantSvc)
	routingSvc := routingSvcImp.NewRoutingService(txRepo)
	reportSvc := reportSvcImp.NewReportService(reportRepo)

	// 6) Controllers
	authCtrl := authCtrlImp.NewAuthController(userSvc, cfg.JWTSecret, cfg.TokenHours)
	plantCtrl := plantCtrlImp.New(plantSvc)
	userCtrl := userCtrlImp.New(userSvc)
	truckCtrl := txCtrlImp.New(txSvc)
	routingCtrl := routingCtrlImp.New(routingSvc)
	reportCtrl := reportCtrlImp.New(reportSvc)
	healthCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 7) Router
	r := router.New(e, authCtrl, plantCtrl, userCtrl, truckCtrl, routingCtrl, reportCtrl, healthCtrl)

	// 8) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
