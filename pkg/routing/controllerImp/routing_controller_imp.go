package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"logitrack/config"
	"logitrack/pkg/apperr"
	"logitrack/pkg/routing/controller"
	"logitrack/pkg/routing/service"
)

type routingCtrl struct{ s service.RoutingService }

func New(s service.RoutingService) controller.RoutingController { return &routingCtrl{s} }

func (h *routingCtrl) PriorityStatus(c echo.Context) error {
	truckNo := c.QueryParam("truckNo")
	plantName := c.QueryParam("plantName")
	if truckNo == "" || plantName == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "truckNo and plantName are required"})
	}
	st, err := h.s.PriorityStatus(truckNo, plantName)
	if err != nil {
		return fail(c, "PriorityStatus", err)
	}
	return c.JSON(http.StatusOK, st)
}

func (h *routingCtrl) FinishedPlant(c echo.Context) error {
	truckNo := c.QueryParam("truckNo")
	if truckNo == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "truckNo is required"})
	}
	last, err := h.s.LastFinishedPlant(truckNo)
	if err != nil {
		return fail(c, "FinishedPlant", err)
	}
	if last == "" {
		return c.JSON(http.StatusOK, echo.Map{"lastFinished": nil})
	}
	return c.JSON(http.StatusOK, echo.Map{"lastFinished": last})
}

func (h *routingCtrl) TrucksForCheckIn(c echo.Context) error {
	list, err := h.s.TrucksAwaitingCheckIn(c.QueryParam("plantName"))
	if err != nil {
		return fail(c, "TrucksForCheckIn", err)
	}
	return c.JSON(http.StatusOK, asTruckRows(list))
}

func (h *routingCtrl) TrucksForCheckOut(c echo.Context) error {
	list, err := h.s.TrucksAwaitingCheckOut(c.QueryParam("plantName"))
	if err != nil {
		return fail(c, "TrucksForCheckOut", err)
	}
	return c.JSON(http.StatusOK, asTruckRows(list))
}

func (h *routingCtrl) FetchRemarks(c echo.Context) error {
	remarks, err := h.s.DetailRemarks(c.QueryParam("truckNo"), c.QueryParam("plantName"))
	if err != nil {
		return fail(c, "FetchRemarks", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"remarks": remarks})
}

func (h *routingCtrl) PlantQuantities(c echo.Context) error {
	list, err := h.s.PlantQuantities(c.QueryParam("truckNo"))
	if err != nil {
		return fail(c, "PlantQuantities", err)
	}
	return c.JSON(http.StatusOK, list)
}

func asTruckRows(list []string) []echo.Map {
	out := make([]echo.Map, 0, len(list))
	for _, no := range list {
		out = append(out, echo.Map{"TruckNo": no})
	}
	return out
}

func fail(c echo.Context, fn string, err error) error {
	status := apperr.Status(err)
	if status == http.StatusInternalServerError {
		config.LogError(config.GetLogger(), "routing", fn, "request failed", nil, err)
	}
	return c.JSON(status, echo.Map{"success": false, "message": apperr.Message(err)})
}
