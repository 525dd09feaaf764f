package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"logitrack/config"
	"logitrack/entities"
	"logitrack/pkg/apperr"
	"logitrack/pkg/plant/controller"
	"logitrack/pkg/plant/service"
)

type plantCtrl struct{ s service.PlantService }

func New(s service.PlantService) controller.PlantController { return &plantCtrl{s} }

type plantReq struct {
	PlantName     string `json:"plantName"`
	PlantAddress  string `json:"plantAddress"`
	ContactPerson string `json:"contactPerson"`
	MobileNo      string `json:"mobileNo"`
	Remarks       string `json:"remarks"`
}

func (h *plantCtrl) List(c echo.Context) error {
	list, err := h.s.ListAll()
	if err != nil {
		return fail(c, "List", err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *plantCtrl) ListActive(c echo.Context) error {
	list, err := h.s.ListActive()
	if err != nil {
		return fail(c, "ListActive", err)
	}
	return c.JSON(http.StatusOK, list)
}

// ListPicker returns id+name pairs for dropdowns (user registration screen).
func (h *plantCtrl) ListPicker(c echo.Context) error {
	list, err := h.s.ListActive()
	if err != nil {
		return fail(c, "ListPicker", err)
	}
	out := make([]echo.Map, 0, len(list))
	for _, p := range list {
		out = append(out, echo.Map{"plantid": p.PlantID, "plantname": p.PlantName})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *plantCtrl) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid plant id"})
	}
	p, err := h.s.GetPlant(uint(id))
	if err != nil {
		return fail(c, "Get", err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *plantCtrl) Create(c echo.Context) error {
	var req plantReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid json"})
	}
	p := &entities.Plant{
		PlantName:     req.PlantName,
		PlantAddress:  req.PlantAddress,
		ContactPerson: req.ContactPerson,
		MobileNo:      req.MobileNo,
		Remarks:       req.Remarks,
	}
	if _, err := h.s.CreatePlant(p); err != nil {
		return fail(c, "Create", err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *plantCtrl) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid plant id"})
	}
	var req plantReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid json"})
	}
	p := &entities.Plant{
		PlantID:       uint(id),
		PlantName:     req.PlantName,
		PlantAddress:  req.PlantAddress,
		ContactPerson: req.ContactPerson,
		MobileNo:      req.MobileNo,
		Remarks:       req.Remarks,
	}
	if _, err := h.s.UpdatePlant(p); err != nil {
		return fail(c, "Update", err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *plantCtrl) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid plant id"})
	}
	if err := h.s.DeletePlant(uint(id)); err != nil {
		return fail(c, "Delete", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "plant deleted"})
}

func fail(c echo.Context, fn string, err error) error {
	status := apperr.Status(err)
	if status == http.StatusInternalServerError {
		config.LogError(config.GetLogger(), "plant", fn, "request failed", nil, err)
	}
	return c.JSON(status, echo.Map{"success": false, "message": apperr.Message(err)})
}
