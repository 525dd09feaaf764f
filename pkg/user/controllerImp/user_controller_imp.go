package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"logitrack/config"
	"logitrack/entities"
	"logitrack/pkg/apperr"
	"logitrack/pkg/user/controller"
	"logitrack/pkg/user/service"
)

type userCtrl struct{ s service.UserService }

func New(s service.UserService) controller.UserController { return &userCtrl{s} }

type createReq struct {
	Username      string   `json:"username" validate:"required"`
	Password      string   `json:"password" validate:"required"`
	ContactNumber string   `json:"contactNumber" validate:"required"`
	ModuleRights  []string `json:"moduleRights"`
	AllowedPlants []string `json:"allowedPlants"`
}

type updateReq struct {
	Username      string `json:"username"`
	Password      string `json:"password"`
	Role          string `json:"role"`
	AllowedPlants string `json:"allowedplants"`
	ContactNumber string `json:"contactnumber"`
}

func (h *userCtrl) List(c echo.Context) error {
	list, err := h.s.List()
	if err != nil {
		return fail(c, "List", err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *userCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid json"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"message": "username, password, and contact number are required",
		})
	}
	err := h.s.Register(service.NewUser{
		Username:      req.Username,
		Password:      req.Password,
		ContactNumber: req.ContactNumber,
		ModuleRights:  req.ModuleRights,
		AllowedPlants: req.AllowedPlants,
	})
	if err != nil {
		return fail(c, "Create", err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "message": "user created"})
}

func (h *userCtrl) Update(c echo.Context) error {
	old := c.Param("username")
	var req updateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid json"})
	}
	u := &entities.User{
		Username:      req.Username,
		Password:      req.Password,
		Role:          req.Role,
		AllowedPlants: req.AllowedPlants,
		ContactNumber: req.ContactNumber,
	}
	if err := h.s.Update(old, u); err != nil {
		return fail(c, "Update", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "user updated"})
}

func (h *userCtrl) Delete(c echo.Context) error {
	if err := h.s.Delete(c.Param("username")); err != nil {
		return fail(c, "Delete", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "user deleted"})
}

func fail(c echo.Context, fn string, err error) error {
	status := apperr.Status(err)
	if status == http.StatusInternalServerError {
		config.LogError(config.GetLogger(), "user", fn, "request failed", nil, err)
	}
	return c.JSON(status, echo.Map{"success": false, "message": apperr.Message(err)})
}
