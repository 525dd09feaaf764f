package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"logitrack/config"
	"logitrack/pkg/apperr"
	"logitrack/pkg/auth/controller"
	"logitrack/pkg/middleware"
	"logitrack/pkg/user/service"
)

type authCtrl struct {
	users      service.UserService
	secret     string
	tokenHours int
}

func NewAuthController(users service.UserService, secret string, tokenHours int) controller.AuthController {
	return &authCtrl{users: users, secret: secret, tokenHours: tokenHours}
}

type loginReq struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *authCtrl) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid json"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "username and password are required"})
	}

	u, err := h.users.Authenticate(req.Username, req.Password)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "Invalid credentials"})
		}
		config.LogError(config.GetLogger(), "auth", "Login", "authenticate", nil, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Server error"})
	}

	token, err := middleware.IssueToken(h.secret, u.Username, u.RoleList(), time.Duration(h.tokenHours)*time.Hour)
	if err != nil {
		config.LogError(config.GetLogger(), "auth", "Login", "issue token", nil, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Server error"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":       true,
		"message":       "Login successful",
		"role":          u.Role,
		"username":      u.Username,
		"allowedPlants": u.AllowedPlants,
		"token":         token,
	})
}
