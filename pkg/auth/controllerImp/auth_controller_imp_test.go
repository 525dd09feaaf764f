package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"logitrack/database"
	"logitrack/pkg/auth/controller"
	"logitrack/pkg/middleware"
	userRepoImp "logitrack/pkg/user/repositoryImp"
	userService "logitrack/pkg/user/service"
	userSvcImp "logitrack/pkg/user/serviceImp"
	"logitrack/pkg/validation"
)

const testSecret = "test-secret"

func newController(t *testing.T) controller.AuthController {
	t.Helper()
	db := database.Open("", filepath.Join(t.TempDir(), "test.db"))
	users := userSvcImp.NewUserService(userRepoImp.New(db))
	require.NoError(t, users.Register(userService.NewUser{
		Username:      "gatekeeper",
		Password:      "open-sesame",
		ContactNumber: "9999999999",
		ModuleRights:  []string{"Gate Keeper"},
		AllowedPlants: []string{"Plant A"},
	}))
	return NewAuthController(users, testSecret, 1)
}

func doLogin(t *testing.T, h controller.AuthController, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	e := echo.New()
	e.Validator = validation.New()
	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Login(e.NewContext(req, rec)))

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func TestLogin_Success(t *testing.T) {
	h := newController(t)
	rec, resp := doLogin(t, h, `{"username":"gatekeeper","password":"open-sesame"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, true, resp["success"])
	require.Equal(t, "gatekeeper", resp["username"])
	require.Equal(t, "Gate Keeper", resp["role"])
	require.Equal(t, "Plant A", resp["allowedPlants"])

	token, _ := resp["token"].(string)
	require.NotEmpty(t, token)
	claims, err := middleware.ParseToken(testSecret, token)
	require.NoError(t, err)
	require.Equal(t, "gatekeeper", claims.Username)
	require.Equal(t, []string{"Gate Keeper"}, claims.Roles)
}

func TestLogin_WrongPassword(t *testing.T) {
	h := newController(t)
	rec, resp := doLogin(t, h, `{"username":"gatekeeper","password":"nope"}`)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, false, resp["success"])
}

func TestLogin_UnknownUser(t *testing.T) {
	h := newController(t)
	rec, _ := doLogin(t, h, `{"username":"ghost","password":"x"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_MissingFields(t *testing.T) {
	h := newController(t)
	rec, _ := doLogin(t, h, `{"username":"gatekeeper"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
