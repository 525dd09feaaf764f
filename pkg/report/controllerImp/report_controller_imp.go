package controllerImp

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"logitrack/config"
	"logitrack/pkg/apperr"
	"logitrack/pkg/report/controller"
	repo "logitrack/pkg/report/repository"
	"logitrack/pkg/report/service"
)

type reportCtrl struct{ s service.ReportService }

func New(s service.ReportService) controller.ReportController { return &reportCtrl{s} }

func (h *reportCtrl) TruckReport(c echo.Context) error {
	f, err := parseFilter(c)
	if err != nil {
		return fail(c, "TruckReport", err)
	}
	rows, err := h.s.TruckReport(f)
	if err != nil {
		return fail(c, "TruckReport", err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *reportCtrl) TruckSchedule(c echo.Context) error {
	f, err := parseFilter(c)
	if err != nil {
		return fail(c, "TruckSchedule", err)
	}
	f.Status = repo.StatusFilter(c.QueryParam("status"))
	if f.Status == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "missing required filters"})
	}
	rows, err := h.s.TruckSchedule(f)
	if err != nil {
		return fail(c, "TruckSchedule", err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *reportCtrl) ExportReport(c echo.Context) error {
	f, err := parseFilter(c)
	if err != nil {
		return fail(c, "ExportReport", err)
	}
	var buf bytes.Buffer
	if err := h.s.ExportXLSX(f, &buf); err != nil {
		return fail(c, "ExportReport", err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="truck-report.xlsx"`)
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}

// parseFilter reads fromDate/toDate plus a JSON-encoded plant ID array, the
// shape the dashboard has always sent.
func parseFilter(c echo.Context) (repo.Filter, error) {
	var f repo.Filter
	from := c.QueryParam("fromDate")
	to := c.QueryParam("toDate")
	plant := c.QueryParam("plant")
	if from == "" || to == "" || plant == "" {
		return f, apperr.Validation("missing required filters")
	}

	var err error
	if f.From, err = time.Parse("2006-01-02", from); err != nil {
		return f, apperr.Validation("invalid fromDate")
	}
	if f.To, err = time.Parse("2006-01-02", to); err != nil {
		return f, apperr.Validation("invalid toDate")
	}
	if err := json.Unmarshal([]byte(plant), &f.PlantIDs); err != nil {
		return f, apperr.Validation("invalid plant parameter")
	}
	if len(f.PlantIDs) == 0 {
		return f, apperr.Validation("no plants selected")
	}
	return f, nil
}

func fail(c echo.Context, fn string, err error) error {
	status := apperr.Status(err)
	if status == http.StatusInternalServerError {
		config.LogError(config.GetLogger(), "report", fn, "request failed", nil, err)
	}
	return c.JSON(status, echo.Map{"success": false, "message": apperr.Message(err)})
}
