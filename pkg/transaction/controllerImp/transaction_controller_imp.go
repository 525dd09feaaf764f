package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"logitrack/config"
	"logitrack/pkg/apperr"
	"logitrack/pkg/transaction/controller"
	"logitrack/pkg/transaction/service"
)

type truckCtrl struct{ s service.TruckTransactionService }

func New(s service.TruckTransactionService) controller.TruckTransactionController {
	return &truckCtrl{s}
}

type formData struct {
	TransactionID   uint            `json:"transactionId"`
	TruckNo         string          `json:"truckNo"`
	TransactionDate string          `json:"transactionDate"`
	CityName        string          `json:"cityName"`
	Transporter     string          `json:"transporter"`
	AmountPerTon    decimal.Decimal `json:"amountPerTon"`
	TruckWeight     decimal.Decimal `json:"truckWeight"`
	DeliverPoint    string          `json:"deliverPoint"`
	Remarks         string          `json:"remarks"`
}

type tableRow struct {
	PlantName     string          `json:"plantName"`
	LoadingSlipNo string          `json:"loadingSlipNo"`
	Qty           decimal.Decimal `json:"qty"`
	Priority      int             `json:"priority"`
	Remarks       string          `json:"remarks"`
	Freight       decimal.Decimal `json:"freight"`
	CheckinTime   string          `json:"checkinTime"`
	CheckoutTime  string          `json:"checkoutTime"`
}

type submitReq struct {
	FormData  formData   `json:"formData"`
	TableData []tableRow `json:"tableData"`
}

func (h *truckCtrl) Submit(c echo.Context) error {
	var req submitReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid json"})
	}

	form := service.TransactionForm{
		TransactionID:   req.FormData.TransactionID,
		TruckNo:         req.FormData.TruckNo,
		TransactionDate: parseDate(req.FormData.TransactionDate),
		CityName:        req.FormData.CityName,
		Transporter:     req.FormData.Transporter,
		AmountPerTon:    req.FormData.AmountPerTon,
		TruckWeight:     req.FormData.TruckWeight,
		DeliverPoint:    req.FormData.DeliverPoint,
		Remarks:         req.FormData.Remarks,
	}
	lines := make([]service.LineItem, 0, len(req.TableData))
	for _, row := range req.TableData {
		lines = append(lines, service.LineItem{
			PlantName:     row.PlantName,
			LoadingSlipNo: row.LoadingSlipNo,
			Qty:           row.Qty,
			Priority:      row.Priority,
			Remarks:       row.Remarks,
			Freight:       row.Freight,
			CheckInTime:   parseTimePtr(row.CheckinTime),
			CheckOutTime:  parseTimePtr(row.CheckoutTime),
		})
	}

	res, err := h.s.Submit(form, lines)
	if err != nil {
		return fail(c, "Submit", err)
	}
	if res.Completed {
		return c.JSON(http.StatusOK, echo.Map{"message": "Truck transaction completed."})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "transactionId": res.TransactionID})
}

type statusReq struct {
	TruckNo       string `json:"truckNo" validate:"required"`
	PlantName     string `json:"plantName" validate:"required"`
	InvoiceNumber string `json:"invoicenumber"`
	Type          string `json:"type" validate:"required"`
}

func (h *truckCtrl) UpdateStatus(c echo.Context) error {
	var req statusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid json"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "truckNo, plantName and type are required"})
	}

	res, err := h.s.UpdateCheckStatus(req.TruckNo, req.PlantName, service.CheckAction(req.Type), req.InvoiceNumber)
	if err != nil {
		return fail(c, "UpdateStatus", err)
	}
	switch {
	case res.AllCompleted:
		return c.JSON(http.StatusOK, echo.Map{"message": "All plants processed. Truck process completed."})
	case res.Action == service.CheckIn:
		return c.JSON(http.StatusOK, echo.Map{"message": "Truck checked in successfully!"})
	default:
		return c.JSON(http.StatusOK, echo.Map{"message": "Truck checked out successfully!"})
	}
}

func (h *truckCtrl) ActiveTrucks(c echo.Context) error {
	list, err := h.s.ActiveTrucks()
	if err != nil {
		return fail(c, "ActiveTrucks", err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *truckCtrl) GetByTruckNo(c echo.Context) error {
	out, err := h.s.Current(c.Param("truckNo"))
	if err != nil {
		return fail(c, "GetByTruckNo", err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *truckCtrl) DeleteDetail(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("detailId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid detail id"})
	}
	if err := h.s.DeleteDetail(uint(id)); err != nil {
		return fail(c, "DeleteDetail", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func parseDate(s string) time.Time {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Now()
}

func parseTimePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

func fail(c echo.Context, fn string, err error) error {
	status := apperr.Status(err)
	if status == http.StatusInternalServerError {
		config.LogError(config.GetLogger(), "transaction", fn, "request failed", nil, err)
	}
	return c.JSON(status, echo.Map{"success": false, "message": apperr.Message(err)})
}
