package serviceImp

import (
	"strings"
	"time"

	"logitrack/entities"
	"logitrack/pkg/apperr"
	"logitrack/pkg/normalize"
	plantSvc "logitrack/pkg/plant/service"
	repo "logitrack/pkg/transaction/repository"
	"logitrack/pkg/transaction/service"
)

type truckSvc struct {
	r      repo.TransactionRepository
	plants plantSvc.PlantService
	now    func() time.Time
}

func NewTruckTransactionService(r repo.TransactionRepository, plants plantSvc.PlantService) service.TruckTransactionService {
	return &truckSvc{r: r, plants: plants, now: time.Now}
}

func (s *truckSvc) Submit(form service.TransactionForm, lines []service.LineItem) (*service.SubmitResult, error) {
	if strings.TrimSpace(form.TruckNo) == "" {
		return nil, apperr.Validation("truck number is required")
	}
	norm := normalize.Fold(form.TruckNo)

	res := &service.SubmitResult{}
	err := s.r.Atomic(func(r repo.TransactionRepository) error {
		txID := form.TransactionID

		// Composite admission guard, create path only. The first arm checks
		// the completed flag; the second scans detail rows directly so a
		// stale header with unfinished stops cannot slip through.
		if txID == 0 {
			active, err := r.ActiveHeaderExists(norm)
			if err != nil {
				return err
			}
			if active {
				return apperr.Conflict("truck number already exists")
			}
			pending, err := r.PendingDetailExists(norm)
			if err != nil {
				return err
			}
			if pending {
				return apperr.Conflict("truck already in transport, complete check-out first")
			}
		}

		header := entities.TruckTransaction{
			TransactionID:   txID,
			TruckNo:         strings.TrimSpace(form.TruckNo),
			TruckNoNorm:     norm,
			TransactionDate: form.TransactionDate,
			CityName:        form.CityName,
			Transporter:     form.Transporter,
			AmountPerTon:    form.AmountPerTon,
			TruckWeight:     form.TruckWeight,
			DeliverPoint:    form.DeliverPoint,
			Remarks:         form.Remarks,
		}
		if txID == 0 {
			if err := r.CreateHeader(&header); err != nil {
				return err
			}
			txID = header.TransactionID
		} else {
			if err := r.UpdateHeader(&header); err != nil {
				return err
			}
		}

		// The submitted list becomes the new pending set; rows with any
		// check progress stay untouched.
		if err := r.DeleteUntouchedDetails(txID); err != nil {
			return err
		}

		for _, line := range lines {
			if strings.TrimSpace(line.PlantName) == "" {
				continue
			}
			plantID, err := s.plants.ResolveID(line.PlantName)
			if err != nil {
				return err // unresolvable plant aborts the whole unit of work
			}
			dup, err := r.DetailExists(txID, plantID, line.LoadingSlipNo, line.Priority)
			if err != nil {
				return err
			}
			if dup {
				continue
			}
			d := entities.TruckTransactionDetail{
				TransactionID: txID,
				PlantID:       plantID,
				LoadingSlipNo: line.LoadingSlipNo,
				Qty:           line.Qty,
				Priority:      line.Priority,
				Remarks:       line.Remarks,
				Freight:       line.Freight,
				CheckInTime:   line.CheckInTime,
				CheckOutTime:  line.CheckOutTime,
			}
			if err := r.CreateDetail(&d); err != nil {
				return err
			}
		}

		total, done, err := r.CountDetails(txID)
		if err != nil {
			return err
		}
		if total > 0 && total == done {
			if err := r.MarkCompleted(txID); err != nil {
				return err
			}
			res.Completed = true
		}
		res.TransactionID = txID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s *truckSvc) UpdateCheckStatus(truckNo, plantName string, action service.CheckAction, invoiceNumber string) (*service.CheckResult, error) {
	if action != service.CheckIn && action != service.CheckOut {
		return nil, apperr.Validation("unknown action: %s", action)
	}

	res := &service.CheckResult{Action: action}
	err := s.r.Atomic(func(r repo.TransactionRepository) error {
		header, err := r.CurrentHeader(normalize.Fold(truckNo))
		if err != nil {
			return err
		}
		if header == nil {
			return apperr.NotFound("truck not found or already completed")
		}
		plantID, err := s.plants.ResolveID(plantName)
		if err != nil {
			return err
		}
		d, err := r.FindDetail(header.TransactionID, plantID)
		if err != nil {
			return err
		}
		if d == nil {
			return apperr.NotFound("truck detail not found for this plant")
		}

		now := s.now()
		switch action {
		case service.CheckIn:
			if d.CheckInStatus {
				return apperr.State("truck already checked in at this plant")
			}
			d.CheckInStatus = true
			d.CheckInTime = &now
			return r.SaveDetail(d)

		case service.CheckOut:
			if !d.CheckInStatus {
				return apperr.State("please check in first before check out")
			}
			if d.CheckOutStatus {
				return apperr.State("this truck has already been checked out")
			}
			d.CheckOutStatus = true
			d.CheckOutTime = &now
			d.InvoiceNumber = invoiceNumber
			if err := r.SaveDetail(d); err != nil {
				return err
			}
			total, done, err := r.CountDetails(header.TransactionID)
			if err != nil {
				return err
			}
			if total > 0 && total == done {
				if err := r.MarkCompleted(header.TransactionID); err != nil {
					return err
				}
				res.AllCompleted = true
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s *truckSvc) DeleteDetail(detailID uint) error {
	ok, err := s.r.DeleteDetailByID(detailID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("detail not found")
	}
	return nil
}

func (s *truckSvc) ActiveTrucks() ([]repo.ActiveTruck, error) { return s.r.ActiveTrucks() }

func (s *truckSvc) Current(truckNo string) (*service.TruckWithDetails, error) {
	header, err := s.r.CurrentHeader(normalize.Fold(truckNo))
	if err != nil {
		return nil, err
	}
	if header == nil {
		return nil, apperr.NotFound("truck not found")
	}
	details, err := s.r.DetailsWithPlant(header.TransactionID)
	if err != nil {
		return nil, err
	}
	return &service.TruckWithDetails{Master: header, Details: details}, nil
}
