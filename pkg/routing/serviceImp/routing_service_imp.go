package serviceImp

import (
	"logitrack/pkg/apperr"
	"logitrack/pkg/normalize"
	repo "logitrack/pkg/transaction/repository"
	"logitrack/pkg/routing/service"
)

type routingSvc struct{ r repo.TransactionRepository }

func NewRoutingService(r repo.TransactionRepository) service.RoutingService {
	return &routingSvc{r}
}

func (s *routingSvc) PriorityStatus(truckNo, plantName string) (*service.PriorityStatus, error) {
	header, err := s.r.CurrentHeader(normalize.Fold(truckNo))
	if err != nil {
		return nil, err
	}
	if header == nil {
		return &service.PriorityStatus{HasPending: false}, nil
	}

	// Rows arrive ordered by priority, then detail ID (tie-break).
	details, err := s.r.DetailsWithPlant(header.TransactionID)
	if err != nil {
		return nil, err
	}

	var pending *repo.DetailWithPlant
	for i := range details {
		if !details[i].CheckInStatus || !details[i].CheckOutStatus {
			pending = &details[i]
			break
		}
	}
	if pending == nil {
		return &service.PriorityStatus{HasPending: false}, nil
	}

	var current *repo.DetailWithPlant
	for i := range details {
		if normalize.Fold(details[i].PlantName) == normalize.Fold(plantName) {
			current = &details[i]
			break
		}
	}
	if current == nil {
		return nil, apperr.Validation("current plant not found in transaction")
	}

	return &service.PriorityStatus{
		HasPending:   true,
		CanProceed:   current.Priority == pending.Priority,
		NextPriority: pending.Priority,
		NextPlant:    pending.PlantName,
	}, nil
}

func (s *routingSvc) LastFinishedPlant(truckNo string) (string, error) {
	header, err := s.r.CurrentHeader(normalize.Fold(truckNo))
	if err != nil || header == nil {
		return "", err
	}
	details, err := s.r.DetailsWithPlant(header.TransactionID)
	if err != nil {
		return "", err
	}
	// Furthest-along finished stop: highest priority among fully checked-out rows.
	last := ""
	bestPriority := 0
	for _, d := range details {
		if d.CheckInStatus && d.CheckOutStatus && (last == "" || d.Priority >= bestPriority) {
			last = d.PlantName
			bestPriority = d.Priority
		}
	}
	return last, nil
}

func (s *routingSvc) TrucksAwaitingCheckIn(plantName string) ([]string, error) {
	return s.r.TrucksAtPlant(normalize.Fold(plantName), false, false)
}

func (s *routingSvc) TrucksAwaitingCheckOut(plantName string) ([]string, error) {
	return s.r.TrucksAtPlant(normalize.Fold(plantName), true, false)
}

func (s *routingSvc) DetailRemarks(truckNo, plantName string) (string, error) {
	header, err := s.r.CurrentHeader(normalize.Fold(truckNo))
	if err != nil {
		return "", err
	}
	if header == nil {
		return "", apperr.NotFound("transaction not found")
	}
	details, err := s.r.DetailsWithPlant(header.TransactionID)
	if err != nil {
		return "", err
	}
	for _, d := range details {
		if normalize.Fold(d.PlantName) == normalize.Fold(plantName) {
			return d.Remarks, nil
		}
	}
	return "", apperr.NotFound("remarks not found")
}

func (s *routingSvc) PlantQuantities(truckNo string) ([]repo.PlantQuantity, error) {
	header, err := s.r.CurrentHeader(normalize.Fold(truckNo))
	if err != nil {
		return nil, err
	}
	if header == nil {
		return []repo.PlantQuantity{}, nil
	}
	return s.r.PlantQuantities(header.TransactionID)
}
