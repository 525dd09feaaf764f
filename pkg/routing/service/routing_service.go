package service

import "logitrack/pkg/transaction/repository"

// PriorityStatus answers whether a truck has pending stops and whether the
// asking plant is the one allowed to act next.
type PriorityStatus struct {
	HasPending   bool   `json:"hasPending"`
	CanProceed   bool   `json:"canProceed,omitempty"`
	NextPriority int    `json:"nextPriority,omitempty"`
	NextPlant    string `json:"nextPlant,omitempty"`
}

// RoutingService derives visit order from a truck's detail rows. Stops are
// ranked by priority ascending; ties break on the lower detail ID.
type RoutingService interface {
	// PriorityStatus reports the lowest-priority pending stop of the truck's
	// active header and whether plantName matches it.
	PriorityStatus(truckNo, plantName string) (*PriorityStatus, error)
	// LastFinishedPlant returns the name of the highest-priority fully
	// checked-out stop, or "" when none is finished yet.
	LastFinishedPlant(truckNo string) (string, error)
	// TrucksAwaitingCheckIn lists active trucks whose stop at the plant has
	// not checked in yet; TrucksAwaitingCheckOut those checked in but not out.
	TrucksAwaitingCheckIn(plantName string) ([]string, error)
	TrucksAwaitingCheckOut(plantName string) ([]string, error)
	DetailRemarks(truckNo, plantName string) (string, error)
	PlantQuantities(truckNo string) ([]repository.PlantQuantity, error)
}
