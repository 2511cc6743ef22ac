package events

import (
	"time"

	"github.com/vsinha/pipesched/pkg/domain/entities"
)

const (
	RunStartedEvent    = "run.started"
	OrderExcludedEvent = "order.excluded"
	OrderPlacedEvent   = "order.placed"
	OrderConflictEvent = "order.conflict"
	RunCompletedEvent  = "run.completed"
)

type RunStarted struct {
	RunID         string    `json:"run_id"`
	Strategy      string    `json:"strategy"`
	ReferenceDate time.Time `json:"reference_date"`
	Orders        int       `json:"orders"`
}

type OrderExcluded struct {
	OrderNumber entities.OrderNumber `json:"order_number"`
	Reason      string               `json:"reason"`
}

type OrderPlaced struct {
	OrderNumber entities.OrderNumber `json:"order_number"`
	MachineID   entities.MachineID   `json:"machine_id"`
	MoldID      string               `json:"mold_id"`
	StartDate   time.Time            `json:"start_date"`
	EndDate     time.Time            `json:"end_date"`
	Quantity    entities.Quantity    `json:"quantity"`
}

type OrderConflict struct {
	Message string `json:"message"`
}

type RunCompleted struct {
	RunID           string  `json:"run_id"`
	Scheduled       int     `json:"scheduled"`
	Excluded        int     `json:"excluded"`
	Conflicts       int     `json:"conflicts"`
	TotalDays       int     `json:"total_days"`
	UtilizationRate float64 `json:"utilization_rate"`
	OnTimeRate      float64 `json:"on_time_rate"`
}
