package dto

import (
	"time"

	"github.com/vsinha/pipesched/pkg/domain/entities"
)

// PlanStatus labels an order's row in the production plan
type PlanStatus string

const (
	PlanScheduled PlanStatus = "scheduled"
	PlanExcluded  PlanStatus = "excluded"
	PlanUnplaced  PlanStatus = "unplaced"
)

// DayKind labels one day cell of a plan row
type DayKind string

const (
	DayIdle       DayKind = ""
	DayProduction DayKind = "production"
	DayChangeover DayKind = "changeover"
)

// DayCell is one day of a plan row
type DayCell struct {
	Date  time.Time
	Kind  DayKind
	Units entities.Quantity
}

// PlanRow reports one input order across the run's date span
type PlanRow struct {
	OrderNumber entities.OrderNumber
	MachineID   entities.MachineID
	MoldID      string
	Status      PlanStatus
	Reason      string
	Priority    entities.Priority
	StartDate   time.Time
	EndDate     time.Time
	Days        []DayCell
}

// ProductionPlan is the flat plan view materialized after scheduling
type ProductionPlan struct {
	RunID     string
	StartDate time.Time
	EndDate   time.Time
	Dates     []time.Time
	Rows      []PlanRow
	Result    *SchedulingResult
}
