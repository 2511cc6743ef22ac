package dto

import (
	"fmt"
	"time"

	"github.com/vsinha/pipesched/pkg/domain/entities"
)

// SchedulingResult contains the complete output of one scheduling run
type SchedulingResult struct {
	Strategy        entities.Strategy
	ReferenceDate   time.Time
	Orders          []entities.ProductionOrder
	MachineOrders   map[entities.MachineID][]entities.ProductionOrder
	TotalDays       int
	UtilizationRate float64
	OnTimeRate      float64
	Unplaced        []UnplacedOrder
	Conflicts       []string
}

// UnplacedOrder is an order the scheduler could not place, with the
// conflict recorded for it
type UnplacedOrder struct {
	Order    entities.ProductionOrder
	Conflict string
}

// Summary returns a one-paragraph description of the run
func (r *SchedulingResult) Summary() string {
	summary := fmt.Sprintf("Scheduling Summary (%s, %s):\n", r.Strategy, r.ReferenceDate.Format("2006-01-02"))
	summary += fmt.Sprintf("  Scheduled: %d orders on %d machines, %d production days\n",
		len(r.Orders), len(r.MachineOrders), r.TotalDays)
	summary += fmt.Sprintf("  Utilization: %.1f%%, On-time: %.1f%%\n",
		r.UtilizationRate*100, r.OnTimeRate*100)
	summary += fmt.Sprintf("  Conflicts: %d", len(r.Conflicts))
	return summary
}

// LastEndDate returns the latest end date across scheduled orders
func (r *SchedulingResult) LastEndDate() time.Time {
	var last time.Time
	for _, o := range r.Orders {
		if o.EndDate.After(last) {
			last = o.EndDate
		}
	}
	return last
}

// FilterResult partitions candidate orders into schedulable and excluded
type FilterResult struct {
	Schedulable []entities.ProductionOrder
	Excluded    []ExcludedOrder
}

// ExcludedOrder records an order removed from scheduling and why
type ExcludedOrder struct {
	Order  entities.ProductionOrder
	Reason string
}
