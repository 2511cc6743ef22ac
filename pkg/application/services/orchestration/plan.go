package orchestration

import (
	"time"

	"github.com/vsinha/pipesched/pkg/application/dto"
	"github.com/vsinha/pipesched/pkg/application/services/scheduling"
	"github.com/vsinha/pipesched/pkg/domain/entities"
)

// BuildPlan lays every input order out over the run's date span. Orders
// merged by the scheduler report the schedule of the combined order.
func BuildPlan(
	runID string,
	orders []entities.ProductionOrder,
	filtered dto.FilterResult,
	prioritized []entities.ProductionOrder,
	result *dto.SchedulingResult,
) *dto.ProductionPlan {
	changeover := 0
	if result.Strategy == entities.CapacityFirst {
		changeover = scheduling.ChangeoverDays
	}

	start := result.ReferenceDate
	end := start
	for _, o := range result.Orders {
		if last := o.EndDate.AddDate(0, 0, changeover); last.After(end) {
			end = last
		}
	}
	var dates []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}

	scheduled := make(map[entities.OrderNumber]entities.ProductionOrder)
	for _, o := range result.Orders {
		for _, n := range o.Constituents() {
			scheduled[n] = o
		}
	}
	unplaced := make(map[entities.OrderNumber]string)
	for _, u := range result.Unplaced {
		for _, n := range u.Order.Constituents() {
			unplaced[n] = u.Conflict
		}
	}
	excluded := make(map[entities.OrderNumber]string)
	for _, ex := range filtered.Excluded {
		excluded[ex.Order.OrderNumber] = ex.Reason
	}
	priority := make(map[entities.OrderNumber]entities.Priority)
	for _, o := range prioritized {
		priority[o.OrderNumber] = o.Priority
	}

	rows := make([]dto.PlanRow, 0, len(orders))
	for _, o := range orders {
		row := dto.PlanRow{OrderNumber: o.OrderNumber, Priority: o.Priority}
		if p, ok := priority[o.OrderNumber]; ok {
			row.Priority = p
		}

		if s, ok := scheduled[o.OrderNumber]; ok {
			row.Status = dto.PlanScheduled
			row.MachineID = s.MachineID
			row.MoldID = s.MoldID
			row.StartDate = s.StartDate
			row.EndDate = s.EndDate
			row.Days = productionCells(s, dates, changeover)
		} else {
			if reason, ok := excluded[o.OrderNumber]; ok {
				row.Status = dto.PlanExcluded
				row.Reason = reason
			} else {
				row.Status = dto.PlanUnplaced
				row.Reason = unplaced[o.OrderNumber]
			}
			row.Days = idleCells(dates)
		}
		rows = append(rows, row)
	}

	return &dto.ProductionPlan{
		RunID:     runID,
		StartDate: start,
		EndDate:   end,
		Dates:     dates,
		Rows:      rows,
		Result:    result,
	}
}

func idleCells(dates []time.Time) []dto.DayCell {
	cells := make([]dto.DayCell, len(dates))
	for i, d := range dates {
		cells[i] = dto.DayCell{Date: d, Kind: dto.DayIdle}
	}
	return cells
}

// productionCells spreads the scheduled units over the production days at
// the daily rate and marks the changeover days that follow
func productionCells(o entities.ProductionOrder, dates []time.Time, changeover int) []dto.DayCell {
	cells := idleCells(dates)
	remaining := o.TotalUnits(o.ScheduledQty)
	days := max(o.ScheduledDays, 1)
	perDay := o.DailyRate
	if perDay <= 0 {
		perDay = remaining / entities.Quantity(days)
		if remaining%entities.Quantity(days) != 0 {
			perDay++
		}
	}
	changeoverEnd := o.EndDate.AddDate(0, 0, changeover)

	for i, d := range dates {
		switch {
		case d.Before(o.StartDate):
		case !d.After(o.EndDate):
			units := min(perDay, remaining)
			remaining -= units
			cells[i].Kind = dto.DayProduction
			cells[i].Units = units
		case !d.After(changeoverEnd):
			cells[i].Kind = dto.DayChangeover
		}
	}
	return cells
}
