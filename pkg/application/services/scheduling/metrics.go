package scheduling

import (
	"github.com/vsinha/pipesched/pkg/application/dto"
	"github.com/vsinha/pipesched/pkg/domain/entities"
)

// applyMetrics fills total days, utilization and on-time rate from the
// scheduled orders
func applyMetrics(result *dto.SchedulingResult, machines []entities.Machine) {
	var totalDays int
	var produced float64
	onTime := 0
	for _, o := range result.Orders {
		totalDays += o.ScheduledDays
		produced += float64(o.ScheduledDays) * float64(o.DailyRate)
		if !o.HasDeliveryDate() || !o.EndDate.After(o.DeliveryDate) {
			onTime++
		}
	}
	result.TotalDays = totalDays

	var capacity float64
	for _, m := range machines {
		capacity += float64(m.DailyCapacity)
	}
	if capacity > 0 {
		result.UtilizationRate = produced / capacity
	}

	if len(result.Orders) > 0 {
		result.OnTimeRate = float64(onTime) / float64(len(result.Orders))
	}
}
