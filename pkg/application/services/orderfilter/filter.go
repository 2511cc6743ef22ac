// Package orderfilter decides which orders take part in scheduling and
// which receive shipping-plan priority.
package orderfilter

import (
	"strings"

	"github.com/vsinha/pipesched/pkg/application/dto"
	"github.com/vsinha/pipesched/pkg/domain/entities"
)

// Exclusion reasons reported with excluded orders
const (
	ReasonFinishedNote = "notes mark the order completed or remanufactured"
	ReasonNoDiameter   = "outer diameter not specified"
	ReasonNoNeed       = "pre-processed quantity covers unshipped quantity"
	ReasonNoRate       = "daily production rate unknown"
)

// finishedMarkers are matched case-insensitively against order notes
var finishedMarkers = []string{
	"completed",
	"已完成",
	"remanufacture",
	"重做",
	"返工",
}

// Filter partitions orders into schedulable and excluded, preserving input
// order in both lists.
func Filter(orders []entities.ProductionOrder) dto.FilterResult {
	result := dto.FilterResult{
		Schedulable: make([]entities.ProductionOrder, 0, len(orders)),
	}
	for _, o := range orders {
		if reason, excluded := ExclusionReason(o); excluded {
			result.Excluded = append(result.Excluded, dto.ExcludedOrder{Order: o, Reason: reason})
			continue
		}
		result.Schedulable = append(result.Schedulable, o)
	}
	return result
}

// ExclusionReason returns the first exclusion rule the order hits
func ExclusionReason(o entities.ProductionOrder) (string, bool) {
	switch {
	case hasFinishedMarker(o.Notes):
		return ReasonFinishedNote, true
	case !o.OuterDiameter.IsPositive():
		return ReasonNoDiameter, true
	case o.PreProcessedQty >= o.UnshippedQty:
		return ReasonNoNeed, true
	case o.DailyRate <= 0:
		return ReasonNoRate, true
	}
	return "", false
}

func hasFinishedMarker(notes string) bool {
	lower := strings.ToLower(notes)
	for _, m := range finishedMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}
