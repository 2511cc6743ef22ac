package scheduling

import (
	"strings"

	"github.com/vsinha/pipesched/pkg/domain/entities"
)

// CombineOrders merges orders sharing inner diameter, outer diameter and
// priority into one synthetic order so they run without a changeover.
// Groups keep the position of their first member; single orders pass
// through unchanged.
func CombineOrders(orders []entities.ProductionOrder) []entities.ProductionOrder {
	var groups [][]entities.ProductionOrder
	for _, o := range orders {
		placed := false
		for i, g := range groups {
			if sameSpec(g[0], o) {
				groups[i] = append(g, o)
				placed = true
				break
			}
		}
		if !placed {
			groups = append(groups, []entities.ProductionOrder{o})
		}
	}

	combined := make([]entities.ProductionOrder, 0, len(groups))
	for _, g := range groups {
		if len(g) == 1 {
			combined = append(combined, g[0])
			continue
		}
		combined = append(combined, merge(g))
	}
	return combined
}

func sameSpec(a, b entities.ProductionOrder) bool {
	return a.InnerDiameter.Equal(b.InnerDiameter) &&
		a.OuterDiameter.Equal(b.OuterDiameter) &&
		a.Priority == b.Priority
}

// merge pools quantities and stock; quantity resolution later runs on the
// pooled totals, not per constituent.
func merge(group []entities.ProductionOrder) entities.ProductionOrder {
	merged := group[0]
	numbers := make([]entities.OrderNumber, 0, len(group))
	ids := make([]string, 0, len(group))
	for i, o := range group {
		numbers = append(numbers, o.OrderNumber)
		ids = append(ids, string(o.OrderNumber))
		if i == 0 {
			continue
		}
		merged.Quantity += o.Quantity
		merged.ShippedQty += o.ShippedQty
		merged.UnshippedQty += o.UnshippedQty
		merged.StockQty += o.StockQty
		merged.PreProcessedQty += o.PreProcessedQty
		merged.ProductionDays += o.ProductionDays
		if o.HasDeliveryDate() && (!merged.HasDeliveryDate() || o.DeliveryDate.Before(merged.DeliveryDate)) {
			merged.DeliveryDate = o.DeliveryDate
		}
		if o.StockArrivalDate.After(merged.StockArrivalDate) {
			merged.StockArrivalDate = o.StockArrivalDate
		}
	}

	merged.OrderNumber = entities.OrderNumber(strings.Join(ids, "+"))
	return merged.
		WithNotes("combined orders: " + strings.Join(ids, ", ")).
		WithCombined(numbers)
}
