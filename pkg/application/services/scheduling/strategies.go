package scheduling

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/vsinha/pipesched/pkg/domain/entities"
)

// scheduleCapacityFirst groups same-specification orders to save changeovers
// and fills machines in cursor order, leaving a changeover day after each run.
func scheduleCapacityFirst(r *run, orders []entities.ProductionOrder) {
	sorted := slices.Clone(orders)
	slices.SortStableFunc(sorted, func(a, b entities.ProductionOrder) int {
		return cmp.Or(
			cmp.Compare(b.Priority, a.Priority),
			compareBoolDesc(a.StockSufficient(), b.StockSufficient()),
			compareBoolDesc(a.StockArrived(r.today), b.StockArrived(r.today)),
			compareDeliveryAsc(a, b),
		)
	})

	for _, order := range CombineOrders(sorted) {
		r.place(order, order.ResolvedQuantity(), ChangeoverDays, pickEarliestCursor, nil)
	}
}

// scheduleTimeFirst works through orders by delivery date and refuses any
// placement that would finish after the delivery date when deadlines are respected.
func scheduleTimeFirst(r *run, orders []entities.ProductionOrder) {
	sorted := slices.Clone(orders)
	slices.SortStableFunc(sorted, func(a, b entities.ProductionOrder) int {
		return cmp.Or(
			compareDeliveryAsc(a, b),
			compareBoolDesc(a.StockSufficient(), b.StockSufficient()),
			compareBoolDesc(a.StockArrived(r.today), b.StockArrived(r.today)),
		)
	})

	for _, order := range sorted {
		var accept func(time.Time) error
		if r.constraints.RespectDeadlines && order.HasDeliveryDate() {
			delivery := order.DeliveryDate
			accept = func(end time.Time) error {
				if end.After(delivery) {
					return fmt.Errorf("end date %s is after delivery date %s",
						end.Format("2006-01-02"), delivery.Format("2006-01-02"))
				}
				return nil
			}
		}
		r.place(order, order.ResolvedQuantity(), 0, pickLowestWait, accept)
	}
}

// scheduleOrderFirst places every Urgent order before any other order
func scheduleOrderFirst(r *run, orders []entities.ProductionOrder) {
	var urgent, rest []entities.ProductionOrder
	for _, o := range orders {
		if o.Priority == entities.Urgent {
			urgent = append(urgent, o)
		} else {
			rest = append(rest, o)
		}
	}

	byNeed := func(a, b entities.ProductionOrder) int {
		return cmp.Or(
			compareDeliveryAsc(a, b),
			compareBoolDesc(a.StockSufficient(), b.StockSufficient()),
			compareBoolDesc(a.StockArrived(r.today), b.StockArrived(r.today)),
			cmp.Compare(b.UnshippedQty, a.UnshippedQty),
		)
	}
	slices.SortStableFunc(urgent, byNeed)
	slices.SortStableFunc(rest, byNeed)

	for _, order := range append(urgent, rest...) {
		r.place(order, order.ResolvedQuantity(), 0, pickLowestWait, nil)
	}
}

// scheduleBalanced orders by a composite weight and schedules the requested
// quantity without stock resolution
func scheduleBalanced(r *run, orders []entities.ProductionOrder) {
	var maxQty entities.Quantity
	for _, o := range orders {
		maxQty = max(maxQty, o.Quantity)
	}

	type weighted struct {
		order  entities.ProductionOrder
		weight float64
	}
	items := make([]weighted, len(orders))
	for i, o := range orders {
		items[i] = weighted{order: o, weight: BalancedWeight(o, maxQty, r.today)}
	}
	slices.SortStableFunc(items, func(a, b weighted) int {
		return cmp.Compare(b.weight, a.weight)
	})

	for _, it := range items {
		r.place(it.order, it.order.Quantity, 0, pickLowestWait, nil)
	}
}

// BalancedWeight is priority × urgency × relative quantity × stock × arrival
func BalancedWeight(o entities.ProductionOrder, maxQty entities.Quantity, today time.Time) float64 {
	urgency := 1.0
	if o.HasDeliveryDate() && !o.DeliveryDate.After(today.AddDate(0, 0, 3)) {
		urgency = 2.0
	}

	share := 0.0
	if maxQty > 0 {
		share = float64(o.Quantity) / float64(maxQty)
	}

	pipe := 0.5
	if o.StockSufficient() {
		pipe = 2.0
	}

	arrival := 0.8
	if o.StockArrived(today) {
		arrival = 1.5
	}

	return o.Priority.Weight() * urgency * share * pipe * arrival
}

func compareBoolDesc(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return -1
	default:
		return 1
	}
}

// compareDeliveryAsc sorts earlier delivery first; orders without a
// delivery date sort last
func compareDeliveryAsc(a, b entities.ProductionOrder) int {
	switch {
	case !a.HasDeliveryDate() && !b.HasDeliveryDate():
		return 0
	case !a.HasDeliveryDate():
		return 1
	case !b.HasDeliveryDate():
		return -1
	}
	return a.DeliveryDate.Compare(b.DeliveryDate)
}
