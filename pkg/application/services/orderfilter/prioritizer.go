package orderfilter

import "github.com/vsinha/pipesched/pkg/domain/entities"

// ShippingPlan is the set of order numbers present in the shipping plan source
type ShippingPlan map[entities.OrderNumber]bool

// NewShippingPlan builds a ShippingPlan from order numbers
func NewShippingPlan(orderNumbers ...entities.OrderNumber) ShippingPlan {
	plan := make(ShippingPlan, len(orderNumbers))
	for _, n := range orderNumbers {
		plan[n] = true
	}
	return plan
}

// Contains reports whether the order corresponds to a shipping plan row,
// either by order number or by carrying shipping-plan-only fields.
func (p ShippingPlan) Contains(o entities.ProductionOrder) bool {
	return p[o.OrderNumber] || o.ShippingPlan.HasAny()
}

// Prioritize returns copies of the orders with shipping-plan orders set to
// Urgent and every other order set to Low, overwriting any earlier priority.
func Prioritize(orders []entities.ProductionOrder, plan ShippingPlan) []entities.ProductionOrder {
	prioritized := make([]entities.ProductionOrder, len(orders))
	for i, o := range orders {
		if plan.Contains(o) {
			prioritized[i] = o.WithPriority(entities.Urgent)
		} else {
			prioritized[i] = o.WithPriority(entities.Low)
		}
	}
	return prioritized
}
