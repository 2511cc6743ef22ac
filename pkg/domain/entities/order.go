package entities

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OrderNumber is the external business key of a production order
type OrderNumber string

// Quantity represents an integer quantity value for discrete production units
type Quantity int64

// MaxProductionDays bounds a single production run. Longer runs cannot be
// placed on a calendar.
const MaxProductionDays = 1_000_000

// Priority represents the scheduling priority of an order. Higher values win.
type Priority int

const (
	Low Priority = iota + 1
	Medium
	High
	Urgent
)

// String method for Priority enum
func (p Priority) String() string {
	switch p {
	case Low:
		return "Low"
	case Medium:
		return "Medium"
	case High:
		return "High"
	case Urgent:
		return "Urgent"
	default:
		return "Unknown"
	}
}

// Weight returns the balanced-strategy weight of the priority (4/3/2/1)
func (p Priority) Weight() float64 {
	switch p {
	case Urgent:
		return 4
	case High:
		return 3
	case Medium:
		return 2
	default:
		return 1
	}
}

// OrderStatus represents the lifecycle state of a production order
type OrderStatus int

const (
	Pending OrderStatus = iota
	InProduction
	Completed
	Cancelled
)

// String method for OrderStatus enum
func (s OrderStatus) String() string {
	switch s {
	case Pending:
		return "Pending"
	case InProduction:
		return "InProduction"
	case Completed:
		return "Completed"
	case Cancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// ShippingPlanInfo holds the fields only a shipping plan row can supply
type ShippingPlanInfo struct {
	ContractNumber string
	CustomerName   string
	CustomerModel  string
	Salesperson    string
	DeliveryDate   string
}

// HasAny reports whether any shipping plan field is non-blank
func (s ShippingPlanInfo) HasAny() bool {
	for _, v := range []string{s.ContractNumber, s.CustomerName, s.CustomerModel, s.Salesperson, s.DeliveryDate} {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}

// ProductionOrder represents one pipe production run.
//
// Orders are values: pipeline stages derive new orders through the With*
// methods and never modify an order they were handed.
type ProductionOrder struct {
	OrderNumber      OrderNumber
	InnerDiameter    decimal.Decimal // zero means unconstrained
	OuterDiameter    decimal.Decimal
	Quantity         Quantity
	Segments         Quantity
	DailyRate        Quantity
	ProductionDays   int
	ShippedQty       Quantity
	UnshippedQty     Quantity
	StockQty         Quantity
	StockArrivalDate time.Time
	PreProcessedQty  Quantity
	DeliveryDate     time.Time
	Notes            string
	CustomerModel    string
	ShippingPlan     ShippingPlanInfo
	Priority         Priority
	Status           OrderStatus
	MachineID        MachineID
	MoldID           string
	StartDate        time.Time
	EndDate          time.Time
	ScheduledQty     Quantity
	ScheduledDays    int
	CombinedFrom     []OrderNumber
}

// NewProductionOrder creates a validated ProductionOrder with Medium priority
func NewProductionOrder(
	orderNumber OrderNumber,
	innerDiameter, outerDiameter decimal.Decimal,
	quantity, segments, dailyRate Quantity,
) (*ProductionOrder, error) {
	if strings.TrimSpace(string(orderNumber)) == "" {
		return nil, fmt.Errorf("order number cannot be empty")
	}
	if innerDiameter.IsNegative() {
		return nil, fmt.Errorf("inner diameter cannot be negative, got %s", innerDiameter)
	}
	if outerDiameter.IsNegative() {
		return nil, fmt.Errorf("outer diameter cannot be negative, got %s", outerDiameter)
	}
	if quantity < 0 {
		return nil, fmt.Errorf("quantity cannot be negative, got %d", quantity)
	}
	if segments <= 0 {
		segments = 1
	}

	return &ProductionOrder{
		OrderNumber:   orderNumber,
		InnerDiameter: innerDiameter,
		OuterDiameter: outerDiameter,
		Quantity:      quantity,
		Segments:      segments,
		DailyRate:     dailyRate,
		UnshippedQty:  quantity,
		Priority:      Medium,
		Status:        Pending,
	}, nil
}

// StockSufficient reports whether pipe stock on hand covers the unshipped quantity
func (o ProductionOrder) StockSufficient() bool {
	return o.StockQty >= o.UnshippedQty
}

// StockArrived reports whether raw stock is already on hand at the reference date.
// Without an arrival date, any positive stock counts as arrived.
func (o ProductionOrder) StockArrived(ref time.Time) bool {
	if o.StockArrivalDate.IsZero() {
		return o.StockQty > 0
	}
	return !o.StockArrivalDate.After(ref)
}

// ResolvedQuantity returns the quantity to schedule given the pipe stock on hand
func (o ProductionOrder) ResolvedQuantity() Quantity {
	switch {
	case o.StockQty >= o.UnshippedQty:
		return o.UnshippedQty
	case o.StockQty <= 0:
		remaining := o.UnshippedQty - max(o.PreProcessedQty, 0)
		if remaining < 0 {
			return 0
		}
		return remaining
	default:
		return min(o.StockQty, o.UnshippedQty)
	}
}

// TotalUnits multiplies a quantity by the order's segment count, saturating
// at math.MaxInt64
func (o ProductionOrder) TotalUnits(qty Quantity) Quantity {
	segments := o.Segments
	if segments <= 0 {
		segments = 1
	}
	if qty > Quantity(math.MaxInt64)/segments {
		return Quantity(math.MaxInt64)
	}
	return qty * segments
}

// DaysFor returns the production days needed for the given quantity. The
// result is clamped to MaxProductionDays+1 so callers can reject it.
func (o ProductionOrder) DaysFor(qty Quantity) int {
	if o.DailyRate <= 0 {
		return o.ProductionDays
	}
	units := o.TotalUnits(qty)
	days := units / o.DailyRate
	if units%o.DailyRate != 0 {
		days++
	}
	if days > MaxProductionDays {
		return MaxProductionDays + 1
	}
	return int(days)
}

// HasDeliveryDate reports whether the order carries a delivery commitment
func (o ProductionOrder) HasDeliveryDate() bool {
	return !o.DeliveryDate.IsZero()
}

// WithPriority returns a copy of the order with the given priority
func (o ProductionOrder) WithPriority(p Priority) ProductionOrder {
	o.Priority = p
	return o
}

// WithStatus returns a copy of the order with the given lifecycle status
func (o ProductionOrder) WithStatus(s OrderStatus) ProductionOrder {
	o.Status = s
	return o
}

// WithNotes returns a copy of the order with replaced notes
func (o ProductionOrder) WithNotes(notes string) ProductionOrder {
	o.Notes = notes
	return o
}

// WithSchedule returns a copy of the order placed on a machine
func (o ProductionOrder) WithSchedule(
	machineID MachineID,
	moldID string,
	start, end time.Time,
	qty Quantity,
	days int,
) ProductionOrder {
	o.MachineID = machineID
	o.MoldID = moldID
	o.StartDate = start
	o.EndDate = end
	o.ScheduledQty = qty
	o.ScheduledDays = days
	return o
}

// WithCombined returns a copy of the order recording the orders merged into it
func (o ProductionOrder) WithCombined(numbers []OrderNumber) ProductionOrder {
	o.CombinedFrom = append([]OrderNumber(nil), numbers...)
	return o
}

// Constituents returns the source order numbers this order stands for
func (o ProductionOrder) Constituents() []OrderNumber {
	if len(o.CombinedFrom) > 0 {
		return o.CombinedFrom
	}
	return []OrderNumber{o.OrderNumber}
}

// IsScheduled reports whether the order has been placed on a machine
func (o ProductionOrder) IsScheduled() bool {
	return o.MachineID != "" && !o.StartDate.IsZero()
}
