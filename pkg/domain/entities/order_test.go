package entities

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestProductionOrder_Validation(t *testing.T) {
	order, err := NewProductionOrder("SO-1", decimal.NewFromInt(120), decimal.NewFromInt(137), 100, 0, 20)
	if err != nil {
		t.Fatalf("Expected valid order creation to succeed: %v", err)
	}
	if order.Segments != 1 {
		t.Errorf("Expected segments to default to 1, got %d", order.Segments)
	}
	if order.UnshippedQty != 100 {
		t.Errorf("Expected unshipped quantity 100, got %d", order.UnshippedQty)
	}
	if order.Priority != Medium || order.Status != Pending {
		t.Errorf("Expected Medium/Pending, got %s/%s", order.Priority, order.Status)
	}

	testCases := []struct {
		name        string
		number      OrderNumber
		inner       decimal.Decimal
		outer       decimal.Decimal
		quantity    Quantity
		expectError string
	}{
		{"empty order number", " ", decimal.Zero, decimal.NewFromInt(90), 1, "order number cannot be empty"},
		{"negative inner", "SO", decimal.NewFromInt(-1), decimal.NewFromInt(90), 1, "inner diameter cannot be negative, got -1"},
		{"negative outer", "SO", decimal.Zero, decimal.NewFromInt(-90), 1, "outer diameter cannot be negative, got -90"},
		{"negative quantity", "SO", decimal.Zero, decimal.NewFromInt(90), -1, "quantity cannot be negative, got -1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewProductionOrder(tc.number, tc.inner, tc.outer, tc.quantity, 1, 10)
			if err == nil {
				t.Fatalf("Expected error for %s, but got none", tc.name)
			}
			if err.Error() != tc.expectError {
				t.Errorf("Expected error '%s', got '%s'", tc.expectError, err.Error())
			}
		})
	}
}

func TestProductionOrder_ResolvedQuantity(t *testing.T) {
	testCases := []struct {
		name         string
		stock        Quantity
		unshipped    Quantity
		preProcessed Quantity
		expected     Quantity
	}{
		{"stock covers need", 150, 100, 0, 100},
		{"stock exactly covers need", 100, 100, 40, 100},
		{"no stock uses remaining need", 0, 100, 30, 70},
		{"negative stock uses remaining need", -5, 100, 30, 70},
		{"no stock and fully pre-processed", 0, 100, 120, 0},
		{"partial stock", 40, 100, 30, 40},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			o := ProductionOrder{StockQty: tc.stock, UnshippedQty: tc.unshipped, PreProcessedQty: tc.preProcessed}
			got := o.ResolvedQuantity()
			if got != tc.expected {
				t.Errorf("Expected %d, got %d", tc.expected, got)
			}
			if got > o.UnshippedQty {
				t.Errorf("Resolved quantity %d exceeds unshipped %d", got, o.UnshippedQty)
			}
		})
	}
}

func TestProductionOrder_ResolvedQuantityNeverExceedsUnshipped(t *testing.T) {
	for stock := Quantity(-10); stock <= 120; stock += 7 {
		for pre := Quantity(-5); pre <= 120; pre += 11 {
			o := ProductionOrder{StockQty: stock, UnshippedQty: 100, PreProcessedQty: pre}
			if got := o.ResolvedQuantity(); got > 100 || got < 0 {
				t.Fatalf("stock=%d pre=%d: resolved %d outside [0, 100]", stock, pre, got)
			}
		}
	}
}

func TestProductionOrder_DaysFor(t *testing.T) {
	o := ProductionOrder{Segments: 3, DailyRate: 100, ProductionDays: 9}
	if days := o.DaysFor(70); days != 3 {
		t.Errorf("Expected ceil(210/100)=3 days, got %d", days)
	}
	if days := o.DaysFor(100); days != 3 {
		t.Errorf("Expected 3 days, got %d", days)
	}

	o.DailyRate = 0
	if days := o.DaysFor(70); days != 9 {
		t.Errorf("Expected stated production days 9 without a rate, got %d", days)
	}
}

func TestProductionOrder_DaysForLargeQuantities(t *testing.T) {
	o := ProductionOrder{Segments: 1 << 40, DailyRate: 1}
	if units := o.TotalUnits(1 << 40); units != Quantity(math.MaxInt64) {
		t.Errorf("Expected saturated unit count, got %d", units)
	}
	if days := o.DaysFor(1 << 40); days != MaxProductionDays+1 {
		t.Errorf("Expected days clamped to %d, got %d", MaxProductionDays+1, days)
	}

	o = ProductionOrder{Segments: 1, DailyRate: 1}
	if days := o.DaysFor(200000); days != 200000 {
		t.Errorf("Expected 200000 days, got %d", days)
	}
	if days := o.DaysFor(Quantity(math.MaxInt64)); days != MaxProductionDays+1 {
		t.Errorf("Expected days clamped for max quantity, got %d", days)
	}
}

func TestProductionOrder_StockFlags(t *testing.T) {
	ref := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	o := ProductionOrder{StockQty: 10, UnshippedQty: 10}
	if !o.StockSufficient() {
		t.Error("Expected stock to be sufficient")
	}
	if !o.StockArrived(ref) {
		t.Error("Expected stock on hand without arrival date to count as arrived")
	}

	o.StockArrivalDate = ref.AddDate(0, 0, 1)
	if o.StockArrived(ref) {
		t.Error("Expected future arrival not to count as arrived")
	}

	o.StockQty = 0
	o.StockArrivalDate = time.Time{}
	if o.StockSufficient() || o.StockArrived(ref) {
		t.Error("Expected no stock to be neither sufficient nor arrived")
	}
}

func TestProductionOrder_WithMethodsCopy(t *testing.T) {
	original := ProductionOrder{OrderNumber: "SO-1", Priority: Medium}
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	urgent := original.WithPriority(Urgent)
	placed := urgent.WithSchedule("2", "M2-01", start, start.AddDate(0, 0, 2), 50, 3)

	if original.Priority != Medium {
		t.Errorf("Expected original priority unchanged, got %s", original.Priority)
	}
	if original.IsScheduled() || urgent.IsScheduled() {
		t.Error("Expected earlier stages to stay unscheduled")
	}
	if !placed.IsScheduled() || placed.OrderNumber != "SO-1" || placed.Priority != Urgent {
		t.Errorf("Unexpected placed order: %+v", placed)
	}
	if got := placed.Constituents(); len(got) != 1 || got[0] != "SO-1" {
		t.Errorf("Expected constituents [SO-1], got %v", got)
	}
}

func TestShippingPlanInfo_HasAny(t *testing.T) {
	if (ShippingPlanInfo{Salesperson: "  "}).HasAny() {
		t.Error("Expected blank fields not to count")
	}
	if !(ShippingPlanInfo{CustomerModel: "GX-226/204-A1"}).HasAny() {
		t.Error("Expected customer model to count")
	}
}

func TestParseStrategy(t *testing.T) {
	for _, s := range []Strategy{CapacityFirst, TimeFirst, OrderFirst, Balanced} {
		got, err := ParseStrategy(s.String())
		if err != nil || got != s {
			t.Errorf("ParseStrategy(%q) = %v, %v", s.String(), got, err)
		}
	}
	if _, err := ParseStrategy("fastest"); err == nil {
		t.Error("Expected error for unknown strategy")
	}
}
