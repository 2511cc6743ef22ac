package table

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vsinha/pipesched/pkg/domain/entities"
	"github.com/vsinha/pipesched/pkg/domain/services/specparser"
)

// DateLayouts are the accepted date formats, tried in order
var DateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006-01-02 15:04:05",
	"2006.01.02",
}

// RowError describes a row that was skipped during decoding
type RowError struct {
	Row int // 1-based data row number, header excluded
	Err error
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

// DecodeOrders converts every row into a ProductionOrder. Rows that cannot
// be interpreted are logged, reported and skipped; malformed optional cells
// fall back to zero values.
func DecodeOrders(t *Table) ([]entities.ProductionOrder, []RowError, error) {
	if !t.Has(ColOrderNumber...) {
		return nil, nil, fmt.Errorf("%w: %s", ErrMissingColumn, ColOrderNumber[0])
	}
	if !t.Has(ColOuterDiameter...) && !t.Has(ColCustomerModel...) {
		return nil, nil, fmt.Errorf("%w: %s or %s", ErrMissingColumn, ColOuterDiameter[0], ColCustomerModel[0])
	}

	orders := make([]entities.ProductionOrder, 0, t.Len())
	var skipped []RowError
	for i := 0; i < t.Len(); i++ {
		order, err := decodeRow(t, i)
		if err != nil {
			rowErr := RowError{Row: i + 1, Err: err}
			log.Printf("table: skipping %v", rowErr)
			skipped = append(skipped, rowErr)
			continue
		}
		orders = append(orders, order)
	}
	return orders, skipped, nil
}

func decodeRow(t *Table, i int) (entities.ProductionOrder, error) {
	number := t.Value(i, ColOrderNumber...)
	if number == "" {
		return entities.ProductionOrder{}, fmt.Errorf("order number is blank")
	}

	quantity, err := requiredQuantity(t.Value(i, ColQuantity...))
	if err != nil {
		return entities.ProductionOrder{}, fmt.Errorf("quantity: %w", err)
	}
	shipped := ParseQuantity(t.Value(i, ColShipped...))

	inner := ParseDecimal(t.Value(i, ColInnerDiameter...))
	outer := ParseDecimal(t.Value(i, ColOuterDiameter...))
	model := t.Value(i, ColCustomerModel...)
	if !outer.IsPositive() {
		if spec, ok := specparser.ParseModelCode(model); ok {
			inner, outer = spec.InnerDiameter, spec.OuterDiameter
		}
	}

	base, err := entities.NewProductionOrder(
		entities.OrderNumber(number),
		inner.Abs(),
		outer.Abs(),
		max(quantity, 0),
		ParseQuantity(t.Value(i, ColSegments...)),
		ParseQuantity(t.Value(i, ColDailyRate...)),
	)
	if err != nil {
		return entities.ProductionOrder{}, err
	}
	order := *base

	order.ShippedQty = shipped
	order.UnshippedQty = quantity - shipped
	if t.Has(ColUnshipped...) && t.Value(i, ColUnshipped...) != "" {
		order.UnshippedQty = ParseQuantity(t.Value(i, ColUnshipped...))
	}
	order.ProductionDays = int(ParseQuantity(t.Value(i, ColProductionDays...)))
	order.StockQty = ParseQuantity(t.Value(i, ColStock...))
	order.StockArrivalDate = ParseDate(t.Value(i, ColStockArrival...))
	order.PreProcessedQty = ParseQuantity(t.Value(i, ColPreProcessed...))
	order.DeliveryDate = ParseDate(t.Value(i, ColDeliveryDate...))
	order.Notes = t.Value(i, ColNotes...)
	order.CustomerModel = model

	if strings.EqualFold(t.Value(i, ColShippingPlanTag...), mergedMarker) {
		order.ShippingPlan = entities.ShippingPlanInfo{
			ContractNumber: t.Value(i, ColContractNumber...),
			CustomerName:   t.Value(i, ColCustomerName...),
			CustomerModel:  model,
			Salesperson:    t.Value(i, ColSalesperson...),
			DeliveryDate:   t.Value(i, ColDeliveryDate...),
		}
	}
	return order, nil
}

// ParseDecimal reads a numeric cell; blank or malformed cells are zero
func ParseDecimal(s string) decimal.Decimal {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseQuantity reads an integer cell, truncating fractions; blank or
// malformed cells are zero
func ParseQuantity(s string) entities.Quantity {
	return entities.Quantity(ParseDecimal(s).IntPart())
}

// ParseDate tries each of DateLayouts and returns the date at midnight UTC,
// or the zero time when none applies
func ParseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range DateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
		}
	}
	return time.Time{}
}

func requiredQuantity(s string) (entities.Quantity, error) {
	clean := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if clean == "" {
		return 0, nil
	}
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	return entities.Quantity(d.IntPart()), nil
}
