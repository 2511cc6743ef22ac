package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/pipesched/pkg/domain/entities"
)

func TestCombineOrders(t *testing.T) {
	a := mkOrder("A", 120, 137, 100, 50)
	a.DeliveryDate = date(time.March, 20)
	b := mkOrder("B", 130, 154, 10, 50)
	c := mkOrder("C", 120, 137, 60, 50)
	c.DeliveryDate = date(time.March, 12)
	c.StockQty = 0
	c.PreProcessedQty = 5
	d := mkOrder("D", 120, 137, 10, 50)
	d.Priority = entities.Urgent

	combined := CombineOrders([]entities.ProductionOrder{a, b, c, d})

	require.Len(t, combined, 3)

	merged := combined[0]
	assert.Equal(t, entities.OrderNumber("A+C"), merged.OrderNumber)
	assert.Equal(t, "combined orders: A, C", merged.Notes)
	assert.Equal(t, entities.Quantity(160), merged.Quantity)
	assert.Equal(t, entities.Quantity(160), merged.UnshippedQty)
	assert.Equal(t, entities.Quantity(100), merged.StockQty)
	assert.Equal(t, entities.Quantity(5), merged.PreProcessedQty)
	assert.Equal(t, date(time.March, 12), merged.DeliveryDate, "earliest delivery wins")

	assert.Equal(t, entities.OrderNumber("B"), combined[1].OrderNumber)
	assert.Equal(t, []entities.OrderNumber{"B"}, combined[1].Constituents())
	assert.Equal(t, entities.OrderNumber("D"), combined[2].OrderNumber, "different priority is not merged")

	// sources are untouched
	assert.Equal(t, entities.Quantity(100), a.Quantity)
	assert.Empty(t, a.Notes)
}
