package main

import (
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vsinha/pipesched/pkg/application/services/orderfilter"
	"github.com/vsinha/pipesched/pkg/application/services/scheduling"
	"github.com/vsinha/pipesched/pkg/domain/entities"
	"github.com/vsinha/pipesched/pkg/domain/services/assignment"
	"github.com/vsinha/pipesched/pkg/infrastructure/config"
)

func main() {
	catalogue := config.DefaultCatalogue()
	engine := assignment.NewEngine(catalogue.BuildRules())
	scheduler := scheduling.NewScheduler(engine)

	delivery := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	orders := []entities.ProductionOrder{
		mustOrder("WM-1001", 130, 154, 120, 40, delivery),
		mustOrder("WM-1002", 130, 154, 80, 40, delivery.AddDate(0, 0, 7)),
		mustOrder("WM-1003", 200, 217, 60, 20, delivery.AddDate(0, 0, -20)),
		mustOrder("WM-1004", 560, 600, 30, 10, time.Time{}),
	}

	filtered := orderfilter.Filter(orders)
	prioritized := orderfilter.Prioritize(filtered.Schedulable, orderfilter.NewShippingPlan("WM-1003"))

	constraints := entities.DefaultConstraints()
	constraints.ReferenceDate = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	fmt.Println("🏭 Scheduling water main orders...")
	for _, strategy := range []entities.Strategy{entities.CapacityFirst, entities.TimeFirst} {
		result, err := scheduler.Schedule(strategy, prioritized, catalogue.BuildMachines(), constraints)
		if err != nil {
			log.Fatalf("schedule: %v", err)
		}

		fmt.Println()
		fmt.Println(result.Summary())
		for _, o := range result.Orders {
			fmt.Printf("  %-18s machine %s mold %-6s %s to %s (%d units)\n",
				o.OrderNumber, o.MachineID, o.MoldID,
				o.StartDate.Format("2006-01-02"), o.EndDate.Format("2006-01-02"),
				o.TotalUnits(o.ScheduledQty))
		}
		for _, c := range result.Conflicts {
			fmt.Printf("  ⚠️  %s\n", c)
		}
	}
}

func mustOrder(number string, inner, outer int64, qty, rate entities.Quantity, delivery time.Time) entities.ProductionOrder {
	o, err := entities.NewProductionOrder(
		entities.OrderNumber(number),
		decimal.NewFromInt(inner),
		decimal.NewFromInt(outer),
		qty, 1, rate,
	)
	if err != nil {
		panic(err)
	}
	order := *o
	order.StockQty = qty
	order.DeliveryDate = delivery
	return order
}
