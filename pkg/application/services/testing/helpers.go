package testing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vsinha/pipesched/pkg/domain/entities"
	"github.com/vsinha/pipesched/pkg/infrastructure/config"
	"github.com/vsinha/pipesched/pkg/infrastructure/repositories/memory"
)

// ReferenceDate is the fixed "today" used by scenario tests
var ReferenceDate = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

// MustCreateOrder is a helper for tests - panics on validation error.
// Stock covers the full quantity unless changed by the caller.
func MustCreateOrder(number string, inner, outer int64, qty, dailyRate entities.Quantity) entities.ProductionOrder {
	order, err := entities.NewProductionOrder(
		entities.OrderNumber(number),
		decimal.NewFromInt(inner),
		decimal.NewFromInt(outer),
		qty,
		1,
		dailyRate,
	)
	if err != nil {
		panic(err)
	}
	order.StockQty = qty
	return *order
}

// MustCreateMachine is a helper for tests - panics on validation error
func MustCreateMachine(id string, dailyCapacity entities.Quantity) entities.Machine {
	machine, err := entities.NewMachine(entities.MachineID(id), "", dailyCapacity, 1)
	if err != nil {
		panic(err)
	}
	return *machine
}

// TestConstraints returns the default constraints pinned to ReferenceDate
func TestConstraints() entities.SchedulingConstraints {
	constraints := entities.DefaultConstraints()
	constraints.ReferenceDate = ReferenceDate
	return constraints
}

// BuildDefaultTestData loads the built-in catalogue into memory repositories
func BuildDefaultTestData() (*memory.MachineRepository, *memory.RuleRepository) {
	catalogue := config.DefaultCatalogue()
	machines := catalogue.BuildMachines()
	rules := catalogue.BuildRules()

	machineRepo := memory.NewMachineRepository(len(machines))
	if err := machineRepo.LoadMachines(machines); err != nil {
		panic(err)
	}
	ruleRepo := memory.NewRuleRepository(len(rules))
	if err := ruleRepo.LoadRules(rules); err != nil {
		panic(err)
	}
	return machineRepo, ruleRepo
}
