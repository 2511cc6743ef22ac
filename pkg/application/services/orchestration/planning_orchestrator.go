package orchestration

import (
	"context"
	"fmt"

	"github.com/vsinha/pipesched/pkg/application/dto"
	"github.com/vsinha/pipesched/pkg/application/services/orderfilter"
	"github.com/vsinha/pipesched/pkg/application/services/scheduling"
	"github.com/vsinha/pipesched/pkg/domain/entities"
	"github.com/vsinha/pipesched/pkg/domain/repositories"
	"github.com/vsinha/pipesched/pkg/domain/services/assignment"
	"github.com/vsinha/pipesched/pkg/infrastructure/events"
	"github.com/vsinha/pipesched/pkg/infrastructure/table"
)

// PlanningOrchestrator runs one planning pass: merge, filter, prioritize,
// schedule and plan materialization
type PlanningOrchestrator struct {
	machineRepo repositories.MachineRepository
	ruleRepo    repositories.RuleRepository
	eventStore  events.EventStore
}

// NewPlanningOrchestrator creates a new planning orchestrator. eventStore may be nil.
func NewPlanningOrchestrator(
	machineRepo repositories.MachineRepository,
	ruleRepo repositories.RuleRepository,
	eventStore events.EventStore,
) *PlanningOrchestrator {
	return &PlanningOrchestrator{
		machineRepo: machineRepo,
		ruleRepo:    ruleRepo,
		eventStore:  eventStore,
	}
}

// PlanningRequest is the input of one planning run
type PlanningRequest struct {
	Orders       *table.Table
	ShippingPlan *table.Table // optional
	Strategy     entities.Strategy
	Constraints  entities.SchedulingConstraints
}

// PlanningResult contains everything a planning run produced
type PlanningResult struct {
	Plan    *dto.ProductionPlan
	Filter  dto.FilterResult
	Skipped []table.RowError
}

// RunCompletePlanning decodes the order table, merging the shipping plan
// into it when one is given, and plans the decoded orders
func (po *PlanningOrchestrator) RunCompletePlanning(
	ctx context.Context,
	req PlanningRequest,
) (*PlanningResult, error) {
	if req.Orders == nil {
		return nil, fmt.Errorf("no order table provided for planning")
	}

	merged := table.Merge(req.Orders, req.ShippingPlan, table.ColOrderNumber)
	orders, skipped, err := table.DecodeOrders(merged)
	if err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}
	shipping := orderfilter.NewShippingPlan(table.Keys(req.ShippingPlan, table.ColOrderNumber)...)

	result, err := po.PlanOrders(ctx, orders, shipping, req.Strategy, req.Constraints)
	if err != nil {
		return nil, err
	}
	result.Skipped = skipped
	return result, nil
}

// PlanOrders filters, prioritizes and schedules already decoded orders
func (po *PlanningOrchestrator) PlanOrders(
	ctx context.Context,
	orders []entities.ProductionOrder,
	shipping orderfilter.ShippingPlan,
	strategy entities.Strategy,
	constraints entities.SchedulingConstraints,
) (*PlanningResult, error) {
	machines, err := po.machineRepo.GetAllMachines()
	if err != nil {
		return nil, fmt.Errorf("failed to load machines: %w", err)
	}
	rules, err := po.ruleRepo.GetAllRules()
	if err != nil {
		return nil, fmt.Errorf("failed to load rules: %w", err)
	}

	filtered := orderfilter.Filter(orders)
	prioritized := orderfilter.Prioritize(filtered.Schedulable, shipping)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	scheduler := scheduling.NewScheduler(assignment.NewEngine(rules))
	result, err := scheduler.Schedule(strategy, prioritized, machines, constraints)
	if err != nil {
		return nil, fmt.Errorf("failed to schedule orders: %w", err)
	}

	plan := BuildPlan(events.NewRunID(), orders, filtered, prioritized, result)
	if err := po.recordRun(plan, filtered, len(orders)); err != nil {
		return nil, err
	}

	return &PlanningResult{Plan: plan, Filter: filtered}, nil
}

func (po *PlanningOrchestrator) recordRun(plan *dto.ProductionPlan, filtered dto.FilterResult, total int) error {
	if po.eventStore == nil {
		return nil
	}
	stream := events.RunStream(plan.RunID)
	result := plan.Result

	var batch []events.Event
	batch = append(batch, events.NewEvent(events.RunStartedEvent, stream, events.RunStarted{
		RunID:         plan.RunID,
		Strategy:      result.Strategy.String(),
		ReferenceDate: result.ReferenceDate,
		Orders:        total,
	}))
	for _, ex := range filtered.Excluded {
		batch = append(batch, events.NewEvent(events.OrderExcludedEvent, stream, events.OrderExcluded{
			OrderNumber: ex.Order.OrderNumber,
			Reason:      ex.Reason,
		}))
	}
	for _, o := range result.Orders {
		batch = append(batch, events.NewEvent(events.OrderPlacedEvent, stream, events.OrderPlaced{
			OrderNumber: o.OrderNumber,
			MachineID:   o.MachineID,
			MoldID:      o.MoldID,
			StartDate:   o.StartDate,
			EndDate:     o.EndDate,
			Quantity:    o.ScheduledQty,
		}))
	}
	for _, c := range result.Conflicts {
		batch = append(batch, events.NewEvent(events.OrderConflictEvent, stream, events.OrderConflict{Message: c}))
	}
	batch = append(batch, events.NewEvent(events.RunCompletedEvent, stream, events.RunCompleted{
		RunID:           plan.RunID,
		Scheduled:       len(result.Orders),
		Excluded:        len(filtered.Excluded),
		Conflicts:       len(result.Conflicts),
		TotalDays:       result.TotalDays,
		UtilizationRate: result.UtilizationRate,
		OnTimeRate:      result.OnTimeRate,
	}))

	for _, e := range batch {
		if err := po.eventStore.AppendEvent(stream, e); err != nil {
			return fmt.Errorf("failed to record %s event: %w", e.Type(), err)
		}
	}
	return nil
}

// GetSummary returns a formatted summary of the planning results
func (result *PlanningResult) GetSummary() string {
	counts := map[dto.PlanStatus]int{}
	for _, row := range result.Plan.Rows {
		counts[row.Status]++
	}
	summary := fmt.Sprintf("Planning Summary (run %s):\n", result.Plan.RunID)
	summary += fmt.Sprintf("  Orders: %d scheduled, %d excluded, %d unplaced, %d rows skipped\n",
		counts[dto.PlanScheduled], counts[dto.PlanExcluded], counts[dto.PlanUnplaced], len(result.Skipped))
	summary += result.Plan.Result.Summary()
	return summary
}
