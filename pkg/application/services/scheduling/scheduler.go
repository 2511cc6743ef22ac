// Package scheduling places filtered, prioritized orders onto machine
// timelines using one of four strategies.
package scheduling

import (
	"fmt"
	"math"
	"time"

	"github.com/vsinha/pipesched/pkg/application/dto"
	"github.com/vsinha/pipesched/pkg/domain/entities"
	"github.com/vsinha/pipesched/pkg/domain/services/assignment"
)

// ChangeoverDays is the gap capacity-first scheduling leaves after each
// order for the combined mold and pipe changeover.
const ChangeoverDays = 1

// strategyFunc is one scheduling algorithm. It receives the run state and
// the orders in input order.
type strategyFunc func(r *run, orders []entities.ProductionOrder)

var strategies = map[entities.Strategy]strategyFunc{
	entities.CapacityFirst: scheduleCapacityFirst,
	entities.TimeFirst:     scheduleTimeFirst,
	entities.OrderFirst:    scheduleOrderFirst,
	entities.Balanced:      scheduleBalanced,
}

// Scheduler runs scheduling strategies against a rule table. It keeps no
// per-run state and may be shared between goroutines.
type Scheduler struct {
	engine *assignment.Engine
}

// NewScheduler creates a scheduler using the given assignment engine
func NewScheduler(engine *assignment.Engine) *Scheduler {
	return &Scheduler{engine: engine}
}

// Schedule places orders on machines with the selected strategy. Orders
// that cannot be placed are reported in Conflicts; it never fails on data.
func (s *Scheduler) Schedule(
	strategy entities.Strategy,
	orders []entities.ProductionOrder,
	machines []entities.Machine,
	constraints entities.SchedulingConstraints,
) (*dto.SchedulingResult, error) {
	fn, ok := strategies[strategy]
	if !ok {
		return nil, fmt.Errorf("unsupported strategy: %d", strategy)
	}

	r := newRun(s.engine, machines, constraints)
	fn(r, orders)

	result := &dto.SchedulingResult{
		Strategy:      strategy,
		ReferenceDate: r.today,
		Orders:        r.scheduled,
		MachineOrders: r.machineOrders(),
		Unplaced:      r.unplaced,
		Conflicts:     r.conflicts,
	}
	if result.Orders == nil {
		result.Orders = []entities.ProductionOrder{}
	}
	if result.Conflicts == nil {
		result.Conflicts = []string{}
	}
	if result.Unplaced == nil {
		result.Unplaced = []dto.UnplacedOrder{}
	}
	applyMetrics(result, machines)
	return result, nil
}

// run holds the state of a single scheduling invocation
type run struct {
	engine      *assignment.Engine
	constraints entities.SchedulingConstraints
	today       time.Time
	machines    []entities.Machine
	live        map[entities.MachineID]entities.Machine
	nextFree    map[entities.MachineID]time.Time
	scheduled   []entities.ProductionOrder
	unplaced    []dto.UnplacedOrder
	conflicts   []string
}

func newRun(engine *assignment.Engine, machines []entities.Machine, constraints entities.SchedulingConstraints) *run {
	r := &run{
		engine:      engine,
		constraints: constraints,
		today:       constraints.Today(),
		live:        make(map[entities.MachineID]entities.Machine),
		nextFree:    make(map[entities.MachineID]time.Time),
	}
	for _, m := range machines {
		if !m.Available {
			continue
		}
		if _, dup := r.live[m.ID]; dup {
			continue
		}
		r.machines = append(r.machines, m)
		r.live[m.ID] = m
		r.nextFree[m.ID] = r.today
	}
	return r
}

// placement is a chosen machine and mold for an order
type placement struct {
	machineID entities.MachineID
	moldID    string
}

// selector picks one machine from the live compatible candidates
type selector func(r *run, order entities.ProductionOrder, candidates []entities.MachineAssignment) entities.MachineAssignment

// place assigns the order to a machine and advances that machine's
// timeline by the production days plus gap. It records a conflict and
// returns false when no machine can take the order.
func (r *run) place(
	order entities.ProductionOrder,
	qty entities.Quantity,
	gapDays int,
	pick selector,
	accept func(end time.Time) error,
) bool {
	days := max(order.DaysFor(qty), 1)
	if days > entities.MaxProductionDays {
		r.conflict(order, fmt.Sprintf("production days exceed %d", entities.MaxProductionDays))
		return false
	}

	p, ok := r.choose(order, days, pick)
	if !ok {
		r.conflict(order, "")
		return false
	}

	start := r.nextFree[p.machineID]
	end := start.AddDate(0, 0, days-1)
	if accept != nil {
		if err := accept(end); err != nil {
			r.conflict(order, err.Error())
			return false
		}
	}

	r.nextFree[p.machineID] = end.AddDate(0, 0, gapDays+1)
	r.scheduled = append(r.scheduled, order.WithSchedule(p.machineID, p.moldID, start, end, qty, days))
	return true
}

// choose asks the engine for compatible machines and narrows them to the
// live ones. When every compatible machine is out of service the earliest
// available machine takes the order.
func (r *run) choose(order entities.ProductionOrder, days int, pick selector) (placement, bool) {
	candidates := r.engine.Candidates(order, days)
	if len(candidates) == 0 {
		return placement{}, false
	}

	var live []entities.MachineAssignment
	for _, c := range candidates {
		if _, ok := r.live[c.MachineID]; ok {
			live = append(live, c)
		}
	}
	if len(live) > 0 {
		a := pick(r, order, live)
		return placement{machineID: a.MachineID, moldID: a.MoldID}, true
	}

	m, ok := r.earliestMachine()
	if !ok {
		return placement{}, false
	}
	return placement{machineID: m}, true
}

// earliestMachine returns the live machine with the earliest free date,
// first in machine order on ties
func (r *run) earliestMachine() (entities.MachineID, bool) {
	var best entities.MachineID
	found := false
	for _, m := range r.machines {
		if !found || r.nextFree[m.ID].Before(r.nextFree[best]) {
			best, found = m.ID, true
		}
	}
	return best, found
}

// pickEarliestCursor prefers the compatible machine that frees up first
func pickEarliestCursor(r *run, _ entities.ProductionOrder, candidates []entities.MachineAssignment) entities.MachineAssignment {
	best := candidates[0]
	for _, c := range candidates[1:] {
		if r.nextFree[c.MachineID].Before(r.nextFree[best.MachineID]) {
			best = c
		}
	}
	return best
}

// pickLowestWait minimizes waiting days plus a capacity mismatch penalty
func pickLowestWait(r *run, order entities.ProductionOrder, candidates []entities.MachineAssignment) entities.MachineAssignment {
	best := candidates[0]
	bestScore := math.Inf(1)
	for _, c := range candidates {
		score := r.waitingDays(c.MachineID) + r.capacityPenalty(order, c.MachineID)
		if score < bestScore {
			best, bestScore = c, score
		}
	}
	return best
}

// waitingDays counts from the reference date in whole seconds so cursors
// centuries out do not saturate time.Duration
func (r *run) waitingDays(id entities.MachineID) float64 {
	return float64(r.nextFree[id].Unix()-r.today.Unix()) / 86400
}

func (r *run) capacityPenalty(order entities.ProductionOrder, id entities.MachineID) float64 {
	if !r.constraints.ConsiderCapacity {
		return 0
	}
	capacity := float64(r.live[id].DailyCapacity)
	if capacity <= 0 {
		return 10
	}
	return 10 * math.Abs(float64(order.DailyRate)-capacity) / capacity
}

func (r *run) conflict(order entities.ProductionOrder, reason string) {
	msg := fmt.Sprintf("order %s could not be placed", order.OrderNumber)
	if reason != "" {
		msg += ": " + reason
	}
	r.conflicts = append(r.conflicts, msg)
	r.unplaced = append(r.unplaced, dto.UnplacedOrder{Order: order, Conflict: msg})
}

func (r *run) machineOrders() map[entities.MachineID][]entities.ProductionOrder {
	byMachine := make(map[entities.MachineID][]entities.ProductionOrder)
	for _, o := range r.scheduled {
		byMachine[o.MachineID] = append(byMachine[o.MachineID], o)
	}
	return byMachine
}
