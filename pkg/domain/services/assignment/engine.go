// Package assignment maps an order's diameters onto a machine and mold
// using the rule table, with an outer-diameter band table as fallback.
package assignment

import (
	"github.com/shopspring/decimal"
	"github.com/vsinha/pipesched/pkg/domain/entities"
	"github.com/vsinha/pipesched/pkg/domain/services/specparser"
)

// OuterBand maps a closed outer-diameter interval to a machine
type OuterBand struct {
	Min       decimal.Decimal
	Max       decimal.Decimal
	MachineID entities.MachineID
}

// Contains reports whether d lies inside the band
func (b OuterBand) Contains(d decimal.Decimal) bool {
	return d.GreaterThanOrEqual(b.Min) && d.LessThanOrEqual(b.Max)
}

func band(lo, hi int64, machine entities.MachineID) OuterBand {
	return OuterBand{Min: decimal.NewFromInt(lo), Max: decimal.NewFromInt(hi), MachineID: machine}
}

// DefaultOuterBands is the hard-coded fallback used when no rule lists the
// order's outer diameter. It names machines independently of the rule table.
var DefaultOuterBands = []OuterBand{
	{Min: decimal.Zero, Max: decimal.NewFromInt(150), MachineID: "2"},
	band(160, 218, "3"),
	band(250, 272, "4"),
	band(414, 414, "4"),
	band(290, 400, "5"),
	band(280, 280, "6"),
	band(510, 510, "6"),
	band(600, 600, "7"),
}

var priorityAdjustment = map[entities.Priority]float64{
	entities.Urgent: -50,
	entities.High:   -20,
	entities.Medium: 0,
	entities.Low:    10,
}

// Engine selects machines for orders. It is read-only after construction
// and safe for concurrent use.
type Engine struct {
	rules []entities.MachineRule
	bands []OuterBand
}

// NewEngine creates an engine over the given rule table and the default bands
func NewEngine(rules []entities.MachineRule) *Engine {
	return NewEngineWithBands(rules, DefaultOuterBands)
}

// NewEngineWithBands creates an engine with a caller-supplied band table
func NewEngineWithBands(rules []entities.MachineRule, bands []OuterBand) *Engine {
	r := make([]entities.MachineRule, len(rules))
	copy(r, rules)
	b := make([]OuterBand, len(bands))
	copy(b, bands)
	return &Engine{rules: r, bands: b}
}

// Rules returns a copy of the rule table
func (e *Engine) Rules() []entities.MachineRule {
	r := make([]entities.MachineRule, len(e.rules))
	copy(r, e.rules)
	return r
}

// Assign returns the preferred assignment for the order, or false when no
// rule or band covers its outer diameter.
func (e *Engine) Assign(order entities.ProductionOrder, productionDays int) (entities.MachineAssignment, bool) {
	candidates := e.Candidates(order, productionDays)
	if len(candidates) == 0 {
		return entities.MachineAssignment{}, false
	}
	return candidates[0], true
}

// Candidates returns every compatible assignment, one per machine, with the
// preferred assignment first. Rules whose inner-diameter set contains the
// order's inner diameter (or the unconstrained 0) come first, then rules
// with an inner diameter inside the scaled tolerance, then the remaining
// outer-only matches.
func (e *Engine) Candidates(order entities.ProductionOrder, productionDays int) []entities.MachineAssignment {
	var preferred, near, outerOnly []entities.MachineRule
	for _, rule := range e.rules {
		if !rule.HasOuter(order.OuterDiameter) {
			continue
		}
		switch {
		case rule.HasInner(order.InnerDiameter) || rule.AcceptsAnyInner():
			preferred = append(preferred, rule)
		case nearInner(rule, order):
			near = append(near, rule)
		default:
			outerOnly = append(outerOnly, rule)
		}
	}

	matched := make([]entities.MachineRule, 0, len(preferred)+len(near)+len(outerOnly))
	matched = append(matched, preferred...)
	matched = append(matched, near...)
	matched = append(matched, outerOnly...)
	if len(matched) == 0 {
		return e.fallback(order, productionDays)
	}

	seen := make(map[entities.MachineID]bool, len(matched))
	var candidates []entities.MachineAssignment
	for _, rule := range matched {
		if seen[rule.MachineID] {
			continue
		}
		seen[rule.MachineID] = true
		candidates = append(candidates, e.assignmentFor(rule, order, productionDays))
	}
	return candidates
}

// nearInner reports whether one of the rule's inner diameters is a scaled
// tolerant match for the order at the order's outer diameter
func nearInner(rule entities.MachineRule, order entities.ProductionOrder) bool {
	if !order.InnerDiameter.IsPositive() {
		return false
	}
	want := entities.PipeSpecification{InnerDiameter: order.InnerDiameter, OuterDiameter: order.OuterDiameter}
	specs := make([]entities.PipeSpecification, 0, len(rule.InnerDiameters))
	for _, inner := range rule.InnerDiameters {
		specs = append(specs, entities.PipeSpecification{InnerDiameter: inner, OuterDiameter: order.OuterDiameter})
	}
	_, ok := specparser.MatchAny(specparser.ScaledTolerant, want, specs)
	return ok
}

// FallbackMachine looks up the band table for the outer diameter
func (e *Engine) FallbackMachine(outer decimal.Decimal) (entities.MachineID, bool) {
	if !outer.IsPositive() {
		return "", false
	}
	for _, b := range e.bands {
		if b.Contains(outer) {
			return b.MachineID, true
		}
	}
	return "", false
}

func (e *Engine) fallback(order entities.ProductionOrder, productionDays int) []entities.MachineAssignment {
	machineID, ok := e.FallbackMachine(order.OuterDiameter)
	if !ok {
		return nil
	}
	for _, rule := range e.rules {
		if rule.MachineID == machineID {
			return []entities.MachineAssignment{e.assignmentFor(rule, order, productionDays)}
		}
	}
	// The band names a machine the rule table does not describe.
	return []entities.MachineAssignment{{
		MachineID: machineID,
		Cost:      CalculateCost(0, 0, productionDays, order.Priority),
	}}
}

func (e *Engine) assignmentFor(rule entities.MachineRule, order entities.ProductionOrder, productionDays int) entities.MachineAssignment {
	return entities.MachineAssignment{
		MachineID:           rule.MachineID,
		MoldID:              rule.MoldID,
		MoldChangeoverHours: rule.MoldChangeoverHours,
		PipeChangeoverHours: rule.PipeChangeoverHours,
		TotalSetupHours:     rule.SetupHours(),
		Cost: CalculateCost(
			rule.MoldChangeoverHours,
			rule.PipeChangeoverHours,
			productionDays,
			order.Priority,
		),
	}
}

// CalculateCost scores an assignment; higher priorities score cheaper
func CalculateCost(moldHours, pipeHours float64, productionDays int, priority entities.Priority) float64 {
	return (moldHours+pipeHours)*10 + float64(productionDays)*5 + priorityAdjustment[priority]
}
