package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// MachineID identifies a physical production machine
type MachineID string

// Machine represents a physical production unit
type Machine struct {
	ID              MachineID
	Name            string
	DailyCapacity   Quantity
	Efficiency      float64
	Available       bool
	MaintenanceDate time.Time
}

// NewMachine creates a validated, available Machine
func NewMachine(id MachineID, name string, dailyCapacity Quantity, efficiency float64) (*Machine, error) {
	if strings.TrimSpace(string(id)) == "" {
		return nil, fmt.Errorf("machine id cannot be empty")
	}
	if dailyCapacity < 0 {
		return nil, fmt.Errorf("daily capacity cannot be negative, got %d", dailyCapacity)
	}
	if efficiency <= 0 {
		return nil, fmt.Errorf("efficiency must be positive, got %v", efficiency)
	}
	if name == "" {
		name = string(id)
	}

	return &Machine{
		ID:            id,
		Name:          name,
		DailyCapacity: dailyCapacity,
		Efficiency:    efficiency,
		Available:     true,
	}, nil
}

// MachineRule binds a machine and mold to the diameters it can produce
type MachineRule struct {
	MachineID           MachineID
	MoldID              string
	Specification       string // free text the diameter sets were parsed from
	InnerDiameters      []decimal.Decimal
	OuterDiameters      []decimal.Decimal
	MoldChangeoverHours float64
	PipeChangeoverHours float64
}

// NewMachineRule creates a validated MachineRule from parsed specifications
func NewMachineRule(
	machineID MachineID,
	moldID, specification string,
	specs []PipeSpecification,
	moldChangeoverHours, pipeChangeoverHours float64,
) (*MachineRule, error) {
	if strings.TrimSpace(string(machineID)) == "" {
		return nil, fmt.Errorf("machine id cannot be empty")
	}
	if len(specs) == 0 {
		return nil, fmt.Errorf("rule %s/%s has no diameter specifications", machineID, moldID)
	}
	if moldChangeoverHours < 0 || pipeChangeoverHours < 0 {
		return nil, fmt.Errorf("changeover hours cannot be negative")
	}

	rule := &MachineRule{
		MachineID:           machineID,
		MoldID:              moldID,
		Specification:       specification,
		MoldChangeoverHours: moldChangeoverHours,
		PipeChangeoverHours: pipeChangeoverHours,
	}
	for _, spec := range specs {
		rule.InnerDiameters = appendUnique(rule.InnerDiameters, spec.InnerDiameter)
		rule.OuterDiameters = appendUnique(rule.OuterDiameters, spec.OuterDiameter)
	}
	return rule, nil
}

// HasOuter reports whether the rule's outer-diameter set contains d
func (r MachineRule) HasOuter(d decimal.Decimal) bool {
	return containsDecimal(r.OuterDiameters, d)
}

// HasInner reports whether the rule's inner-diameter set contains d
func (r MachineRule) HasInner(d decimal.Decimal) bool {
	return containsDecimal(r.InnerDiameters, d)
}

// AcceptsAnyInner reports whether the rule lists the unconstrained inner diameter
func (r MachineRule) AcceptsAnyInner() bool {
	return containsDecimal(r.InnerDiameters, decimal.Zero)
}

// SetupHours returns the combined mold and pipe changeover time
func (r MachineRule) SetupHours() float64 {
	return r.MoldChangeoverHours + r.PipeChangeoverHours
}

func containsDecimal(set []decimal.Decimal, d decimal.Decimal) bool {
	for _, v := range set {
		if v.Equal(d) {
			return true
		}
	}
	return false
}

func appendUnique(set []decimal.Decimal, d decimal.Decimal) []decimal.Decimal {
	if containsDecimal(set, d) {
		return set
	}
	return append(set, d)
}
