package entities

import (
	"fmt"
	"strings"
	"time"
)

// Strategy selects one of the scheduling algorithms
type Strategy int

const (
	CapacityFirst Strategy = iota
	TimeFirst
	OrderFirst
	Balanced
)

// String method for Strategy enum
func (s Strategy) String() string {
	switch s {
	case CapacityFirst:
		return "capacity-first"
	case TimeFirst:
		return "time-first"
	case OrderFirst:
		return "order-first"
	case Balanced:
		return "balanced"
	default:
		return "unknown"
	}
}

// ParseStrategy converts a strategy name into a Strategy
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "capacity-first", "capacity":
		return CapacityFirst, nil
	case "time-first", "time":
		return TimeFirst, nil
	case "order-first", "order":
		return OrderFirst, nil
	case "balanced":
		return Balanced, nil
	default:
		return 0, fmt.Errorf("unknown strategy %q (expected capacity-first, time-first, order-first or balanced)", name)
	}
}

// SchedulingConstraints bundles the per-run scheduling configuration
type SchedulingConstraints struct {
	WorkingDaysPerMonth int
	ShiftHours          float64
	BufferDays          int
	RespectDeadlines    bool
	ConsiderCapacity    bool
	AvoidOvertime       bool
	BalanceLoad         bool
	ReferenceDate       time.Time // zero means today
}

// DefaultConstraints returns the constraints used when the caller supplies none
func DefaultConstraints() SchedulingConstraints {
	return SchedulingConstraints{
		WorkingDaysPerMonth: 26,
		ShiftHours:          8,
		BufferDays:          2,
		RespectDeadlines:    true,
		ConsiderCapacity:    true,
		AvoidOvertime:       false,
		BalanceLoad:         true,
	}
}

// Today returns the run's reference date truncated to midnight UTC
func (c SchedulingConstraints) Today() time.Time {
	ref := c.ReferenceDate
	if ref.IsZero() {
		ref = time.Now()
	}
	return time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)
}
