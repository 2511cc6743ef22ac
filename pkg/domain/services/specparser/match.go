package specparser

import (
	"github.com/shopspring/decimal"
	"github.com/vsinha/pipesched/pkg/domain/entities"
)

// MatchKind selects a matching primitive. Machine assignment ranks rules
// with Exact set containment and ScaledTolerant; Tolerant and OuterOnly are
// offered to callers reconciling catalogue data.
type MatchKind int

const (
	Exact MatchKind = iota
	Tolerant
	ScaledTolerant
	OuterOnly
)

// String method for MatchKind enum
func (k MatchKind) String() string {
	switch k {
	case Exact:
		return "Exact"
	case Tolerant:
		return "Tolerant"
	case ScaledTolerant:
		return "ScaledTolerant"
	case OuterOnly:
		return "OuterOnly"
	default:
		return "Unknown"
	}
}

var (
	fixedTolerance     = decimal.NewFromInt(10)
	outerOnlyTolerance = decimal.NewFromInt(20)
)

// ExactMatch requires both diameters to be equal
func ExactMatch(a, b entities.PipeSpecification) bool {
	return a.InnerDiameter.Equal(b.InnerDiameter) && a.OuterDiameter.Equal(b.OuterDiameter)
}

// TolerantMatch allows both diameters to differ by at most 10
func TolerantMatch(a, b entities.PipeSpecification) bool {
	return within(a.InnerDiameter, b.InnerDiameter, fixedTolerance) &&
		within(a.OuterDiameter, b.OuterDiameter, fixedTolerance)
}

// ScaledTolerantMatch widens the tolerance with the outer diameter of a
func ScaledTolerantMatch(a, b entities.PipeSpecification) bool {
	tol := ScaledTolerance(a.OuterDiameter)
	return within(a.InnerDiameter, b.InnerDiameter, tol) &&
		within(a.OuterDiameter, b.OuterDiameter, tol)
}

// OuterOnlyMatch ignores inner diameter and allows ±20 on the outer diameter
func OuterOnlyMatch(a, b entities.PipeSpecification) bool {
	return within(a.OuterDiameter, b.OuterDiameter, outerOnlyTolerance)
}

// ScaledTolerance returns 5 up to 150, 10 up to 300, 15 up to 500 and 20 above
func ScaledTolerance(outer decimal.Decimal) decimal.Decimal {
	switch {
	case outer.LessThanOrEqual(decimal.NewFromInt(150)):
		return decimal.NewFromInt(5)
	case outer.LessThanOrEqual(decimal.NewFromInt(300)):
		return decimal.NewFromInt(10)
	case outer.LessThanOrEqual(decimal.NewFromInt(500)):
		return decimal.NewFromInt(15)
	default:
		return decimal.NewFromInt(20)
	}
}

// Matches applies the primitive selected by kind
func Matches(kind MatchKind, a, b entities.PipeSpecification) bool {
	switch kind {
	case Exact:
		return ExactMatch(a, b)
	case Tolerant:
		return TolerantMatch(a, b)
	case ScaledTolerant:
		return ScaledTolerantMatch(a, b)
	case OuterOnly:
		return OuterOnlyMatch(a, b)
	default:
		return false
	}
}

// MatchAny returns the first candidate matching spec under kind
func MatchAny(kind MatchKind, spec entities.PipeSpecification, candidates []entities.PipeSpecification) (entities.PipeSpecification, bool) {
	for _, c := range candidates {
		if Matches(kind, spec, c) {
			return c, true
		}
	}
	return entities.PipeSpecification{}, false
}

func within(a, b, tol decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(tol)
}
