package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PipeSpecification is a resolved inner/outer diameter pair
type PipeSpecification struct {
	InnerDiameter decimal.Decimal // zero means unconstrained
	OuterDiameter decimal.Decimal
	Oversize      bool
	Cone          bool
}

// NewPipeSpecification builds a plain specification from two diameters
func NewPipeSpecification(inner, outer decimal.Decimal) PipeSpecification {
	return PipeSpecification{InnerDiameter: inner, OuterDiameter: outer}
}

// String renders the specification as inner/outer, or outer alone when inner is unconstrained
func (s PipeSpecification) String() string {
	base := s.OuterDiameter.String()
	if !s.InnerDiameter.IsZero() {
		base = fmt.Sprintf("%s/%s", s.InnerDiameter, s.OuterDiameter)
	}
	switch {
	case s.Oversize:
		return base + " (oversize)"
	case s.Cone:
		return base + " (cone)"
	}
	return base
}
