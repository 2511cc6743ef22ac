package specparser

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/pipesched/pkg/domain/entities"
)

func spec(inner, outer float64) entities.PipeSpecification {
	return entities.NewPipeSpecification(decimal.NewFromFloat(inner), decimal.NewFromFloat(outer))
}

func assertSpec(t *testing.T, want entities.PipeSpecification, got entities.PipeSpecification) {
	t.Helper()
	assert.True(t, want.InnerDiameter.Equal(got.InnerDiameter), "inner: want %s, got %s", want.InnerDiameter, got.InnerDiameter)
	assert.True(t, want.OuterDiameter.Equal(got.OuterDiameter), "outer: want %s, got %s", want.OuterDiameter, got.OuterDiameter)
}

func TestParse_Range(t *testing.T) {
	specs := Parse("130/154-204/226")

	require.Len(t, specs, 2)
	assertSpec(t, spec(130, 154), specs[0])
	assertSpec(t, spec(204, 226), specs[1])
	assert.False(t, specs[0].Oversize)
	assert.False(t, specs[1].Cone)
}

func TestParse_RangeSharesFlags(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		oversize bool
		cone     bool
	}{
		{"oversize", "Φ130/154-204/226(大)", true, false},
		{"cone", "130/154 - 204/226 （锥）", false, true},
		{"plain", "φ 90-110", false, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			specs := Parse(tc.text)
			require.Len(t, specs, 2)
			for _, s := range specs {
				assert.Equal(t, tc.oversize, s.Oversize)
				assert.Equal(t, tc.cone, s.Cone)
			}
		})
	}
}

func TestParse_List(t *testing.T) {
	specs := Parse("102、113、120/137")

	require.Len(t, specs, 3)
	assertSpec(t, spec(0, 102), specs[0])
	assertSpec(t, spec(0, 113), specs[1])
	assertSpec(t, spec(120, 137), specs[2])
}

func TestParse_ListWithOversizeMarker(t *testing.T) {
	specs := Parse("180、200/217 (大)")

	require.Len(t, specs, 2)
	assertSpec(t, spec(0, 180), specs[0])
	assertSpec(t, spec(200, 217), specs[1])
	assert.True(t, specs[0].Oversize)
	assert.True(t, specs[1].Oversize)
}

func TestParse_SingleBareNumber(t *testing.T) {
	specs := Parse("90")

	require.Len(t, specs, 1)
	assertSpec(t, spec(0, 90), specs[0])
	assert.True(t, specs[0].InnerDiameter.IsZero(), "bare number leaves inner unconstrained")
}

func TestParse_DecimalDiameters(t *testing.T) {
	specs := Parse("12.5/550")

	require.Len(t, specs, 1)
	assertSpec(t, spec(12.5, 550), specs[0])
}

func TestParse_BadItemsAreOmitted(t *testing.T) {
	specs := Parse("102、abc、120/x、137")

	require.Len(t, specs, 2)
	assertSpec(t, spec(0, 102), specs[0])
	assertSpec(t, spec(0, 137), specs[1])
}

func TestParse_NothingParseable(t *testing.T) {
	for _, text := range []string{"", "   ", "n/a", "大"} {
		specs := Parse(text)
		assert.NotNil(t, specs)
		assert.Empty(t, specs, "input %q", text)
	}
}

func TestParseModelCode(t *testing.T) {
	s, ok := ParseModelCode("GX-226/204-A1")
	require.True(t, ok)
	assertSpec(t, spec(204, 226), s)

	s, ok = ParseModelCode(" PX-154.5/130-LONG ")
	require.True(t, ok)
	assertSpec(t, spec(130, 154.5), s)

	for _, code := range []string{"", "GX226/204", "GX-226-204-A", "-226/204-A"} {
		_, ok := ParseModelCode(code)
		assert.False(t, ok, "code %q", code)
	}
}
