package specparser

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMatchPrimitives(t *testing.T) {
	testCases := []struct {
		name string
		kind MatchKind
		a, b [2]float64
		want bool
	}{
		{"exact equal", Exact, [2]float64{130, 154}, [2]float64{130, 154}, true},
		{"exact differs", Exact, [2]float64{130, 154}, [2]float64{130, 155}, false},
		{"tolerant within", Tolerant, [2]float64{130, 154}, [2]float64{140, 144}, true},
		{"tolerant outside", Tolerant, [2]float64{130, 154}, [2]float64{141, 154}, false},
		{"scaled small pipe", ScaledTolerant, [2]float64{100, 150}, [2]float64{105, 145}, true},
		{"scaled small pipe outside", ScaledTolerant, [2]float64{100, 150}, [2]float64{100, 156}, false},
		{"scaled mid pipe", ScaledTolerant, [2]float64{200, 300}, [2]float64{210, 290}, true},
		{"scaled large pipe", ScaledTolerant, [2]float64{400, 500}, [2]float64{415, 485}, true},
		{"scaled huge pipe", ScaledTolerant, [2]float64{500, 600}, [2]float64{520, 620}, true},
		{"outer only ignores inner", OuterOnly, [2]float64{0, 226}, [2]float64{500, 246}, true},
		{"outer only outside", OuterOnly, [2]float64{0, 226}, [2]float64{0, 247}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := spec(tc.a[0], tc.a[1])
			b := spec(tc.b[0], tc.b[1])
			assert.Equal(t, tc.want, Matches(tc.kind, a, b))
		})
	}
}

func TestScaledTolerance(t *testing.T) {
	assert.True(t, ScaledTolerance(decimal.NewFromInt(150)).Equal(decimal.NewFromInt(5)))
	assert.True(t, ScaledTolerance(decimal.NewFromInt(151)).Equal(decimal.NewFromInt(10)))
	assert.True(t, ScaledTolerance(decimal.NewFromInt(300)).Equal(decimal.NewFromInt(10)))
	assert.True(t, ScaledTolerance(decimal.NewFromInt(500)).Equal(decimal.NewFromInt(15)))
	assert.True(t, ScaledTolerance(decimal.NewFromInt(501)).Equal(decimal.NewFromInt(20)))
}

func TestMatchAny(t *testing.T) {
	candidates := Parse("102、113、120/137")

	got, ok := MatchAny(OuterOnly, spec(0, 118), candidates)
	assert.True(t, ok)
	assert.True(t, got.OuterDiameter.Equal(decimal.NewFromInt(102)), "first candidate within tolerance wins")

	_, ok = MatchAny(Exact, spec(0, 118), candidates)
	assert.False(t, ok)
}
