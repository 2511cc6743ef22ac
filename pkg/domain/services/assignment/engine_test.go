package assignment

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/pipesched/pkg/domain/entities"
	"github.com/vsinha/pipesched/pkg/domain/services/specparser"
	"github.com/vsinha/pipesched/pkg/infrastructure/config"
)

// mustRule is a helper for tests - panics on validation error
func mustRule(machine, mold, spec string, moldHours, pipeHours float64) entities.MachineRule {
	rule, err := entities.NewMachineRule(
		entities.MachineID(machine),
		mold,
		spec,
		specparser.Parse(spec),
		moldHours,
		pipeHours,
	)
	if err != nil {
		panic(err)
	}
	return *rule
}

func order(inner, outer float64, priority entities.Priority) entities.ProductionOrder {
	return entities.ProductionOrder{
		OrderNumber:   "SO-1",
		InnerDiameter: decimal.NewFromFloat(inner),
		OuterDiameter: decimal.NewFromFloat(outer),
		Priority:      priority,
	}
}

func TestAssign_ExactRuleMatch(t *testing.T) {
	engine := NewEngine(config.DefaultCatalogue().BuildRules())

	a, ok := engine.Assign(order(120, 137, entities.Medium), 3)

	require.True(t, ok)
	assert.Equal(t, entities.MachineID("2"), a.MachineID)
	assert.Equal(t, "M2-01", a.MoldID)
	assert.Equal(t, 5.5, a.TotalSetupHours)
	assert.Equal(t, 5.5*10+3*5.0, a.Cost)
}

func TestAssign_PrefersInnerDiameterMatch(t *testing.T) {
	engine := NewEngine([]entities.MachineRule{
		mustRule("3", "A", "170/180", 5, 2),
		mustRule("4", "B", "175/180", 6, 2),
	})

	candidates := engine.Candidates(order(175, 180, entities.Medium), 1)

	require.Len(t, candidates, 2)
	assert.Equal(t, entities.MachineID("4"), candidates[0].MachineID)
	assert.Equal(t, entities.MachineID("3"), candidates[1].MachineID)

	a, ok := engine.Assign(order(175, 180, entities.Medium), 1)
	require.True(t, ok)
	assert.Equal(t, "B", a.MoldID)
}

func TestAssign_UnconstrainedInnerCountsAsMatch(t *testing.T) {
	engine := NewEngine([]entities.MachineRule{
		mustRule("3", "A", "170/180", 5, 2),
		mustRule("4", "B", "180", 6, 2),
	})

	a, ok := engine.Assign(order(160, 180, entities.Medium), 1)

	require.True(t, ok)
	assert.Equal(t, entities.MachineID("4"), a.MachineID)
}

func TestAssign_FallsBackToFirstOuterMatch(t *testing.T) {
	engine := NewEngine([]entities.MachineRule{
		mustRule("3", "A", "170/180", 5, 2),
		mustRule("4", "B", "172/180", 6, 2),
	})

	a, ok := engine.Assign(order(999, 180, entities.Medium), 1)

	require.True(t, ok)
	assert.Equal(t, entities.MachineID("3"), a.MachineID)
	assert.Equal(t, "A", a.MoldID)
}

func TestAssign_NearInnerBeatsPlainOuterMatch(t *testing.T) {
	engine := NewEngine([]entities.MachineRule{
		mustRule("3", "A", "150/180", 5, 2),
		mustRule("4", "B", "172/180", 6, 2),
	})

	candidates := engine.Candidates(order(175, 180, entities.Medium), 1)

	require.Len(t, candidates, 2)
	assert.Equal(t, entities.MachineID("4"), candidates[0].MachineID, "172 is within the scaled tolerance of 175")
	assert.Equal(t, entities.MachineID("3"), candidates[1].MachineID)
}

func TestAssign_NearInnerPicksMoldOnSameMachine(t *testing.T) {
	engine := NewEngine([]entities.MachineRule{
		mustRule("3", "FAR", "140/180", 5, 2),
		mustRule("3", "CLOSE", "168/180", 5, 2),
	})

	a, ok := engine.Assign(order(165, 180, entities.Medium), 1)

	require.True(t, ok)
	assert.Equal(t, "CLOSE", a.MoldID)
}

func TestAssign_BandFallbackUsesMachineRule(t *testing.T) {
	engine := NewEngine([]entities.MachineRule{mustRule("2", "X", "120/137", 4, 1)})

	a, ok := engine.Assign(order(100, 150, entities.Medium), 2)

	require.True(t, ok)
	assert.Equal(t, entities.MachineID("2"), a.MachineID)
	assert.Equal(t, "X", a.MoldID)
	assert.Equal(t, 5.0, a.TotalSetupHours)
}

func TestAssign_BandFallbackWithoutRuleForMachine(t *testing.T) {
	engine := NewEngine([]entities.MachineRule{mustRule("9", "X", "120/137", 4, 1)})

	a, ok := engine.Assign(order(100, 150, entities.Medium), 2)

	require.True(t, ok)
	assert.Equal(t, entities.MachineID("2"), a.MachineID)
	assert.Empty(t, a.MoldID)
	assert.Zero(t, a.TotalSetupHours)
}

func TestAssign_NoMatchAnywhere(t *testing.T) {
	engine := NewEngine(config.DefaultCatalogue().BuildRules())

	_, ok := engine.Assign(order(12.5, 550, entities.Medium), 1)
	assert.False(t, ok)

	_, ok = engine.Assign(order(0, 155, entities.Medium), 1)
	assert.False(t, ok, "155 sits in the gap between the first two bands")

	_, ok = engine.Assign(order(0, 0, entities.Medium), 1)
	assert.False(t, ok)
}

func TestCandidates_OnePerMachine(t *testing.T) {
	engine := NewEngine(config.DefaultCatalogue().BuildRules())

	candidates := engine.Candidates(order(130, 154, entities.Medium), 1)

	require.Len(t, candidates, 2)
	assert.Equal(t, entities.MachineID("2"), candidates[0].MachineID)
	assert.Equal(t, "M2-02", candidates[0].MoldID)
	assert.Equal(t, entities.MachineID("3"), candidates[1].MachineID)
	assert.Equal(t, "M3-03", candidates[1].MoldID)
}

func TestFallbackMachine_Bands(t *testing.T) {
	engine := NewEngine(nil)

	testCases := []struct {
		outer   int64
		machine entities.MachineID
		ok      bool
	}{
		{90, "2", true},
		{150, "2", true},
		{151, "", false},
		{160, "3", true},
		{218, "3", true},
		{250, "4", true},
		{272, "4", true},
		{414, "4", true},
		{280, "6", true},
		{290, "5", true},
		{400, "5", true},
		{510, "6", true},
		{600, "7", true},
		{550, "", false},
	}

	for _, tc := range testCases {
		machine, ok := engine.FallbackMachine(decimal.NewFromInt(tc.outer))
		assert.Equal(t, tc.ok, ok, "outer %d", tc.outer)
		assert.Equal(t, tc.machine, machine, "outer %d", tc.outer)
	}
}

func TestCalculateCost(t *testing.T) {
	assert.Equal(t, 55.0, CalculateCost(4, 1.5, 10, entities.Urgent))
	assert.Equal(t, 85.0, CalculateCost(4, 1.5, 10, entities.High))
	assert.Equal(t, 105.0, CalculateCost(4, 1.5, 10, entities.Medium))
	assert.Equal(t, 115.0, CalculateCost(4, 1.5, 10, entities.Low))
}
