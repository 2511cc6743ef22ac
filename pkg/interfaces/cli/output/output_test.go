package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/pipesched/pkg/application/dto"
	"github.com/vsinha/pipesched/pkg/application/services/orchestration"
	"github.com/vsinha/pipesched/pkg/domain/entities"
	"github.com/vsinha/pipesched/pkg/infrastructure/table"
)

func date(d int) time.Time {
	return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC)
}

func samplePlan() *orchestration.PlanningResult {
	dates := []time.Time{date(1), date(2), date(3)}
	result := &dto.SchedulingResult{
		Strategy:        entities.CapacityFirst,
		ReferenceDate:   date(1),
		TotalDays:       2,
		UtilizationRate: 0.25,
		OnTimeRate:      1,
		Conflicts:       []string{"order A3 could not be placed"},
	}
	return &orchestration.PlanningResult{
		Plan: &dto.ProductionPlan{
			RunID:     "run-1",
			StartDate: date(1),
			EndDate:   date(3),
			Dates:     dates,
			Result:    result,
			Rows: []dto.PlanRow{
				{
					OrderNumber: "A1", Status: dto.PlanScheduled, MachineID: "2", MoldID: "M2-02",
					Priority: entities.Urgent, StartDate: date(1), EndDate: date(2),
					Days: []dto.DayCell{
						{Date: date(1), Kind: dto.DayProduction, Units: 50},
						{Date: date(2), Kind: dto.DayProduction, Units: 30},
						{Date: date(3), Kind: dto.DayChangeover},
					},
				},
				{
					OrderNumber: "A2", Status: dto.PlanExcluded, Reason: "daily production rate unknown",
					Priority: entities.Medium,
					Days:     []dto.DayCell{{Date: date(1)}, {Date: date(2)}, {Date: date(3)}},
				},
				{
					OrderNumber: "A3", Status: dto.PlanUnplaced, Reason: "order A3 could not be placed",
					Priority: entities.Low,
					Days:     []dto.DayCell{{Date: date(1)}, {Date: date(2)}, {Date: date(3)}},
				},
			},
		},
		Skipped: []table.RowError{{Row: 4, Err: errors.New("order number is blank")}},
	}
}

func TestGenerate_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Generate(samplePlan(), Config{Format: "text", Writer: &buf}))

	out := buf.String()
	assert.Contains(t, out, "Planning Summary (run run-1)")
	assert.Contains(t, out, "1 scheduled, 1 excluded, 1 unplaced, 1 rows skipped")
	assert.Contains(t, out, "M2-02")
	assert.Contains(t, out, "##~")
	assert.Contains(t, out, "daily production rate unknown")
	assert.Contains(t, out, "order A3 could not be placed")
	assert.Contains(t, out, "row 4: order number is blank")
}

func TestGenerate_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Generate(samplePlan(), Config{Format: "json", Writer: &buf}))

	var doc planDocument
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "capacity-first", doc.Strategy)
	assert.Equal(t, 0.25, doc.Metrics.UtilizationRate)
	require.Len(t, doc.Rows, 3)
	assert.Equal(t, "2025-03-02", doc.Rows[0].EndDate)
	assert.Len(t, doc.Rows[0].Days, 3)
	assert.Equal(t, int64(30), doc.Rows[0].Days[1].Units)
	assert.Empty(t, doc.Rows[1].Days)
	assert.Empty(t, doc.Rows[1].StartDate)
	assert.Equal(t, []string{"row 4: order number is blank"}, doc.SkippedRows)
}

func TestGenerate_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Generate(samplePlan(), Config{Format: "csv", Writer: &buf}))

	tbl, err := table.ReadCSV(&buf)
	require.NoError(t, err)
	require.Equal(t, 3, tbl.Len())
	assert.Len(t, tbl.Header(), len(planColumns)+3)
	assert.Equal(t, "50", tbl.Value(0, "2025-03-01"))
	assert.Equal(t, "C", tbl.Value(0, "2025-03-03"))
	assert.Equal(t, "excluded", tbl.Value(1, "status"))
	assert.Equal(t, "", tbl.Value(1, "start_date"))
	assert.Equal(t, "Low", tbl.Value(2, "priority"))
}

func TestGenerate_WritesToOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "results")
	require.NoError(t, Generate(samplePlan(), Config{Format: "json", OutputDir: dir}))

	data, err := os.ReadFile(filepath.Join(dir, "plan.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"run_id": "run-1"`)
}

func TestGenerate_UnsupportedFormat(t *testing.T) {
	err := Generate(samplePlan(), Config{Format: "xml", Writer: &bytes.Buffer{}})
	assert.EqualError(t, err, "unsupported output format: xml")
}
