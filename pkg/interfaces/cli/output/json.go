package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vsinha/pipesched/pkg/application/dto"
	"github.com/vsinha/pipesched/pkg/application/services/orchestration"
)

type planDocument struct {
	RunID         string        `json:"run_id"`
	Strategy      string        `json:"strategy"`
	ReferenceDate string        `json:"reference_date"`
	StartDate     string        `json:"start_date"`
	EndDate       string        `json:"end_date"`
	Metrics       metricsDoc    `json:"metrics"`
	Rows          []rowDocument `json:"rows"`
	Conflicts     []string      `json:"conflicts"`
	SkippedRows   []string      `json:"skipped_rows,omitempty"`
}

type metricsDoc struct {
	TotalDays       int     `json:"total_days"`
	UtilizationRate float64 `json:"utilization_rate"`
	OnTimeRate      float64 `json:"on_time_rate"`
}

type rowDocument struct {
	OrderNumber string        `json:"order_number"`
	Status      string        `json:"status"`
	Reason      string        `json:"reason,omitempty"`
	Priority    string        `json:"priority"`
	MachineID   string        `json:"machine_id,omitempty"`
	MoldID      string        `json:"mold_id,omitempty"`
	StartDate   string        `json:"start_date,omitempty"`
	EndDate     string        `json:"end_date,omitempty"`
	Days        []dayDocument `json:"days,omitempty"`
}

// dayDocument lists only the days with activity
type dayDocument struct {
	Date  string `json:"date"`
	Kind  string `json:"kind"`
	Units int64  `json:"units,omitempty"`
}

func writeJSON(w io.Writer, result *orchestration.PlanningResult, _ Config) error {
	plan := result.Plan
	doc := planDocument{
		RunID:         plan.RunID,
		Strategy:      plan.Result.Strategy.String(),
		ReferenceDate: plan.Result.ReferenceDate.Format(dateLayout),
		StartDate:     plan.StartDate.Format(dateLayout),
		EndDate:       plan.EndDate.Format(dateLayout),
		Metrics: metricsDoc{
			TotalDays:       plan.Result.TotalDays,
			UtilizationRate: plan.Result.UtilizationRate,
			OnTimeRate:      plan.Result.OnTimeRate,
		},
		Rows:      make([]rowDocument, 0, len(plan.Rows)),
		Conflicts: plan.Result.Conflicts,
	}
	for _, s := range result.Skipped {
		doc.SkippedRows = append(doc.SkippedRows, s.Error())
	}

	for _, row := range plan.Rows {
		rd := rowDocument{
			OrderNumber: string(row.OrderNumber),
			Status:      string(row.Status),
			Reason:      row.Reason,
			Priority:    row.Priority.String(),
			MachineID:   string(row.MachineID),
			MoldID:      row.MoldID,
		}
		if row.Status == dto.PlanScheduled {
			rd.StartDate = row.StartDate.Format(dateLayout)
			rd.EndDate = row.EndDate.Format(dateLayout)
		}
		for _, cell := range row.Days {
			if cell.Kind == dto.DayIdle {
				continue
			}
			rd.Days = append(rd.Days, dayDocument{
				Date:  cell.Date.Format(dateLayout),
				Kind:  string(cell.Kind),
				Units: int64(cell.Units),
			})
		}
		doc.Rows = append(doc.Rows, rd)
	}

	jsonData, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if _, err := w.Write(append(jsonData, '\n')); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}
