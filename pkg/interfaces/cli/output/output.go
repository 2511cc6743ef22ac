package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vsinha/pipesched/pkg/application/dto"
	"github.com/vsinha/pipesched/pkg/application/services/orchestration"
	"github.com/vsinha/pipesched/pkg/domain/entities"
)

const dateLayout = "2006-01-02"

// Config holds configuration for output generation
type Config struct {
	Format    string
	OutputDir string
	Verbose   bool
	RunTime   time.Duration
	Writer    io.Writer // defaults to os.Stdout
}

var fileNames = map[string]string{
	"text": "plan.txt",
	"json": "plan.json",
	"csv":  "plan.csv",
}

// Generate renders the planning result in the configured format, to the
// writer or to a file in OutputDir when one is set
func Generate(result *orchestration.PlanningResult, config Config) error {
	render, ok := renderers[config.Format]
	if !ok {
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}

	if config.OutputDir == "" {
		w := config.Writer
		if w == nil {
			w = os.Stdout
		}
		return render(w, result, config)
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	filename := filepath.Join(config.OutputDir, fileNames[config.Format])
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	defer file.Close()

	if err := render(file, result, config); err != nil {
		return err
	}
	if config.Verbose {
		fmt.Printf("💾 Results saved to: %s\n", filename)
	}
	return nil
}

type renderer func(w io.Writer, result *orchestration.PlanningResult, config Config) error

var renderers = map[string]renderer{
	"text": writeText,
	"json": writeJSON,
	"csv":  writeCSV,
}

func writeText(w io.Writer, result *orchestration.PlanningResult, config Config) error {
	plan := result.Plan
	var b strings.Builder

	fmt.Fprintf(&b, "📊 Production Plan\n")
	fmt.Fprintf(&b, "==================\n\n")
	fmt.Fprintf(&b, "%s\n", result.GetSummary())
	if config.RunTime > 0 {
		fmt.Fprintf(&b, "  Run Time: %v\n", config.RunTime)
	}
	b.WriteString("\n")

	scheduled := rowsWithStatus(plan, dto.PlanScheduled)
	if len(scheduled) > 0 {
		fmt.Fprintf(&b, "📋 Scheduled Orders:\n")
		fmt.Fprintf(&b, "%-15s %-8s %-8s %-8s %-12s %-12s %-8s\n",
			"Order", "Machine", "Mold", "Priority", "Start Date", "End Date", "Units")
		fmt.Fprintf(&b, "%-15s %-8s %-8s %-8s %-12s %-12s %-8s\n",
			"---------------", "--------", "--------", "--------", "------------", "------------", "--------")
		for _, row := range scheduled {
			fmt.Fprintf(&b, "%-15s %-8s %-8s %-8s %-12s %-12s %-8d\n",
				row.OrderNumber,
				row.MachineID,
				orDash(row.MoldID),
				row.Priority,
				row.StartDate.Format(dateLayout),
				row.EndDate.Format(dateLayout),
				units(row))
		}
		b.WriteString("\n")

		fmt.Fprintf(&b, "🗓  Day Grid %s to %s (# production, ~ changeover):\n",
			plan.StartDate.Format(dateLayout), plan.EndDate.Format(dateLayout))
		for _, row := range scheduled {
			fmt.Fprintf(&b, "%-15s %s\n", row.OrderNumber, dayGrid(row))
		}
		b.WriteString("\n")
	}

	if excluded := rowsWithStatus(plan, dto.PlanExcluded); len(excluded) > 0 {
		fmt.Fprintf(&b, "⛔ Excluded Orders:\n")
		for _, row := range excluded {
			fmt.Fprintf(&b, "  %-15s %s\n", row.OrderNumber, row.Reason)
		}
		b.WriteString("\n")
	}

	if len(plan.Result.Conflicts) > 0 {
		fmt.Fprintf(&b, "⚠️  Conflicts:\n")
		for _, c := range plan.Result.Conflicts {
			fmt.Fprintf(&b, "  %s\n", c)
		}
		b.WriteString("\n")
	}

	if len(result.Skipped) > 0 {
		fmt.Fprintf(&b, "🚫 Skipped Rows:\n")
		for _, s := range result.Skipped {
			fmt.Fprintf(&b, "  %s\n", s.Error())
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func rowsWithStatus(plan *dto.ProductionPlan, status dto.PlanStatus) []dto.PlanRow {
	var rows []dto.PlanRow
	for _, row := range plan.Rows {
		if row.Status == status {
			rows = append(rows, row)
		}
	}
	return rows
}

func dayGrid(row dto.PlanRow) string {
	var b strings.Builder
	for _, cell := range row.Days {
		switch cell.Kind {
		case dto.DayProduction:
			b.WriteByte('#')
		case dto.DayChangeover:
			b.WriteByte('~')
		default:
			b.WriteByte('.')
		}
	}
	return b.String()
}

func units(row dto.PlanRow) entities.Quantity {
	var total entities.Quantity
	for _, cell := range row.Days {
		total += cell.Units
	}
	return total
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
