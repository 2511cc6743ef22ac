package output

import (
	"io"
	"strconv"

	"github.com/vsinha/pipesched/pkg/application/dto"
	"github.com/vsinha/pipesched/pkg/application/services/orchestration"
	"github.com/vsinha/pipesched/pkg/infrastructure/table"
)

// changeoverCell marks a changeover day in the CSV day columns
const changeoverCell = "C"

var planColumns = []string{
	"order_number", "status", "machine_id", "mold_id", "priority", "start_date", "end_date", "reason",
}

// writeCSV writes one row per order followed by one column per plan date
func writeCSV(w io.Writer, result *orchestration.PlanningResult, _ Config) error {
	plan := result.Plan

	header := append([]string(nil), planColumns...)
	for _, d := range plan.Dates {
		header = append(header, d.Format(dateLayout))
	}

	rows := make([][]string, 0, len(plan.Rows))
	for _, row := range plan.Rows {
		record := []string{
			string(row.OrderNumber),
			string(row.Status),
			string(row.MachineID),
			row.MoldID,
			row.Priority.String(),
			"",
			"",
			row.Reason,
		}
		if row.Status == dto.PlanScheduled {
			record[5] = row.StartDate.Format(dateLayout)
			record[6] = row.EndDate.Format(dateLayout)
		}
		for _, cell := range row.Days {
			switch cell.Kind {
			case dto.DayProduction:
				record = append(record, strconv.FormatInt(int64(cell.Units), 10))
			case dto.DayChangeover:
				record = append(record, changeoverCell)
			default:
				record = append(record, "")
			}
		}
		rows = append(rows, record)
	}

	return table.WriteCSV(w, table.New(header, rows))
}
