package table

import "github.com/vsinha/pipesched/pkg/domain/entities"

const mergedMarker = "yes"

// Merge joins a secondary source into the primary table by key. Columns
// only the secondary carries are appended; blank primary cells of shared
// shipping-plan columns are filled; matched rows get shipping_plan=yes.
// Neither input is modified.
func Merge(primary, secondary *Table, key []string) *Table {
	if secondary == nil || !secondary.Has(key...) || !primary.Has(key...) {
		return New(primary.header, primary.rows)
	}

	lookup := make(map[string]int, secondary.Len())
	for i := 0; i < secondary.Len(); i++ {
		k := secondary.Value(i, key...)
		if _, seen := lookup[k]; k != "" && !seen {
			lookup[k] = i
		}
	}

	header := primary.Header()
	var extra []int
	for col, name := range secondary.header {
		if !primary.Has(name) {
			extra = append(extra, col)
			header = append(header, name)
		}
	}
	markerCol, hasMarker := primary.Column(ColShippingPlanTag...)
	if !hasMarker {
		markerCol = len(header)
		header = append(header, ColShippingPlanTag[0])
	}

	rows := make([][]string, primary.Len())
	for i := range rows {
		row := make([]string, len(header))
		copy(row, primary.rows[i])

		j, matched := lookup[primary.Value(i, key...)]
		if matched {
			for n, col := range extra {
				if col < len(secondary.rows[j]) {
					row[len(primary.header)+n] = secondary.rows[j][col]
				}
			}
			for _, names := range shippingPlanColumns {
				pcol, ok := primary.Column(names...)
				if ok && primary.Value(i, names...) == "" {
					row[pcol] = secondary.Value(j, names...)
				}
			}
			row[markerCol] = mergedMarker
		}
		rows[i] = row
	}
	return New(header, rows)
}

// Keys returns the distinct non-blank key values of a table, in row order
func Keys(t *Table, key []string) []entities.OrderNumber {
	if t == nil {
		return nil
	}
	seen := make(map[string]bool, t.Len())
	var keys []entities.OrderNumber
	for i := 0; i < t.Len(); i++ {
		k := t.Value(i, key...)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		keys = append(keys, entities.OrderNumber(k))
	}
	return keys
}
