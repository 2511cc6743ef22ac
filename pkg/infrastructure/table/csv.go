package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// ReadCSVFile loads a table from a CSV file whose first record is the header
func ReadCSVFile(filename string) (*Table, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", filename, err)
	}
	defer file.Close()

	t, err := ReadCSV(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return t, nil
}

// ReadCSV loads a table from CSV content. Rows may be ragged.
func ReadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("CSV must have a header row")
	}
	return New(records[0], records[1:]), nil
}

// WriteCSV writes the table with its header
func WriteCSV(w io.Writer, t *Table) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(t.header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for i, row := range t.rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row %d: %w", i+1, err)
		}
	}
	writer.Flush()
	return writer.Error()
}
