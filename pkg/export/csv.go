package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// RenderCSV encodes the report as CSV bytes.
func RenderCSV(report Report) ([]byte, error) {
	if len(report.Columns) == 0 {
		return nil, fmt.Errorf("csv requires at least one column")
	}

	buf := &bytes.Buffer{}
	writer := csv.NewWriter(buf)
	if err := writer.Write(report.Columns); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	for _, row := range report.Rows {
		record := make([]string, len(report.Columns))
		copy(record, row)
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
