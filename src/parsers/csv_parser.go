package parsers

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/username/orderlens/src/models"
)

type CSVParser struct{}

func NewCSVParser() *CSVParser {
	return &CSVParser{}
}

// Parse reads a delimited text table. All cells surface as strings; the
// coercer handles typing downstream.
func (p *CSVParser) Parse(file io.Reader) (*models.RawSheet, error) {
	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV records: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty CSV file")
	}

	sheet := &models.RawSheet{Headers: records[0]}
	for _, row := range records[1:] {
		cells := make([]any, len(row))
		for i, cell := range row {
			cells[i] = cell
		}
		sheet.Rows = append(sheet.Rows, cells)
	}
	return sheet, nil
}
