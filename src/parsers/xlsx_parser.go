package parsers

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/username/orderlens/src/models"
)

type XLSXParser struct{}

func NewXLSXParser() *XLSXParser {
	return &XLSXParser{}
}

// Parse reads the first worksheet of an XLSX workbook. Cells are read as
// raw values, so date cells arrive as their serial day count instead of
// a locale-formatted string; numeric-looking cells are surfaced as
// float64 so the date parser can take the serial path.
func (p *XLSXParser) Parse(file io.Reader) (*models.RawSheet, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX workbook: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read worksheet %q: %w", sheetName, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty worksheet %q", sheetName)
	}

	sheet := &models.RawSheet{Headers: rows[0]}
	for _, row := range rows[1:] {
		cells := make([]any, len(row))
		for i, cell := range row {
			cells[i] = typedCell(cell)
		}
		sheet.Rows = append(sheet.Rows, cells)
	}
	return sheet, nil
}

func typedCell(cell string) any {
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" {
		return cell
	}
	if n, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return n
	}
	return cell
}
