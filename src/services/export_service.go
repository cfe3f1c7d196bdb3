package services

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/username/orderlens/src/models"
	"github.com/username/orderlens/src/security/validation"
	"github.com/username/orderlens/src/utils"
)

const exportSheetName = "Orders"

type exportServiceImpl struct{}

func NewExportService() ExportService {
	return &exportServiceImpl{}
}

// BuildWorkbook renders the record view into a single-sheet workbook.
// Date cells render as dd/MM/yyyy, or dd/MM/yyyy HH:mm:ss for fields
// carrying a time-of-day hint; currency cells stay numeric; text cells
// are escaped against formula injection.
func (s *exportServiceImpl) BuildWorkbook(records []models.OrderRecord, columns []models.Column) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), exportSheetName); err != nil {
		return nil, fmt.Errorf("failed to name export sheet: %w", err)
	}

	header := make([]any, len(columns))
	for i, col := range columns {
		header[i] = col.Header
	}
	if err := f.SetSheetRow(exportSheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write export header: %w", err)
	}

	for i, record := range records {
		row := make([]any, len(columns))
		for j, col := range columns {
			row[j] = exportCell(record.Values[col.Key], col)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(exportSheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write export row %d: %w", i, err)
		}
	}

	return f, nil
}

func exportCell(value any, col models.Column) any {
	switch v := value.(type) {
	case time.Time:
		if col.WithTime {
			return utils.FormatDateTime(v)
		}
		return utils.FormatDay(v)
	case float64:
		return v
	case string:
		return validation.SanitizeForFormulaInjection(validation.StripUnprintable(v))
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}
