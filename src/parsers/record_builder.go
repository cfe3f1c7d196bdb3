package parsers

import (
	"errors"

	"github.com/username/orderlens/src/logger"
	"github.com/username/orderlens/src/models"
)

// ErrNotEnoughRows is the structural failure: a sheet needs one header
// row plus at least one data row to ingest.
var ErrNotEnoughRows = errors.New("sheet must contain a header row and at least one data row")

// BuildReport is the auxiliary output of a build, consumed by filter UIs
// and grid collaborators. It is not part of the record contract.
type BuildReport struct {
	Columns []models.Column `json:"columns"`
	// DistinctStores lists store names in encounter order.
	DistinctStores []string `json:"distinct_stores"`
	// MissingFields are expected canonical keys absent from the header;
	// statistics keyed off them read as zero/empty.
	MissingFields []string `json:"missing_fields,omitempty"`
	// DateIssues counts non-empty date cells that failed to parse.
	DateIssues int `json:"date_issues"`
}

// BuildRecords turns a raw sheet into the canonical record sequence.
// Headers are normalized once; each cell is coerced per its field class;
// record IDs are the zero-based row positions. When two raw headers
// normalize to the same key the later column wins (logged, not an error).
func BuildRecords(sheet *models.RawSheet) ([]models.OrderRecord, *BuildReport, error) {
	if sheet == nil || len(sheet.Headers) == 0 || len(sheet.Rows) == 0 {
		return nil, nil, ErrNotEnoughRows
	}

	keys := make([]string, len(sheet.Headers))
	byKey := make(map[string]string, len(sheet.Headers))
	report := &BuildReport{}
	for i, header := range sheet.Headers {
		key := NormalizeHeader(header)
		keys[i] = key
		if prev, dup := byKey[key]; dup && logger.L != nil {
			logger.L.Warn("Header collision, later column wins", "key", key, "firstHeader", prev, "laterHeader", header)
		}
		byKey[key] = header
		spec := models.SpecOf(key)
		report.Columns = append(report.Columns, models.Column{
			Header:   header,
			Key:      key,
			Class:    spec.Class.String(),
			WithTime: spec.WithTime,
		})
	}

	for _, want := range models.ExpectedFields() {
		if _, ok := byKey[want]; !ok {
			report.MissingFields = append(report.MissingFields, want)
		}
	}
	if len(report.MissingFields) > 0 && logger.L != nil {
		logger.L.Warn("Expected columns missing from sheet; affected statistics degrade to zero/empty",
			"missing", report.MissingFields)
	}

	storeSeen := make(map[string]bool)
	records := make([]models.OrderRecord, 0, len(sheet.Rows))
	for i, row := range sheet.Rows {
		values := make(map[string]any, len(keys))
		for j, key := range keys {
			var raw any
			if j < len(row) {
				raw = row[j]
			}
			coerced := CoerceValue(raw, key)
			if coerced == nil && !isEmptyRaw(raw) {
				report.DateIssues++
			}
			values[key] = coerced
		}

		record := models.OrderRecord{ID: i, Values: values}
		if store := record.Text(models.FieldStoreName); store != "" && !storeSeen[store] {
			storeSeen[store] = true
			report.DistinctStores = append(report.DistinctStores, store)
		}
		records = append(records, record)
	}

	return records, report, nil
}

func isEmptyRaw(raw any) bool {
	if raw == nil {
		return true
	}
	s, ok := raw.(string)
	return ok && s == ""
}
