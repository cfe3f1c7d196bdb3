package models

import "time"

// RawSheet is the unparsed tabular input: one header row followed by data
// rows. Cells may be strings or numbers depending on the source format
// (XLSX cells that look numeric arrive as float64 so date serials can be
// told apart from formatted date strings).
type RawSheet struct {
	Headers []string
	Rows    [][]any
}

// Column describes one ingested column for grid/export collaborators.
type Column struct {
	Header   string `json:"header"` // original header text
	Key      string `json:"key"`    // canonical field key
	Class    string `json:"class"`  // "date", "currency" or "text"
	WithTime bool   `json:"with_time"`
}

// OrderRecord is one canonical order row. Values maps canonical field
// keys to typed values: time.Time (or nil for an unparseable date),
// float64 for currency/numeric fields, string for everything else.
// Records are never mutated after construction; filtered views are new
// slices over the same records.
type OrderRecord struct {
	ID     int            `json:"id"` // zero-based row position in the source
	Values map[string]any `json:"values"`
}

// Date returns the record's value for a date field, or false when the
// field is absent or was unparseable.
func (r OrderRecord) Date(key string) (time.Time, bool) {
	t, ok := r.Values[key].(time.Time)
	return t, ok
}

// Number returns the record's numeric value for a currency field,
// defaulting to 0 when absent.
func (r OrderRecord) Number(key string) float64 {
	if v, ok := r.Values[key].(float64); ok {
		return v
	}
	return 0
}

// Text returns the record's string value for a text field, defaulting to
// the empty string when absent.
func (r OrderRecord) Text(key string) string {
	if v, ok := r.Values[key].(string); ok {
		return v
	}
	return ""
}
