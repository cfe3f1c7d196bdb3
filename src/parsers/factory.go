package parsers

import (
	"fmt"
	"path/filepath"
	"strings"
)

// GetParser picks the sheet parser for an uploaded file by extension.
func GetParser(filename string) (SheetParser, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv", ".txt":
		return NewCSVParser(), nil
	case ".xlsx":
		return NewXLSXParser(), nil
	default:
		return nil, fmt.Errorf("no parser available for file type: %s", filepath.Ext(filename))
	}
}
