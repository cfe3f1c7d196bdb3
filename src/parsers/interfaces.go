package parsers

import (
	"io"

	"github.com/username/orderlens/src/models"
)

// SheetParser reads the first worksheet of an uploaded file into a raw
// header-plus-rows table. Cell values keep their source representation
// (string or float64) so the coercer can tell serial dates from
// formatted strings.
type SheetParser interface {
	Parse(file io.Reader) (*models.RawSheet, error)
}
