package parsers

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/username/orderlens/src/logger"
	"github.com/username/orderlens/src/models"
	"github.com/username/orderlens/src/utils"
)

// CoerceValue converts a raw cell value into the typed value implied by
// the field's class: time.Time (nil when unparseable) for date fields,
// float64 (never NaN, dirty input defaults to 0) for currency fields,
// string for everything else. It never fails; callers wanting strict
// validation must pre-check raw values themselves.
func CoerceValue(raw any, key string) any {
	switch models.ClassOf(key) {
	case models.FieldDate:
		if t, ok := utils.ParseDate(raw); ok {
			return t
		}
		return nil
	case models.FieldCurrency:
		return coerceNumber(raw)
	default:
		return coerceText(raw)
	}
}

// coerceNumber parses currency/numeric cells. String inputs have
// grouping dots removed and decimal commas normalized before parsing,
// so "1.234,56" reads as 1234.56.
func coerceNumber(raw any) float64 {
	switch v := raw.(type) {
	case nil:
		return 0
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0
		}
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0
		}
		cleaned := strings.ReplaceAll(s, ".", "")
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
		n, err := strconv.ParseFloat(cleaned, 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			if logger.L != nil {
				logger.L.Debug("Unparseable numeric cell, defaulting to 0", "value", v)
			}
			return 0
		}
		return n
	default:
		return 0
	}
}

func coerceText(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case time.Time:
		return utils.FormatDateTime(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
