package parsers

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/username/orderlens/src/models"
)

func TestCoerceValueDateField(t *testing.T) {
	got := CoerceValue("15/03/2024", models.FieldSettlementDate)
	parsed, ok := got.(time.Time)
	require.True(t, ok, "expected a time.Time, got %T", got)
	assert.True(t, parsed.Equal(time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local)))

	assert.Nil(t, CoerceValue("not a date", models.FieldSettlementDate))
	assert.Nil(t, CoerceValue(nil, models.FieldDeliveredDate))
	assert.Nil(t, CoerceValue("", models.FieldDeliveredDate))
}

func TestCoerceValueCurrencyField(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
	}{
		{"plain float", 150000.0, 150000},
		{"int", 42, 42},
		{"numeric string", "150000", 150000},
		{"grouped vietnamese format", "1.234,56", 1234.56},
		{"grouping dots only", "1.234.567", 1234567},
		{"decimal comma", "12,5", 12.5},
		{"empty string", "", 0},
		{"whitespace", "   ", 0},
		{"garbage string", "abc", 0},
		{"nil", nil, 0},
		{"nan input", math.NaN(), 0},
		{"positive infinity", math.Inf(1), 0},
		{"unsupported type", struct{}{}, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := CoerceValue(tc.in, models.FieldRevenue)
			n, ok := got.(float64)
			require.True(t, ok, "expected a float64, got %T", got)
			assert.False(t, math.IsNaN(n), "currency coercion must never produce NaN")
			assert.Equal(t, tc.want, n)
		})
	}
}

func TestCoerceValueTextField(t *testing.T) {
	assert.Equal(t, "Thành công", CoerceValue("Thành công", models.FieldStatus))
	assert.Equal(t, "", CoerceValue(nil, models.FieldStatus))
	assert.Equal(t, "12345", CoerceValue(12345.0, models.FieldStatus))
	assert.Equal(t, "12.5", CoerceValue(12.5, models.FieldStatus))

	stamp := time.Date(2024, 3, 15, 10, 30, 0, 0, time.Local)
	assert.Equal(t, "15/03/2024 10:30:00", CoerceValue(stamp, models.FieldStatus))
}

func TestCoerceValueUnknownKeyIsText(t *testing.T) {
	assert.Equal(t, "whatever", CoerceValue("whatever", "some_unknown_column"))
	assert.Equal(t, "7", CoerceValue(7.0, "some_unknown_column"))
}
