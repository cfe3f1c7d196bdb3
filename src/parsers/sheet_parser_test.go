package parsers

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestGetParser(t *testing.T) {
	for _, name := range []string{"orders.csv", "orders.txt", "ORDERS.CSV"} {
		p, err := GetParser(name)
		require.NoError(t, err, name)
		assert.IsType(t, &CSVParser{}, p, name)
	}

	p, err := GetParser("orders.xlsx")
	require.NoError(t, err)
	assert.IsType(t, &XLSXParser{}, p)

	_, err = GetParser("orders.pdf")
	assert.Error(t, err)
	_, err = GetParser("orders")
	assert.Error(t, err)
}

func TestCSVParserParse(t *testing.T) {
	input := "Ngày đối soát,Trạng thái,Doanh thu\n" +
		"15/03/2024,Thành công,150000\n" +
		"16/03/2024,Đã hủy\n" // short row tolerated

	sheet, err := NewCSVParser().Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"Ngày đối soát", "Trạng thái", "Doanh thu"}, sheet.Headers)
	require.Len(t, sheet.Rows, 2)
	assert.Equal(t, []any{"15/03/2024", "Thành công", "150000"}, sheet.Rows[0])
	assert.Equal(t, []any{"16/03/2024", "Đã hủy"}, sheet.Rows[1])
}

func TestCSVParserParseEmpty(t *testing.T) {
	_, err := NewCSVParser().Parse(strings.NewReader(""))
	assert.Error(t, err)
}

func TestXLSXParserParse(t *testing.T) {
	f := excelize.NewFile()
	sheetName := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheetName, "A1", &[]any{"Ngày đối soát", "Trạng thái", "Doanh thu"}))
	require.NoError(t, f.SetSheetRow(sheetName, "A2", &[]any{45000, "Thành công", 150000}))
	require.NoError(t, f.SetSheetRow(sheetName, "A3", &[]any{"15/03/2024", "Đã hủy", "50000"}))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	require.NoError(t, f.Close())

	sheet, err := NewXLSXParser().Parse(&buf)
	require.NoError(t, err)

	assert.Equal(t, []string{"Ngày đối soát", "Trạng thái", "Doanh thu"}, sheet.Headers)
	require.Len(t, sheet.Rows, 2)

	// Raw numeric cells surface as float64 so date serials keep the
	// serial path; formatted strings stay strings.
	assert.Equal(t, 45000.0, sheet.Rows[0][0])
	assert.Equal(t, "Thành công", sheet.Rows[0][1])
	assert.Equal(t, 150000.0, sheet.Rows[0][2])
	assert.Equal(t, "15/03/2024", sheet.Rows[1][0])
}

func TestXLSXParserRejectsGarbage(t *testing.T) {
	_, err := NewXLSXParser().Parse(strings.NewReader("this is not a workbook"))
	assert.Error(t, err)
}
