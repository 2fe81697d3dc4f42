package spreadsheet

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildWorkbook(t *testing.T, sheetName string, rows [][]interface{}) *bytes.Buffer {
	t.Helper()

	f, err := NewWorkbook(sheetName, []Column{
		{Header: "Овог", Width: 20},
		{Header: "Нэр", Width: 20},
		{Header: "Регистрийн дугаар", Width: 24},
	})
	require.NoError(t, err)

	for i, row := range rows {
		require.NoError(t, AppendRow(f, sheetName, i+2, row))
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTo(f, &buf))
	return &buf
}

func TestReadEmployeeSheetRoundTrip(t *testing.T) {
	buf := buildWorkbook(t, EmployeeSheetName, [][]interface{}{
		{"Бат", "Дорж", "УП99112233"},
		{"Сүх", "Болд", "АА00112233"},
	})

	rows, err := ReadEmployeeSheet(buf)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Овог", "Нэр", "Регистрийн дугаар"}, rows[0])
	assert.Equal(t, "Дорж", rows[1][1])
	assert.Equal(t, "АА00112233", rows[2][2])
}

func TestReadEmployeeSheetRejectsWrongSheet(t *testing.T) {
	buf := buildWorkbook(t, "Sheet1", [][]interface{}{
		{"Бат", "Дорж", "УП99112233"},
	})

	_, err := ReadEmployeeSheet(buf)
	assert.Error(t, err)
}

func TestReadSheetDefaultsToFirstSheet(t *testing.T) {
	buf := buildWorkbook(t, "Тайлан", [][]interface{}{
		{"Бат", "Дорж", "УП99112233"},
	})

	name, rows, err := ReadSheet(buf, "")
	require.NoError(t, err)
	assert.Equal(t, "Тайлан", name)
	require.Len(t, rows, 2)
	assert.Equal(t, "Бат", rows[1][0])
}

func TestReadSheetRejectsGarbage(t *testing.T) {
	_, _, err := ReadSheet(bytes.NewBufferString("not an xlsx file"), "")
	assert.Error(t, err)
}
