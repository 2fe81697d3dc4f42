// Package spreadsheet wraps excelize so the rest of the system only sees
// decoded rows and ordered column definitions, never cell references.
package spreadsheet

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/batkt/sudalgaaQRBackend/internal/common"
)

// EmployeeSheetName is the sheet the import template carries and the import
// endpoint requires.
const EmployeeSheetName = "Ажилтан"

// Column is one ordered output column.
type Column struct {
	Header string
	Width  float64
}

// ReadSheet decodes the named sheet into rows of trimmed-right string cells.
// An empty name selects the workbook's first sheet. Returns the actual sheet
// name alongside the rows.
func ReadSheet(r io.Reader, name string) (string, [][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return "", nil, common.NewError(common.ErrCodeImportStructure, common.MsgInvalidFormat, common.StatusBadRequest, err.Error())
	}
	defer f.Close()

	if name == "" {
		name = f.GetSheetName(0)
	}
	rows, err := f.GetRows(name)
	if err != nil {
		return "", nil, common.NewError(common.ErrCodeImportStructure, common.MsgInvalidFormat, common.StatusBadRequest, err.Error())
	}
	return name, rows, nil
}

// ReadEmployeeSheet decodes an uploaded workbook and enforces the employee
// sheet name so imports built from a foreign template fail early.
func ReadEmployeeSheet(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, common.NewError(common.ErrCodeImportStructure, common.MsgInvalidFormat, common.StatusBadRequest, err.Error())
	}
	defer f.Close()

	rows, err := f.GetRows(EmployeeSheetName)
	if err != nil {
		return nil, common.ErrWrongSheet
	}
	if len(rows) == 0 {
		return nil, common.ErrWrongSheet
	}
	return rows, nil
}

// NewWorkbook builds a single-sheet workbook with the given header columns.
// The caller appends data rows before serialization.
func NewWorkbook(sheetName string, columns []Column) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, err
	}

	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, col.Header); err != nil {
			return nil, err
		}
		if col.Width > 0 {
			colName, err := excelize.ColumnNumberToName(i + 1)
			if err != nil {
				return nil, err
			}
			if err := f.SetColWidth(sheetName, colName, colName, col.Width); err != nil {
				return nil, err
			}
		}
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil && len(columns) > 0 {
		last, _ := excelize.CoordinatesToCellName(len(columns), 1)
		_ = f.SetCellStyle(sheetName, "A1", last, style)
	}

	return f, nil
}

// AppendRow writes one data row; rowNumber is 1-based and includes the header
// row, so the first data row is 2.
func AppendRow(f *excelize.File, sheetName string, rowNumber int, values []interface{}) error {
	for i, value := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, rowNumber)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, value); err != nil {
			return fmt.Errorf("row %d: %w", rowNumber, err)
		}
	}
	return nil
}

// WriteTo serializes the workbook into the writer as xlsx bytes.
func WriteTo(f *excelize.File, w io.Writer) error {
	_, err := f.WriteTo(w)
	return err
}
