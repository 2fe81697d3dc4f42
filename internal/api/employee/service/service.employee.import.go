package employeesvc

import (
	"context"
	"fmt"
	"strings"

	deptmodels "github.com/batkt/sudalgaaQRBackend/internal/api/department/models"
	employeedto "github.com/batkt/sudalgaaQRBackend/internal/api/employee/dto"
	employeemodels "github.com/batkt/sudalgaaQRBackend/internal/api/employee/models"
	"github.com/batkt/sudalgaaQRBackend/internal/common"
	"github.com/batkt/sudalgaaQRBackend/internal/hierarchy"
)

// ImportStore is the persistence surface the import pipeline needs. The
// employee service implements it; tests substitute a fake.
type ImportStore interface {
	RegisterExists(ctx context.Context, register string) (bool, error)
	InsertEmployees(ctx context.Context, employees []employeemodels.Employee) (int, error)
}

// ImportOptions tunes one import run.
type ImportOptions struct {
	// PasswordHash is the pre-hashed default password assigned to every
	// imported employee.
	PasswordHash string
	Policy       hierarchy.ClassifierPolicy
}

// RunImport drives the row-by-row import over decoded sheet rows. Row 0 is
// the header. Row-scoped failures are collected, never aborting the batch;
// employees whose department path cannot be resolved are still imported with
// empty assignments. All surviving rows are inserted in one batch at the end.
func RunImport(ctx context.Context, rows [][]string, roots []deptmodels.Department, store ImportStore, opts ImportOptions) (*employeedto.ImportResult, error) {
	if len(rows) < 2 {
		return nil, common.NewError(common.ErrCodeImportStructure, "Файлд өгөгдлийн мөр алга байна", common.StatusBadRequest, nil)
	}

	flat := hierarchy.Flatten(roots)
	columnMap := hierarchy.ClassifyColumns(rows[0], rows[1:], flat, opts.Policy)
	if columnMap.Name == -1 {
		return nil, common.NewError(common.ErrCodeImportStructure, "Нэрийн багана олдсонгүй", common.StatusBadRequest, nil)
	}
	if columnMap.Register == -1 {
		return nil, common.NewError(common.ErrCodeImportStructure, "Регистрийн дугаарын багана олдсонгүй", common.StatusBadRequest, nil)
	}

	result := &employeedto.ImportResult{}
	seenRegisters := make(map[string]bool)
	var employees []employeemodels.Employee

	cell := func(row []string, col int) string {
		if col < 0 || col >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[col])
	}

	addError := func(rowNumber int, reason string) {
		result.Errors = append(result.Errors, employeedto.RowError{RowNumber: rowNumber, Reason: reason})
	}

	for i, row := range rows[1:] {
		rowNumber := i + 2 // 1-based, header is row 1

		name := cell(row, columnMap.Name)
		register := strings.ToUpper(cell(row, columnMap.Register))

		// Blank row, not an error.
		if name == "" && register == "" {
			continue
		}
		result.TotalRows++

		if name == "" {
			addError(rowNumber, "нэр хоосон байна")
			continue
		}
		if register == "" {
			addError(rowNumber, "регистрийн дугаар хоосон байна")
			continue
		}
		if seenRegisters[register] {
			addError(rowNumber, fmt.Sprintf("регистрийн дугаар файл дотор давхардсан байна (%s)", register))
			continue
		}
		exists, err := store.RegisterExists(ctx, register)
		if err != nil {
			return nil, err
		}
		if exists {
			addError(rowNumber, fmt.Sprintf("регистрийн дугаартай ажилтан бүртгэлтэй байна (%s)", register))
			continue
		}
		seenRegisters[register] = true

		employee := employeemodels.Employee{
			Surname:     cell(row, columnMap.Surname),
			Name:        name,
			Register:    register,
			Phone:       cell(row, columnMap.Phone),
			LoginName:   cell(row, columnMap.LoginName),
			AccessLevel: cell(row, columnMap.AccessLevel),
			Password:    opts.PasswordHash,
		}

		resolution := hierarchy.ResolveRow(row, columnMap.Departments, roots, flat)
		employee.DepartmentAssignments = resolution.Assignments
		switch {
		case resolution.AttemptedPath != "":
			addError(rowNumber, fmt.Sprintf("хэлтсийн зам олдсонгүй (%s)", resolution.AttemptedPath))
		case resolution.FallbackUsed:
			result.Warnings = append(result.Warnings, employeedto.RowError{
				RowNumber: rowNumber,
				Reason:    fmt.Sprintf("зөвхөн нэг түвшний хэлтэс таарлаа (%s)", resolution.Assignments[0].DepartmentName),
			})
		}

		employees = append(employees, employee)
	}

	if len(employees) > 0 {
		inserted, err := store.InsertEmployees(ctx, employees)
		if err != nil {
			return nil, err
		}
		result.ImportedCount = inserted
	}

	if len(result.Errors) > 0 {
		lines := make([]string, len(result.Errors))
		for i, rowErr := range result.Errors {
			lines[i] = fmt.Sprintf("Мөр %d: %s", rowErr.RowNumber, rowErr.Reason)
		}
		result.ErrorText = strings.Join(lines, "\n")
	}

	return result, nil
}
