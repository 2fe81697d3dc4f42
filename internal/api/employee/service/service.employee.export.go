package employeesvc

import (
	"context"
	"fmt"
	"io"

	"github.com/batkt/sudalgaaQRBackend/internal/hierarchy"
	"github.com/batkt/sudalgaaQRBackend/internal/spreadsheet"
)

const (
	headerSurname   = "Овог"
	headerName      = "Нэр"
	headerRegister  = "Регистрийн дугаар"
	headerPhone     = "Утасны дугаар"
	headerLoginName = "Хувийн дугаар"
	headerSection   = "Хэсэг"
)

// exportColumns builds the ordered column list: identity fields then one
// department column per hierarchy level.
func exportColumns(depth int) []spreadsheet.Column {
	columns := []spreadsheet.Column{
		{Header: headerSurname, Width: 18},
		{Header: headerName, Width: 18},
		{Header: headerRegister, Width: 20},
		{Header: headerPhone, Width: 16},
		{Header: headerLoginName, Width: 16},
	}
	if depth < 1 {
		depth = 1
	}
	for level := 1; level <= depth; level++ {
		columns = append(columns, spreadsheet.Column{
			Header: fmt.Sprintf("%s %d", headerSection, level),
			Width:  24,
		})
	}
	return columns
}

// WriteTemplate writes an empty import template sized to the current
// hierarchy depth.
func (s *EmployeeService) WriteTemplate(ctx context.Context, w io.Writer) error {
	flat, err := s.DepartmentService.GetFlattened(ctx)
	if err != nil {
		return err
	}
	depth := 0
	for _, entry := range flat {
		if entry.Level+1 > depth {
			depth = entry.Level + 1
		}
	}

	f, err := spreadsheet.NewWorkbook(spreadsheet.EmployeeSheetName, exportColumns(depth))
	if err != nil {
		return err
	}
	defer f.Close()
	return spreadsheet.WriteTo(f, w)
}

// WriteExport writes every employee with department names re-resolved against
// the live tree, one column per hierarchy level.
func (s *EmployeeService) WriteExport(ctx context.Context, w io.Writer) error {
	employees, err := s.FindAllResolved(ctx)
	if err != nil {
		return err
	}
	roots, err := s.DepartmentService.GetHierarchy(ctx)
	if err != nil {
		return err
	}

	depth := hierarchy.MaxDepth(roots)
	for _, employee := range employees {
		for _, assignment := range employee.DepartmentAssignments {
			if assignment.Level+1 > depth {
				depth = assignment.Level + 1
			}
		}
	}

	f, err := spreadsheet.NewWorkbook(spreadsheet.EmployeeSheetName, exportColumns(depth))
	if err != nil {
		return err
	}
	defer f.Close()

	for i, employee := range employees {
		values := []interface{}{
			employee.Surname,
			employee.Name,
			employee.Register,
			employee.Phone,
			employee.LoginName,
		}
		names := make([]string, depth)
		for _, assignment := range employee.DepartmentAssignments {
			if assignment.Level >= 0 && assignment.Level < depth {
				names[assignment.Level] = assignment.DepartmentName
			}
		}
		for _, name := range names {
			values = append(values, name)
		}
		if err := spreadsheet.AppendRow(f, spreadsheet.EmployeeSheetName, i+2, values); err != nil {
			return err
		}
	}

	return spreadsheet.WriteTo(f, w)
}
