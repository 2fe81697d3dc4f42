package employeesvc

import (
	"context"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	deptmodels "github.com/batkt/sudalgaaQRBackend/internal/api/department/models"
	employeemodels "github.com/batkt/sudalgaaQRBackend/internal/api/employee/models"
	"github.com/batkt/sudalgaaQRBackend/internal/hierarchy"
)

type fakeStore struct {
	registers map[string]bool
	inserted  []employeemodels.Employee
}

func newFakeStore(existing ...string) *fakeStore {
	s := &fakeStore{registers: make(map[string]bool)}
	for _, register := range existing {
		s.registers[register] = true
	}
	return s
}

func (s *fakeStore) RegisterExists(_ context.Context, register string) (bool, error) {
	return s.registers[register], nil
}

func (s *fakeStore) InsertEmployees(_ context.Context, employees []employeemodels.Employee) (int, error) {
	s.inserted = append(s.inserted, employees...)
	return len(employees), nil
}

func testDept(name string, children ...deptmodels.Department) deptmodels.Department {
	return deptmodels.Department{ID: primitive.NewObjectID(), Name: name, Children: children}
}

func testRoots() []deptmodels.Department {
	return []deptmodels.Department{
		testDept("Төв газар",
			testDept("Эргүүл",
				testDept("7-р хэсэг"),
			),
		),
	}
}

func testOptions() ImportOptions {
	return ImportOptions{PasswordHash: "hashed", Policy: hierarchy.DefaultClassifierPolicy()}
}

func TestRunImport_BatchPartialSuccess(t *testing.T) {
	rows := [][]string{
		{"Нэр", "Регистрийн дугаар", "Газар", "Алба"},
		{"Бат", "УА96051234", "Төв газар", "Эргүүл"},
		{"Дорж", "УБ88112233", "Төв газар", "Эргүүл"},
		{"Сүх", "", "Төв газар", "Эргүүл"},
		{"Болд", "УВ90010101", "Төв газар", "Эргүүл"},
		{"Цэцэг", "УА96051234", "Төв газар", "Эргүүл"},
	}
	store := newFakeStore()

	result, err := RunImport(context.Background(), rows, testRoots(), store, testOptions())
	if err != nil {
		t.Fatalf("RunImport: %v", err)
	}

	if result.ImportedCount != 3 {
		t.Errorf("ImportedCount = %d, want 3", result.ImportedCount)
	}
	if len(result.Errors) != 2 {
		t.Fatalf("got %d errors, want 2: %+v", len(result.Errors), result.Errors)
	}
	if result.Errors[0].RowNumber != 4 || result.Errors[1].RowNumber != 6 {
		t.Errorf("error rows = %d,%d, want 4,6", result.Errors[0].RowNumber, result.Errors[1].RowNumber)
	}
	if !strings.Contains(result.ErrorText, "Мөр 4") || !strings.Contains(result.ErrorText, "Мөр 6") {
		t.Errorf("ErrorText missing row references: %q", result.ErrorText)
	}
	if len(store.inserted) != 3 {
		t.Errorf("store received %d employees, want 3", len(store.inserted))
	}
}

func TestRunImport_ResolvesDepartmentPaths(t *testing.T) {
	roots := testRoots()
	rows := [][]string{
		{"Нэр", "Регистрийн дугаар", "Газар", "Алба", "Хэсэг"},
		{"Бат", "УА96051234", "Төв газар", "Эргүүл", "7"},
	}
	store := newFakeStore()

	result, err := RunImport(context.Background(), rows, roots, store, testOptions())
	if err != nil {
		t.Fatalf("RunImport: %v", err)
	}
	if result.ImportedCount != 1 {
		t.Fatalf("ImportedCount = %d, want 1", result.ImportedCount)
	}

	assignments := store.inserted[0].DepartmentAssignments
	want := []string{"Төв газар", "Эргүүл", "7-р хэсэг"}
	if len(assignments) != len(want) {
		t.Fatalf("got %d assignments, want %d: %+v", len(assignments), len(want), assignments)
	}
	for i, a := range assignments {
		if a.DepartmentName != want[i] || a.Level != i {
			t.Errorf("assignment %d = %+v, want %s at level %d", i, a, want[i], i)
		}
	}
	if store.inserted[0].Password != "hashed" {
		t.Errorf("Password = %q, want the supplied hash", store.inserted[0].Password)
	}
}

func TestRunImport_UnresolvedPathStillImports(t *testing.T) {
	rows := [][]string{
		{"Нэр", "Регистрийн дугаар", "Газар"},
		{"Бат", "УА96051234", "Байхгүй нэгж 990011"},
	}
	store := newFakeStore()

	result, err := RunImport(context.Background(), rows, testRoots(), store, testOptions())
	if err != nil {
		t.Fatalf("RunImport: %v", err)
	}

	if result.ImportedCount != 1 {
		t.Errorf("ImportedCount = %d, want 1 (unresolved path must not block the row)", result.ImportedCount)
	}
	if len(store.inserted) != 1 || len(store.inserted[0].DepartmentAssignments) != 0 {
		t.Fatalf("employee not stored with empty assignments: %+v", store.inserted)
	}
	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0].Reason, "олдсонгүй") {
		t.Errorf("missing path-not-found error: %+v", result.Errors)
	}
}

func TestRunImport_SkipsBlankRows(t *testing.T) {
	rows := [][]string{
		{"Нэр", "Регистрийн дугаар"},
		{"Бат", "УА96051234"},
		{"", ""},
		{"", ""},
	}
	store := newFakeStore()

	result, err := RunImport(context.Background(), rows, testRoots(), store, testOptions())
	if err != nil {
		t.Fatalf("RunImport: %v", err)
	}
	if result.TotalRows != 1 {
		t.Errorf("TotalRows = %d, want 1 (blank rows are not counted)", result.TotalRows)
	}
	if result.ImportedCount != 1 || len(result.Errors) != 0 {
		t.Errorf("imported %d with %d errors, want 1 and 0", result.ImportedCount, len(result.Errors))
	}
}

func TestRunImport_StoredRegisterRejected(t *testing.T) {
	rows := [][]string{
		{"Нэр", "Регистрийн дугаар"},
		{"Бат", "УА96051234"},
	}
	store := newFakeStore("УА96051234")

	result, err := RunImport(context.Background(), rows, testRoots(), store, testOptions())
	if err != nil {
		t.Fatalf("RunImport: %v", err)
	}
	if result.ImportedCount != 0 || len(result.Errors) != 1 {
		t.Fatalf("imported %d with %d errors, want 0 and 1", result.ImportedCount, len(result.Errors))
	}
	if !strings.Contains(result.Errors[0].Reason, "бүртгэлтэй") {
		t.Errorf("unexpected reason: %q", result.Errors[0].Reason)
	}
}

func TestRunImport_MissingRegisterColumn(t *testing.T) {
	rows := [][]string{
		{"Нэр", "Утасны дугаар"},
		{"Бат", "99112233"},
	}
	store := newFakeStore()

	if _, err := RunImport(context.Background(), rows, testRoots(), store, testOptions()); err == nil {
		t.Fatal("RunImport accepted a sheet without a register column")
	}
}

func TestRunImport_NoDataRows(t *testing.T) {
	rows := [][]string{{"Нэр", "Регистрийн дугаар"}}
	store := newFakeStore()

	if _, err := RunImport(context.Background(), rows, testRoots(), store, testOptions()); err == nil {
		t.Fatal("RunImport accepted a header-only sheet")
	}
}
