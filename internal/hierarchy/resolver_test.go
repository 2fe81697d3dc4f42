package hierarchy

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	deptmodels "github.com/batkt/sudalgaaQRBackend/internal/api/department/models"
)

func assignmentNames(assignments []Assignment) []string {
	names := make([]string, len(assignments))
	for i, a := range assignments {
		names[i] = a.DepartmentName
	}
	return names
}

func TestFindCandidate_ExactBeatsFuzzyAnywhereInList(t *testing.T) {
	// The fuzzy match sits before the exact match in storage order; the
	// exact pass still wins because passes run over the whole list.
	nodes := []deptmodels.Department{
		dept("Эргүүлийн алба"),
		dept("Эргүүл"),
	}
	got := findCandidate("Эргүүл", nodes)
	if got == nil || got.Name != "Эргүүл" {
		t.Fatalf("findCandidate picked %v, want the exact match Эргүүл", got)
	}
}

func TestFindCandidate_FuzzyBothDirections(t *testing.T) {
	nodes := []deptmodels.Department{dept("Төв газар")}

	if got := findCandidate("төв", nodes); got == nil {
		t.Error("label contained in name: no candidate")
	}
	if got := findCandidate("Төв газар (шинэ)", nodes); got == nil {
		t.Error("name contained in label: no candidate")
	}
}

func TestFindCandidate_FuzzySkipsEmptyNames(t *testing.T) {
	nodes := []deptmodels.Department{
		dept("   "),
		dept("Захиргаа"),
	}
	got := findCandidate("захиргаа", nodes)
	if got == nil || got.Name != "Захиргаа" {
		t.Fatalf("findCandidate picked %v, want Захиргаа (empty name must not match everything)", got)
	}
}

func TestFindCandidate_ExactDottedCodeBeatsNumericLookalike(t *testing.T) {
	nodes := []deptmodels.Department{
		dept("1.1"),
		dept("11"),
	}
	got := findCandidate("1.1", nodes)
	if got == nil || got.Name != "1.1" {
		t.Fatalf("findCandidate(%q) picked %v, want the exact node 1.1", "1.1", got)
	}
}

func TestFindCandidate_DigitLabel(t *testing.T) {
	nodes := []deptmodels.Department{
		dept("Нэгдүгээр хэлтэс"),
		dept("7-р хэсэг"),
	}
	got := findCandidate("7", nodes)
	if got == nil || got.Name != "7-р хэсэг" {
		t.Fatalf("findCandidate(%q) picked %v, want 7-р хэсэг", "7", got)
	}
}

func TestFindCandidate_NumericPassOnlyForPureIntegers(t *testing.T) {
	nodes := []deptmodels.Department{dept("7-р хэсэг")}
	if got := findCandidate("хэлтэс 7а", nodes); got != nil {
		t.Fatalf("non-integer label used the numeric pass: %v", got)
	}
}

func TestResolvePath_FullPath(t *testing.T) {
	roots := sampleTree()

	got := ResolvePath([]string{"Төв газар", "Эргүүл", "7"}, roots)
	want := []string{"Төв газар", "Эргүүл", "7-р хэсэг"}

	if len(got) != len(want) {
		t.Fatalf("resolved %v, want %v", assignmentNames(got), want)
	}
	for i, a := range got {
		if a.DepartmentName != want[i] {
			t.Errorf("assignment %d: %q, want %q", i, a.DepartmentName, want[i])
		}
		if a.Level != i {
			t.Errorf("assignment %d: level %d, want %d", i, a.Level, i)
		}
		if a.DepartmentID.IsZero() {
			t.Errorf("assignment %d: zero department id", i)
		}
	}
}

func TestResolvePath_PartialPathNoBacktracking(t *testing.T) {
	// "Захиргаа" fuzzy-matches nothing under Эргүүл, so the resolution stops
	// with the two matched levels instead of retrying other branches.
	roots := sampleTree()

	got := ResolvePath([]string{"Төв газар", "Эргүүл", "Захиргаа"}, roots)
	want := []string{"Төв газар", "Эргүүл"}

	if len(got) != len(want) {
		t.Fatalf("resolved %v, want %v", assignmentNames(got), want)
	}
	for i, a := range got {
		if a.DepartmentName != want[i] {
			t.Errorf("assignment %d: %q, want %q", i, a.DepartmentName, want[i])
		}
	}
}

func TestResolvePath_DeepStart(t *testing.T) {
	// The first label names a level-1 node; no root matches, so the search
	// descends and starts matching one level down.
	roots := sampleTree()

	got := ResolvePath([]string{"Эргүүл", "9"}, roots)
	want := []string{"Эргүүл", "9-р хэсэг"}

	if len(got) != len(want) {
		t.Fatalf("resolved %v, want %v", assignmentNames(got), want)
	}
	if got[0].Level != 1 || got[1].Level != 2 {
		t.Errorf("levels = %d,%d, want 1,2", got[0].Level, got[1].Level)
	}
}

func TestResolvePath_MissAndEmptyInput(t *testing.T) {
	roots := sampleTree()

	if got := ResolvePath([]string{"Огт байхгүй"}, roots); len(got) != 0 {
		t.Errorf("unknown label resolved to %v", assignmentNames(got))
	}
	if got := ResolvePath(nil, roots); len(got) != 0 {
		t.Errorf("nil labels resolved to %v", assignmentNames(got))
	}
	if got := ResolvePath([]string{"  ", ""}, roots); len(got) != 0 {
		t.Errorf("blank labels resolved to %v", assignmentNames(got))
	}
	if got := ResolvePath([]string{"Төв газар"}, nil); len(got) != 0 {
		t.Errorf("empty hierarchy resolved to %v", assignmentNames(got))
	}
}

func TestResolvePath_LabelsAreTrimmed(t *testing.T) {
	roots := sampleTree()
	got := ResolvePath([]string{"  Төв газар ", " Эргүүл"}, roots)
	if len(got) != 2 {
		t.Fatalf("resolved %v, want two levels", assignmentNames(got))
	}
}

func TestResolvePath_LatinThreeLevelHierarchy(t *testing.T) {
	roots := []deptmodels.Department{
		dept("Central",
			dept("Patrol",
				dept("Unit-7"),
			),
		),
	}

	got := ResolvePath([]string{"Central", "Patrol", "Unit-7"}, roots)
	want := []string{"Central", "Patrol", "Unit-7"}
	if len(got) != len(want) {
		t.Fatalf("resolved %v, want %v", assignmentNames(got), want)
	}
	for i, a := range got {
		if a.DepartmentName != want[i] || a.Level != i {
			t.Errorf("assignment %d = %+v, want %s at level %d", i, a, want[i], i)
		}
	}

	// An unknown unit keeps the two matched levels and stops there.
	got = ResolvePath([]string{"Central", "Patrol", "Unit-9"}, roots)
	want = []string{"Central", "Patrol"}
	if len(got) != len(want) {
		t.Fatalf("resolved %v, want %v", assignmentNames(got), want)
	}
	for i, a := range got {
		if a.DepartmentName != want[i] {
			t.Errorf("assignment %d: %q, want %q", i, a.DepartmentName, want[i])
		}
	}
}

func TestAncestorAssignments(t *testing.T) {
	roots := sampleTree()
	leaf := roots[0].Children[0].Children[1] // 9-р хэсэг

	got := AncestorAssignments(roots, leaf.ID)
	want := []string{"Төв газар", "Эргүүл", "9-р хэсэг"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", assignmentNames(got), want)
	}
	for i, a := range got {
		if a.DepartmentName != want[i] || a.Level != i {
			t.Errorf("assignment %d = %+v, want %s at level %d", i, a, want[i], i)
		}
	}

	if got := AncestorAssignments(roots, primitive.NewObjectID()); got != nil {
		t.Errorf("unknown leaf produced %v", assignmentNames(got))
	}
}

func TestResolveRow_AnnotatedColumnWinsOverLabels(t *testing.T) {
	roots := sampleTree()
	flat := Flatten(roots)
	leaf := roots[0].Children[0].Children[0] // 7-р хэсэг

	columns := []DepartmentColumn{
		{ColumnIndex: 0, Header: "Алба", Level: -1},
		{ColumnIndex: 1, Header: "7-р хэсэг", DepartmentID: leaf.ID, Level: 2},
	}
	// Column 0 holds a label that would resolve elsewhere; the annotated
	// column with data must win and splice the full ancestor chain.
	row := []string{"Салбар", "тийм"}

	res := ResolveRow(row, columns, roots, flat)
	want := []string{"Төв газар", "Эргүүл", "7-р хэсэг"}
	if len(res.Assignments) != len(want) {
		t.Fatalf("got %v, want %v", assignmentNames(res.Assignments), want)
	}
	for i, a := range res.Assignments {
		if a.DepartmentName != want[i] {
			t.Errorf("assignment %d: %q, want %q", i, a.DepartmentName, want[i])
		}
	}
	if res.FallbackUsed {
		t.Error("direct id resolution flagged as fallback")
	}
}

func TestResolveRow_DeepestAnnotatedColumnWins(t *testing.T) {
	roots := sampleTree()
	flat := Flatten(roots)
	parent := roots[0].Children[0]           // Эргүүл, level 1
	leaf := roots[0].Children[0].Children[1] // 9-р хэсэг, level 2

	columns := []DepartmentColumn{
		{ColumnIndex: 0, Header: "Эргүүл", DepartmentID: parent.ID, Level: 1},
		{ColumnIndex: 1, Header: "9-р хэсэг", DepartmentID: leaf.ID, Level: 2},
	}
	row := []string{"тийм", "тийм"}

	res := ResolveRow(row, columns, roots, flat)
	if len(res.Assignments) != 3 || res.Assignments[2].DepartmentName != "9-р хэсэг" {
		t.Fatalf("got %v, want the deeper column's chain", assignmentNames(res.Assignments))
	}
}

func TestResolveRow_LabelPath(t *testing.T) {
	roots := sampleTree()
	flat := Flatten(roots)

	columns := []DepartmentColumn{
		{ColumnIndex: 0, Header: "Газар", Level: -1},
		{ColumnIndex: 1, Header: "Алба", Level: -1},
		{ColumnIndex: 2, Header: "Хэсэг", Level: -1},
	}
	row := []string{"Төв газар", "Эргүүл", "9"}

	res := ResolveRow(row, columns, roots, flat)
	want := []string{"Төв газар", "Эргүүл", "9-р хэсэг"}
	if len(res.Assignments) != len(want) {
		t.Fatalf("got %v, want %v", assignmentNames(res.Assignments), want)
	}
	if res.FallbackUsed {
		t.Error("path resolution flagged as fallback")
	}
}

func TestResolveRow_SkipsEmptyCellsInPath(t *testing.T) {
	roots := sampleTree()
	flat := Flatten(roots)

	columns := []DepartmentColumn{
		{ColumnIndex: 0, Header: "Газар", Level: -1},
		{ColumnIndex: 1, Header: "Алба", Level: -1},
		{ColumnIndex: 2, Header: "Хэсэг", Level: -1},
	}
	row := []string{"Төв газар", "", "Эргүүл"}

	res := ResolveRow(row, columns, roots, flat)
	if len(res.Assignments) != 2 {
		t.Fatalf("got %v, want Төв газар > Эргүүл", assignmentNames(res.Assignments))
	}
}

func TestResolveRow_SingleLevelFallback(t *testing.T) {
	roots := sampleTree()
	flat := Flatten(roots)

	columns := []DepartmentColumn{
		{ColumnIndex: 0, Header: "Алба", Level: -1},
		{ColumnIndex: 1, Header: "Хэсэг", Level: -1},
	}
	// The flattened snapshot can hold nodes the tree search no longer
	// reaches (renamed subtree between snapshots); the fallback still
	// assigns the single node at its recorded level.
	flat = append(flat, FlatEntry{ID: primitive.NewObjectID(), Name: "Тусгай алба", Level: 1})
	row := []string{"Тусгай", "байхгүй зүйл"}

	res := ResolveRow(row, columns, roots, flat)
	if len(res.Assignments) != 1 {
		t.Fatalf("got %v, want a single fallback assignment", assignmentNames(res.Assignments))
	}
	if res.Assignments[0].DepartmentName != "Тусгай алба" {
		t.Errorf("fallback matched %q, want Тусгай алба", res.Assignments[0].DepartmentName)
	}
	if res.Assignments[0].Level != 1 {
		t.Errorf("fallback level = %d, want the node's recorded level 1", res.Assignments[0].Level)
	}
	if !res.FallbackUsed {
		t.Error("single-level fallback not flagged")
	}
}

func TestResolveRow_PathNotFound(t *testing.T) {
	roots := sampleTree()
	flat := Flatten(roots)

	columns := []DepartmentColumn{
		{ColumnIndex: 0, Header: "Газар", Level: -1},
		{ColumnIndex: 1, Header: "Алба", Level: -1},
	}
	row := []string{"Байхгүй газар 001122", "Байхгүй алба 334455"}

	res := ResolveRow(row, columns, roots, flat)
	if len(res.Assignments) != 0 {
		t.Fatalf("got %v, want no assignments", assignmentNames(res.Assignments))
	}
	if res.AttemptedPath != "Байхгүй газар 001122 > Байхгүй алба 334455" {
		t.Errorf("AttemptedPath = %q", res.AttemptedPath)
	}
}

func TestResolveRow_NoDepartmentData(t *testing.T) {
	roots := sampleTree()
	flat := Flatten(roots)

	columns := []DepartmentColumn{{ColumnIndex: 3, Header: "Алба", Level: -1}}
	row := []string{"Бат", "УА96051234"}

	res := ResolveRow(row, columns, roots, flat)
	if len(res.Assignments) != 0 || res.AttemptedPath != "" {
		t.Fatalf("empty department cells produced %+v", res)
	}
}
