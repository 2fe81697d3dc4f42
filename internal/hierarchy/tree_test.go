package hierarchy

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	deptmodels "github.com/batkt/sudalgaaQRBackend/internal/api/department/models"
)

func dept(name string, children ...deptmodels.Department) deptmodels.Department {
	return deptmodels.Department{
		ID:       primitive.NewObjectID(),
		Name:     name,
		Children: children,
	}
}

// sampleTree builds the fixture used across the package tests:
//
//	Төв газар
//	├── Эргүүл
//	│   ├── 7-р хэсэг
//	│   └── 9-р хэсэг
//	└── Захиргаа
//	Салбар
//	└── Хяналт
func sampleTree() []deptmodels.Department {
	return []deptmodels.Department{
		dept("Төв газар",
			dept("Эргүүл",
				dept("7-р хэсэг"),
				dept("9-р хэсэг"),
			),
			dept("Захиргаа"),
		),
		dept("Салбар",
			dept("Хяналт"),
		),
	}
}

func TestFlatten_PreOrderWithLevels(t *testing.T) {
	roots := sampleTree()
	flat := Flatten(roots)

	wantNames := []string{"Төв газар", "Эргүүл", "7-р хэсэг", "9-р хэсэг", "Захиргаа", "Салбар", "Хяналт"}
	wantLevels := []int{0, 1, 2, 2, 1, 0, 1}

	if len(flat) != len(wantNames) {
		t.Fatalf("Flatten returned %d entries, want %d", len(flat), len(wantNames))
	}
	for i, entry := range flat {
		if entry.Name != wantNames[i] {
			t.Errorf("entry %d: name %q, want %q", i, entry.Name, wantNames[i])
		}
		if entry.Level != wantLevels[i] {
			t.Errorf("entry %d (%s): level %d, want %d", i, entry.Name, entry.Level, wantLevels[i])
		}
	}
}

func TestFlatten_TrimsNames(t *testing.T) {
	roots := []deptmodels.Department{dept("  Төв газар  ")}
	flat := Flatten(roots)
	if len(flat) != 1 || flat[0].Name != "Төв газар" {
		t.Fatalf("Flatten did not trim name: %+v", flat)
	}
}

func TestFlatten_Empty(t *testing.T) {
	if got := Flatten(nil); len(got) != 0 {
		t.Fatalf("Flatten(nil) returned %d entries", len(got))
	}
}

func TestFindAncestors_DeepNode(t *testing.T) {
	roots := sampleTree()
	target := roots[0].Children[0].Children[0] // 7-р хэсэг

	ancestors := FindAncestors(roots, target.ID)
	if len(ancestors) != 2 {
		t.Fatalf("got %d ancestors, want 2", len(ancestors))
	}
	if ancestors[0].Name != "Төв газар" || ancestors[0].Level != 0 {
		t.Errorf("ancestor 0 = %+v, want Төв газар at level 0", ancestors[0])
	}
	if ancestors[1].Name != "Эргүүл" || ancestors[1].Level != 1 {
		t.Errorf("ancestor 1 = %+v, want Эргүүл at level 1", ancestors[1])
	}
}

func TestFindAncestors_RootAndUnknown(t *testing.T) {
	roots := sampleTree()

	if got := FindAncestors(roots, roots[0].ID); len(got) != 0 {
		t.Errorf("root node has %d ancestors, want 0", len(got))
	}
	if got := FindAncestors(roots, primitive.NewObjectID()); len(got) != 0 {
		t.Errorf("unknown id has %d ancestors, want 0", len(got))
	}
}

func TestFindByID(t *testing.T) {
	roots := sampleTree()
	target := roots[1].Children[0] // Хяналт

	node, ok := FindByID(roots, target.ID)
	if !ok {
		t.Fatal("FindByID did not find an existing node")
	}
	if node.Name != "Хяналт" {
		t.Errorf("found %q, want Хяналт", node.Name)
	}

	if _, ok := FindByID(roots, primitive.NewObjectID()); ok {
		t.Error("FindByID found a node for an unknown id")
	}
}

func TestMaxDepth(t *testing.T) {
	if got := MaxDepth(sampleTree()); got != 3 {
		t.Errorf("MaxDepth = %d, want 3", got)
	}
	if got := MaxDepth(nil); got != 0 {
		t.Errorf("MaxDepth(nil) = %d, want 0", got)
	}
}
