// Package hierarchy implements the department-hierarchy engine used by
// spreadsheet import and export: tree traversal primitives, spreadsheet
// column classification, and free-text label resolution into assignment
// paths. All operations are pure functions over a snapshot of the tree;
// traversal uses explicit work lists, so depth is bounded only by memory.
package hierarchy

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	deptmodels "github.com/batkt/sudalgaaQRBackend/internal/api/department/models"
)

// FlatEntry is one department in the flattened hierarchy.
// Level is the depth from the nearest root (root = 0).
type FlatEntry struct {
	ID    primitive.ObjectID `json:"id"`
	Name  string             `json:"name"`
	Level int                `json:"level"`
}

// Flatten returns the hierarchy in pre-order with levels assigned by depth.
// Ordering is stable: storage order at each level.
func Flatten(roots []deptmodels.Department) []FlatEntry {
	type frame struct {
		node  *deptmodels.Department
		level int
	}

	var entries []FlatEntry
	var stack []frame

	// Push roots right to left so the leftmost is processed first.
	for i := len(roots) - 1; i >= 0; i-- {
		stack = append(stack, frame{&roots[i], 0})
	}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries = append(entries, FlatEntry{
			ID:    f.node.ID,
			Name:  strings.TrimSpace(f.node.Name),
			Level: f.level,
		})

		children := f.node.Children
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, frame{&children[i], f.level + 1})
		}
	}

	return entries
}

// FindAncestors returns the path from a root down to, but excluding, the
// node with targetID. Level equals the index in the returned slice. The
// result is empty when targetID is a root or unknown. Multiple roots are
// searched in storage order, first match wins.
func FindAncestors(roots []deptmodels.Department, targetID primitive.ObjectID) []FlatEntry {
	type frame struct {
		node *deptmodels.Department
		path []*deptmodels.Department
	}

	var stack []frame
	for i := len(roots) - 1; i >= 0; i-- {
		stack = append(stack, frame{&roots[i], nil})
	}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.node.ID == targetID {
			entries := make([]FlatEntry, len(f.path))
			for i, ancestor := range f.path {
				entries[i] = FlatEntry{
					ID:    ancestor.ID,
					Name:  strings.TrimSpace(ancestor.Name),
					Level: i,
				}
			}
			return entries
		}

		childPath := append(append([]*deptmodels.Department{}, f.path...), f.node)
		children := f.node.Children
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, frame{&children[i], childPath})
		}
	}

	return nil
}

// FindByID returns the node with the given id, searching depth-first.
func FindByID(roots []deptmodels.Department, id primitive.ObjectID) (*deptmodels.Department, bool) {
	var stack []*deptmodels.Department
	for i := len(roots) - 1; i >= 0; i-- {
		stack = append(stack, &roots[i])
	}

	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if node.ID == id {
			return node, true
		}
		for i := len(node.Children) - 1; i >= 0; i-- {
			stack = append(stack, &node.Children[i])
		}
	}

	return nil, false
}

// MaxDepth returns the number of levels in the hierarchy (0 for an empty
// tree). Used to size export columns.
func MaxDepth(roots []deptmodels.Department) int {
	type frame struct {
		node  *deptmodels.Department
		level int
	}

	var stack []frame
	for i := range roots {
		stack = append(stack, frame{&roots[i], 0})
	}

	depth := 0
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.level+1 > depth {
			depth = f.level + 1
		}
		for i := range f.node.Children {
			stack = append(stack, frame{&f.node.Children[i], f.level + 1})
		}
	}

	return depth
}
