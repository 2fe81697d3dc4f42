package hierarchy

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	deptmodels "github.com/batkt/sudalgaaQRBackend/internal/api/department/models"
)

// Assignment ties an employee to one department at one hierarchy level.
// DepartmentName is a snapshot taken at assignment time; it may drift from
// the live department name, so display paths re-resolve by id.
type Assignment struct {
	Level          int                `json:"level" bson:"level"`
	DepartmentID   primitive.ObjectID `json:"departmentId" bson:"departmentId"`
	DepartmentName string             `json:"departmentName" bson:"departmentName"`
}

var pureIntegerPattern = regexp.MustCompile(`^\d+$`)
var integerTokenPattern = regexp.MustCompile(`\d+`)

// findCandidate picks the matching sibling for one label. Selection is
// rule-priority first: an exact match anywhere in the list beats a fuzzy
// match, a fuzzy match beats a numeric-token match. Within one rule the
// first node in storage order wins.
func findCandidate(head string, nodes []deptmodels.Department) *deptmodels.Department {
	// Exact pass (trimmed, case-sensitive).
	for i := range nodes {
		if strings.TrimSpace(nodes[i].Name) == head {
			return &nodes[i]
		}
	}

	// Fuzzy pass: case-insensitive substring containment in either direction.
	lowerHead := strings.ToLower(head)
	for i := range nodes {
		name := strings.ToLower(strings.TrimSpace(nodes[i].Name))
		if name == "" {
			continue
		}
		if strings.Contains(name, lowerHead) || strings.Contains(lowerHead, name) {
			return &nodes[i]
		}
	}

	// Numeric pass, only for pure integer labels: any integer substring of
	// the name equal to the label.
	if pureIntegerPattern.MatchString(head) {
		for i := range nodes {
			for _, token := range integerTokenPattern.FindAllString(nodes[i].Name, -1) {
				if token == head {
					return &nodes[i]
				}
			}
		}
	}

	return nil
}

// ResolvePath resolves an ordered sequence of free-text department labels
// against the hierarchy into an assignment path. The search runs on an
// explicit work list, depth-first:
//
//   - at the current sibling list the head label picks a candidate via
//     findCandidate; the candidate is emitted and the search descends into
//     its children with the remaining labels. A dead end mid-descent keeps
//     the partial path; siblings are never retried (no backtracking).
//   - when no sibling matches the head at all, each sibling's children are
//     searched in order with the same unconsumed labels one level deeper;
//     the first frame producing a match wins.
//
// A miss yields an empty slice, never an error.
func ResolvePath(labels []string, hierarchy []deptmodels.Department) []Assignment {
	type frame struct {
		labels []string
		nodes  []deptmodels.Department
		level  int
	}

	trimmed := make([]string, 0, len(labels))
	for _, label := range labels {
		if t := strings.TrimSpace(label); t != "" {
			trimmed = append(trimmed, t)
		}
	}
	if len(trimmed) == 0 || len(hierarchy) == 0 {
		return nil
	}

	var assignments []Assignment
	stack := []frame{{labels: trimmed, nodes: hierarchy, level: 0}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		candidate := findCandidate(f.labels[0], f.nodes)
		if candidate == nil {
			// Deeper starting match: same labels, each sibling's children,
			// pushed right to left to keep depth-first storage order.
			for i := len(f.nodes) - 1; i >= 0; i-- {
				if len(f.nodes[i].Children) > 0 {
					stack = append(stack, frame{
						labels: f.labels,
						nodes:  f.nodes[i].Children,
						level:  f.level + 1,
					})
				}
			}
			continue
		}

		assignments = append(assignments, Assignment{
			Level:          f.level,
			DepartmentID:   candidate.ID,
			DepartmentName: strings.TrimSpace(candidate.Name),
		})

		rest := f.labels[1:]
		if len(rest) == 0 || len(candidate.Children) == 0 {
			break
		}

		// Continue only inside the matched subtree; pending frames outside
		// it are abandoned rather than backtracked into.
		stack = stack[:0]
		stack = append(stack, frame{labels: rest, nodes: candidate.Children, level: f.level + 1})
	}

	return assignments
}

// AncestorAssignments resolves a known leaf department directly by id,
// splicing in its ancestor chain: the result is root..leaf with levels
// equal to each node's position in the chain. Unknown ids yield nil.
func AncestorAssignments(roots []deptmodels.Department, leafID primitive.ObjectID) []Assignment {
	leaf, ok := FindByID(roots, leafID)
	if !ok {
		return nil
	}

	ancestors := FindAncestors(roots, leafID)
	assignments := make([]Assignment, 0, len(ancestors)+1)
	for _, ancestor := range ancestors {
		assignments = append(assignments, Assignment{
			Level:          ancestor.Level,
			DepartmentID:   ancestor.ID,
			DepartmentName: ancestor.Name,
		})
	}
	assignments = append(assignments, Assignment{
		Level:          len(ancestors),
		DepartmentID:   leaf.ID,
		DepartmentName: strings.TrimSpace(leaf.Name),
	})
	return assignments
}

// RowResolution is the outcome of resolving one spreadsheet row.
type RowResolution struct {
	Assignments []Assignment
	// FallbackUsed marks the single-level fallback, recorded as a warning.
	FallbackUsed bool
	// AttemptedPath holds the joined label path when nothing resolved.
	AttemptedPath string
}

// ResolveRow applies the combined resolution policy to one data row:
//
//  1. when a classified department column carries an id annotation and the
//     row has a value in it, resolve directly by id and splice ancestors;
//     the deepest annotated column with data wins and label search is skipped;
//  2. otherwise treat the row's ordered non-empty department cells as a
//     label path and resolve it against the tree;
//  3. otherwise fall back to matching the first label alone against the
//     flattened hierarchy (exact or fuzzy), assigning that single node at
//     its true level.
//
// When all three tiers miss, Assignments is empty and AttemptedPath carries
// the labels for the row error report.
func ResolveRow(row []string, columns []DepartmentColumn, roots []deptmodels.Department, flat []FlatEntry) RowResolution {
	cellValue := func(col int) string {
		if col < 0 || col >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[col])
	}

	// Tier 1: direct id resolution from a name-matched column.
	var annotated *DepartmentColumn
	for i := range columns {
		c := &columns[i]
		if c.DepartmentID.IsZero() || cellValue(c.ColumnIndex) == "" {
			continue
		}
		if annotated == nil || c.Level > annotated.Level {
			annotated = c
		}
	}
	if annotated != nil {
		if assignments := AncestorAssignments(roots, annotated.DepartmentID); len(assignments) > 0 {
			return RowResolution{Assignments: assignments}
		}
	}

	// Tier 2: ordered label path.
	var labels []string
	for _, c := range columns {
		if value := cellValue(c.ColumnIndex); value != "" {
			labels = append(labels, value)
		}
	}
	if len(labels) == 0 {
		return RowResolution{}
	}

	if assignments := ResolvePath(labels, roots); len(assignments) > 0 {
		return RowResolution{Assignments: assignments}
	}

	// Tier 3: single-level fallback on the first label only.
	first := labels[0]
	lowerFirst := strings.ToLower(first)
	for _, entry := range flat {
		if entry.Name == "" {
			continue
		}
		lowerName := strings.ToLower(entry.Name)
		if entry.Name == first || strings.Contains(lowerName, lowerFirst) || strings.Contains(lowerFirst, lowerName) {
			return RowResolution{
				Assignments: []Assignment{{
					Level:          entry.Level,
					DepartmentID:   entry.ID,
					DepartmentName: entry.Name,
				}},
				FallbackUsed: true,
			}
		}
	}

	return RowResolution{AttemptedPath: strings.Join(labels, " > ")}
}
