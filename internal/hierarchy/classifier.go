package hierarchy

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DepartmentColumn is one spreadsheet column classified as a hierarchy level.
// DepartmentID and Level are filled only when the header matched a department
// name directly; otherwise Level is -1 and the column's left-to-right position
// is taken as the depth order.
type DepartmentColumn struct {
	ColumnIndex  int                `json:"columnIndex"`
	Header       string             `json:"header"`
	DepartmentID primitive.ObjectID `json:"departmentId,omitempty"`
	Level        int                `json:"level"`
}

// ColumnMap maps logical employee fields to column indices (-1 = absent)
// plus the ordered list of department columns.
type ColumnMap struct {
	Surname     int `json:"surname"`
	Name        int `json:"name"`
	Register    int `json:"register"`
	Phone       int `json:"phone"`
	LoginName   int `json:"loginName"`
	AccessLevel int `json:"accessLevel"`

	Departments []DepartmentColumn `json:"departments"`
}

// ClassifierPolicy controls the broad third-tier department-column fallback.
// When enabled, any non-identity column holding data in its first rows is
// treated as a department column; disabling it trades recall for fewer
// false positives.
type ClassifierPolicy struct {
	BroadFallback bool
}

// DefaultClassifierPolicy enables the broad fallback.
func DefaultClassifierPolicy() ClassifierPolicy {
	return ClassifierPolicy{BroadFallback: true}
}

// Header keywords for identity fields (lower-cased, matched as substrings).
const (
	headerSurname       = "овог"
	headerName          = "нэр"
	headerNameExclusion = "дуудлага" // "нэрийн дуудлага" is pronunciation, not the name
	headerRegister      = "регистр"
	headerLoginName     = "хувийн дугаар"
	headerPhone         = "утас"
	headerAccessLevel   = "эрх"
)

// Content patterns that mark a column as department-like.
var departmentPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d+\.\d+\.\d+`),         // three-part hierarchy code: 1.1.1
	regexp.MustCompile(`^\d+\.\d+`),              // two-part hierarchy code: 1.1
	regexp.MustCompile(`^\d+\s*-\s*р?\s*түвшин`), // level marker: "2-р түвшин"
	regexp.MustCompile(`^[A-ZА-ЯЁӨҮ]\d+`),        // letter-prefixed code: A1, Б2
	regexp.MustCompile(`^\d+[A-ZА-ЯЁӨҮ]`),        // letter-suffixed code: 1A
	regexp.MustCompile(`^[\p{Cyrillic}]`),        // leading Cyrillic letter
	regexp.MustCompile(`^[A-Za-z]`),              // leading Latin letter
	regexp.MustCompile(`^\d+$`),                  // pure integer
	regexp.MustCompile(`^[A-Za-z0-9]+$`),         // generic alphanumeric
}

const (
	departmentSampleSize   = 5   // sampling window: first 5 data rows (sheet rows 2-6)
	departmentMatchRatio   = 0.6 // share of samples that must match a pattern
	departmentFallbackRows = 3   // rows inspected by the broad fallback
)

// matchesDepartmentPattern reports whether a single cell value looks like a
// department marker.
func matchesDepartmentPattern(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}
	for _, pattern := range departmentPatterns {
		if pattern.MatchString(value) {
			return true
		}
	}
	return false
}

// classifyIdentity returns the logical field index slot for a header, or nil.
// The first matching rule wins; a header maps to at most one field.
func classifyIdentity(m *ColumnMap, header string) *int {
	h := strings.ToLower(strings.TrimSpace(header))
	switch {
	case strings.Contains(h, headerSurname):
		return &m.Surname
	case strings.Contains(h, headerName) && !strings.Contains(h, headerNameExclusion):
		return &m.Name
	case strings.Contains(h, headerRegister):
		return &m.Register
	case strings.Contains(h, headerLoginName):
		return &m.LoginName
	case strings.Contains(h, headerPhone):
		return &m.Phone
	case strings.Contains(h, headerAccessLevel):
		return &m.AccessLevel
	default:
		return nil
	}
}

// cellAt returns the trimmed cell at (row, col), tolerating short rows.
func cellAt(rows [][]string, row, col int) string {
	if row >= len(rows) {
		return ""
	}
	if col >= len(rows[row]) {
		return ""
	}
	return strings.TrimSpace(rows[row][col])
}

// ClassifyColumns inspects the header row plus the supplied data rows and
// produces a ColumnMap. Department detection is a strict three-tier chain:
//
//  1. header text equals a flattened department name (annotated with id+level),
//  2. at least 60% of the non-empty values within the first 5 data rows match
//     a department pattern,
//  3. broad fallback (policy controlled): any non-empty value in the first 3
//     data rows.
//
// Department columns keep their left-to-right order; deterministic for
// identical input.
func ClassifyColumns(header []string, dataRows [][]string, flat []FlatEntry, policy ClassifierPolicy) ColumnMap {
	m := ColumnMap{
		Surname:     -1,
		Name:        -1,
		Register:    -1,
		Phone:       -1,
		LoginName:   -1,
		AccessLevel: -1,
	}

	flatByName := make(map[string]FlatEntry, len(flat))
	for _, entry := range flat {
		if _, exists := flatByName[entry.Name]; !exists {
			flatByName[entry.Name] = entry
		}
	}

	for col, rawHeader := range header {
		headerText := strings.TrimSpace(rawHeader)

		// A header carrying an identity keyword stays an identity column even
		// when that field is already claimed; a duplicate identity column is
		// never reinterpreted as a hierarchy level.
		if slot := classifyIdentity(&m, headerText); slot != nil {
			if *slot == -1 {
				*slot = col
			}
			continue
		}

		// Tier 1: header equals a department name in the current hierarchy.
		if entry, ok := flatByName[headerText]; ok && headerText != "" {
			m.Departments = append(m.Departments, DepartmentColumn{
				ColumnIndex:  col,
				Header:       headerText,
				DepartmentID: entry.ID,
				Level:        entry.Level,
			})
			continue
		}

		// Tier 2: majority of the non-empty values in the sampling window
		// match a department pattern. Values past the window never count.
		sampled, matched := 0, 0
		for row := 0; row < len(dataRows) && row < departmentSampleSize; row++ {
			value := cellAt(dataRows, row, col)
			if value == "" {
				continue
			}
			sampled++
			if matchesDepartmentPattern(value) {
				matched++
			}
		}
		if sampled > 0 && float64(matched)/float64(sampled) >= departmentMatchRatio {
			m.Departments = append(m.Departments, DepartmentColumn{
				ColumnIndex: col,
				Header:      headerText,
				Level:       -1,
			})
			continue
		}

		// Tier 3: broad fallback so populated columns are not silently dropped.
		if policy.BroadFallback {
			for row := 0; row < departmentFallbackRows; row++ {
				if cellAt(dataRows, row, col) != "" {
					m.Departments = append(m.Departments, DepartmentColumn{
						ColumnIndex: col,
						Header:      headerText,
						Level:       -1,
					})
					break
				}
			}
		}
	}

	return m
}
