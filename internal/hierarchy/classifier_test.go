package hierarchy

import (
	"testing"
)

func TestClassifyColumns_IdentityHeaders(t *testing.T) {
	header := []string{"Овог", "Нэр", "Нэрийн дуудлага", "Регистрийн дугаар", "Утасны дугаар", "Хувийн дугаар", "Эрх"}
	m := ClassifyColumns(header, nil, nil, DefaultClassifierPolicy())

	if m.Surname != 0 {
		t.Errorf("Surname column = %d, want 0", m.Surname)
	}
	if m.Name != 1 {
		t.Errorf("Name column = %d, want 1", m.Name)
	}
	if m.Register != 3 {
		t.Errorf("Register column = %d, want 3", m.Register)
	}
	if m.Phone != 4 {
		t.Errorf("Phone column = %d, want 4", m.Phone)
	}
	if m.LoginName != 5 {
		t.Errorf("LoginName column = %d, want 5", m.LoginName)
	}
	if m.AccessLevel != 6 {
		t.Errorf("AccessLevel column = %d, want 6", m.AccessLevel)
	}
}

func TestClassifyColumns_PronunciationColumnIsNotName(t *testing.T) {
	header := []string{"Нэрийн дуудлага", "Нэр"}
	m := ClassifyColumns(header, nil, nil, ClassifierPolicy{})
	if m.Name != 1 {
		t.Errorf("Name column = %d, want 1 (pronunciation column must not capture it)", m.Name)
	}
}

func TestClassifyColumns_FirstIdentityColumnWins(t *testing.T) {
	header := []string{"Нэр", "Нэр (давхардсан)"}
	// Cyrillic name values would pass the pattern tier if the duplicate
	// column fell through to department detection.
	rows := [][]string{
		{"Бат", "Бат"},
		{"Дорж", "Дорж"},
	}
	m := ClassifyColumns(header, rows, nil, DefaultClassifierPolicy())
	if m.Name != 0 {
		t.Errorf("Name column = %d, want 0", m.Name)
	}
	if len(m.Departments) != 0 {
		t.Errorf("duplicate identity column classified as department: %+v", m.Departments)
	}
}

func TestClassifyColumns_HeaderMatchesDepartmentName(t *testing.T) {
	roots := sampleTree()
	flat := Flatten(roots)

	header := []string{"Нэр", "Эргүүл"}
	m := ClassifyColumns(header, nil, flat, ClassifierPolicy{})

	if len(m.Departments) != 1 {
		t.Fatalf("got %d department columns, want 1", len(m.Departments))
	}
	col := m.Departments[0]
	if col.ColumnIndex != 1 {
		t.Errorf("ColumnIndex = %d, want 1", col.ColumnIndex)
	}
	if col.DepartmentID.IsZero() {
		t.Error("header-matched column must carry the department id")
	}
	if col.Level != 1 {
		t.Errorf("Level = %d, want 1", col.Level)
	}
}

func TestClassifyColumns_PatternSampling(t *testing.T) {
	header := []string{"Нэр", "Алба"}
	// Within the sampling window, 3 of the 4 non-empty values in column 1
	// look like hierarchy codes.
	rows := [][]string{
		{"Бат", "1.1"},
		{"Дорж", "1.2"},
		{"Сүх", ""},
		{"Болд", "2.1"},
		{"Цэцэг", "..."},
		{"Нараа", "2.2"},
	}
	m := ClassifyColumns(header, rows, nil, ClassifierPolicy{})

	if len(m.Departments) != 1 {
		t.Fatalf("got %d department columns, want 1", len(m.Departments))
	}
	if m.Departments[0].ColumnIndex != 1 {
		t.Errorf("ColumnIndex = %d, want 1", m.Departments[0].ColumnIndex)
	}
	if m.Departments[0].Level != -1 {
		t.Errorf("pattern-detected column Level = %d, want -1", m.Departments[0].Level)
	}
}

func TestClassifyColumns_PatternSamplingWindowIsFirstFiveRows(t *testing.T) {
	header := []string{"Нэр", "Алба"}
	// Column 1 is empty in the first 5 data rows; the hierarchy codes below
	// the window must not trigger the pattern tier.
	rows := [][]string{
		{"Бат", ""},
		{"Дорж", ""},
		{"Сүх", ""},
		{"Болд", ""},
		{"Цэцэг", ""},
		{"Нараа", "1.1"},
		{"Оюун", "1.2"},
	}

	m := ClassifyColumns(header, rows, nil, ClassifierPolicy{BroadFallback: false})
	if len(m.Departments) != 0 {
		t.Errorf("fallback disabled: got %d department columns, want 0", len(m.Departments))
	}

	// The broad fallback inspects only the first 3 rows, so it stays empty too.
	m = ClassifyColumns(header, rows, nil, DefaultClassifierPolicy())
	if len(m.Departments) != 0 {
		t.Errorf("fallback enabled: got %d department columns, want 0", len(m.Departments))
	}
}

func TestClassifyColumns_BroadFallbackPolicy(t *testing.T) {
	header := []string{"Нэр", "Тэмдэглэл"}
	// Punctuation-only values match no pattern, so only the broad fallback
	// can pick the column up.
	rows := [][]string{
		{"Бат", "→?"},
		{"Дорж", ""},
	}

	withFallback := ClassifyColumns(header, rows, nil, DefaultClassifierPolicy())
	if len(withFallback.Departments) != 1 {
		t.Errorf("broad fallback enabled: got %d department columns, want 1", len(withFallback.Departments))
	}

	withoutFallback := ClassifyColumns(header, rows, nil, ClassifierPolicy{BroadFallback: false})
	if len(withoutFallback.Departments) != 0 {
		t.Errorf("broad fallback disabled: got %d department columns, want 0", len(withoutFallback.Departments))
	}
}

func TestClassifyColumns_Deterministic(t *testing.T) {
	roots := sampleTree()
	flat := Flatten(roots)
	header := []string{"Овог", "Нэр", "Эргүүл", "Алба"}
	rows := [][]string{
		{"Б", "Бат", "7-р хэсэг", "1.1"},
		{"Д", "Дорж", "9-р хэсэг", "1.2"},
	}

	first := ClassifyColumns(header, rows, flat, DefaultClassifierPolicy())
	for i := 0; i < 10; i++ {
		again := ClassifyColumns(header, rows, flat, DefaultClassifierPolicy())
		if len(again.Departments) != len(first.Departments) {
			t.Fatalf("run %d: %d department columns, want %d", i, len(again.Departments), len(first.Departments))
		}
		for j := range again.Departments {
			if again.Departments[j] != first.Departments[j] {
				t.Fatalf("run %d: department column %d differs: %+v vs %+v", i, j, again.Departments[j], first.Departments[j])
			}
		}
	}

	// Department columns keep their left-to-right order.
	if len(first.Departments) != 2 || first.Departments[0].ColumnIndex != 2 || first.Departments[1].ColumnIndex != 3 {
		t.Fatalf("department columns out of order: %+v", first.Departments)
	}
}

func TestMatchesDepartmentPattern(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"1.1.2", true},
		{"2.3", true},
		{"2-р түвшин", true},
		{"A1", true},
		{"Б2", true},
		{"1A", true},
		{"Эргүүл", true},
		{"patrol", true},
		{"42", true},
		{"", false},
		{"→?", false},
	}
	for _, tc := range cases {
		if got := matchesDepartmentPattern(tc.value); got != tc.want {
			t.Errorf("matchesDepartmentPattern(%q) = %v, want %v", tc.value, got, tc.want)
		}
	}
}
