package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slotwise/internal/domain"
)

func TestParseMetadata(t *testing.T) {
	e := New(DefaultOptions())
	rows := [][]string{
		{"DAY", "9:00-9:50", "9:50-10:40"},
		{"MON", "CS101 (L)", ""},
		{"S.No", "Course Code", "Course Name", "L-T-P-S", "Faculties"},
		{"1", "CS101", "Data Structures", "3-1-2-0", "Dr. A Rao (A, B), Prof. K Iyer (Sec C)"},
		{"2", "MA201", "Linear Algebra", "3-1-0-0", "Dr. S Iyengar"},
		{"3", "", "", "", ""},
	}

	subjects, faculty, metaRow := e.ParseMetadata(rows)
	assert.Equal(t, 2, metaRow)
	require.Len(t, subjects, 2)

	cs := subjects["CS101"]
	assert.Equal(t, "Data Structures", cs.Name)
	assert.Equal(t, 3, cs.Lecture)
	assert.Equal(t, 1, cs.Tutorial)
	assert.Equal(t, 2, cs.Practical)
	assert.Equal(t, 0, cs.SelfStudy)

	csFaculty := faculty["CS101"]
	assert.Equal(t, "Dr. A Rao", csFaculty["A"])
	assert.Equal(t, "Dr. A Rao", csFaculty["Sec B"])
	assert.Equal(t, "Prof. K Iyer", csFaculty["C"])
	assert.Equal(t, "Prof. K Iyer", csFaculty["Sec C"])

	// A lone unqualified name becomes the subject-wide default.
	assert.Equal(t, "Dr. S Iyengar", faculty["MA201"][domain.DefaultSectionKey])
}

func TestParseMetadata_NoCreditColumn(t *testing.T) {
	e := New(DefaultOptions())
	rows := [][]string{
		{"", "Subject Code", "Subject Name", "Faculties"},
		{"1", "HS305", "Professional Ethics", "Dr. M Gupta"},
	}

	subjects, _, metaRow := e.ParseMetadata(rows)
	assert.Equal(t, 0, metaRow)
	require.Contains(t, subjects, "HS305")
	assert.Equal(t, creditFallback, subjects["HS305"].Lecture)
	assert.Equal(t, 0, subjects["HS305"].Tutorial)
}

func TestParseMetadata_NoBlock(t *testing.T) {
	e := New(DefaultOptions())
	subjects, faculty, metaRow := e.ParseMetadata([][]string{
		{"DAY", "9:00-9:50"},
		{"MON", "CS101 (L)"},
	})
	assert.Equal(t, -1, metaRow)
	assert.Empty(t, subjects)
	assert.Empty(t, faculty)
}

func TestApplyCreditStructure(t *testing.T) {
	tests := []struct {
		text string
		want SubjectMeta
	}{
		{"3-1-0-0", SubjectMeta{Lecture: 3, Tutorial: 1}},
		{"2-0-2", SubjectMeta{Lecture: 2, Practical: 2}},
		{"3 - 1 - 0 - 4", SubjectMeta{Lecture: 3, Tutorial: 1, SelfStudy: 4}},
		{"3-1-0-0-9", SubjectMeta{Lecture: 3, Tutorial: 1}},
		{"x-y", SubjectMeta{}},
		{"", SubjectMeta{}},
	}
	for _, tt := range tests {
		var meta SubjectMeta
		applyCreditStructure(&meta, tt.text)
		assert.Equal(t, tt.want, meta, "credit text %q", tt.text)
	}
}

func TestParseFacultyString(t *testing.T) {
	t.Run("sectioned entries", func(t *testing.T) {
		got := parseFacultyString("Dr. A Rao (A, B), Prof. K Iyer (Sec C & D)")
		assert.Equal(t, "Dr. A Rao", got["A"])
		assert.Equal(t, "Dr. A Rao", got["B"])
		assert.Equal(t, "Prof. K Iyer", got["C"])
		assert.Equal(t, "Prof. K Iyer", got["D"])
		assert.Equal(t, "Prof. K Iyer", got["Sec D"])
	})

	t.Run("single bare name is the default", func(t *testing.T) {
		got := parseFacultyString("Dr. S Iyengar")
		assert.Equal(t, map[string]string{domain.DefaultSectionKey: "Dr. S Iyengar"}, got)
	})

	t.Run("multiple bare names yield no default", func(t *testing.T) {
		got := parseFacultyString("A Rao, K Iyer")
		assert.Equal(t, map[string]string{domain.DefaultSectionKey: domain.UnknownInstructor}, got)
	})

	t.Run("empty and unknown", func(t *testing.T) {
		for _, text := range []string{"", "unknown", "Unknown"} {
			got := parseFacultyString(text)
			assert.Equal(t, domain.UnknownInstructor, got[domain.DefaultSectionKey], "text %q", text)
		}
	})
}

func TestSplitOutsideParens(t *testing.T) {
	assert.Equal(t, []string{"a (x, y)", " b"}, splitOutsideParens("a (x, y), b", ','))
	assert.Equal(t, []string{"plain"}, splitOutsideParens("plain", ','))
	assert.Equal(t, []string{"a", " b"}, splitOutsideParens("a, b", ','))
}
