package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slotwise/internal/domain"
)

func slot(day domain.DayOfWeek, code string, typ domain.SlotType, section string) ExtractedSlot {
	return ExtractedSlot{Day: day, SubjectCode: code, Type: typ, Section: section}
}

func TestCrossCheck_Consistent(t *testing.T) {
	slots := []ExtractedSlot{
		slot(domain.Monday, "CS101", domain.SlotLecture, "A"),
		slot(domain.Tuesday, "CS101", domain.SlotLecture, "A"),
		slot(domain.Thursday, "CS101", domain.SlotLecture, "A"),
		slot(domain.Wednesday, "CS101", domain.SlotTutorial, "A"),
		slot(domain.Friday, "CS101", domain.SlotPractical, "A"),
	}
	subjects := map[string]SubjectMeta{
		"CS101": {Code: "CS101", Lecture: 3, Tutorial: 1, Practical: 2},
	}

	rows := CrossCheck(slots, subjects)
	require.Len(t, rows, 1)
	assert.Equal(t, 3, rows[0].Lectures)
	assert.Equal(t, 1, rows[0].Tutorials)
	assert.Equal(t, 1, rows[0].Practicals)
	require.NotNil(t, rows[0].Consistent)
	assert.True(t, *rows[0].Consistent)
}

func TestCrossCheck_Mismatch(t *testing.T) {
	slots := []ExtractedSlot{
		slot(domain.Monday, "CS101", domain.SlotLecture, "A"),
	}
	subjects := map[string]SubjectMeta{
		"CS101": {Code: "CS101", Lecture: 3},
	}

	rows := CrossCheck(slots, subjects)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].Consistent)
	assert.False(t, *rows[0].Consistent)
}

func TestCrossCheck_DistinctDaySectionPairs(t *testing.T) {
	// Two sections on the same day are two occurrences; a duplicate
	// (day, section) pair counts once.
	slots := []ExtractedSlot{
		slot(domain.Monday, "CS101", domain.SlotLecture, "A"),
		slot(domain.Monday, "CS101", domain.SlotLecture, "B"),
		slot(domain.Monday, "CS101", domain.SlotLecture, "A"),
	}

	rows := CrossCheck(slots, nil)
	require.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].Lectures)
	assert.Nil(t, rows[0].Consistent)
	assert.Nil(t, rows[0].Declared)
}

func TestCrossCheck_SortedBySubject(t *testing.T) {
	slots := []ExtractedSlot{
		slot(domain.Monday, "PH102", domain.SlotLecture, "A"),
		slot(domain.Monday, "CS101", domain.SlotLecture, "A"),
		slot(domain.Monday, "MA201", domain.SlotLecture, "A"),
	}

	rows := CrossCheck(slots, nil)
	require.Len(t, rows, 3)
	assert.Equal(t, "CS101", rows[0].SubjectCode)
	assert.Equal(t, "MA201", rows[1].SubjectCode)
	assert.Equal(t, "PH102", rows[2].SubjectCode)
}

func TestExpectedPracticalBlocks(t *testing.T) {
	tests := []struct{ hours, want int }{
		{0, 0},
		{1, 1},
		{2, 1},
		{3, 2},
		{4, 2},
		{-1, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, expectedPracticalBlocks(tt.hours), "hours %d", tt.hours)
	}
}
