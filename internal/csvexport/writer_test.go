package csvexport

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slotwise/internal/domain"
	"slotwise/internal/engine"
)

func TestWriteScheduleHeader(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteScheduleHeader())
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	row, err := r.Read()
	require.NoError(t, err)

	assert.Len(t, row, 10)
	assert.Equal(t, "Semester", row[0])
	assert.Equal(t, "Instructor", row[9])
}

func TestWriteSchedule(t *testing.T) {
	room := "LT-101"
	instructor := "Dr. A Rao"
	entries := []domain.ScheduleEntry{
		{
			Semester:       "2026-monsoon",
			Day:            domain.Monday,
			StartMinutes:   540,
			EndMinutes:     590,
			SubjectCode:    "CS101",
			SubjectName:    "Data Structures",
			SectionName:    "Sec A",
			InstructorName: &instructor,
			RoomName:       &room,
			SlotType:       domain.SlotLecture,
		},
		{
			Semester:     "2026-monsoon",
			Day:          domain.Friday,
			StartMinutes: 660,
			EndMinutes:   780,
			SubjectCode:  "PHY102",
			SubjectName:  "Physics Lab",
			SectionName:  "All",
			SlotType:     domain.SlotPractical,
		},
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteSchedule(entries))
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	rows, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, []string{
		"2026-monsoon", "MON", "09:00", "09:50",
		"CS101", "Data Structures", "lecture", "Sec A", "LT-101", "Dr. A Rao",
	}, rows[0])

	// Nullable room and instructor render as empty cells.
	assert.Equal(t, "11:00", rows[1][2])
	assert.Equal(t, "", rows[1][8])
	assert.Equal(t, "", rows[1][9])
}

func TestWriteCrossCheck(t *testing.T) {
	consistent := true
	mismatch := false
	rows := []engine.CrossCheckRow{
		{
			SubjectCode: "CS101",
			Lectures:    3, Tutorials: 1, Practicals: 1,
			Declared:   &engine.SubjectMeta{Lecture: 3, Tutorial: 1, Practical: 2},
			Consistent: &consistent,
		},
		{
			SubjectCode: "MA201",
			Lectures:    1,
			Declared:    &engine.SubjectMeta{Lecture: 3},
			Consistent:  &mismatch,
		},
		{SubjectCode: "HS305", Lectures: 2},
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteCrossCheckHeader())
	require.NoError(t, w.WriteCrossCheck(rows))
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	got, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, got, 4)

	assert.Equal(t, []string{"Subject Code", "Lectures Found", "Tutorials Found", "Practicals Found", "Declared L-T-P-S", "Status"}, got[0])
	assert.Equal(t, []string{"CS101", "3", "1", "1", "3-1-2-0", "consistent"}, got[1])
	assert.Equal(t, []string{"MA201", "1", "0", "0", "3-0-0-0", "mismatch"}, got[2])
	assert.Equal(t, []string{"HS305", "2", "0", "0", "", "no reference"}, got[3])
}
