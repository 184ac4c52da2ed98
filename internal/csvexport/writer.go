package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"slotwise/internal/domain"
	"slotwise/internal/engine"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

var scheduleColumns = []string{
	"Semester",
	"Day",
	"Start",
	"End",
	"Subject Code",
	"Subject Name",
	"Type",
	"Section",
	"Room",
	"Instructor",
}

var crossCheckColumns = []string{
	"Subject Code",
	"Lectures Found",
	"Tutorials Found",
	"Practicals Found",
	"Declared L-T-P-S",
	"Status",
}

// Writer wraps csv.Writer for exporting schedules and cross-check reports.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteScheduleHeader writes the schedule header row.
func (w *Writer) WriteScheduleHeader() error {
	return w.csv.Write(scheduleColumns)
}

// WriteSchedule converts committed schedule entries to CSV rows.
func (w *Writer) WriteSchedule(entries []domain.ScheduleEntry) error {
	for i := range entries {
		if err := w.csv.Write(entryToRow(&entries[i])); err != nil {
			return err
		}
	}
	return nil
}

// WriteCrossCheckHeader writes the cross-check report header row.
func (w *Writer) WriteCrossCheckHeader() error {
	return w.csv.Write(crossCheckColumns)
}

// WriteCrossCheck converts cross-check rows to CSV rows.
func (w *Writer) WriteCrossCheck(rows []engine.CrossCheckRow) error {
	for i := range rows {
		if err := w.csv.Write(crossCheckToRow(&rows[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

func entryToRow(e *domain.ScheduleEntry) []string {
	row := make([]string, len(scheduleColumns))
	row[0] = e.Semester
	row[1] = string(e.Day)
	row[2] = engine.Clock(e.StartMinutes).String()
	row[3] = engine.Clock(e.EndMinutes).String()
	row[4] = e.SubjectCode
	row[5] = e.SubjectName
	row[6] = string(e.SlotType)
	row[7] = e.SectionName
	if e.RoomName != nil {
		row[8] = *e.RoomName
	}
	if e.InstructorName != nil {
		row[9] = *e.InstructorName
	}
	return row
}

func crossCheckToRow(r *engine.CrossCheckRow) []string {
	row := make([]string, len(crossCheckColumns))
	row[0] = r.SubjectCode
	row[1] = strconv.Itoa(r.Lectures)
	row[2] = strconv.Itoa(r.Tutorials)
	row[3] = strconv.Itoa(r.Practicals)
	switch {
	case r.Declared == nil:
		row[4] = ""
		row[5] = "no reference"
	case *r.Consistent:
		row[4] = declaredString(r.Declared)
		row[5] = "consistent"
	default:
		row[4] = declaredString(r.Declared)
		row[5] = "mismatch"
	}
	return row
}

func declaredString(m *engine.SubjectMeta) string {
	return fmt.Sprintf("%d-%d-%d-%d", m.Lecture, m.Tutorial, m.Practical, m.SelfStudy)
}
