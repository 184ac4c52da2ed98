package engine

import (
	"fmt"

	"slotwise/internal/domain"
)

// RawGrid is the engine's input: sheet cells as text plus the sheet's merged
// rectangles. It is owned by the caller and never mutated; the engine works
// on its own sanitized copy.
type RawGrid struct {
	Rows   [][]string
	Merges []MergeSpan
}

// MergeSpan is a rectangular merged region, all coordinates zero-based and
// inclusive.
type MergeSpan struct {
	StartRow int
	StartCol int
	EndRow   int
	EndCol   int
}

// Clock is a time of day in minutes since midnight.
type Clock int

// ClockOf builds a Clock from an hour and minute.
func ClockOf(h, m int) Clock { return Clock(h*60 + m) }

func (c Clock) String() string { return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60) }

// ParseClock parses "HH:MM" into a Clock.
func ParseClock(s string) (Clock, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("parsing clock %q: %w", s, err)
	}
	return ClockOf(h, m), nil
}

// TimeColumn maps one header column to its time window. Break and lunch
// columns are synthetic (negative Col) and never produced by cell content.
type TimeColumn struct {
	Col          int   `json:"col"`
	Start        Clock `json:"start"`
	End          Clock `json:"end"`
	BreakOrLunch bool  `json:"break_or_lunch"`
}

// SubjectMeta is one subject's declared ground truth from the metadata block.
type SubjectMeta struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	Lecture   int    `json:"lecture"`
	Tutorial  int    `json:"tutorial"`
	Practical int    `json:"practical"`
	SelfStudy int    `json:"self_study"`
}

// FacultyMap maps subject code → section token → instructor display name.
// The domain.DefaultSectionKey entry holds the subject-wide fallback.
type FacultyMap map[string]map[string]string

// ExtractedSlot is one successfully parsed cell line, fully populated.
// The review surface may edit or delete these before commit.
type ExtractedSlot struct {
	Day         domain.DayOfWeek `json:"day"`
	Start       Clock            `json:"start"`
	End         Clock            `json:"end"`
	SubjectCode string           `json:"subject_code"`
	Type        domain.SlotType  `json:"type"`
	Section     string           `json:"section"`
	Room        string           `json:"room"`
	Instructor  string           `json:"instructor"`
	RawText     string           `json:"raw_text"`
}

// Diagnostic records the outcome of examining one cell line. The list is
// append-only; ignored and garbage lines are recorded, never dropped.
type Diagnostic struct {
	Row     int                     `json:"row"`
	RawText string                  `json:"raw_text"`
	Status  domain.DiagnosticStatus `json:"status"`
	Reason  string                  `json:"reason,omitempty"`
}

// CrossCheckRow compares parsed distinct (day, section) counts against a
// subject's declared credit structure. Consistent is nil when the subject
// has no declared metadata to check against.
type CrossCheckRow struct {
	SubjectCode string       `json:"subject_code"`
	Lectures    int          `json:"lectures"`
	Tutorials   int          `json:"tutorials"`
	Practicals  int          `json:"practicals"`
	Declared    *SubjectMeta `json:"declared,omitempty"`
	Consistent  *bool        `json:"consistent,omitempty"`
}

// Options are the engine's layout-convention tunables. The PM shift bound is
// configurable because shifting small header hours to the afternoon is an
// institutional assumption, not a law of the format.
type Options struct {
	HeaderRow      int
	DayCol         int
	BreakStart     Clock
	BreakEnd       Clock
	LunchStart     Clock
	LunchEnd       Clock
	PracticalHours int
	PMShiftMaxHour int
}

// DefaultOptions returns the layout convention the engine is tuned for.
func DefaultOptions() Options {
	return Options{
		HeaderRow:      1,
		DayCol:         0,
		BreakStart:     ClockOf(10, 50),
		BreakEnd:       ClockOf(11, 0),
		LunchStart:     ClockOf(13, 0),
		LunchEnd:       ClockOf(13, 45),
		PracticalHours: 2,
		PMShiftMaxHour: 7,
	}
}

// Engine runs one import's worth of extraction. It holds only Options; all
// per-import state is local to Run so stages stay testable in isolation.
type Engine struct {
	opts Options
}

// New creates an Engine with the given options.
func New(opts Options) *Engine { return &Engine{opts: opts} }

// Result is everything one Run produces for the review and reporting
// surfaces.
type Result struct {
	TimeAxis    []TimeColumn           `json:"time_axis"`
	Subjects    map[string]SubjectMeta `json:"subjects"`
	Faculty     FacultyMap             `json:"faculty"`
	Slots       []ExtractedSlot        `json:"slots"`
	Diagnostics []Diagnostic           `json:"diagnostics"`
	CrossCheck  []CrossCheckRow        `json:"cross_check"`
}

// Run executes the full extraction pipeline over one grid. The only fatal
// failures are a grid shorter than the header row and a header row with no
// recognizable time ranges; every other problem becomes a Diagnostic.
func (e *Engine) Run(grid *RawGrid) (*Result, error) {
	if len(grid.Rows) <= e.opts.HeaderRow {
		return nil, fmt.Errorf("engine.Run: %d rows, header expected at %d: %w",
			len(grid.Rows), e.opts.HeaderRow, domain.ErrGridTooShort)
	}

	rows := make([][]string, len(grid.Rows))
	for i, row := range grid.Rows {
		rows[i] = make([]string, len(row))
		for j, cell := range row {
			rows[i][j] = Sanitize(cell)
		}
	}

	axis, err := e.DetectTimeAxis(rows[e.opts.HeaderRow])
	if err != nil {
		return nil, fmt.Errorf("engine.Run: %w", err)
	}

	subjects, faculty, metaRow := e.ParseMetadata(rows)
	slots, diags := e.assemble(rows, axis, grid.Merges, faculty, metaRow)

	return &Result{
		TimeAxis:    axis,
		Subjects:    subjects,
		Faculty:     faculty,
		Slots:       slots,
		Diagnostics: diags,
		CrossCheck:  CrossCheck(slots, subjects),
	}, nil
}
