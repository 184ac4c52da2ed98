package domain

import "strings"

// SlotType classifies a scheduled occurrence.
type SlotType string

const (
	SlotLecture   SlotType = "lecture"
	SlotTutorial  SlotType = "tutorial"
	SlotPractical SlotType = "practical"
)

// RoomKind distinguishes lab venues from everything else.
type RoomKind string

const (
	RoomLecture RoomKind = "lecture"
	RoomLab     RoomKind = "lab"
)

// DayOfWeek is the grid's day-row label, uppercased three-letter form.
type DayOfWeek string

const (
	Monday    DayOfWeek = "MON"
	Tuesday   DayOfWeek = "TUE"
	Wednesday DayOfWeek = "WED"
	Thursday  DayOfWeek = "THU"
	Friday    DayOfWeek = "FRI"
	Saturday  DayOfWeek = "SAT"
	Sunday    DayOfWeek = "SUN"
)

var dayAliases = map[string]DayOfWeek{
	"MON": Monday, "MONDAY": Monday,
	"TUE": Tuesday, "TUES": Tuesday, "TUESDAY": Tuesday,
	"WED": Wednesday, "WEDNESDAY": Wednesday,
	"THU": Thursday, "THUR": Thursday, "THURS": Thursday, "THURSDAY": Thursday,
	"FRI": Friday, "FRIDAY": Friday,
	"SAT": Saturday, "SATURDAY": Saturday,
	"SUN": Sunday, "SUNDAY": Sunday,
}

// ParseDay resolves a day-label cell to a DayOfWeek. The second return is
// false when the text is not a recognizable day name.
func ParseDay(s string) (DayOfWeek, bool) {
	d, ok := dayAliases[strings.ToUpper(strings.TrimSpace(s))]
	return d, ok
}

// ImportStatus tracks the lifecycle of an import run.
type ImportStatus string

const (
	ImportPending   ImportStatus = "pending"
	ImportCommitted ImportStatus = "committed"
	ImportFailed    ImportStatus = "failed"
)

// DiagnosticStatus is the outcome of examining one cell line.
type DiagnosticStatus string

const (
	DiagnosticParsed  DiagnosticStatus = "parsed"
	DiagnosticSkipped DiagnosticStatus = "skipped"
	DiagnosticFailed  DiagnosticStatus = "failed"
)

// Sentinel entity names. These are created unconditionally at the start of
// every import so that fallback lookups always land on a real row.
const (
	UnknownInstructor = "Unknown"
	SectionAll        = "All"
	DefaultSectionKey = "default"
)
