package domain

import (
	"time"

	"github.com/google/uuid"
)

// Subject represents a course together with its declared credit structure.
// Hours are the weekly L-T-P-S counts from the metadata block; they default
// to zero when the source sheet carries no parseable credit text.
type Subject struct {
	ID             uuid.UUID `db:"id" json:"id"`
	Code           string    `db:"code" json:"code"`
	Name           string    `db:"name" json:"name"`
	LectureHours   int       `db:"lecture_hours" json:"lecture_hours"`
	TutorialHours  int       `db:"tutorial_hours" json:"tutorial_hours"`
	PracticalHours int       `db:"practical_hours" json:"practical_hours"`
	SelfStudyHours int       `db:"self_study_hours" json:"self_study_hours"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// Instructor represents a teaching staff member. Slug is the derived
// identifier used as the upsert natural key; two display-name spellings
// that normalize to the same slug are treated as the same person.
type Instructor struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Slug        string    `db:"slug" json:"slug"`
	DisplayName string    `db:"display_name" json:"display_name"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// Room represents a teaching venue. Kind is inferred from usage: a room is
// a lab only if every slot referencing it is a practical.
type Room struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Kind      RoomKind  `db:"kind" json:"kind"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Section represents a named student subgroup within a semester.
type Section struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Semester  string    `db:"semester" json:"semester"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// ScheduleSlot is one committed schedule record. InstructorID and RoomID are
// nullable: an unresolvable instructor falls back to the Unknown sentinel and
// an unresolvable room is stored as null, whereas a slot missing its subject
// or section is never committed at all.
type ScheduleSlot struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	Semester     string     `db:"semester" json:"semester"`
	Day          DayOfWeek  `db:"day" json:"day"`
	StartMinutes int        `db:"start_minutes" json:"start_minutes"`
	EndMinutes   int        `db:"end_minutes" json:"end_minutes"`
	SubjectID    uuid.UUID  `db:"subject_id" json:"subject_id"`
	SectionID    uuid.UUID  `db:"section_id" json:"section_id"`
	InstructorID *uuid.UUID `db:"instructor_id" json:"instructor_id"`
	RoomID       *uuid.UUID `db:"room_id" json:"room_id"`
	SlotType     SlotType   `db:"slot_type" json:"slot_type"`
	RawSource    string     `db:"raw_source" json:"raw_source"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
}

// ScheduleEntry is a denormalized schedule row for querying and export.
type ScheduleEntry struct {
	ID             uuid.UUID `db:"id" json:"id"`
	Semester       string    `db:"semester" json:"semester"`
	Day            DayOfWeek `db:"day" json:"day"`
	StartMinutes   int       `db:"start_minutes" json:"start_minutes"`
	EndMinutes     int       `db:"end_minutes" json:"end_minutes"`
	SubjectCode    string    `db:"subject_code" json:"subject_code"`
	SubjectName    string    `db:"subject_name" json:"subject_name"`
	SectionName    string    `db:"section_name" json:"section_name"`
	InstructorName *string   `db:"instructor_name" json:"instructor_name"`
	RoomName       *string   `db:"room_name" json:"room_name"`
	SlotType       SlotType  `db:"slot_type" json:"slot_type"`
}

// ImportRun is the audit record for one grid import.
type ImportRun struct {
	ID           uuid.UUID    `db:"id" json:"id"`
	Semester     string       `db:"semester" json:"semester"`
	FileName     string       `db:"file_name" json:"file_name"`
	ArchiveKey   string       `db:"archive_key" json:"archive_key"`
	Status       ImportStatus `db:"status" json:"status"`
	SlotCount    int          `db:"slot_count" json:"slot_count"`
	DroppedCount int          `db:"dropped_count" json:"dropped_count"`
	CreatedAt    time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time    `db:"updated_at" json:"updated_at"`
}
