package engine

import (
	"strings"

	"github.com/google/uuid"

	"slotwise/internal/domain"
)

// EntityIDs carries the identifiers the store assigned during the upsert
// step, keyed by lowercased natural name.
type EntityIDs struct {
	Subjects          map[string]uuid.UUID
	Instructors       map[string]uuid.UUID
	Rooms             map[string]uuid.UUID
	Sections          map[string]uuid.UUID
	UnknownInstructor uuid.UUID
}

// ResolveResult is the commit-ready slot batch plus the count of slots that
// could not be resolved and were dropped.
type ResolveResult struct {
	Slots   []domain.ScheduleSlot
	Dropped int
}

// Resolve turns extracted slots into foreign-key schedule records by
// case-insensitive exact name match. Subject and section are load-bearing
// identity: a slot missing either is dropped (and counted). Instructor and
// room are not: an unresolved instructor falls back to the Unknown sentinel
// and an unresolved room becomes null.
func Resolve(semester string, slots []ExtractedSlot, ids EntityIDs) ResolveResult {
	var out ResolveResult
	for _, s := range slots {
		subjectID, ok := ids.Subjects[strings.ToLower(s.SubjectCode)]
		if !ok {
			out.Dropped++
			continue
		}
		sectionID, ok := ids.Sections[strings.ToLower(s.Section)]
		if !ok {
			out.Dropped++
			continue
		}

		instructorID := ids.UnknownInstructor
		if id, ok := ids.Instructors[strings.ToLower(s.Instructor)]; ok {
			instructorID = id
		}

		var roomID *uuid.UUID
		if id, ok := ids.Rooms[strings.ToLower(s.Room)]; ok && s.Room != "" {
			roomID = &id
		}

		out.Slots = append(out.Slots, domain.ScheduleSlot{
			Semester:     semester,
			Day:          s.Day,
			StartMinutes: int(s.Start),
			EndMinutes:   int(s.End),
			SubjectID:    subjectID,
			SectionID:    sectionID,
			InstructorID: &instructorID,
			RoomID:       roomID,
			SlotType:     s.Type,
			RawSource:    s.RawText,
		})
	}
	return out
}
