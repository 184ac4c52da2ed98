package engine

import (
	"strings"

	"slotwise/internal/domain"
)

// NormalizedEntities holds the deduplicated entity names extracted across
// all slots of one import, ready for the store's upsert step. Computed fresh
// per import and discarded after resolution.
type NormalizedEntities struct {
	Subjects    []string
	Instructors []string
	Rooms       map[string]domain.RoomKind
	Sections    []string
}

// Normalize deduplicates subject codes, instructor names, room names, and
// section names across the (possibly review-edited) slot list. The Unknown
// instructor and the All section are added unconditionally up front so that
// fallback lookups always resolve. Room kind is inferred from usage: a room
// is a lab only if every slot referencing it is a practical.
func Normalize(slots []ExtractedSlot) NormalizedEntities {
	out := NormalizedEntities{
		Instructors: []string{domain.UnknownInstructor},
		Sections:    []string{domain.SectionAll},
		Rooms:       make(map[string]domain.RoomKind),
	}

	seenSubject := map[string]struct{}{}
	seenInstructor := map[string]struct{}{strings.ToLower(domain.UnknownInstructor): {}}
	seenSection := map[string]struct{}{strings.ToLower(domain.SectionAll): {}}
	roomAllPractical := map[string]bool{}
	roomName := map[string]string{}

	for _, s := range slots {
		if key := strings.ToLower(s.SubjectCode); s.SubjectCode != "" {
			if _, ok := seenSubject[key]; !ok {
				seenSubject[key] = struct{}{}
				out.Subjects = append(out.Subjects, s.SubjectCode)
			}
		}
		if key := strings.ToLower(s.Instructor); s.Instructor != "" {
			if _, ok := seenInstructor[key]; !ok {
				seenInstructor[key] = struct{}{}
				out.Instructors = append(out.Instructors, s.Instructor)
			}
		}
		if key := strings.ToLower(s.Section); s.Section != "" {
			if _, ok := seenSection[key]; !ok {
				seenSection[key] = struct{}{}
				out.Sections = append(out.Sections, s.Section)
			}
		}
		if s.Room != "" {
			key := strings.ToLower(s.Room)
			if _, ok := roomAllPractical[key]; !ok {
				roomAllPractical[key] = true
				roomName[key] = s.Room
			}
			if s.Type != domain.SlotPractical {
				roomAllPractical[key] = false
			}
		}
	}

	for key, allPractical := range roomAllPractical {
		kind := domain.RoomLecture
		if allPractical {
			kind = domain.RoomLab
		}
		out.Rooms[roomName[key]] = kind
	}
	return out
}

var honorifics = map[string]struct{}{
	"dr": {}, "prof": {}, "professor": {},
	"mr": {}, "mrs": {}, "ms": {}, "er": {},
	"shri": {}, "smt": {},
}

// InstructorSlug derives the natural-key identifier for an instructor
// display name: honorific prefixes stripped, non-letter characters removed,
// remaining words dot-joined and lowercased. Distinct spellings that
// normalize identically collide on purpose; idempotent re-imports rely on
// that collision.
func InstructorSlug(name string) string {
	words := strings.Fields(strings.ToLower(name))

	for len(words) > 0 {
		if _, ok := honorifics[strings.Trim(words[0], ".")]; !ok {
			break
		}
		words = words[1:]
	}

	var parts []string
	for _, w := range words {
		var b strings.Builder
		for _, r := range w {
			if r >= 'a' && r <= 'z' {
				b.WriteRune(r)
			}
		}
		if b.Len() > 0 {
			parts = append(parts, b.String())
		}
	}
	return strings.Join(parts, ".")
}
