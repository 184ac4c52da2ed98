package engine

import (
	"sort"

	"slotwise/internal/domain"
)

// CrossCheck recomputes, per subject and slot type, the number of distinct
// (day, section) pairs among the extracted slots and compares them against
// the declared credit structure. A merged multi-column slot therefore counts
// once. Subjects without declared metadata get a nil Consistent: they are
// reported as having no reference, never as a silent pass. The report is
// advisory and never blocks a commit.
func CrossCheck(slots []ExtractedSlot, subjects map[string]SubjectMeta) []CrossCheckRow {
	type pair struct {
		day     domain.DayOfWeek
		section string
	}
	seen := make(map[string]map[domain.SlotType]map[pair]struct{})

	for _, s := range slots {
		byType, ok := seen[s.SubjectCode]
		if !ok {
			byType = make(map[domain.SlotType]map[pair]struct{})
			seen[s.SubjectCode] = byType
		}
		pairs, ok := byType[s.Type]
		if !ok {
			pairs = make(map[pair]struct{})
			byType[s.Type] = pairs
		}
		pairs[pair{day: s.Day, section: s.Section}] = struct{}{}
	}

	rows := make([]CrossCheckRow, 0, len(seen))
	for code, byType := range seen {
		row := CrossCheckRow{
			SubjectCode: code,
			Lectures:    len(byType[domain.SlotLecture]),
			Tutorials:   len(byType[domain.SlotTutorial]),
			Practicals:  len(byType[domain.SlotPractical]),
		}
		if meta, ok := subjects[code]; ok {
			declared := meta
			row.Declared = &declared
			consistent := row.Lectures == meta.Lecture &&
				row.Tutorials == meta.Tutorial &&
				row.Practicals == expectedPracticalBlocks(meta.Practical)
			row.Consistent = &consistent
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].SubjectCode < rows[j].SubjectCode })
	return rows
}

// expectedPracticalBlocks converts declared weekly practical hours into the
// number of distinct schedule occurrences expected, since a practical is
// scheduled as one two-hour block.
func expectedPracticalBlocks(hours int) int {
	if hours <= 0 {
		return 0
	}
	return (hours + 1) / 2
}
