package engine

import (
	"strings"

	"slotwise/internal/domain"
)

// assemble walks every day row × time column × cell line, combining the
// heuristic parser, merge-span resolution, and the faculty map into
// extracted slots. Every examined line leaves a diagnostic; nothing is
// silently discarded.
func (e *Engine) assemble(rows [][]string, axis []TimeColumn, merges []MergeSpan, faculty FacultyMap, metaRow int) ([]ExtractedSlot, []Diagnostic) {
	limit := len(rows)
	if metaRow >= 0 && metaRow < limit {
		limit = metaRow
	}

	var slots []ExtractedSlot
	diags := make([]Diagnostic, 0)

	var day domain.DayOfWeek
	haveDay := false
	for r := e.opts.HeaderRow + 1; r < limit; r++ {
		row := rows[r]
		if d, ok := domain.ParseDay(cellAt(row, e.opts.DayCol)); ok {
			day = d
			haveDay = true
		}
		if !haveDay {
			continue
		}

		for _, tc := range axis {
			if tc.BreakOrLunch || tc.Col >= len(row) {
				continue
			}
			cell := row[tc.Col]
			if cell == "" {
				continue
			}

			for _, line := range strings.Split(cell, "\n") {
				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}

				parsed, reason := e.ParseLine(line)
				if parsed == nil {
					diags = append(diags, Diagnostic{
						Row:     r + 1,
						RawText: line,
						Status:  domain.DiagnosticSkipped,
						Reason:  reason,
					})
					continue
				}

				slots = append(slots, ExtractedSlot{
					Day:         day,
					Start:       tc.Start,
					End:         e.resolveEndTime(r, tc.Col, parsed.Type, tc, axis, merges),
					SubjectCode: parsed.Subject,
					Type:        parsed.Type,
					Section:     parsed.Section,
					Room:        parsed.Room,
					Instructor:  instructorFor(faculty, parsed.Subject, parsed.Section),
					RawText:     line,
				})
				diags = append(diags, Diagnostic{
					Row:     r + 1,
					RawText: line,
					Status:  domain.DiagnosticParsed,
				})
			}
		}
	}
	return slots, diags
}

// instructorFor resolves the instructor for a subject/section pair from the
// expertise map: exact section key, bare section token, subject default,
// then the Unknown sentinel.
func instructorFor(faculty FacultyMap, subject, section string) string {
	bySection, ok := faculty[subject]
	if !ok {
		return domain.UnknownInstructor
	}
	if name, ok := bySection[section]; ok {
		return name
	}
	if name, ok := bySection[strings.TrimPrefix(section, "Sec ")]; ok {
		return name
	}
	if name, ok := bySection[domain.DefaultSectionKey]; ok {
		return name
	}
	return domain.UnknownInstructor
}
