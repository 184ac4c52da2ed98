package engine

import (
	"regexp"
	"strconv"

	"slotwise/internal/domain"
)

// Matches "8:50-9:50", "08.50 - 09.50", "1:00 to 2:00". Dash variants are
// already normalized to "-" by Sanitize.
var timeRangeRe = regexp.MustCompile(`(\d{1,2})[:.](\d{2})\s*(?:-|to)\s*(\d{1,2})[:.](\d{2})`)

// to24 applies the institution's PM convention: hours 1..PMShiftMaxHour are
// afternoon times written without their leading 1, so they shift by +12.
// Hour 0 and hours above the bound pass through.
func (e *Engine) to24(h int) int {
	if h >= 1 && h <= e.opts.PMShiftMaxHour {
		return h + 12
	}
	return h
}

// DetectTimeAxis scans the designated header row for time-range tokens and
// builds the ordered column→window map. Columns without a recognizable range
// are not time columns. The fixed break and lunch windows are always
// appended as synthetic columns, whether or not the header mentions them.
func (e *Engine) DetectTimeAxis(header []string) ([]TimeColumn, error) {
	var axis []TimeColumn
	for col, cell := range header {
		m := timeRangeRe.FindStringSubmatch(cell)
		if m == nil {
			continue
		}
		sh, _ := strconv.Atoi(m[1])
		sm, _ := strconv.Atoi(m[2])
		eh, _ := strconv.Atoi(m[3])
		em, _ := strconv.Atoi(m[4])
		axis = append(axis, TimeColumn{
			Col:   col,
			Start: ClockOf(e.to24(sh), sm),
			End:   ClockOf(e.to24(eh), em),
		})
	}
	if len(axis) == 0 {
		return nil, domain.ErrNoTimeAxis
	}

	axis = append(axis,
		TimeColumn{Col: -1, Start: e.opts.BreakStart, End: e.opts.BreakEnd, BreakOrLunch: true},
		TimeColumn{Col: -2, Start: e.opts.LunchStart, End: e.opts.LunchEnd, BreakOrLunch: true},
	)
	return axis, nil
}
