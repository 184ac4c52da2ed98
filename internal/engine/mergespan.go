package engine

import "slotwise/internal/domain"

// resolveEndTime computes the true end of a slot anchored at (row, col).
// A merge span whose top-left corner sits on the cell stretches the slot to
// the end of the rightmost time column the merge covers. Practicals with no
// merge information default to a fixed double-length duration; everything
// else ends with its own column.
func (e *Engine) resolveEndTime(row, col int, typ domain.SlotType, tc TimeColumn, axis []TimeColumn, merges []MergeSpan) Clock {
	for _, span := range merges {
		if span.StartRow != row || span.StartCol != col {
			continue
		}
		if end, ok := columnEndAt(axis, span.EndCol); ok {
			return end
		}
		break
	}
	if typ == domain.SlotPractical {
		return tc.Start + Clock(e.opts.PracticalHours*60)
	}
	return tc.End
}

// columnEndAt returns the end time of the rightmost real time column at or
// left of col. Synthetic break/lunch columns are never candidates.
func columnEndAt(axis []TimeColumn, col int) (Clock, bool) {
	var best *TimeColumn
	for i := range axis {
		tc := &axis[i]
		if tc.Col < 0 || tc.Col > col {
			continue
		}
		if best == nil || tc.Col > best.Col {
			best = tc
		}
	}
	if best == nil {
		return 0, false
	}
	return best.End, true
}
