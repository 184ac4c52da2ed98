package config

import "slotwise/internal/engine"

// Options converts the engine section into engine.Options. Unparseable
// clock strings fall back to the engine defaults rather than failing the
// whole boot.
func (e *EngineConfig) Options() engine.Options {
	opts := engine.DefaultOptions()
	opts.HeaderRow = e.HeaderRow
	opts.DayCol = e.DayCol
	if e.PracticalHours > 0 {
		opts.PracticalHours = e.PracticalHours
	}
	if e.PMShiftMaxHour > 0 {
		opts.PMShiftMaxHour = e.PMShiftMaxHour
	}
	if c, err := engine.ParseClock(e.BreakStart); err == nil {
		opts.BreakStart = c
	}
	if c, err := engine.ParseClock(e.BreakEnd); err == nil {
		opts.BreakEnd = c
	}
	if c, err := engine.ParseClock(e.LunchStart); err == nil {
		opts.LunchStart = c
	}
	if c, err := engine.ParseClock(e.LunchEnd); err == nil {
		opts.LunchEnd = c
	}
	return opts
}
