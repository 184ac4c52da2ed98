package domain

import "errors"

var (
	ErrNotFound        = errors.New("resource not found")
	ErrNoTimeAxis      = errors.New("no time axis found in header row")
	ErrGridTooShort    = errors.New("grid shorter than minimum header depth")
	ErrSessionNotFound = errors.New("import session not found")
	ErrEmptyWorkbook   = errors.New("workbook has no sheets")
	ErrUnsupportedFile = errors.New("unsupported file type")
	ErrMissingSemester = errors.New("semester is required")
)
