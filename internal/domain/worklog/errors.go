package worklog

import "errors"

// Worklog domain errors
var (
	ErrRawRecordNotFound = errors.New("no raw punch record found for that employee and date")
)
