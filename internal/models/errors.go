package models

import (
	"errors"
	"fmt"
)

var ErrMalformedRecord = errors.New("malformed record")

// MalformedRecordError reports a line that does not carry the expected
// number of tab-separated fields, or whose fields cannot be parsed.
type MalformedRecordError struct {
	Path   string
	Line   int
	Fields int
	Want   int
	Err    error
}

func (e *MalformedRecordError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s:%d: malformed record: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("%s:%d: malformed record: expected %d tab-separated fields, got %d",
		e.Path, e.Line, e.Want, e.Fields)
}

func (e *MalformedRecordError) Is(target error) bool {
	return target == ErrMalformedRecord
}

func (e *MalformedRecordError) Unwrap() error {
	return e.Err
}
