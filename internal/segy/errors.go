package segy

import (
	"errors"
	"fmt"
)

// ErrFieldNotFound reports a trace-header field code that is not part of
// this file's header layout. It is recoverable: callers substitute zeros,
// synthesized indices, or an empty preview.
var ErrFieldNotFound = errors.New("segy: trace header field not found")

// DecodeError reports a structurally corrupt or unsupported file. It is
// fatal for that file and is never retried.
type DecodeError struct {
	Path   string
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("segy: cannot decode %s: %s", e.Path, e.Reason)
}

func decodeErrf(path, format string, args ...interface{}) *DecodeError {
	return &DecodeError{Path: path, Reason: fmt.Sprintf(format, args...)}
}
