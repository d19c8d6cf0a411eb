package extrinsic

import (
	"errors"
	"fmt"
)

// Error kinds for the fatal-at-load taxonomy. A malformed weight table
// would silently corrupt scoring for an entire prediction run, so every
// class below aborts the load.
var (
	ErrMalformedRow     = errors.New("malformed row")
	ErrUnknownSource    = errors.New("unknown source code")
	ErrMissingSection   = errors.New("missing section")
	ErrDuplicateFeature = errors.New("duplicate feature row")
	ErrDuplicateSource  = errors.New("duplicate source code")
	ErrUnknownSection   = errors.New("unknown section")
)

// ParseError is a load failure tied to a line of the input file.
// Line is 1-based; it is 0 for whole-file failures such as a missing
// section. errors.Is matches against the Kind.
type ParseError struct {
	Line int
	Kind error
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s: %s", e.Line, e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}

func parseErrf(line int, kind error, format string, args ...interface{}) *ParseError {
	return &ParseError{Line: line, Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
