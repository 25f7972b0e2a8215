package importer

import (
	"errors"
	"fmt"
)

// ErrEmptyResult is returned when parsing succeeded but produced no
// categories. Surfaced to the caller verbatim.
var ErrEmptyResult = errors.New("no valid menu data found in file")

// UnsupportedFormatError names the rejected file extension.
type UnsupportedFormatError struct {
	Ext string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format: %s", e.Ext)
}

// ParseError wraps a format-specific parser failure.
type ParseError struct {
	Format Format
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s file: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
