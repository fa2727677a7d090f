package satmad

import (
	"fmt"
)

// FormatError is returned when a TLE line does not follow the fixed-column
// NORAD format: wrong length, wrong leading line marker, or a field column
// that cannot be decoded as a number.
type FormatError struct {
	Line  int    // 1 or 2
	Field string // offending field, empty for line-level problems
	Msg   string
}

// Error returns the error message for FormatError.
func (e *FormatError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("tle: line %d: %s", e.Line, e.Msg)
	}
	return fmt.Sprintf("tle: line %d: invalid %s: %s", e.Line, e.Field, e.Msg)
}

// ChecksumError is returned when the modulo-10 digit sum computed over the
// first 68 columns of a line does not match the checksum digit in column 69.
type ChecksumError struct {
	Line int // 1 or 2
	Want int // checksum digit carried on the line
	Got  int // computed digit sum
}

// Error returns the error message for ChecksumError.
func (e *ChecksumError) Error() string {
	return fmt.Sprintf("tle: line %d: checksum mismatch: line carries %d, computed %d", e.Line, e.Want, e.Got)
}

// ConsistencyError is returned when the catalog numbers on the two lines
// of an element set differ.
type ConsistencyError struct {
	Catalog1 int // catalog number on line 1
	Catalog2 int // catalog number on line 2
}

// Error returns the error message for ConsistencyError.
func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("tle: catalog numbers differ between lines (%d vs %d)", e.Catalog1, e.Catalog2)
}

// DomainError is returned when a derived quantity would be undefined or
// non-physical, such as a non-positive mean motion feeding Kepler's third
// law. It indicates invalid input data, not a transient condition.
type DomainError struct {
	Op    string  // the computation that failed
	Value float64 // the offending value
	Msg   string
}

// Error returns the error message for DomainError.
func (e *DomainError) Error() string {
	return fmt.Sprintf("tle: %s: %s (value %g)", e.Op, e.Msg, e.Value)
}
