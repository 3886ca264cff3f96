package availability

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRange       = errors.New("range start is after range end")
	ErrBasePrice          = errors.New("base room price must be positive")
	ErrUnknownTier        = errors.New("unknown bed tier")
	ErrOutOfWindow        = errors.New("section exceeds the availability window")
	ErrOverlap            = errors.New("sections share at least one day")
	ErrGap                = errors.New("sections are not exactly one day apart")
	ErrNoCapacity         = errors.New("no room remains in the availability window")
	ErrMinimumOneRequired = errors.New("a hotel must keep at least one price section")
)

// SectionError reports the first invariant violation Validate or
// ProposeNextSection detected, together with the range(s) involved, so
// the form layer can point at the offending rows.
type SectionError struct {
	kind   error
	ranges []DateRange
}

func newSectionError(kind error, ranges ...DateRange) *SectionError {
	return &SectionError{kind: kind, ranges: ranges}
}

func AsSectionError(err error) *SectionError {
	if err == nil {
		return nil
	}

	var sectionError *SectionError

	if errors.As(err, &sectionError) {
		return sectionError
	}

	return nil
}

func (e *SectionError) Error() string {
	if len(e.ranges) == 0 {
		return e.kind.Error()
	}

	return fmt.Sprintf("%v: %+v", e.kind, e.ranges)
}

func (e *SectionError) Unwrap() error {
	return e.kind
}

// Ranges returns the range(s) that triggered the failure, in the
// chronological order they were inspected.
func (e *SectionError) Ranges() []DateRange {
	return e.ranges
}
