// Package availability validates and partitions a hotel's availability
// window into contiguous price sections. All operations are pure: they
// never mutate their inputs and hold no state between calls.
package availability

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// ProposeNextSection returns the default span for a new price section:
// the whole window when no section exists yet, otherwise the day after
// the latest existing section's end through the window's end. The
// caller may shrink the returned range before creating the section.
func ProposeNextSection(window DateRange, existing []PriceSection) (DateRange, error) {
	if !window.Valid() {
		return DateRange{}, fmt.Errorf("window %s: %w", window, ErrInvalidRange)
	}

	if len(existing) == 0 {
		return window, nil
	}

	latest := existing[0].Range.End
	for _, section := range existing[1:] {
		if section.Range.End.After(latest) {
			latest = section.Range.End
		}
	}

	start := latest.AddDate(0, 0, 1)
	if start.After(window.End) {
		return DateRange{}, newSectionError(ErrNoCapacity, window)
	}

	return DateRange{Start: start, End: window.End}, nil
}

// ValidateOptions tunes cross-section validation. The zero value is the
// strict policy ProposeNextSection builds toward.
type ValidateOptions struct {
	// AllowGaps tolerates uncovered days between sections, e.g. a
	// hotel closed for renovation mid-window. Overlaps stay fatal.
	AllowGaps bool
}

// Validate checks every section against the window and the whole set
// for continuity: sections must be pairwise non-overlapping and each
// must start the day after its predecessor ends. The first violation
// found is returned as a *SectionError; nil means the partition is
// sound.
func Validate(window DateRange, sections []PriceSection) error {
	return ValidatePolicy(window, sections, ValidateOptions{})
}

// ValidatePolicy is Validate with an explicit gap policy.
func ValidatePolicy(window DateRange, sections []PriceSection, opts ValidateOptions) error {
	if !window.Valid() {
		return fmt.Errorf("window %s: %w", window, ErrInvalidRange)
	}

	for _, section := range sections {
		if err := CheckSection(section); err != nil {
			return err
		}

		if !window.Contains(section.Range) {
			return newSectionError(ErrOutOfWindow, section.Range)
		}
	}

	ordered := make([]PriceSection, len(sections))
	copy(ordered, sections)

	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Range.Start.Before(ordered[j].Range.Start)
	})

	for i := 1; i < len(ordered); i++ {
		prev, next := ordered[i-1].Range, ordered[i].Range

		if !next.Start.After(prev.End) {
			return newSectionError(ErrOverlap, prev, next)
		}

		if opts.AllowGaps {
			continue
		}

		if !next.Start.Equal(prev.End.AddDate(0, 0, 1)) {
			return newSectionError(ErrGap, prev, next)
		}
	}

	return nil
}

// RemoveSection returns a copy of sections without the section carrying
// id. Removing the last remaining section is refused: the original
// slice comes back together with ErrMinimumOneRequired. An id that is
// not present leaves the set unchanged.
func RemoveSection(sections []PriceSection, id uuid.UUID) ([]PriceSection, error) {
	if len(sections) == 1 {
		return sections, newSectionError(ErrMinimumOneRequired, sections[0].Range)
	}

	remaining := make([]PriceSection, 0, len(sections))

	for _, section := range sections {
		if section.ID == id {
			continue
		}

		remaining = append(remaining, section)
	}

	return remaining, nil
}
