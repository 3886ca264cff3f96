package availability

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// BedTier is a room-sharing category. Each tier carries its own
// per-night price inside a PriceSection.
type BedTier string

const (
	TierSharing BedTier = "sharing"
	TierDouble  BedTier = "double"
	TierTriple  BedTier = "triple"
	TierQuad    BedTier = "quad"
	TierQuint   BedTier = "quint"
	TierSingle  BedTier = "single"
)

const (
	minCustomBeds = 7
	maxCustomBeds = 100
)

// TierN returns the N-bed tier for n in [7,100].
func TierN(n int) (BedTier, error) {
	if n < minCustomBeds || n > maxCustomBeds {
		return "", fmt.Errorf("%d beds: %w", n, ErrUnknownTier)
	}

	return BedTier(fmt.Sprintf("%d_bed", n)), nil
}

// ValidTier reports whether t is one of the named tiers or an N-bed
// tier within the allowed range.
func ValidTier(t BedTier) bool {
	switch t {
	case TierSharing, TierDouble, TierTriple, TierQuad, TierQuint, TierSingle:
		return true
	}

	name, ok := strings.CutSuffix(string(t), "_bed")
	if !ok {
		return false
	}

	n, err := strconv.Atoi(name)

	return err == nil && n >= minCustomBeds && n <= maxCustomBeds
}

// DateRange is an inclusive day-granular span. Start and End are
// normalized to midnight UTC.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewDateRange normalizes both bounds to day granularity.
func NewDateRange(start, end time.Time) DateRange {
	return DateRange{Start: Day(start), End: Day(end)}
}

// Day truncates t to midnight UTC.
func Day(t time.Time) time.Time {
	return t.UTC().Truncate(24 * time.Hour) //nolint:gomnd
}

func (r DateRange) Valid() bool {
	return !r.Start.After(r.End)
}

// Contains reports whether other lies entirely within r.
func (r DateRange) Contains(other DateRange) bool {
	return !other.Start.Before(r.Start) && !other.End.After(r.End)
}

// Days returns the number of days covered, both bounds inclusive.
func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start).Hours()/24) + 1 //nolint:gomnd
}

func (r DateRange) String() string {
	return fmt.Sprintf("%s..%s", r.Start.Format("2006-01-02"), r.End.Format("2006-01-02"))
}

// PriceSection is a contiguous slice of a hotel's availability window
// carrying one full set of tier prices.
type PriceSection struct {
	ID            uuid.UUID           `json:"id"`
	Range         DateRange           `json:"range"`
	BaseRoomPrice float64             `json:"base_room_price"`
	BedPrices     map[BedTier]float64 `json:"bed_prices"`
}

// NewSectionID mints an identifier for a section the caller is about
// to create.
func NewSectionID() uuid.UUID {
	return uuid.New()
}

// CheckSection validates a single section in isolation: a well-formed
// range, a positive base price and known bed tiers. Cross-section
// invariants are the job of Validate.
func CheckSection(s PriceSection) error {
	if !s.Range.Valid() {
		return fmt.Errorf("section %s range %s: %w", s.ID, s.Range, ErrInvalidRange)
	}

	if s.BaseRoomPrice <= 0 {
		return fmt.Errorf("section %s base room price %v: %w", s.ID, s.BaseRoomPrice, ErrBasePrice)
	}

	for tier := range s.BedPrices {
		if !ValidTier(tier) {
			return fmt.Errorf("section %s tier %q: %w", s.ID, tier, ErrUnknownTier)
		}
	}

	return nil
}
