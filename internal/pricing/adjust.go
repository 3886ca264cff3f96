package pricing

import (
	"errors"
	"fmt"
	"time"

	"github.com/safarpoint/pricing/internal/availability"
)

var ErrPromoCodeExpired = errors.New("promo code expired")

// AdjustStrategy mutates a totals table after aggregation, e.g. a
// seasonal discount. Strategies are opt-in: Totals itself never
// applies one.
type AdjustStrategy interface {
	Apply(totals *PackageTotals) error
}

// ApplyAdjustments runs strategies over a copy of totals. The input is
// left untouched; the first failing strategy aborts and its error is
// returned.
func ApplyAdjustments(totals PackageTotals, strategies ...AdjustStrategy) (PackageTotals, error) {
	adjusted := PackageTotals{
		ByTier: make(map[availability.BedTier]float64, len(totals.ByTier)),
		Infant: totals.Infant,
	}

	for tier, v := range totals.ByTier {
		adjusted.ByTier[tier] = v
	}

	for _, strategy := range strategies {
		if err := strategy.Apply(&adjusted); err != nil {
			return totals, fmt.Errorf("apply adjustment to totals: %w", err)
		}
	}

	return adjusted, nil
}

type PromoCode struct {
	Code               string
	DiscountPercentage float64
	ValidThrough       time.Time
}

func (p *PromoCode) Apply(totals *PackageTotals) error {
	if time.Now().UTC().After(p.ValidThrough) {
		return fmt.Errorf("promo code %s: %w", p.Code, ErrPromoCodeExpired)
	}

	for tier := range totals.ByTier {
		totals.ByTier[tier] -= totals.ByTier[tier] * p.DiscountPercentage / 100 //nolint:gomnd
	}

	return nil
}

type GroupDiscount struct {
	Amount float64
}

// Apply takes a flat amount off every tier total, flooring at zero.
// Infant totals are left alone.
func (g *GroupDiscount) Apply(totals *PackageTotals) error {
	for tier := range totals.ByTier {
		totals.ByTier[tier] -= g.Amount

		if totals.ByTier[tier] < 0 {
			totals.ByTier[tier] = 0
		}
	}

	return nil
}
