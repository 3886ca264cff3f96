// Package pricing aggregates a multi-component package (hotel nights by
// bed tier, visa, food, ziyarat, transport, ticket fare) into one total
// per occupancy tier plus an infant total. Every monetary field is
// resolved through an ordered fallback chain and degrades to 0 when no
// source defines it; the aggregator never fails on data problems.
package pricing

import (
	"context"

	"github.com/safarpoint/pricing/internal/availability"
	"github.com/safarpoint/pricing/internal/logger"
	"github.com/safarpoint/pricing/internal/resolve"
	"github.com/safarpoint/pricing/internal/trace"
)

var (
	adultFareKeys  = []string{"adult_selling_price", "adult_price", "adult_fare", "adult_ticket_price"}
	childFareKeys  = []string{"child_selling_price", "child_price", "child_fare", "child_ticket_price"}
	infantFareKeys = []string{"infant_selling_price", "infant_price", "infant_fare", "infant_ticket_price"}
)

// addOn is one flat per-adult charge and its candidate keys on the
// package record. Add-ons are never multiplied by nights.
type addOn struct {
	name string
	keys []string
}

var adultAddOns = []addOn{
	{name: "food", keys: []string{"food_selling_price", "food_price", "food"}},
	{name: "makkah_ziyarat", keys: []string{"makkah_ziyarat_selling_price", "makkah_ziyarat_price", "makkah_ziyarat", "ziyarat_makkah"}},
	{name: "madinah_ziyarat", keys: []string{"madinah_ziyarat_selling_price", "madinah_ziyarat_price", "madinah_ziyarat", "ziyarat_madinah"}},
	{name: "transport", keys: []string{"transport_selling_price", "transport_price", "transport"}},
	{name: "adult_visa", keys: []string{"adult_visa_selling_price", "adult_visa_price", "visa_selling_price", "visa_price", "visa"}},
}

var infantVisaKeys = []string{"infant_visa_selling_price", "infant_visa_price", "infant_visa"}

// PackageTotals is the per-person price table for one package: one
// total per occupancy tier plus the tier-independent infant total. It
// is a pure projection of the inputs, recomputed on every read.
type PackageTotals struct {
	ByTier map[availability.BedTier]float64
	Infant float64
}

// TicketFares is the resolved fare component of a package.
type TicketFares struct {
	Adult  float64
	Child  float64
	Infant float64
}

type Aggregator struct {
	l *logger.Logger
}

// New builds an aggregator. A nil logger disables degradation
// warnings; computation is unaffected.
func New(l *logger.Logger) *Aggregator {
	return &Aggregator{l: l}
}

// HotelTierTotals resolves, per occupancy tier, the per-night price of
// every stay, multiplies by that stay's nights, and sums across stays.
// Resolution tries, in order: explicit fields on the hotel_details
// entry, the same chain on the first prices[] element, the same chain
// on the hotel root record, then a room_type substring scan over
// prices[]. A tier no source defines contributes 0.
func (a *Aggregator) HotelTierTotals(ctx context.Context, stays []HotelStay) map[availability.BedTier]float64 {
	totals := make(map[availability.BedTier]float64, len(tierSpecs))

	for _, spec := range tierSpecs {
		totals[spec.tier] = 0

		for _, stay := range stays {
			prices := resolve.List(stay.Hotel, "prices")

			var firstPrice resolve.Record
			if len(prices) > 0 {
				firstPrice = prices[0]
			}

			chain := spec.fieldChain()

			perNight, ok := resolve.FirstDefinedOK(
				resolve.Field(stay.Entry, chain...),
				resolve.Field(firstPrice, chain...),
				resolve.Field(stay.Hotel, chain...),
				spec.roomTypeScan(prices),
			)
			if !ok {
				a.warnUnresolved(ctx, string(spec.tier)+"_per_night", resolve.Text(stay.Hotel, "name"))

				continue
			}

			totals[spec.tier] += perNight * float64(stay.Nights)
		}
	}

	return totals
}

// Fares resolves the ticket fares of a package. An absent ticket
// record means every fare is 0.
func (a *Aggregator) Fares(pkg Package) TicketFares {
	ticket := pkg.TicketInfo()

	return TicketFares{
		Adult:  resolve.FirstDefined(resolve.Field(ticket, adultFareKeys...)),
		Child:  resolve.FirstDefined(resolve.Field(ticket, childFareKeys...)),
		Infant: resolve.FirstDefined(resolve.Field(ticket, infantFareKeys...)),
	}
}

// AdultBaseCost sums the tier-independent adult components: the flat
// add-ons and the adult ticket fare. Unresolved components contribute
// 0 and never abort the computation.
func (a *Aggregator) AdultBaseCost(ctx context.Context, pkg Package) float64 {
	var cost float64

	for _, component := range adultAddOns {
		v, ok := resolve.FirstDefinedOK(resolve.Field(pkg.Record(), component.keys...))
		if !ok {
			a.warnUnresolved(ctx, component.name, "")

			continue
		}

		cost += v
	}

	return cost + a.Fares(pkg).Adult
}

// Totals computes the full price table: per tier, adult base cost plus
// that tier's hotel total; infants pay ticket fare plus infant visa
// only, independent of room tier. The result is always complete and
// numeric, never nil or NaN — a zero total means "price unavailable"
// and is the presentation layer's judgment call.
func (a *Aggregator) Totals(ctx context.Context, pkg Package) PackageTotals {
	base := a.AdultBaseCost(ctx, pkg)
	hotelTotals := a.HotelTierTotals(ctx, pkg.HotelStays())

	byTier := make(map[availability.BedTier]float64, len(OccupancyTiers))
	for _, tier := range OccupancyTiers {
		byTier[tier] = base + hotelTotals[tier]
	}

	infantVisa := resolve.FirstDefined(resolve.Field(pkg.Record(), infantVisaKeys...))

	return PackageTotals{
		ByTier: byTier,
		Infant: a.Fares(pkg).Infant + infantVisa,
	}
}

func (a *Aggregator) warnUnresolved(ctx context.Context, field, hotel string) {
	if a.l == nil {
		return
	}

	if hotel == "" {
		hotel = "-"
	}

	a.l.LogWarnf(
		"type: degradation, field: %s, hotel: %s, traceID: %s, resolved to 0",
		field,
		hotel,
		trace.ID(ctx),
	)
}
