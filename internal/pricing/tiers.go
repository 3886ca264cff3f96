package pricing

import (
	"strings"

	"github.com/safarpoint/pricing/internal/availability"
	"github.com/safarpoint/pricing/internal/resolve"
)

// OccupancyTiers is the fixed set of tiers a totals table reports,
// widest sharing first.
var OccupancyTiers = []availability.BedTier{
	availability.TierSharing,
	availability.TierQuint,
	availability.TierQuad,
	availability.TierTriple,
	availability.TierDouble,
	availability.TierSingle,
}

// tierSpec binds a tier to the field-name prefixes and room_type
// keywords upstream data uses for it. Quint appears under three
// spellings in production rows.
type tierSpec struct {
	tier     availability.BedTier
	prefixes []string
	keywords []string
}

var tierSpecs = []tierSpec{
	{tier: availability.TierSharing, prefixes: []string{"sharing"}, keywords: []string{"sharing", "shared"}},
	{tier: availability.TierQuint, prefixes: []string{"quint", "quaint"}, keywords: []string{"quaint", "quint", "quintet"}},
	{tier: availability.TierQuad, prefixes: []string{"quad"}, keywords: []string{"quad"}},
	{tier: availability.TierTriple, prefixes: []string{"triple"}, keywords: []string{"triple"}},
	{tier: availability.TierDouble, prefixes: []string{"double"}, keywords: []string{"double"}},
	{tier: availability.TierSingle, prefixes: []string{"single"}, keywords: []string{"single"}},
}

// fieldChain expands prefixes into the candidate key list for one tier,
// most specific key first: <p>_bed_selling_price, <p>_bed_price,
// <p>_selling_price, <p>_price, <p>.
func (s tierSpec) fieldChain() []string {
	keys := make([]string, 0, len(s.prefixes)*5) //nolint:gomnd

	for _, prefix := range s.prefixes {
		keys = append(keys,
			prefix+"_bed_selling_price",
			prefix+"_bed_price",
			prefix+"_selling_price",
			prefix+"_price",
			prefix,
		)
	}

	return keys
}

// matchesRoomType reports whether a free-text room_type names this
// tier.
func (s tierSpec) matchesRoomType(roomType string) bool {
	roomType = strings.ToLower(roomType)

	for _, keyword := range s.keywords {
		if strings.Contains(roomType, keyword) {
			return true
		}
	}

	return false
}

// roomTypeScan returns an accessor searching the hotel's prices[] for
// an entry whose room_type matches the tier, taking that entry's
// price, selling_price or purchase_price.
func (s tierSpec) roomTypeScan(prices []resolve.Record) resolve.Accessor {
	return func() (float64, bool) {
		for _, price := range prices {
			if !s.matchesRoomType(resolve.Text(price, "room_type")) {
				continue
			}

			if v, ok := resolve.Field(price, "price", "selling_price", "purchase_price")(); ok {
				return v, true
			}
		}

		return 0, false
	}
}
