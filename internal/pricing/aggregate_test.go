package pricing

import (
	"context"
	"reflect"
	"testing"

	"github.com/safarpoint/pricing/internal/availability"
	"github.com/safarpoint/pricing/internal/resolve"
)

func stayEntry(nights any, fields map[string]any, hotel map[string]any) map[string]any {
	entry := map[string]any{"nights": nights}

	for k, v := range fields {
		entry[k] = v
	}

	if hotel != nil {
		entry["hotel_info"] = hotel
	}

	return entry
}

func pkgRecord(fields map[string]any, stays ...map[string]any) resolve.Record {
	rec := resolve.Record{}

	for k, v := range fields {
		rec[k] = v
	}

	if len(stays) > 0 {
		raw := make([]any, 0, len(stays))
		for _, s := range stays {
			raw = append(raw, s)
		}

		rec["hotel_details"] = raw
	}

	return rec
}

func withTicket(rec resolve.Record, ticket map[string]any) resolve.Record {
	rec["ticket_details"] = []any{map[string]any{"ticket_info": ticket}}

	return rec
}

// One stay, 3 nights at 150 for double; adult fare 500; food 50.
// totalDouble = 500 + 50 + 150*3 = 1000, totalSharing = 550.
func TestTotalsScenario(t *testing.T) {
	rec := withTicket(pkgRecord(
		map[string]any{"food_selling_price": 50},
		stayEntry(3, map[string]any{"double_bed_selling_price": 150}, nil),
	), map[string]any{"adult_selling_price": 500})

	totals := New(nil).Totals(context.Background(), NewPackage(rec))

	if got := totals.ByTier[availability.TierDouble]; got != 1000 {
		t.Fatalf("double: got %v, want 1000", got)
	}

	if got := totals.ByTier[availability.TierSharing]; got != 550 {
		t.Fatalf("sharing with no price anywhere: got %v, want 550", got)
	}

	if totals.Infant != 0 {
		t.Fatalf("infant: got %v, want 0", totals.Infant)
	}
}

// The most specific source wins verbatim even when lower-priority
// sources hold a different value.
func TestFallbackMonotonicity(t *testing.T) {
	a := New(nil)

	stays := NewPackage(pkgRecord(nil, stayEntry(
		2,
		map[string]any{"double_bed_selling_price": 100},
		map[string]any{
			"double_price": 200,
			"prices":       []any{map[string]any{"double_price": 300}},
		},
	))).HotelStays()

	totals := a.HotelTierTotals(context.Background(), stays)

	if got := totals[availability.TierDouble]; got != 200 {
		t.Fatalf("double: got %v, want 100*2 nights", got)
	}
}

func TestTierResolutionChain(t *testing.T) {
	cases := []struct {
		name  string
		entry map[string]any
		hotel map[string]any
		tier  availability.BedTier
		want  float64
	}{
		{
			name:  "bare tier key on the entry",
			entry: map[string]any{"triple": 90},
			tier:  availability.TierTriple,
			want:  90,
		},
		{
			name:  "first prices element",
			hotel: map[string]any{"prices": []any{map[string]any{"quad_selling_price": 110}}},
			tier:  availability.TierQuad,
			want:  110,
		},
		{
			name:  "hotel root record",
			hotel: map[string]any{"single_price": 400},
			tier:  availability.TierSingle,
			want:  400,
		},
		{
			name: "room_type scan over later prices entries",
			hotel: map[string]any{"prices": []any{
				map[string]any{"room_type": "Suite", "price": 900},
				map[string]any{"room_type": "Double Deluxe", "selling_price": 175},
			}},
			tier: availability.TierDouble,
			want: 175,
		},
		{
			name:  "quaint spelling resolves the quint tier",
			entry: map[string]any{"quaint_bed_selling_price": 65},
			tier:  availability.TierQuint,
			want:  65,
		},
		{
			name: "quintet room_type resolves the quint tier",
			hotel: map[string]any{"prices": []any{
				map[string]any{"room_type": "Quintet Room", "purchase_price": 55},
			}},
			tier: availability.TierQuint,
			want: 55,
		},
		{
			name:  "shared room_type resolves the sharing tier",
			hotel: map[string]any{"prices": []any{map[string]any{"room_type": "SHARED", "price": 35}}},
			tier:  availability.TierSharing,
			want:  35,
		},
	}

	a := New(nil)

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stays := NewPackage(pkgRecord(nil, stayEntry(1, tc.entry, tc.hotel))).HotelStays()

			totals := a.HotelTierTotals(context.Background(), stays)
			if got := totals[tc.tier]; got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestHotelTierTotalsSumsAcrossStays(t *testing.T) {
	rec := pkgRecord(nil,
		stayEntry(3, map[string]any{"double_bed_selling_price": 150}, nil),
		stayEntry(2, map[string]any{"double_price": "100"}, nil),
	)

	totals := New(nil).HotelTierTotals(context.Background(), NewPackage(rec).HotelStays())

	if got := totals[availability.TierDouble]; got != 650 {
		t.Fatalf("got %v, want 150*3 + 100*2", got)
	}
}

// A package missing everything still yields six numeric totals.
func TestDegradationNotFailure(t *testing.T) {
	totals := New(nil).Totals(context.Background(), NewPackage(resolve.Record{}))

	if len(totals.ByTier) != len(OccupancyTiers) {
		t.Fatalf("got %d tiers, want %d", len(totals.ByTier), len(OccupancyTiers))
	}

	for _, tier := range OccupancyTiers {
		got, ok := totals.ByTier[tier]
		if !ok {
			t.Fatalf("tier %s missing from totals", tier)
		}

		if got != 0 {
			t.Fatalf("tier %s: got %v, want 0", tier, got)
		}
	}

	if totals.Infant != 0 {
		t.Fatalf("infant: got %v, want 0", totals.Infant)
	}
}

func TestTicketOnlyPackage(t *testing.T) {
	rec := withTicket(pkgRecord(nil), map[string]any{"adult_fare": 480})

	totals := New(nil).Totals(context.Background(), NewPackage(rec))

	for _, tier := range OccupancyTiers {
		if got := totals.ByTier[tier]; got != 480 {
			t.Fatalf("tier %s: got %v, want the bare adult fare", tier, got)
		}
	}
}

func TestAdultBaseCost(t *testing.T) {
	rec := withTicket(pkgRecord(map[string]any{
		"food_price":           50,
		"makkah_ziyarat_price": 30,
		"madinah_ziyarat":      20,
		"transport_price":      "40",
		"visa_price":           60,
	}), map[string]any{"adult_price": 500})

	got := New(nil).AdultBaseCost(context.Background(), NewPackage(rec))
	if got != 700 {
		t.Fatalf("got %v, want 50+30+20+40+60+500", got)
	}
}

func TestInfantTotalIndependentOfTiers(t *testing.T) {
	rec := withTicket(pkgRecord(
		map[string]any{"infant_visa_price": 25},
		stayEntry(5, map[string]any{"double_bed_selling_price": 999}, nil),
	), map[string]any{"infant_fare": 75})

	totals := New(nil).Totals(context.Background(), NewPackage(rec))

	if totals.Infant != 100 {
		t.Fatalf("infant: got %v, want fare 75 + visa 25", totals.Infant)
	}
}

func TestFares(t *testing.T) {
	t.Run("absent ticket means zero fares", func(t *testing.T) {
		fares := New(nil).Fares(NewPackage(resolve.Record{}))
		if fares != (TicketFares{}) {
			t.Fatalf("got %+v, want all zeros", fares)
		}
	})

	t.Run("ticket_details element without nested info", func(t *testing.T) {
		rec := pkgRecord(nil)
		rec["ticket_details"] = []any{map[string]any{"adult_fare": 300, "child_price": 200, "infant_price": 50}}

		fares := New(nil).Fares(NewPackage(rec))
		if fares.Adult != 300 || fares.Child != 200 || fares.Infant != 50 {
			t.Fatalf("got %+v", fares)
		}
	})
}

func TestHotelStaysClampNegativeNights(t *testing.T) {
	stays := NewPackage(pkgRecord(nil, stayEntry(-2, map[string]any{"double_price": 100}, nil))).HotelStays()

	if len(stays) != 1 || stays[0].Nights != 0 {
		t.Fatalf("got %+v, want one stay with 0 nights", stays)
	}
}

func TestTotalsIdempotent(t *testing.T) {
	rec := withTicket(pkgRecord(
		map[string]any{"food_price": 50},
		stayEntry(3, map[string]any{"double_bed_selling_price": 150}, nil),
	), map[string]any{"adult_price": 500})

	pkg := NewPackage(rec)
	a := New(nil)

	first := a.Totals(context.Background(), pkg)
	second := a.Totals(context.Background(), pkg)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("totals drifted between reads: %+v vs %+v", first, second)
	}
}
