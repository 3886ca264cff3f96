package app

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/safarpoint/pricing/internal/availability"
	"github.com/safarpoint/pricing/internal/catalog"
	"github.com/safarpoint/pricing/internal/logger"
	"github.com/safarpoint/pricing/internal/pricing"
	"github.com/safarpoint/pricing/internal/resolve"
)

const dateLayout = "2006-01-02"

type snapshotSection struct {
	StartDate     string             `json:"start_date"`
	EndDate       string             `json:"end_date"`
	BaseRoomPrice float64            `json:"base_room_price"`
	BedPrices     map[string]float64 `json:"bed_prices"`
}

type snapshotHotel struct {
	Name                  string            `json:"name"`
	AvailabilityStartDate string            `json:"availability_start_date"`
	AvailabilityEndDate   string            `json:"availability_end_date"`
	PriceSections         []snapshotSection `json:"price_sections"`
}

// snapshot is the one-shot input: a hotel with its proposed price
// sections, a raw package record, and the display catalogs.
type snapshot struct {
	Hotel    snapshotHotel   `json:"hotel"`
	Package  resolve.Record  `json:"package"`
	Airlines []catalog.Entry `json:"airlines"`
	Cities   []catalog.Entry `json:"cities"`
}

// Run validates the snapshot's price sections and prints the package
// price table per occupancy tier.
func Run(l *logger.Logger) error {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGHUP,
	)
	defer cancel()

	path := flag.String("snapshot", "snapshot.json", "path to a JSON snapshot with hotel, package and catalog records")
	flag.Parse()

	snap, err := loadSnapshot(*path)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}

	window, sections, err := partition(snap.Hotel)
	if err != nil {
		return fmt.Errorf("read hotel availability: %w", err)
	}

	if err := availability.Validate(window, sections); err != nil {
		if sectionErr := availability.AsSectionError(err); sectionErr != nil {
			l.LogErrorf("Price sections rejected: %v", sectionErr)
		}

		return fmt.Errorf("validate price sections for hotel %q: %w", snap.Hotel.Name, err)
	}

	l.LogInfo("Hotel %q: %d valid price section(s) over %s", snap.Hotel.Name, len(sections), window)

	next, err := availability.ProposeNextSection(window, sections)

	switch {
	case errors.Is(err, availability.ErrNoCapacity):
		l.LogInfo("Availability window is fully covered")
	case err != nil:
		return fmt.Errorf("propose next section: %w", err)
	default:
		l.LogInfo("Default span for the next section: %s", next)
	}

	airlines := catalog.New()
	airlines.Seed(snap.Airlines)

	cities := catalog.New()
	cities.Seed(snap.Cities)

	pkg := pricing.NewPackage(snap.Package)
	totals := pricing.New(l).Totals(ctx, pkg)

	for _, tier := range pricing.OccupancyTiers {
		l.LogInfo("Total per adult, %s: %.2f", tier, totals.ByTier[tier])
	}

	l.LogInfo("Total per infant: %.2f", totals.Infant)

	if name, ok := pricing.AirlineDisplay(pkg, airlines); ok {
		l.LogInfo("Airline: %s", name)
	}

	if name, ok := pricing.StopoverDisplay(pkg, cities); ok {
		l.LogInfo("Stopover: %s", name)
	}

	return nil
}

func loadSnapshot(path string) (*snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var snap snapshot

	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return &snap, nil
}

func partition(hotel snapshotHotel) (availability.DateRange, []availability.PriceSection, error) {
	window, err := parseRange(hotel.AvailabilityStartDate, hotel.AvailabilityEndDate)
	if err != nil {
		return availability.DateRange{}, nil, fmt.Errorf("availability window: %w", err)
	}

	sections := make([]availability.PriceSection, 0, len(hotel.PriceSections))

	for i, raw := range hotel.PriceSections {
		r, err := parseRange(raw.StartDate, raw.EndDate)
		if err != nil {
			return availability.DateRange{}, nil, fmt.Errorf("price section %d: %w", i, err)
		}

		bedPrices := make(map[availability.BedTier]float64, len(raw.BedPrices))
		for tier, price := range raw.BedPrices {
			bedPrices[availability.BedTier(tier)] = price
		}

		sections = append(sections, availability.PriceSection{
			ID:            availability.NewSectionID(),
			Range:         r,
			BaseRoomPrice: raw.BaseRoomPrice,
			BedPrices:     bedPrices,
		})
	}

	return window, sections, nil
}

func parseRange(start, end string) (availability.DateRange, error) {
	from, err := time.Parse(dateLayout, start)
	if err != nil {
		return availability.DateRange{}, fmt.Errorf("parse start date %q: %w", start, err)
	}

	to, err := time.Parse(dateLayout, end)
	if err != nil {
		return availability.DateRange{}, fmt.Errorf("parse end date %q: %w", end, err)
	}

	return availability.NewDateRange(from, to), nil
}
