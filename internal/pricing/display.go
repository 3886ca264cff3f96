package pricing

import (
	"github.com/safarpoint/pricing/internal/resolve"
)

// refOf tries keys on rec in order and returns the first value that
// classifies as a present reference.
func refOf(rec resolve.Record, keys ...string) resolve.Ref {
	for _, key := range keys {
		raw, ok := rec[key]
		if !ok {
			continue
		}

		if ref := resolve.ParseRef(raw); ref.Kind != resolve.RefAbsent {
			return ref
		}
	}

	return resolve.Ref{Kind: resolve.RefAbsent}
}

// AirlineDisplay resolves the ticket's airline reference (id, code
// string, or embedded object) against the airline catalog. The bool
// result is false when the package carries no airline at all.
func AirlineDisplay(pkg Package, airlines resolve.Lookup) (string, bool) {
	ticket := pkg.TicketInfo()
	if ticket == nil {
		return "", false
	}

	return resolve.Display(airlines, refOf(ticket, "airline", "airline_info", "airline_id", "airline_code"))
}

// CityDisplay resolves a hotel record's city reference against the
// city catalog.
func CityDisplay(hotel resolve.Record, cities resolve.Lookup) (string, bool) {
	if hotel == nil {
		return "", false
	}

	return resolve.Display(cities, refOf(hotel, "city", "city_info", "city_id"))
}

// StopoverDisplay resolves the ticket's stopover city, if any.
func StopoverDisplay(pkg Package, cities resolve.Lookup) (string, bool) {
	ticket := pkg.TicketInfo()
	if ticket == nil {
		return "", false
	}

	return resolve.Display(cities, refOf(ticket, "stopover", "stopover_info", "stopover_city", "stopover_id"))
}
