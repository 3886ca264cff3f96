package pricing

import (
	"github.com/safarpoint/pricing/internal/resolve"
)

// Package wraps one upstream package record. The record keeps its raw
// shape; typed views are carved out lazily because upstream screens
// disagree on field names and nesting.
type Package struct {
	rec resolve.Record
}

func NewPackage(rec resolve.Record) Package {
	return Package{rec: rec}
}

func (p Package) Record() resolve.Record {
	return p.rec
}

// HotelStay is one hotel component of a package: the raw hotel_details
// entry, the embedded hotel record, and the number of nights the stay
// covers.
type HotelStay struct {
	Entry  resolve.Record
	Hotel  resolve.Record
	Nights int
}

// HotelStays extracts the hotel components. Negative night counts from
// raw form input are clamped to 0.
func (p Package) HotelStays() []HotelStay {
	entries := resolve.List(p.rec, "hotel_details")
	stays := make([]HotelStay, 0, len(entries))

	for _, entry := range entries {
		hotel := resolve.Child(entry, "hotel_info")
		if hotel == nil {
			hotel = resolve.Child(entry, "hotel")
		}

		nights := 0
		if v, ok := resolve.FirstDefinedOK(resolve.Field(entry, "nights", "number_of_nights", "total_nights", "no_of_nights")); ok {
			nights = int(v)
		}

		if nights < 0 {
			nights = 0
		}

		stays = append(stays, HotelStay{Entry: entry, Hotel: hotel, Nights: nights})
	}

	return stays
}

// TicketInfo returns the associated ticket record, if any: the first
// ticket_details element's ticket_info, the element itself when the
// info is not nested, or a ticket_info embedded at the package root.
func (p Package) TicketInfo() resolve.Record {
	tickets := resolve.List(p.rec, "ticket_details")
	if len(tickets) == 0 {
		return resolve.Child(p.rec, "ticket_info")
	}

	if info := resolve.Child(tickets[0], "ticket_info"); info != nil {
		return info
	}

	return tickets[0]
}
