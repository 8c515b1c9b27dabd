package itinerary

import (
	"fmt"
	"log"
	"strings"

	"faregrid/internal/skyscanner"
	"faregrid/pkg/currency"
)

const unknownCarrierName = "Unknown carrier name"

// LegDetail is one leg of a flattened itinerary, ready for display.
type LegDetail struct {
	Departure         skyscanner.DateTime
	Arrival           skyscanner.DateTime
	StopCount         int
	SegmentPlaceCodes []string
	CarrierName       string
}

// Itinerary is an independent flat record joined out of the result graph.
// PriceOptions keeps only amounts that parsed as decimals, in the
// provider's order.
type Itinerary struct {
	PriceOptions []float64
	Details      []LegDetail
}

// Format flattens the result graph into display records. An itinerary that
// references a leg or carrier missing from the graph is inconsistent; it is
// skipped with a warning. Missing segments or places degrade to their raw
// IDs instead.
func Format(results skyscanner.Results) []Itinerary {
	out := make([]Itinerary, 0, len(results.Itineraries))
	for id, it := range results.Itineraries {
		details, err := buildDetails(results, it)
		if err != nil {
			log.Printf("skipping itinerary %s: %v", id, err)
			continue
		}
		out = append(out, Itinerary{
			PriceOptions: parsePrices(it.PricingOptions),
			Details:      details,
		})
	}
	return out
}

func buildDetails(results skyscanner.Results, it skyscanner.Itinerary) ([]LegDetail, error) {
	details := make([]LegDetail, 0, len(it.LegIDs))
	for _, legID := range it.LegIDs {
		leg, ok := results.Legs[legID]
		if !ok {
			return nil, fmt.Errorf("leg %q not in result graph", legID)
		}
		name, err := carrierName(results, leg)
		if err != nil {
			return nil, err
		}
		details = append(details, LegDetail{
			Departure:         leg.DepartureDateTime,
			Arrival:           leg.ArrivalDateTime,
			StopCount:         leg.StopCount,
			SegmentPlaceCodes: segmentPlaceCodes(results, leg),
			CarrierName:       name,
		})
	}
	return details, nil
}

// carrierName prefers the marketing carrier over the operating one. A listed
// carrier that is absent from the graph is an inconsistency; no carriers at
// all is a known provider quirk and gets the placeholder name.
func carrierName(results skyscanner.Results, leg skyscanner.Leg) (string, error) {
	var carrierID string
	switch {
	case len(leg.MarketingCarrierIDs) > 0:
		carrierID = leg.MarketingCarrierIDs[0]
	case len(leg.OperatingCarrierIDs) > 0:
		carrierID = leg.OperatingCarrierIDs[0]
	default:
		return unknownCarrierName, nil
	}
	carrier, ok := results.Carriers[carrierID]
	if !ok {
		return "", fmt.Errorf("carrier %q not in result graph", carrierID)
	}
	return carrier.Name, nil
}

func segmentPlaceCodes(results skyscanner.Results, leg skyscanner.Leg) []string {
	codes := make([]string, 0, len(leg.SegmentIDs))
	for _, segmentID := range leg.SegmentIDs {
		code := segmentID
		if segment, ok := results.Segments[segmentID]; ok {
			code = segment.DestinationPlaceID
			if place, ok := results.Places[segment.DestinationPlaceID]; ok {
				code = place.IATA
			}
		}
		codes = append(codes, "..."+code)
	}
	return codes
}

func parsePrices(options []skyscanner.PricingOption) []float64 {
	prices := make([]float64, 0, len(options))
	for _, opt := range options {
		amount, err := currency.ParseAmount(opt.Price.Amount)
		if err != nil {
			continue
		}
		prices = append(prices, amount)
	}
	return prices
}

// String renders the display block: one line per leg, then the price line.
// Stop trails show the first StopCount segment codes concatenated.
func (it Itinerary) String() string {
	var b strings.Builder
	for _, d := range it.Details {
		if d.StopCount > 0 {
			trail := d.SegmentPlaceCodes
			if d.StopCount < len(trail) {
				trail = trail[:d.StopCount]
			}
			fmt.Fprintf(&b, "Carrier(%s):\t%s -> %s\t(stop count: %d)\t(%s)\n",
				d.CarrierName, d.Departure, d.Arrival, d.StopCount, strings.Join(trail, ""))
		} else {
			fmt.Fprintf(&b, "Carrier(%s):\t%s -> %s\n", d.CarrierName, d.Departure, d.Arrival)
		}
	}
	if len(it.PriceOptions) > 0 {
		fmt.Fprintf(&b, "Price: %s", currency.FormatDisplay(it.PriceOptions[0]))
	}
	return b.String()
}
