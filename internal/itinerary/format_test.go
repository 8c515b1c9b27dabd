package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"faregrid/internal/skyscanner"
)

func dt(y, m, d, h, min int) skyscanner.DateTime {
	return skyscanner.DateTime{Year: y, Month: m, Day: d, Hour: h, Minute: min}
}

func directResults() skyscanner.Results {
	return skyscanner.Results{
		Itineraries: map[string]skyscanner.Itinerary{
			"it1": {
				LegIDs: []string{"leg1"},
				PricingOptions: []skyscanner.PricingOption{
					{Price: skyscanner.Price{Amount: "120000"}},
					{Price: skyscanner.Price{Amount: ""}},
					{Price: skyscanner.Price{Amount: "not-a-number"}},
				},
			},
		},
		Legs: map[string]skyscanner.Leg{
			"leg1": {
				DepartureDateTime:   dt(2023, 4, 1, 9, 30),
				ArrivalDateTime:     dt(2023, 4, 1, 12, 0),
				StopCount:           0,
				OperatingCarrierIDs: []string{"OP1"},
			},
		},
		Carriers: map[string]skyscanner.Carrier{
			"OP1": {Name: "Air X"},
		},
	}
}

func TestFormat_EmptyGraph(t *testing.T) {
	assert.Empty(t, Format(skyscanner.Results{}))
}

func TestFormat_OperatingCarrierFallback(t *testing.T) {
	got := Format(directResults())
	require.Len(t, got, 1)
	require.Len(t, got[0].Details, 1)
	assert.Equal(t, "Air X", got[0].Details[0].CarrierName)
}

func TestFormat_UnparseablePricesFiltered(t *testing.T) {
	got := Format(directResults())
	require.Len(t, got, 1)
	assert.Equal(t, []float64{120000}, got[0].PriceOptions)
}

func TestFormat_NoCarriersGetsPlaceholder(t *testing.T) {
	results := directResults()
	leg := results.Legs["leg1"]
	leg.OperatingCarrierIDs = nil
	results.Legs["leg1"] = leg

	got := Format(results)
	require.Len(t, got, 1)
	assert.Equal(t, "Unknown carrier name", got[0].Details[0].CarrierName)
}

func TestFormat_MarketingCarrierWins(t *testing.T) {
	results := directResults()
	leg := results.Legs["leg1"]
	leg.MarketingCarrierIDs = []string{"MK1"}
	results.Legs["leg1"] = leg
	results.Carriers["MK1"] = skyscanner.Carrier{Name: "Air Y"}

	got := Format(results)
	require.Len(t, got, 1)
	assert.Equal(t, "Air Y", got[0].Details[0].CarrierName)
}

func TestFormat_DanglingLegSkipsItinerary(t *testing.T) {
	results := directResults()
	results.Itineraries["it2"] = skyscanner.Itinerary{
		LegIDs:         []string{"missing"},
		PricingOptions: []skyscanner.PricingOption{{Price: skyscanner.Price{Amount: "1"}}},
	}

	got := Format(results)
	assert.Len(t, got, 1)
}

func TestFormat_DanglingCarrierSkipsItinerary(t *testing.T) {
	results := directResults()
	leg := results.Legs["leg1"]
	leg.OperatingCarrierIDs = []string{"ghost"}
	results.Legs["leg1"] = leg

	assert.Empty(t, Format(results))
}

func TestFormat_SegmentPlaceCodes(t *testing.T) {
	results := directResults()
	leg := results.Legs["leg1"]
	leg.StopCount = 2
	leg.SegmentIDs = []string{"seg1", "seg2", "ghost-seg"}
	results.Legs["leg1"] = leg
	results.Segments = map[string]skyscanner.Segment{
		"seg1": {DestinationPlaceID: "pl1"},
		"seg2": {DestinationPlaceID: "ghost-place"},
	}
	results.Places = map[string]skyscanner.Place{
		"pl1": {IATA: "NRT"},
	}

	got := Format(results)
	require.Len(t, got, 1)
	// resolved IATA, then raw place id, then raw segment id
	assert.Equal(t, []string{"...NRT", "...ghost-place", "...ghost-seg"},
		got[0].Details[0].SegmentPlaceCodes)
}

func TestFormat_Idempotent(t *testing.T) {
	results := directResults()
	assert.ElementsMatch(t, Format(results), Format(results))
}

func TestString_Direct(t *testing.T) {
	got := Format(directResults())
	require.Len(t, got, 1)
	want := "Carrier(Air X):\t2023-04-01 09:30:00 -> 2023-04-01 12:00:00\nPrice: 120"
	assert.Equal(t, want, got[0].String())
}

func TestString_WithStops(t *testing.T) {
	it := Itinerary{
		PriceOptions: []float64{99000},
		Details: []LegDetail{{
			Departure:         dt(2023, 4, 1, 9, 30),
			Arrival:           dt(2023, 4, 1, 18, 45),
			StopCount:         1,
			SegmentPlaceCodes: []string{"...HKG", "...TPE"},
			CarrierName:       "Air X",
		}},
	}
	want := "Carrier(Air X):\t2023-04-01 09:30:00 -> 2023-04-01 18:45:00\t(stop count: 1)\t(...HKG)\nPrice: 99"
	assert.Equal(t, want, it.String())
}
