package skyscanner

import "time"

type CabinClass string

const (
	CabinClassUnspecified    CabinClass = "CABIN_CLASS_UNSPECIFIED"
	CabinClassEconomy        CabinClass = "CABIN_CLASS_ECONOMY"
	CabinClassPremiumEconomy CabinClass = "CABIN_CLASS_PREMIUM_ECONOMY"
	CabinClassBusiness       CabinClass = "CABIN_CLASS_BUSINESS"
	CabinClassFirst          CabinClass = "CABIN_CLASS_FIRST"
)

// Query describes one live search. Build it once with NewQuery, then Clone
// per date pair before appending legs.
type Query struct {
	Market                    string     `json:"market"`
	Locale                    string     `json:"locale"`
	Currency                  string     `json:"currency"`
	QueryLegs                 []QueryLeg `json:"queryLegs"`
	CabinClass                CabinClass `json:"cabinClass"`
	Adults                    int        `json:"adults"`
	ChildrenAges              []int      `json:"childrenAges"`
	IncludeCarriersIDs        []string   `json:"includeCarriersIds"`
	ExcludeCarriersIDs        []string   `json:"excludeCarriersIds"`
	IncludeAgentsIDs          []string   `json:"includeAgentsIds"`
	ExcludeAgentsIDs          []string   `json:"excludeAgentsIds"`
	IncludeSustainabilityData bool       `json:"includeSustainabilityData"`
	NearbyAirports            bool       `json:"nearbyAirports"`
}

// QueryPlace identifies an endpoint of a leg by IATA code or by provider
// entity ID. Exactly one of the two must be set.
type QueryPlace struct {
	IATA     string `json:"iata,omitempty"`
	EntityID string `json:"entityId,omitempty"`
}

type QueryLeg struct {
	OriginPlaceID      QueryPlace `json:"originPlaceId"`
	DestinationPlaceID QueryPlace `json:"destinationPlaceId"`
	Date               Date       `json:"date"`
}

type Date struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

func NewQuery(market, locale, currency string) Query {
	return Query{
		Market:             market,
		Locale:             locale,
		Currency:           currency,
		QueryLegs:          []QueryLeg{},
		CabinClass:         CabinClassUnspecified,
		Adults:             1,
		ChildrenAges:       []int{},
		IncludeCarriersIDs: []string{},
		ExcludeCarriersIDs: []string{},
		IncludeAgentsIDs:   []string{},
		ExcludeAgentsIDs:   []string{},
	}
}

// Clone returns a deep copy so per-date queries never share leg slices.
func (q Query) Clone() Query {
	out := q
	out.QueryLegs = append([]QueryLeg(nil), q.QueryLegs...)
	out.ChildrenAges = append([]int(nil), q.ChildrenAges...)
	out.IncludeCarriersIDs = append([]string(nil), q.IncludeCarriersIDs...)
	out.ExcludeCarriersIDs = append([]string(nil), q.ExcludeCarriersIDs...)
	out.IncludeAgentsIDs = append([]string(nil), q.IncludeAgentsIDs...)
	out.ExcludeAgentsIDs = append([]string(nil), q.ExcludeAgentsIDs...)
	return out
}

func (q *Query) AddLeg(leg QueryLeg) {
	q.QueryLegs = append(q.QueryLegs, leg)
}

func IATAPlace(code string) QueryPlace {
	return QueryPlace{IATA: code}
}

func EntityPlace(id string) QueryPlace {
	return QueryPlace{EntityID: id}
}

func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}
