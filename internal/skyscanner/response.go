package skyscanner

import "fmt"

type ResultStatus string

const (
	ResultStatusUnspecified ResultStatus = "RESULT_STATUS_UNSPECIFIED"
	ResultStatusIncomplete  ResultStatus = "RESULT_STATUS_INCOMPLETE"
	ResultStatusComplete    ResultStatus = "RESULT_STATUS_COMPLETE"
	ResultStatusFailed      ResultStatus = "RESULT_STATUS_FAILED"
)

type ResultAction string

const (
	ResultActionUnspecified ResultAction = "RESULT_ACTION_UNSPECIFIED"
	ResultActionReplaced    ResultAction = "RESULT_ACTION_REPLACED"
	ResultActionNotModified ResultAction = "RESULT_ACTION_NOT_MODIFIED"
	ResultActionOmitted     ResultAction = "RESULT_ACTION_OMITTED"
)

type PlaceType string

const (
	PlaceTypeUnspecified PlaceType = "PLACE_TYPE_UNSPECIFIED"
	PlaceTypeAirport     PlaceType = "PLACE_TYPE_AIRPORT"
	PlaceTypeCity        PlaceType = "PLACE_TYPE_CITY"
	PlaceTypeCountry     PlaceType = "PLACE_TYPE_COUNTRY"
	PlaceTypeContinent   PlaceType = "PLACE_TYPE_CONTINENT"
)

type AgentType string

const (
	AgentTypeUnspecified AgentType = "AGENT_TYPE_UNSPECIFIED"
	AgentTypeTravelAgent AgentType = "AGENT_TYPE_TRAVEL_AGENT"
	AgentTypeAirline     AgentType = "AGENT_TYPE_AIRLINE"
)

// SearchResponse is one point-in-time snapshot of a search session, returned
// by both the create and the poll endpoint.
type SearchResponse struct {
	SessionToken string       `json:"sessionToken"`
	Status       ResultStatus `json:"status"`
	Action       ResultAction `json:"action"`
	Content      Content      `json:"content"`
}

type Content struct {
	Results Results `json:"results"`
}

// Results is the provider's denormalized graph: itineraries reference legs,
// legs reference segments and places, and so on, all by opaque string IDs.
type Results struct {
	Itineraries map[string]Itinerary `json:"itineraries"`
	Legs        map[string]Leg       `json:"legs"`
	Segments    map[string]Segment   `json:"segments"`
	Places      map[string]Place     `json:"places"`
	Carriers    map[string]Carrier   `json:"carriers"`
	Agents      map[string]Agent     `json:"agents"`
	Alliances   map[string]Alliance  `json:"alliances"`
}

type Itinerary struct {
	PricingOptions     []PricingOption     `json:"pricingOptions"`
	LegIDs             []string            `json:"legIds"`
	SustainabilityData *SustainabilityData `json:"sustainabilityData,omitempty"`
}

type SustainabilityData struct {
	IsEcoContender    bool    `json:"isEcoContender"`
	EcoContenderDelta float64 `json:"ecoContenderDelta"`
}

type PricingOption struct {
	ID           string   `json:"id"`
	Price        Price    `json:"price"`
	AgentIDs     []string `json:"agentIds"`
	TransferType string   `json:"transferType"`
}

// Price carries the amount as a decimal string in milli-units of the
// requested currency.
type Price struct {
	Amount       string `json:"amount"`
	Unit         string `json:"unit"`
	UpdateStatus string `json:"updateStatus"`
}

type Leg struct {
	OriginPlaceID       string   `json:"originPlaceId"`
	DestinationPlaceID  string   `json:"destinationPlaceId"`
	DepartureDateTime   DateTime `json:"departureDateTime"`
	ArrivalDateTime     DateTime `json:"arrivalDateTime"`
	DurationInMinutes   int      `json:"durationInMinutes"`
	StopCount           int      `json:"stopCount"`
	MarketingCarrierIDs []string `json:"marketingCarrierIds"`
	OperatingCarrierIDs []string `json:"operatingCarrierIds"`
	SegmentIDs          []string `json:"segmentIds"`
}

type Segment struct {
	OriginPlaceID         string   `json:"originPlaceId"`
	DestinationPlaceID    string   `json:"destinationPlaceId"`
	DepartureDateTime     DateTime `json:"departureDateTime"`
	ArrivalDateTime       DateTime `json:"arrivalDateTime"`
	DurationInMinutes     int      `json:"durationInMinutes"`
	MarketingFlightNumber string   `json:"marketingFlightNumber"`
	MarketingCarrierID    string   `json:"marketingCarrierId"`
	OperatingCarrierID    string   `json:"operatingCarrierId"`
}

type Place struct {
	EntityID    string       `json:"entityId"`
	ParentID    string       `json:"parentId"`
	Name        string       `json:"name"`
	IATA        string       `json:"iata"`
	Type        PlaceType    `json:"type"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Carrier struct {
	Name       string `json:"name"`
	AllianceID string `json:"allianceId"`
	ImageURL   string `json:"imageUrl"`
	IATA       string `json:"iata"`
}

type Agent struct {
	Name                 string             `json:"name"`
	Type                 AgentType          `json:"type"`
	ImageURL             string             `json:"imageUrl"`
	FeedbackCount        int                `json:"feedbackCount"`
	Rating               float64            `json:"rating"`
	RatingBreakdown      map[string]float64 `json:"ratingBreakdown,omitempty"`
	IsOptimisedForMobile bool               `json:"isOptimisedForMobile"`
}

type Alliance struct {
	Name string `json:"name"`
}

// DateTime is the provider's exploded local date-time. It carries no zone
// information; values are local to the place they describe.
type DateTime struct {
	Year   int `json:"year"`
	Month  int `json:"month"`
	Day    int `json:"day"`
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
	Second int `json:"second"`
}

func (dt DateTime) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d",
		dt.Year, dt.Month, dt.Day, dt.Hour, dt.Minute, dt.Second)
}
