package entities

import "time"

// DateLayout is the calendar-date format used for tender dates on the wire and in DynamoDB.
const DateLayout = "2006-01-02"

// Tender is a public procurement record.
//
// Records are written by an external ingestion process; this service only reads them.
// Every field except ID is optional and no cross-field rule is enforced
// (the three ratios are not required to sum to 1).
type Tender struct {
	ID                 int64
	Province           string
	Municipality       string
	Location           string
	Winner             string
	Status             string
	Details            string
	TenderDeadline     *time.Time
	PublicationDate    *time.Time
	ExpensiveRatio     float64
	MidrangeRatio      float64
	SocialRatio        float64
	NumberOfProperties *int

	TenderLatitude              *float64
	TenderLongitude             *float64
	CenterMunicipalityLatitude  *float64
	CenterMunicipalityLongitude *float64
}

// Coordinate is a latitude/longitude pair in decimal degrees.
type Coordinate struct {
	Lat float64
	Lng float64
}

// RankedTender is a tender enriched with its distance to a reference point.
//
// DistanceKm is +Inf when either side is missing coordinates.
type RankedTender struct {
	Tender     Tender
	DistanceKm float64
	Relevancy  int
}

type TenderStats struct {
	Total          int
	ByStatus       map[string]int
	ByMunicipality map[string]int
	ByProvince     map[string]int
	MinDeadline    *time.Time
	MaxDeadline    *time.Time
}
