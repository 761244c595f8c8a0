package response

import (
	"math"
	"time"

	"tender_finder/internal/domain/entities"
)

// TenderResponse is the flat JSON view of a tender. Null fields are omitted.
type TenderResponse struct {
	ID                          int64    `json:"id"`
	Province                    string   `json:"province,omitempty"`
	Location                    string   `json:"location,omitempty"`
	TenderDeadline              *string  `json:"tender_deadline,omitempty"`
	Status                      string   `json:"status,omitempty"`
	Details                     string   `json:"details,omitempty"`
	ExpensiveRatio              float64  `json:"expensive_ratio"`
	MidrangeRatio               float64  `json:"midrange_ratio"`
	SocialRatio                 float64  `json:"social_ratio"`
	Municipality                string   `json:"municipality,omitempty"`
	Winner                      string   `json:"winner,omitempty"`
	NumberOfProperties          *int     `json:"number_of_properties,omitempty"`
	PublicationDate             *string  `json:"publication_date,omitempty"`
	TenderLongitude             *float64 `json:"tender_longitude,omitempty"`
	TenderLatitude              *float64 `json:"tender_latitude,omitempty"`
	CenterMunicipalityLongitude *float64 `json:"center_municipality_longitude,omitempty"`
	CenterMunicipalityLatitude  *float64 `json:"center_municipality_latitude,omitempty"`
}

// RankedTenderResponse adds the computed distance (km) and relevancy.
// Distance is omitted when it is unknown.
type RankedTenderResponse struct {
	TenderResponse
	Distance  *float64 `json:"distance,omitempty"`
	Relevancy int      `json:"relevancy"`
}

type TenderStatsResponse struct {
	Total          int            `json:"total"`
	ByStatus       map[string]int `json:"by_status"`
	ByMunicipality map[string]int `json:"by_municipality"`
	ByProvince     map[string]int `json:"by_province"`
	MinDeadline    *string        `json:"min_deadline"`
	MaxDeadline    *string        `json:"max_deadline"`
}

func FromTender(t entities.Tender) TenderResponse {
	return TenderResponse{
		ID:                          t.ID,
		Province:                    t.Province,
		Location:                    t.Location,
		TenderDeadline:              formatDate(t.TenderDeadline),
		Status:                      t.Status,
		Details:                     t.Details,
		ExpensiveRatio:              t.ExpensiveRatio,
		MidrangeRatio:               t.MidrangeRatio,
		SocialRatio:                 t.SocialRatio,
		Municipality:                t.Municipality,
		Winner:                      t.Winner,
		NumberOfProperties:          t.NumberOfProperties,
		PublicationDate:             formatDate(t.PublicationDate),
		TenderLongitude:             t.TenderLongitude,
		TenderLatitude:              t.TenderLatitude,
		CenterMunicipalityLongitude: t.CenterMunicipalityLongitude,
		CenterMunicipalityLatitude:  t.CenterMunicipalityLatitude,
	}
}

func FromRankedTender(r entities.RankedTender) RankedTenderResponse {
	res := RankedTenderResponse{
		TenderResponse: FromTender(r.Tender),
		Relevancy:      r.Relevancy,
	}
	if !math.IsInf(r.DistanceKm, 0) && !math.IsNaN(r.DistanceKm) {
		d := r.DistanceKm
		res.Distance = &d
	}
	return res
}

func FromRankedTenders(items []entities.RankedTender) []RankedTenderResponse {
	out := make([]RankedTenderResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromRankedTender(it))
	}
	return out
}

func FromTenderStats(s entities.TenderStats) TenderStatsResponse {
	return TenderStatsResponse{
		Total:          s.Total,
		ByStatus:       s.ByStatus,
		ByMunicipality: s.ByMunicipality,
		ByProvince:     s.ByProvince,
		MinDeadline:    formatDate(s.MinDeadline),
		MaxDeadline:    formatDate(s.MaxDeadline),
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(entities.DateLayout)
	return &s
}
