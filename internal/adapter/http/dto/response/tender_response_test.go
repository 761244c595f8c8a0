package response

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"tender_finder/internal/domain/entities"
)

func TestFromTender(t *testing.T) {
	deadline := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	props := 30
	lat := 52.0705

	res := FromTender(entities.Tender{
		ID:                 3,
		Municipality:       "Den Haag",
		TenderDeadline:     &deadline,
		NumberOfProperties: &props,
		TenderLatitude:     &lat,
		SocialRatio:        0.4,
	})
	if res.ID != 3 || res.Municipality != "Den Haag" || res.SocialRatio != 0.4 {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.TenderDeadline == nil || *res.TenderDeadline != "2024-03-15" {
		t.Fatalf("unexpected deadline: %v", res.TenderDeadline)
	}
	if res.PublicationDate != nil {
		t.Fatalf("expected nil publication date")
	}

	b, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var body map[string]any
	_ = json.Unmarshal(b, &body)
	if body["tender_deadline"] != "2024-03-15" || body["number_of_properties"] != float64(30) {
		t.Fatalf("unexpected json: %s", b)
	}
	for _, key := range []string{"publication_date", "tender_longitude", "winner", "center_municipality_latitude"} {
		if _, ok := body[key]; ok {
			t.Fatalf("expected %s to be omitted: %s", key, b)
		}
	}
	if _, ok := body["expensive_ratio"]; !ok {
		t.Fatalf("expected ratios to always be present: %s", b)
	}
}

func TestFromRankedTender(t *testing.T) {
	near := FromRankedTender(entities.RankedTender{Tender: entities.Tender{ID: 1}, DistanceKm: 12.5, Relevancy: 40})
	if near.Distance == nil || *near.Distance != 12.5 || near.Relevancy != 40 || near.ID != 1 {
		t.Fatalf("unexpected response: %+v", near)
	}

	unknown := FromRankedTender(entities.RankedTender{Tender: entities.Tender{ID: 2}, DistanceKm: math.Inf(1), Relevancy: 17})
	if unknown.Distance != nil {
		t.Fatalf("expected nil distance for +Inf")
	}

	b, err := json.Marshal(unknown)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var body map[string]any
	_ = json.Unmarshal(b, &body)
	if _, ok := body["distance"]; ok {
		t.Fatalf("expected distance to be omitted: %s", b)
	}
	if body["id"] != float64(2) || body["relevancy"] != float64(17) {
		t.Fatalf("expected flattened tender fields: %s", b)
	}

	list := FromRankedTenders(nil)
	if list == nil || len(list) != 0 {
		t.Fatalf("expected empty non-nil list")
	}
}

func TestFromTenderStats(t *testing.T) {
	earliest := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	res := FromTenderStats(entities.TenderStats{
		Total:       2,
		ByStatus:    map[string]int{"Open": 2},
		MinDeadline: &earliest,
	})
	if res.Total != 2 || res.ByStatus["Open"] != 2 {
		t.Fatalf("unexpected stats: %+v", res)
	}
	if res.MinDeadline == nil || *res.MinDeadline != "2024-01-02" || res.MaxDeadline != nil {
		t.Fatalf("unexpected deadlines: %+v", res)
	}
}
