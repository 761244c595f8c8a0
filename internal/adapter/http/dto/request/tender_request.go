package request

import (
	"errors"
	"strconv"
	"strings"

	"tender_finder/internal/usecase"
)

var (
	ErrInvalidTenderID = errors.New("invalid tender id")
)

// TenderSearchRequest is the query string accepted by the tender list and export routes.
//
// Numeric parameters are kept as raw strings: a missing or unparsable value
// is treated as absent instead of rejecting the request.
type TenderSearchRequest struct {
	UserLat       string `form:"user_lat"`
	UserLng       string `form:"user_lng"`
	Radius        string `form:"radius"`
	Status        string `form:"status"`
	MinProperties string `form:"min_properties"`
	Search        string `form:"search"`
	Sort          string `form:"sort"`
}

func (r TenderSearchRequest) ResolveReference() (lat, lng *float64) {
	return parseFloat(r.UserLat), parseFloat(r.UserLng)
}

func (r TenderSearchRequest) ResolveRadius() *float64 {
	return parseFloat(r.Radius)
}

func (r TenderSearchRequest) ResolveMinProperties() *int {
	v := strings.TrimSpace(r.MinProperties)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &n
}

func (r TenderSearchRequest) ResolveSort() usecase.SortOrder {
	if strings.EqualFold(strings.TrimSpace(r.Sort), string(usecase.SortByRelevancy)) {
		return usecase.SortByRelevancy
	}
	return usecase.SortByDistance
}

func (r TenderSearchRequest) ToQuery() usecase.TenderQuery {
	lat, lng := r.ResolveReference()
	return usecase.TenderQuery{
		ReferenceLat:  lat,
		ReferenceLng:  lng,
		RadiusKm:      r.ResolveRadius(),
		Status:        strings.TrimSpace(r.Status),
		MinProperties: r.ResolveMinProperties(),
		Search:        strings.TrimSpace(r.Search),
		SortBy:        r.ResolveSort(),
	}
}

// ParseTenderID parses the :id path parameter.
func ParseTenderID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidTenderID
	}
	return id, nil
}

func parseFloat(raw string) *float64 {
	v := strings.TrimSpace(raw)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}
