package usecase

import (
	"cmp"
	"context"
	"errors"
	"log"
	"math"
	"slices"
	"strings"
	"time"

	"tender_finder/internal/domain/entities"
	"tender_finder/internal/domain/geo"
	"tender_finder/internal/usecase/interfaces"
)

var (
	ErrTenderNotFound  = errors.New("tender not found")
	ErrInvalidTenderID = errors.New("invalid tender id")
)

// DefaultReferencePoint is The Hague.
var DefaultReferencePoint = entities.Coordinate{Lat: 52.0705, Lng: 4.3007}

const (
	relevancyRadiusKm   = 50.0
	relevancyHorizon    = 90 * 24 * time.Hour
	relevancyPropsScale = 100.0
	unknownLabel        = "Unknown"
)

type SortOrder string

const (
	SortByDistance  SortOrder = "distance"
	SortByRelevancy SortOrder = "relevancy"
)

// TenderQuery holds the optional filters of a proximity search.
// Nil/empty fields do not filter.
type TenderQuery struct {
	ReferenceLat  *float64
	ReferenceLng  *float64
	RadiusKm      *float64
	Status        string
	MinProperties *int
	Search        string
	SortBy        SortOrder
}

// ITenderUseCase exposes the read-only tender operations.
//
//   - FindTendersNear => every tender ranked by distance to a reference point
//   - Search          => FindTendersNear plus the list filters used by the map UI
//   - GetByID / Stats => detail and dashboard endpoints
type ITenderUseCase interface {
	FindTendersNear(ctx context.Context, refLat, refLng *float64) ([]entities.RankedTender, error)
	Search(ctx context.Context, q TenderQuery) (entities.Coordinate, []entities.RankedTender, error)
	GetByID(ctx context.Context, id int64) (entities.Tender, error)
	Stats(ctx context.Context) (entities.TenderStats, error)
}

type TenderUseCaseConfig struct {
	DefaultReference entities.Coordinate
	Now              func() time.Time
}

func DefaultTenderUseCaseConfig() TenderUseCaseConfig {
	return TenderUseCaseConfig{DefaultReference: DefaultReferencePoint, Now: time.Now}
}

type TenderUseCase struct {
	repo             interfaces.ITenderRepository
	defaultReference entities.Coordinate
	now              func() time.Time
}

var _ ITenderUseCase = (*TenderUseCase)(nil)

func NewTenderUseCase(repo interfaces.ITenderRepository, cfg TenderUseCaseConfig) *TenderUseCase {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &TenderUseCase{repo: repo, defaultReference: cfg.DefaultReference, now: cfg.Now}
}

func (u *TenderUseCase) FindTendersNear(ctx context.Context, refLat, refLng *float64) ([]entities.RankedTender, error) {
	_, ranked, err := u.Search(ctx, TenderQuery{ReferenceLat: refLat, ReferenceLng: refLng})
	return ranked, err
}

func (u *TenderUseCase) Search(ctx context.Context, q TenderQuery) (entities.Coordinate, []entities.RankedTender, error) {
	ref := u.resolveReference(q.ReferenceLat, q.ReferenceLng)

	tenders, err := u.repo.ListAll(ctx)
	if err != nil {
		log.Printf("[tender][usecase] list failed err=%v", err)
		return ref, nil, err
	}

	now := u.now()
	status := strings.TrimSpace(q.Status)
	search := strings.ToLower(strings.TrimSpace(q.Search))

	ranked := make([]entities.RankedTender, 0, len(tenders))
	for _, t := range tenders {
		d := geo.DistanceKm(&ref.Lat, &ref.Lng, t.TenderLatitude, t.TenderLongitude)
		if q.RadiusKm != nil && d > *q.RadiusKm {
			continue
		}
		if status != "" && !strings.EqualFold(strings.TrimSpace(t.Status), status) {
			continue
		}
		if q.MinProperties != nil && (t.NumberOfProperties == nil || *t.NumberOfProperties < *q.MinProperties) {
			continue
		}
		if search != "" && !matchesSearch(t, search) {
			continue
		}
		ranked = append(ranked, entities.RankedTender{
			Tender:     t,
			DistanceKm: d,
			Relevancy:  Relevancy(d, t.TenderDeadline, t.NumberOfProperties, now),
		})
	}

	if q.SortBy == SortByRelevancy {
		slices.SortStableFunc(ranked, compareByRelevancy)
	} else {
		slices.SortStableFunc(ranked, compareByDistance)
	}

	log.Printf("[tender][usecase] search ref=(%.4f,%.4f) total=%d matched=%d sort=%s", ref.Lat, ref.Lng, len(tenders), len(ranked), sortLabel(q.SortBy))
	return ref, ranked, nil
}

func (u *TenderUseCase) GetByID(ctx context.Context, id int64) (entities.Tender, error) {
	if id <= 0 {
		return entities.Tender{}, ErrInvalidTenderID
	}

	t, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Tender{}, err
	}
	if t.ID == 0 {
		return entities.Tender{}, ErrTenderNotFound
	}
	return t, nil
}

func (u *TenderUseCase) Stats(ctx context.Context) (entities.TenderStats, error) {
	tenders, err := u.repo.ListAll(ctx)
	if err != nil {
		return entities.TenderStats{}, err
	}

	stats := entities.TenderStats{
		Total:          len(tenders),
		ByStatus:       map[string]int{},
		ByMunicipality: map[string]int{},
		ByProvince:     map[string]int{},
	}
	for _, t := range tenders {
		stats.ByStatus[labelOrUnknown(t.Status)]++
		stats.ByMunicipality[labelOrUnknown(t.Municipality)]++
		stats.ByProvince[labelOrUnknown(t.Province)]++

		if t.TenderDeadline == nil {
			continue
		}
		d := *t.TenderDeadline
		if stats.MinDeadline == nil || d.Before(*stats.MinDeadline) {
			stats.MinDeadline = &d
		}
		if stats.MaxDeadline == nil || d.After(*stats.MaxDeadline) {
			stats.MaxDeadline = &d
		}
	}
	return stats, nil
}

// resolveReference falls back to the default point unless both coordinates are given.
func (u *TenderUseCase) resolveReference(lat, lng *float64) entities.Coordinate {
	if lat == nil || lng == nil {
		return u.defaultReference
	}
	return entities.Coordinate{Lat: *lat, Lng: *lng}
}

// Relevancy scores a tender from 0 to 100 as the mean of proximity, deadline
// urgency and property volume.
func Relevancy(distanceKm float64, deadline *time.Time, properties *int, now time.Time) int {
	proximity := 0.0
	if !math.IsInf(distanceKm, 0) && !math.IsNaN(distanceKm) {
		proximity = 1 - math.Min(1, distanceKm/relevancyRadiusKm)
	}

	urgency := 0.5
	if deadline != nil {
		left := deadline.Sub(now)
		urgency = clamp01(1 - float64(left)/float64(relevancyHorizon))
	}

	volume := 0.0
	if properties != nil {
		volume = clamp01(float64(*properties) / relevancyPropsScale)
	}

	return int(math.Round((proximity + urgency + volume) / 3 * 100))
}

func compareByDistance(a, b entities.RankedTender) int {
	if c := cmp.Compare(a.DistanceKm, b.DistanceKm); c != 0 {
		return c
	}
	return cmp.Compare(a.Tender.ID, b.Tender.ID)
}

func compareByRelevancy(a, b entities.RankedTender) int {
	if c := cmp.Compare(b.Relevancy, a.Relevancy); c != 0 {
		return c
	}
	return compareByDistance(a, b)
}

func matchesSearch(t entities.Tender, needle string) bool {
	for _, field := range []string{t.Municipality, t.Location, t.Province, t.Status, t.Details, t.Winner} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func labelOrUnknown(v string) string {
	if v = strings.TrimSpace(v); v == "" {
		return unknownLabel
	}
	return v
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func sortLabel(s SortOrder) SortOrder {
	if s == "" {
		return SortByDistance
	}
	return s
}
