package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"tender_finder/internal/adapter/http/handlers/mocks"
	"tender_finder/internal/adapter/http/middleware"
	"tender_finder/internal/domain/entities"
	"tender_finder/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

func sampleRanked() []entities.RankedTender {
	props := 20
	return []entities.RankedTender{
		{Tender: entities.Tender{ID: 3, Municipality: "Den Haag", NumberOfProperties: &props}, DistanceKm: 0, Relevancy: 60},
		{Tender: entities.Tender{ID: 2, Municipality: "Unknown"}, DistanceKm: math.Inf(1), Relevancy: 17},
	}
}

func TestTenderHandler_ListTenders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("passes query to usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITenderUseCase(ctrl)
		h := NewTenderHandler(uc)

		r := gin.New()
		r.GET("/api/tenders", h.ListTenders)

		uc.EXPECT().Search(gomock.Any(), gomock.AssignableToTypeOf(usecase.TenderQuery{})).DoAndReturn(
			func(_ context.Context, q usecase.TenderQuery) (entities.Coordinate, []entities.RankedTender, error) {
				if q.ReferenceLat == nil || *q.ReferenceLat != 52.37 || q.ReferenceLng == nil || *q.ReferenceLng != 4.9 {
					t.Fatalf("unexpected reference: %+v", q)
				}
				if q.RadiusKm == nil || *q.RadiusKm != 50 || q.Status != "Open" || q.Search != "haag" {
					t.Fatalf("unexpected filters: %+v", q)
				}
				if q.MinProperties == nil || *q.MinProperties != 5 || q.SortBy != usecase.SortByRelevancy {
					t.Fatalf("unexpected filters: %+v", q)
				}
				return entities.Coordinate{Lat: 52.37, Lng: 4.9}, sampleRanked(), nil
			},
		)

		req := httptest.NewRequest(http.MethodGet, "/api/tenders?user_lat=52.37&user_lng=4.9&radius=50&status=Open&min_properties=5&search=haag&sort=relevancy", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if len(body) != 2 {
			t.Fatalf("expected 2 items, got %s", w.Body.String())
		}
		if body[0]["id"] != float64(3) || body[0]["distance"] != float64(0) || body[0]["relevancy"] != float64(60) {
			t.Fatalf("unexpected first item: %v", body[0])
		}
		if _, ok := body[1]["distance"]; ok {
			t.Fatalf("expected infinite distance to be omitted: %v", body[1])
		}
	})

	t.Run("no parameters uses defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITenderUseCase(ctrl)
		h := NewTenderHandler(uc)

		r := gin.New()
		r.GET("/api/tenders", h.ListTenders)

		uc.EXPECT().Search(gomock.Any(), usecase.TenderQuery{SortBy: usecase.SortByDistance}).
			Return(usecase.DefaultReferencePoint, []entities.RankedTender{}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/tenders?user_lat=oops", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != "[]" {
			t.Fatalf("expected empty array, got %s", w.Body.String())
		}
	})

	t.Run("repeated parameters bind the first value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITenderUseCase(ctrl)
		h := NewTenderHandler(uc)

		r := gin.New()
		r.GET("/api/tenders", h.ListTenders)

		uc.EXPECT().Search(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q usecase.TenderQuery) (entities.Coordinate, []entities.RankedTender, error) {
				if q.Status != "Open" || q.RadiusKm == nil || *q.RadiusKm != 10 {
					t.Fatalf("unexpected query: %+v", q)
				}
				return usecase.DefaultReferencePoint, nil, nil
			},
		)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/tenders?status=Open&status=Closed&radius=10&radius=x", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITenderUseCase(ctrl)
		h := NewTenderHandler(uc)

		r := gin.New()
		r.GET("/api/tenders", h.ListTenders)

		uc.EXPECT().Search(gomock.Any(), gomock.Any()).Return(entities.Coordinate{}, nil, errors.New("connection refused"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/tenders", nil))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "INTERNAL_ERROR" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if bytes.Contains(w.Body.Bytes(), []byte("connection refused")) {
			t.Fatalf("internal error leaked: %s", w.Body.String())
		}
	})
}

func TestTenderHandler_GetTender(t *testing.T) {
	gin.SetMode(gin.TestMode)

	build := func(h *TenderHandler) *gin.Engine {
		r := gin.New()
		r.GET("/api/tenders/:id", h.GetTender)
		return r
	}

	t.Run("invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITenderUseCase(ctrl)
		r := build(NewTenderHandler(uc))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/tenders/abc", nil))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITenderUseCase(ctrl)
		r := build(NewTenderHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), int64(99)).Return(entities.Tender{}, usecase.ErrTenderNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/tenders/99", nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITenderUseCase(ctrl)
		r := build(NewTenderHandler(uc))

		deadline := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
		uc.EXPECT().GetByID(gomock.Any(), int64(5)).Return(entities.Tender{ID: 5, Winner: "Acme", TenderDeadline: &deadline}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/tenders/5", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != float64(5) || body["winner"] != "Acme" || body["tender_deadline"] != "2024-03-15" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestTenderHandler_GetStats(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITenderUseCase(ctrl)
		h := NewTenderHandler(uc)
		r := gin.New()
		r.GET("/api/stats", h.GetStats)

		uc.EXPECT().Stats(gomock.Any()).Return(entities.TenderStats{
			Total:          2,
			ByStatus:       map[string]int{"Open": 2},
			ByMunicipality: map[string]int{"Delft": 2},
			ByProvince:     map[string]int{"Unknown": 2},
		}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/stats", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["total"] != float64(2) || body["min_deadline"] != nil {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITenderUseCase(ctrl)
		h := NewTenderHandler(uc)
		r := gin.New()
		r.GET("/api/stats", h.GetStats)

		uc.EXPECT().Stats(gomock.Any()).Return(entities.TenderStats{}, errors.New("db"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/stats", nil))
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestTenderHandler_ExportTenders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITenderUseCase(ctrl)
		h := NewTenderHandler(uc)
		r := gin.New()
		r.GET("/api/exports/tenders.xlsx", h.ExportTenders)

		uc.EXPECT().Search(gomock.Any(), gomock.Any()).Return(usecase.DefaultReferencePoint, sampleRanked(), nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/exports/tenders.xlsx", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != xlsxContentType {
			t.Fatalf("unexpected content type: %s", ct)
		}

		f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
		if err != nil {
			t.Fatalf("invalid workbook: %v", err)
		}
		defer f.Close()
		rows, err := f.GetRows("Tenders")
		if err != nil {
			t.Fatalf("failed to read rows: %v", err)
		}
		if len(rows) != 3 {
			t.Fatalf("expected header + 2 rows, got %d", len(rows))
		}
	})

	t.Run("error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITenderUseCase(ctrl)
		h := NewTenderHandler(uc)
		r := gin.New()
		r.Use(middleware.RequestID())
		r.GET("/api/exports/tenders.xlsx", h.ExportTenders)

		uc.EXPECT().Search(gomock.Any(), gomock.Any()).Return(entities.Coordinate{}, nil, errors.New("db"))

		var logs bytes.Buffer
		log.SetOutput(&logs)
		defer log.SetOutput(os.Stderr)

		req := httptest.NewRequest(http.MethodGet, "/api/exports/tenders.xlsx", nil)
		req.Header.Set(middleware.RequestIDHeader, "export-req-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if !strings.Contains(logs.String(), "export failed request_id=export-req-1") {
			t.Fatalf("expected export failure to be logged, got %q", logs.String())
		}
	})
}

func TestMapTenderError(t *testing.T) {
	if got := mapTenderError(usecase.ErrInvalidTenderID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapTenderError(usecase.ErrTenderNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapTenderError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
