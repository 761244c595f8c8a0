package handlers

import (
	"bytes"
	"errors"
	"log"
	"net/http"

	request "tender_finder/internal/adapter/http/dto/request"
	response "tender_finder/internal/adapter/http/dto/response"
	"tender_finder/internal/adapter/http/middleware"
	"tender_finder/internal/infrastructure/spreadsheet"
	"tender_finder/internal/usecase"
	"tender_finder/pkg"

	"github.com/gin-gonic/gin"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	exportFileName  = "tenders.xlsx"
)

var (
	errInvalidTenderID = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid tender id", http.StatusBadRequest)
)

// TenderHandler handles the read-only tender endpoints.
type TenderHandler struct {
	usecase usecase.ITenderUseCase
}

func NewTenderHandler(uc usecase.ITenderUseCase) *TenderHandler {
	return &TenderHandler{usecase: uc}
}

// ListTenders godoc
// @Summary      List tenders ranked by proximity
// @Description  Every tender with its distance (km) to the user location, nearest first. Without user_lat/user_lng the default reference point is used.
// @Tags         tenders
// @Produce      json
// @Param        user_lat        query  number  false  "Reference latitude"
// @Param        user_lng        query  number  false  "Reference longitude"
// @Param        radius          query  number  false  "Maximum distance in km"
// @Param        status          query  string  false  "Exact status (case-insensitive)"
// @Param        min_properties  query  int     false  "Minimum number of properties"
// @Param        search          query  string  false  "Free-text search"
// @Param        sort            query  string  false  "distance (default) or relevancy"
// @Success      200  {array}   response.RankedTenderResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /tenders [get]
func (h *TenderHandler) ListTenders(c *gin.Context) {
	var req request.TenderSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		appErr := pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	ref, ranked, err := h.usecase.Search(c.Request.Context(), req.ToQuery())
	if err != nil {
		log.Printf("[tender][handler] list failed request_id=%s err=%v", middleware.GetRequestID(c), err)
		appErr := mapTenderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[tender][handler] list success request_id=%s ref=(%.4f,%.4f) count=%d", middleware.GetRequestID(c), ref.Lat, ref.Lng, len(ranked))

	c.JSON(http.StatusOK, response.FromRankedTenders(ranked))
}

// GetTender godoc
// @Summary  Get a tender by id
// @Tags     tenders
// @Produce  json
// @Param    id   path      int  true  "Tender id"
// @Success  200  {object}  response.TenderResponse
// @Failure  400  {object}  pkg.HTTPError
// @Failure  404  {object}  pkg.HTTPError
// @Failure  500  {object}  pkg.HTTPError
// @Router   /tenders/{id} [get]
func (h *TenderHandler) GetTender(c *gin.Context) {
	id, err := request.ParseTenderID(c.Param("id"))
	if err != nil {
		c.JSON(errInvalidTenderID.HTTPStatus, errInvalidTenderID.ToHTTPError())
		return
	}

	tender, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapTenderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTender(tender))
}

// GetStats godoc
// @Summary  Tender statistics
// @Tags     tenders
// @Produce  json
// @Success  200  {object}  response.TenderStatsResponse
// @Failure  500  {object}  pkg.HTTPError
// @Router   /stats [get]
func (h *TenderHandler) GetStats(c *gin.Context) {
	stats, err := h.usecase.Stats(c.Request.Context())
	if err != nil {
		log.Printf("[tender][handler] stats failed request_id=%s err=%v", middleware.GetRequestID(c), err)
		appErr := mapTenderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTenderStats(stats))
}

// ExportTenders godoc
// @Summary  Export ranked tenders as XLSX
// @Tags     tenders
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param    user_lat        query  number  false  "Reference latitude"
// @Param    user_lng        query  number  false  "Reference longitude"
// @Param    radius          query  number  false  "Maximum distance in km"
// @Param    status          query  string  false  "Exact status (case-insensitive)"
// @Param    min_properties  query  int     false  "Minimum number of properties"
// @Param    search          query  string  false  "Free-text search"
// @Param    sort            query  string  false  "distance (default) or relevancy"
// @Success  200  {file}    file
// @Failure  500  {object}  pkg.HTTPError
// @Router   /exports/tenders.xlsx [get]
func (h *TenderHandler) ExportTenders(c *gin.Context) {
	var req request.TenderSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		appErr := pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	_, ranked, err := h.usecase.Search(c.Request.Context(), req.ToQuery())
	if err != nil {
		log.Printf("[tender][handler] export failed request_id=%s err=%v", middleware.GetRequestID(c), err)
		appErr := mapTenderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var buf bytes.Buffer
	if err := spreadsheet.WriteTenders(&buf, ranked); err != nil {
		log.Printf("[tender][handler] export write failed request_id=%s err=%v", middleware.GetRequestID(c), err)
		appErr := mapTenderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[tender][handler] export success request_id=%s rows=%d bytes=%d", middleware.GetRequestID(c), len(ranked), buf.Len())

	c.Header("Content-Disposition", `attachment; filename="`+exportFileName+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func mapTenderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTenderID), errors.Is(err, request.ErrInvalidTenderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTenderNotFound):
		return pkg.NewDomainErrorSimple("TENDER_NOT_FOUND", "Tender not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
