package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	apperrors "tripplanner/internal/errors"
	"tripplanner/internal/middleware"
	"tripplanner/internal/model"
	"tripplanner/internal/service"
)

// TripHandler handles trip CRUD endpoints.
type TripHandler struct {
	tripService service.TripService
}

// NewTripHandler creates a new trip handler.
func NewTripHandler(tripService service.TripService) *TripHandler {
	return &TripHandler{tripService: tripService}
}

// TripRequest represents the create/update payload.
type TripRequest struct {
	Title       string   `json:"title" validate:"required"`
	Country     string   `json:"country" validate:"required"`
	DateFrom    string   `json:"dateFrom" validate:"required"`
	DateTo      string   `json:"dateTo" validate:"required"`
	TripType    []string `json:"tripType"`
	Tags        []string `json:"tags"`
	Budget      *string  `json:"budget"`
	Description *string  `json:"description"`
	Image       string   `json:"image"`
}

// TripResponse renders dates as calendar-date strings and never emits null
// for the list fields.
type TripResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	DateFrom    string   `json:"dateFrom"`
	DateTo      string   `json:"dateTo"`
	Country     string   `json:"country"`
	TripType    []string `json:"tripType"`
	Tags        []string `json:"tags"`
	Budget      *string  `json:"budget"`
	Description *string  `json:"description"`
	Image       string   `json:"image"`
	CreatedAt   string   `json:"createdAt"`
}

// TripListResponse is the list envelope.
type TripListResponse struct {
	Success bool           `json:"success"`
	Data    []TripResponse `json:"data"`
	User    string         `json:"user"`
	Count   int            `json:"count"`
}

// TripDataResponse wraps a single trip.
type TripDataResponse struct {
	Success bool         `json:"success"`
	Data    TripResponse `json:"data"`
}

// TripMutationResponse is returned from create and update.
type TripMutationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	TripID  string `json:"tripId"`
	User    string `json:"user,omitempty"`
}

func newTripResponse(t model.Trip) TripResponse {
	tripType := []string(t.TripType)
	if tripType == nil {
		tripType = []string{}
	}
	tags := []string(t.Tags)
	if tags == nil {
		tags = []string{}
	}
	return TripResponse{
		ID:          t.ID.String(),
		Title:       t.Title,
		DateFrom:    t.DateFrom.Format("2006-01-02"),
		DateTo:      t.DateTo.Format("2006-01-02"),
		Country:     t.Country,
		TripType:    tripType,
		Tags:        tags,
		Budget:      t.Budget,
		Description: t.Description,
		Image:       t.Image,
		CreatedAt:   t.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func (h *TripHandler) input(req TripRequest) service.TripInput {
	return service.TripInput{
		Title:       req.Title,
		Country:     req.Country,
		DateFrom:    req.DateFrom,
		DateTo:      req.DateTo,
		TripType:    req.TripType,
		Tags:        req.Tags,
		Budget:      req.Budget,
		Description: req.Description,
		Image:       req.Image,
	}
}

// List godoc
// @Summary List the caller's trips, newest first
// @Tags trips
// @Produce json
// @Security BearerAuth
// @Success 200 {object} TripListResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /trips [get]
func (h *TripHandler) List(c echo.Context) error {
	ident, ok := middleware.CurrentUser(c)
	if !ok {
		return apperrors.ErrNotAuthenticated
	}

	trips, err := h.tripService.List(c.Request().Context(), ident.ID)
	if err != nil {
		return err
	}

	data := make([]TripResponse, 0, len(trips))
	for _, t := range trips {
		data = append(data, newTripResponse(t))
	}

	return c.JSON(http.StatusOK, TripListResponse{
		Success: true,
		Data:    data,
		User:    ident.Email,
		Count:   len(data),
	})
}

// Get godoc
// @Summary Get one trip by id
// @Tags trips
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip UUID"
// @Success 200 {object} TripDataResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /trips/{id} [get]
func (h *TripHandler) Get(c echo.Context) error {
	ident, ok := middleware.CurrentUser(c)
	if !ok {
		return apperrors.ErrNotAuthenticated
	}

	trip, err := h.tripService.Get(c.Request().Context(), ident.ID, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, TripDataResponse{
		Success: true,
		Data:    newTripResponse(*trip),
	})
}

// Create godoc
// @Summary Create a trip
// @Tags trips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body TripRequest true "Trip payload"
// @Success 201 {object} TripMutationResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /trips [post]
func (h *TripHandler) Create(c echo.Context) error {
	ident, ok := middleware.CurrentUser(c)
	if !ok {
		return apperrors.ErrNotAuthenticated
	}

	var req TripRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.ErrMissingFields
	}

	trip, err := h.tripService.Create(c.Request().Context(), ident.ID, h.input(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, TripMutationResponse{
		Success: true,
		Message: "Trip added successfully",
		TripID:  trip.ID.String(),
		User:    ident.Email,
	})
}

// Update godoc
// @Summary Replace a trip
// @Tags trips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip UUID"
// @Param request body TripRequest true "Trip payload"
// @Success 200 {object} TripMutationResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /trips/{id} [put]
func (h *TripHandler) Update(c echo.Context) error {
	ident, ok := middleware.CurrentUser(c)
	if !ok {
		return apperrors.ErrNotAuthenticated
	}

	var req TripRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.ErrMissingFields
	}

	trip, err := h.tripService.Update(c.Request().Context(), ident.ID, c.Param("id"), h.input(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, TripMutationResponse{
		Success: true,
		Message: "Trip updated successfully",
		TripID:  trip.ID.String(),
	})
}

// Delete godoc
// @Summary Delete a trip
// @Tags trips
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip UUID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /trips/{id} [delete]
func (h *TripHandler) Delete(c echo.Context) error {
	ident, ok := middleware.CurrentUser(c)
	if !ok {
		return apperrors.ErrNotAuthenticated
	}

	if err := h.tripService.Delete(c.Request().Context(), ident.ID, c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, MessageResponse{
		Success: true,
		Message: "Trip deleted successfully",
	})
}
