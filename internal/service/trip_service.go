package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripplanner/internal/cache"
	apperrors "tripplanner/internal/errors"
	"tripplanner/internal/model"
	"tripplanner/internal/repository"
)

const tripListCacheTTL = 5 * time.Minute

// TripInput carries the mutable fields of a trip. Required-field presence is
// enforced at the HTTP boundary; this layer validates formats and applies
// defaults.
type TripInput struct {
	Title       string
	Country     string
	DateFrom    string
	DateTo      string
	TripType    []string
	Tags        []string
	Budget      *string
	Description *string
	Image       string
}

// TripService exposes owner-scoped trip operations. Every lookup carries the
// caller's id in the same predicate as the trip id, so a foreign trip is
// indistinguishable from a missing one.
type TripService interface {
	List(ctx context.Context, ownerID uint) ([]model.Trip, error)
	Get(ctx context.Context, ownerID uint, id string) (*model.Trip, error)
	Create(ctx context.Context, ownerID uint, in TripInput) (*model.Trip, error)
	Update(ctx context.Context, ownerID uint, id string, in TripInput) (*model.Trip, error)
	Delete(ctx context.Context, ownerID uint, id string) error
}

type tripService struct {
	trips repository.TripRepository
	cache *cache.Client
}

// NewTripService builds a TripService with repository and cache.
func NewTripService(trips repository.TripRepository, cache *cache.Client) TripService {
	return &tripService{trips: trips, cache: cache}
}

func ownerTripsKey(ownerID uint) string {
	return fmt.Sprintf("trips:user:%d", ownerID)
}

// parseTripID accepts only the canonical 36-character UUID form.
func parseTripID(id string) (uuid.UUID, error) {
	if len(id) != 36 {
		return uuid.Nil, apperrors.ErrInvalidTripID
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, apperrors.ErrInvalidTripID
	}
	return parsed, nil
}

func parseTripDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, apperrors.ErrInvalidDate
	}
	return t, nil
}

func normalizeTags(tags []string) model.StringList {
	if tags == nil {
		return model.StringList{}
	}
	return model.StringList(tags)
}

func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (s *tripService) List(ctx context.Context, ownerID uint) ([]model.Trip, error) {
	key := ownerTripsKey(ownerID)
	if data := s.cache.Get(ctx, key); data != nil {
		var cached []model.Trip
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	trips, err := s.trips.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list trips: %w", err)
	}

	if payload, err := json.Marshal(trips); err == nil {
		s.cache.Set(ctx, key, payload, tripListCacheTTL)
	}
	return trips, nil
}

func (s *tripService) Get(ctx context.Context, ownerID uint, id string) (*model.Trip, error) {
	tripID, err := parseTripID(id)
	if err != nil {
		return nil, err
	}

	trip, err := s.trips.FindByIDAndOwner(ctx, tripID, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTripNotFound
		}
		return nil, fmt.Errorf("find trip: %w", err)
	}
	return trip, nil
}

func (s *tripService) Create(ctx context.Context, ownerID uint, in TripInput) (*model.Trip, error) {
	dateFrom, err := parseTripDate(in.DateFrom)
	if err != nil {
		return nil, err
	}
	dateTo, err := parseTripDate(in.DateTo)
	if err != nil {
		return nil, err
	}

	trip := &model.Trip{
		UserID:      ownerID,
		Title:       strings.TrimSpace(in.Title),
		Country:     strings.TrimSpace(in.Country),
		DateFrom:    dateFrom,
		DateTo:      dateTo,
		TripType:    normalizeTags(in.TripType),
		Tags:        normalizeTags(in.Tags),
		Budget:      normalizeOptional(in.Budget),
		Description: normalizeOptional(in.Description),
		Image:       in.Image,
	}
	if strings.TrimSpace(trip.Image) == "" {
		trip.Image = model.DefaultTripImage
	}

	if err := s.trips.Create(ctx, trip); err != nil {
		return nil, fmt.Errorf("create trip: %w", err)
	}
	s.cache.Invalidate(ctx, ownerTripsKey(ownerID))
	return trip, nil
}

// Update replaces every mutable field; there is no merge. The owner-scoped
// lookup precedes the mutation.
func (s *tripService) Update(ctx context.Context, ownerID uint, id string, in TripInput) (*model.Trip, error) {
	tripID, err := parseTripID(id)
	if err != nil {
		return nil, err
	}
	dateFrom, err := parseTripDate(in.DateFrom)
	if err != nil {
		return nil, err
	}
	dateTo, err := parseTripDate(in.DateTo)
	if err != nil {
		return nil, err
	}

	trip, err := s.trips.FindByIDAndOwner(ctx, tripID, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTripNotFound
		}
		return nil, fmt.Errorf("find trip: %w", err)
	}

	trip.Title = strings.TrimSpace(in.Title)
	trip.Country = strings.TrimSpace(in.Country)
	trip.DateFrom = dateFrom
	trip.DateTo = dateTo
	trip.TripType = normalizeTags(in.TripType)
	trip.Tags = normalizeTags(in.Tags)
	trip.Budget = normalizeOptional(in.Budget)
	trip.Description = normalizeOptional(in.Description)
	trip.Image = in.Image
	if strings.TrimSpace(trip.Image) == "" {
		trip.Image = model.DefaultTripImage
	}

	if err := s.trips.Update(ctx, trip); err != nil {
		return nil, fmt.Errorf("update trip: %w", err)
	}
	s.cache.Invalidate(ctx, ownerTripsKey(ownerID))
	return trip, nil
}

func (s *tripService) Delete(ctx context.Context, ownerID uint, id string) error {
	tripID, err := parseTripID(id)
	if err != nil {
		return err
	}

	if _, err := s.trips.FindByIDAndOwner(ctx, tripID, ownerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTripNotFound
		}
		return fmt.Errorf("find trip: %w", err)
	}

	if err := s.trips.DeleteByIDAndOwner(ctx, tripID, ownerID); err != nil {
		return fmt.Errorf("delete trip: %w", err)
	}
	s.cache.Invalidate(ctx, ownerTripsKey(ownerID))
	return nil
}
