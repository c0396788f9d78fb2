package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripplanner/internal/model"
)

// TripRepository defines trip persistence operations. Every single-trip
// lookup is scoped by owner in the same predicate as the id, so existence
// and ownership are checked atomically and cannot be probed separately.
type TripRepository interface {
	Create(ctx context.Context, trip *model.Trip) error
	ListByOwner(ctx context.Context, ownerID uint) ([]model.Trip, error)
	FindByIDAndOwner(ctx context.Context, id uuid.UUID, ownerID uint) (*model.Trip, error)
	Update(ctx context.Context, trip *model.Trip) error
	DeleteByIDAndOwner(ctx context.Context, id uuid.UUID, ownerID uint) error
}

type tripRepository struct {
	db *gorm.DB
}

// NewTripRepository builds a GORM-backed repository.
func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) Create(ctx context.Context, trip *model.Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *tripRepository) ListByOwner(ctx context.Context, ownerID uint) ([]model.Trip, error) {
	var trips []model.Trip
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&trips).Error; err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *tripRepository) FindByIDAndOwner(ctx context.Context, id uuid.UUID, ownerID uint) (*model.Trip, error) {
	var trip model.Trip
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&trip).Error; err != nil {
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) Update(ctx context.Context, trip *model.Trip) error {
	return r.db.WithContext(ctx).Save(trip).Error
}

func (r *tripRepository) DeleteByIDAndOwner(ctx context.Context, id uuid.UUID, ownerID uint) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&model.Trip{}).Error
}
