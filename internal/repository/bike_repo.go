package repository

import (
	"context"
	"errors"

	"gowheels/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BikeFilter narrows List results. Zero values match everything.
type BikeFilter struct {
	BikeType string
	Location string
}

type BikeRepository interface {
	Create(ctx context.Context, bike *entity.Bike) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Bike, error)
	FindByNumberPlate(ctx context.Context, numberPlate string) (*entity.Bike, error)
	Update(ctx context.Context, bike *entity.Bike) error
	List(ctx context.Context, filter BikeFilter) ([]entity.Bike, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]entity.Bike, error)
	SetVerification(ctx context.Context, id uuid.UUID, status entity.BikeVerificationStatus) error
}

type bikeRepository struct {
	db *gorm.DB
}

func NewBikeRepository(db *gorm.DB) BikeRepository {
	return &bikeRepository{db: db}
}

func (r *bikeRepository) Create(ctx context.Context, bike *entity.Bike) error {
	return r.db.WithContext(ctx).Create(bike).Error
}

func (r *bikeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Bike, error) {
	var bike entity.Bike
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&bike).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &bike, err
}

func (r *bikeRepository) FindByNumberPlate(ctx context.Context, numberPlate string) (*entity.Bike, error) {
	var bike entity.Bike
	err := r.db.WithContext(ctx).
		Where("number_plate = ?", numberPlate).
		First(&bike).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &bike, err
}

func (r *bikeRepository) Update(ctx context.Context, bike *entity.Bike) error {
	return r.db.WithContext(ctx).Save(bike).Error
}

func (r *bikeRepository) List(ctx context.Context, filter BikeFilter) ([]entity.Bike, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if filter.BikeType != "" {
		query = query.Where("bike_type = ?", filter.BikeType)
	}
	if filter.Location != "" {
		query = query.Where("location ILIKE ?", "%"+filter.Location+"%")
	}

	var bikes []entity.Bike
	if err := query.Find(&bikes).Error; err != nil {
		return nil, err
	}
	return bikes, nil
}

func (r *bikeRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]entity.Bike, error) {
	var bikes []entity.Bike
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&bikes).Error
	if err != nil {
		return nil, err
	}
	return bikes, nil
}

func (r *bikeRepository) SetVerification(ctx context.Context, id uuid.UUID, status entity.BikeVerificationStatus) error {
	return r.db.WithContext(ctx).
		Model(&entity.Bike{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"verification_status": status,
			"is_verified":         status == entity.BikeVerificationVerified,
		}).Error
}
