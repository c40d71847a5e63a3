package repository

import (
	"context"
	"errors"

	"gowheels/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	ListByRenter(ctx context.Context, renterID uuid.UUID) ([]entity.Booking, error)
	// ListByBikeOwner returns bookings made against bikes the given user owns.
	ListByBikeOwner(ctx context.Context, ownerID uuid.UUID) ([]entity.Booking, error)
	// TransitionStatus applies from->to with a compare-and-set on the current
	// status; false means the booking was no longer in the expected state.
	TransitionStatus(ctx context.Context, id uuid.UUID, from entity.BookingStatus, to entity.BookingStatus) (bool, error)
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	err := r.db.WithContext(ctx).
		Preload("Bike").
		Where("id = ?", id).
		First(&booking).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &booking, err
}

func (r *bookingRepository) ListByRenter(ctx context.Context, renterID uuid.UUID) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := r.db.WithContext(ctx).
		Preload("Bike").
		Where("renter_id = ?", renterID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) ListByBikeOwner(ctx context.Context, ownerID uuid.UUID) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := r.db.WithContext(ctx).
		Preload("Bike").
		Joins("JOIN bikes ON bikes.id = bookings.bike_id").
		Where("bikes.owner_id = ?", ownerID).
		Order("bookings.created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) TransitionStatus(ctx context.Context, id uuid.UUID, from entity.BookingStatus, to entity.BookingStatus) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&entity.Booking{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
