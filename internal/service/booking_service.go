package service

import (
	"context"
	"time"

	"gowheels/internal/entity"
	"gowheels/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateBookingInput struct {
	BikeID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

// BulkTransitionResult collects per-item outcomes of an admin bulk action.
type BulkTransitionResult struct {
	Transitioned []uuid.UUID
	Failed       map[uuid.UUID]error
}

type BookingService struct {
	bookings  repository.BookingRepository
	bikes     repository.BikeRepository
	auditLogs repository.AuditLogRepository
}

func NewBookingService(
	bookings repository.BookingRepository,
	bikes repository.BikeRepository,
	auditLogs repository.AuditLogRepository,
) *BookingService {
	return &BookingService{bookings: bookings, bikes: bikes, auditLogs: auditLogs}
}

// Create books a bike for a date range. The total price is the listing's
// current daily price times the whole-day span, snapshotted once; later
// price changes on the listing never touch existing bookings. Overlapping
// bookings for the same bike are not rejected.
func (s *BookingService) Create(ctx context.Context, renterID uuid.UUID, input CreateBookingInput) (*entity.Booking, error) {
	days := wholeDays(input.StartDate, input.EndDate)
	if days <= 0 {
		return nil, ErrInvalidInput
	}

	bike, err := s.bikes.FindByID(ctx, input.BikeID)
	if err != nil {
		return nil, err
	}
	if bike == nil {
		return nil, ErrBikeNotFound
	}

	booking := &entity.Booking{
		BikeID:     bike.ID,
		RenterID:   renterID,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		TotalPrice: bike.PricePerDay.Mul(decimal.NewFromInt(days)),
		Status:     entity.BookingStatusPending,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// Transition moves a booking along the state machine. Any authenticated
// caller may transition any booking; there is no per-actor restriction.
func (s *BookingService) Transition(ctx context.Context, callerID uuid.UUID, bookingID uuid.UUID, newStatus entity.BookingStatus) (*entity.Booking, error) {
	if !newStatus.Valid() {
		return nil, ErrInvalidInput
	}

	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if !booking.Status.CanTransitionTo(newStatus) {
		return nil, ErrInvalidTransition
	}

	applied, err := s.bookings.TransitionStatus(ctx, bookingID, booking.Status, newStatus)
	if err != nil {
		return nil, err
	}
	if !applied {
		// State moved underneath us; the edge we validated no longer exists.
		return nil, ErrInvalidTransition
	}

	booking.Status = newStatus
	logAudit(ctx, s.auditLogs, &callerID, entity.BookingTransition, map[string]any{
		"booking_id": bookingID.String(),
		"status":     string(newStatus),
	})
	return booking, nil
}

// BulkTransition applies the same transition to a set of bookings,
// collecting per-item failures instead of aborting the batch.
func (s *BookingService) BulkTransition(ctx context.Context, adminID uuid.UUID, bookingIDs []uuid.UUID, newStatus entity.BookingStatus) BulkTransitionResult {
	result := BulkTransitionResult{Failed: make(map[uuid.UUID]error)}
	for _, id := range bookingIDs {
		if _, err := s.Transition(ctx, adminID, id, newStatus); err != nil {
			result.Failed[id] = err
			continue
		}
		result.Transitioned = append(result.Transitioned, id)
	}
	return result
}

func (s *BookingService) ListForRenter(ctx context.Context, renterID uuid.UUID) ([]entity.Booking, error) {
	return s.bookings.ListByRenter(ctx, renterID)
}

func (s *BookingService) ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]entity.Booking, error) {
	return s.bookings.ListByBikeOwner(ctx, ownerID)
}

func wholeDays(start, end time.Time) int64 {
	return int64(end.Sub(start) / (24 * time.Hour))
}
