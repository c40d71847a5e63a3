package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}

// CanTransitionTo encodes the booking state machine:
// pending -> confirmed|cancelled, confirmed -> completed|cancelled,
// completed and cancelled are terminal.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch s {
	case BookingStatusPending:
		return next == BookingStatusConfirmed || next == BookingStatusCancelled
	case BookingStatusConfirmed:
		return next == BookingStatusCompleted || next == BookingStatusCancelled
	}
	return false
}

// Booking ties a renter to a bike for a date range. TotalPrice is snapshotted
// from the listing at creation and never recomputed.
type Booking struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	BikeID uuid.UUID `gorm:"type:uuid;not null;index"`
	Bike   Bike      `gorm:"constraint:OnDelete:CASCADE"`

	RenterID uuid.UUID `gorm:"type:uuid;not null;index"`
	Renter   User      `gorm:"constraint:OnDelete:CASCADE"`

	StartDate  time.Time       `gorm:"type:date;not null"`
	EndDate    time.Time       `gorm:"type:date;not null"`
	TotalPrice decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Status     BookingStatus   `gorm:"type:varchar(20);default:'pending'"`

	CreatedAt time.Time
}
