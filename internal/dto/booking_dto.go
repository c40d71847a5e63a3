package dto

import (
	"time"

	"gowheels/internal/entity"

	"github.com/shopspring/decimal"
)

const DateLayout = "2006-01-02"

type CreateBookingRequest struct {
	BikeID    string `json:"bike_id" validate:"required,uuid"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
}

type TransitionBookingRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled completed"`
}

type BulkTransitionRequest struct {
	BookingIDs []string `json:"booking_ids" validate:"required,min=1,dive,uuid"`
	Status     string   `json:"status" validate:"required,oneof=pending confirmed cancelled completed"`
}

type BulkTransitionResponse struct {
	Transitioned []string          `json:"transitioned"`
	Failed       map[string]string `json:"failed,omitempty"`
}

type BookingResponse struct {
	ID         string          `json:"id"`
	BikeID     string          `json:"bike_id"`
	RenterID   string          `json:"renter_id"`
	StartDate  string          `json:"start_date"`
	EndDate    string          `json:"end_date"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
}

func BookingResponseFromEntity(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:         booking.ID.String(),
		BikeID:     booking.BikeID.String(),
		RenterID:   booking.RenterID.String(),
		StartDate:  booking.StartDate.Format(DateLayout),
		EndDate:    booking.EndDate.Format(DateLayout),
		TotalPrice: booking.TotalPrice,
		Status:     string(booking.Status),
		CreatedAt:  booking.CreatedAt,
	}
}

func BookingResponsesFromEntities(bookings []entity.Booking) []BookingResponse {
	responses := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		responses = append(responses, BookingResponseFromEntity(&bookings[i]))
	}
	return responses
}
