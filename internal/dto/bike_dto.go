package dto

import (
	"time"

	"gowheels/internal/entity"

	"github.com/shopspring/decimal"
)

// CreateBikeRequest accepts only owner-settable fields; any verification
// state supplied by the client has nowhere to land.
type CreateBikeRequest struct {
	Title               string          `json:"title" validate:"required,max=200"`
	Description         string          `json:"description"`
	BikeType            string          `json:"bike_type" validate:"required,oneof=mountain road electric cruiser hybrid"`
	PricePerDay         decimal.Decimal `json:"price_per_day" validate:"required"`
	Location            string          `json:"location" validate:"omitempty,max=200"`
	NumberPlate         *string         `json:"number_plate" validate:"omitempty,max=20"`
	NumberPlateImageURL *string         `json:"number_plate_image"`
	ImageURL            *string         `json:"image"`
}

type UpdateBikeRequest struct {
	Title       *string          `json:"title" validate:"omitempty,max=200"`
	Description *string          `json:"description"`
	BikeType    *string          `json:"bike_type" validate:"omitempty,oneof=mountain road electric cruiser hybrid"`
	PricePerDay *decimal.Decimal `json:"price_per_day"`
	Location    *string          `json:"location" validate:"omitempty,max=200"`
	ImageURL    *string          `json:"image"`
	Available   *bool            `json:"available"`
}

type ReviewBikeRequest struct {
	Status string `json:"status" validate:"required,oneof=pending verified rejected"`
}

type BikeResponse struct {
	ID                  string          `json:"id"`
	OwnerID             string          `json:"owner_id"`
	Title               string          `json:"title"`
	Description         string          `json:"description"`
	BikeType            string          `json:"bike_type"`
	PricePerDay         decimal.Decimal `json:"price_per_day"`
	Location            string          `json:"location"`
	ImageURL            *string         `json:"image,omitempty"`
	Available           bool            `json:"available"`
	NumberPlate         *string         `json:"number_plate,omitempty"`
	NumberPlateImageURL *string         `json:"number_plate_image,omitempty"`
	IsVerified          bool            `json:"is_verified"`
	VerificationStatus  string          `json:"verification_status"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

func BikeResponseFromEntity(bike *entity.Bike) BikeResponse {
	return BikeResponse{
		ID:                  bike.ID.String(),
		OwnerID:             bike.OwnerID.String(),
		Title:               bike.Title,
		Description:         bike.Description,
		BikeType:            string(bike.BikeType),
		PricePerDay:         bike.PricePerDay,
		Location:            bike.Location,
		ImageURL:            bike.ImageURL,
		Available:           bike.Available,
		NumberPlate:         bike.NumberPlate,
		NumberPlateImageURL: bike.NumberPlateImageURL,
		IsVerified:          bike.IsVerified,
		VerificationStatus:  string(bike.VerificationStatus),
		CreatedAt:           bike.CreatedAt,
		UpdatedAt:           bike.UpdatedAt,
	}
}

func BikeResponsesFromEntities(bikes []entity.Bike) []BikeResponse {
	responses := make([]BikeResponse, 0, len(bikes))
	for i := range bikes {
		responses = append(responses, BikeResponseFromEntity(&bikes[i]))
	}
	return responses
}
