package service

import (
	"context"
	"strings"

	"gowheels/internal/entity"
	"gowheels/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateBikeInput struct {
	Title               string
	Description         string
	BikeType            entity.BikeType
	PricePerDay         decimal.Decimal
	Location            string
	ImageURL            *string
	NumberPlate         *string
	NumberPlateImageURL *string
}

// UpdateBikeInput deliberately carries no verification fields; those are only
// reachable through the admin review path.
type UpdateBikeInput struct {
	Title       *string
	Description *string
	BikeType    *entity.BikeType
	PricePerDay *decimal.Decimal
	Location    *string
	ImageURL    *string
	Available   *bool
}

type BikeService struct {
	bikes     repository.BikeRepository
	auditLogs repository.AuditLogRepository
}

func NewBikeService(bikes repository.BikeRepository, auditLogs repository.AuditLogRepository) *BikeService {
	return &BikeService{bikes: bikes, auditLogs: auditLogs}
}

// Create posts a listing. The owner always comes from the authenticated
// caller and verification state always starts at pending, whatever the
// client sent.
func (s *BikeService) Create(ctx context.Context, ownerID uuid.UUID, input CreateBikeInput) (*entity.Bike, error) {
	if strings.TrimSpace(input.Title) == "" || !input.BikeType.Valid() {
		return nil, ErrInvalidInput
	}
	if input.PricePerDay.IsNegative() {
		return nil, ErrInvalidInput
	}

	plate := normalizePlate(input.NumberPlate)
	if plate != nil {
		existing, err := s.bikes.FindByNumberPlate(ctx, *plate)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrNumberPlateTaken
		}
	}

	bike := &entity.Bike{
		OwnerID:             ownerID,
		Title:               input.Title,
		Description:         input.Description,
		BikeType:            input.BikeType,
		PricePerDay:         input.PricePerDay,
		Location:            input.Location,
		ImageURL:            input.ImageURL,
		Available:           true,
		NumberPlate:         plate,
		NumberPlateImageURL: input.NumberPlateImageURL,
		IsVerified:          false,
		VerificationStatus:  entity.BikeVerificationPending,
	}
	if err := s.bikes.Create(ctx, bike); err != nil {
		return nil, err
	}
	return bike, nil
}

// Update mutates owner-editable fields. Callers other than the owner are
// rejected; verification fields are untouchable here.
func (s *BikeService) Update(ctx context.Context, bikeID uuid.UUID, callerID uuid.UUID, input UpdateBikeInput) (*entity.Bike, error) {
	bike, err := s.bikes.FindByID(ctx, bikeID)
	if err != nil {
		return nil, err
	}
	if bike == nil {
		return nil, ErrBikeNotFound
	}
	if bike.OwnerID != callerID {
		return nil, ErrNotOwner
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, ErrInvalidInput
		}
		bike.Title = *input.Title
	}
	if input.Description != nil {
		bike.Description = *input.Description
	}
	if input.BikeType != nil {
		if !input.BikeType.Valid() {
			return nil, ErrInvalidInput
		}
		bike.BikeType = *input.BikeType
	}
	if input.PricePerDay != nil {
		if input.PricePerDay.IsNegative() {
			return nil, ErrInvalidInput
		}
		bike.PricePerDay = *input.PricePerDay
	}
	if input.Location != nil {
		bike.Location = *input.Location
	}
	if input.ImageURL != nil {
		bike.ImageURL = input.ImageURL
	}
	if input.Available != nil {
		bike.Available = *input.Available
	}

	if err := s.bikes.Update(ctx, bike); err != nil {
		return nil, err
	}
	return bike, nil
}

func (s *BikeService) Get(ctx context.Context, bikeID uuid.UUID) (*entity.Bike, error) {
	bike, err := s.bikes.FindByID(ctx, bikeID)
	if err != nil {
		return nil, err
	}
	if bike == nil {
		return nil, ErrBikeNotFound
	}
	return bike, nil
}

func (s *BikeService) List(ctx context.Context, filter repository.BikeFilter) ([]entity.Bike, error) {
	return s.bikes.List(ctx, filter)
}

func (s *BikeService) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]entity.Bike, error) {
	return s.bikes.ListByOwner(ctx, ownerID)
}

// Review is the administrator path: sets the verification status and derives
// the is_verified convenience flag from it.
func (s *BikeService) Review(ctx context.Context, adminID uuid.UUID, bikeID uuid.UUID, status entity.BikeVerificationStatus) error {
	if !status.Valid() {
		return ErrInvalidInput
	}

	bike, err := s.bikes.FindByID(ctx, bikeID)
	if err != nil {
		return err
	}
	if bike == nil {
		return ErrBikeNotFound
	}

	if err := s.bikes.SetVerification(ctx, bikeID, status); err != nil {
		return err
	}

	logAudit(ctx, s.auditLogs, &adminID, entity.ListingReviewed, map[string]any{
		"bike_id": bikeID.String(),
		"status":  string(status),
	})
	return nil
}

func normalizePlate(plate *string) *string {
	if plate == nil {
		return nil
	}
	trimmed := strings.ToUpper(strings.ReplaceAll(*plate, " ", ""))
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
