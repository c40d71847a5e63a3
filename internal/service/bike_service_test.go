package service

import (
	"context"
	"testing"

	"gowheels/internal/entity"
	"gowheels/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCreateBike_StartsUnverified(t *testing.T) {
	bikes := newBikeRepoMock()
	svc := NewBikeService(bikes, nil)
	ownerID := uuid.New()

	bike, err := svc.Create(context.Background(), ownerID, CreateBikeInput{
		Title:       "Trek Marlin 7",
		Description: "Hardtail, serviced last month",
		BikeType:    entity.BikeTypeMountain,
		PricePerDay: decimal.RequireFromString("250.00"),
		Location:    "Bengaluru",
	})
	require.NoError(t, err)

	assert.Equal(t, ownerID, bike.OwnerID)
	assert.True(t, bike.Available)
	assert.False(t, bike.IsVerified)
	assert.Equal(t, entity.BikeVerificationPending, bike.VerificationStatus)
}

func TestCreateBike_RejectsBadInput(t *testing.T) {
	bikes := newBikeRepoMock()
	svc := NewBikeService(bikes, nil)
	valid := CreateBikeInput{
		Title:       "Trek Marlin 7",
		BikeType:    entity.BikeTypeMountain,
		PricePerDay: decimal.RequireFromString("250.00"),
	}

	blank := valid
	blank.Title = "   "
	_, err := svc.Create(context.Background(), uuid.New(), blank)
	assert.ErrorIs(t, err, ErrInvalidInput)

	badType := valid
	badType.BikeType = entity.BikeType("unicycle")
	_, err = svc.Create(context.Background(), uuid.New(), badType)
	assert.ErrorIs(t, err, ErrInvalidInput)

	negative := valid
	negative.PricePerDay = decimal.RequireFromString("-1")
	_, err = svc.Create(context.Background(), uuid.New(), negative)
	assert.ErrorIs(t, err, ErrInvalidInput)

	assert.Empty(t, bikes.bikes)
}

func TestCreateBike_NumberPlateNormalizedAndUnique(t *testing.T) {
	bikes := newBikeRepoMock()
	svc := NewBikeService(bikes, nil)
	input := CreateBikeInput{
		Title:       "Royal Enfield",
		BikeType:    entity.BikeTypeCruiser,
		PricePerDay: decimal.RequireFromString("500.00"),
		NumberPlate: strPtr("ka 01 ab 1234"),
	}

	bike, err := svc.Create(context.Background(), uuid.New(), input)
	require.NoError(t, err)
	require.NotNil(t, bike.NumberPlate)
	assert.Equal(t, "KA01AB1234", *bike.NumberPlate)

	// Same plate with different spacing and case collides.
	input.NumberPlate = strPtr("KA01AB 1234")
	_, err = svc.Create(context.Background(), uuid.New(), input)
	assert.ErrorIs(t, err, ErrNumberPlateTaken)

	// A whitespace-only plate is treated as absent.
	input.NumberPlate = strPtr("   ")
	noPlate, err := svc.Create(context.Background(), uuid.New(), input)
	require.NoError(t, err)
	assert.Nil(t, noPlate.NumberPlate)
}

func TestUpdateBike_OnlyOwnerMayEdit(t *testing.T) {
	bikes := newBikeRepoMock()
	svc := NewBikeService(bikes, nil)
	ownerID := uuid.New()
	bike := seedBike(t, bikes, ownerID, "100.00")

	_, err := svc.Update(context.Background(), bike.ID, uuid.New(), UpdateBikeInput{
		Title: strPtr("Stolen listing"),
	})
	assert.ErrorIs(t, err, ErrNotOwner)

	_, err = svc.Update(context.Background(), uuid.New(), ownerID, UpdateBikeInput{})
	assert.ErrorIs(t, err, ErrBikeNotFound)
}

func TestUpdateBike_PatchesOnlyProvidedFields(t *testing.T) {
	bikes := newBikeRepoMock()
	svc := NewBikeService(bikes, nil)
	ownerID := uuid.New()
	bike := seedBike(t, bikes, ownerID, "100.00")

	newPrice := decimal.RequireFromString("120.00")
	available := false
	updated, err := svc.Update(context.Background(), bike.ID, ownerID, UpdateBikeInput{
		PricePerDay: &newPrice,
		Available:   &available,
	})
	require.NoError(t, err)

	assert.True(t, updated.PricePerDay.Equal(newPrice))
	assert.False(t, updated.Available)
	assert.Equal(t, bike.Title, updated.Title)
	assert.Equal(t, bike.Location, updated.Location)
}

func TestUpdateBike_RejectsBadPatch(t *testing.T) {
	bikes := newBikeRepoMock()
	svc := NewBikeService(bikes, nil)
	ownerID := uuid.New()
	bike := seedBike(t, bikes, ownerID, "100.00")

	_, err := svc.Update(context.Background(), bike.ID, ownerID, UpdateBikeInput{Title: strPtr(" ")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	negative := decimal.RequireFromString("-5")
	_, err = svc.Update(context.Background(), bike.ID, ownerID, UpdateBikeInput{PricePerDay: &negative})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestReviewBike_SetsStatusAndDerivedFlag(t *testing.T) {
	bikes := newBikeRepoMock()
	svc := NewBikeService(bikes, nil)
	adminID := uuid.New()
	bike := seedBike(t, bikes, uuid.New(), "100.00")

	require.NoError(t, svc.Review(context.Background(), adminID, bike.ID, entity.BikeVerificationVerified))
	assert.Equal(t, entity.BikeVerificationVerified, bikes.bikes[bike.ID].VerificationStatus)
	assert.True(t, bikes.bikes[bike.ID].IsVerified)

	require.NoError(t, svc.Review(context.Background(), adminID, bike.ID, entity.BikeVerificationRejected))
	assert.Equal(t, entity.BikeVerificationRejected, bikes.bikes[bike.ID].VerificationStatus)
	assert.False(t, bikes.bikes[bike.ID].IsVerified)

	err := svc.Review(context.Background(), adminID, bike.ID, entity.BikeVerificationStatus("maybe"))
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = svc.Review(context.Background(), adminID, uuid.New(), entity.BikeVerificationVerified)
	assert.ErrorIs(t, err, ErrBikeNotFound)
}

func TestListBikes_FiltersByType(t *testing.T) {
	bikes := newBikeRepoMock()
	svc := NewBikeService(bikes, nil)
	ownerID := uuid.New()
	seedBike(t, bikes, ownerID, "100.00")

	road := &entity.Bike{
		OwnerID:     uuid.New(),
		Title:       "Road racer",
		BikeType:    entity.BikeTypeRoad,
		PricePerDay: decimal.RequireFromString("300.00"),
	}
	require.NoError(t, bikes.Create(context.Background(), road))

	all, err := svc.List(context.Background(), repository.BikeFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	roads, err := svc.List(context.Background(), repository.BikeFilter{BikeType: "road"})
	require.NoError(t, err)
	require.Len(t, roads, 1)
	assert.Equal(t, road.ID, roads[0].ID)

	mine, err := svc.ListByOwner(context.Background(), ownerID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}
