package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BikeType string

const (
	BikeTypeMountain BikeType = "mountain"
	BikeTypeRoad     BikeType = "road"
	BikeTypeElectric BikeType = "electric"
	BikeTypeCruiser  BikeType = "cruiser"
	BikeTypeHybrid   BikeType = "hybrid"
)

func (t BikeType) Valid() bool {
	switch t {
	case BikeTypeMountain, BikeTypeRoad, BikeTypeElectric, BikeTypeCruiser, BikeTypeHybrid:
		return true
	}
	return false
}

type BikeVerificationStatus string

const (
	BikeVerificationPending  BikeVerificationStatus = "pending"
	BikeVerificationVerified BikeVerificationStatus = "verified"
	BikeVerificationRejected BikeVerificationStatus = "rejected"
)

func (s BikeVerificationStatus) Valid() bool {
	switch s {
	case BikeVerificationPending, BikeVerificationVerified, BikeVerificationRejected:
		return true
	}
	return false
}

// Bike is a listing posted by its owner. Verification fields are only ever
// written through the admin review path; IsVerified is true exactly when
// VerificationStatus is "verified".
type Bike struct {
	ID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	OwnerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Owner   User      `gorm:"constraint:OnDelete:CASCADE"`

	Title       string          `gorm:"type:varchar(200);not null"`
	Description string          `gorm:"type:text"`
	BikeType    BikeType        `gorm:"type:varchar(20);not null"`
	PricePerDay decimal.Decimal `gorm:"type:numeric(8,2);not null"`
	Location    string          `gorm:"type:varchar(200)"`
	ImageURL    *string         `gorm:"type:text"`
	Available   bool            `gorm:"default:true"`

	NumberPlate         *string                `gorm:"type:varchar(20);uniqueIndex"`
	NumberPlateImageURL *string                `gorm:"type:text"`
	IsVerified          bool                   `gorm:"default:false"`
	VerificationStatus  BikeVerificationStatus `gorm:"type:varchar(20);default:'pending'"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
