package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserProfile carries the per-user verification state: the phone number the
// user has proven ownership of and the identity document awaiting admin
// review. Created lazily on first OTP confirmation or document upload.
type UserProfile struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	User   User      `gorm:"constraint:OnDelete:CASCADE"`

	// The partial unique index is the backstop for concurrent claims: two
	// transactions that both saw no verified holder cannot both commit.
	PhoneNumber   string `gorm:"type:varchar(10);uniqueIndex:uniq_user_profiles_verified_phone,where:phone_verified"`
	PhoneVerified bool   `gorm:"default:false"`

	AadhaarCardURL  *string `gorm:"type:text"`
	AadhaarVerified bool    `gorm:"default:false"`

	CreatedAt time.Time
}
