package dto

import (
	"time"

	"gowheels/internal/entity"
)

type SendOTPRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required,len=10,numeric"`
}

type VerifyOTPRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required,len=10,numeric"`
	OTP         string `json:"otp" validate:"required,len=6,numeric"`
}

type UploadResponse struct {
	URL string `json:"url"`
}

type ReviewDocumentRequest struct {
	Verified *bool `json:"verified" validate:"required"`
}

type VerificationProfileResponse struct {
	UserID          string    `json:"user_id"`
	PhoneNumber     string    `json:"phone_number"`
	PhoneVerified   bool      `json:"phone_verified"`
	AadhaarCardURL  *string   `json:"aadhaar_card,omitempty"`
	AadhaarVerified bool      `json:"aadhaar_verified"`
	CreatedAt       time.Time `json:"created_at"`
}

func VerificationProfileFromEntity(profile *entity.UserProfile) VerificationProfileResponse {
	return VerificationProfileResponse{
		UserID:          profile.UserID.String(),
		PhoneNumber:     profile.PhoneNumber,
		PhoneVerified:   profile.PhoneVerified,
		AadhaarCardURL:  profile.AadhaarCardURL,
		AadhaarVerified: profile.AadhaarVerified,
		CreatedAt:       profile.CreatedAt,
	}
}
