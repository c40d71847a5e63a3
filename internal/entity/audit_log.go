package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AuditAction string

const (
	PhoneVerified     AuditAction = "phone_verified"
	DocumentUploaded  AuditAction = "document_uploaded"
	DocumentReviewed  AuditAction = "document_reviewed"
	ListingReviewed   AuditAction = "listing_reviewed"
	BookingTransition AuditAction = "booking_transition"
)

type AuditLog struct {
	ID     uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID *uuid.UUID `gorm:"type:uuid;index"`

	Action   AuditAction    `gorm:"type:varchar(50);not null"`
	Metadata datatypes.JSON `gorm:"type:jsonb"`

	CreatedAt time.Time
}
