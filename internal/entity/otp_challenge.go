package entity

import (
	"time"

	"github.com/google/uuid"
)

// OTPValidityWindow is how long an issued code stays confirmable.
const OTPValidityWindow = 600 * time.Second

// OTPChallenge is a single code issuance. A new row is created on every
// send; rows are never deleted so the table doubles as an audit trail.
type OTPChallenge struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`

	PhoneNumber string `gorm:"type:varchar(10);not null;index"`
	Code        string `gorm:"type:varchar(6);not null"`
	Verified    bool   `gorm:"default:false"`

	CreatedAt time.Time
}

// ExpiresAt is derived rather than stored; validity is a data-level check
// against CreatedAt.
func (c *OTPChallenge) ExpiresAt() time.Time {
	return c.CreatedAt.Add(OTPValidityWindow)
}
