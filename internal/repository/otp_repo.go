package repository

import (
	"context"
	"errors"

	"gowheels/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OTPChallengeRepository interface {
	Create(ctx context.Context, challenge *entity.OTPChallenge) error
	// FindLatestUnverified returns the most recent unverified challenge
	// matching phone number and code. Duplicate challenges (from delivery
	// retries) are tolerated: the latest match wins.
	FindLatestUnverified(ctx context.Context, phoneNumber string, code string) (*entity.OTPChallenge, error)
	// MarkVerified flips the challenge to verified. The verified=false guard
	// makes the read-then-mark atomic: of two concurrent confirmations only
	// one sees a row flip.
	MarkVerified(ctx context.Context, id uuid.UUID) (bool, error)
}

type otpChallengeRepository struct {
	db *gorm.DB
}

func NewOTPChallengeRepository(db *gorm.DB) OTPChallengeRepository {
	return &otpChallengeRepository{db: db}
}

func (r *otpChallengeRepository) Create(ctx context.Context, challenge *entity.OTPChallenge) error {
	return r.db.WithContext(ctx).Create(challenge).Error
}

func (r *otpChallengeRepository) FindLatestUnverified(ctx context.Context, phoneNumber string, code string) (*entity.OTPChallenge, error) {
	var challenge entity.OTPChallenge
	err := r.db.WithContext(ctx).
		Where("phone_number = ? AND code = ? AND verified = false", phoneNumber, code).
		Order("created_at DESC").
		First(&challenge).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &challenge, err
}

func (r *otpChallengeRepository) MarkVerified(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&entity.OTPChallenge{}).
		Where("id = ? AND verified = false", id).
		Update("verified", true)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
