package repository

import (
	"context"
	"errors"

	"gowheels/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrPhoneTaken is returned by ClaimPhone when another profile already holds
// the number as phone-verified.
var ErrPhoneTaken = errors.New("phone number already verified by another user")

type UserProfileRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error)
	// GetOrCreate returns the user's profile, creating a blank one if absent.
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error)
	// ClaimPhone atomically checks that no other profile holds phoneNumber as
	// verified, then records it on the user's profile with phone_verified=true.
	ClaimPhone(ctx context.Context, userID uuid.UUID, phoneNumber string) error
	// FindVerifiedByPhone returns the profile that holds phoneNumber as
	// verified, if any.
	FindVerifiedByPhone(ctx context.Context, phoneNumber string) (*entity.UserProfile, error)
	// RecordDocumentUpload stores the document URL and resets the verified
	// flag; every new upload requires re-review.
	RecordDocumentUpload(ctx context.Context, userID uuid.UUID, documentURL string) error
	SetDocumentVerified(ctx context.Context, userID uuid.UUID, verified bool) error
}

type userProfileRepository struct {
	db *gorm.DB
}

func NewUserProfileRepository(db *gorm.DB) UserProfileRepository {
	return &userProfileRepository{db: db}
}

func (r *userProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error) {
	var profile entity.UserProfile
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profile).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &profile, err
}

func (r *userProfileRepository) GetOrCreate(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error) {
	profile, err := r.FindByUserID(ctx, userID)
	if err != nil || profile != nil {
		return profile, err
	}
	profile = &entity.UserProfile{UserID: userID}
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		// A concurrent first write for the same user hit the user_id unique
		// index; the row exists now, so read it.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return r.FindByUserID(ctx, userID)
		}
		return nil, err
	}
	return profile, nil
}

func (r *userProfileRepository) ClaimPhone(ctx context.Context, userID uuid.UUID, phoneNumber string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var holder entity.UserProfile
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("phone_number = ? AND phone_verified = true AND user_id <> ?", phoneNumber, userID).
			First(&holder).Error
		if err == nil {
			return ErrPhoneTaken
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		var profile entity.UserProfile
		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", userID).
			First(&profile).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(&entity.UserProfile{
				UserID:        userID,
				PhoneNumber:   phoneNumber,
				PhoneVerified: true,
			}).Error
		}
		if err != nil {
			return err
		}

		profile.PhoneNumber = phoneNumber
		profile.PhoneVerified = true
		return tx.Save(&profile).Error
	})

	// The FOR UPDATE scan locks nothing when no verified holder exists yet, so
	// of two concurrent claims for a fresh number both reach the write. The
	// partial unique index on (phone_number) WHERE phone_verified rejects the
	// second commit; surface that as the same conflict.
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrPhoneTaken
	}
	return err
}

func (r *userProfileRepository) FindVerifiedByPhone(ctx context.Context, phoneNumber string) (*entity.UserProfile, error) {
	var profile entity.UserProfile
	err := r.db.WithContext(ctx).
		Where("phone_number = ? AND phone_verified = true", phoneNumber).
		First(&profile).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &profile, err
}

func (r *userProfileRepository) RecordDocumentUpload(ctx context.Context, userID uuid.UUID, documentURL string) error {
	profile, err := r.GetOrCreate(ctx, userID)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Model(&entity.UserProfile{}).
		Where("id = ?", profile.ID).
		Updates(map[string]any{
			"aadhaar_card_url": documentURL,
			"aadhaar_verified": false,
		}).Error
}

func (r *userProfileRepository) SetDocumentVerified(ctx context.Context, userID uuid.UUID, verified bool) error {
	return r.db.WithContext(ctx).
		Model(&entity.UserProfile{}).
		Where("user_id = ?", userID).
		Update("aadhaar_verified", verified).
		Error
}
