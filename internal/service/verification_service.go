package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"gowheels/internal/entity"
	"gowheels/internal/repository"
	"gowheels/internal/utils"

	"github.com/google/uuid"
)

// VerificationService implements the phone OTP and identity document
// workflow: codes are issued against a phone number, confirmed within their
// validity window, and a successful confirmation may bind the number to a
// user's verification profile.
type VerificationService struct {
	profiles   repository.UserProfileRepository
	challenges repository.OTPChallengeRepository
	auditLogs  repository.AuditLogRepository

	sms   SMSSender
	blobs BlobStore
	clock Clock
}

func NewVerificationService(
	profiles repository.UserProfileRepository,
	challenges repository.OTPChallengeRepository,
	auditLogs repository.AuditLogRepository,
	sms SMSSender,
	blobs BlobStore,
	clock Clock,
) *VerificationService {
	return &VerificationService{
		profiles:   profiles,
		challenges: challenges,
		auditLogs:  auditLogs,
		sms:        sms,
		blobs:      blobs,
		clock:      clock,
	}
}

// SendOTP issues a fresh challenge for the phone number and hands the code to
// the notifier. The challenge row survives a delivery failure, so a retry
// produces duplicates; VerifyOTP tolerates that by matching the latest one.
func (s *VerificationService) SendOTP(ctx context.Context, phoneNumber string) error {
	if !utils.ValidPhoneNumber(phoneNumber) {
		return ErrInvalidPhoneNumber
	}

	holder, err := s.profiles.FindVerifiedByPhone(ctx, phoneNumber)
	if err != nil {
		return err
	}
	if holder != nil {
		return ErrPhoneAlreadyVerified
	}

	code, err := utils.GenerateOTPCode()
	if err != nil {
		return err
	}

	challenge := &entity.OTPChallenge{
		PhoneNumber: phoneNumber,
		Code:        code,
	}
	if err := s.challenges.Create(ctx, challenge); err != nil {
		return err
	}

	if err := s.sms.SendOTP(ctx, phoneNumber, code); err != nil {
		return fmt.Errorf("%w: %w", ErrOTPDeliveryFailed, err)
	}
	return nil
}

// VerifyOTP confirms a pending challenge. When userID is non-nil the phone
// number is additionally claimed on that user's verification profile; a nil
// userID verifies the challenge without binding it to any account.
func (s *VerificationService) VerifyOTP(ctx context.Context, phoneNumber string, code string, userID *uuid.UUID) error {
	if !utils.ValidPhoneNumber(phoneNumber) {
		return ErrInvalidPhoneNumber
	}
	if code == "" {
		return ErrInvalidInput
	}

	challenge, err := s.challenges.FindLatestUnverified(ctx, phoneNumber, code)
	if err != nil {
		return err
	}
	if challenge == nil {
		return ErrInvalidOTP
	}
	if s.clock.Now().After(challenge.ExpiresAt()) {
		return ErrOTPExpired
	}

	flipped, err := s.challenges.MarkVerified(ctx, challenge.ID)
	if err != nil {
		return err
	}
	if !flipped {
		// Lost the race against a concurrent confirmation.
		return ErrInvalidOTP
	}

	if userID == nil {
		return nil
	}

	if err := s.profiles.ClaimPhone(ctx, *userID, phoneNumber); err != nil {
		if errors.Is(err, repository.ErrPhoneTaken) {
			return ErrPhoneAlreadyVerified
		}
		return err
	}

	logAudit(ctx, s.auditLogs, userID, entity.PhoneVerified, map[string]any{"phone_number": phoneNumber})
	return nil
}

// UploadAadhaar stores the identity document and resets the review flag.
func (s *VerificationService) UploadAadhaar(ctx context.Context, userID uuid.UUID, filename string, contentType string, body io.Reader) (string, error) {
	if filename == "" {
		return "", ErrInvalidInput
	}

	key := fmt.Sprintf("documents/aadhaar/%s/%s", userID, filename)
	url, err := s.blobs.Put(ctx, key, contentType, body)
	if err != nil {
		return "", err
	}

	if err := s.profiles.RecordDocumentUpload(ctx, userID, url); err != nil {
		return "", err
	}

	logAudit(ctx, s.auditLogs, &userID, entity.DocumentUploaded, map[string]any{"url": url})
	return url, nil
}

func (s *VerificationService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error) {
	profile, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

// ReviewDocument is the administrator path; the profile owner can never set
// this flag on their own profile.
func (s *VerificationService) ReviewDocument(ctx context.Context, adminID uuid.UUID, userID uuid.UUID, verified bool) error {
	profile, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if profile == nil {
		return ErrProfileNotFound
	}

	if err := s.profiles.SetDocumentVerified(ctx, userID, verified); err != nil {
		return err
	}

	logAudit(ctx, s.auditLogs, &adminID, entity.DocumentReviewed, map[string]any{
		"subject_user_id": userID.String(),
		"verified":        verified,
	})
	return nil
}
