package service

import "errors"

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrInvalidPhoneNumber   = errors.New("phone number must be exactly 10 digits")
	ErrPhoneAlreadyVerified = errors.New("phone number already verified by another account")
	ErrInvalidOTP           = errors.New("invalid otp")
	ErrOTPExpired           = errors.New("otp expired")
	ErrOTPDeliveryFailed    = errors.New("failed to deliver otp")
	ErrUserNotFound         = errors.New("user not found")
	ErrProfileNotFound      = errors.New("verification profile not found")
	ErrBikeNotFound         = errors.New("bike not found")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrNotOwner             = errors.New("caller does not own this bike")
	ErrInvalidTransition    = errors.New("invalid booking status transition")
	ErrNumberPlateTaken     = errors.New("number plate already registered")
	ErrUsernameTaken        = errors.New("username already taken")
	ErrEmailTaken           = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid credentials")
)
