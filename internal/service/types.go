package service

import (
	"context"
	"io"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// SMSSender delivers an OTP code to a phone number. The concrete
// implementation is the Twilio adapter; tests substitute their own.
type SMSSender interface {
	SendOTP(ctx context.Context, phoneNumber string, code string) error
}

// BlobStore persists uploaded binaries and returns a retrievable URL.
type BlobStore interface {
	Put(ctx context.Context, key string, contentType string, body io.Reader) (string, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash string, password string) bool
}

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

type BcryptPasswordHasher struct {
	Cost int
}

func (h BcryptPasswordHasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func (h BcryptPasswordHasher) Verify(hash string, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
