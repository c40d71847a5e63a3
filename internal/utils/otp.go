package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

// ValidPhoneNumber reports whether the input is exactly ten digits.
func ValidPhoneNumber(phoneNumber string) bool {
	return phonePattern.MatchString(phoneNumber)
}

// GenerateOTPCode draws a uniformly random code from 100000 to 999999.
// Codes with a leading zero are deliberately outside the range.
func GenerateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate random number: %w", err)
	}
	return fmt.Sprintf("%d", n.Int64()+100000), nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
