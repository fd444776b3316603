// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"github.com/danielhkuo/supplier-dash/models"
)

var (
	ErrInvalidEmail  = errors.New("invalid email address")
	ErrInvalidChoice = errors.New("choice must be 'for' or 'against'")
)

// MaxEmailLen is the longest address accepted (RFC 5321 path limit)
const MaxEmailLen = 254

// NormalizeEmail trims and lower-cases an address, then validates it.
// The normalized form is the vote store key.
func NormalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || len(email) > MaxEmailLen {
		return "", ErrInvalidEmail
	}

	// Reject display-name forms like "Bob <bob@example.com>"
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", ErrInvalidEmail
	}

	at := strings.LastIndexByte(email, '@')
	domain := email[at+1:]
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return "", ErrInvalidEmail
	}

	return email, nil
}

// ValidateChoice checks a vote choice
func ValidateChoice(choice string) error {
	switch choice {
	case models.ChoiceFor, models.ChoiceAgainst:
		return nil
	default:
		return ErrInvalidChoice
	}
}

// GenerateVoteID creates a random identifier for a vote record
func GenerateVoteID() string {
	return uuid.NewString()
}

// HashIP creates a one-way hash of an IP address for privacy
// Includes salt to prevent rainbow table attacks
func HashIP(ip, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(ip))
	sum := h.Sum(nil)
	// Return first 16 hex chars (64 bits) - enough for deduplication
	return hex.EncodeToString(sum[:8])
}
