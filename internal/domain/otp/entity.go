package otp

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyEmail  = errors.New("email is required")
	ErrInvalidCode = errors.New("code must be numeric digits")
)

// Record is the single active passcode for an email address; issuing a new
// code overwrites the previous record.
type Record struct {
	email     string
	code      string
	expiresAt time.Time
	createdAt time.Time
	verified  bool
}

func NewRecord(email, code string, issuedAt time.Time, ttl time.Duration) (*Record, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, ErrEmptyEmail
	}
	if !isDigits(code) {
		return nil, ErrInvalidCode
	}

	return &Record{
		email:     email,
		code:      code,
		expiresAt: issuedAt.Add(ttl),
		createdAt: issuedAt,
		verified:  false,
	}, nil
}

func ReconstructRecord(email, code string, expiresAt, createdAt time.Time, verified bool) *Record {
	return &Record{
		email:     email,
		code:      code,
		expiresAt: expiresAt,
		createdAt: createdAt,
		verified:  verified,
	}
}

func (r *Record) IsExpired(now time.Time) bool {
	return now.After(r.expiresAt)
}

// Matches reports whether the supplied code is accepted at the given time.
// A code is single-use: once verified it no longer matches. Wrong, used and
// expired codes are indistinguishable to callers.
func (r *Record) Matches(code string, now time.Time) bool {
	return r.code == code && !r.verified && !r.IsExpired(now)
}

func (r *Record) MarkVerified() {
	r.verified = true
}

// IsUsable reports whether this record proves a verified, still-valid email.
func (r *Record) IsUsable(now time.Time) bool {
	return r.verified && !r.IsExpired(now)
}

func (r *Record) Email() string        { return r.email }
func (r *Record) Code() string         { return r.code }
func (r *Record) ExpiresAt() time.Time { return r.expiresAt }
func (r *Record) CreatedAt() time.Time { return r.createdAt }
func (r *Record) Verified() bool       { return r.verified }

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
