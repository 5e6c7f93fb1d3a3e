//go:build unit

package otp_test

import (
	"testing"
	"time"

	"roombook/internal/domain/otp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord(t *testing.T) {
	issuedAt := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	ttl := 5 * time.Minute

	t.Run("basic success case", func(t *testing.T) {
		r, err := otp.NewRecord("User@Example.com", "042419", issuedAt, ttl)
		require.NoError(t, err)

		assert.Equal(t, "user@example.com", r.Email())
		assert.Equal(t, "042419", r.Code())
		assert.Equal(t, issuedAt.Add(ttl), r.ExpiresAt())
		assert.False(t, r.Verified())
	})

	t.Run("email is required", func(t *testing.T) {
		_, err := otp.NewRecord("  ", "123456", issuedAt, ttl)
		assert.ErrorIs(t, err, otp.ErrEmptyEmail)
	})

	t.Run("code must be digits", func(t *testing.T) {
		for _, code := range []string{"", "12a456", "12 456", "12345x"} {
			_, err := otp.NewRecord("user@example.com", code, issuedAt, ttl)
			assert.ErrorIs(t, err, otp.ErrInvalidCode, "code %q", code)
		}
	})

	t.Run("matches", func(t *testing.T) {
		r, err := otp.NewRecord("user@example.com", "042419", issuedAt, ttl)
		require.NoError(t, err)

		assert.True(t, r.Matches("042419", issuedAt))
		assert.True(t, r.Matches("042419", issuedAt.Add(ttl)))

		assert.False(t, r.Matches("042418", issuedAt), "wrong code")
		assert.False(t, r.Matches("042419", issuedAt.Add(ttl+time.Second)), "expired code")
	})

	t.Run("code is single-use", func(t *testing.T) {
		r, err := otp.NewRecord("user@example.com", "042419", issuedAt, ttl)
		require.NoError(t, err)

		require.True(t, r.Matches("042419", issuedAt))
		r.MarkVerified()
		assert.False(t, r.Matches("042419", issuedAt))
	})

	t.Run("usable only when verified and unexpired", func(t *testing.T) {
		r, err := otp.NewRecord("user@example.com", "042419", issuedAt, ttl)
		require.NoError(t, err)

		assert.False(t, r.IsUsable(issuedAt))

		r.MarkVerified()
		assert.True(t, r.IsUsable(issuedAt))
		assert.False(t, r.IsUsable(issuedAt.Add(ttl+time.Second)))
	})
}
