//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"roombook/internal/infra"
	"roombook/internal/pkg/clock"
	"roombook/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOtpReadStore struct {
	record *queries.OtpRecordView
	err    error
}

func (s *stubOtpReadStore) FindByEmail(_ context.Context, _ string) (*queries.OtpRecordView, error) {
	return s.record, s.err
}

func TestOtpStatus(t *testing.T) {
	expiresAt := time.Date(2026, 3, 10, 9, 5, 0, 0, time.UTC)

	verifiedRecord := func() *queries.OtpRecordView {
		return &queries.OtpRecordView{
			Email:     "user@example.com",
			ExpiresAt: expiresAt,
			CreatedAt: expiresAt.Add(-5 * time.Minute),
			Verified:  true,
		}
	}

	t.Run("verified before expiry", func(t *testing.T) {
		q := queries.NewOtpQueries(&stubOtpReadStore{record: verifiedRecord()}, clock.NewMockClock(expiresAt.Add(-time.Minute)))

		status, err := q.Status(context.Background(), "User@Example.com ")
		require.NoError(t, err)
		assert.Equal(t, "user@example.com", status.Email)
		assert.True(t, status.Verified)
	})

	t.Run("still verified at the exact expiry instant", func(t *testing.T) {
		q := queries.NewOtpQueries(&stubOtpReadStore{record: verifiedRecord()}, clock.NewMockClock(expiresAt))

		status, err := q.Status(context.Background(), "user@example.com")
		require.NoError(t, err)
		assert.True(t, status.Verified)
	})

	t.Run("unverified past expiry", func(t *testing.T) {
		q := queries.NewOtpQueries(&stubOtpReadStore{record: verifiedRecord()}, clock.NewMockClock(expiresAt.Add(time.Second)))

		status, err := q.Status(context.Background(), "user@example.com")
		require.NoError(t, err)
		assert.False(t, status.Verified)
	})

	t.Run("unverified record", func(t *testing.T) {
		record := verifiedRecord()
		record.Verified = false
		q := queries.NewOtpQueries(&stubOtpReadStore{record: record}, clock.NewMockClock(expiresAt.Add(-time.Minute)))

		status, err := q.Status(context.Background(), "user@example.com")
		require.NoError(t, err)
		assert.False(t, status.Verified)
	})

	t.Run("missing record is unverified, not an error", func(t *testing.T) {
		store := &stubOtpReadStore{err: infra.WrapRepoErr("otp record not found", nil, infra.KindNotFound)}
		q := queries.NewOtpQueries(store, clock.NewMockClock(expiresAt))

		status, err := q.Status(context.Background(), "nobody@example.com")
		require.NoError(t, err)
		assert.False(t, status.Verified)
	})
}
