//go:build unit

package booking_test

import (
	"strings"
	"testing"
	"time"

	"roombook/internal/domain/booking"
	"roombook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func TestBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.EventID())
		assert.True(t, actual.IsConfirmed())
		assert.Equal(t, "Planning meeting", actual.Subject())
		assert.Equal(t, "organizer@example.com", actual.Organizer())
		assert.Nil(t, actual.CancelledAt())
	})

	t.Run("subject validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty subject",
				mutate: func(b *builder.BookingBuilder) { b.WithSubject("") },
				errIs:  booking.ErrEmptySubject,
			},
			{
				name:   "whitespace only subject",
				mutate: func(b *builder.BookingBuilder) { b.WithSubject("   ") },
				errIs:  booking.ErrEmptySubject,
			},
			{
				name:   "maximum length subject",
				mutate: func(b *builder.BookingBuilder) { b.WithSubject(strings.Repeat("a", booking.MaxSubjectLength)) },
			},
			{
				name:   "subject exceeds maximum length",
				mutate: func(b *builder.BookingBuilder) { b.WithSubject(strings.Repeat("a", booking.MaxSubjectLength+1)) },
				errIs:  booking.ErrEmptySubject,
			},
		})
	})

	t.Run("organizer validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty organizer",
				mutate: func(b *builder.BookingBuilder) { b.WithOrganizer("") },
				errIs:  booking.ErrEmptyOrganizer,
			},
		})
	})

	t.Run("organizer is normalized to lower case", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().WithOrganizer("  Alice@Example.COM  ").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", actual.Organizer())
	})

	t.Run("event ID uniqueness", func(t *testing.T) {
		b1, err1 := builder.NewBookingBuilder().BuildDomain()
		b2, err2 := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.NotEqual(t, b1.EventID(), b2.EventID())
	})

	t.Run("cancel", func(t *testing.T) {
		now := time.Now()

		t.Run("confirmed booking can be cancelled once", func(t *testing.T) {
			b, err := builder.NewBookingBuilder().BuildDomain()
			require.NoError(t, err)

			require.NoError(t, b.Cancel(now))
			assert.False(t, b.IsConfirmed())
			require.NotNil(t, b.CancelledAt())
			assert.Equal(t, now, *b.CancelledAt())

			assert.ErrorIs(t, b.Cancel(now), booking.ErrAlreadyCancelled)
		})

		t.Run("organizer match is case insensitive", func(t *testing.T) {
			b, err := builder.NewBookingBuilder().WithOrganizer("alice@example.com").BuildDomain()
			require.NoError(t, err)

			require.NoError(t, b.CancelByOrganizer("ALICE@example.COM", now))
			assert.False(t, b.IsConfirmed())
		})

		t.Run("organizer mismatch is rejected", func(t *testing.T) {
			b, err := builder.NewBookingBuilder().WithOrganizer("alice@example.com").BuildDomain()
			require.NoError(t, err)

			assert.ErrorIs(t, b.CancelByOrganizer("mallory@example.com", now), booking.ErrOrganizerMismatch)
			assert.True(t, b.IsConfirmed())
		})
	})

	t.Run("reschedule", func(t *testing.T) {
		newStart := time.Now().Add(48 * time.Hour).Truncate(time.Hour)
		newSlot, err := booking.NewTimeSlot(newStart, newStart.Add(30*time.Minute))
		require.NoError(t, err)
		participants, err := booking.NewParticipants(2, 2, 0)
		require.NoError(t, err)

		t.Run("keeps the event ID and moves the booking", func(t *testing.T) {
			b, err := builder.NewBookingBuilder().BuildDomain()
			require.NoError(t, err)
			originalID := b.EventID()

			err = b.Reschedule(7, "Huddle", "Moved meeting", nil, newSlot, participants, "internal", nil)
			require.NoError(t, err)

			assert.Equal(t, originalID, b.EventID())
			assert.Equal(t, int64(7), b.RoomID())
			assert.Equal(t, "Huddle", b.RoomName())
			assert.Equal(t, "Moved meeting", b.Subject())
			assert.Equal(t, newSlot, b.Slot())
			assert.True(t, b.IsConfirmed())
		})

		t.Run("cancelled booking cannot be rescheduled", func(t *testing.T) {
			b, err := builder.NewBookingBuilder().BuildDomain()
			require.NoError(t, err)
			require.NoError(t, b.Cancel(time.Now()))

			err = b.Reschedule(7, "Huddle", "Moved meeting", nil, newSlot, participants, "internal", nil)
			assert.ErrorIs(t, err, booking.ErrAlreadyCancelled)
		})

		t.Run("empty subject is rejected", func(t *testing.T) {
			b, err := builder.NewBookingBuilder().BuildDomain()
			require.NoError(t, err)

			err = b.Reschedule(7, "Huddle", "  ", nil, newSlot, participants, "internal", nil)
			assert.ErrorIs(t, err, booking.ErrEmptySubject)
		})
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewBookingBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
