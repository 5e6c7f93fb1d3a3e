//go:build unit

package booking_test

import (
	"testing"
	"time"

	"roombook/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeSlot(t *testing.T) {
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	mustSlot := func(t *testing.T, start, end time.Time) booking.TimeSlot {
		t.Helper()
		slot, err := booking.NewTimeSlot(start, end)
		require.NoError(t, err)
		return slot
	}

	t.Run("start must be before end", func(t *testing.T) {
		_, err := booking.NewTimeSlot(base, base)
		assert.Error(t, err)

		_, err = booking.NewTimeSlot(base.Add(time.Hour), base)
		assert.Error(t, err)
	})

	t.Run("overlap detection", func(t *testing.T) {
		slot := mustSlot(t, base, base.Add(time.Hour))

		cases := []struct {
			name    string
			other   booking.TimeSlot
			overlap bool
		}{
			{"identical slot", mustSlot(t, base, base.Add(time.Hour)), true},
			{"contained slot", mustSlot(t, base.Add(15*time.Minute), base.Add(45*time.Minute)), true},
			{"containing slot", mustSlot(t, base.Add(-time.Hour), base.Add(2*time.Hour)), true},
			{"overlapping start", mustSlot(t, base.Add(-30*time.Minute), base.Add(30*time.Minute)), true},
			{"overlapping end", mustSlot(t, base.Add(30*time.Minute), base.Add(90*time.Minute)), true},
			{"abutting before", mustSlot(t, base.Add(-time.Hour), base), false},
			{"abutting after", mustSlot(t, base.Add(time.Hour), base.Add(2*time.Hour)), false},
			{"disjoint before", mustSlot(t, base.Add(-2*time.Hour), base.Add(-time.Hour)), false},
			{"disjoint after", mustSlot(t, base.Add(2*time.Hour), base.Add(3*time.Hour)), false},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				assert.Equal(t, c.overlap, slot.Overlaps(c.other))
				// Overlap is symmetric
				assert.Equal(t, c.overlap, c.other.Overlaps(slot))
			})
		}
	})

	t.Run("duration", func(t *testing.T) {
		slot := mustSlot(t, base, base.Add(90*time.Minute))
		assert.Equal(t, 90*time.Minute, slot.Duration())
	})
}

func TestParticipants(t *testing.T) {
	t.Run("total must be positive", func(t *testing.T) {
		_, err := booking.NewParticipants(0, 0, 0)
		assert.Error(t, err)

		_, err = booking.NewParticipants(-1, 0, 0)
		assert.Error(t, err)
	})

	t.Run("breakdown cannot be negative", func(t *testing.T) {
		_, err := booking.NewParticipants(3, -1, 0)
		assert.Error(t, err)

		_, err = booking.NewParticipants(3, 0, -1)
		assert.Error(t, err)
	})

	t.Run("valid counts", func(t *testing.T) {
		p, err := booking.NewParticipants(5, 3, 2)
		require.NoError(t, err)
		assert.Equal(t, 5, p.Total())
		assert.Equal(t, 3, p.Internal())
		assert.Equal(t, 2, p.External())
	})
}

func TestAttendees(t *testing.T) {
	t.Run("normalizes, trims and deduplicates", func(t *testing.T) {
		a := booking.NewAttendees([]string{" Alice@Example.com ", "bob@example.com", "alice@example.com", "", "  "})
		assert.Equal(t, booking.Attendees{"alice@example.com", "bob@example.com"}, a)
	})

	t.Run("round trips through serialization", func(t *testing.T) {
		a := booking.NewAttendees([]string{"a@example.com", "b@example.com"})
		assert.Equal(t, a, booking.ParseAttendees(a.Serialize()))
	})

	t.Run("empty serialization parses to empty list", func(t *testing.T) {
		assert.Empty(t, booking.ParseAttendees(""))
	})
}
