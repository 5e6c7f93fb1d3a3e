//go:build unit

package room_test

import (
	"strings"
	"testing"

	"roombook/internal/domain/room"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoom(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		r, err := room.NewRoom("Boardroom", 8, room.NewFeatures([]string{"whiteboard"}), nil)
		require.NoError(t, err)
		require.NotNil(t, r)

		assert.Equal(t, "Boardroom", r.Name())
		assert.Equal(t, 8, r.Capacity())
		assert.Nil(t, r.Image())
	})

	t.Run("name validation", func(t *testing.T) {
		cases := []struct {
			name     string
			roomName string
			errIs    error
		}{
			{"empty name", "", room.ErrEmptyName},
			{"whitespace only name", "   ", room.ErrEmptyName},
			{"maximum length name", strings.Repeat("a", room.MaxNameLength), nil},
			{"name exceeds maximum length", strings.Repeat("a", room.MaxNameLength+1), room.ErrEmptyName},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				r, err := room.NewRoom(c.roomName, 4, nil, nil)
				if c.errIs == nil {
					require.NoError(t, err)
					require.NotNil(t, r)
				} else {
					require.Nil(t, r)
					require.ErrorIs(t, err, c.errIs)
				}
			})
		}
	})

	t.Run("name is trimmed", func(t *testing.T) {
		r, err := room.NewRoom("  Huddle  ", 2, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, "Huddle", r.Name())
	})

	t.Run("capacity validation", func(t *testing.T) {
		for _, capacity := range []int{0, -1} {
			_, err := room.NewRoom("Boardroom", capacity, nil, nil)
			assert.ErrorIs(t, err, room.ErrInvalidCapacity)
		}
	})

	t.Run("fits", func(t *testing.T) {
		r, err := room.NewRoom("Boardroom", 8, nil, nil)
		require.NoError(t, err)

		assert.True(t, r.Fits(8))
		assert.True(t, r.Fits(1))
		assert.False(t, r.Fits(9))
	})
}

func TestFeatures(t *testing.T) {
	t.Run("trims and deduplicates", func(t *testing.T) {
		f := room.NewFeatures([]string{" whiteboard ", "projector", "whiteboard", ""})
		assert.Equal(t, room.Features{"whiteboard", "projector"}, f)
	})

	t.Run("round trips through serialization", func(t *testing.T) {
		f := room.NewFeatures([]string{"whiteboard", "projector"})
		assert.Equal(t, f, room.ParseFeatures(f.Serialize()))
	})

	t.Run("contains", func(t *testing.T) {
		f := room.NewFeatures([]string{"whiteboard"})
		assert.True(t, f.Contains("whiteboard"))
		assert.False(t, f.Contains("projector"))
	})
}
