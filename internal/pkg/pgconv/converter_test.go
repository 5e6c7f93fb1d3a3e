//go:build unit

package pgconv_test

import (
	"testing"
	"time"

	"roombook/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
)

func TestStringPtrConversion(t *testing.T) {
	t.Run("nil pointer encodes as SQL NULL", func(t *testing.T) {
		pt := pgconv.StringPtrToPgtype(nil)
		assert.False(t, pt.Valid)
		assert.Nil(t, pgconv.StringPtrFromPgtype(pt))
	})

	t.Run("empty string stays an empty string, not NULL", func(t *testing.T) {
		s := ""
		pt := pgconv.StringPtrToPgtype(&s)
		assert.True(t, pt.Valid)

		back := pgconv.StringPtrFromPgtype(pt)
		assert.NotNil(t, back)
		assert.Equal(t, "", *back)
	})

	t.Run("round trip", func(t *testing.T) {
		s := "quarterly planning"
		back := pgconv.StringPtrFromPgtype(pgconv.StringPtrToPgtype(&s))
		assert.Equal(t, &s, back)
	})
}

func TestTimePtrConversion(t *testing.T) {
	t.Run("nil pointer encodes as SQL NULL", func(t *testing.T) {
		pt := pgconv.TimePtrToPgtype(nil)
		assert.False(t, pt.Valid)
		assert.Nil(t, pgconv.TimePtrFromPgtype(pt))
	})

	t.Run("round trip", func(t *testing.T) {
		ts := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
		back := pgconv.TimePtrFromPgtype(pgconv.TimePtrToPgtype(&ts))
		assert.Equal(t, &ts, back)
	})
}

func TestUUIDConversion(t *testing.T) {
	id := uuid.New()
	pu := pgconv.UUIDToPgtype(id)
	assert.True(t, pu.Valid)
	assert.Equal(t, &id, pgconv.UUIDPtrFromPgtype(pu))

	assert.Nil(t, pgconv.UUIDPtrFromPgtype(pgtype.UUID{}))
}
