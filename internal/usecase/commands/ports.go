package commands

import (
	"context"
	"time"

	"roombook/internal/domain/booking"
	"roombook/internal/domain/otp"
	"roombook/internal/domain/room"
	"roombook/internal/infra/db"

	"github.com/google/uuid"
)

// Write-side snapshot so commands validate against room data without
// depending on read-side view types.
type RoomSnapshot struct {
	ID       int64
	Name     string
	Capacity int
}

type Principal struct {
	Email string
	Role  string
}

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error
	Update(ctx context.Context, tx db.DBTX, b *booking.Booking) error
	FindByEventID(ctx context.Context, tx db.DBTX, eventID uuid.UUID) (*booking.Booking, error)
	FindByEventIDForUpdate(ctx context.Context, tx db.DBTX, eventID uuid.UUID) (*booking.Booking, error)
	// HasOverlap reports whether any confirmed booking in the room satisfies
	// existing.start < end AND existing.end > start, optionally excluding one
	// event (the booking being rescheduled).
	HasOverlap(ctx context.Context, tx db.DBTX, roomID int64, start, end time.Time, excludeEventID *uuid.UUID) (bool, error)
}

type RoomRepository interface {
	Create(ctx context.Context, tx db.DBTX, r *room.Room) (int64, error)
	Update(ctx context.Context, tx db.DBTX, r *room.Room) error
	Delete(ctx context.Context, tx db.DBTX, id int64) error
	FindByID(ctx context.Context, tx db.DBTX, id int64) (*RoomSnapshot, error)
	FindImageByID(ctx context.Context, tx db.DBTX, id int64) (*string, error)
}

type OtpRepository interface {
	// Upsert overwrites any prior record for the email, resetting the
	// verified flag.
	Upsert(ctx context.Context, tx db.DBTX, record *otp.Record) error
	FindLatestByEmail(ctx context.Context, tx db.DBTX, email string) (*otp.Record, error)
	MarkVerified(ctx context.Context, tx db.DBTX, email, code string) error
	DeleteExpired(ctx context.Context, tx db.DBTX, now time.Time) (int64, error)
}

// NotificationGateway sends transactional email. Failures are surfaced to
// callers, never retried, and never reverse a committed state change.
type NotificationGateway interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// ImageStore holds uploaded room images; the registry deletes files only
// after the corresponding row change has committed.
type ImageStore interface {
	Delete(name string) error
}

// CredentialVerifier turns credentials into a principal or rejects them.
// Implementations must not bake in a fixed secret.
type CredentialVerifier interface {
	Verify(ctx context.Context, email, password string) (*Principal, error)
}
