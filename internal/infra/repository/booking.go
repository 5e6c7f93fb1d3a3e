package repository

import (
	"context"
	"errors"
	"time"

	"roombook/internal/domain/booking"
	"roombook/internal/infra"
	"roombook/internal/infra/db"
	"roombook/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

const bookingColumns = `event_id, room_id, room_name, subject, description, organizer_email,
	start_datetime, end_datetime, total_participants, internal_participants, external_participants,
	meeting_type, attendee_emails, status, created_at, updated_at, cancelled_at`

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO room_bookings (
			event_id, room_id, room_name, subject, description, organizer_email,
			start_datetime, end_datetime, total_participants, internal_participants, external_participants,
			meeting_type, attendee_emails, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, now(), now())`,
		b.EventID(),
		b.RoomID(),
		b.RoomName(),
		b.Subject(),
		pgconv.StringPtrToPgtype(b.Description()),
		b.Organizer(),
		b.Slot().Start(),
		b.Slot().End(),
		b.Participants().Total(),
		b.Participants().Internal(),
		b.Participants().External(),
		b.MeetingType(),
		b.Attendees().Serialize(),
		b.Status().String(),
	)
	if err != nil {
		if isOverlapViolation(err) {
			return infra.WrapRepoErr("booking overlaps an existing one", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

// isOverlapViolation matches the exclusion constraint guarding confirmed
// bookings; it fires when two transactions slip past the overlap check.
func isOverlapViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23P01"
}

func (r *BookingRepository) Update(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	tag, err := tx.Exec(ctx, `
		UPDATE room_bookings SET
			room_id = $2,
			room_name = $3,
			subject = $4,
			description = $5,
			start_datetime = $6,
			end_datetime = $7,
			total_participants = $8,
			internal_participants = $9,
			external_participants = $10,
			meeting_type = $11,
			attendee_emails = $12,
			status = $13,
			cancelled_at = $14,
			updated_at = now()
		WHERE event_id = $1`,
		b.EventID(),
		b.RoomID(),
		b.RoomName(),
		b.Subject(),
		pgconv.StringPtrToPgtype(b.Description()),
		b.Slot().Start(),
		b.Slot().End(),
		b.Participants().Total(),
		b.Participants().Internal(),
		b.Participants().External(),
		b.MeetingType(),
		b.Attendees().Serialize(),
		b.Status().String(),
		pgconv.TimePtrToPgtype(b.CancelledAt()),
	)
	if err != nil {
		if isOverlapViolation(err) {
			return infra.WrapRepoErr("booking overlaps an existing one", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) FindByEventID(ctx context.Context, tx db.DBTX, eventID uuid.UUID) (*booking.Booking, error) {
	row := tx.QueryRow(ctx,
		`SELECT `+bookingColumns+` FROM room_bookings WHERE event_id = $1`, eventID)
	return scanBooking(row)
}

// FindByEventIDForUpdate locks the row so concurrent cancel attempts
// serialize on it.
func (r *BookingRepository) FindByEventIDForUpdate(ctx context.Context, tx db.DBTX, eventID uuid.UUID) (*booking.Booking, error) {
	row := tx.QueryRow(ctx,
		`SELECT `+bookingColumns+` FROM room_bookings WHERE event_id = $1 FOR UPDATE`, eventID)
	return scanBooking(row)
}

func (r *BookingRepository) HasOverlap(ctx context.Context, tx db.DBTX, roomID int64, start, end time.Time, excludeEventID *uuid.UUID) (bool, error) {
	var exclude pgtype.UUID
	if excludeEventID != nil {
		exclude = pgconv.UUIDToPgtype(*excludeEventID)
	}

	var overlap bool
	err := tx.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM room_bookings
			WHERE room_id = $1
			  AND status = 'confirmed'
			  AND start_datetime < $3
			  AND end_datetime > $2
			  AND ($4::uuid IS NULL OR event_id <> $4)
		)`,
		roomID, start, end, exclude,
	).Scan(&overlap)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check booking overlap", err)
	}
	return overlap, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*booking.Booking, error) {
	var (
		eventID     uuid.UUID
		roomID      int64
		roomName    string
		subject     string
		description pgtype.Text
		organizer   string
		start       time.Time
		end         time.Time
		total       int
		internal    int
		external    int
		meetingType string
		attendees   string
		status      string
		createdAt   time.Time
		updatedAt   time.Time
		cancelledAt pgtype.Timestamptz
	)

	err := row.Scan(
		&eventID, &roomID, &roomName, &subject, &description, &organizer,
		&start, &end, &total, &internal, &external,
		&meetingType, &attendees, &status, &createdAt, &updatedAt, &cancelledAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}

	slot, err := booking.NewTimeSlot(start, end)
	if err != nil {
		return nil, infra.WrapRepoErr("stored booking has invalid time range", err)
	}
	participants, err := booking.NewParticipants(total, internal, external)
	if err != nil {
		return nil, infra.WrapRepoErr("stored booking has invalid participants", err)
	}

	return booking.ReconstructBooking(
		eventID,
		roomID,
		roomName,
		subject,
		pgconv.StringPtrFromPgtype(description),
		organizer,
		slot,
		participants,
		meetingType,
		booking.ParseAttendees(attendees),
		booking.Status(status),
		createdAt,
		updatedAt,
		pgconv.TimePtrFromPgtype(cancelledAt),
	), nil
}
