package readstore

import (
	"context"
	"time"

	"roombook/internal/domain/booking"
	"roombook/internal/infra"
	"roombook/internal/infra/db"
	"roombook/internal/pkg/pgconv"
	"roombook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(db db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: db}
}

func (s *BookingReadStore) FindByEventID(ctx context.Context, eventID uuid.UUID) (*queries.BookingView, error) {
	row := s.db.QueryRow(ctx, `
		SELECT event_id, room_id, room_name, subject, description, organizer_email,
		       start_datetime, end_datetime, total_participants, internal_participants, external_participants,
		       meeting_type, attendee_emails, status, created_at, updated_at, cancelled_at
		FROM room_bookings
		WHERE event_id = $1`,
		eventID,
	)

	view, err := scanBookingView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by event ID", err)
	}
	return view, nil
}

func (s *BookingReadStore) FindByRoomAndDate(ctx context.Context, roomID int64, dayStart, dayEnd time.Time) ([]*queries.BookingListItem, error) {
	rows, err := s.db.Query(ctx, listItemSelect+`
		WHERE room_id = $1
		  AND start_datetime < $3
		  AND end_datetime > $2
		ORDER BY start_datetime`,
		roomID, dayStart, dayEnd,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by room and date", err)
	}
	return collectListItems(rows)
}

func (s *BookingReadStore) FindByOrganizer(ctx context.Context, email string) ([]*queries.BookingListItem, error) {
	rows, err := s.db.Query(ctx, listItemSelect+`
		WHERE organizer_email = $1
		ORDER BY start_datetime DESC`,
		email,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by organizer", err)
	}
	return collectListItems(rows)
}

func (s *BookingReadStore) FindAll(ctx context.Context) ([]*queries.BookingListItem, error) {
	rows, err := s.db.Query(ctx, listItemSelect+` ORDER BY start_datetime DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	return collectListItems(rows)
}

const listItemSelect = `
	SELECT event_id, room_id, room_name, subject, organizer_email,
	       start_datetime, end_datetime, total_participants, status
	FROM room_bookings`

func collectListItems(rows pgx.Rows) ([]*queries.BookingListItem, error) {
	defer rows.Close()

	var result []*queries.BookingListItem
	for rows.Next() {
		item := &queries.BookingListItem{}
		err := rows.Scan(
			&item.EventID, &item.RoomID, &item.RoomName, &item.Subject, &item.OrganizerEmail,
			&item.StartTime, &item.EndTime, &item.TotalParticipants, &item.Status,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return result, nil
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var (
		view        queries.BookingView
		description pgtype.Text
		attendees   string
		cancelledAt pgtype.Timestamptz
	)

	err := row.Scan(
		&view.EventID, &view.RoomID, &view.RoomName, &view.Subject, &description, &view.OrganizerEmail,
		&view.StartTime, &view.EndTime, &view.TotalParticipants, &view.InternalParticipants, &view.ExternalParticipants,
		&view.MeetingType, &attendees, &view.Status, &view.CreatedAt, &view.UpdatedAt, &cancelledAt,
	)
	if err != nil {
		return nil, err
	}

	view.Description = pgconv.StringPtrFromPgtype(description)
	view.Attendees = booking.ParseAttendees(attendees)
	view.CancelledAt = pgconv.TimePtrFromPgtype(cancelledAt)
	return &view, nil
}
