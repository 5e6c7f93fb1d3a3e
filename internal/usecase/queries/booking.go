package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	EventID              uuid.UUID  `json:"event_id"`
	RoomID               int64      `json:"room_id"`
	RoomName             string     `json:"room_name"`
	Subject              string     `json:"subject"`
	Description          *string    `json:"description,omitempty"`
	OrganizerEmail       string     `json:"organizer_email"`
	StartTime            time.Time  `json:"start_time"`
	EndTime              time.Time  `json:"end_time"`
	TotalParticipants    int        `json:"total_participants"`
	InternalParticipants int        `json:"internal_participants"`
	ExternalParticipants int        `json:"external_participants"`
	MeetingType          string     `json:"meeting_type"`
	Attendees            []string   `json:"attendees"`
	Status               string     `json:"status"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
	CancelledAt          *time.Time `json:"cancelled_at,omitempty"`
}

type BookingListItem struct {
	EventID           uuid.UUID `json:"event_id"`
	RoomID            int64     `json:"room_id"`
	RoomName          string    `json:"room_name"`
	Subject           string    `json:"subject"`
	OrganizerEmail    string    `json:"organizer_email"`
	StartTime         time.Time `json:"start_time"`
	EndTime           time.Time `json:"end_time"`
	TotalParticipants int       `json:"total_participants"`
	Status            string    `json:"status"`
}

type BookingQueries interface {
	GetByEventID(ctx context.Context, eventID uuid.UUID) (*BookingView, error)
	ListByRoomAndDate(ctx context.Context, roomID int64, date time.Time) ([]*BookingListItem, error)
	ListByOrganizer(ctx context.Context, email string) ([]*BookingListItem, error)
	ListAll(ctx context.Context) ([]*BookingListItem, error)
}

type BookingReadStore interface {
	FindByEventID(ctx context.Context, eventID uuid.UUID) (*BookingView, error)
	FindByRoomAndDate(ctx context.Context, roomID int64, dayStart, dayEnd time.Time) ([]*BookingListItem, error)
	FindByOrganizer(ctx context.Context, email string) ([]*BookingListItem, error)
	FindAll(ctx context.Context) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByEventID(ctx context.Context, eventID uuid.UUID) (*BookingView, error) {
	return q.store.FindByEventID(ctx, eventID)
}

func (q *bookingQueriesImpl) ListByRoomAndDate(ctx context.Context, roomID int64, date time.Time) ([]*BookingListItem, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)
	return q.store.FindByRoomAndDate(ctx, roomID, dayStart, dayEnd)
}

func (q *bookingQueriesImpl) ListByOrganizer(ctx context.Context, email string) ([]*BookingListItem, error) {
	return q.store.FindByOrganizer(ctx, email)
}

func (q *bookingQueriesImpl) ListAll(ctx context.Context) ([]*BookingListItem, error) {
	return q.store.FindAll(ctx)
}
