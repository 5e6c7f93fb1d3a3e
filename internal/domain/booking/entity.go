package booking

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptySubject      = errors.New("subject is required")
	ErrEmptyOrganizer    = errors.New("organizer email is required")
	ErrAlreadyCancelled  = errors.New("booking is already cancelled")
	ErrOrganizerMismatch = errors.New("organizer does not match")
)

const MaxSubjectLength = 200

// Booking is identified by an opaque event ID distinct from the store's
// primary key; the room name is denormalized at booking time.
type Booking struct {
	eventID      uuid.UUID
	roomID       int64
	roomName     string
	subject      string
	description  *string
	organizer    string
	slot         TimeSlot
	participants Participants
	meetingType  string
	attendees    Attendees
	status       Status
	createdAt    time.Time
	updatedAt    time.Time
	cancelledAt  *time.Time
}

func NewBooking(
	roomID int64,
	roomName string,
	subject string,
	description *string,
	organizer string,
	slot TimeSlot,
	participants Participants,
	meetingType string,
	attendees Attendees,
) (*Booking, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" || len(subject) > MaxSubjectLength {
		return nil, ErrEmptySubject
	}

	organizer = strings.ToLower(strings.TrimSpace(organizer))
	if organizer == "" {
		return nil, ErrEmptyOrganizer
	}

	return &Booking{
		eventID:      uuid.New(),
		roomID:       roomID,
		roomName:     roomName,
		subject:      subject,
		description:  description,
		organizer:    organizer,
		slot:         slot,
		participants: participants,
		meetingType:  strings.TrimSpace(meetingType),
		attendees:    attendees,
		status:       StatusConfirmed,
	}, nil
}

func ReconstructBooking(
	eventID uuid.UUID,
	roomID int64,
	roomName string,
	subject string,
	description *string,
	organizer string,
	slot TimeSlot,
	participants Participants,
	meetingType string,
	attendees Attendees,
	status Status,
	createdAt, updatedAt time.Time,
	cancelledAt *time.Time,
) *Booking {
	return &Booking{
		eventID:      eventID,
		roomID:       roomID,
		roomName:     roomName,
		subject:      subject,
		description:  description,
		organizer:    organizer,
		slot:         slot,
		participants: participants,
		meetingType:  meetingType,
		attendees:    attendees,
		status:       status,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
		cancelledAt:  cancelledAt,
	}
}

func (b *Booking) IsConfirmed() bool {
	return b.status == StatusConfirmed
}

// Reschedule mutates room, time and attendee data in place while keeping the
// event ID stable. Only confirmed bookings can be rescheduled.
func (b *Booking) Reschedule(
	roomID int64,
	roomName string,
	subject string,
	description *string,
	slot TimeSlot,
	participants Participants,
	meetingType string,
	attendees Attendees,
) error {
	if !b.IsConfirmed() {
		return ErrAlreadyCancelled
	}

	subject = strings.TrimSpace(subject)
	if subject == "" || len(subject) > MaxSubjectLength {
		return ErrEmptySubject
	}

	b.roomID = roomID
	b.roomName = roomName
	b.subject = subject
	b.description = description
	b.slot = slot
	b.participants = participants
	b.meetingType = strings.TrimSpace(meetingType)
	b.attendees = attendees
	return nil
}

// Cancel is a terminal transition; a cancelled booking is never reactivated.
func (b *Booking) Cancel(now time.Time) error {
	if !b.IsConfirmed() {
		return ErrAlreadyCancelled
	}
	b.status = StatusCancelled
	b.cancelledAt = &now
	return nil
}

// CancelByOrganizer refuses with the same error for an identity mismatch as
// callers see for a missing booking; the two are indistinguishable upstream.
func (b *Booking) CancelByOrganizer(organizer string, now time.Time) error {
	if !strings.EqualFold(strings.TrimSpace(organizer), b.organizer) {
		return ErrOrganizerMismatch
	}
	return b.Cancel(now)
}

func (b *Booking) EventID() uuid.UUID        { return b.eventID }
func (b *Booking) RoomID() int64             { return b.roomID }
func (b *Booking) RoomName() string          { return b.roomName }
func (b *Booking) Subject() string           { return b.subject }
func (b *Booking) Description() *string      { return b.description }
func (b *Booking) Organizer() string         { return b.organizer }
func (b *Booking) Slot() TimeSlot            { return b.slot }
func (b *Booking) Participants() Participants { return b.participants }
func (b *Booking) MeetingType() string       { return b.meetingType }
func (b *Booking) Attendees() Attendees      { return b.attendees }
func (b *Booking) Status() Status            { return b.status }
func (b *Booking) CreatedAt() time.Time      { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time      { return b.updatedAt }
func (b *Booking) CancelledAt() *time.Time   { return b.cancelledAt }
