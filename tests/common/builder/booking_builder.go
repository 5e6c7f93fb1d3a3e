//go:build unit || e2e

package builder

import (
	"time"

	dombooking "roombook/internal/domain/booking"
	reqdto "roombook/internal/handler/dto/request"
	"roombook/internal/usecase/commands"
	"roombook/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	EventID              uuid.UUID
	RoomID               int64
	RoomName             string
	Subject              string
	Description          *string
	OrganizerEmail       string
	StartTime            time.Time
	EndTime              time.Time
	TotalParticipants    int
	InternalParticipants int
	ExternalParticipants int
	MeetingType          string
	Attendees            []string
	Status               string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	start := now.Add(24 * time.Hour).Truncate(time.Hour)
	desc := "Quarterly planning session"
	return &BookingBuilder{
		EventID:              uuid.New(),
		RoomID:               1,
		RoomName:             "Boardroom",
		Subject:              "Planning meeting",
		Description:          &desc,
		OrganizerEmail:       "organizer@example.com",
		StartTime:            start,
		EndTime:              start.Add(time.Hour),
		TotalParticipants:    4,
		InternalParticipants: 3,
		ExternalParticipants: 1,
		MeetingType:          "internal",
		Attendees:            []string{"a@example.com", "b@example.com"},
		Status:               "confirmed",
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	slot, err := dombooking.NewTimeSlot(b.StartTime, b.EndTime)
	if err != nil {
		return nil, err
	}
	participants, err := dombooking.NewParticipants(b.TotalParticipants, b.InternalParticipants, b.ExternalParticipants)
	if err != nil {
		return nil, err
	}
	return dombooking.NewBooking(
		b.RoomID, b.RoomName, b.Subject, b.Description, b.OrganizerEmail,
		slot, participants, b.MeetingType, dombooking.NewAttendees(b.Attendees),
	)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		RoomID:               b.RoomID,
		Subject:              b.Subject,
		Description:          b.Description,
		OrganizerEmail:       b.OrganizerEmail,
		StartTime:            b.StartTime,
		EndTime:              b.EndTime,
		TotalParticipants:    b.TotalParticipants,
		InternalParticipants: b.InternalParticipants,
		ExternalParticipants: b.ExternalParticipants,
		MeetingType:          b.MeetingType,
		Attendees:            b.Attendees,
	}
}

func (b *BookingBuilder) BuildRescheduleRequestDTO() reqdto.RescheduleBookingRequest {
	return reqdto.RescheduleBookingRequest{
		RoomID:               b.RoomID,
		Subject:              b.Subject,
		Description:          b.Description,
		StartTime:            b.StartTime,
		EndTime:              b.EndTime,
		TotalParticipants:    b.TotalParticipants,
		InternalParticipants: b.InternalParticipants,
		ExternalParticipants: b.ExternalParticipants,
		MeetingType:          b.MeetingType,
		Attendees:            b.Attendees,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		EventID:              b.EventID,
		RoomID:               b.RoomID,
		RoomName:             b.RoomName,
		Subject:              b.Subject,
		Description:          b.Description,
		OrganizerEmail:       b.OrganizerEmail,
		StartTime:            b.StartTime,
		EndTime:              b.EndTime,
		TotalParticipants:    b.TotalParticipants,
		InternalParticipants: b.InternalParticipants,
		ExternalParticipants: b.ExternalParticipants,
		MeetingType:          b.MeetingType,
		Attendees:            b.Attendees,
		Status:               b.Status,
		CreatedAt:            b.CreatedAt,
		UpdatedAt:            b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildResult() *commands.BookingResult {
	return &commands.BookingResult{Booking: b.BuildView(), EmailSent: true}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	return &queries.BookingListItem{
		EventID:           b.EventID,
		RoomID:            b.RoomID,
		RoomName:          b.RoomName,
		Subject:           b.Subject,
		OrganizerEmail:    b.OrganizerEmail,
		StartTime:         b.StartTime,
		EndTime:           b.EndTime,
		TotalParticipants: b.TotalParticipants,
		Status:            b.Status,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithRoom(id int64, name string) *BookingBuilder {
	b.RoomID = id
	b.RoomName = name
	return b
}

func (b *BookingBuilder) WithSubject(subject string) *BookingBuilder {
	b.Subject = subject
	return b
}

func (b *BookingBuilder) WithOrganizer(email string) *BookingBuilder {
	b.OrganizerEmail = email
	return b
}

func (b *BookingBuilder) WithSlot(start, end time.Time) *BookingBuilder {
	b.StartTime = start
	b.EndTime = end
	return b
}

func (b *BookingBuilder) WithParticipants(total, internal, external int) *BookingBuilder {
	b.TotalParticipants = total
	b.InternalParticipants = internal
	b.ExternalParticipants = external
	return b
}

func (b *BookingBuilder) AsCancelled() *BookingBuilder {
	b.Status = "cancelled"
	return b
}
