package response

import (
	"time"

	"roombook/internal/usecase/commands"
	"roombook/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	EventID              uuid.UUID  `json:"eventId"`
	RoomID               int64      `json:"roomId"`
	RoomName             string     `json:"roomName"`
	Subject              string     `json:"subject"`
	Description          *string    `json:"description,omitempty"`
	OrganizerEmail       string     `json:"organizerEmail"`
	StartTime            time.Time  `json:"startTime"`
	EndTime              time.Time  `json:"endTime"`
	TotalParticipants    int        `json:"totalParticipants"`
	InternalParticipants int        `json:"internalParticipants"`
	ExternalParticipants int        `json:"externalParticipants"`
	MeetingType          string     `json:"meetingType,omitempty"`
	Attendees            []string   `json:"attendees,omitempty"`
	Status               string     `json:"status"`
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            time.Time  `json:"updatedAt"`
	CancelledAt          *time.Time `json:"cancelledAt,omitempty"`
	// EmailSent is false when the booking committed but the follow-up mail
	// did not go out.
	EmailSent bool `json:"emailSent"`
}

type BookingListResponse struct {
	EventID           uuid.UUID `json:"eventId"`
	RoomID            int64     `json:"roomId"`
	RoomName          string    `json:"roomName"`
	Subject           string    `json:"subject"`
	OrganizerEmail    string    `json:"organizerEmail"`
	StartTime         time.Time `json:"startTime"`
	EndTime           time.Time `json:"endTime"`
	TotalParticipants int       `json:"totalParticipants"`
	Status            string    `json:"status"`
}

func FromBookingResult(result *commands.BookingResult) *BookingResponse {
	resp := FromBookingView(result.Booking)
	resp.EmailSent = result.EmailSent
	return resp
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		EventID:              view.EventID,
		RoomID:               view.RoomID,
		RoomName:             view.RoomName,
		Subject:              view.Subject,
		Description:          view.Description,
		OrganizerEmail:       view.OrganizerEmail,
		StartTime:            view.StartTime,
		EndTime:              view.EndTime,
		TotalParticipants:    view.TotalParticipants,
		InternalParticipants: view.InternalParticipants,
		ExternalParticipants: view.ExternalParticipants,
		MeetingType:          view.MeetingType,
		Attendees:            view.Attendees,
		Status:               view.Status,
		CreatedAt:            view.CreatedAt,
		UpdatedAt:            view.UpdatedAt,
		CancelledAt:          view.CancelledAt,
		EmailSent:            true,
	}
}

func FromBookingListItem(item *queries.BookingListItem) *BookingListResponse {
	return &BookingListResponse{
		EventID:           item.EventID,
		RoomID:            item.RoomID,
		RoomName:          item.RoomName,
		Subject:           item.Subject,
		OrganizerEmail:    item.OrganizerEmail,
		StartTime:         item.StartTime,
		EndTime:           item.EndTime,
		TotalParticipants: item.TotalParticipants,
		Status:            item.Status,
	}
}
