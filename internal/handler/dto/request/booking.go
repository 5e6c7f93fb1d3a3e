package request

import (
	"time"

	"roombook/internal/usecase/commands"
)

type CreateBookingRequest struct {
	RoomID               int64     `json:"room_id" binding:"required"`
	Subject              string    `json:"subject" binding:"required,max=200"`
	Description          *string   `json:"description,omitempty"`
	OrganizerEmail       string    `json:"organizer_email" binding:"required,email"`
	StartTime            time.Time `json:"start_time" binding:"required"`
	EndTime              time.Time `json:"end_time" binding:"required"`
	TotalParticipants    int       `json:"total_participants" binding:"required,min=1"`
	InternalParticipants int       `json:"internal_participants" binding:"min=0"`
	ExternalParticipants int       `json:"external_participants" binding:"min=0"`
	MeetingType          string    `json:"meeting_type,omitempty"`
	Attendees            []string  `json:"attendees,omitempty"`
}

func (r CreateBookingRequest) ToParams() commands.CreateBookingParams {
	return commands.CreateBookingParams{
		RoomID:               r.RoomID,
		Subject:              r.Subject,
		Description:          r.Description,
		OrganizerEmail:       r.OrganizerEmail,
		StartTime:            r.StartTime,
		EndTime:              r.EndTime,
		TotalParticipants:    r.TotalParticipants,
		InternalParticipants: r.InternalParticipants,
		ExternalParticipants: r.ExternalParticipants,
		MeetingType:          r.MeetingType,
		Attendees:            r.Attendees,
	}
}

type RescheduleBookingRequest struct {
	RoomID               int64     `json:"room_id" binding:"required"`
	Subject              string    `json:"subject" binding:"required,max=200"`
	Description          *string   `json:"description,omitempty"`
	StartTime            time.Time `json:"start_time" binding:"required"`
	EndTime              time.Time `json:"end_time" binding:"required"`
	TotalParticipants    int       `json:"total_participants" binding:"required,min=1"`
	InternalParticipants int       `json:"internal_participants" binding:"min=0"`
	ExternalParticipants int       `json:"external_participants" binding:"min=0"`
	MeetingType          string    `json:"meeting_type,omitempty"`
	Attendees            []string  `json:"attendees,omitempty"`
}

func (r RescheduleBookingRequest) ToParams() commands.RescheduleBookingParams {
	return commands.RescheduleBookingParams{
		RoomID:               r.RoomID,
		Subject:              r.Subject,
		Description:          r.Description,
		StartTime:            r.StartTime,
		EndTime:              r.EndTime,
		TotalParticipants:    r.TotalParticipants,
		InternalParticipants: r.InternalParticipants,
		ExternalParticipants: r.ExternalParticipants,
		MeetingType:          r.MeetingType,
		Attendees:            r.Attendees,
	}
}

type CancelBookingRequest struct {
	OrganizerEmail string `json:"organizer_email" binding:"required,email"`
}
