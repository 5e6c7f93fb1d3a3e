package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"roombook/internal/domain/booking"
	"roombook/internal/infra"
	"roombook/internal/infra/db"
	"roombook/internal/pkg/clock"
	"roombook/internal/pkg/errs"
	"roombook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrRoomNotFound            = errs.New("room not found")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrCapacityExceeded        = errs.New("participants exceed room capacity")
	ErrBookingConflict         = errs.New("time slot already booked")
	ErrInvalidTimeSlot         = errs.New("invalid time slot")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateBookingParams struct {
	RoomID               int64
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
}

type RescheduleBookingParams struct {
	RoomID               int64
	Subject              string
	Description          *string
	StartTime            time.Time
	EndTime              time.Time
	TotalParticipants    int
	InternalParticipants int
	ExternalParticipants int
	MeetingType          string
	Attendees            []string
}

// BookingResult reports the committed booking plus whether the follow-up
// email went out; the two outcomes are independent.
type BookingResult struct {
	Booking   *queries.BookingView
	EmailSent bool
}

type BookingCommands interface {
	Create(ctx context.Context, params CreateBookingParams) (*BookingResult, error)
	Reschedule(ctx context.Context, eventID uuid.UUID, params RescheduleBookingParams) (*BookingResult, error)
	Cancel(ctx context.Context, eventID uuid.UUID, organizerEmail string) (*BookingResult, error)
	AdminCancel(ctx context.Context, eventID uuid.UUID) (*BookingResult, error)
}

type bookingCommandsImpl struct {
	bookingRepo    BookingRepository
	roomRepo       RoomRepository
	gateway        NotificationGateway
	bookingQueries queries.BookingQueries
	pool           *pgxpool.Pool
	clock          clock.Clock
}

func NewBookingCommands(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	gateway NotificationGateway,
	bookingQueries queries.BookingQueries,
	pool *pgxpool.Pool,
	clock clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		bookingRepo:    bookingRepo,
		roomRepo:       roomRepo,
		gateway:        gateway,
		bookingQueries: bookingQueries,
		pool:           pool,
		clock:          clock,
	}
}

// Create persists first and notifies second, never the reverse: a failed
// email leaves the booking committed.
func (c *bookingCommandsImpl) Create(ctx context.Context, params CreateBookingParams) (*BookingResult, error) {
	slot, err := booking.NewTimeSlot(params.StartTime, params.EndTime)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidTimeSlot)
	}

	participants, err := booking.NewParticipants(params.TotalParticipants, params.InternalParticipants, params.ExternalParticipants)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var eventID uuid.UUID
	txErr := db.WithinSerializable(ctx, c.pool, func(ctx context.Context, tx db.DBTX) error {
		roomSnap, err := c.findRoom(ctx, tx, params.RoomID)
		if err != nil {
			return err
		}

		if participants.Total() > roomSnap.Capacity {
			return ErrCapacityExceeded
		}

		overlap, err := c.bookingRepo.HasOverlap(ctx, tx, roomSnap.ID, slot.Start(), slot.End(), nil)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if overlap {
			return ErrBookingConflict
		}

		entity, err := booking.NewBooking(
			roomSnap.ID,
			roomSnap.Name,
			params.Subject,
			params.Description,
			params.OrganizerEmail,
			slot,
			participants,
			params.MeetingType,
			booking.NewAttendees(params.Attendees),
		)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		if err := c.bookingRepo.Create(ctx, tx, entity); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrBookingConflict
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		eventID = entity.EventID()
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return c.loadAndNotify(ctx, eventID, "Booking confirmed", confirmationBody)
}

func (c *bookingCommandsImpl) Reschedule(ctx context.Context, eventID uuid.UUID, params RescheduleBookingParams) (*BookingResult, error) {
	slot, err := booking.NewTimeSlot(params.StartTime, params.EndTime)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidTimeSlot)
	}

	participants, err := booking.NewParticipants(params.TotalParticipants, params.InternalParticipants, params.ExternalParticipants)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	txErr := db.WithinSerializable(ctx, c.pool, func(ctx context.Context, tx db.DBTX) error {
		entity, err := c.findConfirmedBooking(ctx, tx, eventID)
		if err != nil {
			return err
		}

		roomSnap, err := c.findRoom(ctx, tx, params.RoomID)
		if err != nil {
			return err
		}

		if participants.Total() > roomSnap.Capacity {
			return ErrCapacityExceeded
		}

		exclude := entity.EventID()
		overlap, err := c.bookingRepo.HasOverlap(ctx, tx, roomSnap.ID, slot.Start(), slot.End(), &exclude)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if overlap {
			return ErrBookingConflict
		}

		if err := entity.Reschedule(
			roomSnap.ID,
			roomSnap.Name,
			params.Subject,
			params.Description,
			slot,
			participants,
			params.MeetingType,
			booking.NewAttendees(params.Attendees),
		); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		if err := c.bookingRepo.Update(ctx, tx, entity); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrBookingConflict
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return c.loadAndNotify(ctx, eventID, "Booking rescheduled", rescheduleBody)
}

// Cancel treats an identity mismatch and a missing booking as the same
// not-found error so callers cannot probe which bookings exist.
func (c *bookingCommandsImpl) Cancel(ctx context.Context, eventID uuid.UUID, organizerEmail string) (*BookingResult, error) {
	return c.cancel(ctx, eventID, &organizerEmail)
}

// AdminCancel skips the organizer identity check.
func (c *bookingCommandsImpl) AdminCancel(ctx context.Context, eventID uuid.UUID) (*BookingResult, error) {
	return c.cancel(ctx, eventID, nil)
}

func (c *bookingCommandsImpl) cancel(ctx context.Context, eventID uuid.UUID, organizerEmail *string) (*BookingResult, error) {
	txErr := db.Within(ctx, c.pool, func(ctx context.Context, tx db.DBTX) error {
		entity, err := c.bookingRepo.FindByEventIDForUpdate(ctx, tx, eventID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		now := c.clock.Now()
		if organizerEmail != nil {
			err = entity.CancelByOrganizer(*organizerEmail, now)
		} else {
			err = entity.Cancel(now)
		}
		if err != nil {
			return errs.Mark(err, ErrBookingNotFound)
		}

		if err := c.bookingRepo.Update(ctx, tx, entity); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return c.loadAndNotify(ctx, eventID, "Booking cancelled", cancellationBody)
}

func (c *bookingCommandsImpl) findRoom(ctx context.Context, tx db.DBTX, roomID int64) (*RoomSnapshot, error) {
	snap, err := c.roomRepo.FindByID(ctx, tx, roomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return snap, nil
}

func (c *bookingCommandsImpl) findConfirmedBooking(ctx context.Context, tx db.DBTX, eventID uuid.UUID) (*booking.Booking, error) {
	entity, err := c.bookingRepo.FindByEventID(ctx, tx, eventID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !entity.IsConfirmed() {
		return nil, ErrBookingNotFound
	}
	return entity, nil
}

// Read-after-write, then best-effort notification outside the transaction.
func (c *bookingCommandsImpl) loadAndNotify(ctx context.Context, eventID uuid.UUID, subject string, body func(*queries.BookingView) string) (*BookingResult, error) {
	view, err := c.bookingQueries.GetByEventID(ctx, eventID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	emailSent := true
	if err := c.gateway.Send(ctx, view.OrganizerEmail, subject, body(view)); err != nil {
		slog.Warn("booking email not sent",
			"event_id", view.EventID.String(),
			"recipient", view.OrganizerEmail,
			"error", err.Error())
		emailSent = false
	}

	return &BookingResult{Booking: view, EmailSent: emailSent}, nil
}

const emailTimeFormat = "Mon, 02 Jan 2006 15:04 MST"

func confirmationBody(v *queries.BookingView) string {
	return fmt.Sprintf(
		"<h2>Booking confirmed</h2><p><b>%s</b></p><p>Room: %s</p><p>From %s to %s</p><p>Reference: %s</p>",
		v.Subject, v.RoomName,
		v.StartTime.Format(emailTimeFormat), v.EndTime.Format(emailTimeFormat),
		v.EventID,
	)
}

func rescheduleBody(v *queries.BookingView) string {
	return fmt.Sprintf(
		"<h2>Booking rescheduled</h2><p><b>%s</b></p><p>Room: %s</p><p>New time: %s to %s</p><p>Reference: %s</p>",
		v.Subject, v.RoomName,
		v.StartTime.Format(emailTimeFormat), v.EndTime.Format(emailTimeFormat),
		v.EventID,
	)
}

func cancellationBody(v *queries.BookingView) string {
	return fmt.Sprintf(
		"<h2>Booking cancelled</h2><p><b>%s</b></p><p>Room: %s</p><p>Was scheduled %s to %s</p><p>Reference: %s</p>",
		v.Subject, v.RoomName,
		v.StartTime.Format(emailTimeFormat), v.EndTime.Format(emailTimeFormat),
		v.EventID,
	)
}
