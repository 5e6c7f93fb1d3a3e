package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	reqdto "roombook/internal/handler/dto/request"
	resdto "roombook/internal/handler/dto/response"
	"roombook/internal/handler/httperr"
	"roombook/internal/usecase/commands"
	"roombook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Book a room for a time slot; rejects capacity and slot conflicts
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), req.ToParams())
	if err != nil {
		abortBookingError(c, err)
		return
	}

	c.Header("Location", "/api/bookings/"+result.Booking.EventID.String())
	c.JSON(http.StatusCreated, resdto.FromBookingResult(result))
}

// @Summary Get booking
// @Description Get a booking by its event ID
// @Tags bookings
// @Produce json
// @Param eventId path string true "Event ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{eventId} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid event ID format", nil)
		return
	}

	view, err := h.q.GetByEventID(c.Request.Context(), eventID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List bookings
// @Description List bookings for a room and date, or by organizer email
// @Tags bookings
// @Produce json
// @Param room_id query int false "Room ID (with date)"
// @Param date query string false "Date (YYYY-MM-DD)"
// @Param organizer query string false "Organizer email"
// @Success 200 {array} resdto.BookingListResponse
// @Failure 400 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	if organizer := c.Query("organizer"); organizer != "" {
		items, err := h.q.ListByOrganizer(c.Request.Context(), organizer)
		if err != nil {
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list bookings", nil)
			return
		}
		c.JSON(http.StatusOK, toListResponse(items))
		return
	}

	roomIDStr := c.Query("room_id")
	dateStr := c.Query("date")
	if roomIDStr == "" || dateStr == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errors.New("missing list filter"),
			"room_id and date, or organizer, are required", nil)
		return
	}

	roomID, err := strconv.ParseInt(roomIDStr, 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid room_id", nil)
		return
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date, expected YYYY-MM-DD", nil)
		return
	}

	items, err := h.q.ListByRoomAndDate(c.Request.Context(), roomID, date)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list bookings", nil)
		return
	}
	c.JSON(http.StatusOK, toListResponse(items))
}

// @Summary Reschedule booking
// @Description Move a confirmed booking to a new room/time; same event ID
// @Tags bookings
// @Accept json
// @Produce json
// @Param eventId path string true "Event ID"
// @Param request body reqdto.RescheduleBookingRequest true "Reschedule request"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{eventId} [put]
func (h *BookingHandler) Reschedule(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid event ID format", nil)
		return
	}

	var req reqdto.RescheduleBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Reschedule(c.Request.Context(), eventID, req.ToParams())
	if err != nil {
		abortBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingResult(result))
}

// @Summary Cancel booking
// @Description Cancel a confirmed booking; organizer email must match
// @Tags bookings
// @Accept json
// @Produce json
// @Param eventId path string true "Event ID"
// @Param request body reqdto.CancelBookingRequest true "Cancel request"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{eventId}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid event ID format", nil)
		return
	}

	var req reqdto.CancelBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Cancel(c.Request.Context(), eventID, req.OrganizerEmail)
	if err != nil {
		abortBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingResult(result))
}

// @Summary List all bookings (admin)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingListResponse
// @Failure 401 {object} map[string]string
// @Router /admin/bookings [get]
func (h *BookingHandler) ListAll(c *gin.Context) {
	items, err := h.q.ListAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list bookings", nil)
		return
	}
	c.JSON(http.StatusOK, toListResponse(items))
}

// @Summary Cancel booking (admin)
// @Description Cancel any confirmed booking without the organizer check
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param eventId path string true "Event ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/bookings/{eventId}/cancel [post]
func (h *BookingHandler) AdminCancel(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid event ID format", nil)
		return
	}

	result, err := h.cmds.AdminCancel(c.Request.Context(), eventID)
	if err != nil {
		abortBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingResult(result))
}

func abortBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrRoomNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
	case errors.Is(err, commands.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errors.Is(err, commands.ErrCapacityExceeded):
		httperr.AbortWithError(c, http.StatusConflict, err, "Participants exceed room capacity", nil)
	case errors.Is(err, commands.ErrBookingConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Time slot already booked", nil)
	case errors.Is(err, commands.ErrInvalidTimeSlot):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid time slot", nil)
	case errors.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func toListResponse(items []*queries.BookingListItem) []*resdto.BookingListResponse {
	result := make([]*resdto.BookingListResponse, len(items))
	for i, item := range items {
		result[i] = resdto.FromBookingListItem(item)
	}
	return result
}
