//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"roombook/internal/handler/api"
	resdto "roombook/internal/handler/dto/response"
	"roombook/internal/usecase/commands"
	"roombook/internal/usecase/queries"
	"roombook/tests/common/builder"
	"roombook/tests/common/httptest"
	"roombook/tests/common/testutil"
	commandsmock "roombook/tests/mock/commands"
	queriesmock "roombook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/bookings", s.handler.Create)
	s.router.GET("/bookings", s.handler.List)
	s.router.GET("/bookings/:eventId", s.handler.Get)
	s.router.PUT("/bookings/:eventId", s.handler.Reschedule)
	s.router.POST("/bookings/:eventId/cancel", s.handler.Cancel)
	s.router.GET("/admin/bookings", s.handler.ListAll)
	s.router.POST("/admin/bookings/:eventId/cancel", s.handler.AdminCancel)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"

	b := builder.NewBookingBuilder()
	reqBody := b.BuildCreateRequestDTO()
	expectedResult := b.BuildResult()

	s.Run("success: returns 201 Created with Location header", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(expectedResult, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(expectedResult.Booking.EventID, body.EventID)
		s.True(body.EmailSent)
		httptest.AssertHeaders(s.T(), rec, map[string]string{
			"Location": "/api/bookings/" + expectedResult.Booking.EventID.String(),
		})
	})

	s.Run("success: reports email failure without failing the request", func() {
		result := builder.NewBookingBuilder().BuildResult()
		result.EmailSent = false
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(result, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.False(body.EmailSent)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseBooking{
			{name: "missing field: room_id", mutate: testutil.Field("room_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: subject", mutate: testutil.Field("subject", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: organizer_email", mutate: testutil.Field("organizer_email", nil), expectCode: http.StatusBadRequest},
			{name: "invalid organizer email", mutate: testutil.Field("organizer_email", "not-an-email"), expectCode: http.StatusBadRequest},
			{name: "missing field: start_time", mutate: testutil.Field("start_time", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: end_time", mutate: testutil.Field("end_time", nil), expectCode: http.StatusBadRequest},
			{name: "zero total_participants", mutate: testutil.Field("total_participants", 0), expectCode: http.StatusBadRequest},
			{name: "subject too long", mutate: testutil.Field("subject", strings.Repeat("a", 201)), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: command errors map to status codes", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
			expectMsg  string
		}{
			{"room not found", commands.ErrRoomNotFound, http.StatusNotFound, "Room not found"},
			{"capacity exceeded", commands.ErrCapacityExceeded, http.StatusConflict, "capacity"},
			{"slot conflict", commands.ErrBookingConflict, http.StatusConflict, "already booked"},
			{"invalid time slot", commands.ErrInvalidTimeSlot, http.StatusBadRequest, "Invalid time slot"},
			{"domain validation", commands.ErrDomainValidation, http.StatusUnprocessableEntity, "Validation failed"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
			})
		}
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	view := builder.NewBookingBuilder().BuildView()

	s.Run("success: returns 200 OK with the booking", func() {
		s.mockQueries.EXPECT().GetByEventID(gomock.Any(), view.EventID).
			Return(view, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.EventID.String(), nil, "")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.EventID, body.EventID)
		s.Equal(view.Subject, body.Subject)
	})

	s.Run("error: 400 on malformed event ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid event ID")
	})

	s.Run("error: 404 when missing", func() {
		missing := uuid.New()
		s.mockQueries.EXPECT().GetByEventID(gomock.Any(), missing).
			Return(nil, commands.ErrBookingNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+missing.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *BookingHandlerTestSuite) TestList() {
	s.Run("success: lists by room and date", func() {
		item := builder.NewBookingBuilder().BuildListItem()
		s.mockQueries.EXPECT().ListByRoomAndDate(gomock.Any(), int64(1), gomock.Any()).
			Return([]*queries.BookingListItem{item}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?room_id=1&date=2026-03-10", nil, "")

		var body []resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
		s.Equal(item.EventID, body[0].EventID)
	})

	s.Run("success: lists by organizer", func() {
		item := builder.NewBookingBuilder().BuildListItem()
		s.mockQueries.EXPECT().ListByOrganizer(gomock.Any(), "organizer@example.com").
			Return([]*queries.BookingListItem{item}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?organizer=organizer@example.com", nil, "")

		var body []resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})

	s.Run("error: 400 without filters", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "required")
	})

	s.Run("error: 400 on malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?room_id=1&date=03-10-2026", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date")
	})
}

// ================================================================================
// TestReschedule
// ================================================================================

func (s *BookingHandlerTestSuite) TestReschedule() {
	b := builder.NewBookingBuilder()
	reqBody := b.BuildRescheduleRequestDTO()
	expectedResult := b.BuildResult()
	url := "/bookings/" + expectedResult.Booking.EventID.String()

	s.Run("success: returns 200 OK with the moved booking", func() {
		s.mockCommands.EXPECT().Reschedule(gomock.Any(), expectedResult.Booking.EventID, gomock.Any()).
			Return(expectedResult, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(expectedResult.Booking.EventID, body.EventID)
	})

	s.Run("error: 404 when booking is missing or cancelled", func() {
		s.mockCommands.EXPECT().Reschedule(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrBookingNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 409 on slot conflict", func() {
		s.mockCommands.EXPECT().Reschedule(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrBookingConflict).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already booked")
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancel() {
	b := builder.NewBookingBuilder().AsCancelled()
	result := b.BuildResult()
	url := "/bookings/" + result.Booking.EventID.String() + "/cancel"
	reqBody := map[string]string{"organizer_email": "organizer@example.com"}

	s.Run("success: returns 200 OK with the cancelled booking", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), result.Booking.EventID, "organizer@example.com").
			Return(result, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("cancelled", body.Status)
	})

	s.Run("error: 400 without organizer email", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]string{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 404 hides whether the booking exists", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrBookingNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]string{"organizer_email": "mallory@example.com"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

// ================================================================================
// TestAdminCancel
// ================================================================================

func (s *BookingHandlerTestSuite) TestAdminCancel() {
	b := builder.NewBookingBuilder().AsCancelled()
	result := b.BuildResult()
	url := "/admin/bookings/" + result.Booking.EventID.String() + "/cancel"

	s.Run("success: cancels without the organizer check", func() {
		s.mockCommands.EXPECT().AdminCancel(gomock.Any(), result.Booking.EventID).
			Return(result, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "admin-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("cancelled", body.Status)
	})
}

// ================================================================================
// TestListAll
// ================================================================================

func (s *BookingHandlerTestSuite) TestListAll() {
	s.Run("success: returns all bookings", func() {
		item := builder.NewBookingBuilder().BuildListItem()
		s.mockQueries.EXPECT().ListAll(gomock.Any()).
			Return([]*queries.BookingListItem{item}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings", nil, "admin-token")

		var body []resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})
}
