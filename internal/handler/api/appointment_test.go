//go:build unit

package api_test

import (
	"errors"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"repairbook/internal/handler/api"
	reqdto "repairbook/internal/handler/dto/request"
	resdto "repairbook/internal/handler/dto/response"
	"repairbook/internal/infra"
	"repairbook/internal/usecase/commands"
	"repairbook/internal/usecase/queries"
	"repairbook/tests/common/httptest"
	"repairbook/tests/common/testutil"
	commandsmock "repairbook/tests/mock/commands"
	queriesmock "repairbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AppointmentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockAppointmentQueries
	handler      *api.AppointmentHandler
}

func (s *AppointmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAppointmentQueries(s.mockCtrl)
	s.handler = api.NewAppointmentHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/appointments", s.handler.CreateAppointment)
	s.router.GET("/appointments/:id", s.handler.GetAppointment)
}

func (s *AppointmentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAppointmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(AppointmentHandlerTestSuite))
}

func validCreateRequest() reqdto.CreateAppointmentRequest {
	return reqdto.CreateAppointmentRequest{
		DeviceModelSlug: "iphone-14",
		RepairTypeSlug:  "screen",
		StartAt:         time.Date(2026, 9, 3, 11, 0, 0, 0, time.UTC),
		CustomerName:    "Ivan Petrov",
		CustomerPhone:   "+7 912 345-67-89",
		ReferralCode:    "BLOGGER10",
	}
}

func (s *AppointmentHandlerTestSuite) TestCreateAppointment() {
	url := "/appointments"
	reqBody := validCreateRequest()

	s.Run("success: returns 201 Created with the new ID", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().CreateAppointment(gomock.Any(), reqBody).
			Return(id, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.CreateAppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(id, response.ID)
	})

	s.Run("error: 400 Bad Request on missing fields", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing device_model", mutate: testutil.Field("device_model", nil)},
			{name: "missing repair_type", mutate: testutil.Field("repair_type", nil)},
			{name: "missing start_at", mutate: testutil.Field("start_at", nil)},
			{name: "missing customer_name", mutate: testutil.Field("customer_name", nil)},
			{name: "missing customer_phone", mutate: testutil.Field("customer_phone", nil)},
			{name: "malformed start_at", mutate: testutil.Field("start_at", "tomorrow at noon")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				s.Equal(http.StatusBadRequest, rec.Code)
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "slot in the past",
				commandsError:  commands.ErrStaleSlot,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "in the past",
			},
			{
				name:           "slot outside booking window",
				commandsError:  commands.ErrOutOfWindow,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "outside the booking window",
			},
			{
				name:           "slot taken concurrently",
				commandsError:  commands.ErrSlotTaken,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "no longer available",
			},
			{
				name:           "unknown device model",
				commandsError:  infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "offer not found", nil),
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "not found",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Failed to create appointment",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateAppointment(gomock.Any(), reqBody).
					Return(uuid.Nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *AppointmentHandlerTestSuite) TestGetAppointment() {
	id := uuid.New()
	url := "/appointments/" + id.String()

	s.Run("success: returns 200 OK with the view", func() {
		view := &queries.AppointmentView{
			ID:                 id,
			DeviceModel:        "iphone-14",
			RepairType:         "screen",
			StartAt:            time.Date(2026, 9, 3, 11, 0, 0, 0, time.UTC),
			EndAt:              time.Date(2026, 9, 3, 12, 0, 0, 0, time.UTC),
			CustomerName:       "Ivan Petrov",
			CustomerPhone:      "+79123456789",
			PriceOriginalCents: 250000,
			DiscountCents:      25000,
			PriceFinalCents:    225000,
			Status:             "new",
		}
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response queries.AppointmentView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
		s.Equal(view.PriceFinalCents, response.PriceFinalCents)
	})

	s.Run("error: 400 Bad Request on malformed ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments/not-a-uuid", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 404 Not Found for unknown appointment", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "appointment not found", nil)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Appointment not found")
	})
}
