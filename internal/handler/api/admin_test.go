//go:build unit

package api_test

import (
	"errors"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"repairbook/internal/domain/referral"
	"repairbook/internal/handler/api"
	reqdto "repairbook/internal/handler/dto/request"
	"repairbook/internal/infra"
	"repairbook/internal/usecase/commands"
	"repairbook/internal/usecase/queries"
	"repairbook/tests/common/httptest"
	commandsmock "repairbook/tests/mock/commands"
	queriesmock "repairbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockCtrl        *gomock.Controller
	mockStatus      *commandsmock.MockStatusCommands
	mockRedemptions *commandsmock.MockRedemptionCommands
	mockQueries     *queriesmock.MockAppointmentQueries
	handler         *api.AdminHandler
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockStatus = commandsmock.NewMockStatusCommands(s.mockCtrl)
	s.mockRedemptions = commandsmock.NewMockRedemptionCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAppointmentQueries(s.mockCtrl)
	s.handler = api.NewAdminHandler(s.mockStatus, s.mockRedemptions, s.mockQueries)

	s.router.GET("/admin/appointments", s.handler.ListAppointments)
	s.router.PATCH("/admin/appointments/:id/status", s.handler.UpdateStatus)
	s.router.POST("/admin/redemptions/:id/pay", s.handler.PayRedemption)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) TestListAppointments() {
	s.Run("success: passes the parsed date range through", func() {
		from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC) // exclusive upper bound
		rows := []*queries.AppointmentView{{ID: uuid.New(), Status: "new"}}

		s.mockQueries.EXPECT().ListByDateRange(gomock.Any(), from, to).
			Return(rows, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/admin/appointments?from=2026-09-01&to=2026-09-07", nil, "")

		var response []*queries.AppointmentView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("error: 400 Bad Request on malformed dates", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/admin/appointments?from=yesterday", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *AdminHandlerTestSuite) TestUpdateStatus() {
	id := uuid.New()
	url := "/admin/appointments/" + id.String() + "/status"

	s.Run("success: returns 204 No Content", func() {
		s.mockStatus.EXPECT().TransitionAppointment(gomock.Any(), id, "confirmed").
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			reqdto.UpdateAppointmentStatusRequest{Status: "confirmed"}, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request on unknown status value", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]any{"status": "vanished"}, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "transition not allowed",
				commandsError:  commands.ErrInvalidTransition,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Transition not allowed",
			},
			{
				name:           "appointment not found",
				commandsError:  infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "appointment not found", nil),
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Appointment not found",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Failed to change status",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockStatus.EXPECT().TransitionAppointment(gomock.Any(), id, "done").
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
					reqdto.UpdateAppointmentStatusRequest{Status: "done"}, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *AdminHandlerTestSuite) TestPayRedemption() {
	id := uuid.New()
	url := "/admin/redemptions/" + id.String() + "/pay"

	s.Run("success: returns 204 No Content", func() {
		s.mockRedemptions.EXPECT().MarkRedemptionPaid(gomock.Any(), id).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "already paid",
				commandsError:  referral.ErrAlreadyPaid,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already paid",
			},
			{
				name:           "redemption not found",
				commandsError:  infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "redemption not found", nil),
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Redemption not found",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Failed to mark redemption paid",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockRedemptions.EXPECT().MarkRedemptionPaid(gomock.Any(), id).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
