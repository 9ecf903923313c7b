//go:build unit

package api_test

import (
	"log/slog"
	"net/http"
	"testing"
	"time"

	"repairbook/internal/handler/api"
	"repairbook/internal/infra"
	"repairbook/internal/usecase/queries"
	"repairbook/tests/common/httptest"
	queriesmock "repairbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SlotHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockSlotQueries
	handler     *api.SlotHandler
}

func (s *SlotHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockSlotQueries(s.mockCtrl)
	s.handler = api.NewSlotHandler(s.mockQueries)

	s.router.GET("/slots", s.handler.ListSlots)
}

func (s *SlotHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSlotHandlerSuite(t *testing.T) {
	suite.Run(t, new(SlotHandlerTestSuite))
}

func (s *SlotHandlerTestSuite) TestListSlots() {
	s.Run("success: returns 200 OK with grouped slots", func() {
		view := &queries.SlotsView{
			DeviceModel: "iphone-14",
			RepairType:  "screen",
			DurationMin: 60,
			PriceCents:  250000,
			Days: []queries.DaySlots{
				{
					Date: "2026-09-03",
					Slots: []time.Time{
						time.Date(2026, 9, 3, 10, 0, 0, 0, time.UTC),
						time.Date(2026, 9, 3, 10, 30, 0, 0, time.UTC),
					},
				},
			},
		}
		s.mockQueries.EXPECT().ListAvailable(gomock.Any(), "iphone-14", "screen", 7).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/slots?device_model=iphone-14&repair_type=screen&days=7", nil, "")

		var response queries.SlotsView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("iphone-14", response.DeviceModel)
		s.Len(response.Days, 1)
		s.Len(response.Days[0].Slots, 2)
	})

	s.Run("success: omitted days defaults to zero (horizon decided downstream)", func() {
		s.mockQueries.EXPECT().ListAvailable(gomock.Any(), "iphone-14", "screen", 0).
			Return(&queries.SlotsView{DeviceModel: "iphone-14", RepairType: "screen"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/slots?device_model=iphone-14&repair_type=screen", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 Bad Request on missing or malformed params", func() {
		testCases := []struct {
			name string
			path string
		}{
			{name: "missing device_model", path: "/slots?repair_type=screen"},
			{name: "missing repair_type", path: "/slots?device_model=iphone-14"},
			{name: "non-integer days", path: "/slots?device_model=iphone-14&repair_type=screen&days=soon"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, tc.path, nil, "")
				s.Equal(http.StatusBadRequest, rec.Code)
			})
		}
	})

	s.Run("error: 404 Not Found for unknown model or repair", func() {
		s.mockQueries.EXPECT().ListAvailable(gomock.Any(), "nokia-3310", "screen", 0).
			Return(nil, infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "offer not found", nil)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/slots?device_model=nokia-3310&repair_type=screen", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found")
	})
}
