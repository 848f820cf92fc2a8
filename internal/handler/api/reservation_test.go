//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"parkspace/internal/domain/reservation"
	"parkspace/internal/domain/user"
	"parkspace/internal/handler/api"
	reqdto "parkspace/internal/handler/dto/request"
	resdto "parkspace/internal/handler/dto/response"
	"parkspace/internal/usecase/commands"
	"parkspace/internal/usecase/queries"
	"parkspace/internal/usecase/shared"
	commonhttp "parkspace/tests/common/httptest"
	commandsmock "parkspace/tests/mock/commands"
	queriesmock "parkspace/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockCtrl        *gomock.Controller
	mockReservation *commandsmock.MockReservationCommands
	mockPayment     *commandsmock.MockPaymentCommands
	mockQueries     *queriesmock.MockReservationQueries
	handler         *api.ReservationHandler
	actorID         uuid.UUID
	actorRole       user.Role
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.actorID = uuid.New()
	s.actorRole = user.RoleDriver

	s.mockCtrl = gomock.NewController(s.T())
	s.mockReservation = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockPayment = commandsmock.NewMockPaymentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockReservation, s.mockPayment, s.mockQueries)

	authenticated := func(h gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Set("user_id", s.actorID)
			c.Set("user_role", s.actorRole)
			h(c)
		}
	}

	s.router.POST("/reservations", authenticated(s.handler.CreateReservation))
	s.router.GET("/reservations", authenticated(s.handler.ListReservations))
	s.router.GET("/reservations/:id", authenticated(s.handler.GetReservation))
	s.router.POST("/reservations/:id/confirm", authenticated(s.handler.ConfirmReservation))
	s.router.POST("/reservations/:id/cancel", authenticated(s.handler.CancelReservation))
	s.router.POST("/reservations/:id/reject", authenticated(s.handler.RejectReservation))
	s.router.POST("/reservations/:id/payments", authenticated(s.handler.ApprovePayment))
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *ReservationHandlerTestSuite) reservationView(status string) *queries.ReservationView {
	start := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	return &queries.ReservationView{
		ID:          uuid.New(),
		SpaceID:     uuid.New(),
		SpaceTitle:  "Station-side parking",
		DriverID:    s.actorID,
		DriverName:  "Test Driver",
		ProductID:   uuid.New(),
		ProductType: "HOURLY",
		CarNumber:   "12GA3456",
		StartAt:     start,
		EndAt:       start.Add(2 * time.Hour),
		Status:      status,
		PriceTotal:  2000,
	}
}

func (s *ReservationHandlerTestSuite) createRequest() reqdto.CreateReservationRequest {
	start := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)
	carNumber := "12GA3456"
	return reqdto.CreateReservationRequest{
		SpaceID:   uuid.New(),
		ProductID: uuid.New(),
		CarNumber: &carNumber,
		StartAt:   &start,
		EndAt:     &end,
	}
}

func (s *ReservationHandlerTestSuite) TestCreateReservation() {
	s.Run("successful booking", func() {
		req := s.createRequest()
		view := s.reservationView("PENDING")
		s.mockReservation.EXPECT().CreateReservation(gomock.Any(), gomock.Any(), gomock.Any()).Return(view, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations", req, "")

		var resp resdto.ReservationResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal(view.ID, resp.ID)
		s.Equal("PENDING", resp.Status)
		s.Equal(int64(2000), resp.PriceTotal)
	})

	s.Run("missing required fields", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations", map[string]any{}, "")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})

	errorCases := []struct {
		name       string
		commandErr error
		wantStatus int
		wantMsg    string
	}{
		{"space missing", commands.ErrSpaceNotFound, http.StatusNotFound, "Space not found"},
		{"product missing", commands.ErrProductNotFound, http.StatusNotFound, "Product not found"},
		{"slot already taken", commands.ErrSlotTaken, http.StatusConflict, "already taken"},
		{"grid misalignment", reservation.ErrGridMisalignment, http.StatusBadRequest, "30-minute"},
		{"outside availability", reservation.ErrNotWithinAvailability, http.StatusBadRequest, "outside the space availability"},
		{"not a driver", shared.ErrPermissionDenied, http.StatusForbidden, "Access denied"},
	}
	for _, tc := range errorCases {
		s.Run(tc.name, func() {
			s.mockReservation.EXPECT().CreateReservation(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.commandErr)

			w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations", s.createRequest(), "")
			commonhttp.AssertErrorResponse(s.T(), w, tc.wantStatus, tc.wantMsg)
		})
	}
}

func (s *ReservationHandlerTestSuite) TestGetReservation() {
	s.Run("found", func() {
		view := s.reservationView("CONFIRMED")
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), view.ID).Return(view, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+view.ID.String(), nil, "")

		var resp resdto.ReservationResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("CONFIRMED", resp.Status)
	})

	s.Run("not found", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), id).Return(nil, shared.ErrNotFound)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+id.String(), nil, "")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Reservation not found")
	})

	s.Run("foreign reservation", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), id).Return(nil, shared.ErrPermissionDenied)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+id.String(), nil, "")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Access denied")
	})

	s.Run("malformed id", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/not-a-uuid", nil, "")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid reservation ID")
	})
}

func (s *ReservationHandlerTestSuite) TestListReservations() {
	items := []*queries.ReservationListItem{
		{ID: uuid.New(), SpaceTitle: "Station-side parking", Status: "PENDING", PriceTotal: 2000},
		{ID: uuid.New(), SpaceTitle: "Riverside lot", Status: "CONFIRMED", PriceTotal: 8000},
	}
	s.mockQueries.EXPECT().ListForActor(gomock.Any(), gomock.Any(), 50).Return(items, nil)

	w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil, "")

	var resp []*resdto.ReservationListResponse
	commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	s.Require().Len(resp, 2)
	s.Equal(items[0].ID, resp[0].ID)
}

func (s *ReservationHandlerTestSuite) TestLifecycleEndpoints() {
	s.actorRole = user.RoleHost

	s.Run("confirm succeeds", func() {
		view := s.reservationView("CONFIRMED")
		s.mockReservation.EXPECT().ConfirmReservation(gomock.Any(), gomock.Any(), view.ID).Return(view, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, fmt.Sprintf("/reservations/%s/confirm", view.ID), nil, "")

		var resp resdto.ReservationResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("CONFIRMED", resp.Status)
	})

	s.Run("confirm loses the slot race", func() {
		id := uuid.New()
		s.mockReservation.EXPECT().ConfirmReservation(gomock.Any(), gomock.Any(), id).Return(nil, commands.ErrSlotConflict)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, fmt.Sprintf("/reservations/%s/confirm", id), nil, "")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusConflict, "concurrent reservation confirmed the slot first")
	})

	s.Run("cancel after the cutoff", func() {
		id := uuid.New()
		s.mockReservation.EXPECT().CancelReservation(gomock.Any(), gomock.Any(), id).Return(nil, reservation.ErrCancellationWindowClosed)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, fmt.Sprintf("/reservations/%s/cancel", id), nil, "")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusConflict, "Cancellation window has closed")
	})

	s.Run("reject a non-pending reservation", func() {
		id := uuid.New()
		s.mockReservation.EXPECT().RejectReservation(gomock.Any(), gomock.Any(), id).Return(nil, reservation.ErrInvalidStateTransition)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, fmt.Sprintf("/reservations/%s/reject", id), nil, "")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusConflict, "state does not allow")
	})
}

func (s *ReservationHandlerTestSuite) TestApprovePayment() {
	payReq := reqdto.ApprovePaymentRequest{TID: "tid-123", OrderID: "order-1", Amount: 2000}

	s.Run("settlement succeeds", func() {
		view := s.reservationView("CONFIRMED")
		s.mockPayment.EXPECT().ApprovePayment(gomock.Any(), gomock.Any(), view.ID, payReq).Return(view, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, fmt.Sprintf("/reservations/%s/payments", view.ID), payReq, "")

		var resp resdto.ReservationResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("CONFIRMED", resp.Status)
	})

	s.Run("amount mismatch", func() {
		id := uuid.New()
		s.mockPayment.EXPECT().ApprovePayment(gomock.Any(), gomock.Any(), id, payReq).Return(nil, commands.ErrAmountMismatch)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, fmt.Sprintf("/reservations/%s/payments", id), payReq, "")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "does not match")
	})

	s.Run("gateway declines", func() {
		id := uuid.New()
		s.mockPayment.EXPECT().ApprovePayment(gomock.Any(), gomock.Any(), id, payReq).Return(nil, commands.ErrGatewayFailure)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, fmt.Sprintf("/reservations/%s/payments", id), payReq, "")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadGateway, "gateway")
	})

	s.Run("zero amount reaches the use case", func() {
		view := s.reservationView("CONFIRMED")
		zeroReq := reqdto.ApprovePaymentRequest{TID: "tid-123", OrderID: "order-1", Amount: 0}
		s.mockPayment.EXPECT().ApprovePayment(gomock.Any(), gomock.Any(), view.ID, zeroReq).Return(view, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, fmt.Sprintf("/reservations/%s/payments", view.ID), zeroReq, "")

		var resp resdto.ReservationResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("CONFIRMED", resp.Status)
	})

	s.Run("negative amount rejected by binding", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, fmt.Sprintf("/reservations/%s/payments", uuid.New()), map[string]any{
			"tid":      "tid-123",
			"order_id": "order-1",
			"amount":   -100,
		}, "")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})
}

func TestReservationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}
