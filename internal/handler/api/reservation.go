package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"parkspace/internal/domain/reservation"
	"parkspace/internal/domain/space"
	"parkspace/internal/domain/user"
	reqdto "parkspace/internal/handler/dto/request"
	resdto "parkspace/internal/handler/dto/response"
	"parkspace/internal/handler/httperr"
	"parkspace/internal/handler/middleware"
	"parkspace/internal/usecase/commands"
	"parkspace/internal/usecase/queries"
	"parkspace/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	reservationCommands commands.ReservationCommands
	paymentCommands     commands.PaymentCommands
	reservationQueries  queries.ReservationQueries
}

func NewReservationHandler(
	reservationCommands commands.ReservationCommands,
	paymentCommands commands.PaymentCommands,
	reservationQueries queries.ReservationQueries,
) *ReservationHandler {
	return &ReservationHandler{
		reservationCommands: reservationCommands,
		paymentCommands:     paymentCommands,
		reservationQueries:  reservationQueries,
	}
}

// @Summary Create reservation
// @Description Book a space for an hourly slot or a day pass
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.reservationCommands.CreateReservation(c.Request.Context(), req, actor)
	if err != nil {
		respondReservationError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reservation ID format"})
		return
	}

	view, err := h.reservationQueries.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		switch {
		case errors.Is(err, shared.ErrPermissionDenied):
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		default:
			respondReservationError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary List reservations
// @Description Drivers see their bookings; hosts see bookings on their spaces
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items" default(50)
// @Success 200 {array} resdto.ReservationListResponse
// @Failure 401 {object} map[string]string
// @Router /reservations [get]
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	items, err := h.reservationQueries.ListForActor(c.Request.Context(), actor, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]*resdto.ReservationListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromReservationListItem(item)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Confirm reservation
// @Description Host approves a pending reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/confirm [post]
func (h *ReservationHandler) ConfirmReservation(c *gin.Context) {
	h.lifecycle(c, h.reservationCommands.ConfirmReservation)
}

// @Summary Cancel reservation
// @Description Driver (before the cutoff) or host cancels a reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/cancel [post]
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	h.lifecycle(c, h.reservationCommands.CancelReservation)
}

// @Summary Reject reservation
// @Description Host declines a pending reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/reject [post]
func (h *ReservationHandler) RejectReservation(c *gin.Context) {
	h.lifecycle(c, h.reservationCommands.RejectReservation)
}

// @Summary Approve payment
// @Description Settle a pending reservation through the payment gateway
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.ApprovePaymentRequest true "Payment approval request"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /reservations/{id}/payments [post]
func (h *ReservationHandler) ApprovePayment(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reservation ID format"})
		return
	}

	var req reqdto.ApprovePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.paymentCommands.ApprovePayment(c.Request.Context(), actor, id, req)
	if err != nil {
		respondReservationError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

func (h *ReservationHandler) lifecycle(
	c *gin.Context,
	op func(ctx context.Context, actor user.Actor, id uuid.UUID) (*queries.ReservationView, error),
) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reservation ID format"})
		return
	}

	view, err := op(c.Request.Context(), actor, id)
	if err != nil {
		respondReservationError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

func respondReservationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrSpaceNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Space not found"})
	case errors.Is(err, commands.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	case errors.Is(err, commands.ErrReservationNotFound), errors.Is(err, shared.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
	case errors.Is(err, shared.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
	case errors.Is(err, commands.ErrSlotTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "The requested slot is already taken"})
	case errors.Is(err, commands.ErrSlotConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "A concurrent reservation confirmed the slot first"})
	case errors.Is(err, reservation.ErrInvalidStateTransition):
		c.JSON(http.StatusConflict, gin.H{"error": "Reservation state does not allow this operation"})
	case errors.Is(err, reservation.ErrCancellationWindowClosed):
		c.JSON(http.StatusConflict, gin.H{"error": "Cancellation window has closed"})
	case errors.Is(err, commands.ErrAmountMismatch):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Payment amount does not match the reservation total"})
	case errors.Is(err, commands.ErrGatewayFailure):
		c.JSON(http.StatusBadGateway, gin.H{"error": "Payment gateway rejected the transaction"})
	case errors.Is(err, reservation.ErrMissingDate),
		errors.Is(err, reservation.ErrPastDate),
		errors.Is(err, reservation.ErrMissingBounds),
		errors.Is(err, reservation.ErrOrderingViolation),
		errors.Is(err, reservation.ErrPastTime),
		errors.Is(err, reservation.ErrGridMisalignment):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, reservation.ErrNotWithinAvailability):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requested time is outside the space availability"})
	case errors.Is(err, space.ErrSpaceNotActive):
		c.JSON(http.StatusConflict, gin.H{"error": "Space is not active"})
	case errors.Is(err, space.ErrProductNotForSale):
		c.JSON(http.StatusConflict, gin.H{"error": "Product is not for sale"})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Domain validation failed"})
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
