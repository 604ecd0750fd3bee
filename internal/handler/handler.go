package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/talabi-dev/StayBooker/internal/domain"
	"github.com/talabi-dev/StayBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type BookingSvc interface {
	Reserve(ctx context.Context, in domain.ReserveInput) (*domain.Booking, error)
	Get(ctx context.Context, id string) (*domain.Booking, error)
	Apply(ctx context.Context, bookingID string, event domain.Event, actorID, reason string) (*domain.Booking, error)
	ActiveHolds(ctx context.Context, propertyID string) ([]domain.Hold, error)
	ListByProperty(ctx context.Context, propertyID string) ([]*domain.Booking, error)
	ListByRequester(ctx context.Context, requesterID string) ([]*domain.Booking, error)
}

type Handler struct {
	bookingService BookingSvc
}

func NewHandler(bookingService BookingSvc) *Handler {
	return &Handler{bookingService: bookingService}
}

func (h *Handler) Reserve(c *ginext.Context) {
	var req dto.ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	in := domain.ReserveInput{
		PropertyID:  req.PropertyID,
		RequesterID: req.RequesterID,
		OwnerID:     req.OwnerID,
		Kind:        domain.BookingKind(req.Kind),
	}

	var err error
	if in.CheckIn, err = parseOptionalTime(req.CheckIn); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid check_in, expected RFC3339"})
		return
	}
	if in.CheckOut, err = parseOptionalTime(req.CheckOut); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid check_out, expected RFC3339"})
		return
	}
	if in.SlotAt, err = parseOptionalTime(req.SlotAt); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid slot_at, expected RFC3339"})
		return
	}

	booking, err := h.bookingService.Reserve(c.Request.Context(), in)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := h.bookingService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) Approve(c *ginext.Context)  { h.transition(c, domain.EventApprove) }
func (h *Handler) Reject(c *ginext.Context)   { h.transition(c, domain.EventReject) }
func (h *Handler) Cancel(c *ginext.Context)   { h.transition(c, domain.EventCancel) }
func (h *Handler) Complete(c *ginext.Context) { h.transition(c, domain.EventComplete) }

func (h *Handler) transition(c *ginext.Context, event domain.Event) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.Apply(c.Request.Context(), id, event, req.ActorID, req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) ListPropertyBookings(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid property id"})
		return
	}

	bookings, err := h.bookingService.ListByProperty(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListPropertyHolds(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid property id"})
		return
	}

	holds, err := h.bookingService.ActiveHolds(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.HoldResponse, 0, len(holds))
	for _, hold := range holds {
		resp = append(resp, dto.ToHoldResponse(hold))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListRequesterBookings(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid requester id"})
		return
	}

	bookings, err := h.bookingService.ListByRequester(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var conflict *domain.ConflictError
	if errors.As(err, &conflict) {
		rng := dto.ToRangeResponse(conflict.Conflicting)
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error(), Conflict: &rng})
		return
	}

	switch {
	case errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidTransition):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrPropertyBusy):
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

func parseOptionalTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, s)
}
