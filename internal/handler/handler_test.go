package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/talabi-dev/StayBooker/internal/domain"
	"github.com/talabi-dev/StayBooker/internal/handler/dto"
	hmocks "github.com/talabi-dev/StayBooker/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockBookingSvc, http.Handler) {
	t.Helper()
	bookingSvc := hmocks.NewMockBookingSvc(t)

	h := NewHandler(bookingSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/bookings", h.Reserve)
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/approve", h.Approve)
		api.POST("/bookings/:id/reject", h.Reject)
		api.POST("/bookings/:id/cancel", h.Cancel)
		api.POST("/bookings/:id/complete", h.Complete)
		api.GET("/properties/:id/bookings", h.ListPropertyBookings)
		api.GET("/properties/:id/holds", h.ListPropertyHolds)
		api.GET("/requesters/:id/bookings", h.ListRequesterBookings)
	}

	return bookingSvc, r
}

func sampleBooking() *domain.Booking {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return &domain.Booking{
		ID:            uuid.New().String(),
		PropertyID:    uuid.New().String(),
		RequesterID:   uuid.New().String(),
		OwnerID:       uuid.New().String(),
		Kind:          domain.KindShortlet,
		Range: domain.DateRange{
			CheckIn:  time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC),
			CheckOut: time.Date(2026, 3, 14, 11, 0, 0, 0, time.UTC),
		},
		Status:        domain.BookingStatusPending,
		PaymentStatus: domain.PaymentStatusPending,
		HoldExpiresAt: now.Add(30 * time.Minute),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func reserveBody(b *domain.Booking) []byte {
	body, _ := json.Marshal(dto.ReserveRequest{
		PropertyID:  b.PropertyID,
		RequesterID: b.RequesterID,
		OwnerID:     b.OwnerID,
		Kind:        string(b.Kind),
		CheckIn:     b.Range.CheckIn.Format(time.RFC3339),
		CheckOut:    b.Range.CheckOut.Format(time.RFC3339),
	})
	return body
}

func postJSON(t *testing.T, r http.Handler, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_Reserve_Created(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	booking := sampleBooking()
	bookingSvc.EXPECT().Reserve(mock.Anything, mock.Anything).Return(booking, nil)

	w := postJSON(t, r, "/api/bookings", reserveBody(booking))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, booking.ID, resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, booking.Range.CheckIn.Format(time.RFC3339), resp.Range.CheckIn)
}

func TestHandler_Reserve_MissingFields(t *testing.T) {
	_, r := setupRouter(t)

	w := postJSON(t, r, "/api/bookings", []byte(`{"kind":"shortlet"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Reserve_BadTimestamp(t *testing.T) {
	_, r := setupRouter(t)

	booking := sampleBooking()
	body, _ := json.Marshal(dto.ReserveRequest{
		PropertyID:  booking.PropertyID,
		RequesterID: booking.RequesterID,
		OwnerID:     booking.OwnerID,
		Kind:        "shortlet",
		CheckIn:     "tomorrow",
		CheckOut:    booking.Range.CheckOut.Format(time.RFC3339),
	})

	w := postJSON(t, r, "/api/bookings", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Reserve_ConflictCarriesRange(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	booking := sampleBooking()
	held := domain.DateRange{
		CheckIn:  time.Date(2026, 3, 12, 14, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2026, 3, 16, 11, 0, 0, 0, time.UTC),
	}
	bookingSvc.EXPECT().Reserve(mock.Anything, mock.Anything).
		Return(nil, &domain.ConflictError{PropertyID: booking.PropertyID, Conflicting: held})

	w := postJSON(t, r, "/api/bookings", reserveBody(booking))

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Conflict)
	assert.Equal(t, held.CheckIn.Format(time.RFC3339), resp.Conflict.CheckIn)
	assert.Equal(t, held.CheckOut.Format(time.RFC3339), resp.Conflict.CheckOut)
}

func TestHandler_Reserve_ValidationError(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	booking := sampleBooking()
	bookingSvc.EXPECT().Reserve(mock.Anything, mock.Anything).
		Return(nil, domain.ErrValidation)

	w := postJSON(t, r, "/api/bookings", reserveBody(booking))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Reserve_PropertyBusy(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	booking := sampleBooking()
	bookingSvc.EXPECT().Reserve(mock.Anything, mock.Anything).
		Return(nil, domain.ErrPropertyBusy)

	w := postJSON(t, r, "/api/bookings", reserveBody(booking))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHandler_GetBooking_Success(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	booking := sampleBooking()
	bookingSvc.EXPECT().Get(mock.Anything, booking.ID).Return(booking, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/"+booking.ID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, booking.ID, resp.ID)
}

func TestHandler_GetBooking_NotFound(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	id := uuid.New().String()
	bookingSvc.EXPECT().Get(mock.Anything, id).Return(nil, domain.ErrBookingNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/"+id, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetBooking_BadID(t *testing.T) {
	_, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Approve_Success(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	booking := sampleBooking()
	booking.Status = domain.BookingStatusConfirmed
	actorID := booking.OwnerID

	bookingSvc.EXPECT().
		Apply(mock.Anything, booking.ID, domain.EventApprove, actorID, "").
		Return(booking, nil)

	body, _ := json.Marshal(dto.TransitionRequest{ActorID: actorID})
	w := postJSON(t, r, "/api/bookings/"+booking.ID+"/approve", body)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "confirmed", resp.Status)
}

func TestHandler_Cancel_PassesReason(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	booking := sampleBooking()
	booking.Status = domain.BookingStatusCancelled
	actorID := booking.RequesterID

	bookingSvc.EXPECT().
		Apply(mock.Anything, booking.ID, domain.EventCancel, actorID, "change of plans").
		Return(booking, nil)

	body, _ := json.Marshal(dto.TransitionRequest{ActorID: actorID, Reason: "change of plans"})
	w := postJSON(t, r, "/api/bookings/"+booking.ID+"/cancel", body)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_Reject_InvalidTransition(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	booking := sampleBooking()
	actorID := booking.OwnerID

	bookingSvc.EXPECT().
		Apply(mock.Anything, booking.ID, domain.EventReject, actorID, "").
		Return(nil, &domain.InvalidTransitionError{From: domain.BookingStatusCompleted, Event: domain.EventReject})

	body, _ := json.Marshal(dto.TransitionRequest{ActorID: actorID})
	w := postJSON(t, r, "/api/bookings/"+booking.ID+"/reject", body)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Nil(t, resp.Conflict)
}

func TestHandler_Complete_MissingActor(t *testing.T) {
	_, r := setupRouter(t)

	booking := sampleBooking()
	w := postJSON(t, r, "/api/bookings/"+booking.ID+"/complete", []byte(`{}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListPropertyBookings(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	booking := sampleBooking()
	bookingSvc.EXPECT().ListByProperty(mock.Anything, booking.PropertyID).
		Return([]*domain.Booking{booking}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/properties/"+booking.PropertyID+"/bookings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, booking.ID, resp[0].ID)
}

func TestHandler_ListPropertyHolds(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	booking := sampleBooking()
	bookingSvc.EXPECT().ActiveHolds(mock.Anything, booking.PropertyID).
		Return([]domain.Hold{booking.Hold()}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/properties/"+booking.PropertyID+"/holds", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.HoldResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, booking.ID, resp[0].BookingID)
	assert.Equal(t, "shortlet", resp[0].Kind)
}

func TestHandler_ListRequesterBookings_Empty(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	requesterID := uuid.New().String()
	bookingSvc.EXPECT().ListByRequester(mock.Anything, requesterID).
		Return(nil, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/requesters/"+requesterID+"/bookings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestHandler_ListRequesterBookings_InternalError(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	requesterID := uuid.New().String()
	bookingSvc.EXPECT().ListByRequester(mock.Anything, requesterID).
		Return(nil, errors.New("db down"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/requesters/"+requesterID+"/bookings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
