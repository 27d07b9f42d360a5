package booking

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/aldercreekdigital/rolloff/internal/booking"
	"github.com/aldercreekdigital/rolloff/internal/dumpster"
)

type Handler struct {
	svc        *booking.Service
	businessID uuid.UUID
}

func NewHandler(svc *booking.Service, businessID uuid.UUID) *Handler {
	return &Handler{svc: svc, businessID: businessID}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
}

// AdminRoutes mount the operational endpoints behind auth.
func (h *Handler) AdminRoutes(r chi.Router) {
	r.Post("/{id}/transition", h.transition)
	r.Post("/{id}/dumpster", h.assignDumpster)
}

type bookingResponse struct {
	ID               uuid.UUID      `json:"id"`
	BookingRequestID uuid.UUID      `json:"booking_request_id"`
	CustomerID       uuid.UUID      `json:"customer_id"`
	AddressID        uuid.UUID      `json:"address_id"`
	DumpsterID       *uuid.UUID     `json:"dumpster_id,omitempty"`
	Status           booking.Status `json:"status"`
	Size             string         `json:"size"`
	WasteType        string         `json:"waste_type"`
	TotalCents       int64          `json:"total_cents"`
	DroppedAt        *time.Time     `json:"dropped_at,omitempty"`
	PickedUpAt       *time.Time     `json:"picked_up_at,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
}

func toResponse(b *booking.Booking) bookingResponse {
	return bookingResponse{
		ID:               b.ID,
		BookingRequestID: b.BookingRequestID,
		CustomerID:       b.CustomerID,
		AddressID:        b.AddressID,
		DumpsterID:       b.DumpsterID,
		Status:           b.Status,
		Size:             string(b.Snapshot.Size),
		WasteType:        string(b.Snapshot.WasteType),
		TotalCents:       b.Snapshot.TotalCents,
		DroppedAt:        b.DroppedAt,
		PickedUpAt:       b.PickedUpAt,
		CreatedAt:        b.CreatedAt,
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	var status *booking.Status

	if raw := r.URL.Query().Get("status"); raw != "" {
		s := booking.Status(raw)
		status = &s
	}

	bookings, err := h.svc.List(r.Context(), h.businessID, status)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]bookingResponse, len(bookings))
	for i, b := range bookings {
		resp[i] = toResponse(b)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	b, err := h.svc.Get(r.Context(), h.businessID, id)
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			http.Error(w, "booking not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(b)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type transitionRequest struct {
	Status booking.Status `json:"status"`
}

func (h *Handler) transition(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req transitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	b, err := h.svc.Transition(r.Context(), h.businessID, id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrNotFound):
			http.Error(w, "booking not found", http.StatusNotFound)
		case errors.Is(err, booking.ErrInvalidTransition):
			http.Error(w, "transition not allowed from current status", http.StatusUnprocessableEntity)
		case errors.Is(err, booking.ErrConflict):
			http.Error(w, "booking was modified concurrently", http.StatusConflict)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(b)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type assignDumpsterRequest struct {
	DumpsterID uuid.UUID `json:"dumpster_id"`
}

func (h *Handler) assignDumpster(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req assignDumpsterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.DumpsterID == uuid.Nil {
		http.Error(w, "dumpster_id is required", http.StatusBadRequest)
		return
	}

	b, err := h.svc.AssignDumpster(r.Context(), h.businessID, id, req.DumpsterID)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrNotFound):
			http.Error(w, "booking not found", http.StatusNotFound)
		case errors.Is(err, dumpster.ErrNotFound):
			http.Error(w, "dumpster not found", http.StatusNotFound)
		case errors.Is(err, booking.ErrInvalidState):
			http.Error(w, "booking is in a terminal status", http.StatusConflict)
		case errors.Is(err, dumpster.ErrUnavailable):
			http.Error(w, "dumpster is not available", http.StatusConflict)
		case errors.Is(err, booking.ErrSizeMismatch):
			http.Error(w, "dumpster size does not match booking", http.StatusUnprocessableEntity)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(b)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
