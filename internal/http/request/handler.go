package request

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/aldercreekdigital/rolloff/internal/invoice"
	"github.com/aldercreekdigital/rolloff/internal/notify"
	"github.com/aldercreekdigital/rolloff/internal/quote"
	"github.com/aldercreekdigital/rolloff/internal/request"
)

type Handler struct {
	svc        *request.Service
	dispatcher *notify.Dispatcher
	businessID uuid.UUID
}

func NewHandler(svc *request.Service, dispatcher *notify.Dispatcher, businessID uuid.UUID) *Handler {
	return &Handler{svc: svc, dispatcher: dispatcher, businessID: businessID}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.submit)
	r.Get("/{id}", h.get)
}

// AdminRoutes are the approve/decline operations, mounted behind auth.
func (h *Handler) AdminRoutes(r chi.Router) {
	r.Post("/{id}/approve", h.approve)
	r.Post("/{id}/decline", h.decline)
}

type submitRequest struct {
	QuoteID      uuid.UUID `json:"quote_id"`
	CustomerID   uuid.UUID `json:"customer_id"`
	ContactName  string    `json:"contact_name"`
	ContactEmail string    `json:"contact_email"`
	ContactPhone string    `json:"contact_phone"`
}

type requestResponse struct {
	ID            uuid.UUID      `json:"id"`
	CustomerID    uuid.UUID      `json:"customer_id"`
	QuoteID       uuid.UUID      `json:"quote_id"`
	Status        request.Status `json:"status"`
	ContactName   string         `json:"contact_name"`
	ContactEmail  string         `json:"contact_email"`
	ContactPhone  string         `json:"contact_phone"`
	DeclineReason string         `json:"decline_reason,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     *time.Time     `json:"updated_at,omitempty"`
}

func toResponse(req *request.BookingRequest) requestResponse {
	return requestResponse{
		ID:            req.ID,
		CustomerID:    req.CustomerID,
		QuoteID:       req.QuoteID,
		Status:        req.Status,
		ContactName:   req.Contact.Name,
		ContactEmail:  req.Contact.Email,
		ContactPhone:  req.Contact.Phone,
		DeclineReason: req.DeclineReason,
		CreatedAt:     req.CreatedAt,
		UpdatedAt:     req.UpdatedAt,
	}
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.ContactEmail == "" {
		http.Error(w, "contact_email is required", http.StatusBadRequest)
		return
	}

	created, err := h.svc.Submit(r.Context(), h.businessID, request.SubmitParams{
		QuoteID:    req.QuoteID,
		CustomerID: req.CustomerID,
		Contact: request.Contact{
			Name:  req.ContactName,
			Email: req.ContactEmail,
			Phone: req.ContactPhone,
		},
	})
	if err != nil {
		switch {
		case errors.Is(err, quote.ErrNotFound):
			http.Error(w, "quote not found", http.StatusNotFound)
		case errors.Is(err, quote.ErrEmptyQuote):
			http.Error(w, "quote has not been priced", http.StatusUnprocessableEntity)
		case errors.Is(err, quote.ErrNotDraft):
			http.Error(w, "quote was already submitted", http.StatusConflict)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(created)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	req, err := h.svc.Get(r.Context(), h.businessID, id)
	if err != nil {
		if errors.Is(err, request.ErrNotFound) {
			http.Error(w, "booking request not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(req)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type approveResponse struct {
	InvoiceID     uuid.UUID `json:"invoice_id"`
	InvoiceNumber string    `json:"invoice_number"`
	TotalCents    int64     `json:"total_cents"`
}

func (h *Handler) approve(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	inv, effects, err := h.svc.Approve(r.Context(), h.businessID, id)
	if err != nil {
		writeReviewError(w, err)
		return
	}

	h.dispatcher.Dispatch(r.Context(), effects)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	resp := approveResponse{InvoiceID: inv.ID, InvoiceNumber: inv.Number, TotalCents: inv.TotalCents}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type declineRequest struct {
	Reason string `json:"reason"`
}

func (h *Handler) decline(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req declineRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	declined, effects, err := h.svc.Decline(r.Context(), h.businessID, id, req.Reason)
	if err != nil {
		writeReviewError(w, err)
		return
	}

	h.dispatcher.Dispatch(r.Context(), effects)

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(declined)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeReviewError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, request.ErrNotFound):
		http.Error(w, "booking request not found", http.StatusNotFound)
	case errors.Is(err, request.ErrInvalidState):
		http.Error(w, "booking request is not pending", http.StatusConflict)
	case errors.Is(err, quote.ErrEmptyQuote):
		http.Error(w, "linked quote has no snapshot", http.StatusUnprocessableEntity)
	case errors.Is(err, invoice.ErrNotFound):
		http.Error(w, "invoice not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
