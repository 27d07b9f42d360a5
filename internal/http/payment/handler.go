package payment

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/aldercreekdigital/rolloff/internal/invoice"
	"github.com/aldercreekdigital/rolloff/internal/notify"
	"github.com/aldercreekdigital/rolloff/internal/payment"
)

type Handler struct {
	svc        *payment.Service
	dispatcher *notify.Dispatcher
	businessID uuid.UUID
}

func NewHandler(svc *payment.Service, dispatcher *notify.Dispatcher, businessID uuid.UUID) *Handler {
	return &Handler{svc: svc, dispatcher: dispatcher, businessID: businessID}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/confirm", h.confirm)
}

type confirmRequest struct {
	InvoiceID         uuid.UUID `json:"invoice_id"`
	ProviderPaymentID string    `json:"provider_payment_id"`
	AmountCents       int64     `json:"amount_cents"`
}

type confirmResponse struct {
	InvoiceID uuid.UUID  `json:"invoice_id"`
	BookingID *uuid.UUID `json:"booking_id,omitempty"`
	Duplicate bool       `json:"duplicate"`
}

// confirm is the synchronous confirmation path. The customer's browser lands
// here after checkout; the provider webhook may deliver the same payment
// before or after. Reconcile absorbs either ordering.
func (h *Handler) confirm(w http.ResponseWriter, r *http.Request) {
	var req confirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.InvoiceID == uuid.Nil || req.ProviderPaymentID == "" {
		http.Error(w, "invoice_id and provider_payment_id are required", http.StatusBadRequest)
		return
	}

	res, effects, err := h.svc.Reconcile(r.Context(), h.businessID, req.InvoiceID, req.ProviderPaymentID, req.AmountCents)
	if err != nil {
		switch {
		case errors.Is(err, invoice.ErrNotFound):
			http.Error(w, "invoice not found", http.StatusNotFound)
		case errors.Is(err, payment.ErrInvoiceNotPayable):
			http.Error(w, "invoice is not payable", http.StatusConflict)
		case errors.Is(err, payment.ErrDataIntegrity):
			slog.Error("payment reconciliation hit inconsistent data", "invoice_id", req.InvoiceID, "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	h.dispatcher.Dispatch(r.Context(), effects)

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(confirmResponse(*res)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
