package invoice

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/aldercreekdigital/rolloff/internal/gateway"
	"github.com/aldercreekdigital/rolloff/internal/invoice"
)

// SessionCreator opens a hosted checkout for an invoice.
type SessionCreator interface {
	CreateSession(ctx context.Context, inv *invoice.Invoice) (string, error)
}

type Handler struct {
	svc        *invoice.Service
	checkout   SessionCreator
	businessID uuid.UUID
}

func NewHandler(svc *invoice.Service, checkout SessionCreator, businessID uuid.UUID) *Handler {
	return &Handler{svc: svc, checkout: checkout, businessID: businessID}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Post("/{id}/checkout", h.createCheckout)
}

// AdminRoutes hold the void operation, mounted behind auth.
func (h *Handler) AdminRoutes(r chi.Router) {
	r.Post("/{id}/void", h.void)
}

type lineItemResponse struct {
	Label       string `json:"label"`
	AmountCents int64  `json:"amount_cents"`
	Type        string `json:"type"`
	SortOrder   int    `json:"sort_order"`
	Taxable     bool   `json:"taxable"`
}

type invoiceResponse struct {
	ID                uuid.UUID          `json:"id"`
	Number            string             `json:"number"`
	CustomerID        uuid.UUID          `json:"customer_id"`
	BookingRequestID  uuid.UUID          `json:"booking_request_id"`
	SubtotalCents     int64              `json:"subtotal_cents"`
	TaxCents          int64              `json:"tax_cents"`
	ProcessingCents   int64              `json:"processing_cents"`
	TotalCents        int64              `json:"total_cents"`
	Status            invoice.Status     `json:"status"`
	BookingID         *uuid.UUID         `json:"booking_id,omitempty"`
	ProviderPaymentID *string            `json:"provider_payment_id,omitempty"`
	LineItems         []lineItemResponse `json:"line_items,omitempty"`
	CreatedAt         time.Time          `json:"created_at"`
	PaidAt            *time.Time         `json:"paid_at,omitempty"`
}

func toResponse(inv *invoice.Invoice) invoiceResponse {
	resp := invoiceResponse{
		ID:                inv.ID,
		Number:            inv.Number,
		CustomerID:        inv.CustomerID,
		BookingRequestID:  inv.BookingRequestID,
		SubtotalCents:     inv.SubtotalCents,
		TaxCents:          inv.TaxCents,
		ProcessingCents:   inv.ProcessingCents,
		TotalCents:        inv.TotalCents,
		Status:            inv.Status,
		BookingID:         inv.BookingID,
		ProviderPaymentID: inv.ProviderPaymentID,
		CreatedAt:         inv.CreatedAt,
		PaidAt:            inv.PaidAt,
	}

	for _, it := range inv.LineItems {
		resp.LineItems = append(resp.LineItems, lineItemResponse{
			Label:       it.Label,
			AmountCents: it.AmountCents,
			Type:        string(it.Type),
			SortOrder:   it.SortOrder,
			Taxable:     it.Taxable,
		})
	}

	return resp
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	customerID, err := uuid.Parse(r.URL.Query().Get("customer_id"))
	if err != nil {
		http.Error(w, "customer_id is required", http.StatusBadRequest)
		return
	}

	invoices, err := h.svc.ListByCustomer(r.Context(), h.businessID, customerID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]invoiceResponse, len(invoices))
	for i, inv := range invoices {
		resp[i] = toResponse(inv)
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

	inv, err := h.svc.Get(r.Context(), h.businessID, id)
	if err != nil {
		if errors.Is(err, invoice.ErrNotFound) {
			http.Error(w, "invoice not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(inv)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type checkoutResponse struct {
	RedirectURL string `json:"redirect_url"`
}

func (h *Handler) createCheckout(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	inv, err := h.svc.Get(r.Context(), h.businessID, id)
	if err != nil {
		if errors.Is(err, invoice.ErrNotFound) {
			http.Error(w, "invoice not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if inv.Status != invoice.StatusUnpaid {
		http.Error(w, "invoice is not payable", http.StatusConflict)
		return
	}

	url, err := h.checkout.CreateSession(r.Context(), inv)
	if err != nil {
		if errors.Is(err, gateway.ErrGateway) {
			http.Error(w, "payment gateway unavailable", http.StatusBadGateway)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(checkoutResponse{RedirectURL: url}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) void(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Void(r.Context(), h.businessID, id); err != nil {
		switch {
		case errors.Is(err, invoice.ErrNotFound):
			http.Error(w, "invoice not found", http.StatusNotFound)
		case errors.Is(err, invoice.ErrNotVoidable):
			http.Error(w, "invoice is not unpaid", http.StatusConflict)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
