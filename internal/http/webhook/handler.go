package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/aldercreekdigital/rolloff/internal/gateway"
	"github.com/aldercreekdigital/rolloff/internal/invoice"
	"github.com/aldercreekdigital/rolloff/internal/notify"
	"github.com/aldercreekdigital/rolloff/internal/payment"
)

// Gateway is the slice of the payment provider the webhook needs: signature
// verification and payment resolution.
type Gateway interface {
	VerifySignature(xSignature, xRequestID, dataID string) error
	PaymentDetails(ctx context.Context, providerPaymentID string) (*gateway.PaymentDetails, error)
}

type Handler struct {
	gw         Gateway
	svc        *payment.Service
	dispatcher *notify.Dispatcher
	businessID uuid.UUID
}

func NewHandler(gw Gateway, svc *payment.Service, dispatcher *notify.Dispatcher, businessID uuid.UUID) *Handler {
	return &Handler{gw: gw, svc: svc, dispatcher: dispatcher, businessID: businessID}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/mercadopago", h.notification)
}

type notificationBody struct {
	Type string `json:"type"`
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

// notification handles provider payment notifications. Deliveries are
// at-least-once and unordered; Reconcile makes replays harmless, so any
// outcome short of a provider or database failure gets a 200 to stop the
// retry loop.
func (h *Handler) notification(w http.ResponseWriter, r *http.Request) {
	var body notificationBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	dataID := body.Data.ID
	if dataID == "" {
		dataID = r.URL.Query().Get("data.id")
	}

	if err := h.gw.VerifySignature(r.Header.Get("x-signature"), r.Header.Get("x-request-id"), dataID); err != nil {
		slog.Warn("rejected webhook with bad signature", "data_id", dataID)
		http.Error(w, "invalid signature", http.StatusUnauthorized)

		return
	}

	if body.Type != "payment" {
		w.WriteHeader(http.StatusOK)
		return
	}

	details, err := h.gw.PaymentDetails(r.Context(), dataID)
	if err != nil {
		slog.Error("failed to resolve payment notification", "data_id", dataID, "error", err)
		http.Error(w, "payment lookup failed", http.StatusBadGateway)

		return
	}

	if !details.Approved {
		w.WriteHeader(http.StatusOK)
		return
	}

	_, effects, err := h.svc.Reconcile(r.Context(), h.businessID, details.InvoiceID, dataID, details.AmountCents)
	if err != nil {
		switch {
		case errors.Is(err, invoice.ErrNotFound), errors.Is(err, payment.ErrInvoiceNotPayable):
			// Nothing a retry would fix. Acknowledge and log.
			slog.Warn("webhook payment does not map to a payable invoice",
				"invoice_id", details.InvoiceID, "data_id", dataID, "error", err)
			w.WriteHeader(http.StatusOK)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	h.dispatcher.Dispatch(r.Context(), effects)

	w.WriteHeader(http.StatusOK)
}
