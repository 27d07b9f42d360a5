package quote

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/aldercreekdigital/rolloff/internal/pricing"
	"github.com/aldercreekdigital/rolloff/internal/quote"
	"github.com/aldercreekdigital/rolloff/internal/rule"
)

type Handler struct {
	svc        *quote.Service
	businessID uuid.UUID
}

func NewHandler(svc *quote.Service, businessID uuid.UUID) *Handler {
	return &Handler{svc: svc, businessID: businessID}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Put("/{id}/pricing", h.configure)
}

type createQuoteRequest struct {
	CustomerID uuid.UUID `json:"customer_id"`
	AddressID  uuid.UUID `json:"address_id"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	q, err := h.svc.Create(r.Context(), h.businessID, quote.CreateParams{
		CustomerID: req.CustomerID,
		AddressID:  req.AddressID,
	})
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(q)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	q, err := h.svc.Get(r.Context(), h.businessID, id)
	if err != nil {
		if errors.Is(err, quote.ErrNotFound) {
			http.Error(w, "quote not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(q)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type configureQuoteRequest struct {
	WasteType   pricing.WasteType `json:"waste_type"`
	Size        pricing.Size      `json:"size"`
	DropoffDate time.Time         `json:"dropoff_date"`
	PickupDate  time.Time         `json:"pickup_date"`
}

func (h *Handler) configure(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req configureQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	q, err := h.svc.Configure(r.Context(), h.businessID, id, req.WasteType, req.Size, req.DropoffDate, req.PickupDate)
	if err != nil {
		switch {
		case errors.Is(err, quote.ErrNotFound):
			http.Error(w, "quote not found", http.StatusNotFound)
		case errors.Is(err, rule.ErrNotFound):
			http.Error(w, "no active pricing rule for waste type and size", http.StatusUnprocessableEntity)
		case errors.Is(err, quote.ErrNotDraft):
			http.Error(w, "quote is no longer editable", http.StatusConflict)
		case errors.Is(err, pricing.ErrInvalidRange):
			http.Error(w, "pickup date must not be before dropoff date", http.StatusBadRequest)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(q)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
