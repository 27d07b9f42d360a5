package rule

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aldercreekdigital/rolloff/internal/pricing"
	"github.com/aldercreekdigital/rolloff/internal/rule"
)

type Handler struct {
	svc        *rule.Service
	businessID uuid.UUID
}

func NewHandler(svc *rule.Service, businessID uuid.UUID) *Handler {
	return &Handler{svc: svc, businessID: businessID}
}

// AdminRoutes mount rate card management behind auth.
func (h *Handler) AdminRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Post("/{id}/deactivate", h.deactivate)
}

type ruleResponse struct {
	ID                 uuid.UUID         `json:"id"`
	WasteType          pricing.WasteType `json:"waste_type"`
	Size               pricing.Size      `json:"size"`
	BasePriceCents     int64             `json:"base_price_cents"`
	DeliveryFeeCents   int64             `json:"delivery_fee_cents"`
	HaulFeeCents       int64             `json:"haul_fee_cents"`
	IncludedDays       int               `json:"included_days"`
	ExtraDayFeeCents   int64             `json:"extra_day_fee_cents"`
	IncludedTons       decimal.Decimal   `json:"included_tons"`
	OveragePerTonCents int64             `json:"overage_per_ton_cents"`
	TaxExempt          bool              `json:"tax_exempt"`
	Active             bool              `json:"active"`
	CreatedAt          time.Time         `json:"created_at"`
}

func toResponse(r *rule.Rule) ruleResponse {
	return ruleResponse{
		ID:                 r.ID,
		WasteType:          r.WasteType,
		Size:               r.Size,
		BasePriceCents:     r.BasePriceCents,
		DeliveryFeeCents:   r.DeliveryFeeCents,
		HaulFeeCents:       r.HaulFeeCents,
		IncludedDays:       r.IncludedDays,
		ExtraDayFeeCents:   r.ExtraDayFeeCents,
		IncludedTons:       r.IncludedTons,
		OveragePerTonCents: r.OveragePerTonCents,
		TaxExempt:          r.TaxExempt,
		Active:             r.Active,
		CreatedAt:          r.CreatedAt,
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	rules, err := h.svc.List(r.Context(), h.businessID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]ruleResponse, len(rules))
	for i, ru := range rules {
		resp[i] = toResponse(ru)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type createRequest struct {
	WasteType          pricing.WasteType `json:"waste_type"`
	Size               pricing.Size      `json:"size"`
	BasePriceCents     int64             `json:"base_price_cents"`
	DeliveryFeeCents   int64             `json:"delivery_fee_cents"`
	HaulFeeCents       int64             `json:"haul_fee_cents"`
	IncludedDays       int               `json:"included_days"`
	ExtraDayFeeCents   int64             `json:"extra_day_fee_cents"`
	IncludedTons       decimal.Decimal   `json:"included_tons"`
	OveragePerTonCents int64             `json:"overage_per_ton_cents"`
	TaxExempt          bool              `json:"tax_exempt"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if !req.WasteType.Valid() || !req.Size.Valid() {
		http.Error(w, "valid waste_type and size are required", http.StatusBadRequest)
		return
	}

	if req.BasePriceCents <= 0 || req.IncludedDays < 1 {
		http.Error(w, "base_price_cents must be positive and included_days at least 1", http.StatusBadRequest)
		return
	}

	ru := &rule.Rule{
		BusinessID: h.businessID,
		Rule: pricing.Rule{
			WasteType:          req.WasteType,
			Size:               req.Size,
			BasePriceCents:     req.BasePriceCents,
			DeliveryFeeCents:   req.DeliveryFeeCents,
			HaulFeeCents:       req.HaulFeeCents,
			IncludedDays:       req.IncludedDays,
			ExtraDayFeeCents:   req.ExtraDayFeeCents,
			IncludedTons:       req.IncludedTons,
			OveragePerTonCents: req.OveragePerTonCents,
			TaxExempt:          req.TaxExempt,
		},
	}

	if err := h.svc.Create(r.Context(), ru); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(ru)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) deactivate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Deactivate(r.Context(), h.businessID, id); err != nil {
		if errors.Is(err, rule.ErrNotFound) {
			http.Error(w, "rule not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
