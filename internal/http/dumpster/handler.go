package dumpster

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/aldercreekdigital/rolloff/internal/dumpster"
	"github.com/aldercreekdigital/rolloff/internal/pricing"
)

type Handler struct {
	svc        *dumpster.Service
	businessID uuid.UUID
}

func NewHandler(svc *dumpster.Service, businessID uuid.UUID) *Handler {
	return &Handler{svc: svc, businessID: businessID}
}

// AdminRoutes hold the whole fleet surface; none of it is customer facing.
func (h *Handler) AdminRoutes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/orphaned", h.orphaned)
	r.Get("/{id}", h.get)
	r.Put("/{id}/status", h.setStatus)
}

type dumpsterResponse struct {
	ID         uuid.UUID       `json:"id"`
	UnitNumber string          `json:"unit_number"`
	Size       pricing.Size    `json:"size"`
	Status     dumpster.Status `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
}

func toResponse(d *dumpster.Dumpster) dumpsterResponse {
	return dumpsterResponse{
		ID:         d.ID,
		UnitNumber: d.UnitNumber,
		Size:       d.Size,
		Status:     d.Status,
		CreatedAt:  d.CreatedAt,
	}
}

type createRequest struct {
	UnitNumber string       `json:"unit_number"`
	Size       pricing.Size `json:"size"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.UnitNumber == "" || !req.Size.Valid() {
		http.Error(w, "unit_number and a valid size are required", http.StatusBadRequest)
		return
	}

	d := &dumpster.Dumpster{
		BusinessID: h.businessID,
		UnitNumber: req.UnitNumber,
		Size:       req.Size,
	}

	if err := h.svc.Create(r.Context(), d); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(d)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	var status *dumpster.Status

	if raw := r.URL.Query().Get("status"); raw != "" {
		s := dumpster.Status(raw)
		status = &s
	}

	dumpsters, err := h.svc.List(r.Context(), h.businessID, status)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.writeList(w, dumpsters)
}

func (h *Handler) orphaned(w http.ResponseWriter, r *http.Request) {
	dumpsters, err := h.svc.Orphaned(r.Context(), h.businessID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.writeList(w, dumpsters)
}

func (h *Handler) writeList(w http.ResponseWriter, dumpsters []*dumpster.Dumpster) {
	resp := make([]dumpsterResponse, len(dumpsters))
	for i, d := range dumpsters {
		resp[i] = toResponse(d)
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

	d, err := h.svc.Get(r.Context(), h.businessID, id)
	if err != nil {
		if errors.Is(err, dumpster.ErrNotFound) {
			http.Error(w, "dumpster not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(d)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type setStatusRequest struct {
	Status dumpster.Status `json:"status"`
}

func (h *Handler) setStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req setStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	switch req.Status {
	case dumpster.StatusAvailable, dumpster.StatusMaintenance, dumpster.StatusRetired:
	default:
		http.Error(w, "status must be available, maintenance or retired", http.StatusBadRequest)
		return
	}

	if err := h.svc.SetStatus(r.Context(), h.businessID, id, req.Status); err != nil {
		if errors.Is(err, dumpster.ErrNotFound) {
			http.Error(w, "dumpster not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
