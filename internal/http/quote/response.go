package quote

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aldercreekdigital/rolloff/internal/pricing"
	"github.com/aldercreekdigital/rolloff/internal/quote"
)

type lineItemResponse struct {
	Label       string `json:"label"`
	AmountCents int64  `json:"amount_cents"`
	Type        string `json:"type"`
	SortOrder   int    `json:"sort_order"`
	Taxable     bool   `json:"taxable"`
}

type snapshotResponse struct {
	BasePriceCents          int64           `json:"base_price_cents"`
	DeliveryFeeCents        int64           `json:"delivery_fee_cents"`
	HaulFeeCents            int64           `json:"haul_fee_cents"`
	RentalDays              int             `json:"rental_days"`
	IncludedDays            int             `json:"included_days"`
	ExtraDays               int             `json:"extra_days"`
	ExtraDayFeeCents        int64           `json:"extra_day_fee_cents"`
	ExtendedServiceFeeCents int64           `json:"extended_service_fee_cents"`
	SubtotalCents           int64           `json:"subtotal_cents"`
	TaxableAmountCents      int64           `json:"taxable_amount_cents"`
	TaxRate                 decimal.Decimal `json:"tax_rate"`
	TaxAmountCents          int64           `json:"tax_amount_cents"`
	ProcessingFeeCents      int64           `json:"processing_fee_cents"`
	TotalCents              int64           `json:"total_cents"`
	TaxExempt               bool            `json:"tax_exempt"`
}

type quoteResponse struct {
	ID          uuid.UUID          `json:"id"`
	CustomerID  uuid.UUID          `json:"customer_id"`
	AddressID   uuid.UUID          `json:"address_id"`
	WasteType   pricing.WasteType  `json:"waste_type,omitempty"`
	Size        pricing.Size       `json:"size,omitempty"`
	DropoffDate *time.Time         `json:"dropoff_date,omitempty"`
	PickupDate  *time.Time         `json:"pickup_date,omitempty"`
	Status      quote.Status       `json:"status"`
	Snapshot    *snapshotResponse  `json:"snapshot,omitempty"`
	LineItems   []lineItemResponse `json:"line_items,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   *time.Time         `json:"updated_at,omitempty"`
}

func toResponse(q *quote.Quote) quoteResponse {
	resp := quoteResponse{
		ID:         q.ID,
		CustomerID: q.CustomerID,
		AddressID:  q.AddressID,
		WasteType:  q.WasteType,
		Size:       q.Size,
		Status:     q.Status,
		CreatedAt:  q.CreatedAt,
		UpdatedAt:  q.UpdatedAt,
	}

	if !q.DropoffDate.IsZero() {
		d := q.DropoffDate
		resp.DropoffDate = &d
	}

	if !q.PickupDate.IsZero() {
		p := q.PickupDate
		resp.PickupDate = &p
	}

	if q.Snapshot != nil {
		s := q.Snapshot
		resp.Snapshot = &snapshotResponse{
			BasePriceCents:          s.BasePriceCents,
			DeliveryFeeCents:        s.DeliveryFeeCents,
			HaulFeeCents:            s.HaulFeeCents,
			RentalDays:              s.RentalDays,
			IncludedDays:            s.IncludedDays,
			ExtraDays:               s.ExtraDays,
			ExtraDayFeeCents:        s.ExtraDayFeeCents,
			ExtendedServiceFeeCents: s.ExtendedServiceFeeCents,
			SubtotalCents:           s.SubtotalCents,
			TaxableAmountCents:      s.TaxableAmountCents,
			TaxRate:                 s.TaxRate,
			TaxAmountCents:          s.TaxAmountCents,
			ProcessingFeeCents:      s.ProcessingFeeCents,
			TotalCents:              s.TotalCents,
			TaxExempt:               s.TaxExempt,
		}
	}

	for _, it := range q.LineItems {
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
