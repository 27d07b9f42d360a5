package pricing

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ErrInvalidRange is returned when the pickup date falls before the dropoff date.
var ErrInvalidRange = errors.New("pickup date before dropoff date")

// WasteType identifies what a customer intends to put in the dumpster.
type WasteType string

const (
	WasteHousehold    WasteType = "household"
	WasteConstruction WasteType = "construction"
	WasteConcrete     WasteType = "concrete"
	WasteYard         WasteType = "yard"
)

func (w WasteType) Valid() bool {
	switch w {
	case WasteHousehold, WasteConstruction, WasteConcrete, WasteYard:
		return true
	}

	return false
}

// Size is the dumpster size in yards.
type Size string

const (
	Size10 Size = "10"
	Size15 Size = "15"
	Size20 Size = "20"
	Size30 Size = "30"
	Size40 Size = "40"
)

func (s Size) Valid() bool {
	switch s {
	case Size10, Size15, Size20, Size30, Size40:
		return true
	}

	return false
}

// LineItemType classifies a line item for display and tax treatment.
type LineItemType string

const (
	LineBase     LineItemType = "base"
	LineDelivery LineItemType = "delivery"
	LineHaul     LineItemType = "haul"
	LineExtraDay LineItemType = "extra_day"
	LineOverage  LineItemType = "overage"
	LineTax      LineItemType = "tax"
	LineFee      LineItemType = "fee"
)

// Rule is an active pricing rule for a (waste type, size) pair.
type Rule struct {
	WasteType          WasteType
	Size               Size
	BasePriceCents     int64
	DeliveryFeeCents   int64
	HaulFeeCents       int64
	IncludedDays       int
	ExtraDayFeeCents   int64
	IncludedTons       decimal.Decimal
	OveragePerTonCents int64
	TaxExempt          bool
}

// FeeConfig carries the business-level tax and processing fee settings.
type FeeConfig struct {
	TaxRate             decimal.Decimal
	ProcessingFeePct    decimal.Decimal
	ProcessingFlatCents int64
}

// LineItem is a single priced component of a quote or invoice.
// Ordering matters for display, not for totals.
type LineItem struct {
	Label       string
	AmountCents int64
	Type        LineItemType
	SortOrder   int
	Taxable     bool
}

// Snapshot is the immutable itemized result of a pricing calculation.
// Once attached to a quote it is never recomputed.
type Snapshot struct {
	BasePriceCents          int64
	DeliveryFeeCents        int64
	HaulFeeCents            int64
	RentalDays              int
	IncludedDays            int
	ExtraDays               int
	ExtraDayFeeCents        int64
	ExtendedServiceFeeCents int64
	IncludedTons            decimal.Decimal
	OveragePerTonCents      int64
	SubtotalCents           int64
	TaxableAmountCents      int64
	TaxRate                 decimal.Decimal
	TaxAmountCents          int64
	ProcessingFeeCents      int64
	TotalCents              int64
	Size                    Size
	WasteType               WasteType
	TaxExempt               bool
}

// RentalDays counts billable days between dropoff and pickup.
// Same-day rentals bill as one day.
func RentalDays(dropoff, pickup time.Time) (int, error) {
	if pickup.Before(dropoff) {
		return 0, ErrInvalidRange
	}

	days := int(pickup.Sub(dropoff).Hours() / 24)
	if days < 1 {
		days = 1
	}

	return days, nil
}

// Calculate prices a rental from a rule and a date range. It is pure and
// deterministic: identical inputs always yield identical output. All money
// values are integer cents; decimal arithmetic is used only for the tax and
// processing fee roundings (half-up).
func Calculate(rule Rule, fees FeeConfig, dropoff, pickup time.Time) (Snapshot, []LineItem, error) {
	rentalDays, err := RentalDays(dropoff, pickup)
	if err != nil {
		return Snapshot{}, nil, err
	}

	extraDays := rentalDays - rule.IncludedDays
	if extraDays < 0 {
		extraDays = 0
	}

	extendedServiceFeeCents := int64(extraDays) * rule.ExtraDayFeeCents

	items := []LineItem{
		{
			Label:       fmt.Sprintf("%s yard dumpster, %d day rental", rule.Size, rule.IncludedDays),
			AmountCents: rule.BasePriceCents,
			Type:        LineBase,
			SortOrder:   0,
			Taxable:     true,
		},
		{
			Label:       "Delivery",
			AmountCents: rule.DeliveryFeeCents,
			Type:        LineDelivery,
			SortOrder:   1,
			Taxable:     true,
		},
		{
			Label:       "Haul away",
			AmountCents: rule.HaulFeeCents,
			Type:        LineHaul,
			SortOrder:   2,
			Taxable:     true,
		},
	}

	if extraDays > 0 {
		items = append(items, LineItem{
			Label:       fmt.Sprintf("%d extra days", extraDays),
			AmountCents: extendedServiceFeeCents,
			Type:        LineExtraDay,
			SortOrder:   3,
			Taxable:     true,
		})
	}

	var subtotalCents, taxableAmountCents int64
	for _, it := range items {
		subtotalCents += it.AmountCents

		if it.Taxable {
			taxableAmountCents += it.AmountCents
		}
	}

	var taxAmountCents int64
	if !rule.TaxExempt {
		taxAmountCents = roundHalfUp(decimal.NewFromInt(taxableAmountCents).Mul(fees.TaxRate))
	}

	// Processing fee applies to subtotal plus tax; it is not itself taxable.
	processingFeeCents := roundHalfUp(
		decimal.NewFromInt(subtotalCents+taxAmountCents).Mul(fees.ProcessingFeePct),
	) + fees.ProcessingFlatCents

	snap := Snapshot{
		BasePriceCents:          rule.BasePriceCents,
		DeliveryFeeCents:        rule.DeliveryFeeCents,
		HaulFeeCents:            rule.HaulFeeCents,
		RentalDays:              rentalDays,
		IncludedDays:            rule.IncludedDays,
		ExtraDays:               extraDays,
		ExtraDayFeeCents:        rule.ExtraDayFeeCents,
		ExtendedServiceFeeCents: extendedServiceFeeCents,
		IncludedTons:            rule.IncludedTons,
		OveragePerTonCents:      rule.OveragePerTonCents,
		SubtotalCents:           subtotalCents,
		TaxableAmountCents:      taxableAmountCents,
		TaxRate:                 fees.TaxRate,
		TaxAmountCents:          taxAmountCents,
		ProcessingFeeCents:      processingFeeCents,
		TotalCents:              subtotalCents + taxAmountCents + processingFeeCents,
		Size:                    rule.Size,
		WasteType:               rule.WasteType,
		TaxExempt:               rule.TaxExempt,
	}

	return snap, items, nil
}

// roundHalfUp converts a decimal cent amount to integer cents, rounding
// half-up. Amounts here are never negative.
func roundHalfUp(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}
