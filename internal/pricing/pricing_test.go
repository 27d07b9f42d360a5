package pricing_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aldercreekdigital/rolloff/internal/pricing"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func standardFees() pricing.FeeConfig {
	return pricing.FeeConfig{
		TaxRate:             decimal.RequireFromString("0.07"),
		ProcessingFeePct:    decimal.RequireFromString("0.03"),
		ProcessingFlatCents: 30,
	}
}

func TestRentalDays(t *testing.T) {
	tests := []struct {
		name    string
		dropoff time.Time
		pickup  time.Time
		want    int
		wantErr error
	}{
		{
			name:    "SameDayBillsOneDay",
			dropoff: date(2025, 6, 1),
			pickup:  date(2025, 6, 1),
			want:    1,
		},
		{
			name:    "NineDaySpan",
			dropoff: date(2025, 6, 1),
			pickup:  date(2025, 6, 10),
			want:    9,
		},
		{
			name:    "PickupBeforeDropoff",
			dropoff: date(2025, 6, 10),
			pickup:  date(2025, 6, 1),
			wantErr: pricing.ErrInvalidRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pricing.RentalDays(tt.dropoff, tt.pickup)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculate_WorkedExample(t *testing.T) {
	rule := pricing.Rule{
		WasteType:        pricing.WasteHousehold,
		Size:             pricing.Size20,
		BasePriceCents:   39900,
		DeliveryFeeCents: 0,
		HaulFeeCents:     0,
		IncludedDays:     7,
		ExtraDayFeeCents: 2500,
	}

	snap, items, err := pricing.Calculate(rule, standardFees(), date(2025, 6, 1), date(2025, 6, 10))
	require.NoError(t, err)

	assert.Equal(t, 9, snap.RentalDays)
	assert.Equal(t, 2, snap.ExtraDays)
	assert.Equal(t, int64(5000), snap.ExtendedServiceFeeCents)
	assert.Equal(t, int64(44900), snap.SubtotalCents)
	assert.Equal(t, int64(44900), snap.TaxableAmountCents)
	assert.Equal(t, int64(3143), snap.TaxAmountCents)

	// 3% of 48043 = 1441.29, rounded half-up, plus the 30 cent flat fee.
	assert.Equal(t, int64(1471), snap.ProcessingFeeCents)
	assert.Equal(t, int64(49514), snap.TotalCents)

	require.Len(t, items, 4)
	assert.Equal(t, pricing.LineBase, items[0].Type)
	assert.Equal(t, pricing.LineDelivery, items[1].Type)
	assert.Equal(t, pricing.LineHaul, items[2].Type)
	assert.Equal(t, pricing.LineExtraDay, items[3].Type)
	assert.Equal(t, int64(5000), items[3].AmountCents)

	for _, it := range items {
		assert.True(t, it.Taxable, "line %s should be taxable", it.Type)
	}
}

func TestCalculate_Invariants(t *testing.T) {
	tests := []struct {
		name    string
		rule    pricing.Rule
		dropoff time.Time
		pickup  time.Time
	}{
		{
			name: "WithinIncludedDays",
			rule: pricing.Rule{
				Size:             pricing.Size10,
				BasePriceCents:   29900,
				DeliveryFeeCents: 5000,
				HaulFeeCents:     7500,
				IncludedDays:     7,
				ExtraDayFeeCents: 2000,
			},
			dropoff: date(2025, 3, 3),
			pickup:  date(2025, 3, 10),
		},
		{
			name: "ExactlyIncludedDays",
			rule: pricing.Rule{
				Size:             pricing.Size30,
				BasePriceCents:   54900,
				IncludedDays:     14,
				ExtraDayFeeCents: 3000,
			},
			dropoff: date(2025, 1, 1),
			pickup:  date(2025, 1, 15),
		},
		{
			name: "LongOverstay",
			rule: pricing.Rule{
				Size:             pricing.Size40,
				BasePriceCents:   64900,
				DeliveryFeeCents: 9900,
				HaulFeeCents:     12500,
				IncludedDays:     7,
				ExtraDayFeeCents: 3500,
			},
			dropoff: date(2025, 7, 1),
			pickup:  date(2025, 8, 15),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap, items, err := pricing.Calculate(tt.rule, standardFees(), tt.dropoff, tt.pickup)
			require.NoError(t, err)

			assert.Equal(t, snap.TotalCents, snap.SubtotalCents+snap.TaxAmountCents+snap.ProcessingFeeCents)

			var sum, taxable int64
			for _, it := range items {
				sum += it.AmountCents
				if it.Taxable {
					taxable += it.AmountCents
				}
			}

			assert.Equal(t, snap.SubtotalCents, sum)
			assert.Equal(t, snap.TaxableAmountCents, taxable)

			wantExtra := snap.RentalDays - snap.IncludedDays
			if wantExtra < 0 {
				wantExtra = 0
			}

			assert.Equal(t, wantExtra, snap.ExtraDays)

			if snap.RentalDays == snap.IncludedDays {
				assert.Zero(t, snap.ExtendedServiceFeeCents)
			}
		})
	}
}

func TestCalculate_TaxExempt(t *testing.T) {
	rule := pricing.Rule{
		Size:           pricing.Size20,
		BasePriceCents: 39900,
		IncludedDays:   7,
		TaxExempt:      true,
	}

	snap, _, err := pricing.Calculate(rule, standardFees(), date(2025, 6, 1), date(2025, 6, 5))
	require.NoError(t, err)

	assert.Zero(t, snap.TaxAmountCents)
	assert.True(t, snap.TaxExempt)

	// 3% of 39900 = 1197, plus flat 30.
	assert.Equal(t, int64(1227), snap.ProcessingFeeCents)
	assert.Equal(t, int64(41127), snap.TotalCents)
}

func TestCalculate_Deterministic(t *testing.T) {
	rule := pricing.Rule{
		WasteType:          pricing.WasteConstruction,
		Size:               pricing.Size30,
		BasePriceCents:     54900,
		DeliveryFeeCents:   4200,
		HaulFeeCents:       8300,
		IncludedDays:       7,
		ExtraDayFeeCents:   2700,
		IncludedTons:       decimal.RequireFromString("3.5"),
		OveragePerTonCents: 9500,
	}

	snapA, itemsA, err := pricing.Calculate(rule, standardFees(), date(2025, 9, 2), date(2025, 9, 14))
	require.NoError(t, err)

	snapB, itemsB, err := pricing.Calculate(rule, standardFees(), date(2025, 9, 2), date(2025, 9, 14))
	require.NoError(t, err)

	assert.Equal(t, snapA, snapB)
	assert.Equal(t, itemsA, itemsB)
}
