// Package gateway adapts the Mercado Pago checkout API. It creates hosted
// checkout sessions for invoices and verifies inbound webhook signatures
// before any notification is allowed to touch reconciliation.
package gateway

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/aldercreekdigital/rolloff/internal/invoice"
)

var (
	// ErrGateway wraps provider-side failures.
	ErrGateway = errors.New("payment gateway error")

	// ErrBadSignature is returned for webhook notifications whose signature
	// cannot be verified. Such notifications are rejected, never processed.
	ErrBadSignature = errors.New("webhook signature verification failed")
)

type MercadoPago struct {
	preferences   preference.Client
	payments      payment.Client
	webhookSecret string
	backURL       string
}

func New(accessToken, webhookSecret, backURL string) (*MercadoPago, error) {
	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("configuring mercado pago sdk: %w", err)
	}

	return &MercadoPago{
		preferences:   preference.NewClient(cfg),
		payments:      payment.NewClient(cfg),
		webhookSecret: webhookSecret,
		backURL:       backURL,
	}, nil
}

// CreateSession opens a hosted checkout for the invoice and returns the
// redirect URL. The invoice id travels as the external reference so the
// webhook can correlate the payment back.
func (g *MercadoPago) CreateSession(ctx context.Context, inv *invoice.Invoice) (string, error) {
	items := make([]preference.ItemRequest, len(inv.LineItems))
	for i, it := range inv.LineItems {
		items[i] = preference.ItemRequest{
			ID:       fmt.Sprintf("%s-%d", inv.Number, it.SortOrder),
			Title:    it.Label,
			Quantity: 1,
			// The provider API takes decimal currency units; cents convert at
			// this boundary only.
			UnitPrice: float64(it.AmountCents) / 100,
		}
	}

	req := preference.Request{
		Items:             items,
		ExternalReference: inv.ID.String(),
		BackURLs:          &preference.BackURLsRequest{Success: g.backURL, Failure: g.backURL, Pending: g.backURL},
	}

	resp, err := g.preferences.Create(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%w: creating checkout preference: %v", ErrGateway, err)
	}

	return resp.InitPoint, nil
}

// PaymentDetails resolves a provider payment id from a webhook into the
// invoice it settles and the captured amount.
type PaymentDetails struct {
	InvoiceID   uuid.UUID
	AmountCents int64
	Approved    bool
}

func (g *MercadoPago) PaymentDetails(ctx context.Context, providerPaymentID string) (*PaymentDetails, error) {
	id, err := strconv.Atoi(providerPaymentID)
	if err != nil {
		return nil, fmt.Errorf("parsing payment id %q: %w", providerPaymentID, err)
	}

	resp, err := g.payments.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching payment %d: %v", ErrGateway, id, err)
	}

	invoiceID, err := uuid.Parse(resp.ExternalReference)
	if err != nil {
		return nil, fmt.Errorf("parsing external reference %q: %w", resp.ExternalReference, err)
	}

	amountCents := int64(resp.TransactionAmount*100 + 0.5)

	return &PaymentDetails{
		InvoiceID:   invoiceID,
		AmountCents: amountCents,
		Approved:    resp.Status == "approved",
	}, nil
}

// VerifySignature checks the x-signature header of a webhook notification.
// The provider signs the manifest "id:<data.id>;request-id:<x-request-id>;
// ts:<ts>;" with HMAC-SHA256 over the webhook secret.
func (g *MercadoPago) VerifySignature(xSignature, xRequestID, dataID string) error {
	var ts, v1 string

	for _, part := range strings.Split(xSignature, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			continue
		}

		switch key {
		case "ts":
			ts = value
		case "v1":
			v1 = value
		}
	}

	if ts == "" || v1 == "" {
		return ErrBadSignature
	}

	manifest := fmt.Sprintf("id:%s;request-id:%s;ts:%s;", dataID, xRequestID, ts)

	mac := hmac.New(sha256.New, []byte(g.webhookSecret))
	mac.Write([]byte(manifest))

	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(v1)) {
		return ErrBadSignature
	}

	return nil
}
