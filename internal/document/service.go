// Package document renders invoice PDFs through an external document service
// and archives the result there. It is a read-only consumer of invoice data.
package document

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/aldercreekdigital/rolloff/internal/invoice"
)

// InvoiceGetter loads the invoice being rendered.
type InvoiceGetter interface {
	Get(ctx context.Context, businessID, id uuid.UUID) (*invoice.Invoice, error)
}

// Service talks to the document renderer API.
type Service struct {
	invoices InvoiceGetter
	client   *http.Client
	baseURL  string
	apiToken string
}

func NewService(invoices InvoiceGetter, baseURL, apiToken string) *Service {
	return &Service{
		invoices: invoices,
		client:   &http.Client{Timeout: 30 * time.Second},
		baseURL:  baseURL,
		apiToken: apiToken,
	}
}

type renderLineItem struct {
	Label       string `json:"label"`
	AmountCents int64  `json:"amount_cents"`
	Type        string `json:"type"`
	Taxable     bool   `json:"taxable"`
}

type renderRequest struct {
	Template        string           `json:"template"`
	InvoiceNumber   string           `json:"invoice_number"`
	SubtotalCents   int64            `json:"subtotal_cents"`
	TaxCents        int64            `json:"tax_cents"`
	ProcessingCents int64            `json:"processing_cents"`
	TotalCents      int64            `json:"total_cents"`
	Status          string           `json:"status"`
	LineItems       []renderLineItem `json:"line_items"`
}

// ArchiveInvoice renders the invoice as a PDF and stores it in the document
// service's archive.
func (s *Service) ArchiveInvoice(ctx context.Context, businessID, invoiceID uuid.UUID) error {
	inv, err := s.invoices.Get(ctx, businessID, invoiceID)
	if err != nil {
		return fmt.Errorf("loading invoice %s: %w", invoiceID, err)
	}

	payload, err := json.Marshal(toRenderRequest(inv))
	if err != nil {
		return fmt.Errorf("encoding render request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/api/documents/render", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building render request: %w", err)
	}

	req.Header.Set("Authorization", "Token "+s.apiToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("rendering invoice %s: %w", inv.Number, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("document service returned %d for invoice %s: %s", resp.StatusCode, inv.Number, msg)
	}

	return nil
}

func toRenderRequest(inv *invoice.Invoice) renderRequest {
	items := make([]renderLineItem, len(inv.LineItems))
	for i, it := range inv.LineItems {
		items[i] = renderLineItem{
			Label:       it.Label,
			AmountCents: it.AmountCents,
			Type:        string(it.Type),
			Taxable:     it.Taxable,
		}
	}

	return renderRequest{
		Template:        "invoice",
		InvoiceNumber:   inv.Number,
		SubtotalCents:   inv.SubtotalCents,
		TaxCents:        inv.TaxCents,
		ProcessingCents: inv.ProcessingCents,
		TotalCents:      inv.TotalCents,
		Status:          string(inv.Status),
		LineItems:       items,
	}
}
