package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Mailer sends email through an HTTP mail relay with a bearer token.
type Mailer struct {
	client  *http.Client
	baseURL string
	token   string
	from    string
}

func NewMailer(baseURL, token, from string) *Mailer {
	return &Mailer{
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: baseURL,
		token:   token,
		from:    from,
	}
}

type mailRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func (m *Mailer) Send(ctx context.Context, to, subject, body string) error {
	payload, err := json.Marshal(mailRequest{From: m.from, To: to, Subject: subject, Body: body})
	if err != nil {
		return fmt.Errorf("encoding mail request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/messages", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building mail request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+m.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending mail: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("mail relay returned %d: %s", resp.StatusCode, msg)
	}

	return nil
}
