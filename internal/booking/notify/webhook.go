package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"busrent/pkg/model"
)

// webhookPayload is the JSON body posted to the configured automation sink.
type webhookPayload struct {
	Type        string  `json:"type"`
	ClientName  string  `json:"clientName"`
	ClientPhone string  `json:"clientPhone"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	DateRange   string  `json:"dateRange"`
	StartTime   string  `json:"startTime"`
	RecordURL   string  `json:"recordUrl"`
}

const eventTypeNewBooking = "new_booking"

type WebhookChannel struct {
	url string
	hc  *http.Client
}

func NewWebhookChannel(url string, timeout time.Duration) *WebhookChannel {
	return &WebhookChannel{
		url: url,
		hc:  &http.Client{Timeout: timeout},
	}
}

func (c *WebhookChannel) Name() string { return "webhook" }

func (c *WebhookChannel) Send(ctx context.Context, outcome *model.AdmissionOutcome) error {
	res := outcome.Reservation

	body, err := json.Marshal(webhookPayload{
		Type:        eventTypeNewBooking,
		ClientName:  res.ClientName,
		ClientPhone: res.ClientPhone,
		Category:    res.CategoryLabel,
		Price:       res.Price,
		DateRange:   res.DateRange,
		StartTime:   res.StartClock,
		RecordURL:   outcome.TaskURL,
	})
	if err != nil {
		return fmt.Errorf("webhook: failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("webhook: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("webhook: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook: sink returned status %d", resp.StatusCode)
	}

	return nil
}
