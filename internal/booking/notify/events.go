package notify

import (
	"context"
	"fmt"

	"busrent/pkg/kafka"
	"busrent/pkg/model"
)

// BookingEvent is the payload published to the booking-events topic for
// downstream consumers (reporting, CRM sync).
type BookingEvent struct {
	Type          string  `json:"type"`
	TaskID        string  `json:"task_id"`
	TaskURL       string  `json:"task_url"`
	Category      string  `json:"category"`
	CategoryLabel string  `json:"category_label"`
	Price         float64 `json:"price"`
	DateRange     string  `json:"date_range"`
	StartTime     string  `json:"start_time"`
	ClientName    string  `json:"client_name"`
	ClientPhone   string  `json:"client_phone"`
}

type EventsChannel struct {
	producer *kafka.Producer
	source   string
}

func NewEventsChannel(producer *kafka.Producer, source string) *EventsChannel {
	return &EventsChannel{producer: producer, source: source}
}

func (c *EventsChannel) Name() string { return "events" }

func (c *EventsChannel) Send(ctx context.Context, outcome *model.AdmissionOutcome) error {
	res := outcome.Reservation

	msg, err := kafka.NewMessage(res.ClientPhone, eventTypeNewBooking, c.source, BookingEvent{
		Type:          eventTypeNewBooking,
		TaskID:        outcome.TaskID,
		TaskURL:       outcome.TaskURL,
		Category:      res.Category,
		CategoryLabel: res.CategoryLabel,
		Price:         res.Price,
		DateRange:     res.DateRange,
		StartTime:     res.StartClock,
		ClientName:    res.ClientName,
		ClientPhone:   res.ClientPhone,
	})
	if err != nil {
		return fmt.Errorf("events: failed to build message: %w", err)
	}

	if err := c.producer.Publish(ctx, msg); err != nil {
		return fmt.Errorf("events: publish failed: %w", err)
	}
	return nil
}
