package main

import (
	"busrent/internal/booking/handler"
	"busrent/internal/booking/normalizer"
	"busrent/internal/booking/notify"
	"busrent/internal/booking/service"
	"busrent/internal/clickup"
	"busrent/pkg/app"
	"busrent/pkg/config"
	"busrent/pkg/kafka"
)

const ServiceName = "busrent"

func main() {
	cfg := config.Load(ServiceName)

	cfg.Log.Info("Starting bus rental booking service")

	store := clickup.New(cfg)
	notifier, producer := initNotifier(cfg)
	if producer != nil {
		defer producer.Close()
	}

	admission := service.NewAdmissionService(
		store,
		normalizer.NewBookingNormalizer(cfg.Log),
		notifier,
		cfg,
	)
	availability := service.NewAvailabilityService(store, cfg)

	serverApp := app.NewApplication()
	serverApp.SetApp(cfg,
		handler.NewHealthHandler(store, cfg.Log),
		handler.NewBookingHandler(admission, availability, cfg.Log),
	)
	serverApp.Run()
}

// initNotifier assembles the fanout from whichever channels are configured.
// The service runs fine with none: the reservation record in the store is the
// source of truth, notifications are best-effort.
func initNotifier(cfg *config.Config) (service.Notifier, *kafka.Producer) {
	var channels []notify.Channel

	if cfg.WebhookURL != "" {
		channels = append(channels, notify.NewWebhookChannel(cfg.WebhookURL, cfg.NotifyTimeout))
		cfg.Log.Info("Webhook notification channel enabled")
	}

	if cfg.SMTPHost != "" {
		sender := notify.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
		channels = append(channels,
			notify.NewOwnerEmailChannel(sender, cfg.SMTPUser, cfg.OwnerEmail),
			notify.NewClientEmailChannel(sender, cfg.SMTPUser, cfg.NotifyPhone, cfg.DepositPLN),
		)
		cfg.Log.Info("Email notification channels enabled", "owner_email", cfg.OwnerEmail)
	}

	var producer *kafka.Producer
	if len(cfg.KafkaBrokers) > 0 {
		var err error
		producer, err = kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic, cfg.Log)
		if err != nil {
			cfg.Log.Fatal("Failed to initialize Kafka producer", "error", err)
		}
		channels = append(channels, notify.NewEventsChannel(producer, ServiceName))
		cfg.Log.Info("Kafka events channel enabled", "topic", cfg.KafkaTopic)
	}

	cfg.Log.Info("Notification fanout initialized", "channels", len(channels))
	return notify.NewFanout(cfg.Log, channels...), producer
}
