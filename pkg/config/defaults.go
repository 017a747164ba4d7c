package config

import "time"

const (
	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultClickUpListID  = "901503815767"
	DefaultClickUpBaseURL = "https://api.clickup.com/api/v2"

	// Status tags on the external list. "rezerwacje" marks a confirmed
	// reservation, "w trakcie wynajmu" a rental in progress; both occupy
	// the vehicle.
	ReservationStatus     = "rezerwacje"
	RentalInProgressState = "w trakcie wynajmu"

	// Fixed deposit quoted in every reservation record, in PLN.
	DefaultDepositPLN = 600

	DefaultKafkaTopic = "booking-events"

	DefaultRateLimitRequests = 10
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second
	DefaultStoreTimeout   = 10 * time.Second
	DefaultNotifyTimeout  = 30 * time.Second
	DefaultMaxRequestSize = 64 * 1024 // 64KB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
)

var DefaultOccupiedStatuses = []string{ReservationStatus, RentalInProgressState}
