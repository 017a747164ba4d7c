package model

import (
	"time"

	"busrent/pkg/interval"
)

// BookingRequest is the untrusted inbound body of POST /api/book. Field names
// mirror the public API contract.
type BookingRequest struct {
	Type        string  `json:"type" validate:"required,max=20"`
	TypeLabel   string  `json:"typeLabel" validate:"omitempty,max=100"`
	Price       float64 `json:"price" validate:"omitempty,gte=0"`
	PricePerDay float64 `json:"pricePerDay" validate:"omitempty,gte=0"`
	Days        int     `json:"days" validate:"omitempty,gte=0,lte=31"`
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
	EndDate     string  `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	StartTime   string  `json:"startTime" validate:"omitempty,datetime=15:04"`
	EndTime     string  `json:"endTime" validate:"omitempty,datetime=15:04"`
	ClientName  string  `json:"clientName" validate:"required,min=2,max=100"`
	ClientPhone string  `json:"clientPhone" validate:"required,min=5,max=20"`
	ClientEmail string  `json:"clientEmail" validate:"omitempty,email"`
}

// CanonicalReservation is the validated, normalized form of an accepted
// request. Derived once by the normalizer and never mutated afterward.
type CanonicalReservation struct {
	Category      string
	CategoryLabel string
	Price         float64
	PricePerDay   float64
	Days          int
	Start         time.Time
	End           time.Time
	DateRange     string
	StartClock    string
	EndClock      string
	ClientName    string
	ClientPhone   string
	ClientEmail   string
}

// BookedInterval is the availability read model: one occupied range and the
// record title it came from. Display-only, never persisted here.
type BookedInterval struct {
	Interval interval.Interval
	Label    string
}

// AdmissionOutcome wraps a successful admission: the identifier and URL the
// external store assigned, plus the reservation that produced the record.
type AdmissionOutcome struct {
	TaskID      string
	TaskURL     string
	Reservation CanonicalReservation
}
