package record

import (
	"strings"
	"testing"
	"time"

	"busrent/pkg/config"
	"busrent/pkg/model"
)

func sampleReservation() *model.CanonicalReservation {
	return &model.CanonicalReservation{
		Category:      "1-2d",
		CategoryLabel: "Wynajem 1-2 dni",
		Price:         450,
		PricePerDay:   225,
		Days:          2,
		Start:         time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC),
		End:           time.Date(2025, 6, 11, 17, 0, 0, 0, time.UTC),
		DateRange:     "wt., 10 cze 2025 - śr., 11 cze 2025",
		StartClock:    "09:00",
		EndClock:      "17:00",
		ClientName:    "Jan Kowalski",
		ClientPhone:   "+48601234567",
		ClientEmail:   "jan@example.com",
	}
}

func TestBuild_TaskShape(t *testing.T) {
	res := sampleReservation()

	draft := Build(res, 600)

	if draft.Name != "+48601234567 - Jan Kowalski" {
		t.Errorf("expected phone-first name, got %q", draft.Name)
	}
	if draft.Status != config.ReservationStatus {
		t.Errorf("expected status %q, got %q", config.ReservationStatus, draft.Status)
	}
	if draft.StartDate != res.Start.UnixMilli() {
		t.Errorf("expected start %d, got %d", res.Start.UnixMilli(), draft.StartDate)
	}
	if draft.DueDate != res.End.UnixMilli() {
		t.Errorf("expected due %d, got %d", res.End.UnixMilli(), draft.DueDate)
	}
	if !draft.NotifyAll {
		t.Error("expected NotifyAll set")
	}
}

func TestBuild_Description(t *testing.T) {
	draft := Build(sampleReservation(), 600)

	want := "REZERWACJA ONLINE\n\n" +
		"Klient: Jan Kowalski\n" +
		"Telefon: +48601234567\n" +
		"Email: jan@example.com\n\n" +
		"Typ wynajmu: Wynajem 1-2 dni\n" +
		"Liczba dni: 2\n" +
		"Cena za dobe: 225 zl\n" +
		"Cena calkowita: 450 zl\n" +
		"Kaucja: 600 zl\n\n" +
		"Termin: wt., 10 cze 2025 - śr., 11 cze 2025\n" +
		"Godziny: 09:00 - 17:00\n\n" +
		"---\n" +
		"Rezerwacja utworzona automatycznie przez strone rezerwacji.\n" +
		"Wymaga potwierdzenia telefonicznego."

	if draft.Description != want {
		t.Errorf("description mismatch:\ngot:\n%s\nwant:\n%s", draft.Description, want)
	}
}

func TestBuild_SingleDayOmitsPerDayLines(t *testing.T) {
	res := sampleReservation()
	res.Days = 1
	res.Category = "4h"
	res.CategoryLabel = "Wynajem na 4 godziny"
	res.Price = 250

	draft := Build(res, 600)

	if strings.Contains(draft.Description, "Liczba dni") {
		t.Error("single-day rental must not list day count")
	}
	if strings.Contains(draft.Description, "Cena za dobe") {
		t.Error("single-day rental must not list per-day price")
	}
	if !strings.Contains(draft.Description, "Cena calkowita: 250 zl") {
		t.Errorf("expected total price line, got:\n%s", draft.Description)
	}
}

func TestBuild_MissingEmailMarked(t *testing.T) {
	res := sampleReservation()
	res.ClientEmail = ""

	draft := Build(res, 600)

	if !strings.Contains(draft.Description, "Email: brak\n") {
		t.Errorf("expected missing email marker, got:\n%s", draft.Description)
	}
}

func TestBuild_FractionalPriceKeepsDecimals(t *testing.T) {
	res := sampleReservation()
	res.Price = 437.5
	res.PricePerDay = 218.75

	draft := Build(res, 600)

	if !strings.Contains(draft.Description, "Cena calkowita: 437.5 zl") {
		t.Errorf("expected fractional total, got:\n%s", draft.Description)
	}
	if !strings.Contains(draft.Description, "Cena za dobe: 218.75 zl") {
		t.Errorf("expected fractional per-day price, got:\n%s", draft.Description)
	}
}
