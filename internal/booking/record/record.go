// Package record renders a canonical reservation into the external store's
// task shape. Rendering is pure; the store assigns identity on creation.
package record

import (
	"fmt"
	"strings"

	"busrent/internal/clickup"
	"busrent/pkg/config"
	"busrent/pkg/model"
)

// Build produces the task draft for a newly admitted reservation. New records
// always carry the reservation status; the in-progress status is set by the
// operator once the rental actually starts.
func Build(res *model.CanonicalReservation, depositPLN int) clickup.TaskDraft {
	return clickup.TaskDraft{
		Name:        fmt.Sprintf("%s - %s", res.ClientPhone, res.ClientName),
		Description: description(res, depositPLN),
		Status:      config.ReservationStatus,
		StartDate:   res.Start.UnixMilli(),
		DueDate:     res.End.UnixMilli(),
		NotifyAll:   true,
	}
}

func description(res *model.CanonicalReservation, depositPLN int) string {
	email := res.ClientEmail
	if email == "" {
		email = "brak"
	}

	var b strings.Builder
	b.WriteString("REZERWACJA ONLINE\n\n")
	fmt.Fprintf(&b, "Klient: %s\n", res.ClientName)
	fmt.Fprintf(&b, "Telefon: %s\n", res.ClientPhone)
	fmt.Fprintf(&b, "Email: %s\n\n", email)
	fmt.Fprintf(&b, "Typ wynajmu: %s\n", res.CategoryLabel)
	if res.Days > 1 {
		fmt.Fprintf(&b, "Liczba dni: %d\n", res.Days)
		fmt.Fprintf(&b, "Cena za dobe: %s zl\n", model.FormatPLN(res.PricePerDay))
	}
	fmt.Fprintf(&b, "Cena calkowita: %s zl\n", model.FormatPLN(res.Price))
	fmt.Fprintf(&b, "Kaucja: %d zl\n\n", depositPLN)
	fmt.Fprintf(&b, "Termin: %s\n", res.DateRange)
	fmt.Fprintf(&b, "Godziny: %s - %s\n\n", res.StartClock, res.EndClock)
	b.WriteString("---\n")
	b.WriteString("Rezerwacja utworzona automatycznie przez strone rezerwacji.\n")
	b.WriteString("Wymaga potwierdzenia telefonicznego.")

	return b.String()
}

