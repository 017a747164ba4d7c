package model

// RentalCategory maps a rental-duration code to its display label and the
// number of days added to the start date when the client sends no explicit
// end date.
type RentalCategory struct {
	Code      string
	Label     string
	ExtraDays int
}

var rentalCategories = map[string]RentalCategory{
	"4h":      {Code: "4h", Label: "Wynajem na 4 godziny", ExtraDays: 0},
	"1-2d":    {Code: "1-2d", Label: "Wynajem 1-2 dni", ExtraDays: 1},
	"3-4d":    {Code: "3-4d", Label: "Wynajem 3-4 dni", ExtraDays: 3},
	"5-10d":   {Code: "5-10d", Label: "Wynajem 5-10 dni", ExtraDays: 9},
	"11-30d":  {Code: "11-30d", Label: "Wynajem 11-30 dni", ExtraDays: 29},
	"weekend": {Code: "weekend", Label: "Wynajem weekendowy", ExtraDays: 2},
}

// CategoryByCode looks up the static category table. The table is fixed at
// compile time; callers must not modify returned values.
func CategoryByCode(code string) (RentalCategory, bool) {
	c, ok := rentalCategories[code]
	return c, ok
}
