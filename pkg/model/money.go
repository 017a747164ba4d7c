package model

import "strconv"

// FormatPLN prints an amount without trailing zeros: 450 not 450.00,
// 449.5 not 449.50. Prices arrive from the booking form as plain numbers.
func FormatPLN(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
