package sanitizer

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// defaultRegion resolves national numbers without a country prefix; the
// rental operates in Poland.
const defaultRegion = "PL"

// NormalizePhone formats a phone number as E.164 when it parses, and falls
// back to the whitespace-trimmed input otherwise. Numbers the original intake
// accepted must keep being accepted, so an unparseable phone is not an error
// here.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)

	if phone == "" {
		return ""
	}

	parsed, err := phonenumbers.Parse(phone, defaultRegion)
	if err != nil || !phonenumbers.IsValidNumber(parsed) {
		return phone
	}
	return phonenumbers.Format(parsed, phonenumbers.E164)
}
