package normalizer

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"busrent/pkg/logger"
	"busrent/pkg/model"
	"busrent/pkg/sanitizer"

	"github.com/go-playground/validator/v10"
)

const (
	// User-facing messages, kept in the wording the booking form expects.
	MsgMissingFields = "Brakuje wymaganych danych"
	MsgMalformed     = "Nieprawidlowe dane rezerwacji"
	MsgInvalidRange  = "Data zakonczenia nie moze byc przed data rozpoczecia"

	defaultStartClock = "09:00"
	defaultEndClock   = "17:00"

	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

type Reason string

const (
	ReasonMissingField Reason = "missing_field"
	ReasonMalformed    Reason = "malformed"
	ReasonInvalidRange Reason = "invalid_range"
)

// ValidationError is a user-correctable problem with a booking request.
type ValidationError struct {
	Reason  Reason
	Message string
	Fields  []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("%s: %s [%s]", e.Reason, e.Message, strings.Join(e.Fields, ", "))
	}
	return fmt.Sprintf("%s: %s", e.Reason, e.Message)
}

// BookingNormalizer turns a raw booking request into a canonical reservation:
// required-field validation, default clocks, end-date resolution by category
// offset, and the formatted date description. Normalization is deterministic
// and performs no I/O.
type BookingNormalizer struct {
	validate *validator.Validate
	loc      *time.Location
	log      *logger.Logger
}

func NewBookingNormalizer(log *logger.Logger) *BookingNormalizer {
	loc, err := time.LoadLocation("Europe/Warsaw")
	if err != nil {
		// tzdata missing from the runtime image; date-only bookings still
		// work, clock bounds shift to UTC
		log.Warn("Failed to load Europe/Warsaw, falling back to UTC", "error", err)
		loc = time.UTC
	}

	return &BookingNormalizer{
		validate: validator.New(),
		loc:      loc,
		log:      log,
	}
}

func (n *BookingNormalizer) Normalize(req *model.BookingRequest) (*model.CanonicalReservation, error) {
	r := *req
	r.ClientName = sanitizer.NormalizeName(r.ClientName)
	r.ClientPhone = sanitizer.NormalizePhone(r.ClientPhone)
	r.ClientEmail = strings.TrimSpace(r.ClientEmail)
	r.TypeLabel = sanitizer.TrimAndNormalize(r.TypeLabel)

	if err := n.validateRequest(&r); err != nil {
		return nil, err
	}

	startClock := r.StartTime
	if startClock == "" {
		startClock = defaultStartClock
	}
	endClock := r.EndTime
	if endClock == "" {
		endClock = defaultEndClock
	}

	startDate, err := time.ParseInLocation(dateLayout, r.Date, n.loc)
	if err != nil {
		return nil, &ValidationError{Reason: ReasonMalformed, Message: MsgMalformed, Fields: []string{"date"}}
	}

	var endDate time.Time
	if r.EndDate != "" {
		endDate, err = time.ParseInLocation(dateLayout, r.EndDate, n.loc)
		if err != nil {
			return nil, &ValidationError{Reason: ReasonMalformed, Message: MsgMalformed, Fields: []string{"endDate"}}
		}
	} else {
		endDate = startDate.AddDate(0, 0, n.categoryOffset(r.Type))
	}

	label := r.TypeLabel
	if label == "" {
		if category, ok := model.CategoryByCode(r.Type); ok {
			label = category.Label
		} else {
			label = r.Type
		}
	}

	start := combine(startDate, startClock, n.loc)
	end := combine(endDate, endClock, n.loc)

	if !end.After(start) {
		return nil, &ValidationError{Reason: ReasonInvalidRange, Message: MsgInvalidRange}
	}

	return &model.CanonicalReservation{
		Category:      r.Type,
		CategoryLabel: label,
		Price:         r.Price,
		PricePerDay:   r.PricePerDay,
		Days:          r.Days,
		Start:         start,
		End:           end,
		DateRange:     FormatDateRange(start, end),
		StartClock:    startClock,
		EndClock:      endClock,
		ClientName:    r.ClientName,
		ClientPhone:   r.ClientPhone,
		ClientEmail:   r.ClientEmail,
	}, nil
}

func (n *BookingNormalizer) validateRequest(r *model.BookingRequest) error {
	err := n.validate.Struct(r)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return &ValidationError{Reason: ReasonMalformed, Message: MsgMalformed}
	}

	var missing, malformed []string
	for _, fieldErr := range validationErrs {
		if fieldErr.Tag() == "required" {
			missing = append(missing, fieldErr.Field())
		} else {
			malformed = append(malformed, fieldErr.Field())
		}
	}

	if len(missing) > 0 {
		return &ValidationError{Reason: ReasonMissingField, Message: MsgMissingFields, Fields: missing}
	}
	return &ValidationError{Reason: ReasonMalformed, Message: MsgMalformed, Fields: malformed}
}

// categoryOffset resolves the end-date offset for requests without an
// explicit end date. Unknown codes fall back to a same-day rental; the
// operator triages those during phone confirmation.
func (n *BookingNormalizer) categoryOffset(code string) int {
	if category, ok := model.CategoryByCode(code); ok {
		return category.ExtraDays
	}
	return 0
}

func combine(date time.Time, clock string, loc *time.Location) time.Time {
	t, err := time.Parse(clockLayout, clock)
	if err != nil {
		// clock format is enforced by validation; reaching this is a
		// programming error, keep midnight rather than panic
		return date
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, loc)
}
