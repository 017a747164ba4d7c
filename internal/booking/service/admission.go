package service

import (
	"context"
	"errors"
	"fmt"

	"busrent/internal/booking/normalizer"
	"busrent/internal/booking/notify"
	"busrent/internal/booking/record"
	"busrent/internal/clickup"
	"busrent/pkg/config"
	apperrors "busrent/pkg/errors"
	"busrent/pkg/model"
)

// ReservationStore is the narrow slice of the external store this service
// consumes: list open reservations, create one.
type ReservationStore interface {
	ListTasks(ctx context.Context) ([]clickup.Task, error)
	CreateTask(ctx context.Context, draft clickup.TaskDraft) (*clickup.CreatedTask, error)
}

// Notifier fans an admission outcome out to the notification channels.
type Notifier interface {
	Notify(ctx context.Context, outcome *model.AdmissionOutcome) notify.Report
}

type AdmissionService interface {
	Admit(ctx context.Context, req *model.BookingRequest) (*model.AdmissionOutcome, error)
}

type admissionService struct {
	store      ReservationStore
	normalizer *normalizer.BookingNormalizer
	notifier   Notifier
	cfg        *config.Config
}

func NewAdmissionService(
	store ReservationStore,
	norm *normalizer.BookingNormalizer,
	notifier Notifier,
	cfg *config.Config,
) AdmissionService {
	return &admissionService{
		store:      store,
		normalizer: norm,
		notifier:   notifier,
		cfg:        cfg,
	}
}

// Admit validates and normalizes the request, creates the reservation record
// in the external store, and returns the outcome. Notification fanout is
// dispatched on a detached context after the outcome is decided; it can
// neither delay nor fail the admission.
func (s *admissionService) Admit(ctx context.Context, req *model.BookingRequest) (*model.AdmissionOutcome, error) {
	res, err := s.normalizer.Normalize(req)
	if err != nil {
		var valErr *normalizer.ValidationError
		if errors.As(err, &valErr) {
			s.cfg.Log.Warn("Booking request rejected",
				"reason", string(valErr.Reason),
				"fields", valErr.Fields,
			)
			return nil, apperrors.Validation(valErr.Message, map[string]any{
				"reason": string(valErr.Reason),
				"fields": valErr.Fields,
			})
		}
		return nil, apperrors.Internal("Failed to normalize booking request", err)
	}

	draft := record.Build(res, s.cfg.DepositPLN)

	storeCtx, cancel := context.WithTimeout(ctx, s.cfg.StoreTimeout)
	defer cancel()

	created, err := s.store.CreateTask(storeCtx, draft)
	if err != nil {
		s.cfg.Log.Error("Failed to create reservation record",
			"client_phone", res.ClientPhone,
			"date_range", res.DateRange,
			"error", err,
		)
		return nil, apperrors.StoreUnavailable(StoreFailureMessage(s.cfg.NotifyPhone), err)
	}

	outcome := &model.AdmissionOutcome{
		TaskID:      created.ID,
		TaskURL:     created.URL,
		Reservation: *res,
	}

	s.cfg.Log.Info("Reservation admitted",
		"task_id", outcome.TaskID,
		"category", res.Category,
		"date_range", res.DateRange,
	)

	s.dispatchNotifications(ctx, outcome)

	return outcome, nil
}

// dispatchNotifications starts the fanout detached from request
// cancellation: the HTTP response has effectively been decided and the
// request context will be cancelled the moment it is written.
func (s *admissionService) dispatchNotifications(ctx context.Context, outcome *model.AdmissionOutcome) {
	if s.notifier == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.NotifyTimeout)
	go func() {
		defer cancel()
		s.notifier.Notify(ctx, outcome)
	}()
}

// StoreFailureMessage is the user-visible fallback when the external store
// rejects or cannot receive the record: retry manually, or call.
func StoreFailureMessage(notifyPhone string) string {
	if notifyPhone == "" {
		return "Nie udalo sie utworzyc rezerwacji. Sprobuj ponownie lub zadzwon."
	}
	return fmt.Sprintf("Nie udalo sie utworzyc rezerwacji. Sprobuj ponownie lub zadzwon: %s.", notifyPhone)
}
