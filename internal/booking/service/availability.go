package service

import (
	"context"
	"strconv"

	"busrent/pkg/config"
	apperrors "busrent/pkg/errors"
	"busrent/pkg/interval"
	"busrent/pkg/model"
)

type AvailabilityService interface {
	ListOccupiedIntervals(ctx context.Context) ([]model.BookedInterval, error)
}

type availabilityService struct {
	store ReservationStore
	cfg   *config.Config
}

func NewAvailabilityService(store ReservationStore, cfg *config.Config) AvailabilityService {
	return &availabilityService{store: store, cfg: cfg}
}

// ListOccupiedIntervals returns the day-granular occupied ranges derived from
// open reservation records, in store order. Records missing either timestamp
// carry no usable range and are skipped.
func (s *availabilityService) ListOccupiedIntervals(ctx context.Context) ([]model.BookedInterval, error) {
	storeCtx, cancel := context.WithTimeout(ctx, s.cfg.StoreTimeout)
	defer cancel()

	tasks, err := s.store.ListTasks(storeCtx)
	if err != nil {
		s.cfg.Log.Error("Failed to list reservation records", "error", err)
		return nil, apperrors.StoreUnavailable("Failed to fetch availability", err)
	}

	occupied := make([]model.BookedInterval, 0, len(tasks))
	for _, task := range tasks {
		if task.StartDate == "" || task.DueDate == "" {
			continue
		}
		startMs, err := strconv.ParseInt(task.StartDate, 10, 64)
		if err != nil {
			s.cfg.Log.Warn("Skipping record with unparsable start date",
				"task_id", task.ID, "start_date", task.StartDate)
			continue
		}
		dueMs, err := strconv.ParseInt(task.DueDate, 10, 64)
		if err != nil {
			s.cfg.Log.Warn("Skipping record with unparsable due date",
				"task_id", task.ID, "due_date", task.DueDate)
			continue
		}
		iv, err := interval.FromEpochMillis(startMs, dueMs)
		if err != nil {
			s.cfg.Log.Warn("Skipping record with inverted range",
				"task_id", task.ID)
			continue
		}
		occupied = append(occupied, model.BookedInterval{
			Interval: iv.DateOnly(),
			Label:    task.Name,
		})
	}

	return occupied, nil
}
