package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"busrent/internal/clickup"
	apperrors "busrent/pkg/errors"
)

func TestListOccupiedIntervals(t *testing.T) {
	startMs := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC).UnixMilli()
	endMs := time.Date(2025, 6, 11, 17, 0, 0, 0, time.UTC).UnixMilli()

	store := &mockStore{
		listTasksFunc: func(ctx context.Context) ([]clickup.Task, error) {
			return []clickup.Task{
				{ID: "t1", Name: "+48601234567 - Jan Kowalski", StartDate: "1749546000000", DueDate: "1749632400000"},
				{ID: "t2", Name: "no start", StartDate: "", DueDate: "1749632400000"},
				{ID: "t3", Name: "no due", StartDate: "1749546000000", DueDate: ""},
				{ID: "t4", Name: "garbage", StartDate: "soon", DueDate: "1749632400000"},
				{ID: "t5", Name: "inverted", StartDate: "1749632400000", DueDate: "1749546000000"},
			}, nil
		},
	}

	svc := NewAvailabilityService(store, testConfig())

	occupied, err := svc.ListOccupiedIntervals(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(occupied) != 1 {
		t.Fatalf("expected 1 usable interval, got %d", len(occupied))
	}
	if occupied[0].Label != "+48601234567 - Jan Kowalski" {
		t.Errorf("expected record title carried over, got %q", occupied[0].Label)
	}

	// bounds are day-truncated
	wantStart := time.UnixMilli(startMs).UTC().Truncate(24 * time.Hour)
	wantEnd := time.UnixMilli(endMs).UTC().Truncate(24 * time.Hour)
	if !occupied[0].Interval.Start().Equal(wantStart) {
		t.Errorf("expected start %v, got %v", wantStart, occupied[0].Interval.Start())
	}
	if !occupied[0].Interval.End().Equal(wantEnd) {
		t.Errorf("expected end %v, got %v", wantEnd, occupied[0].Interval.End())
	}
}

func TestListOccupiedIntervals_PreservesStoreOrder(t *testing.T) {
	store := &mockStore{
		listTasksFunc: func(ctx context.Context) ([]clickup.Task, error) {
			return []clickup.Task{
				{ID: "t2", Name: "second booking", StartDate: "1749632400000", DueDate: "1749718800000"},
				{ID: "t1", Name: "first booking", StartDate: "1749546000000", DueDate: "1749632400000"},
			}, nil
		},
	}

	svc := NewAvailabilityService(store, testConfig())

	occupied, err := svc.ListOccupiedIntervals(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(occupied) != 2 {
		t.Fatalf("expected 2 intervals, got %d", len(occupied))
	}
	if occupied[0].Label != "second booking" || occupied[1].Label != "first booking" {
		t.Errorf("expected store order preserved, got %q then %q", occupied[0].Label, occupied[1].Label)
	}
}

func TestListOccupiedIntervals_EmptyList(t *testing.T) {
	svc := NewAvailabilityService(&mockStore{}, testConfig())

	occupied, err := svc.ListOccupiedIntervals(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if occupied == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(occupied) != 0 {
		t.Errorf("expected no intervals, got %d", len(occupied))
	}
}

func TestListOccupiedIntervals_StoreFailure(t *testing.T) {
	store := &mockStore{
		listTasksFunc: func(ctx context.Context) ([]clickup.Task, error) {
			return nil, errors.New("clickup: list tasks returned status 502")
		},
	}

	svc := NewAvailabilityService(store, testConfig())

	_, err := svc.ListOccupiedIntervals(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}

	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeStoreUnavailable {
		t.Errorf("expected code %s, got %s", apperrors.CodeStoreUnavailable, appErr.Code)
	}
	if appErr.Message != "Failed to fetch availability" {
		t.Errorf("unexpected message: %q", appErr.Message)
	}
}
