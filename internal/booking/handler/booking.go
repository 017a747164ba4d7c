package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"busrent/internal/booking/normalizer"
	"busrent/internal/booking/service"
	apperrors "busrent/pkg/errors"
	httputil "busrent/pkg/http"
	"busrent/pkg/logger"
	"busrent/pkg/model"
)

// MsgBookingCreated is the confirmation shown to the client on admission.
const MsgBookingCreated = "Rezerwacja zostala utworzona"

type BookingHandler struct {
	admission    service.AdmissionService
	availability service.AvailabilityService
	log          *logger.Logger
}

func NewBookingHandler(
	admission service.AdmissionService,
	availability service.AvailabilityService,
	log *logger.Logger,
) *BookingHandler {
	return &BookingHandler{
		admission:    admission,
		availability: availability,
		log:          log,
	}
}

func (h *BookingHandler) Book(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.BookingRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		h.log.Warn("Rejected unparsable booking payload", "error", err)
		if writeErr := httputil.WriteFailure(w, http.StatusBadRequest, normalizer.MsgMalformed); writeErr != nil {
			h.log.Error("failed to write failure response", "handler", "Book", "error", writeErr)
		}
		return
	}

	outcome, err := h.admission.Admit(r.Context(), &req)
	if err != nil {
		h.writeError(w, "Book", err)
		return
	}

	if err := httputil.WriteJSON(w, http.StatusOK, httputil.BookingCreated{
		Success: true,
		TaskID:  outcome.TaskID,
		TaskURL: outcome.TaskURL,
		Message: MsgBookingCreated,
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Book", "error", err)
	}
}

func (h *BookingHandler) Availability(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	occupied, err := h.availability.ListOccupiedIntervals(r.Context())
	if err != nil {
		appErr := apperrors.AsAppError(err)
		if writeErr := httputil.WriteJSON(w, appErr.StatusCode(), httputil.Availability{
			Success:     false,
			BookedDates: []httputil.BookedDate{},
			Error:       appErr.Message,
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Availability", "error", writeErr)
		}
		return
	}

	// bounds are date-granular on the wire
	booked := make([]httputil.BookedDate, 0, len(occupied))
	for _, b := range occupied {
		booked = append(booked, httputil.BookedDate{
			Start: b.Interval.Start().Format(time.DateOnly),
			End:   b.Interval.End().Format(time.DateOnly),
			Name:  b.Label,
		})
	}

	if err := httputil.WriteJSON(w, http.StatusOK, httputil.Availability{
		Success:     true,
		BookedDates: booked,
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Availability", "error", err)
	}
}

func (h *BookingHandler) writeError(w http.ResponseWriter, handlerName string, err error) {
	appErr := apperrors.AsAppError(err)
	if appErr.Code == apperrors.CodeInternal && appErr.Err != nil {
		h.log.Error("Unexpected admission failure", "handler", handlerName, "error", appErr.Err)
	}
	if writeErr := httputil.WriteFailure(w, appErr.StatusCode(), appErr.Message); writeErr != nil {
		h.log.Error("failed to write failure response", "handler", handlerName, "error", writeErr)
	}
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/book", h.Book)
	router.GET("/api/availability", h.Availability)
}
