package http

import (
	"encoding/json"
	"net/http"
)

// BookingCreated is the success body of POST /api/book.
type BookingCreated struct {
	Success bool   `json:"success"`
	TaskID  string `json:"taskId"`
	TaskURL string `json:"taskUrl"`
	Message string `json:"message"`
}

// Failure is the error body shared by both endpoints: {success:false, error}.
type Failure struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// BookedDate is one occupied range in the availability response, date-granular.
type BookedDate struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Name  string `json:"name"`
}

// Availability is the body of GET /api/availability. BookedDates is always
// present so consumers never confuse "failed" with "empty": they must branch
// on Success, not on list length.
type Availability struct {
	Success     bool         `json:"success"`
	BookedDates []BookedDate `json:"bookedDates"`
	Error       string       `json:"error,omitempty"`
}

func WriteJSON(w http.ResponseWriter, statusCode int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

func WriteFailure(w http.ResponseWriter, statusCode int, message string) error {
	return WriteJSON(w, statusCode, Failure{Success: false, Error: message})
}
