package booking

import (
	"github.com/google/uuid"
)

// Reasons carried by the typed errors below. Transports switch on them to
// pick user-facing wording.
const (
	ReasonMissingField        = "missing field"
	ReasonInvalidName         = "invalid name"
	ReasonInvalidPhone        = "invalid phone"
	ReasonInvalidDate         = "invalid date"
	ReasonInvalidTime         = "invalid time"
	ReasonInvalidCategory     = "invalid category"
	ReasonInvalidWindow       = "invalid availability window"
	ReasonNotFound            = "service or artist not found"
	ReasonArtistNotFound      = "artist not found"
	ReasonArtistUnavailable   = "artist unavailable"
	ReasonOutsideAvailability = "outside artist availability"
)

type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func validationError(msg string) error {
	return &ValidationError{msg: msg}
}

type NotFoundError struct {
	msg string
}

func (e *NotFoundError) Error() string {
	return e.msg
}

func notFoundError(msg string) error {
	return &NotFoundError{msg: msg}
}

// ConflictError reports that the requested block overlaps an existing booking
// of the same artist. AppointmentID is uuid.Nil when only the database
// constraint caught the overlap.
type ConflictError struct {
	AppointmentID uuid.UUID
}

func (e *ConflictError) Error() string {
	return ReasonArtistUnavailable
}

type OutsideAvailabilityError struct{}

func (e *OutsideAvailabilityError) Error() string {
	return ReasonOutsideAvailability
}

// PersistenceError wraps a storage failure that is not a domain outcome.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func persistenceError(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}

// UserMessage turns an engine error into the text shown at the front desk.
// Unknown errors get a generic message so internals never leak.
func UserMessage(err error) string {
	switch err.Error() {
	case ReasonMissingField:
		return "Please fill in all required fields."
	case ReasonInvalidName:
		return "Name must be more than 3 letters and cannot contain numbers."
	case ReasonInvalidPhone:
		return "Phone number must be exactly 10 digits."
	case ReasonInvalidDate:
		return "Date must be in YYYY-MM-DD format."
	case ReasonInvalidTime:
		return "Time must be in HH:MM format."
	case ReasonInvalidCategory:
		return "Category must be one of nails, hair or cosmetics."
	case ReasonInvalidWindow:
		return "Availability must end after it starts."
	case ReasonNotFound:
		return "Service or Artist not found."
	case ReasonArtistNotFound:
		return "Artist not found."
	case ReasonArtistUnavailable:
		return "The artist is not available during the selected time."
	case ReasonOutsideAvailability:
		return "The artist does not work during the selected time."
	}
	return "An internal error occurred. Please try again."
}
