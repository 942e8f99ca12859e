package api

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrUnsuccessful is returned when the envelope carries success:false
	ErrUnsuccessful = errors.New("remote operation not successful")
	// ErrMissingData is returned when a successful envelope lacks the expected data
	ErrMissingData = errors.New("remote response without data")
)

// Envelope is the uniform response wrapper of the brigade service
type Envelope[T any] struct {
	Success bool              `json:"success"`
	Data    *T                `json:"data,omitempty"`
	Message string            `json:"message,omitempty"`
	Errors  []json.RawMessage `json:"errors,omitempty"`
}

// Error describes a failed remote call. Err is ErrUnsuccessful, ErrMissingData,
// or the transport/decoding error.
type Error struct {
	Op         string
	Method     string
	Path       string
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s %s", e.Op, e.Method, e.Path)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// CreatedID is the data of equipment create responses
type CreatedID struct {
	ID int `json:"id"`
}
