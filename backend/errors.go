package main

import "errors"

// ErrNotFound is returned by Store implementations when a document does
// not exist. Handlers map it to 404 with an operation-specific message.
var ErrNotFound = errors.New("not found")

// StoreError marks a document-store failure. The "store:" prefix is kept
// on every 500 response so operators can tell which subsystem failed.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return "store: " + e.Op + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// CalendarError marks an external calendar failure, prefixed "calendar:".
type CalendarError struct {
	Op  string
	Err error
}

func (e *CalendarError) Error() string {
	return "calendar: " + e.Op + ": " + e.Err.Error()
}

func (e *CalendarError) Unwrap() error {
	return e.Err
}
