package domain

import "errors"

// Sentinel errors used across repositories and services. Callers classify
// failures with errors.Is and map them to transport-level responses.
var (
	// ErrNotFound is returned when a referenced id has no record.
	ErrNotFound = errors.New("not found")

	// ErrValidation is returned when a required field is missing from a
	// submitted record, e.g. a booth without an eventId.
	ErrValidation = errors.New("validation failed")

	// ErrStorage is returned when the durable store is unreachable or
	// unwritable (I/O failure, disk full, permission denied).
	ErrStorage = errors.New("storage failure")

	// ErrCorrupt is returned when stored collection content cannot be
	// decoded. Distinct from ErrStorage so operators can tell a bad disk
	// from bad data.
	ErrCorrupt = errors.New("corrupt collection content")
)
