package store

import "errors"

// Domain errors surfaced to the HTTP layer, matched with errors.Is.
var (
	ErrNotFound        = errors.New("record not found")
	ErrDuplicate       = errors.New("duplicate record")
	ErrBedNotFound     = errors.New("bed not found")
	ErrBedOccupied     = errors.New("bed occupied")
	ErrStudentNotFound = errors.New("student not found")
)
