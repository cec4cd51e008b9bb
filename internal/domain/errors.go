package domain

import (
	"errors"
	"strings"
)

var (
	ErrEventNotFound = errors.New("event not found")
	ErrInvalidEvents = errors.New("invalid event directory")
)

// MissingFieldsError reports required stop request fields that were absent
// or blank.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "Missing: " + strings.Join(e.Fields, ", ")
}
