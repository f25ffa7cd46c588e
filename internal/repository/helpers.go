package repository

import (
	"errors"
	"time"
)

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// valueOrEmpty maps a missing key to the empty string and passes every other
// error through.
func valueOrEmpty(value string, err error) (string, error) {
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	return value, err
}
