package utils

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidID is returned by ParseID for anything that is not a positive integer.
var ErrInvalidID = errors.New("id must be a positive integer")

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// ParseID parses a path or query id. Empty, non-numeric and non-positive values are rejected.
func ParseID(value string) (int64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, ErrInvalidID
	}

	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id < 1 {
		return 0, ErrInvalidID
	}

	return id, nil
}
