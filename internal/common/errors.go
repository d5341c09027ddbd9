// Package common defines shared constants and sentinel errors used across
// certfolio components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Storage-level errors.
	ErrNotFound = errors.New("not found")

	// Session gate errors.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Catalog errors.
	ErrNoEnabledCerts = errors.New("no certifications enabled")
)
