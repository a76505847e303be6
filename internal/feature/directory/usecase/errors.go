// Package usecase implements the business logic for the directory feature.
package usecase

import "errors"

var (
	// ErrNotLoaded is returned when the directory is consulted before any
	// refresh has completed successfully.
	ErrNotLoaded = errors.New("code tables not loaded yet")

	// ErrUnknownNamespace is returned when a market_type does not match any
	// configured namespace.
	ErrUnknownNamespace = errors.New("unknown market type")
)
