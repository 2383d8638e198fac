// Package common defines shared constants and sentinel errors used across
// the server layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorStorage        = errors.New("storage error")
	ErrorNotInitialized = errors.New("counter not initialized")

	// Service-level errors.
	ErrorInternal = errors.New("internal error")
)
