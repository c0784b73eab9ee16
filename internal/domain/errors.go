package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the travel planning domain.
// Use errors.Is to check for these at the HTTP boundary.
var (
	// ErrInvalidRequest indicates the request failed domain validation.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrMissingAPIKey indicates a required provider credential is not configured.
	ErrMissingAPIKey = errors.New("missing API key")

	// ErrProviderTimeout indicates an external provider did not respond in time.
	ErrProviderTimeout = errors.New("provider timeout")

	// ErrProviderUnavailable indicates an external provider call failed.
	ErrProviderUnavailable = errors.New("provider unavailable")
)

// ProviderError wraps an error from an external collaborator (LLM backend or
// flight-search API) with the provider name for context.
type ProviderError struct {
	// Provider is the name of the provider that produced the error.
	Provider string

	// Err is the underlying error.
	Err error

	// Retryable indicates whether the caller could retry the operation.
	// The service itself never retries automatically; this flag exists for
	// clients that want to distinguish transient failures.
	Retryable bool
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError creates a non-retryable ProviderError.
func NewProviderError(provider string, err error) *ProviderError {
	return &ProviderError{
		Provider:  provider,
		Err:       err,
		Retryable: false,
	}
}

// NewRetryableProviderError creates a retryable ProviderError.
func NewRetryableProviderError(provider string, err error) *ProviderError {
	return &ProviderError{
		Provider:  provider,
		Err:       err,
		Retryable: true,
	}
}

// NewProviderTimeoutError creates a ProviderError wrapping ErrProviderTimeout.
func NewProviderTimeoutError(provider string) *ProviderError {
	return &ProviderError{
		Provider:  provider,
		Err:       ErrProviderTimeout,
		Retryable: true,
	}
}

// IsProviderError reports whether err is (or wraps) a ProviderError.
func IsProviderError(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe)
}
