/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrConfiguration is returned when required setup is missing or malformed
	ErrConfiguration = errors.New("invalid configuration")

	// ErrValidation is returned when a schema invariant is violated
	ErrValidation = errors.New("schema validation failed")

	// ErrSerialization is returned when a wire record fails to encode or decode
	ErrSerialization = errors.New("serialization failed")

	// ErrProvider is returned when a remote provider call fails
	ErrProvider = errors.New("provider call failed")
)

// ConfigurationError represents missing or malformed setup, such as an
// attribute that requires encryption but has no encryptor configured.
type ConfigurationError struct {
	Component string
	Message   string
}

func (e *ConfigurationError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// ValidationError represents a violated schema invariant. Field names the
// first offending element (table name, key attribute, index name).
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// SerializationError represents a wire record that could not be encoded or
// decoded (wrong tag, corrupt compressed or encrypted payload).
type SerializationError struct {
	Op  string
	Err error
}

func (e *SerializationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("serialization failed during %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("serialization failed during %s", e.Op)
}

func (e *SerializationError) Is(target error) bool {
	return target == ErrSerialization
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}

// ProviderError represents a failed remote call underlying a scan page fetch
// or another provider operation.
type ProviderError struct {
	Op  string
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s failed: %v", e.Op, e.Err)
}

func (e *ProviderError) Is(target error) bool {
	return target == ErrProvider
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Helper functions for creating errors

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(component, message string) error {
	return &ConfigurationError{Component: component, Message: message}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewSerializationError creates a new SerializationError wrapping the cause
func NewSerializationError(op string, err error) error {
	return &SerializationError{Op: op, Err: err}
}

// NewProviderError creates a new ProviderError wrapping the cause
func NewProviderError(op string, err error) error {
	return &ProviderError{Op: op, Err: err}
}

// IsConfiguration checks if an error is a configuration error
func IsConfiguration(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsSerialization checks if an error is a serialization error
func IsSerialization(err error) bool {
	return errors.Is(err, ErrSerialization)
}

// IsProvider checks if an error is a provider error
func IsProvider(err error) bool {
	return errors.Is(err, ErrProvider)
}
