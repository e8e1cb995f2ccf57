/*
Package errors provides semantic error types for the TableKit library.

The package defines the four error classes used across the library with
specific types that can be checked using the standard errors.Is() function
or the provided helper functions.

Common Errors:

	var (
	    ErrConfiguration = errors.New("invalid configuration")
	    ErrValidation    = errors.New("schema validation failed")
	    ErrSerialization = errors.New("serialization failed")
	    ErrProvider      = errors.New("provider call failed")
	)

Propagation policy:

  - Configuration and validation errors are caller-fatal immediately; nothing
    in the library attempts to auto-correct a schema or fill in missing setup.
  - Serialization errors are caller-fatal per call; there is no partial or
    best-effort decode.
  - Provider errors during a streaming scan halt the stream permanently; a
    caller that needs resilience re-issues a new scan from the last observed
    continuation token.

Usage:

	ws, err := table.ToWireSchema()
	if err != nil {
	    if errors.IsValidation(err) {
	        // Schema is malformed; fix the definition
	    }
	    return err
	}

	// Create typed errors
	err := errors.NewValidationError("Name", "table name must not be empty")
	err := errors.NewConfigurationError("serde", "attribute has no encryptor")

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
