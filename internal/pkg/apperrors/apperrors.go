// Package apperrors defines the closed error taxonomy shared by the
// onboarding service. Storage and gateway failures are translated into these
// sentinels at the point of the call; raw driver error text is preserved via
// wrapping for logs but never used for control flow.
package apperrors

import (
	"errors"
	"fmt"

	"github.com/fitlink/fitlink/internal/pkg/models"
)

var (
	// ErrStorageUnavailable marks a transient store failure. Callers may
	// retry; it is never conflated with "not found".
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrInvalidOrExpiredToken marks a flow token that is unknown, expired,
	// or already consumed. Terminal for that token.
	ErrInvalidOrExpiredToken = errors.New("invalid or expired flow token")

	// ErrMissingToken marks a completion callback without a flow_token field
	ErrMissingToken = errors.New("missing flow token")

	// ErrUnknownFlowType marks a token whose recorded flow type has no
	// dispatch handler. Data-integrity issue, logged loudly.
	ErrUnknownFlowType = errors.New("unknown flow type")

	// ErrGatewayDeliveryFailed marks a messaging gateway send failure
	ErrGatewayDeliveryFailed = errors.New("gateway delivery failed")

	// ErrDuplicateRecord marks a store uniqueness-constraint conflict, the
	// close of the near-simultaneous first-registration race.
	ErrDuplicateRecord = errors.New("record already exists")
)

// ValidationError carries the field-level messages of a failed validation
// pass. It satisfies error so dispatch handlers can refuse a payload without
// consuming the token, letting the user resubmit a corrected form.
type ValidationError struct {
	Fields []models.FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d field error(s)", len(e.Fields))
}

// NewValidationError wraps a failed ValidationResult
func NewValidationError(result models.ValidationResult) *ValidationError {
	return &ValidationError{Fields: result.Errors}
}

// AsValidationError extracts a ValidationError from an error chain
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
