// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// JSON response writing, HTTP client construction, and other
// common operations.
package utils

import (
	"context"

	"github.com/MKhiriev/go-config-gate/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// AuthOutcomeCtxKey is the key used to store the credential-gate outcome in
// the request context. Used together with GetAuthOutcomeFromContext for
// type-safe retrieval of the outcome from context.Context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.AuthOutcomeCtxKey, models.OutcomeAuthenticated)
var AuthOutcomeCtxKey = contextKey("authOutcome")

// GetAuthOutcomeFromContext retrieves the credential-gate outcome from the
// context.
//
// Returns the outcome and an ok flag:
//   - ok == true  — value is found and has the correct models.AuthOutcome type
//   - ok == false — value is missing or has an unexpected type
//
// Handlers behind the gate use this to report, rather than assume, that the
// request was authenticated.
func GetAuthOutcomeFromContext(ctx context.Context) (models.AuthOutcome, bool) {
	outcome, ok := ctx.Value(AuthOutcomeCtxKey).(models.AuthOutcome)
	return outcome, ok
}
