package validation

import (
	"context"
	"strings"

	"github.com/umalmyha/insurance/internal/model"
)

// CustomerLookup is the single capability async uniqueness rules depend on
type CustomerLookup interface {
	FindAll(ctx context.Context) ([]model.Customer, error)
}

// AsyncRule validates single field value against a remote data source.
// Lookup failure is treated as valid (fail-open) so a transient error
// never blocks submission.
type AsyncRule func(ctx context.Context, value any) *FieldError

// EmailExists reports a violation when email is already registered for any
// customer, matching is case-insensitive
func EmailExists(lookup CustomerLookup) AsyncRule {
	return func(ctx context.Context, value any) *FieldError {
		email, empty := coerceString(value)
		if empty {
			return nil
		}

		customers, err := lookup.FindAll(ctx)
		if err != nil {
			return nil
		}

		for _, c := range customers {
			if strings.EqualFold(c.Email, email) {
				return &FieldError{
					Rule:    "emailExists",
					Message: "Email already exists",
					Context: map[string]any{"value": email},
				}
			}
		}
		return nil
	}
}

// PhoneExists reports a violation when phone is already registered for any customer
func PhoneExists(lookup CustomerLookup) AsyncRule {
	return func(ctx context.Context, value any) *FieldError {
		phone, empty := coerceString(value)
		if empty {
			return nil
		}

		customers, err := lookup.FindAll(ctx)
		if err != nil {
			return nil
		}

		for _, c := range customers {
			if c.Phone == phone {
				return &FieldError{
					Rule:    "phoneExists",
					Message: "Phone number already exists",
					Context: map[string]any{"value": phone},
				}
			}
		}
		return nil
	}
}
