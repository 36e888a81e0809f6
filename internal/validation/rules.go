package validation

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

const dateOnlyLayout = "2006-01-02"

var (
	phoneRegex      = regexp.MustCompile(`^[6-9]\d{9}$`)
	policyNameRegex = regexp.MustCompile(`^[a-zA-Z0-9\s\-_&]+$`)
)

// FieldError is a single rule violation carrying the rule tag and the context
// the rule evaluated
type FieldError struct {
	Rule    string         `json:"rule"`
	Message string         `json:"message"`
	Context map[string]any `json:"context,omitempty"`
}

// Rule validates single field value, nil result means value is valid.
// Empty value is always valid - required-ness is a separate rule.
type Rule func(value any) *FieldError

// Form is raw form values by field name
type Form map[string]any

// FieldErrors is per-field violation state of a form
type FieldErrors map[string]*FieldError

// FormRule validates whole form and may adjust per-field violation state
type FormRule func(form Form, errs FieldErrors) *FieldError

// PositiveNumber requires value coercible to number greater than zero
func PositiveNumber(value any) *FieldError {
	num, empty, ok := coerceNumber(value)
	if empty {
		return nil
	}
	if !ok || num <= 0 {
		return &FieldError{
			Rule:    "positiveNumber",
			Message: "value must be a positive number",
			Context: map[string]any{"value": value},
		}
	}
	return nil
}

// NonNegativeNumber requires value coercible to number greater than or equal to zero
func NonNegativeNumber(value any) *FieldError {
	num, empty, ok := coerceNumber(value)
	if empty {
		return nil
	}
	if !ok || num < 0 {
		return &FieldError{
			Rule:    "nonNegativeNumber",
			Message: "value must not be negative",
			Context: map[string]any{"value": value},
		}
	}
	return nil
}

// FutureDate requires selected date to be today or later, time of day is ignored
func FutureDate(value any) *FieldError {
	selected, ok := parseDate(value)
	if !ok {
		return nil
	}
	if selected.Before(today()) {
		return &FieldError{Rule: "futureDate", Message: "date must not be in the past"}
	}
	return nil
}

// PastDate requires selected date to be today or earlier, time of day is ignored
func PastDate(value any) *FieldError {
	selected, ok := parseDate(value)
	if !ok {
		return nil
	}
	if selected.After(today()) {
		return &FieldError{Rule: "pastDate", Message: "date must not be in the future"}
	}
	return nil
}

// MinimumAge requires birth date to be at least minAge whole years ago
func MinimumAge(minAge int) Rule {
	return func(value any) *FieldError {
		birth, ok := parseDate(value)
		if !ok {
			return nil
		}

		actual := ageAt(birth, time.Now())
		if actual < minAge {
			return &FieldError{
				Rule:    "minimumAge",
				Message: "minimum age requirement is not met",
				Context: map[string]any{"requiredAge": minAge, "actualAge": actual},
			}
		}
		return nil
	}
}

// DateComparison requires end date to be strictly after start date. Prior
// violations on both fields are cleared first, on failure the violation is
// attached to the end field so its display reflects the failure.
func DateComparison(startField, endField string) FormRule {
	return func(form Form, errs FieldErrors) *FieldError {
		start, okStart := parseDate(form[startField])
		end, okEnd := parseDate(form[endField])
		if !okStart || !okEnd {
			return nil
		}

		delete(errs, startField)
		delete(errs, endField)

		if !end.After(start) {
			fieldErr := &FieldError{
				Rule:    "dateComparison",
				Message: "End date must be after start date",
				Context: map[string]any{"startDate": start, "endDate": end},
			}
			errs[endField] = fieldErr
			return fieldErr
		}
		return nil
	}
}

// PhoneNumber requires 10-digit mobile number starting with digit 6-9
func PhoneNumber(value any) *FieldError {
	s, empty := coerceString(value)
	if empty {
		return nil
	}
	if !phoneRegex.MatchString(s) {
		return &FieldError{Rule: "phoneNumber", Message: "value must be a valid 10-digit mobile number"}
	}
	return nil
}

// EmailDomain requires the part after the last @ to be in the allowed set.
// Empty allowed set accepts any domain.
func EmailDomain(allowed []string) Rule {
	return func(value any) *FieldError {
		s, empty := coerceString(value)
		if empty || len(allowed) == 0 {
			return nil
		}

		domain := s[strings.LastIndex(s, "@")+1:]
		for _, d := range allowed {
			if d == domain {
				return nil
			}
		}
		return &FieldError{
			Rule:    "emailDomain",
			Message: "email domain is not allowed",
			Context: map[string]any{"domain": domain, "allowedDomains": allowed},
		}
	}
}

// AmountRange requires numeric value to lie in [min, max] inclusive
func AmountRange(min, max float64) Rule {
	return func(value any) *FieldError {
		num, empty, ok := coerceNumber(value)
		if empty {
			return nil
		}
		if !ok || num < min || num > max {
			return &FieldError{
				Rule:    "amountRange",
				Message: "amount is out of allowed range",
				Context: map[string]any{"min": min, "max": max, "actual": num},
			}
		}
		return nil
	}
}

// PolicyName allows alphanumeric characters plus space, hyphen, underscore and ampersand
func PolicyName(value any) *FieldError {
	s, empty := coerceString(value)
	if empty {
		return nil
	}
	if !policyNameRegex.MatchString(s) {
		return &FieldError{Rule: "policyName", Message: "value contains forbidden characters"}
	}
	return nil
}

func coerceString(value any) (s string, empty bool) {
	if value == nil {
		return "", true
	}
	s, ok := value.(string)
	if !ok {
		return "", true
	}
	return s, s == ""
}

func coerceNumber(value any) (num float64, empty bool, ok bool) {
	switch v := value.(type) {
	case nil:
		return 0, true, false
	case string:
		if v == "" {
			return 0, true, false
		}
		num, err := strconv.ParseFloat(v, 64)
		return num, false, err == nil
	case float64:
		return v, false, true
	case float32:
		return float64(v), false, true
	case int:
		return float64(v), false, true
	case int64:
		return float64(v), false, true
	default:
		return 0, false, false
	}
}

func parseDate(value any) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, time.Local), true
	case string:
		if v == "" {
			return time.Time{}, false
		}
		if t, err := time.ParseInLocation(dateOnlyLayout, v, time.Local); err == nil {
			return t, true
		}
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			t = t.Local()
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local), true
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
}

func ageAt(birth, now time.Time) int {
	years := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		years--
	}
	return years
}
