package validation

import (
	"fmt"
	"strconv"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
)

// Register wires engine rules into validator as custom struct tags with
// translated messages, so request payloads can declare them declaratively
func Register(v *validator.Validate, trans ut.Translator, allowedEmailDomains []string) error {
	tagged := []struct {
		tag     string
		message string
		rule    Rule
	}{
		{"positive", "{0} must be a positive number", PositiveNumber},
		{"nonneg", "{0} must not be negative", NonNegativeNumber},
		{"futuredate", "{0} must not be in the past", FutureDate},
		{"pastdate", "{0} must not be in the future", PastDate},
		{"inphone", "{0} must be a valid 10-digit mobile number", PhoneNumber},
		{"policyname", "{0} contains forbidden characters", PolicyName},
		{"emaildomain", "{0} domain is not allowed", EmailDomain(allowedEmailDomains)},
	}

	for _, t := range tagged {
		if err := v.RegisterValidation(t.tag, ruleFunc(t.rule)); err != nil {
			return fmt.Errorf("failed to register validation %s - %w", t.tag, err)
		}
		if err := registerMessage(v, trans, t.tag, t.message); err != nil {
			return fmt.Errorf("failed to register message for %s - %w", t.tag, err)
		}
	}

	if err := v.RegisterValidation("minage", minAge); err != nil {
		return fmt.Errorf("failed to register validation minage - %w", err)
	}
	if err := registerMessage(v, trans, "minage", "{0} does not meet the minimum age requirement"); err != nil {
		return fmt.Errorf("failed to register message for minage - %w", err)
	}

	if err := v.RegisterValidation("amountrange", amountRange); err != nil {
		return fmt.Errorf("failed to register validation amountrange - %w", err)
	}
	if err := registerMessage(v, trans, "amountrange", "{0} is out of allowed range"); err != nil {
		return fmt.Errorf("failed to register message for amountrange - %w", err)
	}

	return nil
}

func ruleFunc(rule Rule) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return rule(fl.Field().Interface()) == nil
	}
}

// minage expects required age as tag parameter, e.g. minage=18
func minAge(fl validator.FieldLevel) bool {
	required, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return MinimumAge(required)(fl.Field().Interface()) == nil
}

// amountrange expects inclusive bounds as tag parameter, e.g. amountrange=100-1000000
func amountRange(fl validator.FieldLevel) bool {
	bounds := strings.SplitN(fl.Param(), "-", 2)
	if len(bounds) != 2 {
		return false
	}

	min, err := strconv.ParseFloat(bounds[0], 64)
	if err != nil {
		return false
	}

	max, err := strconv.ParseFloat(bounds[1], 64)
	if err != nil {
		return false
	}

	return AmountRange(min, max)(fl.Field().Interface()) == nil
}

func registerMessage(v *validator.Validate, trans ut.Translator, tag string, message string) error {
	return v.RegisterTranslation(tag, trans,
		func(t ut.Translator) error {
			return t.Add(tag, message, true)
		},
		func(t ut.Translator, fe validator.FieldError) string {
			msg, err := t.T(tag, fe.Field())
			if err != nil {
				return fe.Error()
			}
			return msg
		},
	)
}
