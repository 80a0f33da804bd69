package services

import (
	"fmt"
	"math"
	"strconv"

	"github.com/charity-platform/backend/internal/apperr"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func checkRequired(field, value string) error {
	if value == "" {
		return apperr.Validation(field, "is required")
	}
	return nil
}

func checkEmail(field, value string, required bool) error {
	if value == "" {
		if required {
			return apperr.Validation(field, "is required")
		}
		return nil
	}
	if err := validate.Var(value, "email"); err != nil {
		return apperr.Validation(field, "must be a valid email address")
	}
	return nil
}

func checkURL(field, value string) error {
	if value == "" {
		return nil
	}
	if err := validate.Var(value, "url"); err != nil {
		return apperr.Validation(field, "must be a valid URL")
	}
	return nil
}

// checkAmount validates a stored monetary field: parseable, finite, and
// non-negative. Values are kept as strings; nothing is ever clamped.
func checkAmount(field, value string) error {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return apperr.Validation(field, "must be a number")
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return apperr.Validation(field, "must be a number")
	}
	if f < 0 {
		return apperr.Validation(field, "must not be negative")
	}
	return nil
}

// NormalizeAmount turns an increment payload value into a non-negative
// decimal string. JSON clients may send either a number or a numeric
// string; anything else is a validation error and nothing is written.
func NormalizeAmount(v any) (string, error) {
	if v == nil {
		return "", apperr.Validation("amount", "is required")
	}

	var s string
	switch n := v.(type) {
	case string:
		s = n
	case float64:
		s = strconv.FormatFloat(n, 'f', -1, 64)
	case int:
		s = strconv.Itoa(n)
	default:
		return "", apperr.Validation("amount", "must be a number")
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return "", apperr.Validation("amount", fmt.Sprintf("invalid amount %q", s))
	}
	if f < 0 {
		return "", apperr.Validation("amount", "must be positive")
	}
	return s, nil
}
