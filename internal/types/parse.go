package types

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	ierr "github.com/siteledger/siteledger/internal/errors"
)

// Helpers for the string-typed inputs the edit screens submit. Numeric and
// date fields arrive as text; they are parsed here, at the request boundary,
// and an empty string always normalizes to NULL rather than zero.

// ParseOptionalDecimal parses a nullable amount field. Returns nil for a nil
// or empty input and a validation error for text that is not a number.
func ParseOptionalDecimal(field string, value *string) (*decimal.Decimal, error) {
	if value == nil {
		return nil, nil
	}
	s := strings.TrimSpace(*value)
	if s == "" {
		return nil, nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHintf("%s must be a number", field).
			WithReportableDetails(map[string]any{field: s}).
			Mark(ierr.ErrValidation)
	}
	return &d, nil
}

// ParseRequiredDecimal parses a required amount field.
func ParseRequiredDecimal(field string, value string) (decimal.Decimal, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return decimal.Zero, ierr.NewError(field + " is required").
			WithHintf("%s is required", field).
			Mark(ierr.ErrValidation)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ierr.WithError(err).
			WithHintf("%s must be a number", field).
			WithReportableDetails(map[string]any{field: s}).
			Mark(ierr.ErrValidation)
	}
	return d, nil
}

// ParseOptionalInt parses a nullable whole-number field such as a schedule
// impact in days.
func ParseOptionalInt(field string, value *string) (*int, error) {
	d, err := ParseOptionalDecimal(field, value)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, nil
	}
	if !d.IsInteger() {
		return nil, ierr.NewError(field + " must be a whole number").
			WithHintf("%s must be a whole number", field).
			Mark(ierr.ErrValidation)
	}
	n := int(d.IntPart())
	return &n, nil
}

// ParseOptionalDate parses a nullable date field submitted as `2006-01-02`.
func ParseOptionalDate(field string, value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	s := strings.TrimSpace(*value)
	if s == "" {
		return nil, nil
	}

	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHintf("%s must be a date in YYYY-MM-DD format", field).
			WithReportableDetails(map[string]any{field: s}).
			Mark(ierr.ErrValidation)
	}
	t = t.UTC()
	return &t, nil
}
