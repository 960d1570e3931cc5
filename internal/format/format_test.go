package format

import (
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{name: "whole dollars", amount: "1500", want: "$1,500.00"},
		{name: "with cents", amount: "1250000.50", want: "$1,250,000.50"},
		{name: "zero", amount: "0", want: "$0.00"},
		{name: "sub dollar", amount: "0.75", want: "$0.75"},
		{name: "negative", amount: "-300.25", want: "-$300.25"},
		{name: "rounds fractional cents", amount: "10.005", want: "$10.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Currency(decimal.RequireFromString(tt.amount)))
		})
	}
}

func TestOptionalCurrency(t *testing.T) {
	assert.Equal(t, NotSpecified, OptionalCurrency(nil))
	assert.Equal(t, "$42.00", OptionalCurrency(lo.ToPtr(decimal.NewFromInt(42))))
}

func TestDate(t *testing.T) {
	d := time.Date(2026, 3, 1, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "Mar 1, 2026", Date(d))
	assert.Equal(t, "Mar 1, 2026", OptionalDate(&d))
	assert.Equal(t, NotSpecified, OptionalDate(nil))
}

func TestDays(t *testing.T) {
	assert.Equal(t, "0 days", Days(0))
	assert.Equal(t, "1 day", Days(1))
	assert.Equal(t, "14 days", Days(14))
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 30, DaysUntil(now, now.Add(30*24*time.Hour)))
	assert.Equal(t, 0, DaysUntil(now, now))
	assert.Equal(t, 0, DaysUntil(now, now.Add(-5*24*time.Hour)))
}
