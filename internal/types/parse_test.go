package types

import (
	"testing"
	"time"

	"github.com/samber/lo"
	ierr "github.com/siteledger/siteledger/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptionalDecimal(t *testing.T) {
	tests := []struct {
		name    string
		input   *string
		want    *string
		wantErr bool
	}{
		{name: "nil input", input: nil, want: nil},
		{name: "empty string", input: lo.ToPtr(""), want: nil},
		{name: "whitespace only", input: lo.ToPtr("   "), want: nil},
		{name: "plain number", input: lo.ToPtr("1500"), want: lo.ToPtr("1500")},
		{name: "decimal number", input: lo.ToPtr("1250000.50"), want: lo.ToPtr("1250000.5")},
		{name: "negative number", input: lo.ToPtr("-300.25"), want: lo.ToPtr("-300.25")},
		{name: "surrounding whitespace", input: lo.ToPtr(" 42 "), want: lo.ToPtr("42")},
		{name: "thousands separator rejected", input: lo.ToPtr("12,000"), wantErr: true},
		{name: "currency symbol rejected", input: lo.ToPtr("$500"), wantErr: true},
		{name: "not a number", input: lo.ToPtr("abc"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOptionalDecimal("amount", tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, ierr.IsValidation(err))
				return
			}
			require.NoError(t, err)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, got.String())
		})
	}
}

func TestParseRequiredDecimal(t *testing.T) {
	d, err := ParseRequiredDecimal("amount", "99.99")
	require.NoError(t, err)
	assert.Equal(t, "99.99", d.String())

	_, err = ParseRequiredDecimal("amount", "")
	require.Error(t, err)
	assert.True(t, ierr.IsValidation(err))

	_, err = ParseRequiredDecimal("amount", "  ")
	require.Error(t, err)
	assert.True(t, ierr.IsValidation(err))
}

func TestParseOptionalInt(t *testing.T) {
	got, err := ParseOptionalInt("schedule_impact_days", lo.ToPtr("14"))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 14, *got)

	got, err = ParseOptionalInt("schedule_impact_days", nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = ParseOptionalInt("schedule_impact_days", lo.ToPtr(""))
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = ParseOptionalInt("schedule_impact_days", lo.ToPtr("2.5"))
	require.Error(t, err)
	assert.True(t, ierr.IsValidation(err))

	_, err = ParseOptionalInt("schedule_impact_days", lo.ToPtr("two"))
	require.Error(t, err)
	assert.True(t, ierr.IsValidation(err))
}

func TestParseOptionalDate(t *testing.T) {
	got, err := ParseOptionalDate("start_date", lo.ToPtr("2026-03-01"))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), *got)

	got, err = ParseOptionalDate("start_date", nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = ParseOptionalDate("start_date", lo.ToPtr(" "))
	require.NoError(t, err)
	assert.Nil(t, got)

	for _, bad := range []string{"03/01/2026", "2026-3-1", "March 1, 2026", "2026-13-40"} {
		_, err = ParseOptionalDate("start_date", lo.ToPtr(bad))
		require.Error(t, err, bad)
		assert.True(t, ierr.IsValidation(err), bad)
	}
}
