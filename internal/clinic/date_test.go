package clinic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateIsValid(t *testing.T) {
	tests := []struct {
		name string
		date Date
		want bool
	}{
		{"april has 30 days", Date{2021, 4, 31}, false},
		{"leap day on leap year", Date{2020, 2, 29}, true},
		{"leap day off leap year", Date{2021, 2, 29}, false},
		{"century non-leap", Date{1900, 2, 29}, false},
		{"quadricentennial leap", Date{2000, 2, 29}, true},
		{"month zero", Date{2021, 0, 10}, false},
		{"month thirteen", Date{2021, 13, 10}, false},
		{"day zero", Date{2021, 6, 0}, false},
		{"december thirty-first", Date{2021, 12, 31}, true},
		{"february twenty-eighth", Date{2021, 2, 28}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.date.IsValid())
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("12/19/2025")
	require.NoError(t, err)
	assert.Equal(t, Date{2025, 12, 19}, d)

	// Fields are not zero-padded on input.
	d, err = ParseDate("1/5/1990")
	require.NoError(t, err)
	assert.Equal(t, Date{1990, 1, 5}, d)

	for _, bad := range []string{"", "12/19", "12/19/2025/1", "12-19-2025", "dec/19/2025", "12/x/2025"} {
		_, err := ParseDate(bad)
		assert.ErrorIs(t, err, ErrInvalidDateFormat, "input %q", bad)
	}
}

func TestDateCompare(t *testing.T) {
	a := Date{2025, 6, 15}
	assert.Zero(t, a.Compare(Date{2025, 6, 15}))
	assert.Negative(t, a.Compare(Date{2026, 1, 1}))
	assert.Positive(t, a.Compare(Date{2024, 12, 31}))
	assert.Negative(t, a.Compare(Date{2025, 7, 1}))
	assert.Positive(t, a.Compare(Date{2025, 6, 14}))

	assert.True(t, a.Before(Date{2025, 6, 16}))
	assert.True(t, a.After(Date{2025, 6, 14}))
	assert.False(t, a.After(a))
}

func TestDateString(t *testing.T) {
	assert.Equal(t, "12/19/2025", Date{2025, 12, 19}.String())
	assert.Equal(t, "1/5/1990", Date{1990, 1, 5}.String())
	assert.Equal(t, "2/3/0800", Date{800, 2, 3}.String())
}

func TestDateIsWeekend(t *testing.T) {
	assert.True(t, Date{2025, 12, 20}.IsWeekend())  // Saturday
	assert.True(t, Date{2025, 12, 21}.IsWeekend())  // Sunday
	assert.False(t, Date{2025, 12, 19}.IsWeekend()) // Friday
	assert.False(t, Date{2025, 9, 1}.IsWeekend())   // Monday
}

func TestDateWithinMonths(t *testing.T) {
	today := Date{2025, 9, 1}

	assert.True(t, Date{2025, 9, 2}.WithinMonths(today, 6))
	assert.True(t, Date{2026, 3, 1}.WithinMonths(today, 6))  // exact boundary
	assert.False(t, Date{2026, 3, 2}.WithinMonths(today, 6)) // one past
	assert.False(t, Date{2026, 9, 1}.WithinMonths(today, 6))
}
