package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fixture pinning the one-day compensation: a stored "2026-03-15" displays
// as 14/03/2026. Changing this behavior changes every rendered document.
func TestCivilDateCompensation(t *testing.T) {
	got, ok := CivilDate("2026-03-15")
	require.True(t, ok)

	assert.Equal(t, 2026, got.Year())
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 14, got.Day())
	assert.Equal(t, 12, got.Hour())

	_, offset := got.Zone()
	assert.Equal(t, -3*60*60, offset)
}

func TestCivilDateAcceptsISOTimestamps(t *testing.T) {
	short, ok := CivilDate("2026-01-10")
	require.True(t, ok)

	iso, ok := CivilDate("2026-01-10T00:00:00.000Z")
	require.True(t, ok)

	assert.Equal(t, short, iso)
}

func TestCivilDateRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "   ", "10/01/2026", "not-a-date", "2026-13-40"} {
		_, ok := CivilDate(in)
		assert.False(t, ok, "input %q", in)
	}
}

func TestFormatDateShort(t *testing.T) {
	assert.Equal(t, "14/03/2026", FormatDateShort("2026-03-15"))
	assert.Equal(t, "", FormatDateShort(""))
	assert.Equal(t, "", FormatDateShort("garbage"))
}

func TestMonthNameAndYear(t *testing.T) {
	// 2026-03-01 compensates to the last day of February.
	assert.Equal(t, "Fevereiro", MonthName("2026-03-01"))
	assert.Equal(t, "Março", MonthName("2026-03-15"))
	assert.Equal(t, "2026", YearOf("2026-03-15"))
	assert.Equal(t, "", MonthName("bad"))
}

func TestPaymentDayOf(t *testing.T) {
	assert.Equal(t, 4, PaymentDayOf("2026-02-05"))
	assert.Equal(t, 0, PaymentDayOf(""))
}

func TestLongDateProse(t *testing.T) {
	// 2026-03-02 12:00 -03 is a Monday.
	instant := time.Date(2026, time.March, 2, 12, 0, 0, 0, civilZone)
	assert.Equal(t, "segunda-feira, 2 de março de 2026", LongDateProse(instant))
}
