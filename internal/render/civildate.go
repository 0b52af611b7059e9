package render

import (
	"fmt"
	"strings"
	"time"
)

// civilZone is the fixed civil calendar of the business (UTC-3, no DST).
var civilZone = time.FixedZone("-03", -3*60*60)

var meses = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

var diasDaSemana = [...]string{
	"domingo", "segunda-feira", "terça-feira", "quarta-feira",
	"quinta-feira", "sexta-feira", "sábado",
}

// CivilDate turns a stored civil date ("YYYY-MM-DD" or ISO timestamp) into
// the instant used for display formatting: one calendar day earlier, pinned
// to 12:00 in the fixed UTC-3 zone.
//
// The one-day subtraction compensates for stored values that were shifted
// forward when midnight-UTC timestamps were read in the UTC-3 calendar.
// It must be applied identically everywhere a stored date is displayed or
// screens disagree with each other. It is a workaround for the upstream
// storage defect, not a feature; it is kept in this single function so it
// can be removed in one place once the source data is fixed.
func CivilDate(stored string) (time.Time, bool) {
	stored = strings.TrimSpace(stored)
	if len(stored) < 10 {
		return time.Time{}, false
	}

	// Both accepted forms start with the civil date; ISO suffixes are noise.
	d, err := time.Parse("2006-01-02", stored[:10])
	if err != nil {
		return time.Time{}, false
	}

	d = d.AddDate(0, 0, -1)

	return time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, civilZone), true
}

// FormatDateShort renders a stored civil date as "dd/mm/yyyy", or the empty
// string when the value is absent or unparsable.
func FormatDateShort(stored string) string {
	t, ok := CivilDate(stored)
	if !ok {
		return ""
	}

	return t.Format("02/01/2006")
}

// MonthName returns the capitalized Portuguese month name of a stored date.
func MonthName(stored string) string {
	t, ok := CivilDate(stored)
	if !ok {
		return ""
	}

	return capitalize(meses[t.Month()-1])
}

// YearOf returns the four-digit year of a stored date.
func YearOf(stored string) string {
	t, ok := CivilDate(stored)
	if !ok {
		return ""
	}

	return fmt.Sprintf("%04d", t.Year())
}

// PaymentDayOf returns the day-of-month of a stored date, or 0 when absent.
func PaymentDayOf(stored string) int {
	t, ok := CivilDate(stored)
	if !ok {
		return 0
	}

	return t.Day()
}

// LongDateProse writes a wall-clock instant as full Portuguese prose,
// e.g. "segunda-feira, 2 de março de 2026". Wall-clock values never go
// through CivilDate; the compensation only applies to stored dates.
func LongDateProse(t time.Time) string {
	t = t.In(civilZone)

	return fmt.Sprintf("%s, %d de %s de %d",
		diasDaSemana[t.Weekday()], t.Day(), meses[t.Month()-1], t.Year())
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)

	return strings.ToUpper(string(r[0])) + string(r[1:])
}
