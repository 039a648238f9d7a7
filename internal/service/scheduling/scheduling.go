// Package scheduling computes recurring clinic dates. The clinic meets
// on the fourth Tuesday of every month.
package scheduling

import (
	"time"

	"cloud.google.com/go/civil"

	"github.com/healhub/healhub_backend/pkg/apperr"
)

// FourthTuesday returns the fourth Tuesday of the given month: the first
// Tuesday on or after the 1st, plus three weeks. The result always falls
// on day 22 through 28.
func FourthTuesday(year int, month time.Month) (civil.Date, error) {
	if month < time.January || month > time.December {
		return civil.Date{}, ErrInvalidMonth
	}

	d := civil.Date{Year: year, Month: month, Day: 1}
	for d.In(time.UTC).Weekday() != time.Tuesday {
		d = d.AddDays(1)
	}

	return d.AddDays(21), nil
}

// NextClinicDate returns the earliest fourth-Tuesday clinic date strictly
// after from. A from on or past this month's clinic rolls to next month;
// December rolls to January of the following year.
func NextClinicDate(from civil.Date) (civil.Date, error) {
	thisMonth, err := FourthTuesday(from.Year, from.Month)
	if err != nil {
		return civil.Date{}, err
	}
	if thisMonth.After(from) {
		return thisMonth, nil
	}

	year, month := from.Year, from.Month+1
	if month > time.December {
		year, month = year+1, time.January
	}
	return FourthTuesday(year, month)
}

// ErrInvalidMonth rejects a structurally invalid (year, month) pair.
var ErrInvalidMonth = apperr.Validation("invalid year/month")
