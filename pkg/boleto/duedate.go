// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package boleto

import (
	"fmt"
	"time"
)

var (
	// FactorEpoch is due date factor zero.
	FactorEpoch = time.Date(1997, time.October, 7, 0, 0, 0, 0, time.UTC)

	// FactorRollover is the first day of the second factor cycle, which
	// restarts at 1000 once factor 9999 (2025-02-21) was spent.
	FactorRollover = time.Date(2025, time.February, 22, 0, 0, 0, 0, time.UTC)
)

const (
	maxFactor      = 9999
	rolloverFactor = 1000
	factorCycle    = maxFactor - rolloverFactor + 1
)

// DueDateFactor returns the number of days between FactorEpoch and date.
//
// Without rollover dates before the epoch or past factor 9999 return
// ErrDueDateOutOfRange. With rollover, dates from FactorRollover onwards
// cycle through factors 1000 to 9999.
func DueDateFactor(date time.Time, rollover bool) (int, error) {
	days := daysBetween(FactorEpoch, date)
	if days < 0 {
		return 0, fmt.Errorf("%w: %s is before %s", ErrDueDateOutOfRange, date.Format("2006-01-02"), FactorEpoch.Format("2006-01-02"))
	}
	if days <= maxFactor {
		return days, nil
	}
	if !rollover {
		return 0, fmt.Errorf("%w: %s needs factor %d", ErrDueDateOutOfRange, date.Format("2006-01-02"), days)
	}
	return (days-maxFactor-1)%factorCycle + rolloverFactor, nil
}

// DueDateFromFactor is the inverse of DueDateFactor. Factor zero means the
// slip has no due date and returns the zero time.
func DueDateFromFactor(factor int, rollover bool) time.Time {
	if factor <= 0 {
		return time.Time{}
	}
	if rollover && factor >= rolloverFactor {
		return FactorRollover.AddDate(0, 0, factor-rolloverFactor)
	}
	return FactorEpoch.AddDate(0, 0, factor)
}

func daysBetween(from, to time.Time) int {
	y, m, d := to.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return int(day.Sub(from) / (24 * time.Hour))
}
