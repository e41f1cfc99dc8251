// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package boleto

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDueDateFactor(t *testing.T) {
	cases := []struct {
		due    time.Time
		factor int
	}{
		{date(1997, time.October, 7), 0},
		{date(1997, time.October, 8), 1},
		{date(2000, time.July, 3), 1000},
		{date(2024, time.May, 10), 9712},
		{date(2025, time.February, 21), 9999},
	}
	for _, tc := range cases {
		f, err := DueDateFactor(tc.due, false)
		require.NoError(t, err)
		require.Equal(t, tc.factor, f, tc.due.String())
	}

	// time of day and location are ignored
	sp := time.FixedZone("BRT", -3*60*60)
	f, err := DueDateFactor(time.Date(2000, time.July, 3, 23, 59, 0, 0, sp), false)
	require.NoError(t, err)
	require.Equal(t, 1000, f)
}

func TestDueDateFactor__outOfRange(t *testing.T) {
	_, err := DueDateFactor(date(1997, time.October, 6), false)
	require.True(t, errors.Is(err, ErrDueDateOutOfRange))

	_, err = DueDateFactor(time.Time{}, true)
	require.True(t, errors.Is(err, ErrDueDateOutOfRange))

	_, err = DueDateFactor(date(2025, time.February, 22), false)
	require.True(t, errors.Is(err, ErrDueDateOutOfRange))
}

func TestDueDateFactor__rollover(t *testing.T) {
	f, err := DueDateFactor(date(2025, time.February, 22), true)
	require.NoError(t, err)
	require.Equal(t, 1000, f)

	f, err = DueDateFactor(date(2025, time.March, 1), true)
	require.NoError(t, err)
	require.Equal(t, 1007, f)

	// dates inside the first cycle are unaffected
	f, err = DueDateFactor(date(2024, time.May, 10), true)
	require.NoError(t, err)
	require.Equal(t, 9712, f)
}

func TestDueDateFromFactor(t *testing.T) {
	require.True(t, DueDateFromFactor(0, false).IsZero())
	require.Equal(t, date(2000, time.July, 3), DueDateFromFactor(1000, false))
	require.Equal(t, date(2024, time.May, 10), DueDateFromFactor(9712, false))
	require.Equal(t, date(2025, time.March, 1), DueDateFromFactor(1007, true))
}
