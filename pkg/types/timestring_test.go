package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	for _, bad := range []string{"", "9:30am", "25:00", "12:60", "noon"} {
		_, err := NewTimeStringFromString(bad)
		assert.ErrorIs(t, err, ErrInvalidTimeString, "input %q", bad)
	}
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2026, 3, 2, 14, 5, 59, 0, time.UTC)
	assert.Equal(t, TimeString("14:05"), NewTimeString(moment))
}

func TestAddMinutes(t *testing.T) {
	ts := TimeString("09:30")

	next, err := ts.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:00"), next)

	// Wraps around midnight
	late := TimeString("23:45")
	wrapped, err := late.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("00:15"), wrapped)

	_, err = TimeString("bad").AddMinutes(30)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestComparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("17:30").IsAfter("09:00"))
	assert.False(t, TimeString("09:00").IsAfter("09:00"))
}

func TestScan(t *testing.T) {
	var ts TimeString

	// Postgres TIME values carry seconds
	require.NoError(t, ts.Scan("09:30:00"))
	assert.Equal(t, TimeString("09:30"), ts)

	require.NoError(t, ts.Scan([]byte("17:00:00")))
	assert.Equal(t, TimeString("17:00"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 3, 2, 8, 15, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("08:15"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestValue(t *testing.T) {
	v, err := TimeString("09:30").Value()
	require.NoError(t, err)
	assert.Equal(t, "09:30", v)

	_, err = TimeString("bad").Value()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}
