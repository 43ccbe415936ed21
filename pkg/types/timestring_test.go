package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddMinutes_RollsOverHour(t *testing.T) {
	ts := TimeString("21:45")

	got, err := ts.AddMinutes(30)

	require.NoError(t, err)
	assert.Equal(t, TimeString("22:15"), got)
}

func TestAddMinutes_CrossingMidnightFails(t *testing.T) {
	cases := []struct {
		name    string
		start   TimeString
		minutes int
	}{
		{"past midnight", "23:45", 30},
		{"exactly midnight", "23:30", 30},
		{"far past midnight", "22:00", 180},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.start.AddMinutes(tc.minutes)
			assert.Error(t, err)
		})
	}
}

func TestAddMinutes_LastMinuteOfDay(t *testing.T) {
	got, err := TimeString("23:29").AddMinutes(30)

	require.NoError(t, err)
	assert.Equal(t, TimeString("23:59"), got)
}

func TestIsBeforeIsAfter(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("10:30").IsAfter("10:00"))
	// zero-padding keeps string comparison correct
	assert.True(t, TimeString("09:59").IsBefore("10:00"))
}

func TestMinutesUntil(t *testing.T) {
	got, err := TimeString("10:00").MinutesUntil("12:30")
	require.NoError(t, err)
	assert.Equal(t, 150, got)

	got, err = TimeString("12:30").MinutesUntil("10:00")
	require.NoError(t, err)
	assert.Equal(t, -150, got)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, TimeString("00:00").Validate())
	assert.NoError(t, TimeString("23:59").Validate())
	assert.Error(t, TimeString("24:00").Validate())
	assert.Error(t, TimeString("9:00").Validate())
	assert.Error(t, TimeString("abc").Validate())
}

func TestScan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("10:30:00"))
	assert.Equal(t, TimeString("10:30"), ts)

	require.NoError(t, ts.Scan([]byte("08:15:00")))
	assert.Equal(t, TimeString("08:15"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 9, 15, 14, 45, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("14:45"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())
}
