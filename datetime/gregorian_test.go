package datetime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsLeapYear(t *testing.T) {
	assert.True(t, IsLeapYear(2000))
	assert.True(t, IsLeapYear(1996))
	assert.True(t, IsLeapYear(2020))
	assert.False(t, IsLeapYear(1900))
	assert.False(t, IsLeapYear(2100))
	assert.False(t, IsLeapYear(2019))
	assert.True(t, IsLeapYear(1600))
}

func TestGregorianRoundTrip(t *testing.T) {
	cases := []struct {
		year                               int32
		month, day, hour, minute, second   uint8
		nanos                              uint32
	}{
		{1900, 1, 1, 0, 0, 0, 0},
		{1899, 12, 31, 23, 59, 59, 999_999_999},
		{1810, 5, 20, 6, 0, 0, 0},
		{1972, 1, 1, 0, 0, 0, 0},
		{2000, 2, 29, 14, 57, 29, 12},
		{2020, 3, 15, 8, 30, 45, 123_456_789},
		{2100, 2, 28, 23, 59, 59, 1},
		{1969, 7, 20, 20, 17, 40, 0},
	}

	for _, ts := range []TimeScale{TIME_SCALE_TAI, TIME_SCALE_UTC, TIME_SCALE_GPST, TIME_SCALE_TT} {
		for _, c := range cases {
			e, err := MaybeGregorian2Epoch(c.year, c.month, c.day, c.hour, c.minute, c.second, c.nanos, ts)
			require.NoError(t, err)

			year, month, day, hour, minute, second, nanos := e.DateTime()
			assert.Equal(t, c.year, year, "%+v in %s", c, ts)
			assert.Equal(t, c.month, month)
			assert.Equal(t, c.day, day)
			assert.Equal(t, c.hour, hour)
			assert.Equal(t, c.minute, minute)
			assert.Equal(t, c.second, second)
			assert.Equal(t, c.nanos, nanos)
		}
	}
}

func TestGregorianKnownOffsets(t *testing.T) {
	// 1972-01-01 is 26297 days after the 1900 anchor.
	assert.InDelta(t, 2_272_060_800.0, GregorianTai2Epoch(1972, 1, 1, 0, 0, 0, 0).ToTaiSeconds(), 1e-6)

	// Midnight vs noon.
	midnight := GregorianUtcAtMidnight2Epoch(2004, 8, 12)
	noon := GregorianUtcAtNoon2Epoch(2004, 8, 12)
	assert.Equal(t, Hours(12), noon.SubEpoch(midnight))
}

func TestGregorianLeapSecondSlot(t *testing.T) {
	// Second 60 is only valid on a real insertion slot, and names the same
	// instant as second 59 of that minute.
	leap, err := MaybeGregorian2Epoch(2016, 12, 31, 23, 59, 60, 0, TIME_SCALE_UTC)
	require.NoError(t, err)
	assert.True(t, leap.Eq(GregorianUtc2Epoch(2016, 12, 31, 23, 59, 59, 0)))

	_, _, _, hour, minute, second, _ := leap.DateTime()
	assert.Equal(t, uint8(23), hour)
	assert.Equal(t, uint8(59), minute)
	assert.Equal(t, uint8(59), second)

	// 2016 had no June leap second.
	_, err = MaybeGregorian2Epoch(2016, 6, 30, 23, 59, 60, 0, TIME_SCALE_UTC)
	assert.ErrorIs(t, err, ErrCarry)

	// 2012 did.
	_, err = MaybeGregorian2Epoch(2012, 6, 30, 23, 59, 60, 0, TIME_SCALE_UTC)
	assert.NoError(t, err)

	// TAI has no leap seconds at all.
	_, err = MaybeGregorian2Epoch(2016, 12, 31, 23, 59, 60, 0, TIME_SCALE_TAI)
	assert.ErrorIs(t, err, ErrCarry)
}

func TestGregorianValidation(t *testing.T) {
	assert.False(t, IsGregorianValid(2021, 0, 1, 0, 0, 0, 0))
	assert.False(t, IsGregorianValid(2021, 13, 1, 0, 0, 0, 0))
	assert.False(t, IsGregorianValid(2021, 2, 0, 0, 0, 0, 0))
	assert.False(t, IsGregorianValid(2021, 2, 29, 0, 0, 0, 0))
	assert.True(t, IsGregorianValid(2020, 2, 29, 0, 0, 0, 0))
	assert.False(t, IsGregorianValid(2021, 4, 31, 0, 0, 0, 0))
	assert.False(t, IsGregorianValid(2021, 1, 1, 25, 0, 0, 0))
	assert.False(t, IsGregorianValid(2021, 1, 1, 0, 60, 0, 0))
	assert.False(t, IsGregorianValid(2021, 1, 1, 0, 0, 61, 0))
	assert.False(t, IsGregorianValid(2021, 1, 1, 0, 0, 0, 1_000_000_000))
	assert.True(t, IsGregorianValid(2021, 1, 1, 0, 0, 0, 999_999_999))

	_, err := MaybeGregorian2Epoch(2021, 2, 29, 0, 0, 0, 0, TIME_SCALE_UTC)
	assert.ErrorIs(t, err, ErrCarry)

	assert.Panics(t, func() { Gregorian2Epoch(2021, 2, 29, 0, 0, 0, 0, TIME_SCALE_UTC) })
}

func TestEpochCalendarAccessors(t *testing.T) {
	e := GregorianTai2Epoch(2020, 3, 15, 6, 0, 0, 0)

	assert.Equal(t, int32(2020), e.Year())
	assert.Equal(t, uint8(3), e.Month())
	assert.Equal(t, uint8(15), e.Day())

	year, doy, sod := e.YearDoySod()
	assert.Equal(t, int32(2020), year)
	assert.Equal(t, uint16(75), doy)
	assert.InDelta(t, 21600.0, sod, 1e-9)
}

func TestParseGregorian(t *testing.T) {
	e, err := ParseGregorian("2017-01-14T00:31:55", TIME_SCALE_UTC)
	require.NoError(t, err)
	assert.True(t, e.Eq(GregorianUtc2Epoch(2017, 1, 14, 0, 31, 55, 0)))

	e, err = ParseGregorian("2017-01-14 00:31:55.811", TIME_SCALE_TAI)
	require.NoError(t, err)
	assert.True(t, e.Eq(GregorianTai2Epoch(2017, 1, 14, 0, 31, 55, 811_000_000)))

	_, err = ParseGregorian("2017-01-14", TIME_SCALE_UTC)
	assert.ErrorIs(t, err, ErrParseNumber)

	_, err = ParseGregorian("2017-13-14T00:00:00", TIME_SCALE_UTC)
	assert.ErrorIs(t, err, ErrParseNumber)

	_, err = ParseGregorian("2017-02-30T00:00:00", TIME_SCALE_UTC)
	assert.ErrorIs(t, err, ErrCarry)
}

func TestParseEpoch(t *testing.T) {
	for _, e := range []Epoch{
		GregorianUtc2Epoch(2017, 1, 14, 0, 31, 55, 0),
		GregorianTai2Epoch(1999, 8, 22, 12, 0, 0, 250_000_000),
		Duration2Epoch(DURATION_ZERO, TIME_SCALE_GPST),
	} {
		parsed, err := ParseEpoch(e.String())
		require.NoError(t, err)
		assert.True(t, parsed.Eq(e), "round trip of %s", e)
		assert.Equal(t, e.TimeScale(), parsed.TimeScale())
	}

	// Without a suffix the scale defaults to UTC.
	parsed, err := ParseEpoch("1980-01-06T00:00:00")
	require.NoError(t, err)
	assert.Equal(t, TIME_SCALE_UTC, parsed.TimeScale())

	_, err = ParseEpoch("not an epoch")
	assert.ErrorIs(t, err, ErrParse)
}

func TestEpochWeekday(t *testing.T) {
	// The calendar anchor is a Monday.
	assert.Equal(t, WEEKDAY_MONDAY, GregorianTai2Epoch(1900, 1, 1, 0, 0, 0, 0).Weekday())
	assert.Equal(t, WEEKDAY_SUNDAY, GregorianUtcAtMidnight2Epoch(2020, 3, 15).Weekday())
	assert.Equal(t, WEEKDAY_SATURDAY, GregorianUtcAtMidnight2Epoch(1969, 7, 19).Weekday())
	assert.Equal(t, WEEKDAY_THURSDAY, GregorianUtcAtMidnight2Epoch(1899, 12, 28).Weekday())

	e := GregorianUtc2Epoch(2020, 3, 15, 23, 59, 59, 0)
	assert.Equal(t, WEEKDAY_SUNDAY, e.WeekdayUtc())

	assert.Equal(t, "Sunday", WEEKDAY_SUNDAY.String())

	w, err := ParseWeekday("friday")
	require.NoError(t, err)
	assert.Equal(t, WEEKDAY_FRIDAY, w)

	_, err = ParseWeekday("someday")
	assert.ErrorIs(t, err, ErrParseWeekday)
}
