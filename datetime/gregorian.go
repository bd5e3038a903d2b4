package datetime

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

/*
Gregorian calendar codec.
Calendar readings are encoded against the calendar origin
1900-01-01T00:00:00 (a Monday) of the target scale, using the proleptic
Gregorian rules. Leap days are counted in closed form, which works uniformly
before and after 1900. A leap second reading (second == 60) is only valid in
a scale that uses leap seconds, on the two calendar slots where the IERS has
ever inserted one, and encodes to the same instant as 23:59:59 of that day.
*/

type Weekday uint8

/***** CONSTANT ********************************/

const (
	WEEKDAY_MONDAY Weekday = iota
	WEEKDAY_TUESDAY
	WEEKDAY_WEDNESDAY
	WEEKDAY_THURSDAY
	WEEKDAY_FRIDAY
	WEEKDAY_SATURDAY
	WEEKDAY_SUNDAY
)

/***** VARIABLE ********************************/

var Weekday2Name = map[Weekday]string{
	WEEKDAY_MONDAY:    "Monday",
	WEEKDAY_TUESDAY:   "Tuesday",
	WEEKDAY_WEDNESDAY: "Wednesday",
	WEEKDAY_THURSDAY:  "Thursday",
	WEEKDAY_FRIDAY:    "Friday",
	WEEKDAY_SATURDAY:  "Saturday",
	WEEKDAY_SUNDAY:    "Sunday",
}

var Name2Weekday = map[string]Weekday{
	"monday":    WEEKDAY_MONDAY,
	"tuesday":   WEEKDAY_TUESDAY,
	"wednesday": WEEKDAY_WEDNESDAY,
	"thursday":  WEEKDAY_THURSDAY,
	"friday":    WEEKDAY_FRIDAY,
	"saturday":  WEEKDAY_SATURDAY,
	"sunday":    WEEKDAY_SUNDAY,
}

/***** FUNCTION ********************************/

func (w Weekday) String() string {
	name, ok := Weekday2Name[w]

	if !ok {
		panic(fmt.Sprintf("unknown weekday %d", uint8(w)))
	}

	return name
}

/***********************************************/

func ParseWeekday(name string) (Weekday, error) {
	w, ok := Name2Weekday[strings.ToLower(strings.TrimSpace(name))]

	if !ok {
		return WEEKDAY_MONDAY, fmt.Errorf("%w: %q", ErrParseWeekday, name)
	}

	return w, nil
}

/***********************************************/

func IsLeapYear(year int32) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

/***********************************************/

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int64) int64 {
	quo := a / b

	if a%b != 0 && (a < 0) != (b < 0) {
		quo--
	}

	return quo
}

/***********************************************/

// leapDaysFrom1900 counts leap days between 1900-01-01 and the start of the
// given year, negative for years before 1900.
func leapDaysFrom1900(year int32) int64 {
	f := func(y int64) int64 {
		return floorDiv(y-1, 4) - floorDiv(y-1, 100) + floorDiv(y-1, 400)
	}

	return f(int64(year)) - f(1900)
}

/***********************************************/

// yearStartDays returns the day count from 1900-01-01 to January 1st of the
// given year.
func yearStartDays(year int32) int64 {
	return int64(year-1900)*365 + leapDaysFrom1900(year)
}

/***********************************************/

func daysInMonth(year int32, month uint8) uint8 {
	if month == 2 && IsLeapYear(year) {
		return 29
	}

	return _DAYS_IN_MONTH[month-1]
}

/***********************************************/

// isLeapSecondSlot reports whether the IERS has ever inserted a leap second
// at the end of this calendar day.
func isLeapSecondSlot(year int32, month, day uint8) bool {
	if month == 12 && day == 31 {
		for _, y := range JANUARY_LEAP_YEARS {
			if y == year+1 {
				return true
			}
		}
	}

	if month == 6 && day == 30 {
		for _, y := range JULY_LEAP_YEARS {
			if y == year {
				return true
			}
		}
	}

	return false
}

/***********************************************/

// IsGregorianValid checks the calendar components, leap years and leap
// second slots included.
func IsGregorianValid(year int32, month, day, hour, minute, second uint8, nanos uint32) bool {
	if month < 1 || month > 12 {
		return false
	}

	if day < 1 || day > daysInMonth(year, month) {
		return false
	}

	if hour > 24 || minute > 59 || nanos >= uint32(NANOSECONDS_PER_SECOND) {
		return false
	}

	if second > 60 {
		return false
	}

	if second == 60 && !(hour == 23 && minute == 59 && isLeapSecondSlot(year, month, day)) {
		return false
	}

	return true
}

/***********************************************/

// MaybeGregorian2Epoch encodes a calendar reading in the given scale, or
// returns ErrCarry for out-of-range components.
func MaybeGregorian2Epoch(year int32, month, day, hour, minute, second uint8, nanos uint32, ts TimeScale) (Epoch, error) {
	if !IsGregorianValid(year, month, day, hour, minute, second, nanos) {
		return Epoch{}, fmt.Errorf("%w: %04d-%02d-%02dT%02d:%02d:%02d.%09d is not a valid %s date",
			ErrCarry, year, month, day, hour, minute, second, nanos, ts.String())
	}

	if second == 60 && !ts.UsesLeapSeconds() {
		return Epoch{}, fmt.Errorf("%w: scale %s has no leap seconds", ErrCarry, ts.String())
	}

	days := yearStartDays(year) + int64(_DAYS_BEFORE_MONTH[month-1]) + int64(day-1)

	if month > 2 && IsLeapYear(year) {
		days++
	}

	total := big.NewInt(days)
	total.Mul(total, bigNsPerDay)

	tod := uint64(hour)*NANOSECONDS_PER_HOUR +
		uint64(minute)*NANOSECONDS_PER_MINUTE +
		uint64(second)*NANOSECONDS_PER_SECOND +
		uint64(nanos)
	total.Add(total, new(big.Int).SetUint64(tod))

	// The leap second occupies the same calendar reading as the second
	// before it.
	if second == 60 {
		total.Sub(total, bigNsPerSecond)
	}

	duration := TotalNanoseconds2Duration(total)
	return Epoch{duration.Sub(ts.GregorianEpochOffset()), ts}, nil
}

/***********************************************/

// Gregorian2Epoch is MaybeGregorian2Epoch for hard-coded dates, panicking on
// invalid components.
func Gregorian2Epoch(year int32, month, day, hour, minute, second uint8, nanos uint32, ts TimeScale) Epoch {
	e, err := MaybeGregorian2Epoch(year, month, day, hour, minute, second, nanos, ts)

	if err != nil {
		panic(err.Error())
	}

	return e
}

/***********************************************/

func GregorianUtc2Epoch(year int32, month, day, hour, minute, second uint8, nanos uint32) Epoch {
	return Gregorian2Epoch(year, month, day, hour, minute, second, nanos, TIME_SCALE_UTC)
}

func GregorianTai2Epoch(year int32, month, day, hour, minute, second uint8, nanos uint32) Epoch {
	return Gregorian2Epoch(year, month, day, hour, minute, second, nanos, TIME_SCALE_TAI)
}

func GregorianUtcAtMidnight2Epoch(year int32, month, day uint8) Epoch {
	return GregorianUtc2Epoch(year, month, day, 0, 0, 0, 0)
}

func GregorianUtcAtNoon2Epoch(year int32, month, day uint8) Epoch {
	return GregorianUtc2Epoch(year, month, day, 12, 0, 0, 0)
}

/***********************************************/

// ParseGregorian reads an ISO-style calendar stamp
// "YYYY-MM-DDTHH:MM:SS[.fraction]" (a space also separates date and time)
// in the given scale.
func ParseGregorian(str string, ts TimeScale) (Epoch, error) {
	trimmed := strings.TrimSpace(str)
	sep := strings.IndexAny(trimmed, "T ")

	if sep < 0 {
		return Epoch{}, fmt.Errorf("%w: %q has no time part", ErrParseNumber, str)
	}

	dateFields := strings.Split(trimmed[:sep], "-")
	timeFields := strings.Split(trimmed[sep+1:], ":")

	if len(dateFields) != 3 || len(timeFields) != 3 {
		return Epoch{}, fmt.Errorf("%w: %q is not a calendar stamp", ErrParseNumber, str)
	}

	var parts [5]uint8
	var parseErr error

	parseField := func(field string, max int64) uint8 {
		value, err := strconv.ParseInt(field, 10, 64)

		if err != nil || value < 0 || value > max {
			parseErr = fmt.Errorf("%w: calendar field %q", ErrParseNumber, field)
			return 0
		}

		return uint8(value)
	}

	year, err := strconv.ParseInt(dateFields[0], 10, 32)

	if err != nil {
		return Epoch{}, fmt.Errorf("%w: year %q", ErrParseNumber, dateFields[0])
	}

	secondField := timeFields[2]
	fraction := ""

	if dot := strings.IndexByte(secondField, '.'); dot >= 0 {
		fraction = secondField[dot+1:]
		secondField = secondField[:dot]
	}

	parts[0] = parseField(dateFields[1], 12)
	parts[1] = parseField(dateFields[2], 31)
	parts[2] = parseField(timeFields[0], 24)
	parts[3] = parseField(timeFields[1], 59)
	parts[4] = parseField(secondField, 60)

	var nanos uint32

	if fraction != "" {
		if len(fraction) > 9 {
			fraction = fraction[:9]
		}

		value, err := strconv.ParseUint(fraction, 10, 32)

		if err != nil {
			return Epoch{}, fmt.Errorf("%w: fractional second %q", ErrParseNumber, fraction)
		}

		for i := len(fraction); i < 9; i++ {
			value *= 10
		}

		nanos = uint32(value)
	}

	if parseErr != nil {
		return Epoch{}, parseErr
	}

	return MaybeGregorian2Epoch(int32(year), parts[0], parts[1], parts[2], parts[3], parts[4], nanos, ts)
}

/***********************************************/

// ParseEpoch reads a calendar stamp with an optional trailing scale name,
// e.g. "2017-01-14T00:31:55 UTC". Without a scale suffix UTC is assumed.
// This inverts Epoch.String.
func ParseEpoch(str string) (Epoch, error) {
	trimmed := strings.TrimSpace(str)
	ts := TIME_SCALE_UTC

	if idx := strings.LastIndexByte(trimmed, ' '); idx >= 0 {
		if parsed, err := ParseTimeScale(trimmed[idx+1:]); err == nil {
			ts = parsed
			trimmed = strings.TrimSpace(trimmed[:idx])
		}
	}

	return ParseGregorian(trimmed, ts)
}

/***********************************************/

// splitCalendarDays splits a calendar-axis duration into whole days since
// 1900-01-01 and the nanosecond of day (always non-negative).
func splitCalendarDays(d Duration) (int64, uint64) {
	rem := new(big.Int)
	quo, _ := new(big.Int).DivMod(d.TotalNanoseconds(), bigNsPerDay, rem)
	return quo.Int64(), rem.Uint64()
}

/***********************************************/

// Duration2Gregorian decodes a calendar-axis duration (since the calendar
// origin 1900-01-01T00:00:00) into its calendar components.
func Duration2Gregorian(d Duration) (year int32, month, day, hour, minute, second uint8, nanos uint32) {
	days, tod := splitCalendarDays(d)

	year = 1900 + int32(days/365)

	for yearStartDays(year) > days {
		year--
	}

	for yearStartDays(year+1) <= days {
		year++
	}

	doy := days - yearStartDays(year)
	month = 1

	for doy >= int64(daysInMonth(year, month)) {
		doy -= int64(daysInMonth(year, month))
		month++
	}

	day = uint8(doy) + 1
	hour = uint8(tod / NANOSECONDS_PER_HOUR)
	tod %= NANOSECONDS_PER_HOUR
	minute = uint8(tod / NANOSECONDS_PER_MINUTE)
	tod %= NANOSECONDS_PER_MINUTE
	second = uint8(tod / NANOSECONDS_PER_SECOND)
	nanos = uint32(tod % NANOSECONDS_PER_SECOND)
	return
}

/***********************************************/

// DateTime decodes the epoch into calendar components of its own scale.
func (e Epoch) DateTime() (year int32, month, day, hour, minute, second uint8, nanos uint32) {
	return Duration2Gregorian(e.duration.Add(e.timeScale.GregorianEpochOffset()))
}

/***********************************************/

func (e Epoch) Year() int32 {
	year, _, _, _, _, _, _ := e.DateTime()
	return year
}

func (e Epoch) Month() uint8 {
	_, month, _, _, _, _, _ := e.DateTime()
	return month
}

func (e Epoch) Day() uint8 {
	_, _, day, _, _, _, _ := e.DateTime()
	return day
}

/***********************************************/

// YearDoySod decodes the epoch into year, 1-based day of year and float
// seconds of day.
func (e Epoch) YearDoySod() (int32, uint16, float64) {
	days, tod := splitCalendarDays(e.duration.Add(e.timeScale.GregorianEpochOffset()))

	year := 1900 + int32(days/365)

	for yearStartDays(year) > days {
		year--
	}

	for yearStartDays(year+1) <= days {
		year++
	}

	doy := uint16(days-yearStartDays(year)) + 1
	sod := float64(tod) / float64(NANOSECONDS_PER_SECOND)
	return year, doy, sod
}

/***********************************************/

// Weekday returns the day of week in the epoch's own scale. The calendar
// origin 1900-01-01 is a Monday.
func (e Epoch) Weekday() Weekday {
	days, _ := splitCalendarDays(e.duration.Add(e.timeScale.GregorianEpochOffset()))
	return Weekday(((days % 7) + 7) % 7)
}

func (e Epoch) WeekdayUtc() Weekday {
	return e.ToTimeScale(TIME_SCALE_UTC).Weekday()
}
