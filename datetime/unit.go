package datetime

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

/*
Time units.
A Unit names one fixed-length component of a Duration; multiplying a unit by
a count yields a Duration, which is the preferred way to build spans:

	d := datetime.Days(1).Add(datetime.Hours(12))
*/
type Unit uint8

/***** CONSTANT ********************************/

const (
	UNIT_NANOSECOND Unit = iota
	UNIT_MICROSECOND
	UNIT_MILLISECOND
	UNIT_SECOND
	UNIT_MINUTE
	UNIT_HOUR
	UNIT_DAY
	UNIT_WEEK
	UNIT_CENTURY
)

/***** VARIABLE ********************************/

var Unit2Name = map[Unit]string{
	UNIT_NANOSECOND:  "ns",
	UNIT_MICROSECOND: "us",
	UNIT_MILLISECOND: "ms",
	UNIT_SECOND:      "s",
	UNIT_MINUTE:      "min",
	UNIT_HOUR:        "h",
	UNIT_DAY:         "days",
	UNIT_WEEK:        "weeks",
	UNIT_CENTURY:     "centuries",
}

var Name2Unit = map[string]Unit{
	"ns":           UNIT_NANOSECOND,
	"nanosecond":   UNIT_NANOSECOND,
	"nanoseconds":  UNIT_NANOSECOND,
	"us":           UNIT_MICROSECOND,
	"microsecond":  UNIT_MICROSECOND,
	"microseconds": UNIT_MICROSECOND,
	"ms":           UNIT_MILLISECOND,
	"millisecond":  UNIT_MILLISECOND,
	"milliseconds": UNIT_MILLISECOND,
	"s":            UNIT_SECOND,
	"sec":          UNIT_SECOND,
	"second":       UNIT_SECOND,
	"seconds":      UNIT_SECOND,
	"min":          UNIT_MINUTE,
	"minute":       UNIT_MINUTE,
	"minutes":      UNIT_MINUTE,
	"h":            UNIT_HOUR,
	"hr":           UNIT_HOUR,
	"hour":         UNIT_HOUR,
	"hours":        UNIT_HOUR,
	"d":            UNIT_DAY,
	"day":          UNIT_DAY,
	"days":         UNIT_DAY,
	"w":            UNIT_WEEK,
	"week":         UNIT_WEEK,
	"weeks":        UNIT_WEEK,
	"century":      UNIT_CENTURY,
	"centuries":    UNIT_CENTURY,
}

/***** FUNCTION ********************************/

// InNanoseconds returns the exact length of one unit in nanoseconds.
func (u Unit) InNanoseconds() uint64 {
	switch u {
	case UNIT_NANOSECOND:
		return 1
	case UNIT_MICROSECOND:
		return NANOSECONDS_PER_MICROSECOND
	case UNIT_MILLISECOND:
		return NANOSECONDS_PER_MILLISECOND
	case UNIT_SECOND:
		return NANOSECONDS_PER_SECOND
	case UNIT_MINUTE:
		return NANOSECONDS_PER_MINUTE
	case UNIT_HOUR:
		return NANOSECONDS_PER_HOUR
	case UNIT_DAY:
		return NANOSECONDS_PER_DAY
	case UNIT_WEEK:
		return NANOSECONDS_PER_WEEK
	case UNIT_CENTURY:
		return NANOSECONDS_PER_CENTURY
	default:
		panic(fmt.Sprintf("unknown time unit %d", uint8(u)))
	}
}

/***********************************************/

func (u Unit) InSeconds() float64 {
	return float64(u.InNanoseconds()) / float64(NANOSECONDS_PER_SECOND)
}

/***********************************************/

// Mul builds a Duration of q units, rounded to the nearest nanosecond.
func (u Unit) Mul(q float64) Duration {
	return floatNanoseconds2Duration(q * float64(u.InNanoseconds()))
}

/***********************************************/

// MulInt builds a Duration of exactly q units.
func (u Unit) MulInt(q int64) Duration {
	total := new(big.Int).SetUint64(u.InNanoseconds())
	return TotalNanoseconds2Duration(total.Mul(total, big.NewInt(q)))
}

/***********************************************/

func (u Unit) String() string {
	name, ok := Unit2Name[u]

	if !ok {
		panic(fmt.Sprintf("unknown time unit %d", uint8(u)))
	}

	return name
}

/***********************************************/

func Nanoseconds(q float64) Duration { return UNIT_NANOSECOND.Mul(q) }

func Microseconds(q float64) Duration { return UNIT_MICROSECOND.Mul(q) }

func Milliseconds(q float64) Duration { return UNIT_MILLISECOND.Mul(q) }

func Seconds(q float64) Duration { return UNIT_SECOND.Mul(q) }

func Minutes(q float64) Duration { return UNIT_MINUTE.Mul(q) }

func Hours(q float64) Duration { return UNIT_HOUR.Mul(q) }

func Days(q float64) Duration { return UNIT_DAY.Mul(q) }

func Weeks(q float64) Duration { return UNIT_WEEK.Mul(q) }

func Centuries(q float64) Duration { return UNIT_CENTURY.Mul(q) }

/***********************************************/

// Compose assembles a Duration from integer components and an overall sign
// (negative means the whole span is negated).
func Compose(sign int8, days, hours, minutes, seconds, milliseconds, microseconds, nanoseconds uint64) Duration {
	total := new(big.Int).SetUint64(days)
	total.Mul(total, bigNsPerDay)

	for _, part := range [6]struct {
		value  uint64
		factor uint64
	}{
		{hours, NANOSECONDS_PER_HOUR},
		{minutes, NANOSECONDS_PER_MINUTE},
		{seconds, NANOSECONDS_PER_SECOND},
		{milliseconds, NANOSECONDS_PER_MILLISECOND},
		{microseconds, NANOSECONDS_PER_MICROSECOND},
		{nanoseconds, 1},
	} {
		term := new(big.Int).SetUint64(part.value)
		term.Mul(term, new(big.Int).SetUint64(part.factor))
		total.Add(total, term)
	}

	if sign < 0 {
		total.Neg(total)
	}

	return TotalNanoseconds2Duration(total)
}

/***********************************************/

// ParseDuration parses strings like "10 days", "1 d 15.5 hours" or
// "-5 h 256 ms". A leading sign applies to the whole span. Components must
// alternate value and unit name, separated by whitespace.
func ParseDuration(str string) (Duration, error) {
	trimmed := strings.TrimSpace(str)
	neg := strings.HasPrefix(trimmed, "-")

	if neg || strings.HasPrefix(trimmed, "+") {
		trimmed = strings.TrimSpace(trimmed[1:])
	}

	fields := strings.Fields(trimmed)

	if len(fields) == 0 || len(fields)%2 != 0 {
		return DURATION_ZERO, fmt.Errorf("%w: %q is not a value/unit sequence", ErrParseNumber, str)
	}

	sum := DURATION_ZERO

	for i := 0; i < len(fields); i += 2 {
		value, err := strconv.ParseFloat(fields[i], 64)

		if err != nil {
			return DURATION_ZERO, fmt.Errorf("%w: %q", ErrParseNumber, fields[i])
		}

		unit, ok := Name2Unit[strings.ToLower(fields[i+1])]

		if !ok {
			return DURATION_ZERO, fmt.Errorf("%w: %q", ErrParseUnit, fields[i+1])
		}

		sum = sum.Add(unit.Mul(value))
	}

	if neg {
		sum = sum.Neg()
	}

	return sum, nil
}

/***********************************************/

// MustParseDuration is ParseDuration for hard-coded inputs, panicking on
// malformed strings.
func MustParseDuration(str string) Duration {
	d, err := ParseDuration(str)

	if err != nil {
		panic(err.Error())
	}

	return d
}
