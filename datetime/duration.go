package datetime

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

/*
Duration representation.
A Duration is a signed time span with 1 ns resolution over +/- 32,768 Julian
centuries. It is stored as two limbs of a mixed-radix integer: a signed count
of whole centuries and an unsigned nanosecond remainder kept in
[0, NANOSECONDS_PER_CENTURY), so that

	logical value (ns) = centuries*NANOSECONDS_PER_CENTURY + nanoseconds

with floor-division normalization (a value just below zero has centuries = -1
and a large nanosecond remainder). The single denormal value DURATION_MAX
carries nanoseconds == NANOSECONDS_PER_CENTURY so the range is symmetric.
All arithmetic saturates at DURATION_MIN/DURATION_MAX instead of wrapping.
*/
type Duration struct {
	centuries   int16
	nanoseconds uint64
}

/***** VARIABLE ********************************/

var (
	DURATION_ZERO    = Duration{}
	DURATION_MIN     = Duration{centuries: math.MinInt16}
	DURATION_MAX     = Duration{centuries: math.MaxInt16, nanoseconds: NANOSECONDS_PER_CENTURY}
	DURATION_EPSILON = Duration{nanoseconds: 1}
)

var (
	bigNsPerCentury = new(big.Int).SetUint64(NANOSECONDS_PER_CENTURY)
	bigNsPerWeek    = new(big.Int).SetUint64(NANOSECONDS_PER_WEEK)
	bigNsPerDay     = new(big.Int).SetUint64(NANOSECONDS_PER_DAY)
	bigNsPerSecond  = new(big.Int).SetUint64(NANOSECONDS_PER_SECOND)
	bigDurationMin  = DURATION_MIN.TotalNanoseconds()
	bigDurationMax  = DURATION_MAX.TotalNanoseconds()
)

/***** FUNCTION ********************************/

// Parts2Duration rebuilds a Duration from its raw (centuries, nanoseconds)
// limbs, normalizing an out-of-range nanosecond count into the century limb.
func Parts2Duration(centuries int16, nanoseconds uint64) Duration {
	if nanoseconds < NANOSECONDS_PER_CENTURY {
		return Duration{centuries, nanoseconds}
	}

	if centuries == math.MaxInt16 && nanoseconds == NANOSECONDS_PER_CENTURY {
		return DURATION_MAX
	}

	carry := int64(nanoseconds / NANOSECONDS_PER_CENTURY)

	if int64(centuries)+carry > math.MaxInt16 {
		return DURATION_MAX
	}

	return Duration{int16(int64(centuries) + carry), nanoseconds % NANOSECONDS_PER_CENTURY}
}

/***********************************************/

// TotalNanoseconds2Duration converts a logical nanosecond count into a
// Duration, clamping to DURATION_MIN/DURATION_MAX outside the representable
// range.
func TotalNanoseconds2Duration(total *big.Int) Duration {
	if total.Cmp(bigDurationMax) >= 0 {
		return DURATION_MAX
	}

	if total.Cmp(bigDurationMin) <= 0 {
		return DURATION_MIN
	}

	quo, rem := new(big.Int).DivMod(total, bigNsPerCentury, new(big.Int))
	return Duration{int16(quo.Int64()), rem.Uint64()}
}

/***********************************************/

// TruncatedNanoseconds2Duration converts a 64-bit nanosecond count into a
// Duration (always representable, |value| < 3 centuries).
func TruncatedNanoseconds2Duration(nanos int64) Duration {
	centuries := nanos / int64(NANOSECONDS_PER_CENTURY)
	rem := nanos % int64(NANOSECONDS_PER_CENTURY)

	if rem < 0 {
		centuries--
		rem += int64(NANOSECONDS_PER_CENTURY)
	}

	return Duration{int16(centuries), uint64(rem)}
}

/***********************************************/

// floatNanoseconds2Duration converts a nanosecond count expressed as a
// float64, rounding to the nearest nanosecond and saturating at the bounds.
func floatNanoseconds2Duration(nanos float64) Duration {
	if math.IsNaN(nanos) {
		return DURATION_ZERO
	}

	maxF := float64(math.MaxInt16+1) * float64(NANOSECONDS_PER_CENTURY)

	if nanos >= maxF {
		return DURATION_MAX
	} else if nanos <= -maxF {
		return DURATION_MIN
	}

	if math.Abs(nanos) < 9.0e18 {
		return TruncatedNanoseconds2Duration(int64(math.Round(nanos)))
	}

	total, _ := new(big.Float).SetFloat64(math.Round(nanos)).Int(nil)
	return TotalNanoseconds2Duration(total)
}

/***********************************************/

// Parts returns the raw (centuries, nanoseconds) limbs, the lossless
// serialization form of a Duration.
func (d Duration) Parts() (int16, uint64) {
	return d.centuries, d.nanoseconds
}

/***********************************************/

// TotalNanoseconds returns the logical nanosecond count. The value may need
// up to 78 bits, hence the big.Int.
func (d Duration) TotalNanoseconds() *big.Int {
	total := new(big.Int).Mul(big.NewInt(int64(d.centuries)), bigNsPerCentury)
	return total.Add(total, new(big.Int).SetUint64(d.nanoseconds))
}

/***********************************************/

// TryTruncatedNanoseconds returns the nanosecond count as an int64, or
// ErrOverflow when the duration exceeds what a 64-bit count can carry
// (positive side) or reaches below one century (negative side).
func (d Duration) TryTruncatedNanoseconds() (int64, error) {
	switch {
	case d.centuries == -1:
		return -int64(NANOSECONDS_PER_CENTURY - d.nanoseconds), nil
	case d.centuries >= 0 && d.centuries <= 2:
		total := uint64(d.centuries)*NANOSECONDS_PER_CENTURY + d.nanoseconds

		if total <= uint64(math.MaxInt64) {
			return int64(total), nil
		}

		return 0, ErrOverflow
	default:
		return 0, ErrOverflow
	}
}

/***********************************************/

// TruncatedNanoseconds is the saturating form of TryTruncatedNanoseconds.
func (d Duration) TruncatedNanoseconds() int64 {
	nanos, err := d.TryTruncatedNanoseconds()

	if err == nil {
		return nanos
	}

	if d.centuries < 0 {
		return math.MinInt64
	}

	return math.MaxInt64
}

/***********************************************/

func (d Duration) toFloatNanoseconds() float64 {
	return float64(d.centuries)*float64(NANOSECONDS_PER_CENTURY) + float64(d.nanoseconds)
}

/***********************************************/

// ToUnit expresses the duration as a float64 count of the given unit.
func (d Duration) ToUnit(unit Unit) float64 {
	return d.toFloatNanoseconds() / float64(unit.InNanoseconds())
}

/***********************************************/

func (d Duration) ToSeconds() float64 {
	return d.ToUnit(UNIT_SECOND)
}

/***********************************************/

func (d Duration) Sign() int8 {
	switch {
	case d.centuries < 0:
		return -1
	case d.centuries == 0 && d.nanoseconds == 0:
		return 0
	default:
		return 1
	}
}

/***********************************************/

func (d Duration) IsNegative() bool {
	return d.centuries < 0
}

/***********************************************/

func (d Duration) Neg() Duration {
	switch d {
	case DURATION_MIN:
		return DURATION_MAX
	case DURATION_MAX:
		return DURATION_MIN
	}

	if d.nanoseconds == 0 {
		return Duration{-d.centuries, 0}
	}

	if d.centuries == math.MinInt16 {
		return Duration{math.MaxInt16, NANOSECONDS_PER_CENTURY - d.nanoseconds}
	}

	return Duration{-d.centuries - 1, NANOSECONDS_PER_CENTURY - d.nanoseconds}
}

/***********************************************/

func (d Duration) Abs() Duration {
	if d.IsNegative() {
		return d.Neg()
	}

	return d
}

/***********************************************/

// Add returns d + other, saturating at DURATION_MIN/DURATION_MAX.
func (d Duration) Add(other Duration) Duration {
	centuries := int32(d.centuries) + int32(other.centuries)
	nanos := d.nanoseconds + other.nanoseconds // at most 2*NANOSECONDS_PER_CENTURY, no wrap

	if nanos >= NANOSECONDS_PER_CENTURY {
		nanos -= NANOSECONDS_PER_CENTURY
		centuries++
	}

	if centuries > math.MaxInt16 {
		return DURATION_MAX
	}

	if centuries < math.MinInt16 {
		return DURATION_MIN
	}

	return Duration{int16(centuries), nanos}
}

/***********************************************/

// Sub returns d - other, saturating at DURATION_MIN/DURATION_MAX.
func (d Duration) Sub(other Duration) Duration {
	return d.Add(other.Neg())
}

/***********************************************/

// Mul scales the duration by a float64 factor, saturating.
func (d Duration) Mul(q float64) Duration {
	return floatNanoseconds2Duration(d.toFloatNanoseconds() * q)
}

/***********************************************/

// MulInt scales the duration by an integer factor exactly, saturating.
func (d Duration) MulInt(q int64) Duration {
	total := d.TotalNanoseconds()
	return TotalNanoseconds2Duration(total.Mul(total, big.NewInt(q)))
}

/***********************************************/

// Div divides the duration by a float64 factor, saturating.
func (d Duration) Div(q float64) Duration {
	return floatNanoseconds2Duration(d.toFloatNanoseconds() / q)
}

/***********************************************/

// DivInt divides the duration by an integer factor exactly (truncating the
// sub-nanosecond remainder toward zero).
func (d Duration) DivInt(q int64) Duration {
	total := d.TotalNanoseconds()
	return TotalNanoseconds2Duration(total.Quo(total, big.NewInt(q)))
}

/***********************************************/

func (d Duration) Cmp(other Duration) int {
	// The canonical form makes (centuries, nanoseconds) ordering the value
	// ordering.
	switch {
	case d.centuries < other.centuries:
		return -1
	case d.centuries > other.centuries:
		return 1
	case d.nanoseconds < other.nanoseconds:
		return -1
	case d.nanoseconds > other.nanoseconds:
		return 1
	default:
		return 0
	}
}

/***********************************************/

func (d Duration) Eq(other Duration) bool { return d == other }

func (d Duration) Ne(other Duration) bool { return d != other }

func (d Duration) Gt(other Duration) bool { return d.Cmp(other) > 0 }

func (d Duration) Lt(other Duration) bool { return d.Cmp(other) < 0 }

func (d Duration) Ge(other Duration) bool { return d.Cmp(other) >= 0 }

func (d Duration) Le(other Duration) bool { return d.Cmp(other) <= 0 }

/***********************************************/

// Decompose splits the absolute duration into its mixed-radix components,
// largest unit first, and returns the overall sign (-1, 0 or 1).
func (d Duration) Decompose() (sign int8, days, hours, minutes, seconds, milliseconds, microseconds, nanoseconds uint64) {
	sign = d.Sign()
	total := new(big.Int).Abs(d.TotalNanoseconds())
	rem := new(big.Int)
	quo, _ := new(big.Int).DivMod(total, bigNsPerDay, rem)

	days = quo.Uint64()
	nanos := rem.Uint64()
	hours = nanos / NANOSECONDS_PER_HOUR
	nanos %= NANOSECONDS_PER_HOUR
	minutes = nanos / NANOSECONDS_PER_MINUTE
	nanos %= NANOSECONDS_PER_MINUTE
	seconds = nanos / NANOSECONDS_PER_SECOND
	nanos %= NANOSECONDS_PER_SECOND
	milliseconds = nanos / NANOSECONDS_PER_MILLISECOND
	nanos %= NANOSECONDS_PER_MILLISECOND
	microseconds = nanos / NANOSECONDS_PER_MICROSECOND
	nanoseconds = nanos % NANOSECONDS_PER_MICROSECOND
	return
}

/***********************************************/

// Floor rounds toward the nearest lower multiple of step (zero if step is
// zero). The remainder is taken with truncated division, so negative values
// floor toward zero.
func (d Duration) Floor(step Duration) Duration {
	stepNs := step.TotalNanoseconds()

	if stepNs.Sign() == 0 {
		return DURATION_ZERO
	}

	total := d.TotalNanoseconds()
	rem := new(big.Int).Rem(total, stepNs)
	return TotalNanoseconds2Duration(total.Sub(total, rem))
}

/***********************************************/

// Ceil returns Floor(step) plus one whole |step|, even on exact multiples.
func (d Duration) Ceil(step Duration) Duration {
	return d.Floor(step).Add(step.Abs())
}

/***********************************************/

// Round picks whichever of Floor/Ceil is closest to the original value.
func (d Duration) Round(step Duration) Duration {
	floored := d.Floor(step)
	ceiled := d.Ceil(step)

	if d.Sub(floored).Cmp(ceiled.Sub(d).Abs()) < 0 {
		return floored
	}

	return ceiled
}

/***********************************************/

// Approx rounds to one unit of the largest non-zero component, so
// 35 h 59 min approximates to 1 day and 36 h 1 min to 2 days.
func (d Duration) Approx() Duration {
	_, days, hours, minutes, seconds, milliseconds, microseconds, _ := d.Decompose()

	var unit Unit

	switch {
	case days > 0:
		unit = UNIT_DAY
	case hours > 0:
		unit = UNIT_HOUR
	case minutes > 0:
		unit = UNIT_MINUTE
	case seconds > 0:
		unit = UNIT_SECOND
	case milliseconds > 0:
		unit = UNIT_MILLISECOND
	case microseconds > 0:
		unit = UNIT_MICROSECOND
	default:
		unit = UNIT_NANOSECOND
	}

	return d.Round(unit.Mul(1))
}

/***********************************************/

// String lists the non-zero decomposed components, e.g.
// "14889 days 23 h 47 min 34 s 123 ns".
func (d Duration) String() string {
	sign, days, hours, minutes, seconds, milliseconds, microseconds, nanoseconds := d.Decompose()

	if sign == 0 {
		return "0 ns"
	}

	values := [7]uint64{days, hours, minutes, seconds, milliseconds, microseconds, nanoseconds}
	units := [7]string{"days", "h", "min", "s", "ms", "us", "ns"}

	var b strings.Builder

	if sign < 0 {
		b.WriteByte('-')
	}

	first := true

	for i, v := range values {
		if v == 0 {
			continue
		}

		if !first {
			b.WriteByte(' ')
		}

		fmt.Fprintf(&b, "%d %s", v, units[i])
		first = false
	}

	return b.String()
}

/***********************************************/

// ShortString renders the duration as a single float count of the most
// natural unit by magnitude (ns, ms, s, min, h or days).
func (d Duration) ShortString() string {
	abs := d.Abs()

	var unit Unit

	switch {
	case abs.Lt(Duration{nanoseconds: NANOSECONDS_PER_MILLISECOND}):
		unit = UNIT_NANOSECOND
	case abs.Lt(Duration{nanoseconds: NANOSECONDS_PER_SECOND}):
		unit = UNIT_MILLISECOND
	case abs.Lt(Duration{nanoseconds: NANOSECONDS_PER_MINUTE}):
		unit = UNIT_SECOND
	case abs.Lt(Duration{nanoseconds: NANOSECONDS_PER_HOUR}):
		unit = UNIT_MINUTE
	case abs.Lt(Duration{nanoseconds: NANOSECONDS_PER_DAY}):
		unit = UNIT_HOUR
	default:
		unit = UNIT_DAY
	}

	return strconv.FormatFloat(d.ToUnit(unit), 'g', -1, 64) + " " + unit.String()
}
