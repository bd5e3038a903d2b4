package datetime

import (
	"fmt"
	"math"
	"math/big"
	"strings"
	"time"
)

/*
Epoch representation.
An Epoch is an absolute instant: a Duration counted from its time scale's
reference epoch, tagged with that scale. The internal anchor of the whole
package is 1900-01-01T00:00:00 TAI; every conversion pivots through a TAI
duration from that anchor, so any scale converts to any other in two hops.

Arithmetic and comparison between epochs of different scales is well defined:
both sides are brought to TAI first.
*/
type Epoch struct {
	duration  Duration
	timeScale TimeScale
}

/***** FUNCTION ********************************/

// Duration2Epoch tags a duration since the scale's reference epoch.
func Duration2Epoch(d Duration, ts TimeScale) Epoch {
	return Epoch{d, ts}
}

/***********************************************/

// Parts2Epoch rebuilds an Epoch from its serialized limbs.
func Parts2Epoch(centuries int16, nanoseconds uint64, ts TimeScale) Epoch {
	return Epoch{Parts2Duration(centuries, nanoseconds), ts}
}

/***********************************************/

// Seconds2Epoch counts float seconds from the scale's reference epoch.
func Seconds2Epoch(seconds float64, ts TimeScale) Epoch {
	return Epoch{Seconds(seconds), ts}
}

/***********************************************/

func TaiDuration2Epoch(d Duration) Epoch {
	return Epoch{d, TIME_SCALE_TAI}
}

func TaiSeconds2Epoch(seconds float64) Epoch {
	return Epoch{Seconds(seconds), TIME_SCALE_TAI}
}

func TaiDays2Epoch(days float64) Epoch {
	return Epoch{Days(days), TIME_SCALE_TAI}
}

/***********************************************/

func UtcDuration2Epoch(d Duration) Epoch {
	return Epoch{d, TIME_SCALE_UTC}
}

func UtcSeconds2Epoch(seconds float64) Epoch {
	return Epoch{Seconds(seconds), TIME_SCALE_UTC}
}

/***********************************************/

func GpstSeconds2Epoch(seconds float64) Epoch {
	return Epoch{Seconds(seconds), TIME_SCALE_GPST}
}

func GpstDays2Epoch(days float64) Epoch {
	return Epoch{Days(days), TIME_SCALE_GPST}
}

// GpstNanoseconds2Epoch counts exact nanoseconds since the GPS epoch
// (1980-01-06T00:00:00 UTC), the native representation of many receivers.
func GpstNanoseconds2Epoch(nanoseconds int64) Epoch {
	return Epoch{TruncatedNanoseconds2Duration(nanoseconds), TIME_SCALE_GPST}
}

/***********************************************/

// UnixSeconds2Epoch counts seconds since 1970-01-01T00:00:00 UTC.
func UnixSeconds2Epoch(seconds float64) Epoch {
	return Epoch{Seconds(seconds).Add(UNIT_SECOND.MulInt(UNIX_OFFSET_S)), TIME_SCALE_UTC}
}

func UnixMilliseconds2Epoch(milliseconds float64) Epoch {
	return UnixSeconds2Epoch(milliseconds / 1.0e3)
}

/***********************************************/

// MjdDays2Epoch reads a Modified Julian Date in the given scale's calendar.
func MjdDays2Epoch(days float64, ts TimeScale) Epoch {
	return Epoch{Days(days - MJD_J1900).Sub(ts.GregorianEpochOffset()), ts}
}

// JdeDays2Epoch reads a Julian Date in the given scale's calendar.
func JdeDays2Epoch(days float64, ts TimeScale) Epoch {
	return MjdDays2Epoch(days-JD_MJD0, ts)
}

/***********************************************/

// Time2Epoch converts a standard library time.Time (UTC scale).
func Time2Epoch(t time.Time) Epoch {
	unix := TruncatedNanoseconds2Duration(t.UnixNano())
	return Epoch{unix.Add(UNIT_SECOND.MulInt(UNIX_OFFSET_S)), TIME_SCALE_UTC}
}

/***********************************************/

// Now2Epoch reads the system clock.
func Now2Epoch() Epoch {
	return Time2Epoch(time.Now())
}

/***********************************************/

func (e Epoch) TimeScale() TimeScale {
	return e.timeScale
}

/***********************************************/

// ToDuration returns the duration since the epoch's own reference epoch.
func (e Epoch) ToDuration() Duration {
	return e.duration
}

/***********************************************/

// Parts returns the serialized limbs of the epoch.
func (e Epoch) Parts() (int16, uint64, TimeScale) {
	centuries, nanoseconds := e.duration.Parts()
	return centuries, nanoseconds, e.timeScale
}

/***********************************************/

// deltaEtTai evaluates ET - TAI in seconds at an instant given as dynamical
// seconds past J2000, using the NAIF SPICE mean-anomaly model.
func deltaEtTai(secsSinceJ2000 float64) float64 {
	m := NAIF_M0 + NAIF_M1*secsSinceJ2000
	return float64(TT_OFFSET_MS)/1.0e3 + NAIF_K*math.Sin(m+NAIF_EB*math.Sin(m))
}

/***********************************************/

// deltaTdbTai evaluates TDB - TAI in seconds at an instant given as
// dynamical seconds past J2000, using the IAU g-angle model.
func deltaTdbTai(secsSinceJ2000 float64) float64 {
	g := math.Pi/180.0*TDB_G0_DEG + TDB_G1*secsSinceJ2000
	return float64(TT_OFFSET_MS)/1.0e3 + TDB_K*math.Sin(g+TDB_EB*math.Sin(g))
}

/***********************************************/

// solveDynamical finds the dynamical time t satisfying
// t = taiSinceJ2000 + delta(t) by fixed-point iteration. The correction is
// tiny and slowly varying, so five passes are more than enough; a positive
// tolerance allows an early exit.
func solveDynamical(taiSinceJ2000 float64, delta func(float64) float64, tol float64) float64 {
	t := taiSinceJ2000

	for i := 0; i < 5; i++ {
		next := taiSinceJ2000 + delta(t)

		if tol > 0 && math.Abs(next-t) < tol {
			return next
		}

		t = next
	}

	return t
}

/***********************************************/

// toTaiDurationWith maps a scale-relative duration onto the TAI axis.
func toTaiDurationWith(d Duration, ts TimeScale, provider LeapSecondProvider) Duration {
	switch ts {
	case TIME_SCALE_TAI:
		return d
	case TIME_SCALE_TT, TIME_SCALE_GPST, TIME_SCALE_GST, TIME_SCALE_BDT, TIME_SCALE_QZSST:
		return d.Add(ts.RefEpochOffset())
	case TIME_SCALE_UTC:
		// Strict lookup: the calendar reading right at a leap boundary still
		// encodes with the previous cumulative offset.
		if delta, ok := lookupDeltaAt(d.ToSeconds(), true, true, provider.LeapSeconds()); ok {
			return d.Add(Seconds(delta))
		}

		return d
	case TIME_SCALE_ET:
		return d.Add(ts.RefEpochOffset()).Sub(Seconds(deltaEtTai(d.ToSeconds())))
	case TIME_SCALE_TDB:
		return d.Add(ts.RefEpochOffset()).Sub(Seconds(deltaTdbTai(d.ToSeconds())))
	default:
		panic(fmt.Sprintf("unknown time scale %d", uint8(ts)))
	}
}

/***********************************************/

// fromTaiDurationWith maps a TAI-axis duration into the given scale.
func fromTaiDurationWith(prime Duration, ts TimeScale, provider LeapSecondProvider) Duration {
	switch ts {
	case TIME_SCALE_TAI:
		return prime
	case TIME_SCALE_TT, TIME_SCALE_GPST, TIME_SCALE_GST, TIME_SCALE_BDT, TIME_SCALE_QZSST:
		return prime.Sub(ts.RefEpochOffset())
	case TIME_SCALE_UTC:
		if delta, ok := lookupDeltaAt(prime.ToSeconds(), true, false, provider.LeapSeconds()); ok {
			return prime.Sub(Seconds(delta))
		}

		return prime
	case TIME_SCALE_ET:
		base := prime.Sub(ts.RefEpochOffset())
		t := solveDynamical(base.ToSeconds(), deltaEtTai, 0)
		return base.Add(Seconds(deltaEtTai(t)))
	case TIME_SCALE_TDB:
		base := prime.Sub(ts.RefEpochOffset())
		t := solveDynamical(base.ToSeconds(), deltaTdbTai, 1.0e-6)
		return base.Add(Seconds(deltaTdbTai(t)))
	default:
		panic(fmt.Sprintf("unknown time scale %d", uint8(ts)))
	}
}

/***********************************************/

// ToTaiDuration returns the duration since 1900-01-01T00:00:00 TAI.
func (e Epoch) ToTaiDuration() Duration {
	return toTaiDurationWith(e.duration, e.timeScale, BuiltinLeapSeconds{})
}

func (e Epoch) ToTaiSeconds() float64 {
	return e.ToTaiDuration().ToSeconds()
}

func (e Epoch) ToTaiDays() float64 {
	return e.ToTaiDuration().ToUnit(UNIT_DAY)
}

/***********************************************/

// ToTimeScale re-expresses the same instant in another scale. Converting to
// the epoch's own scale is the identity.
func (e Epoch) ToTimeScale(ts TimeScale) Epoch {
	return e.ToTimeScaleWith(ts, BuiltinLeapSeconds{})
}

// ToTimeScaleWith is ToTimeScale with an explicit leap second table, for
// callers that load a fresher IERS file than the one compiled in.
func (e Epoch) ToTimeScaleWith(ts TimeScale, provider LeapSecondProvider) Epoch {
	if ts == e.timeScale {
		return e
	}

	prime := toTaiDurationWith(e.duration, e.timeScale, provider)
	return Epoch{fromTaiDurationWith(prime, ts, provider), ts}
}

/***********************************************/

func (e Epoch) ToUtcDuration() Duration {
	return e.ToTimeScale(TIME_SCALE_UTC).duration
}

func (e Epoch) ToUtcSeconds() float64 {
	return e.ToUtcDuration().ToSeconds()
}

func (e Epoch) ToUtcDays() float64 {
	return e.ToUtcDuration().ToUnit(UNIT_DAY)
}

/***********************************************/

func (e Epoch) ToTtDuration() Duration {
	return e.ToTimeScale(TIME_SCALE_TT).duration
}

func (e Epoch) ToTtSeconds() float64 {
	return e.ToTtDuration().ToSeconds()
}

/***********************************************/

// ToEtDuration returns the duration since J2000 on the ET axis.
func (e Epoch) ToEtDuration() Duration {
	return e.ToTimeScale(TIME_SCALE_ET).duration
}

func (e Epoch) ToEtSeconds() float64 {
	return e.ToEtDuration().ToSeconds()
}

/***********************************************/

// ToTdbDuration returns the duration since J2000 on the TDB axis.
func (e Epoch) ToTdbDuration() Duration {
	return e.ToTimeScale(TIME_SCALE_TDB).duration
}

func (e Epoch) ToTdbSeconds() float64 {
	return e.ToTdbDuration().ToSeconds()
}

/***********************************************/

func (e Epoch) ToGpstDuration() Duration {
	return e.ToTimeScale(TIME_SCALE_GPST).duration
}

func (e Epoch) ToGpstSeconds() float64 {
	return e.ToGpstDuration().ToSeconds()
}

func (e Epoch) ToGpstDays() float64 {
	return e.ToGpstDuration().ToUnit(UNIT_DAY)
}

// ToGpstNanoseconds returns exact nanoseconds since the GPS epoch, or
// ErrOverflow for instants before it or beyond the int64 range.
func (e Epoch) ToGpstNanoseconds() (int64, error) {
	return e.ToGpstDuration().TryTruncatedNanoseconds()
}

// ToGpstWeekSow returns the GPS week number and the float seconds of week,
// negative week numbers for instants before the GPS epoch.
func (e Epoch) ToGpstWeekSow() (int64, float64) {
	rem := new(big.Int)
	quo, _ := new(big.Int).DivMod(e.ToGpstDuration().TotalNanoseconds(), bigNsPerWeek, rem)
	sow := new(big.Float).SetInt(rem)
	sow.Quo(sow, big.NewFloat(float64(NANOSECONDS_PER_SECOND)))
	result, _ := sow.Float64()
	return quo.Int64(), result
}

/***********************************************/

func (e Epoch) ToUnixDuration() Duration {
	return e.ToUtcDuration().Sub(UNIT_SECOND.MulInt(UNIX_OFFSET_S))
}

func (e Epoch) ToUnixSeconds() float64 {
	return e.ToUnixDuration().ToSeconds()
}

func (e Epoch) ToUnixMilliseconds() float64 {
	return e.ToUnixDuration().ToUnit(UNIT_MILLISECOND)
}

/***********************************************/

// ToTime converts to a standard library time.Time in UTC. Instants outside
// the int64 Unix nanosecond range saturate.
func (e Epoch) ToTime() time.Time {
	return time.Unix(0, e.ToUnixDuration().TruncatedNanoseconds()).UTC()
}

/***********************************************/

func (e Epoch) ToMjdTai() float64 {
	return e.ToTaiDays() + MJD_J1900
}

func (e Epoch) ToMjdUtc() float64 {
	return e.ToUtcDays() + MJD_J1900
}

func (e Epoch) ToJdeTai() float64 {
	return e.ToMjdTai() + JD_MJD0
}

func (e Epoch) ToJdeUtc() float64 {
	return e.ToMjdUtc() + JD_MJD0
}

/***********************************************/

// LeapSecondsWith returns the cumulative TAI-UTC offset in effect at this
// instant from the given table, restricted to IERS-announced records when
// iersOnly is set. The second return is false before the first record.
func (e Epoch) LeapSecondsWith(iersOnly bool, provider LeapSecondProvider) (float64, bool) {
	return lookupDeltaAt(e.ToTaiSeconds(), iersOnly, false, provider.LeapSeconds())
}

func (e Epoch) LeapSeconds(iersOnly bool) (float64, bool) {
	return e.LeapSecondsWith(iersOnly, BuiltinLeapSeconds{})
}

// LeapSecondsIers returns the IERS-announced offset, zero before 1972.
func (e Epoch) LeapSecondsIers() float64 {
	delta, ok := e.LeapSeconds(true)

	if !ok {
		return 0
	}

	return delta
}

/***********************************************/

// Add shifts the epoch forward by a duration (in its own scale).
func (e Epoch) Add(d Duration) Epoch {
	return Epoch{e.duration.Add(d), e.timeScale}
}

// Sub shifts the epoch backward by a duration.
func (e Epoch) Sub(d Duration) Epoch {
	return Epoch{e.duration.Sub(d), e.timeScale}
}

// SubEpoch returns the span e - other, converting other to e's scale first.
func (e Epoch) SubEpoch(other Epoch) Duration {
	return e.duration.Sub(other.ToTimeScale(e.timeScale).duration)
}

func (e *Epoch) AddEq(d Duration) {
	e.duration = e.duration.Add(d)
}

func (e *Epoch) SubEq(d Duration) {
	e.duration = e.duration.Sub(d)
}

/***********************************************/

// Cmp orders two epochs as instants, regardless of their scales.
func (e Epoch) Cmp(other Epoch) int {
	return e.ToTaiDuration().Cmp(other.ToTaiDuration())
}

func (e Epoch) Eq(other Epoch) bool { return e.Cmp(other) == 0 }

func (e Epoch) Ne(other Epoch) bool { return e.Cmp(other) != 0 }

func (e Epoch) Gt(other Epoch) bool { return e.Cmp(other) > 0 }

func (e Epoch) Lt(other Epoch) bool { return e.Cmp(other) < 0 }

func (e Epoch) Ge(other Epoch) bool { return e.Cmp(other) >= 0 }

func (e Epoch) Le(other Epoch) bool { return e.Cmp(other) <= 0 }

/***********************************************/

// String renders the epoch as an ISO-like calendar stamp in its own scale,
// e.g. "2017-01-14T00:31:55 UTC" or "2017-01-14T00:31:55.811 UTC".
func (e Epoch) String() string {
	year, month, day, hour, minute, second, nanos := e.DateTime()

	stamp := fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d", year, month, day, hour, minute, second)

	if nanos > 0 {
		frac := strings.TrimRight(fmt.Sprintf("%09d", nanos), "0")
		stamp += "." + frac
	}

	return stamp + " " + e.timeScale.String()
}
