package datetime

import (
	"fmt"
	"strings"
)

/*
Time scales.
Every Epoch carries the scale its internal duration counts in. TAI is the
pivot: conversions always go through it. The fixed scales (TT, GPST, GST,
BDT, QZSST) differ from TAI by a constant offset, UTC by the leap second
table, and the dynamical scales (ET, TDB) by a small periodic relativistic
correction evaluated around J2000.
*/
type TimeScale uint8

/***** CONSTANT ********************************/

const (
	TIME_SCALE_TAI TimeScale = iota
	TIME_SCALE_TT
	TIME_SCALE_ET
	TIME_SCALE_TDB
	TIME_SCALE_UTC
	TIME_SCALE_GPST
	TIME_SCALE_GST
	TIME_SCALE_BDT
	TIME_SCALE_QZSST
)

/***** VARIABLE ********************************/

var TimeScale2Name = map[TimeScale]string{
	TIME_SCALE_TAI:   "TAI",
	TIME_SCALE_TT:    "TT",
	TIME_SCALE_ET:    "ET",
	TIME_SCALE_TDB:   "TDB",
	TIME_SCALE_UTC:   "UTC",
	TIME_SCALE_GPST:  "GPST",
	TIME_SCALE_GST:   "GST",
	TIME_SCALE_BDT:   "BDT",
	TIME_SCALE_QZSST: "QZSST",
}

var Name2TimeScale = map[string]TimeScale{
	"TAI":   TIME_SCALE_TAI,
	"TT":    TIME_SCALE_TT,
	"ET":    TIME_SCALE_ET,
	"TDB":   TIME_SCALE_TDB,
	"UTC":   TIME_SCALE_UTC,
	"GPST":  TIME_SCALE_GPST,
	"GPS":   TIME_SCALE_GPST,
	"GST":   TIME_SCALE_GST,
	"GAL":   TIME_SCALE_GST,
	"BDT":   TIME_SCALE_BDT,
	"BDS":   TIME_SCALE_BDT,
	"QZSST": TIME_SCALE_QZSST,
}

/***** FUNCTION ********************************/

func (ts TimeScale) String() string {
	name, ok := TimeScale2Name[ts]

	if !ok {
		panic(fmt.Sprintf("unknown time scale %d", uint8(ts)))
	}

	return name
}

/***********************************************/

// ParseTimeScale resolves a scale name (case-insensitive, common aliases
// accepted) or returns ErrParseScale.
func ParseTimeScale(name string) (TimeScale, error) {
	ts, ok := Name2TimeScale[strings.ToUpper(strings.TrimSpace(name))]

	if !ok {
		return TIME_SCALE_TAI, fmt.Errorf("%w: %q", ErrParseScale, name)
	}

	return ts, nil
}

/***********************************************/

// RefEpochOffset locates this scale's reference epoch on the TAI axis, as a
// span from 1900-01-01T00:00:00 TAI. For UTC the leap second table and for
// ET/TDB the periodic correction apply on top of this during conversion.
func (ts TimeScale) RefEpochOffset() Duration {
	switch ts {
	case TIME_SCALE_TAI, TIME_SCALE_UTC:
		return DURATION_ZERO
	case TIME_SCALE_TT:
		return UNIT_MILLISECOND.MulInt(-TT_OFFSET_MS)
	case TIME_SCALE_ET, TIME_SCALE_TDB:
		return UNIT_SECOND.MulInt(J2000_OFFSET_S)
	case TIME_SCALE_GPST, TIME_SCALE_QZSST:
		return UNIT_SECOND.MulInt(GPST_OFFSET_S)
	case TIME_SCALE_GST:
		return UNIT_SECOND.MulInt(GST_OFFSET_S)
	case TIME_SCALE_BDT:
		return UNIT_SECOND.MulInt(BDT_OFFSET_S)
	default:
		panic(fmt.Sprintf("unknown time scale %d", uint8(ts)))
	}
}

/***********************************************/

// GregorianEpochOffset is the calendar reading of this scale's reference
// epoch, as whole seconds since the calendar origin 1900-01-01T00:00:00.
// The Gregorian codec subtracts it so that, for instance, the GPST calendar
// reads 1980-01-06T00:00:00 at GPST zero.
func (ts TimeScale) GregorianEpochOffset() Duration {
	switch ts {
	case TIME_SCALE_TAI, TIME_SCALE_UTC, TIME_SCALE_TT:
		return DURATION_ZERO
	case TIME_SCALE_ET, TIME_SCALE_TDB:
		return UNIT_SECOND.MulInt(J2000_OFFSET_S)
	case TIME_SCALE_GPST, TIME_SCALE_QZSST:
		return UNIT_SECOND.MulInt(GPST_OFFSET_S - 19)
	case TIME_SCALE_GST:
		return UNIT_SECOND.MulInt(GST_OFFSET_S - 19)
	case TIME_SCALE_BDT:
		return UNIT_SECOND.MulInt(BDT_OFFSET_S - 33)
	default:
		panic(fmt.Sprintf("unknown time scale %d", uint8(ts)))
	}
}

/***********************************************/

// UsesLeapSeconds reports whether calendar arithmetic in this scale must
// account for leap seconds. Only UTC does.
func (ts TimeScale) UsesLeapSeconds() bool {
	return ts == TIME_SCALE_UTC
}
