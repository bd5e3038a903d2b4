package datetime

/***** CONSTANT ********************************/

const (
	NANOSECONDS_PER_MICROSECOND uint64 = 1000
	NANOSECONDS_PER_MILLISECOND uint64 = 1000 * NANOSECONDS_PER_MICROSECOND
	NANOSECONDS_PER_SECOND      uint64 = 1000 * NANOSECONDS_PER_MILLISECOND
	NANOSECONDS_PER_MINUTE      uint64 = 60 * NANOSECONDS_PER_SECOND
	NANOSECONDS_PER_HOUR        uint64 = 60 * NANOSECONDS_PER_MINUTE
	NANOSECONDS_PER_DAY         uint64 = 24 * NANOSECONDS_PER_HOUR
	NANOSECONDS_PER_WEEK        uint64 = 7 * NANOSECONDS_PER_DAY
	NANOSECONDS_PER_CENTURY     uint64 = 36525 * NANOSECONDS_PER_DAY
)

/***********************************************/

const (
	DAY2HOUR      uint8  = 24
	HOUR2MINUTE   uint8  = 60
	MINUTE2SECOND uint8  = 60
	DAY2SECOND    uint32 = uint32(DAY2HOUR) * uint32(HOUR2MINUTE) * uint32(MINUTE2SECOND)
	WEEK2DAY      uint8  = 7
	WEEK2SECOND   uint32 = uint32(WEEK2DAY) * DAY2SECOND
)

/***********************************************/

// Reference-epoch constants. Internal durations count from the owning scale's
// reference epoch; the offsets below re-anchor them onto the common TAI
// reference of 1900-01-01T00:00:00 TAI (J1900).
const (
	// TT = TAI + 32.184 s, exact by definition.
	TT_OFFSET_MS int64 = 32_184
	// J2000, 2000-01-01T12:00:00 TAI, reference of ET and TDB.
	J2000_OFFSET_S int64 = 3_155_716_800
	// GPS (and QZSS) time zero, 1980-01-06T00:00:00 UTC.
	GPST_OFFSET_S int64 = 2_524_953_619
	// Galileo time zero, 1999-08-21T23:59:47 UTC.
	GST_OFFSET_S int64 = 3_144_268_819
	// BeiDou time zero, 2006-01-01T00:00:00 UTC.
	BDT_OFFSET_S int64 = 3_345_062_433
	// UNIX zero, 1970-01-01T00:00:00 UTC.
	UNIX_OFFSET_S int64 = 2_208_988_800
)

const (
	MJD_J1900 float64 = 15020.0
	MJD_J2000 float64 = 51544.5
	JD_MJD0   float64 = 2400000.5
)

/***********************************************/

// Constants of the NAIF SPICE ET <-> TAI periodic correction
// K*sin(M + EB*sin(M)), with mean anomaly M = M0 + M1*t.
const (
	NAIF_K  float64 = 1.657e-3
	NAIF_M0 float64 = 6.239996
	NAIF_M1 float64 = 1.99096871e-7
	NAIF_EB float64 = 1.671e-2
)

// Constants of the ESA TDB <-> TAI g-term sine series.
const (
	TDB_K      float64 = 1.658e-3
	TDB_G0_DEG float64 = 357.528
	TDB_G1     float64 = 1.990910018065731e-7
	TDB_EB     float64 = 1.67e-2
)

/***********************************************/

var (
	_DAYS_IN_MONTH     [12]uint8  = [12]uint8{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	_DAYS_BEFORE_MONTH [12]uint16 = [12]uint16{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}
)

// Years whose January 1st follows an IERS leap-second insertion (so the
// previous December 31st had a 23:59:60), and years with a June 30th 23:59:60.
var (
	JANUARY_LEAP_YEARS []int32 = []int32{
		1972, 1973, 1974, 1975, 1976, 1977, 1978, 1979, 1980,
		1988, 1990, 1991, 1996, 1999, 2006, 2009, 2017,
	}
	JULY_LEAP_YEARS []int32 = []int32{
		1972, 1981, 1982, 1983, 1985, 1992, 1993, 1994, 1997, 2012, 2015,
	}
)

/***********************************************/

// Cumulative TAI-UTC table, ascending by timestamp. Timestamps count SI
// seconds from 1900-01-01T00:00:00. The first 14 records replicate the SOFA
// pre-1972 rate-scaling corrections; the remaining 28 are the IERS-announced
// integer leap seconds.
var LATEST_LEAP_SECONDS []LeapSecond = []LeapSecond{
	{1_893_369_600.0, 1.417818, false}, // 1960-01-01
	{1_924_992_000.0, 1.422818, false}, // 1961-01-01
	{1_943_308_800.0, 1.372818, false}, // 1961-08-01
	{1_956_528_000.0, 1.845858, false}, // 1962-01-01
	{2_014_329_600.0, 1.945858, false}, // 1963-11-01
	{2_019_600_000.0, 3.240130, false}, // 1964-01-01
	{2_027_462_400.0, 3.340130, false}, // 1964-04-01
	{2_040_681_600.0, 3.440130, false}, // 1964-09-01
	{2_051_222_400.0, 3.540130, false}, // 1965-01-01
	{2_056_320_000.0, 3.640130, false}, // 1965-03-01
	{2_066_860_800.0, 3.740130, false}, // 1965-07-01
	{2_072_217_600.0, 3.840130, false}, // 1965-09-01
	{2_082_758_400.0, 4.313170, false}, // 1966-01-01
	{2_148_508_800.0, 4.213170, false}, // 1968-02-01
	{2_272_060_800.0, 10.0, true},      // 1972-01-01
	{2_287_785_600.0, 11.0, true},      // 1972-07-01
	{2_303_683_200.0, 12.0, true},      // 1973-01-01
	{2_335_219_200.0, 13.0, true},      // 1974-01-01
	{2_366_755_200.0, 14.0, true},      // 1975-01-01
	{2_398_291_200.0, 15.0, true},      // 1976-01-01
	{2_429_913_600.0, 16.0, true},      // 1977-01-01
	{2_461_449_600.0, 17.0, true},      // 1978-01-01
	{2_492_985_600.0, 18.0, true},      // 1979-01-01
	{2_524_521_600.0, 19.0, true},      // 1980-01-01
	{2_571_782_400.0, 20.0, true},      // 1981-07-01
	{2_603_318_400.0, 21.0, true},      // 1982-07-01
	{2_634_854_400.0, 22.0, true},      // 1983-07-01
	{2_698_012_800.0, 23.0, true},      // 1985-07-01
	{2_776_982_400.0, 24.0, true},      // 1988-01-01
	{2_840_140_800.0, 25.0, true},      // 1990-01-01
	{2_871_676_800.0, 26.0, true},      // 1991-01-01
	{2_918_937_600.0, 27.0, true},      // 1992-07-01
	{2_950_473_600.0, 28.0, true},      // 1993-07-01
	{2_982_009_600.0, 29.0, true},      // 1994-07-01
	{3_029_443_200.0, 30.0, true},      // 1996-01-01
	{3_076_704_000.0, 31.0, true},      // 1997-07-01
	{3_124_137_600.0, 32.0, true},      // 1999-01-01
	{3_345_062_400.0, 33.0, true},      // 2006-01-01
	{3_439_756_800.0, 34.0, true},      // 2009-01-01
	{3_550_089_600.0, 35.0, true},      // 2012-07-01
	{3_644_697_600.0, 36.0, true},      // 2015-07-01
	{3_692_217_600.0, 37.0, true},      // 2017-01-01
}
