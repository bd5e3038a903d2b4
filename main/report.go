package main

import (
	"fmt"

	"github.com/nyx-space/hifitime-sub000/datetime"
)

/***** VARIABLE ********************************/

var reportScales = []datetime.TimeScale{
	datetime.TIME_SCALE_UTC,
	datetime.TIME_SCALE_TAI,
	datetime.TIME_SCALE_TT,
	datetime.TIME_SCALE_ET,
	datetime.TIME_SCALE_TDB,
	datetime.TIME_SCALE_GPST,
	datetime.TIME_SCALE_GST,
	datetime.TIME_SCALE_BDT,
	datetime.TIME_SCALE_QZSST,
}

/***** FUNCTION ********************************/

// report prints the epoch in every supported scale, plus the derived
// quantities the loaded tables allow.
func report(e datetime.Epoch, leaps datetime.LeapSecondProvider, ut1 *datetime.Ut1Provider) {
	fmt.Printf("epoch: %s\n\n", e.String())

	for _, ts := range reportScales {
		converted := e.ToTimeScaleWith(ts, leaps)
		fmt.Printf("  %-6s %-32s (%.9f s)\n", ts.String(), converted.String(), converted.ToDuration().ToSeconds())
	}

	fmt.Println()
	fmt.Printf("  %-14s %s\n", "weekday:", e.WeekdayUtc().String())
	fmt.Printf("  %-14s %.9f\n", "MJD (TAI):", e.ToMjdTai())
	fmt.Printf("  %-14s %.9f\n", "MJD (UTC):", e.ToMjdUtc())
	fmt.Printf("  %-14s %.9f\n", "JDE (TAI):", e.ToJdeTai())
	fmt.Printf("  %-14s %.9f\n", "unix seconds:", e.ToUnixSeconds())

	if gpsNanos, err := e.ToGpstNanoseconds(); err == nil {
		fmt.Printf("  %-14s %d\n", "GPS ns:", gpsNanos)
	}

	if delta, ok := e.LeapSecondsWith(true, leaps); ok {
		fmt.Printf("  %-14s %.1f s\n", "TAI-UTC:", delta)
	} else {
		fmt.Printf("  %-14s none in effect\n", "TAI-UTC:")
	}

	if ut1 != nil {
		if offset, ok := ut1.DeltaTaiUt1At(e); ok {
			fmt.Printf("  %-14s %s\n", "TAI-UT1:", offset.ShortString())
			fmt.Printf("  %-14s %.9f\n", "UT1 seconds:", e.ToUt1Seconds(*ut1))
		} else {
			fmt.Printf("  %-14s epoch outside EOP coverage\n", "TAI-UT1:")
		}
	}
}
