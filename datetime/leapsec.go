package datetime

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

/*
Leap second bookkeeping.
A LeapSecond records one step of the cumulative TAI-UTC offset. Timestamps
count SI seconds from 1900-01-01T00:00:00 (the NTP convention, which is also
the convention of the IERS leap-seconds.list file). Records announced by the
IERS are the integer leap seconds from 1972 on; the pre-1972 records are the
historical rate-scaling corrections and carry fractional offsets.
*/
type LeapSecond struct {
	TimestampTaiS   float64
	DeltaAt         float64
	AnnouncedByIers bool
}

// A LeapSecondProvider hands out the TAI-UTC table, ascending by timestamp.
type LeapSecondProvider interface {
	LeapSeconds() []LeapSecond
}

// BuiltinLeapSeconds serves the table compiled into this package, current
// through the 2017-01-01 leap second.
type BuiltinLeapSeconds struct{}

// LeapSecondsFile serves a table loaded from an IERS leap-seconds.list file.
type LeapSecondsFile struct {
	records []LeapSecond
}

/***** FUNCTION ********************************/

func (BuiltinLeapSeconds) LeapSeconds() []LeapSecond {
	return LATEST_LEAP_SECONDS
}

/***********************************************/

func (f LeapSecondsFile) LeapSeconds() []LeapSecond {
	return f.records
}

/***********************************************/

// LeapSecondData2Provider parses the IERS leap-seconds.list format: '#'
// starts a comment, data lines carry the NTP timestamp (seconds since 1900)
// and the cumulative TAI-UTC offset in two whitespace-separated columns.
func LeapSecondData2Provider(r io.Reader) (LeapSecondsFile, error) {
	var records []LeapSecond

	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)

		if len(fields) < 2 {
			return LeapSecondsFile{}, fmt.Errorf("%w: leap second line %q", ErrParseIO, line)
		}

		timestamp, err := strconv.ParseFloat(fields[0], 64)

		if err != nil {
			return LeapSecondsFile{}, fmt.Errorf("%w: leap second timestamp %q", ErrParseNumber, fields[0])
		}

		delta, err := strconv.ParseFloat(fields[1], 64)

		if err != nil {
			return LeapSecondsFile{}, fmt.Errorf("%w: leap second offset %q", ErrParseNumber, fields[1])
		}

		records = append(records, LeapSecond{timestamp, delta, true})
	}

	if err := scanner.Err(); err != nil {
		return LeapSecondsFile{}, fmt.Errorf("%w: %s", ErrParseIO, err.Error())
	}

	if len(records) == 0 {
		return LeapSecondsFile{}, fmt.Errorf("%w: no leap second records found", ErrParseIO)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].TimestampTaiS < records[j].TimestampTaiS
	})

	return LeapSecondsFile{records}, nil
}

/***********************************************/

func LeapSecondFile2Provider(path string) (LeapSecondsFile, error) {
	fp, err := os.Open(path)

	if err != nil {
		return LeapSecondsFile{}, fmt.Errorf("%w: %s", ErrParseIO, err.Error())
	}

	defer fp.Close()

	return LeapSecondData2Provider(fp)
}

/***********************************************/

// MustLeapSecondFile2Provider is LeapSecondFile2Provider for trusted paths,
// panicking on failure.
func MustLeapSecondFile2Provider(path string) LeapSecondsFile {
	provider, err := LeapSecondFile2Provider(path)

	if err != nil {
		panic(err.Error())
	}

	return provider
}

/***********************************************/

// lookupDeltaAt scans the table backwards for the cumulative offset in
// effect at the given instant (seconds since 1900). Strict mode excludes a
// record whose timestamp equals the instant, which is what the UTC-to-TAI
// leg needs so that the very first second under a new offset still encodes
// with the previous one.
func lookupDeltaAt(seconds float64, iersOnly bool, strict bool, records []LeapSecond) (float64, bool) {
	for i := len(records) - 1; i >= 0; i-- {
		rec := records[i]

		if iersOnly && !rec.AnnouncedByIers {
			continue
		}

		if seconds > rec.TimestampTaiS || (!strict && seconds == rec.TimestampTaiS) {
			return rec.DeltaAt, true
		}
	}

	return 0, false
}
