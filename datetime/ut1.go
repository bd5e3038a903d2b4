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
UT1 support.
UT1 follows the actual rotation of the Earth, so its offset from TAI is not
predictable and must be measured. A Ut1Provider carries a table of measured
TAI-UT1 offsets (one per observation epoch) loaded from a JPL Earth
orientation parameters file, and answers point queries with the most recent
record at or before the requested instant.
*/

// DeltaTaiUt1 is one measured offset record.
type DeltaTaiUt1 struct {
	Epoch            Epoch
	DeltaTaiMinusUt1 Duration
}

// Ut1Provider holds the offset table, ascending by epoch.
type Ut1Provider struct {
	records []DeltaTaiUt1
}

/***** FUNCTION ********************************/

// EopData2Ut1Provider parses the JPL Earth orientation "short" CSV format:
// the data body sits between two dashed sentinel lines, each row carrying
// the MJD in TAI days in the first column and UT1-UTC in milliseconds in
// the fourth. TAI-UT1 is derived per row from the leap second table.
func EopData2Ut1Provider(r io.Reader) (Ut1Provider, error) {
	var records []DeltaTaiUt1

	scanner := bufio.NewScanner(r)
	inBody := false

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if strings.HasPrefix(line, "----") {
			inBody = !inBody
			continue
		}

		if !inBody || line == "" {
			continue
		}

		fields := strings.Split(line, ",")

		if len(fields) < 4 {
			return Ut1Provider{}, fmt.Errorf("%w: EOP line %q", ErrParseIO, line)
		}

		mjdTai, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)

		if err != nil {
			return Ut1Provider{}, fmt.Errorf("%w: EOP MJD %q", ErrParseNumber, fields[0])
		}

		deltaUt1Ms, err := strconv.ParseFloat(strings.TrimSpace(fields[3]), 64)

		if err != nil {
			return Ut1Provider{}, fmt.Errorf("%w: EOP UT1-UTC %q", ErrParseNumber, fields[3])
		}

		epoch := MjdDays2Epoch(mjdTai, TIME_SCALE_TAI)

		// TAI-UT1 = (TAI-UTC) - (UT1-UTC).
		offset := Seconds(epoch.LeapSecondsIers()).Sub(Milliseconds(deltaUt1Ms))
		records = append(records, DeltaTaiUt1{epoch, offset})
	}

	if err := scanner.Err(); err != nil {
		return Ut1Provider{}, fmt.Errorf("%w: %s", ErrParseIO, err.Error())
	}

	if len(records) == 0 {
		return Ut1Provider{}, fmt.Errorf("%w: no EOP records found", ErrParseIO)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Epoch.Lt(records[j].Epoch)
	})

	return Ut1Provider{records}, nil
}

/***********************************************/

func EopFile2Ut1Provider(path string) (Ut1Provider, error) {
	fp, err := os.Open(path)

	if err != nil {
		return Ut1Provider{}, fmt.Errorf("%w: %s", ErrParseIO, err.Error())
	}

	defer fp.Close()

	return EopData2Ut1Provider(fp)
}

/***********************************************/

func (p Ut1Provider) Len() int {
	return len(p.records)
}

/***********************************************/

// DeltaTaiUt1At returns the offset record in effect at the given instant.
// The second return is false before the first record.
func (p Ut1Provider) DeltaTaiUt1At(e Epoch) (Duration, bool) {
	idx := sort.Search(len(p.records), func(i int) bool {
		return p.records[i].Epoch.Gt(e)
	})

	if idx == 0 {
		return DURATION_ZERO, false
	}

	return p.records[idx-1].DeltaTaiMinusUt1, true
}

/***********************************************/

// ToUt1Duration returns the duration since 1900-01-01T00:00:00 on the UT1
// axis. Instants not covered by the provider fall back to TAI.
func (e Epoch) ToUt1Duration(provider Ut1Provider) Duration {
	offset, _ := provider.DeltaTaiUt1At(e)
	return e.ToTaiDuration().Sub(offset)
}

func (e Epoch) ToUt1Seconds(provider Ut1Provider) float64 {
	return e.ToUt1Duration(provider).ToSeconds()
}

func (e Epoch) ToUt1Days(provider Ut1Provider) float64 {
	return e.ToUt1Duration(provider).ToUnit(UNIT_DAY)
}
