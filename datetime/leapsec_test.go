package datetime

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const leapSecondsListSample = `#
#  Sample in the IERS leap-seconds.list layout.
#
#  Timestamps count seconds since 1900-01-01T00:00:00.
#
2272060800	10	# 1 Jan 1972
2287785600	11	# 1 Jul 1972
2303683200	12	# 1 Jan 1973
3692217600	37	# 1 Jan 2017
`

func TestLeapSecondDataParsing(t *testing.T) {
	provider, err := LeapSecondData2Provider(strings.NewReader(leapSecondsListSample))
	require.NoError(t, err)

	records := provider.LeapSeconds()
	require.Len(t, records, 4)

	assert.Equal(t, LeapSecond{2_272_060_800.0, 10.0, true}, records[0])
	assert.Equal(t, LeapSecond{3_692_217_600.0, 37.0, true}, records[3])

	// Records come out ascending even if the file is not.
	shuffled := "3692217600\t37\n2272060800\t10\n"
	provider, err = LeapSecondData2Provider(strings.NewReader(shuffled))
	require.NoError(t, err)
	assert.Equal(t, 10.0, provider.LeapSeconds()[0].DeltaAt)
}

func TestLeapSecondDataErrors(t *testing.T) {
	_, err := LeapSecondData2Provider(strings.NewReader("# only comments\n"))
	assert.ErrorIs(t, err, ErrParseIO)

	_, err = LeapSecondData2Provider(strings.NewReader("garbage 10\n"))
	assert.ErrorIs(t, err, ErrParseNumber)

	_, err = LeapSecondData2Provider(strings.NewReader("2272060800 what\n"))
	assert.ErrorIs(t, err, ErrParseNumber)

	_, err = LeapSecondData2Provider(strings.NewReader("2272060800\n"))
	assert.ErrorIs(t, err, ErrParseIO)

	_, err = LeapSecondFile2Provider("/no/such/leap-seconds.list")
	assert.ErrorIs(t, err, ErrParseIO)

	assert.Panics(t, func() { MustLeapSecondFile2Provider("/no/such/leap-seconds.list") })
}

func TestLeapSecondProviderSwap(t *testing.T) {
	provider, err := LeapSecondData2Provider(strings.NewReader(leapSecondsListSample))
	require.NoError(t, err)

	// For instants the sample covers, conversions through the loaded table
	// match the compiled-in one.
	e := GregorianUtc2Epoch(2018, 5, 5, 12, 0, 0, 0)
	assert.Equal(t,
		e.ToTimeScale(TIME_SCALE_TAI),
		e.ToTimeScaleWith(TIME_SCALE_TAI, provider))

	delta, ok := e.LeapSecondsWith(true, provider)
	require.True(t, ok)
	assert.Equal(t, 37.0, delta)
}

func TestBuiltinLeapSeconds(t *testing.T) {
	records := BuiltinLeapSeconds{}.LeapSeconds()
	require.Len(t, records, 42)

	// 14 pre-1972 corrections, then the IERS era.
	assert.False(t, records[0].AnnouncedByIers)
	assert.Equal(t, 1.417818, records[0].DeltaAt)
	assert.False(t, records[13].AnnouncedByIers)
	assert.True(t, records[14].AnnouncedByIers)
	assert.Equal(t, 10.0, records[14].DeltaAt)
	assert.Equal(t, 37.0, records[41].DeltaAt)

	for i := 1; i < len(records); i++ {
		assert.Greater(t, records[i].TimestampTaiS, records[i-1].TimestampTaiS)
	}
}
