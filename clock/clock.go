/*
Live epoch sources.

A Source reads "now" as a datetime.Epoch. SystemClock trusts the operating
system; NtpClock queries an NTP server and applies the measured clock offset,
which bounds the result by network asymmetry rather than by local drift.
*/
package clock

import (
	"fmt"
	"time"

	"github.com/beevik/ntp"
	"github.com/rs/zerolog/log"

	"github.com/nyx-space/hifitime-sub000/datetime"
)

/***** CONSTANT ********************************/

const DEFAULT_NTP_TIMEOUT = 5 * time.Second

/***** STRUCT **********************************/

type Source interface {
	Now() (datetime.Epoch, error)
}

/***********************************************/

type SystemClock struct{}

/***********************************************/

type NtpClock struct {
	Host    string
	Timeout time.Duration
}

/***** FUNCTION ********************************/

func (SystemClock) Now() (datetime.Epoch, error) {
	return datetime.Now2Epoch(), nil
}

/***********************************************/

func (c NtpClock) Now() (datetime.Epoch, error) {
	timeout := c.Timeout

	if timeout <= 0 {
		timeout = DEFAULT_NTP_TIMEOUT
	}

	response, err := ntp.QueryWithOptions(c.Host, ntp.QueryOptions{Timeout: timeout})

	if err != nil {
		return datetime.Epoch{}, fmt.Errorf("NTP query of %q failed: %w", c.Host, err)
	}

	if err = response.Validate(); err != nil {
		return datetime.Epoch{}, fmt.Errorf("NTP response from %q rejected: %w", c.Host, err)
	}

	log.Debug().
		Str("host", c.Host).
		Dur("offset", response.ClockOffset).
		Uint8("stratum", response.Stratum).
		Msg("NTP clock offset measured")

	return datetime.Time2Epoch(time.Now().Add(response.ClockOffset)), nil
}
