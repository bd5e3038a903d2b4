/*
eopdog keeps local copies of the IERS leap second list and the JPL Earth
orientation parameters up to date, and reports any epoch across all the time
scales they pin down.
*/
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/nyx-space/hifitime-sub000/clock"
	"github.com/nyx-space/hifitime-sub000/datetime"
)

/***** VARIABLE ********************************/

var cfg Config

/***** FUNCTION ********************************/

func main() {
	// 1. parse command-line options
	var cfgFile, epochStr string
	var offline, verbose bool

	pflag.StringVar(&cfgFile, "config", "./eopdog.yaml", "the path of the config file (yaml)")
	pflag.StringVar(&epochStr, "epoch", "", `the epoch to report, e.g. "2017-01-14T00:31:55 UTC" (default: now)`)
	pflag.BoolVar(&offline, "offline", false, "skip downloads, use cached or builtin tables")
	pflag.BoolVar(&verbose, "verbose", false, "enable debug logging")
	pflag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	log.Info().Msg("eopdog started")

	// 2. parse the config file
	if err := cfg.ParseYaml(cfgFile); err != nil {
		log.Fatal().Err(err).Msg("error in the config file (yaml)")
	}

	// 3. bring the dataset files up to date
	if !offline {
		for _, name := range process() {
			log.Warn().Str("dataset", name).Msg("falling back to cached or builtin data")
		}
	}

	// 4. load the providers
	leaps := loadLeapSeconds()
	ut1 := loadUt1()

	// 5. resolve the epoch and report
	epoch, err := resolveEpoch(epochStr)

	if err != nil {
		log.Fatal().Err(err).Msg("invalid epoch")
	}

	report(epoch, leaps, ut1)
	log.Info().Msg("finished")
}

/***********************************************/

// loadLeapSeconds prefers the downloaded IERS file and degrades to the
// compiled-in table.
func loadLeapSeconds() datetime.LeapSecondProvider {
	ds, ok := cfg.DataSetByKind(KIND_LEAP_SECONDS)

	if !ok {
		return datetime.BuiltinLeapSeconds{}
	}

	provider, err := datetime.LeapSecondFile2Provider(ds.Path)

	if err != nil {
		log.Warn().Err(err).Str("path", ds.Path).Msg("using the builtin leap second table")
		return datetime.BuiltinLeapSeconds{}
	}

	log.Info().Str("path", ds.Path).Int("records", len(provider.LeapSeconds())).Msg("loaded leap seconds")
	return provider
}

/***********************************************/

// loadUt1 returns nil when no usable EOP data is available; UT1 output is
// then omitted.
func loadUt1() *datetime.Ut1Provider {
	ds, ok := cfg.DataSetByKind(KIND_EOP)

	if !ok {
		return nil
	}

	provider, err := datetime.EopFile2Ut1Provider(ds.Path)

	if err != nil {
		log.Warn().Err(err).Str("path", ds.Path).Msg("UT1 unavailable")
		return nil
	}

	log.Info().Str("path", ds.Path).Int("records", provider.Len()).Msg("loaded EOP data")
	return &provider
}

/***********************************************/

// resolveEpoch parses the --epoch flag, or reads a clock: NTP when the
// config names a host, the system clock otherwise or on NTP failure.
func resolveEpoch(epochStr string) (datetime.Epoch, error) {
	if epochStr != "" {
		return datetime.ParseEpoch(epochStr)
	}

	if cfg.NtpHost != "" {
		epoch, err := clock.NtpClock{Host: cfg.NtpHost}.Now()

		if err == nil {
			return epoch, nil
		}

		log.Warn().Err(err).Msg("NTP unavailable, using the system clock")
	}

	return clock.SystemClock{}.Now()
}
