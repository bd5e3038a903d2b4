package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/nyx-space/hifitime-sub000/network"
)

/***** CONSTANT ********************************/

const (
	MIN_WORKER_NUM = 1
	MAX_WORKER_NUM = 99
	MIN_RETRY_NUM  = 0
	MAX_RETRY_NUM  = 99

	KIND_LEAP_SECONDS = "leap-seconds"
	KIND_EOP          = "eop"
)

/***** STRUCT **********************************/

// DataSet describes one astronomical data file to maintain locally, with a
// fallback list of remote sources tried in order.
type DataSet struct {
	Name    string           `yaml:"name"`
	Kind    string           `yaml:"kind"` // "leap-seconds" or "eop"
	Path    string           `yaml:"path"`
	Sources []network.Source `yaml:"sources"`
}

/***********************************************/

type Config struct {
	Dir      string    `yaml:"dir" env:"EOPDOG_DIR"`
	Workers  int       `yaml:"workers" env:"EOPDOG_WORKERS"`
	Retries  int       `yaml:"retries" env:"EOPDOG_RETRIES"`
	NtpHost  string    `yaml:"ntp_host" env:"EOPDOG_NTP_HOST"`
	Force    bool      `yaml:"force" env:"EOPDOG_FORCE"`
	DataSets []DataSet `yaml:"datasets"`
}

/***** FUNCTION ********************************/

// ParseYaml loads the config file, applies EOPDOG_* environment overrides
// and validates.
func (cfg *Config) ParseYaml(cfgFile string) error {
	data, err := os.ReadFile(cfgFile)

	if err != nil {
		return err
	}

	if err = yaml.Unmarshal(data, cfg); err != nil {
		return err
	}

	if err = env.Parse(cfg); err != nil {
		return err
	}

	// defaults
	if cfg.Dir == "" {
		cfg.Dir = "."
	}

	if cfg.Workers == 0 {
		cfg.Workers = 2
	}

	// check the worker num
	if cfg.Workers < MIN_WORKER_NUM || cfg.Workers > MAX_WORKER_NUM {
		return fmt.Errorf(`value in "workers" must be in %d-%d`, MIN_WORKER_NUM, MAX_WORKER_NUM)
	}

	// check the retry num
	if cfg.Retries < MIN_RETRY_NUM || cfg.Retries > MAX_RETRY_NUM {
		return fmt.Errorf(`value in "retries" must be in %d-%d`, MIN_RETRY_NUM, MAX_RETRY_NUM)
	}

	if len(cfg.DataSets) == 0 {
		return errors.New(`no "datasets"`)
	}

	// check datasets
	numKindMap := make(map[string]int)

	for idx := range cfg.DataSets {
		ds := &cfg.DataSets[idx]

		if ds.Kind != KIND_LEAP_SECONDS && ds.Kind != KIND_EOP {
			return fmt.Errorf(`invalid "kind" of the %d-th dataset specified in "datasets"`, idx+1)
		}

		if len(ds.Sources) == 0 {
			return fmt.Errorf(`no "sources" for the %d-th dataset specified in "datasets"`, idx+1)
		}

		if ds.Name == "" {
			ds.Name = ds.Kind
		}

		if ds.Path == "" {
			ds.Path = filepath.Join(cfg.Dir, defaultFileName(ds.Kind))
		}

		ds.Path = filepath.ToSlash(ds.Path)

		numKindMap[ds.Kind] += 1

		if numKindMap[ds.Kind] > 1 {
			return fmt.Errorf(`duplicated "kind" of the %d-th dataset specified in "datasets"`, idx+1)
		}
	}

	return nil
}

/***********************************************/

func defaultFileName(kind string) string {
	if kind == KIND_LEAP_SECONDS {
		return "leap-seconds.list"
	}

	return "eop2.short"
}

/***********************************************/

// DataSetByKind returns the dataset of the given kind, if configured.
func (cfg *Config) DataSetByKind(kind string) (*DataSet, bool) {
	for idx := range cfg.DataSets {
		if cfg.DataSets[idx].Kind == kind {
			return &cfg.DataSets[idx], true
		}
	}

	return nil, false
}
