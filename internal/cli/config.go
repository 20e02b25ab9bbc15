// SPDX-License-Identifier: MIT

package cli

import (
	"io"
	"os"
	"time"

	"github.com/adrg/xdg"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/kisoext/solver"
)

const (
	configRelPath  = "kisoext/config.yaml"
	historyRelPath = "kisoext/history.db"
)

// Config is the optional YAML config file. Unset keys leave flag defaults
// alone; flags given on the command line always win.
type Config struct {
	History  string         `yaml:"history"`
	Solve    SolveConfig    `yaml:"solve"`
	Generate GenerateConfig `yaml:"generate"`
}

// SolveConfig holds defaults for solve and bench.
type SolveConfig struct {
	Algorithm *solver.Algorithm `yaml:"algorithm"`
	Trials    *int              `yaml:"trials"`
	Seed      *int64            `yaml:"seed"`
	Workers   *int              `yaml:"workers"`
	Timeout   *time.Duration    `yaml:"timeout"`
	Record    *bool             `yaml:"record"`
}

// GenerateConfig holds defaults for generate and bench.
type GenerateConfig struct {
	DensityG        *float64 `yaml:"density_g"`
	DensityH        *float64 `yaml:"density_h"`
	MultiedgeProb   *float64 `yaml:"multiedge_prob"`
	MaxMultiedge    *int     `yaml:"max_multiedge"`
	EmbedStrength   *float64 `yaml:"embed_strength"`
	DeficitStrength *float64 `yaml:"deficit_strength"`
	Noise           *bool    `yaml:"noise"`
	NoiseMax        *int     `yaml:"noise_max"`
}

// loadConfig reads path, or the XDG default when path is empty. A missing
// default file yields an empty config; a missing explicit file is an error.
func loadConfig(path string) (*Config, error) {
	if path == "" {
		found, err := xdg.SearchConfigFile(configRelPath)
		if err != nil {
			return &Config{}, nil
		}
		path = found
	}
	log.Debugf("Reading config from %s", path)

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "config")
	}
	defer f.Close()

	return decodeConfig(f, path)
}

func decodeConfig(r io.Reader, name string) (*Config, error) {
	cfg := new(Config)
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrapf(err, "config %s", name)
	}

	return cfg, nil
}

// historyPath resolves the database location: flag, config, XDG default.
func historyPath(input *Input, cfg *Config) (string, error) {
	if input.historyPath != "" {
		return input.historyPath, nil
	}
	if cfg.History != "" {
		return cfg.History, nil
	}
	p, err := xdg.DataFile(historyRelPath)
	if err != nil {
		return "", errors.Wrap(err, "history path")
	}

	return p, nil
}

// pick copies *fromConfig into dst unless the flag was set explicitly.
func pick[T any](cmd *cobra.Command, flag string, dst *T, fromConfig *T) {
	if fromConfig != nil && !cmd.Flags().Changed(flag) {
		*dst = *fromConfig
	}
}
