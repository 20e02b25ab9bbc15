// SPDX-License-Identifier: MIT
// Package generator - configuration and defaults.
//
// Defaults:
//   - densityG        = 0.35
//   - densityH        = 0.20
//   - multiedgeProb   = 0.15
//   - maxMultiedge    = 4     (multiedges draw 2..maxMultiedge)
//   - embedStrength   = 0.40
//   - deficitStrength = 0.35
//   - noise           = true, noiseMax = 1
//   - rng             = nil   (Generate requires one)

package generator

import "math/rand"

// Defaults, exported for CLI flag help.
const (
	DefaultDensityG        = 0.35
	DefaultDensityH        = 0.20
	DefaultMultiedgeProb   = 0.15
	DefaultMaxMultiedge    = 4
	DefaultEmbedStrength   = 0.40
	DefaultDeficitStrength = 0.35
	DefaultNoise           = true
	DefaultNoiseMax        = 1
)

// noiseProb is the chance of a noise edge between two unused host vertices.
const noiseProb = 0.08

// deficitWorsenProb is the chance of deepening an already existing deficit.
const deficitWorsenProb = 0.25

type config struct {
	rng *rand.Rand

	densityG        float64
	densityH        float64
	multiedgeProb   float64
	maxMultiedge    int
	embedStrength   float64
	deficitStrength float64
	noise           bool
	noiseMax        int
}

// newConfig applies opts over the defaults; later options win.
func newConfig(opts ...Option) config {
	cfg := config{
		densityG:        DefaultDensityG,
		densityH:        DefaultDensityH,
		multiedgeProb:   DefaultMultiedgeProb,
		maxMultiedge:    DefaultMaxMultiedge,
		embedStrength:   DefaultEmbedStrength,
		deficitStrength: DefaultDeficitStrength,
		noise:           DefaultNoise,
		noiseMax:        DefaultNoiseMax,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
