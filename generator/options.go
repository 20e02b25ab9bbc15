// SPDX-License-Identifier: MIT

package generator

import "math/rand"

// Option customizes Generate.
type Option func(*config)

// WithSeed seeds a fresh *rand.Rand; the same seed reproduces the instance.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses r for every draw. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generator: WithRand(nil)")
	}

	return func(c *config) {
		c.rng = r
	}
}

// WithDensityG sets the edge probability of the pattern graph.
func WithDensityG(p float64) Option {
	return func(c *config) { c.densityG = p }
}

// WithDensityH sets the edge probability of the base host graph.
func WithDensityH(p float64) Option {
	return func(c *config) { c.densityH = p }
}

// WithMultiedgeProb sets the chance that a generated edge becomes a multiedge.
func WithMultiedgeProb(p float64) Option {
	return func(c *config) { c.multiedgeProb = p }
}

// WithMaxMultiedge sets the largest multiplicity of a multiedge. Values
// below 2 disable multiedges.
func WithMaxMultiedge(m int) Option {
	return func(c *config) { c.maxMultiedge = m }
}

// WithEmbedStrength sets the fraction of G's edges made satisfied under the
// planted mapping.
func WithEmbedStrength(f float64) Option {
	return func(c *config) { c.embedStrength = f }
}

// WithDeficitStrength sets the fraction of G's edges forced under-satisfied.
func WithDeficitStrength(f float64) Option {
	return func(c *config) { c.deficitStrength = f }
}

// WithNoise toggles noise edges among unused host vertices.
func WithNoise(on bool) Option {
	return func(c *config) { c.noise = on }
}

// WithNoiseMax sets the largest noise multiplicity (0 disables noise).
func WithNoiseMax(m int) Option {
	return func(c *config) { c.noiseMax = m }
}
