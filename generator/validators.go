// SPDX-License-Identifier: MIT

package generator

import "github.com/pkg/errors"

// validateSizes enforces 1 ≤ n₁ < n₂.
func validateSizes(n1, n2 int) error {
	if n1 < 1 || n2 < 1 {
		return errors.Wrapf(ErrTooFewVertices, "n1=%d, n2=%d (both must be ≥ 1)", n1, n2)
	}
	if n1 >= n2 {
		return errors.Wrapf(ErrPatternTooLarge, "n1=%d, n2=%d", n1, n2)
	}

	return nil
}

// validateProbability enforces p ∈ [0, 1].
func validateProbability(name string, p float64) error {
	if !(p >= 0 && p <= 1) {
		return errors.Wrapf(ErrInvalidProbability, "%s=%g", name, p)
	}

	return nil
}

// validateConfig checks every knob of cfg.
func validateConfig(cfg config) error {
	for _, kv := range []struct {
		name string
		p    float64
	}{
		{"density-g", cfg.densityG},
		{"density-h", cfg.densityH},
		{"multiedge-prob", cfg.multiedgeProb},
		{"embed-strength", cfg.embedStrength},
		{"deficit-strength", cfg.deficitStrength},
	} {
		if err := validateProbability(kv.name, kv.p); err != nil {
			return err
		}
	}
	if cfg.maxMultiedge < 1 {
		return errors.Wrapf(ErrTooFewVertices, "max-multiedge=%d (must be ≥ 1)", cfg.maxMultiedge)
	}
	if cfg.noiseMax < 0 {
		return errors.Wrapf(ErrTooFewVertices, "noise-max=%d (must be ≥ 0)", cfg.noiseMax)
	}
	if cfg.rng == nil {
		return ErrNeedRandSource
	}

	return nil
}
