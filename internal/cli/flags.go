// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/pflag"

	"github.com/katalvlaran/kisoext/solver"
)

// algorithmValue adapts solver.Algorithm to pflag.Value.
type algorithmValue struct {
	a *solver.Algorithm
}

var _ pflag.Value = algorithmValue{}

func newAlgorithmValue(def solver.Algorithm, p *solver.Algorithm) algorithmValue {
	*p = def

	return algorithmValue{a: p}
}

func (v algorithmValue) String() string {
	if v.a == nil {
		return ""
	}

	return v.a.String()
}

func (v algorithmValue) Set(s string) error {
	a, err := solver.ParseAlgorithm(s)
	if err != nil {
		return err
	}
	*v.a = a

	return nil
}

func (algorithmValue) Type() string { return "exact|approx" }
