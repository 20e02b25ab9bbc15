// SPDX-License-Identifier: MIT

package history

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/pkg/errors"

	"github.com/katalvlaran/kisoext/instance"
	"github.com/katalvlaran/kisoext/solver"
)

// Run is one recorded solver invocation.
type Run struct {
	ID          uint64 `json:"id" boltholdKey:"ID"`
	CreatedAt   int64  `json:"createdAt" boltholdIndex:"CreatedAt"` // unix nanoseconds
	InputDigest string `json:"inputDigest" boltholdIndex:"InputDigest"`
	Algorithm   string `json:"algorithm" boltholdIndex:"Algorithm"`

	N1               int           `json:"n1"`
	N2               int           `json:"n2"`
	K                int           `json:"k"`
	TrialsMultiplier int           `json:"trialsMultiplier,omitempty"`
	Seed             int64         `json:"seed,omitempty"`
	Cost             int           `json:"cost"`
	Feasible         bool          `json:"feasible"`
	Elapsed          time.Duration `json:"elapsed"`
}

// NewRun describes a solve of inst. res is ignored when err is non-nil; a
// solver.ErrInfeasible outcome is recorded with Feasible=false and Cost=-1.
func NewRun(inst *instance.Instance, k int, opts solver.Options, res solver.Result, elapsed time.Duration, err error) (*Run, error) {
	digest, derr := Digest(inst)
	if derr != nil {
		return nil, derr
	}
	r := &Run{
		InputDigest: digest,
		Algorithm:   opts.Algo.String(),
		N1:          inst.G.N(),
		N2:          inst.H.N(),
		K:           k,
		Cost:        -1,
		Elapsed:     elapsed,
	}
	if opts.Algo == solver.Approximate {
		r.TrialsMultiplier = opts.TrialsMultiplier
		r.Seed = opts.Seed
	}
	if err == nil {
		r.Cost = res.Cost
		r.Feasible = true
	}

	return r, nil
}

// Digest returns the hex SHA-256 of inst in canonical text form, so the same
// instance has the same digest regardless of the input file's whitespace.
func Digest(inst *instance.Instance) (string, error) {
	h := sha256.New()
	if err := instance.Write(h, inst); err != nil {
		return "", errors.Wrap(err, "history: digest")
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
