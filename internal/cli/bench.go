// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/kisoext/generator"
	"github.com/katalvlaran/kisoext/history"
	"github.com/katalvlaran/kisoext/solver"
)

const (
	varyN1 = "n1"
	varyN2 = "n2"
)

type benchInput struct {
	generateInput

	vary       string
	from, to   int
	step       int
	k          int
	trials     int
	workers    int
	timeout    time.Duration
	algorithms []string
	csvPath    string
	record     bool
}

func newBenchCommand(input *Input) *cobra.Command {
	bi := new(benchInput)
	cmd := &cobra.Command{
		Use:   "bench --vary n1|n2 --from A --to B",
		Short: "Time the solvers on generated instances of growing size",
		Long: "bench generates one instance per size, keeping the other side fixed, and runs\n" +
			"every selected algorithm on it. Runs that exceed --timeout are reported and skipped.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBench(cmd, input, bi)
		},
	}
	f := cmd.Flags()
	f.StringVar(&bi.vary, "vary", varyN1, "which side grows: n1 (pattern) or n2 (host)")
	f.IntVar(&bi.n1, "n1", 4, "fixed pattern size when varying n2")
	f.IntVar(&bi.n2, "n2", 12, "fixed host size when varying n1")
	f.IntVar(&bi.from, "from", 2, "first size")
	f.IntVar(&bi.to, "to", 6, "last size (inclusive)")
	f.IntVar(&bi.step, "step", 1, "size increment")
	f.IntVarP(&bi.k, "k", "k", 2, "number of distinct embeddings")
	f.IntVarP(&bi.trials, "trials", "t", 10, "approx trials multiplier")
	f.IntVar(&bi.workers, "workers", 0, "worker goroutines (0 = GOMAXPROCS)")
	f.DurationVar(&bi.timeout, "timeout", 30*time.Second, "per-run time limit (0 = none)")
	f.StringSliceVarP(&bi.algorithms, "algorithms", "a", []string{"exact", "approx"}, "algorithms to run")
	f.StringVar(&bi.csvPath, "csv", "", "also write the runs as CSV to this file")
	f.BoolVar(&bi.record, "record", false, "store every completed run in the history database")
	bi.addGeneratorFlags(cmd)

	return cmd
}

// benchRow is one solver run in the table.
type benchRow struct {
	run    *history.Run
	status string
}

func (bi *benchInput) validate() error {
	if bi.vary != varyN1 && bi.vary != varyN2 {
		return errors.Errorf("bench: --vary must be %q or %q, got %q", varyN1, varyN2, bi.vary)
	}
	if bi.step < 1 {
		return errors.Errorf("bench: --step must be >= 1, got %d", bi.step)
	}
	if bi.from > bi.to {
		return errors.Errorf("bench: --from %d is greater than --to %d", bi.from, bi.to)
	}

	return nil
}

func (bi *benchInput) parseAlgorithms() ([]solver.Algorithm, error) {
	out := make([]solver.Algorithm, 0, len(bi.algorithms))
	for _, s := range bi.algorithms {
		a, err := solver.ParseAlgorithm(s)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	return out, nil
}

// sizes returns (n1, n2) for a step of the sweep.
func (bi *benchInput) sizes(v int) (int, int) {
	if bi.vary == varyN1 {
		return v, bi.n2
	}

	return bi.n1, v
}

func runBench(cmd *cobra.Command, input *Input, bi *benchInput) error {
	if err := bi.validate(); err != nil {
		return err
	}
	algos, err := bi.parseAlgorithms()
	if err != nil {
		return err
	}
	cfg, err := loadConfig(input.configPath)
	if err != nil {
		return err
	}
	bi.applyConfig(cmd, cfg.Generate)
	pick(cmd, "trials", &bi.trials, cfg.Solve.Trials)
	pick(cmd, "workers", &bi.workers, cfg.Solve.Workers)
	pick(cmd, "timeout", &bi.timeout, cfg.Solve.Timeout)
	pick(cmd, "record", &bi.record, cfg.Solve.Record)
	seed := bi.resolveSeed()

	var store *history.Store
	if bi.record {
		path, err := historyPath(input, cfg)
		if err != nil {
			return err
		}
		if store, err = history.Open(path); err != nil {
			return err
		}
		defer store.Close()
	}

	var rows []benchRow
	for v := bi.from; v <= bi.to; v += bi.step {
		n1, n2 := bi.sizes(v)
		// one seed per size so every algorithm sees the same instance
		inst, _, err := generator.Generate(n1, n2, bi.options(seed+int64(v))...)
		if err != nil {
			return errors.Wrapf(err, "bench: n1=%d n2=%d", n1, n2)
		}
		for _, a := range algos {
			if err := cmd.Context().Err(); err != nil {
				return err
			}
			opts := solver.DefaultOptions()
			opts.Algo = a
			opts.Workers = bi.workers
			opts.TrialsMultiplier = bi.trials
			opts.Seed = seed

			logger := log.WithFields(log.Fields{"n1": n1, "n2": n2, "k": bi.k, "algorithm": a})
			opts.Observer = newLogObserver(logger)
			res, elapsed, solveErr := solveWithTimeout(cmd.Context(), inst, bi.k, opts, bi.timeout)

			run, err := history.NewRun(inst, bi.k, opts, res, elapsed, solveErr)
			if err != nil {
				return err
			}
			row := benchRow{run: run, status: benchStatus(solveErr)}
			logger.WithFields(log.Fields{"status": row.status, "elapsed": elapsed}).Info("bench run")
			rows = append(rows, row)

			if store != nil && (solveErr == nil || errors.Is(solveErr, solver.ErrInfeasible)) {
				if err := store.Record(run); err != nil {
					return err
				}
			}
			if solveErr != nil && !errors.Is(solveErr, solver.ErrInfeasible) && cmd.Context().Err() != nil {
				return cmd.Context().Err()
			}
		}
	}

	if err := writeBenchTable(cmd.OutOrStdout(), rows); err != nil {
		return err
	}
	if bi.csvPath != "" {
		return writeBenchCSV(bi.csvPath, rows)
	}

	return nil
}

func benchStatus(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, solver.ErrInfeasible):
		return "infeasible"
	case errors.Is(err, solver.ErrSearchSpaceTooLarge):
		return "too large"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	default:
		return strings.SplitN(err.Error(), ":", 2)[0]
	}
}

func writeBenchTable(w io.Writer, rows []benchRow) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "N1\tN2\tK\tALGORITHM\tSTATUS\tCOST\tELAPSED")
	for _, r := range rows {
		c := "-"
		if r.status == "ok" {
			c = fmt.Sprint(r.run.Cost)
		}
		fmt.Fprintf(tw, "%d\t%d\t%d\t%s\t%s\t%s\t%s\n",
			r.run.N1, r.run.N2, r.run.K, r.run.Algorithm, r.status, c, r.run.Elapsed.Round(time.Microsecond))
	}

	return errors.Wrap(tw.Flush(), "bench: output")
}

func writeBenchCSV(path string, rows []benchRow) error {
	runs := make([]history.Run, len(rows))
	for i, r := range rows {
		runs[i] = *r.run
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "bench: csv")
	}
	if err := history.WriteCSV(f, runs); err != nil {
		f.Close()
		return err
	}
	log.WithField("path", path).Info("CSV written")

	return errors.Wrap(f.Close(), "bench: csv")
}
