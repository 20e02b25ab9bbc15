// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/kisoext/cost"
	"github.com/katalvlaran/kisoext/history"
	"github.com/katalvlaran/kisoext/instance"
	"github.com/katalvlaran/kisoext/report"
	"github.com/katalvlaran/kisoext/solver"
)

type solveInput struct {
	inputPath string
	k         int
	algorithm solver.Algorithm
	trials    int
	seed      int64
	workers   int
	batch     int
	timeout   time.Duration
	output    string
	dotPath   string
	record    bool
}

func newSolveCommand(input *Input) *cobra.Command {
	si := new(solveInput)
	cmd := &cobra.Command{
		Use:   "solve -i FILE -k K",
		Short: "Find the cheapest extension of H holding k embeddings of G",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSolve(cmd, input, si)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&si.inputPath, "input", "i", "", "instance file (G then H)")
	f.IntVarP(&si.k, "k", "k", 1, "number of distinct embeddings")
	f.VarP(newAlgorithmValue(solver.ExactSearch, &si.algorithm), "algorithm", "a", "exact or approx")
	f.IntVarP(&si.trials, "trials", "t", solver.DefaultTrialsMultiplier, "approx: trials per stage = n1*n2*t")
	f.Int64Var(&si.seed, "seed", 0, "approx: random seed (0 = fixed default)")
	f.IntVar(&si.workers, "workers", 0, "worker goroutines (0 = GOMAXPROCS)")
	f.IntVar(&si.batch, "batch", solver.DefaultBatchSize, "exact: combinations per work item")
	f.DurationVar(&si.timeout, "timeout", 0, "abort the search after this long (0 = never)")
	f.StringVarP(&si.output, "output", "o", "", "write the full text report to this file")
	f.StringVar(&si.dotPath, "dot", "", "write the extended host as Graphviz DOT to this file")
	f.BoolVar(&si.record, "record", false, "store the run in the history database")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func (si *solveInput) applyConfig(cmd *cobra.Command, c SolveConfig) {
	pick(cmd, "algorithm", &si.algorithm, c.Algorithm)
	pick(cmd, "trials", &si.trials, c.Trials)
	pick(cmd, "seed", &si.seed, c.Seed)
	pick(cmd, "workers", &si.workers, c.Workers)
	pick(cmd, "timeout", &si.timeout, c.Timeout)
	pick(cmd, "record", &si.record, c.Record)
}

func (si *solveInput) options() solver.Options {
	opts := solver.DefaultOptions()
	opts.Algo = si.algorithm
	opts.TrialsMultiplier = si.trials
	opts.Seed = si.seed
	opts.Workers = si.workers
	opts.BatchSize = si.batch

	return opts
}

func runSolve(cmd *cobra.Command, input *Input, si *solveInput) error {
	cfg, err := loadConfig(input.configPath)
	if err != nil {
		return err
	}
	si.applyConfig(cmd, cfg.Solve)

	inst, err := instance.ReadFile(si.inputPath)
	if err != nil {
		return err
	}
	logger := log.WithFields(log.Fields{
		"n1":        inst.G.N(),
		"n2":        inst.H.N(),
		"k":         si.k,
		"algorithm": si.algorithm,
	})
	logger.Info("solving")

	opts := si.options()
	opts.Observer = newLogObserver(logger)
	res, elapsed, err := solveWithTimeout(cmd.Context(), inst, si.k, opts, si.timeout)

	if si.record {
		if rerr := recordRun(input, cfg, inst, si.k, opts, res, elapsed, err); rerr != nil {
			logger.WithError(rerr).Warn("run not recorded")
		}
	}

	out := cmd.OutOrStdout()
	if errors.Is(err, solver.ErrInfeasible) {
		color.New(color.FgRed).Fprintf(out, "No solution: %v\n", err)
		return nil
	}
	if err != nil {
		return err
	}
	if err := verify(inst, res); err != nil {
		return err
	}
	logger.WithFields(log.Fields{"cost": res.Cost, "elapsed": elapsed}).Info("solved")

	inline := matricesFit(out, inst.H.N())
	if err := printResult(out, inst, si.k, res, inline); err != nil {
		return err
	}
	if !inline && si.output == "" {
		logger.Info("matrices omitted for this host size; use --output to write the full report")
	}

	if si.output != "" {
		if err := writeReport(si.output, inst, si.k, res); err != nil {
			return err
		}
		logger.WithField("path", si.output).Info("report written")
	}
	if si.dotPath != "" {
		b, err := report.DOT(inst.H, res.Edges)
		if err != nil {
			return err
		}
		if err := os.WriteFile(si.dotPath, b, 0o644); err != nil {
			return errors.Wrap(err, "dot")
		}
		logger.WithField("path", si.dotPath).Info("DOT written")
	}

	return nil
}

// solveWithTimeout runs the solver under an optional deadline.
func solveWithTimeout(ctx context.Context, inst *instance.Instance, k int, opts solver.Options, timeout time.Duration) (solver.Result, time.Duration, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	start := time.Now()
	res, err := solver.Solve(ctx, inst.G, inst.H, k, opts)

	return res, time.Since(start), err
}

// verify checks that H + edges realizes every returned mapping.
func verify(inst *instance.Instance, res solver.Result) error {
	ext := cost.Apply(inst.H, res.Edges)
	for _, m := range res.Mappings {
		if !cost.Satisfied(inst.G, ext, m) {
			return errors.Errorf("mapping %v is not realized by the extension", m)
		}
	}

	return nil
}

func printResult(w io.Writer, inst *instance.Instance, k int, res solver.Result, inline bool) error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Algorithm: %s\n", res.Algorithm)
	fmt.Fprintf(&buf, "k: %d\n", k)
	color.New(color.Bold).Fprintf(&buf, "Cost: %d\n", res.Cost)
	fmt.Fprintf(&buf, "Time: %s\n", res.Elapsed.Round(time.Microsecond))
	fmt.Fprintln(&buf, "Edges to add:")
	if err := report.Edges(&buf, res.Edges); err != nil {
		return err
	}
	fmt.Fprintln(&buf, "Mappings:")
	for i, m := range res.Mappings {
		fmt.Fprintf(&buf, "  %d: %v\n", i+1, m)
	}
	if inline {
		fmt.Fprintln(&buf, "\nPattern G:")
		if err := report.Matrix(&buf, inst.G); err != nil {
			return err
		}
		fmt.Fprintln(&buf, "Extended H (original+added):")
		if err := report.Extended(&buf, inst.H, res.Edges); err != nil {
			return err
		}
	}
	_, err := w.Write(buf.Bytes())

	return errors.Wrap(err, "output")
}

func writeReport(path string, inst *instance.Instance, k int, res solver.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "report")
	}
	if err := report.Write(f, report.Summary{G: inst.G, H: inst.H, K: k, Result: res}); err != nil {
		f.Close()
		return err
	}

	return errors.Wrap(f.Close(), "report")
}

func recordRun(input *Input, cfg *Config, inst *instance.Instance, k int, opts solver.Options, res solver.Result, elapsed time.Duration, solveErr error) error {
	if solveErr != nil && !errors.Is(solveErr, solver.ErrInfeasible) {
		// aborted or invalid runs say nothing about the instance
		return nil
	}
	path, err := historyPath(input, cfg)
	if err != nil {
		return err
	}
	run, err := history.NewRun(inst, k, opts, res, elapsed, solveErr)
	if err != nil {
		return err
	}
	store, err := history.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	return store.Record(run)
}
