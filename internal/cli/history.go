// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/kisoext/history"
	"github.com/katalvlaran/kisoext/solver"
)

type historyInput struct {
	algorithm string
	digest    string
	limit     int
	csv       bool
}

func newHistoryCommand(input *Input) *cobra.Command {
	hi := new(historyInput)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHistory(cmd, input, hi)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&hi.algorithm, "algorithm", "a", "", "only runs of this algorithm")
	f.StringVar(&hi.digest, "digest", "", "only runs on the instance with this digest")
	f.IntVarP(&hi.limit, "limit", "n", 20, "most recent runs to show (0 = all)")
	f.BoolVar(&hi.csv, "csv", false, "print CSV instead of a table")

	return cmd
}

func runHistory(cmd *cobra.Command, input *Input, hi *historyInput) error {
	cfg, err := loadConfig(input.configPath)
	if err != nil {
		return err
	}
	path, err := historyPath(input, cfg)
	if err != nil {
		return err
	}
	filter := history.Filter{InputDigest: hi.digest, Limit: hi.limit}
	if hi.algorithm != "" {
		a, err := solver.ParseAlgorithm(hi.algorithm)
		if err != nil {
			return err
		}
		filter.Algorithm = a.String()
	}

	store, err := history.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()
	runs, err := store.List(filter)
	if err != nil {
		return err
	}

	if hi.csv {
		return history.WriteCSV(cmd.OutOrStdout(), runs)
	}

	return writeHistoryTable(cmd.OutOrStdout(), runs)
}

func writeHistoryTable(w io.Writer, runs []history.Run) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tWHEN\tALGORITHM\tN1\tN2\tK\tCOST\tELAPSED\tINSTANCE")
	for _, r := range runs {
		c := "infeasible"
		if r.Feasible {
			c = humanize.Comma(int64(r.Cost))
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\t%d\t%s\t%s\t%.12s\n",
			r.ID, humanize.Time(time.Unix(0, r.CreatedAt)), r.Algorithm,
			r.N1, r.N2, r.K, c, r.Elapsed.Round(time.Microsecond), r.InputDigest)
	}

	return errors.Wrap(tw.Flush(), "history: output")
}
