// SPDX-License-Identifier: MIT

package cli

import (
	"os"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/kisoext/generator"
	"github.com/katalvlaran/kisoext/instance"
)

type generateInput struct {
	n1, n2          int
	densityG        float64
	densityH        float64
	multiedgeProb   float64
	maxMultiedge    int
	embedStrength   float64
	deficitStrength float64
	noise           bool
	noiseMax        int
	seed            int64
	output          string
}

// addGeneratorFlags registers the knobs shared by generate and bench.
func (gi *generateInput) addGeneratorFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Float64Var(&gi.densityG, "density-g", generator.DefaultDensityG, "edge probability in G")
	f.Float64Var(&gi.densityH, "density-h", generator.DefaultDensityH, "edge probability in H")
	f.Float64Var(&gi.multiedgeProb, "multiedge-prob", generator.DefaultMultiedgeProb, "probability that an edge is a multi-edge")
	f.IntVar(&gi.maxMultiedge, "max-multiedge", generator.DefaultMaxMultiedge, "largest multiplicity drawn")
	f.Float64Var(&gi.embedStrength, "embed-strength", generator.DefaultEmbedStrength, "fraction of G's edges satisfied under the planted mapping")
	f.Float64Var(&gi.deficitStrength, "deficit-strength", generator.DefaultDeficitStrength, "fraction of the remaining edges forced under-satisfied")
	f.BoolVar(&gi.noise, "noise", generator.DefaultNoise, "add random edges among host vertices outside the planted image")
	f.IntVar(&gi.noiseMax, "noise-max", generator.DefaultNoiseMax, "largest multiplicity of a noise edge")
	f.Int64Var(&gi.seed, "seed", 0, "random seed (0 = time based, logged)")
}

func (gi *generateInput) applyConfig(cmd *cobra.Command, c GenerateConfig) {
	pick(cmd, "density-g", &gi.densityG, c.DensityG)
	pick(cmd, "density-h", &gi.densityH, c.DensityH)
	pick(cmd, "multiedge-prob", &gi.multiedgeProb, c.MultiedgeProb)
	pick(cmd, "max-multiedge", &gi.maxMultiedge, c.MaxMultiedge)
	pick(cmd, "embed-strength", &gi.embedStrength, c.EmbedStrength)
	pick(cmd, "deficit-strength", &gi.deficitStrength, c.DeficitStrength)
	pick(cmd, "noise", &gi.noise, c.Noise)
	pick(cmd, "noise-max", &gi.noiseMax, c.NoiseMax)
}

// resolveSeed replaces a zero seed with the clock and logs it so the
// instance can be regenerated.
func (gi *generateInput) resolveSeed() int64 {
	if gi.seed == 0 {
		gi.seed = time.Now().UnixNano()
		log.WithField("seed", gi.seed).Info("using time-based seed")
	}

	return gi.seed
}

func (gi *generateInput) options(seed int64) []generator.Option {
	return []generator.Option{
		generator.WithSeed(seed),
		generator.WithDensityG(gi.densityG),
		generator.WithDensityH(gi.densityH),
		generator.WithMultiedgeProb(gi.multiedgeProb),
		generator.WithMaxMultiedge(gi.maxMultiedge),
		generator.WithEmbedStrength(gi.embedStrength),
		generator.WithDeficitStrength(gi.deficitStrength),
		generator.WithNoise(gi.noise),
		generator.WithNoiseMax(gi.noiseMax),
	}
}

func newGenerateCommand(input *Input) *cobra.Command {
	gi := new(generateInput)
	cmd := &cobra.Command{
		Use:   "generate --n1 N1 --n2 N2",
		Short: "Write a random instance with a planted, partially satisfied embedding",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, input, gi)
		},
	}
	cmd.Flags().IntVar(&gi.n1, "n1", 3, "pattern vertices")
	cmd.Flags().IntVar(&gi.n2, "n2", 5, "host vertices")
	cmd.Flags().StringVarP(&gi.output, "output", "o", "-", "instance file (- for stdout)")
	gi.addGeneratorFlags(cmd)

	return cmd
}

func runGenerate(cmd *cobra.Command, input *Input, gi *generateInput) error {
	cfg, err := loadConfig(input.configPath)
	if err != nil {
		return err
	}
	gi.applyConfig(cmd, cfg.Generate)

	inst, planted, err := generator.Generate(gi.n1, gi.n2, gi.options(gi.resolveSeed())...)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"mapping":  planted.Mapping,
		"embedded": planted.Embedded,
		"deficit":  planted.Deficit,
	}).Info("planted embedding")

	if gi.output == "-" || gi.output == "" {
		return instance.Write(cmd.OutOrStdout(), inst)
	}
	f, err := os.Create(gi.output)
	if err != nil {
		return errors.Wrap(err, "generate")
	}
	if err := instance.Write(f, inst); err != nil {
		f.Close()
		return err
	}
	log.WithField("path", gi.output).Info("instance written")

	return errors.Wrap(f.Close(), "generate")
}
