// Command breedlab runs the engine from an HJSON parameter file and prints
// the result as JSON.
//
//	breedlab simulate --config sim.hjson
//	breedlab compare --seed 7 --generations 30
//	breedlab evaluate --config herd.hjson --trace
//	breedlab genomic --config snps.hjson
package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	_ "go.uber.org/automaxprocs"

	"github.com/katalvlaran/breedlab/breeding"
	"github.com/katalvlaran/breedlab/genomic"
	"github.com/katalvlaran/breedlab/mme"
	"github.com/katalvlaran/breedlab/pedigree"
)

var version = "dev"

func main() {
	log.SetPrefix("breedlab: ")
	log.SetFlags(0)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// simFlags are the simulation overrides shared by simulate and compare.
type simFlags struct {
	seed        int64
	strategy    string
	generations int
}

func (f *simFlags) register(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "simulation seed (overrides the file)")
	cmd.Flags().StringVar(&f.strategy, "strategy", "", "mating strategy: random, avoidance or optimal")
	cmd.Flags().IntVar(&f.generations, "generations", 0, "number of generations (overrides the file)")
}

func (f *simFlags) params(cfg *Config) (breeding.Params, error) {
	s := cfg.Simulation
	if f.seed != 0 {
		s.Seed = f.seed
	}
	if f.strategy != "" {
		s.Strategy = f.strategy
	}
	if f.generations != 0 {
		s.NGenerations = f.generations
	}
	return s.Params()
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	var configPath string
	root := &cobra.Command{
		Use:           "breedlab",
		Short:         "Quantitative-genetics engine: relationships, BLUP, genomics and breeding simulation",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "HJSON parameter file")
	root.SetArgs(args)
	root.SetOut(stdout)

	var sim simFlags
	simulate := &cobra.Command{
		Use:   "simulate",
		Short: "Run one breeding simulation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			p, err := sim.params(cfg)
			if err != nil {
				return err
			}
			log.Printf("simulating %d generations of %d animals (%s mating, seed %d)", p.NGenerations, p.PopSize, p.Strategy, p.Seed)
			res, err := breeding.Run(p, breeding.WithContext(cmd.Context()))
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), res)
		},
	}
	sim.register(simulate)

	var cmpFlags simFlags
	compare := &cobra.Command{
		Use:   "compare",
		Short: "Run every mating strategy on the same parameters, concurrently",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			p, err := cmpFlags.params(cfg)
			if err != nil {
				return err
			}
			log.Printf("comparing %d strategies over %d generations", len(breeding.Strategies), p.NGenerations)
			res, err := breeding.Compare(cmd.Context(), p)
			if err != nil {
				return err
			}
			byTag := make(map[string]*breeding.Result, len(res))
			for s, r := range res {
				byTag[s.String()] = r
			}
			return writeJSON(cmd.OutOrStdout(), byTag)
		},
	}
	cmpFlags.register(compare)

	var trace bool
	evaluateCmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Build A from a pedigree and solve the mixed-model equations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			rep, err := evaluate(cfg.Evaluation, trace)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), rep)
		},
	}
	evaluateCmd.Flags().BoolVar(&trace, "trace", false, "include the relationship-matrix derivation")

	genomicCmd := &cobra.Command{
		Use:   "genomic",
		Short: "Build the genomic relationship matrix from SNP dosages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if len(cfg.Genotypes) == 0 {
				return errors.Join(errConfig, errors.New("no genotypes"))
			}
			res, err := genomic.Build(cfg.Genotypes)
			if err != nil {
				return err
			}
			log.Printf("G built from %d animals and %d markers", res.G.Rows(), len(res.Freqs))
			return writeJSON(cmd.OutOrStdout(), genomicReport{G: res.G.RawRows(), Freqs: res.Freqs, Scale: res.Scale})
		},
	}

	root.AddCommand(simulate, compare, evaluateCmd, genomicCmd)
	return root.ExecuteContext(ctx)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type evaluationReport struct {
	IDs         []string           `json:"ids"`
	A           [][]float64        `json:"a"`
	F           []float64          `json:"f"`
	Trace       []pedigree.Step    `json:"trace,omitempty"`
	Levels      []string           `json:"levels"`
	Fixed       map[string]float64 `json:"fixed"`
	EBV         map[string]float64 `json:"ebv"`
	Reliability map[string]float64 `json:"reliability"`
	Alpha       float64            `json:"alpha"`
	Cond        float64            `json:"cond"`
}

type genomicReport struct {
	G     [][]float64 `json:"g"`
	Freqs []float64   `json:"freqs"`
	Scale float64     `json:"scale"`
}

func evaluate(e EvaluationConfig, trace bool) (*evaluationReport, error) {
	var opts []pedigree.Option
	if e.Sort {
		opts = append(opts, pedigree.WithSort())
	}
	if e.Strict {
		opts = append(opts, pedigree.WithStrictOrder())
	}
	if trace {
		opts = append(opts, pedigree.WithTrace())
	}
	ev, err := mme.Evaluate(e.records(), e.observations(), e.SigmaE2, e.SigmaA2, opts...)
	if err != nil {
		return nil, err
	}
	log.Printf("evaluated %d animals, %d records, %d fixed levels", len(ev.Pedigree.IDs), len(ev.Design.Y), len(ev.Design.Levels))

	sol := ev.Solution
	rep := &evaluationReport{
		IDs:         ev.Pedigree.IDs,
		A:           ev.Pedigree.A.RawRows(),
		F:           ev.Pedigree.F,
		Trace:       ev.Pedigree.Trace,
		Levels:      ev.Design.Levels,
		Fixed:       make(map[string]float64, len(sol.Fixed)),
		EBV:         make(map[string]float64, len(sol.Breeding)),
		Reliability: make(map[string]float64, len(sol.Breeding)),
		Alpha:       sol.Alpha,
		Cond:        sol.Cond,
	}
	for i, lvl := range ev.Design.Levels {
		rep.Fixed[lvl] = sol.Fixed[i]
	}
	for i, id := range ev.Pedigree.IDs {
		rep.EBV[id] = sol.Breeding[i]
		rep.Reliability[id] = sol.Reliability[i]
	}
	return rep, nil
}
