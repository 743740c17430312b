package cli

import (
	"errors"
	"math"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/greenhaul/emissions"
	"github.com/greenhaul/emissions/internal/config"
)

// runParams holds the flag values of the run subcommand.
type runParams struct {
	input        string
	output       string
	limit        int
	dieselFactor float64
	evFactor     float64
	workers      int
	minKM        float64
	maxKM        float64
}

func newRunCmd(opts *rootOptions) *cobra.Command {
	var params runParams

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the emissions pipeline and write the enriched CSV",
		Long: `Load delivery trips, compute per-trip geodesic distances and emission
metrics, and write the enriched table: every input column preserved plus
distance_km, co2_kg, suggest_ev, ev_saving_kg and ev_priority_score.

Examples:
  greenhaul run --input data/delivery_five_cities.csv --output enriched.csv
  greenhaul run --input trips.csv --limit 5000 --min-km 0 --max-km 50`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeRun(cmd, opts, params)
		},
	}

	defaults := config.Default()
	cmd.Flags().StringVarP(&params.input, "input", "i", "", "Input CSV file path")
	cmd.Flags().StringVarP(&params.output, "output", "o", defaults.Output, "Output CSV file path")
	cmd.Flags().IntVar(&params.limit, "limit", defaults.RowLimit, "Maximum number of rows to load")
	cmd.Flags().Float64Var(&params.dieselFactor, "diesel-factor", defaults.DieselFactor, "Diesel emission factor, kg CO2 per km")
	cmd.Flags().Float64Var(&params.evFactor, "ev-factor", defaults.EVFactor, "EV emission factor, kg CO2 per km")
	cmd.Flags().IntVar(&params.workers, "workers", defaults.Workers, "Concurrent workers for the distance stage")
	cmd.Flags().Float64Var(&params.minKM, "min-km", 0, "Keep only trips at least this long")
	cmd.Flags().Float64Var(&params.maxKM, "max-km", 0, "Keep only trips at most this long")

	return cmd
}

// mergeRunFlags lays the explicitly set flags over the resolved configuration.
func mergeRunFlags(cmd *cobra.Command, cfg *config.Config, params runParams) {
	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Input = params.input
	}
	if flags.Changed("output") {
		cfg.Output = params.output
	}
	if flags.Changed("limit") {
		cfg.RowLimit = params.limit
	}
	if flags.Changed("diesel-factor") {
		cfg.DieselFactor = params.dieselFactor
	}
	if flags.Changed("ev-factor") {
		cfg.EVFactor = params.evFactor
	}
	if flags.Changed("workers") {
		cfg.Workers = params.workers
	}
}

func executeRun(cmd *cobra.Command, opts *rootOptions, params runParams) error {
	cfg := opts.cfg
	mergeRunFlags(cmd, &cfg, params)

	if cfg.Input == "" {
		return errors.New("no input file; use --input or GREENHAUL_INPUT")
	}

	conf := cfg.Pipeline()
	if err := conf.Validate(); err != nil {
		return err
	}

	start := time.Now()

	ds, err := emissions.LoadFile(cfg.Input, conf.RowLimit)
	if err != nil {
		return err
	}
	log.Debug().Int("trips", len(ds.Trips)).Str("input", cfg.Input).Msg("loaded delivery data")

	if err := ds.ComputeDistances(cmd.Context(), conf.Workers); err != nil {
		return err
	}
	if err := ds.EstimateEmissions(conf); err != nil {
		return err
	}

	if cmd.Flags().Changed("min-km") || cmd.Flags().Changed("max-km") {
		maxKM := params.maxKM
		if !cmd.Flags().Changed("max-km") {
			maxKM = math.Inf(1)
		}
		before := len(ds.Trips)
		ds = ds.FilterByDistance(params.minKM, maxKM)
		log.Debug().Int("kept", len(ds.Trips)).Int("of", before).Msg("applied distance filter")
	}

	out, err := os.Create(cfg.Output)
	if err != nil {
		return err
	}

	if err := ds.WriteCSV(out); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	log.Info().
		Int("trips", len(ds.Trips)).
		Str("output", cfg.Output).
		Dur("took", time.Since(start)).
		Msg("pipeline finished")

	return nil
}
