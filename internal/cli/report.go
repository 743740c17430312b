package cli

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/greenhaul/emissions"
	"github.com/greenhaul/emissions/internal/config"
)

// reportParams holds the flag values of the report subcommand.
type reportParams struct {
	input        string
	limit        int
	dieselFactor float64
	evFactor     float64
	workers      int
	minKM        float64
	maxKM        float64
	groupBy      string
	carbonPrice  float64
	evAdoption   float64
}

func newReportCmd(opts *rootOptions) *cobra.Command {
	var params reportParams

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print aggregate emission metrics for a delivery dataset",
		Long: `Run the pipeline in memory and print aggregate metrics: total CO2,
EV-suitable trip count, mean distance and potential EV savings. Optionally
group the totals by a pass-through column such as city or store_id.

Examples:
  greenhaul report --input trips.csv
  greenhaul report --input trips.csv --group-by city
  greenhaul report --input trips.csv --ev-adoption 50 --carbon-price 0.03`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeReport(cmd, opts, params)
		},
	}

	defaults := config.Default()
	cmd.Flags().StringVarP(&params.input, "input", "i", "", "Input CSV file path")
	cmd.Flags().IntVar(&params.limit, "limit", defaults.RowLimit, "Maximum number of rows to load")
	cmd.Flags().Float64Var(&params.dieselFactor, "diesel-factor", defaults.DieselFactor, "Diesel emission factor, kg CO2 per km")
	cmd.Flags().Float64Var(&params.evFactor, "ev-factor", defaults.EVFactor, "EV emission factor, kg CO2 per km")
	cmd.Flags().IntVar(&params.workers, "workers", defaults.Workers, "Concurrent workers for the distance stage")
	cmd.Flags().Float64Var(&params.minKM, "min-km", 0, "Keep only trips at least this long")
	cmd.Flags().Float64Var(&params.maxKM, "max-km", 0, "Keep only trips at most this long")
	cmd.Flags().StringVar(&params.groupBy, "group-by", "", "Group totals by a pass-through column")
	cmd.Flags().Float64Var(&params.carbonPrice, "carbon-price", 0, "Price total emissions at this cost per kg CO2")
	cmd.Flags().Float64Var(&params.evAdoption, "ev-adoption", 0, "Simulate this percentage of EV-suitable trips switching")

	return cmd
}

func executeReport(cmd *cobra.Command, opts *rootOptions, params reportParams) error {
	cfg := opts.cfg
	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Input = params.input
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

	if cfg.Input == "" {
		return errors.New("no input file; use --input or GREENHAUL_INPUT")
	}

	conf := cfg.Pipeline()
	if err := conf.Validate(); err != nil {
		return err
	}

	ds, err := emissions.LoadFile(cfg.Input, conf.RowLimit)
	if err != nil {
		return err
	}
	if err := ds.ComputeDistances(cmd.Context(), conf.Workers); err != nil {
		return err
	}
	if err := ds.EstimateEmissions(conf); err != nil {
		return err
	}

	if flags.Changed("min-km") || flags.Changed("max-km") {
		maxKM := params.maxKM
		if !flags.Changed("max-km") {
			maxKM = math.Inf(1)
		}
		ds = ds.FilterByDistance(params.minKM, maxKM)
	}

	s := ds.Summarize()

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Trips\t%d\n", s.Trips)
	fmt.Fprintf(w, "Total distance (km)\t%.2f\n", s.TotalDistanceKM)
	fmt.Fprintf(w, "Mean distance (km)\t%.2f\n", s.MeanDistanceKM)
	fmt.Fprintf(w, "Total CO2 (kg)\t%.2f\n", s.TotalCO2KG)
	fmt.Fprintf(w, "EV-suitable trips\t%d\n", s.EVSuitable)
	fmt.Fprintf(w, "Potential EV saving (kg)\t%.2f\n", s.TotalEVSavingKG)
	if flags.Changed("ev-adoption") {
		fmt.Fprintf(w, "Saved at %.0f%% EV adoption (kg)\t%.2f\n",
			params.evAdoption, s.AdoptionSaving(params.evAdoption/100))
	}
	if flags.Changed("carbon-price") {
		fmt.Fprintf(w, "Carbon cost\t%.2f\n", s.CarbonCost(params.carbonPrice))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if params.groupBy != "" {
		if err := printGroups(cmd, ds, params.groupBy); err != nil {
			return err
		}
	}

	return nil
}

// printGroups renders per-group totals, highest emitters first.
func printGroups(cmd *cobra.Command, ds *emissions.Dataset, column string) error {
	groups := ds.GroupBy(column)
	if len(groups) == 0 {
		log.Warn().Str("column", column).Msg("no such column in the dataset")
		return nil
	}

	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return groups[keys[i]].TotalCO2KG > groups[keys[j]].TotalCO2KG
	})

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "\n%s\ttrips\tco2 (kg)\tev-suitable\n", column)
	for _, k := range keys {
		g := groups[k]
		fmt.Fprintf(w, "%s\t%d\t%.2f\t%d\n", k, g.Trips, g.TotalCO2KG, g.EVSuitable)
	}
	return w.Flush()
}
