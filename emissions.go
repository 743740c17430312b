/*
	Package emissions turns raw delivery-trip location records into
	sustainability metrics. It accepts a table of origin/destination
	coordinates encoded as microdegrees, computes the geodesic distance of
	each trip, derives CO2 output and electric-vehicle conversion metrics,
	and exposes aggregate reporting over the enriched collection.
*/
package emissions

import (
	"context"
	"io"
)

// Default emission factors in kg CO2 per km, and batch defaults.
const (
	DefaultDieselFactor = 0.21
	DefaultEVFactor     = 0.05
	DefaultRowLimit     = 100000
	DefaultWorkers      = 1
)

// suggestEVBelowKM is the cutoff under which a trip is flagged as a good
// candidate for electric-vehicle conversion.
const suggestEVBelowKM = 10.0

// Config holds the pipeline constants. A Config is validated once at
// construction and never mutated afterwards.
type Config struct {
	// RowLimit caps how many data rows the loader reads.
	RowLimit int
	// DieselFactor is the baseline emission factor in kg CO2 per km.
	DieselFactor float64
	// EVFactor is the electric-vehicle emission factor in kg CO2 per km.
	// It must be strictly less than DieselFactor.
	EVFactor float64
	// Workers bounds the per-trip parallelism of the distance stage.
	Workers int
}

// DefaultConfig returns a Config with the stock factors and limits.
func DefaultConfig() *Config {
	return &Config{
		RowLimit:     DefaultRowLimit,
		DieselFactor: DefaultDieselFactor,
		EVFactor:     DefaultEVFactor,
		Workers:      DefaultWorkers,
	}
}

// Validate reports a *ConfigurationError describing the first invalid field.
func (c *Config) Validate() error {
	switch {
	case c.RowLimit <= 0:
		return &ConfigurationError{Reason: "row limit must be greater than 0"}
	case c.Workers <= 0:
		return &ConfigurationError{Reason: "workers must be greater than 0"}
	case c.DieselFactor <= 0:
		return &ConfigurationError{Reason: "diesel factor must be greater than 0"}
	case c.EVFactor < 0:
		return &ConfigurationError{Reason: "ev factor must not be negative"}
	case c.EVFactor >= c.DieselFactor:
		return &ConfigurationError{Reason: "ev factor must be strictly less than diesel factor"}
	}

	return nil
}

// Pipeline reads raw trip records from a reader stream and writes the
// enriched table, with distance and emission columns appended, to the
// writer stream.
type Pipeline struct {
	reader io.Reader
	writer io.Writer
	conf   *Config
}

// NewPipeline creates a Pipeline. The configuration is rejected here, before
// any row is processed.
func NewPipeline(in io.Reader, out io.Writer, conf *Config) (*Pipeline, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	return &Pipeline{
		reader: in,
		writer: out,
		conf:   conf,
	}, nil
}

// Run carries out the full pipeline: load, distances, emissions, write.
// Each stage performs a full pass over the collection before the next stage
// begins. Any stage error aborts the run whole; no partial output is written.
func (p *Pipeline) Run(ctx context.Context) error {
	ds, err := Load(p.reader, p.conf.RowLimit)
	if err != nil {
		return err
	}

	if err := ds.ComputeDistances(ctx, p.conf.Workers); err != nil {
		return err
	}

	if err := ds.EstimateEmissions(p.conf); err != nil {
		return err
	}

	return ds.WriteCSV(p.writer)
}
