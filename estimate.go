package emissions

// EstimateEmissions populates the emission fields of every trip from its
// distance using the configured factors. The pass is deterministic and pure
// per trip; running it twice over the same collection yields the same result.
func (d *Dataset) EstimateEmissions(conf *Config) error {
	if err := conf.Validate(); err != nil {
		return err
	}

	for i := range d.Trips {
		t := &d.Trips[i]
		t.CO2KG = t.DistanceKM * conf.DieselFactor
		t.SuggestEV = t.DistanceKM < suggestEVBelowKM
		t.EVSavingKG = t.DistanceKM * (conf.DieselFactor - conf.EVFactor)
		t.EVPriorityScore = priorityScore(t.DistanceKM)
	}

	return nil
}

// priorityScore ranks a trip for electric-vehicle conversion by its distance.
// Shorter trips score higher; the bands are fixed business rules and the
// floor is 0.1, never 0.
func priorityScore(distanceKM float64) float64 {
	switch {
	case distanceKM < 5:
		return 1.0
	case distanceKM < 10:
		return 0.9
	case distanceKM < 15:
		return 0.7
	case distanceKM < 20:
		return 0.5
	case distanceKM < 30:
		return 0.3
	default:
		return 0.1
	}
}
