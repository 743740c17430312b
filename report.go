package emissions

// Summary holds the aggregate metrics the reporting surface is built on.
type Summary struct {
	Trips           int
	EVSuitable      int
	TotalDistanceKM float64
	MeanDistanceKM  float64
	TotalCO2KG      float64
	TotalEVSavingKG float64

	// EVSuitableCO2KG is the emission of the EV-suitable trips alone, the
	// base of the adoption simulation.
	EVSuitableCO2KG float64
}

func (s Summary) add(t Trip) Summary {
	s.Trips++
	s.TotalDistanceKM += t.DistanceKM
	s.TotalCO2KG += t.CO2KG
	s.TotalEVSavingKG += t.EVSavingKG
	if t.SuggestEV {
		s.EVSuitable++
		s.EVSuitableCO2KG += t.CO2KG
	}
	s.MeanDistanceKM = s.TotalDistanceKM / float64(s.Trips)
	return s
}

// AdoptionSaving returns the CO2 avoided if the given fraction of
// EV-suitable trips switched to electric vehicles.
func (s Summary) AdoptionSaving(fraction float64) float64 {
	return s.EVSuitableCO2KG * fraction
}

// CarbonCost prices the total emission at the given cost per kg of CO2.
func (s Summary) CarbonCost(pricePerKG float64) float64 {
	return s.TotalCO2KG * pricePerKG
}

// Summarize aggregates the enriched collection into totals.
func (d *Dataset) Summarize() Summary {
	var s Summary
	for _, t := range d.Trips {
		s = s.add(t)
	}
	return s
}

// FilterByDistance returns a new Dataset keeping the trips whose distance
// lies in [minKM, maxKM], both ends inclusive, in their original order.
func (d *Dataset) FilterByDistance(minKM, maxKM float64) *Dataset {
	out := &Dataset{Columns: d.Columns}
	for _, t := range d.Trips {
		if t.DistanceKM >= minKM && t.DistanceKM <= maxKM {
			out.Trips = append(out.Trips, t)
		}
	}
	return out
}

// GroupBy aggregates per distinct value of a pass-through column, e.g. city
// or store_id. A column the dataset does not carry yields an empty result,
// matching the optional nature of those columns.
func (d *Dataset) GroupBy(column string) map[string]Summary {
	groups := make(map[string]Summary)
	idx := d.extraIndex(column)
	if idx < 0 {
		return groups
	}

	for _, t := range d.Trips {
		key := t.Extra[idx]
		groups[key] = groups[key].add(t)
	}
	return groups
}
