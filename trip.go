package emissions

// Trip is one delivery record flowing through the pipeline. The loader sets
// Origin, Destination and Extra; the distance and emissions stages add the
// derived fields and never mutate a previously computed one.
type Trip struct {
	Origin      Point
	Destination Point

	// DistanceKM is the geodesic distance between Origin and Destination.
	DistanceKM float64

	// CO2KG is the diesel-baseline emission for the trip.
	CO2KG float64
	// SuggestEV flags the trip as a good electric-vehicle candidate.
	SuggestEV bool
	// EVSavingKG is the emission avoided if the trip used an EV.
	EVSavingKG float64
	// EVPriorityScore ranks how urgently the trip should be converted,
	// higher meaning more urgent.
	EVPriorityScore float64

	// Extra holds the values of the pass-through columns, in the order
	// they appear in the input header. The pipeline never interprets them.
	Extra []string
}

// Dataset is an ordered collection of trips together with the input column
// layout. Order follows the input rows and is preserved through every stage.
type Dataset struct {
	// Columns lists every input column in input order, coordinate columns
	// included.
	Columns []string

	Trips []Trip
}

// ExtraColumns returns the names of the pass-through columns, in input order.
func (d *Dataset) ExtraColumns() []string {
	var extras []string
	for _, name := range d.Columns {
		if !isCoordinateColumn(name) {
			extras = append(extras, name)
		}
	}
	return extras
}

// extraIndex returns the position of a pass-through column within Trip.Extra,
// or -1 when the dataset has no such column.
func (d *Dataset) extraIndex(name string) int {
	i := 0
	for _, col := range d.Columns {
		if isCoordinateColumn(col) {
			continue
		}
		if col == name {
			return i
		}
		i++
	}
	return -1
}
