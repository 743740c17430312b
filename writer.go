package emissions

import (
	"encoding/csv"
	"io"
	"strconv"
)

// Derived column names appended after the input columns, in this order.
var derivedColumns = []string{"distance_km", "co2_kg", "suggest_ev", "ev_saving_kg", "ev_priority_score"}

// WriteCSV writes the enriched table: every input column in input order,
// coordinates in decimal degrees, then the derived columns appended. Row
// count and order match the collection.
func (d *Dataset) WriteCSV(w io.Writer) error {
	out := csv.NewWriter(w)

	header := make([]string, 0, len(d.Columns)+len(derivedColumns))
	header = append(header, d.Columns...)
	header = append(header, derivedColumns...)
	if err := out.Write(header); err != nil {
		return err
	}

	record := make([]string, 0, len(header))
	for i := range d.Trips {
		t := &d.Trips[i]
		record = record[:0]

		extra := 0
		for _, name := range d.Columns {
			switch name {
			case ColOriginLat:
				record = append(record, formatFloat(t.Origin.Lat))
			case ColOriginLng:
				record = append(record, formatFloat(t.Origin.Lng))
			case ColDestLat:
				record = append(record, formatFloat(t.Destination.Lat))
			case ColDestLng:
				record = append(record, formatFloat(t.Destination.Lng))
			default:
				record = append(record, t.Extra[extra])
				extra++
			}
		}

		record = append(record,
			formatFloat(t.DistanceKM),
			formatFloat(t.CO2KG),
			strconv.FormatBool(t.SuggestEV),
			formatFloat(t.EVSavingKG),
			formatFloat(t.EVPriorityScore),
		)

		if err := out.Write(record); err != nil {
			return err
		}
	}

	out.Flush()
	return out.Error()
}

// formatFloat renders with the shortest representation that survives a
// round trip, so no precision is invented or lost.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
