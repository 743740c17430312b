package emissions

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
)

// Fixed contract names of the coordinate columns. Raw values are integers in
// microdegrees; any other column is passed through untouched.
const (
	ColOriginLat = "poi_lat"
	ColOriginLng = "poi_lng"
	ColDestLat   = "receipt_lat"
	ColDestLng   = "receipt_lng"
)

func isCoordinateColumn(name string) bool {
	switch name {
	case ColOriginLat, ColOriginLng, ColDestLat, ColDestLng:
		return true
	}
	return false
}

// layout maps the positions of the coordinate columns within an input header.
type layout struct {
	originLat, originLng int
	destLat, destLng     int
}

func newLayout(columns []string) (layout, error) {
	l := layout{originLat: -1, originLng: -1, destLat: -1, destLng: -1}
	for i, name := range columns {
		switch name {
		case ColOriginLat:
			l.originLat = i
		case ColOriginLng:
			l.originLng = i
		case ColDestLat:
			l.destLat = i
		case ColDestLng:
			l.destLng = i
		}
	}

	for _, req := range []struct {
		name string
		pos  int
	}{
		{ColOriginLat, l.originLat},
		{ColOriginLng, l.originLng},
		{ColDestLat, l.destLat},
		{ColDestLng, l.destLng},
	} {
		if req.pos < 0 {
			return layout{}, &LoadError{Err: fmt.Errorf("missing required column %q", req.name)}
		}
	}

	return l, nil
}

// parse decodes one record into a partially populated Trip: coordinates
// converted from microdegrees to decimal degrees, pass-through values kept
// verbatim in header order.
func (l layout) parse(record []string, row int) (Trip, error) {
	coord := func(pos int, name string) (float64, error) {
		v, err := strconv.ParseFloat(record[pos], 64)
		if err != nil {
			return 0, &LoadError{Err: fmt.Errorf("row %d: column %q: %w", row, name, err)}
		}
		return v, nil
	}

	originLat, err := coord(l.originLat, ColOriginLat)
	if err != nil {
		return Trip{}, err
	}
	originLng, err := coord(l.originLng, ColOriginLng)
	if err != nil {
		return Trip{}, err
	}
	destLat, err := coord(l.destLat, ColDestLat)
	if err != nil {
		return Trip{}, err
	}
	destLng, err := coord(l.destLng, ColDestLng)
	if err != nil {
		return Trip{}, err
	}

	var extra []string
	for i, v := range record {
		if i == l.originLat || i == l.originLng || i == l.destLat || i == l.destLng {
			continue
		}
		extra = append(extra, v)
	}

	return Trip{
		Origin:      PointFromMicro(originLat, originLng),
		Destination: PointFromMicro(destLat, destLng),
		Extra:       extra,
	}, nil
}

// LoadFile reads up to limit trips from a delimited file on disk.
func LoadFile(path string, limit int) (*Dataset, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &NotFoundError{Path: path}
	}
	if err != nil {
		return nil, &LoadError{Err: err}
	}
	defer f.Close()

	return Load(f, limit)
}

// Load reads up to limit trips from a CSV stream. The first record is the
// header; it must contain the four coordinate columns. Unrecognized columns
// are preserved for the consumer.
func Load(r io.Reader, limit int) (*Dataset, error) {
	if limit <= 0 {
		return nil, &ConfigurationError{Reason: "row limit must be greater than 0"}
	}

	in := csv.NewReader(r)
	header, err := in.Read()
	if err != nil {
		return nil, &LoadError{Err: fmt.Errorf("reading header: %w", err)}
	}

	l, err := newLayout(header)
	if err != nil {
		return nil, err
	}

	ds := &Dataset{Columns: header}
	for len(ds.Trips) < limit {
		record, err := in.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &LoadError{Err: err}
		}

		trip, err := l.parse(record, len(ds.Trips)+1)
		if err != nil {
			return nil, err
		}
		ds.Trips = append(ds.Trips, trip)
	}

	return ds, nil
}

// LoadTable builds a Dataset from an already-materialized table.
func LoadTable(columns []string, rows [][]string, limit int) (*Dataset, error) {
	if limit <= 0 {
		return nil, &ConfigurationError{Reason: "row limit must be greater than 0"}
	}

	l, err := newLayout(columns)
	if err != nil {
		return nil, err
	}

	ds := &Dataset{Columns: columns}
	for i, record := range rows {
		if len(ds.Trips) == limit {
			break
		}
		if len(record) != len(columns) {
			return nil, &LoadError{Err: fmt.Errorf("row %d: got %d fields, want %d", i+1, len(record), len(columns))}
		}

		trip, err := l.parse(record, i+1)
		if err != nil {
			return nil, err
		}
		ds.Trips = append(ds.Trips, trip)
	}

	return ds, nil
}
