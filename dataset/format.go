package dataset

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/hupe1980/geoplace/codec"
	"github.com/hupe1980/geoplace/internal/conv"
	"github.com/hupe1980/geoplace/model"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
)

// Format identifies the encoding of a dataset blob.
type Format uint8

const (
	// FormatAuto detects the format from the first JSON token.
	FormatAuto Format = iota
	// FormatRecords is a JSON array of region records.
	FormatRecords
	// FormatGeoJSON is a GeoJSON FeatureCollection.
	FormatGeoJSON
)

func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatRecords:
		return "records"
	case FormatGeoJSON:
		return "geojson"
	default:
		return fmt.Sprintf("Unknown(%d)", int(f))
	}
}

// ErrUnknownFormat is returned when the format of a blob cannot be detected.
var ErrUnknownFormat = errors.New("dataset: unknown format")

// RecordError describes a record that could not be decoded.
type RecordError struct {
	Index int
	GeoID string
	Field string
	cause error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("dataset: record %d (geoid %q): %s: %v", e.Index, e.GeoID, e.Field, e.cause)
}

func (e *RecordError) Unwrap() error { return e.cause }

// DetectFormat inspects the first JSON token of data.
func DetectFormat(data []byte) Format {
	trimmed := bytes.TrimLeft(data, " \t\r\n\uFEFF")
	if len(trimmed) == 0 {
		return FormatAuto
	}
	switch trimmed[0] {
	case '[':
		return FormatRecords
	case '{':
		return FormatGeoJSON
	default:
		return FormatAuto
	}
}

type record struct {
	GeoID      string `json:"geoid"`
	State      string `json:"state"`
	Centroid   string `json:"centroid"`
	Population int64  `json:"population"`
}

func decode(data []byte, f Format, c codec.Codec) ([]model.Region, error) {
	if f == FormatAuto {
		f = DetectFormat(data)
	}

	switch f {
	case FormatRecords:
		return decodeRecords(data, c)
	case FormatGeoJSON:
		return decodeGeoJSON(data)
	default:
		return nil, ErrUnknownFormat
	}
}

func decodeRecords(data []byte, c codec.Codec) ([]model.Region, error) {
	var records []record
	if err := c.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("dataset: decode records: %w", err)
	}

	regions := make([]model.Region, len(records))
	for i, rec := range records {
		coord, err := ParseCentroid(rec.Centroid)
		if err != nil {
			return nil, &RecordError{Index: i, GeoID: rec.GeoID, Field: "centroid", cause: err}
		}
		state, err := parseState(rec.State)
		if err != nil {
			return nil, &RecordError{Index: i, GeoID: rec.GeoID, Field: "state", cause: err}
		}
		pop, err := conv.Int64ToUint32(rec.Population)
		if err != nil {
			return nil, &RecordError{Index: i, GeoID: rec.GeoID, Field: "population", cause: err}
		}

		regions[i] = model.Region{
			Coordinate: coord,
			Population: pop,
			State:      state,
			GeoID:      rec.GeoID,
		}
	}

	return regions, nil
}

func decodeGeoJSON(data []byte) ([]model.Region, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("dataset: decode geojson: %w", err)
	}

	regions := make([]model.Region, len(fc.Features))
	for i, f := range fc.Features {
		geoID := stringProperty(f.Properties, "geoid", "GEOID")

		coord, err := featureCentroid(f)
		if err != nil {
			return nil, &RecordError{Index: i, GeoID: geoID, Field: "geometry", cause: err}
		}
		state, err := parseState(stringProperty(f.Properties, "state", "STATEFP"))
		if err != nil {
			return nil, &RecordError{Index: i, GeoID: geoID, Field: "state", cause: err}
		}
		pop, err := populationProperty(f.Properties)
		if err != nil {
			return nil, &RecordError{Index: i, GeoID: geoID, Field: "population", cause: err}
		}

		regions[i] = model.Region{
			Coordinate: coord,
			Population: pop,
			State:      state,
			GeoID:      geoID,
		}
	}

	return regions, nil
}

func featureCentroid(f *geojson.Feature) (model.Coordinate, error) {
	switch g := f.Geometry.(type) {
	case nil:
		if s := stringProperty(f.Properties, "centroid"); s != "" {
			return ParseCentroid(s)
		}
		return model.Coordinate{}, errors.New("missing geometry")
	case orb.Point:
		return model.CoordinateFromPoint(g), nil
	case orb.Polygon, orb.MultiPolygon:
		p, area := planar.CentroidArea(g)
		if area == 0 {
			return model.Coordinate{}, errors.New("degenerate polygon")
		}
		return model.CoordinateFromPoint(p), nil
	default:
		return model.Coordinate{}, fmt.Errorf("unsupported geometry %s", g.GeoJSONType())
	}
}

// ParseCentroid parses a "longitude,latitude" pair.
func ParseCentroid(s string) (model.Coordinate, error) {
	lonStr, latStr, ok := strings.Cut(s, ",")
	if !ok {
		return model.Coordinate{}, fmt.Errorf("want \"lon,lat\", got %q", s)
	}

	lon, err := strconv.ParseFloat(strings.TrimSpace(lonStr), 64)
	if err != nil {
		return model.Coordinate{}, err
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return model.Coordinate{}, err
	}
	if math.Abs(lon) > 180 || math.Abs(lat) > 90 {
		return model.Coordinate{}, fmt.Errorf("coordinate %q out of range", s)
	}

	return model.Coordinate{Longitude: lon, Latitude: lat}, nil
}

func parseState(s string) (uint8, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, err
	}
	return conv.Int64ToUint8(v)
}

func stringProperty(props geojson.Properties, keys ...string) string {
	for _, k := range keys {
		switch v := props[k].(type) {
		case string:
			return v
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}

func populationProperty(props geojson.Properties) (uint32, error) {
	for _, k := range []string{"population", "POPULATION"} {
		switch v := props[k].(type) {
		case float64:
			if v != math.Trunc(v) || v < 0 || v > math.MaxUint32 {
				return 0, fmt.Errorf("invalid population %v", v)
			}
			return conv.Int64ToUint32(int64(v))
		case string:
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return 0, err
			}
			return conv.Int64ToUint32(n)
		}
	}
	return 0, errors.New("missing population")
}
