package dataset

import (
	"testing"

	"github.com/hupe1980/geoplace/codec"
	"github.com/hupe1980/geoplace/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const recordsJSON = `[
	{"geoid": "01001", "state": "01", "centroid": "-86.64,32.53", "population": 55869},
	{"geoid": "02013", "state": "02", "centroid": "-162.0,55.0", "population": 3337},
	{"geoid": "06037", "state": "06", "centroid": "-118.23, 34.05", "population": 10039107},
	{"geoid": "72001", "state": "72", "centroid": "-66.7,18.2", "population": 18181}
]`

const featuresJSON = `{
	"type": "FeatureCollection",
	"features": [
		{
			"type": "Feature",
			"geometry": {"type": "Point", "coordinates": [-86.64, 32.53]},
			"properties": {"GEOID": "01001", "STATEFP": "01", "POPULATION": 55869}
		},
		{
			"type": "Feature",
			"geometry": {"type": "Polygon", "coordinates": [[[0, 0], [2, 0], [2, 2], [0, 2], [0, 0]]]},
			"properties": {"geoid": "99001", "state": 9, "population": "42"}
		},
		{
			"type": "Feature",
			"geometry": null,
			"properties": {"geoid": "99002", "state": "9", "population": 7, "centroid": "1.5,2.5"}
		}
	]
}`

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, FormatRecords, DetectFormat([]byte("  \n[{}]")))
	assert.Equal(t, FormatGeoJSON, DetectFormat([]byte(`{"type":"FeatureCollection"}`)))
	assert.Equal(t, FormatAuto, DetectFormat([]byte("geoid,state")))
	assert.Equal(t, FormatAuto, DetectFormat(nil))
}

func TestDecodeRecords(t *testing.T) {
	for _, c := range []codec.Codec{codec.JSON{}, codec.GoJSON{}} {
		t.Run(c.Name(), func(t *testing.T) {
			regions, err := Decode([]byte(recordsJSON), WithCodec(c))
			require.NoError(t, err)
			require.Len(t, regions, 4)

			assert.Equal(t, model.Region{
				Coordinate: model.Coordinate{Longitude: -118.23, Latitude: 34.05},
				Population: 10039107,
				State:      6,
				GeoID:      "06037",
				Index:      2,
			}, regions[2])
		})
	}
}

func TestDecodeRecordsFiltered(t *testing.T) {
	regions, err := Decode([]byte(recordsJSON), WithFilter(Mainland()))
	require.NoError(t, err)
	require.Len(t, regions, 2)

	assert.Equal(t, "01001", regions[0].GeoID)
	assert.Equal(t, "06037", regions[1].GeoID)
	require.NoError(t, model.ValidateIndices(regions))
}

func TestDecodeGeoJSON(t *testing.T) {
	regions, err := Decode([]byte(featuresJSON))
	require.NoError(t, err)
	require.Len(t, regions, 3)

	assert.Equal(t, model.Region{
		Coordinate: model.Coordinate{Longitude: -86.64, Latitude: 32.53},
		Population: 55869,
		State:      1,
		GeoID:      "01001",
		Index:      0,
	}, regions[0])

	assert.InDelta(t, 1.0, regions[1].Coordinate.Longitude, 1e-12)
	assert.InDelta(t, 1.0, regions[1].Coordinate.Latitude, 1e-12)
	assert.Equal(t, uint32(42), regions[1].Population)
	assert.Equal(t, uint8(9), regions[1].State)

	assert.Equal(t, model.Coordinate{Longitude: 1.5, Latitude: 2.5}, regions[2].Coordinate)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		field string
	}{
		{"BadCentroid", `[{"geoid":"1","state":"01","centroid":"-86.64","population":1}]`, "centroid"},
		{"CentroidRange", `[{"geoid":"1","state":"01","centroid":"-200,10","population":1}]`, "centroid"},
		{"BadState", `[{"geoid":"1","state":"AL","centroid":"1,2","population":1}]`, "state"},
		{"StateOverflow", `[{"geoid":"1","state":"300","centroid":"1,2","population":1}]`, "state"},
		{"NegativePopulation", `[{"geoid":"1","state":"01","centroid":"1,2","population":-5}]`, "population"},
		{"PopulationOverflow", `[{"geoid":"1","state":"01","centroid":"1,2","population":5000000000}]`, "population"},
		{"GeoJSONMissingPopulation", `{"type":"FeatureCollection","features":[{"type":"Feature","geometry":{"type":"Point","coordinates":[1,2]},"properties":{"geoid":"1","state":"01"}}]}`, "population"},
		{"GeoJSONLine", `{"type":"FeatureCollection","features":[{"type":"Feature","geometry":{"type":"LineString","coordinates":[[1,2],[3,4]]},"properties":{"geoid":"1","state":"01","population":1}}]}`, "geometry"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.input))
			require.Error(t, err)

			var re *RecordError
			require.ErrorAs(t, err, &re)
			assert.Equal(t, tt.field, re.Field)
			assert.Equal(t, 0, re.Index)
			assert.Equal(t, "1", re.GeoID)
		})
	}

	_, err := Decode([]byte("geoid,state\n"))
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = Decode([]byte(`[{"geoid": 1}]`))
	assert.Error(t, err)
}

func TestParseCentroid(t *testing.T) {
	c, err := ParseCentroid("-2.3488,48.85341")
	require.NoError(t, err)
	assert.Equal(t, model.Coordinate{Longitude: -2.3488, Latitude: 48.85341}, c)

	for _, bad := range []string{"", "1", "a,b", "1,b", "0,91"} {
		_, err := ParseCentroid(bad)
		assert.Error(t, err, bad)
	}
}
