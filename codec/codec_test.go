package codec

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	GeoID      string `json:"geoid"`
	State      string `json:"state"`
	Centroid   string `json:"centroid"`
	Population int64  `json:"population"`
}

func TestByName(t *testing.T) {
	assert.Equal(t, []string{"go-json", "json"}, Names())

	for _, name := range Names() {
		c, ok := ByName(name)
		require.True(t, ok)
		assert.Equal(t, name, c.Name())
	}

	_, ok := ByName("msgpack")
	assert.False(t, ok)
}

func TestCodecsAgree(t *testing.T) {
	input := []byte(`[
		{"geoid":"01001","state":"01","centroid":"-86.64,32.53","population":55869},
		{"geoid":"06037","state":"06","centroid":"-118.23,34.05","population":10039107,"extra":true}
	]`)

	for _, c := range []Codec{JSON{}, GoJSON{}} {
		t.Run(c.Name(), func(t *testing.T) {
			var got []record
			require.NoError(t, c.Unmarshal(input, &got))
			assert.Equal(t, []record{
				{GeoID: "01001", State: "01", Centroid: "-86.64,32.53", Population: 55869},
				{GeoID: "06037", State: "06", Centroid: "-118.23,34.05", Population: 10039107},
			}, got)

			var bad []record
			assert.Error(t, c.Unmarshal([]byte(`[{"geoid":1}]`), &bad))

			compact, err := c.Marshal(got[0])
			require.NoError(t, err)
			assert.JSONEq(t, `{"geoid":"01001","state":"01","centroid":"-86.64,32.53","population":55869}`, string(compact))

			indented, err := c.MarshalIndent([]int{1})
			require.NoError(t, err)
			assert.Equal(t, "[\n  1\n]", string(indented))
		})
	}
}

func BenchmarkUnmarshal(b *testing.B) {
	var data []byte
	data = append(data, '[')
	for i := range 3000 {
		if i > 0 {
			data = append(data, ',')
		}
		data = fmt.Appendf(data, `{"geoid":"%05d","state":"%02d","centroid":"%f,%f","population":%d}`,
			i, i%56+1, -120+float64(i%50), 30+float64(i%20), 1000+i)
	}
	data = append(data, ']')

	for _, c := range []Codec{JSON{}, GoJSON{}} {
		b.Run(c.Name(), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(data)))
			for b.Loop() {
				var out []record
				if err := c.Unmarshal(data, &out); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
