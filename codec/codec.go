// Package codec centralizes JSON encoding for datasets and command output.
//
// Two interchangeable implementations are registered: the standard library
// ("json") and github.com/goccy/go-json ("go-json"). Both accept the same
// input and produce the same output.
package codec

import (
	"encoding/json"
	"slices"

	gojson "github.com/goccy/go-json"
)

// Codec encodes and decodes values. Implementations must be safe for
// concurrent use.
type Codec interface {
	Name() string
	Marshal(v any) ([]byte, error)
	// MarshalIndent is Marshal with two-space indentation.
	MarshalIndent(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// Default decodes datasets unless another codec is configured.
var Default Codec = GoJSON{}

var registry = map[string]Codec{
	JSON{}.Name():   JSON{},
	GoJSON{}.Name(): GoJSON{},
}

// ByName returns a registered codec.
func ByName(name string) (Codec, bool) {
	c, ok := registry[name]
	return c, ok
}

// Names returns the registered codec names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// JSON uses encoding/json.
type JSON struct{}

func (JSON) Name() string                        { return "json" }
func (JSON) Marshal(v any) ([]byte, error)       { return json.Marshal(v) }
func (JSON) MarshalIndent(v any) ([]byte, error) { return json.MarshalIndent(v, "", "  ") }
func (JSON) Unmarshal(data []byte, v any) error  { return json.Unmarshal(data, v) }

// GoJSON uses github.com/goccy/go-json, which decodes the county datasets
// noticeably faster than encoding/json.
type GoJSON struct{}

func (GoJSON) Name() string                        { return "go-json" }
func (GoJSON) Marshal(v any) ([]byte, error)       { return gojson.Marshal(v) }
func (GoJSON) MarshalIndent(v any) ([]byte, error) { return gojson.MarshalIndent(v, "", "  ") }
func (GoJSON) Unmarshal(data []byte, v any) error  { return gojson.Unmarshal(data, v) }
