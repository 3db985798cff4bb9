// Package codec encodes permutation listings for machine consumption.
package codec

import "fmt"

// Codec encodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// MustMarshal is a helper for tests and examples.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}

// Listing is the encoded form of a permutation run.
type Listing struct {
	Width  uint32   `json:"width"`
	Ones   uint32   `json:"ones"`
	Count  uint64   `json:"count"`
	Values []uint32 `json:"values"`
}
