// SPDX-License-Identifier: EPL-2.0

package peaks

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Kind is the representation a value passed to Create was recognized as.
type Kind int

const (
	KindUnrecognized Kind = iota
	KindStructured
	KindBinary
)

func (k Kind) String() string {
	switch k {
	case KindStructured:
		return "structured"
	case KindBinary:
		return "binary"
	default:
		return "unrecognized"
	}
}

// keys a generic map must carry to be treated as structured data
var structuredKeys = []string{"sample_rate", "samples_per_pixel", "bits", "length", "data"}

// Classify reports which representation data holds.
//
// A []byte is binary data when its first four bytes hold a known version;
// an unknown version is reported as ErrUnsupportedVersion. Object, *Object,
// json.RawMessage and map[string]any are structured when they carry every
// required field.
func Classify(data any) (Kind, error) {
	switch v := data.(type) {
	case []byte:
		if _, err := peekVersion(v); err != nil {
			if errors.Is(err, ErrShortBuffer) {
				return KindUnrecognized, nil
			}
			return KindUnrecognized, err
		}
		return KindBinary, nil

	case Object:
		return KindStructured, nil

	case *Object:
		if v == nil {
			return KindUnrecognized, nil
		}
		return KindStructured, nil

	case json.RawMessage:
		var m map[string]any
		if err := json.Unmarshal(v, &m); err != nil {
			return KindUnrecognized, nil
		}
		return classifyMap(m), nil

	case map[string]any:
		return classifyMap(v), nil
	}

	return KindUnrecognized, nil
}

func classifyMap(m map[string]any) Kind {
	if m == nil {
		return KindUnrecognized
	}
	for _, key := range structuredKeys {
		if _, ok := m[key]; !ok {
			return KindUnrecognized
		}
	}
	return KindStructured
}

// Create builds a Waveform from binary or structured data. The input is
// never retained.
func Create(data any) (*Waveform, error) {
	kind, err := Classify(data)
	if err != nil {
		return nil, err
	}

	switch kind {
	case KindBinary:
		return New(data.([]byte))
	case KindStructured:
		obj, err := toObject(data)
		if err != nil {
			return nil, err
		}
		return obj.Waveform()
	}

	return nil, fmt.Errorf("%w: %T", ErrUnrecognizedInput, data)
}

func toObject(data any) (*Object, error) {
	switch v := data.(type) {
	case Object:
		return &v, nil
	case *Object:
		return v, nil
	case json.RawMessage:
		var obj Object
		if err := json.Unmarshal(v, &obj); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnrecognizedInput, err)
		}
		return &obj, nil
	case map[string]any:
		return decodeMap(v)
	}
	return nil, fmt.Errorf("%w: %T", ErrUnrecognizedInput, data)
}

// decodeMap fills an Object from a generic map, such as one produced by
// decoding JSON into map[string]any. Field names follow the json tags.
func decodeMap(m map[string]any) (*Object, error) {
	var obj Object

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  &obj,
	})
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if err := dec.Decode(m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnrecognizedInput, err)
	}
	return &obj, nil
}
