// SPDX-License-Identifier: EPL-2.0

package peaks

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/ik5/wavepeaks/internal/peakstest"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	obj := fixtureObject(1)
	raw, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	var generic map[string]any
	if err := json.Unmarshal(raw, &generic); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}

	tests := []struct {
		name    string
		data    any
		want    Kind
		wantErr error
	}{
		{name: "binary", data: peakstest.Binary(1, 8, 1), want: KindBinary},
		{name: "binary unknown version", data: []byte{7, 0, 0, 0, 0}, want: KindUnrecognized, wantErr: ErrUnsupportedVersion},
		{name: "too short for a version", data: []byte{1}, want: KindUnrecognized},
		{name: "object value", data: *obj, want: KindStructured},
		{name: "object pointer", data: obj, want: KindStructured},
		{name: "nil object pointer", data: (*Object)(nil), want: KindUnrecognized},
		{name: "raw json", data: json.RawMessage(raw), want: KindStructured},
		{name: "raw json not an object", data: json.RawMessage(`[1, 2]`), want: KindUnrecognized},
		{name: "generic map", data: generic, want: KindStructured},
		{name: "map missing data", data: map[string]any{"sample_rate": 1, "samples_per_pixel": 1, "bits": 8, "length": 0}, want: KindUnrecognized},
		{name: "string", data: "waveform", want: KindUnrecognized},
		{name: "nil", data: nil, want: KindUnrecognized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Classify(tt.data)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Classify() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCreate(t *testing.T) {
	t.Parallel()

	obj := fixtureObject(2)
	raw, _ := json.Marshal(obj)

	var generic map[string]any
	if err := json.Unmarshal(raw, &generic); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}

	inputs := map[string]any{
		"binary":   peakstest.Binary(2, 8, 2),
		"object":   obj,
		"raw json": json.RawMessage(raw),
		"map":      generic,
	}

	for name, data := range inputs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			w, err := Create(data)
			if err != nil {
				t.Fatalf("Create() error = %v", err)
			}
			if w.Channels() != 2 || w.Length() != peakstest.Length {
				t.Errorf("Create() header = %+v", w.Header())
			}
			for c := range 2 {
				assertChannel(t, w, c, peakstest.Min[c], peakstest.Max[c])
			}
		})
	}
}

func TestCreate_DoesNotRetainInput(t *testing.T) {
	t.Parallel()

	data := peakstest.Binary(2, 8, 1)
	w, err := Create(data)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	clear(data)
	if lo, _ := w.Sample(1, 0); lo != -10 {
		t.Errorf("Sample(1, 0) min = %d after clearing input, want -10", lo)
	}
}

func TestCreate_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data any
		want error
	}{
		{name: "unknown type", data: 42, want: ErrUnrecognizedInput},
		{name: "unsupported version", data: []byte{0, 0, 0, 0}, want: ErrUnsupportedVersion},
		{name: "short buffer", data: []byte{}, want: ErrUnrecognizedInput},
		{
			name: "map with wrong field type",
			data: map[string]any{"sample_rate": "fast", "samples_per_pixel": 1, "bits": 8, "length": 0, "data": []any{}},
			want: ErrUnrecognizedInput,
		},
		{
			name: "map with length mismatch",
			data: map[string]any{"sample_rate": 8000, "samples_per_pixel": 1, "bits": 8, "length": 2, "data": []any{1, 2}},
			want: ErrLengthMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := Create(tt.data); !errors.Is(err, tt.want) {
				t.Errorf("Create() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	for kind, want := range map[Kind]string{
		KindUnrecognized: "unrecognized",
		KindStructured:   "structured",
		KindBinary:       "binary",
		Kind(99):         "unrecognized",
	} {
		if got := kind.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(kind), got, want)
		}
	}
}
