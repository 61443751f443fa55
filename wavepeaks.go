// SPDX-License-Identifier: EPL-2.0

package wavepeaks

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ik5/wavepeaks/audio"
	"github.com/ik5/wavepeaks/formats/aiff"
	"github.com/ik5/wavepeaks/formats/mp3"
	"github.com/ik5/wavepeaks/formats/vorbis"
	"github.com/ik5/wavepeaks/formats/wav"
	"github.com/ik5/wavepeaks/peaks"
)

// FileFormat names a waveform data file encoding.
type FileFormat string

const (
	FormatBinary FileFormat = "dat"
	FormatJSON   FileFormat = "json"
)

// FileFormatOf picks the waveform file format from a file name extension.
// The second result is false for names that are not waveform files.
func FileFormatOf(name string) (FileFormat, bool) {
	switch FileFormat(strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))) {
	case FormatBinary:
		return FormatBinary, true
	case FormatJSON:
		return FormatJSON, true
	}
	return "", false
}

// AudioFormatOf returns the registry key for an audio file name, which is
// its lower case extension.
func AudioFormatOf(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}

// DefaultRegistry returns a registry with every bundled decoder.
func DefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("wave", wav.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("oga", vorbis.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("aif", aiff.Decoder{})
	return r
}

// FromSource reads src to the end and generates its peaks. src is not
// closed.
func FromSource(src audio.Source, opts peaks.Options) (*peaks.Waveform, error) {
	req, err := request(src, opts)
	if err != nil {
		return nil, err
	}
	return peaks.Generate(req)
}

// FromReader decodes r with the default registry decoder for format and
// generates its peaks.
func FromReader(format string, r io.Reader, opts peaks.Options) (*peaks.Waveform, error) {
	src, err := DefaultRegistry().Decode(format, r)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return FromSource(src, opts)
}

func request(src audio.Source, opts peaks.Options) (peaks.Request, error) {
	channels, err := audio.ReadChannels(src, 0)
	if err != nil {
		return peaks.Request{}, fmt.Errorf("%w", err)
	}

	return peaks.Request{
		Options:    opts,
		SampleRate: src.SampleRate(),
		Channels:   channels,
	}, nil
}

// Load reads binary or JSON waveform data. JSON is recognized by a leading
// '{'.
func Load(r io.Reader) (*peaks.Waveform, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if trimmed := bytes.TrimLeft(data, " \t\r\n"); len(trimmed) > 0 && trimmed[0] == '{' {
		return peaks.Create(json.RawMessage(trimmed))
	}
	return peaks.Create(data)
}

// Save writes wf to w as binary data or as JSON.
func Save(w io.Writer, wf *peaks.Waveform, format FileFormat) error {
	switch format {
	case FormatBinary:
		if _, err := wf.WriteTo(w); err != nil {
			return fmt.Errorf("%w", err)
		}
		return nil

	case FormatJSON:
		enc := json.NewEncoder(w)
		if err := enc.Encode(wf); err != nil {
			return fmt.Errorf("%w", err)
		}
		return nil
	}

	return fmt.Errorf("%w: %q", ErrUnknownFileFormat, format)
}
