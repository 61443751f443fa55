// SPDX-License-Identifier: EPL-2.0

package peaks

import "errors"

var (
	// ErrUnrecognizedInput indicates the value is neither structured nor binary waveform data
	ErrUnrecognizedInput = errors.New("unrecognized waveform data")

	// ErrUnsupportedVersion indicates a binary header version outside 1, 2 and 3
	ErrUnsupportedVersion = errors.New("unsupported waveform data version")

	// ErrShortBuffer indicates the binary data is shorter than its header declares
	ErrShortBuffer = errors.New("waveform data too short")

	// ErrInvalidHeader indicates a header field is out of range
	ErrInvalidHeader = errors.New("invalid waveform header")

	// ErrLengthMismatch indicates the structured data array disagrees with length and channels
	ErrLengthMismatch = errors.New("length mismatch in waveform data")

	// ErrSampleOutOfRange indicates a structured data value outside the declared bit depth
	ErrSampleOutOfRange = errors.New("sample value out of range")

	// ErrInvalidChannelIndex indicates a channel index outside [0, channels)
	ErrInvalidChannelIndex = errors.New("invalid channel index")

	// ErrInvalidResampleOptions indicates missing or out of range resample options
	ErrInvalidResampleOptions = errors.New("invalid resample options")

	// ErrUpsampleNotAllowed indicates a target scale finer than the source scale
	ErrUpsampleNotAllowed = errors.New("scale too low, resampling cannot increase resolution")

	// ErrIncompatibleWaveforms indicates waveforms with different metadata were concatenated
	ErrIncompatibleWaveforms = errors.New("waveforms are incompatible")

	// ErrEmptyInput indicates concatenation of zero waveforms
	ErrEmptyInput = errors.New("one or more waveforms are required")

	// ErrInvalidGenerateOptions indicates out of range generation options
	ErrInvalidGenerateOptions = errors.New("invalid generate options")
)
