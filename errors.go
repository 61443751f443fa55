// SPDX-License-Identifier: EPL-2.0

package wavepeaks

import "errors"

var (
	// ErrWorkerClosed indicates the generation worker shut down before running a job
	ErrWorkerClosed = errors.New("peaks worker closed")

	// ErrUnknownFileFormat indicates a waveform file format other than dat or json
	ErrUnknownFileFormat = errors.New("unknown waveform file format")
)
