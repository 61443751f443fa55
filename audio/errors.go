// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// ErrNoChannels indicates a source reporting fewer than one channel
	ErrNoChannels = errors.New("source has no channels")

	// ErrUnknownFormat indicates no decoder is registered for a format key
	ErrUnknownFormat = errors.New("unknown audio format")
)
