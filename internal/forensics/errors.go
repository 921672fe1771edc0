package forensics

import (
	"errors"
)

// Caller-visible failure kinds. Everything else the pipeline absorbs
// into a degraded profile.
var (
	// ErrUnsupportedFormat means the bytes are not on the accepted
	// format allow-list. Detected before decoding begins.
	ErrUnsupportedFormat = errors.New("unsupported image format")

	// ErrTooLarge means the input exceeds the configured maximum byte
	// size. Detected before decoding begins.
	ErrTooLarge = errors.New("image exceeds maximum accepted size")

	// ErrDecodeFailed means the bytes claim a supported format but
	// cannot be decoded (corrupt or truncated stream).
	ErrDecodeFailed = errors.New("image could not be decoded")
)

// IsInputRejected reports whether err belongs to the pre-decode
// rejection class (wrong format or oversize).
func IsInputRejected(err error) bool {
	return errors.Is(err, ErrUnsupportedFormat) || errors.Is(err, ErrTooLarge)
}
