package forensics

import (
	"bytes"
	"fmt"
	"image"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// Image formats accepted for analysis. Membership is decided from magic
// bytes, never from the declared MIME type or filename.
const (
	FormatJPEG = "jpeg"
	FormatPNG  = "png"
	FormatWebP = "webp"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// SniffFormat identifies the image format from the leading magic bytes.
// It returns the canonical format name and whether the format is on the
// allow-list.
func SniffFormat(data []byte) (string, bool) {
	switch {
	case len(data) >= 3 && data[0] == 0xff && data[1] == 0xd8 && data[2] == 0xff:
		return FormatJPEG, true
	case len(data) >= 8 && bytes.Equal(data[:8], pngMagic):
		return FormatPNG, true
	case len(data) >= 12 && bytes.Equal(data[:4], []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP")):
		return FormatWebP, true
	}
	return "", false
}

// decodeImage decodes an allow-listed byte stream into a pixel buffer.
// The returned format comes from the registered decoder and matches the
// sniffed one for well-formed input.
func decodeImage(data []byte) (image.Image, string, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}
	return img, format, nil
}
