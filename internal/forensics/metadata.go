package forensics

import (
	"image"

	"github.com/vishnukant5129/AI-vs-Real-Image/internal/domain"
)

// ExtractMetadata reads the decoded dimensions alongside the encoded
// format and original byte length. img may be nil when decoding failed,
// in which case only the byte size carries information.
func ExtractMetadata(img image.Image, format string, byteSize int64) domain.MetadataFeatures {
	meta := domain.MetadataFeatures{
		Format:   format,
		ByteSize: byteSize,
	}
	if img != nil {
		bounds := img.Bounds()
		meta.Width = bounds.Dx()
		meta.Height = bounds.Dy()
	}
	return meta
}
