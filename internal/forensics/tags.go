package forensics

import (
	"bytes"
	"strings"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"

	"github.com/vishnukant5129/AI-vs-Real-Image/internal/domain"
)

type tagCollector struct {
	tags domain.TagFeatures
}

func (c *tagCollector) Walk(name exif.FieldName, tag *tiff.Tag) error {
	c.tags[string(name)] = strings.Trim(tag.String(), `"`)
	return nil
}

// ExtractTags reads embedded EXIF capture metadata from the raw byte
// stream. Parse failure and a genuinely tag-free image are the same
// observable state downstream: an empty mapping.
func ExtractTags(data []byte) domain.TagFeatures {
	collector := &tagCollector{tags: domain.TagFeatures{}}

	parsed, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		return collector.tags
	}

	if err := parsed.Walk(collector); err != nil {
		return domain.TagFeatures{}
	}

	return collector.tags
}
