package domain

import (
	"time"
)

// Verdict is the binary classification produced for an analyzed image.
type Verdict string

const (
	VerdictReal        Verdict = "Real"
	VerdictAIGenerated Verdict = "AI-generated"
)

// ImageInput is one uploaded image as received at the system boundary.
// The buffer is owned by a single analysis call and never retained.
type ImageInput struct {
	Data        []byte
	ContentType string
	Filename    string
}

// MetadataFeatures are the basic decoded-image properties.
type MetadataFeatures struct {
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Format   string `json:"format"`
	ByteSize int64  `json:"byte_size"`
}

// TagFeatures maps embedded capture metadata (EXIF) tag names to their
// values. An empty map means "no capture metadata"; a parse failure is
// reported the same way.
type TagFeatures map[string]string

// ColorHistogramFeatures holds, per RGB channel, the normalized
// distribution of intensities into 16 equal-width buckets. Each channel
// sums to 1.0 up to floating rounding.
type ColorHistogramFeatures struct {
	R []float64 `json:"r"`
	G []float64 `json:"g"`
	B []float64 `json:"b"`
}

// NoiseFeatures is a roughness proxy: the standard deviation of absolute
// differences between adjacent greyscale samples in scan order. Low
// values indicate unnaturally smooth imagery.
type NoiseFeatures struct {
	Std float64 `json:"std"`
}

// ForensicProfile bundles everything extracted from one image. A
// pixel-dependent feature is nil with the matching error string set
// when its extractor failed or timed out; the profile as a whole is
// never discarded because of a partial failure.
type ForensicProfile struct {
	Metadata     MetadataFeatures        `json:"metadata"`
	Tags         TagFeatures             `json:"tags"`
	Histogram    *ColorHistogramFeatures `json:"histogram,omitempty"`
	HistogramErr string                  `json:"histogram_error,omitempty"`
	Noise        *NoiseFeatures          `json:"noise,omitempty"`
	NoiseErr     string                  `json:"noise_error,omitempty"`
}

// PixelEvidenceComplete reports whether both pixel-dependent extractors
// succeeded.
func (p ForensicProfile) PixelEvidenceComplete() bool {
	return p.Histogram != nil && p.Noise != nil
}

// AnalysisResult is the outcome of one analysis. It is immutable after
// construction except for ID, which the record store assigns when the
// result is persisted.
type AnalysisResult struct {
	ID             string          `json:"id,omitempty"`
	Filename       string          `json:"filename"`
	Verdict        Verdict         `json:"result"`
	Confidence     int             `json:"confidence"`
	RealConfidence int             `json:"realConfidence"`
	Details        []string        `json:"details"`
	Profile        ForensicProfile `json:"profile"`
	CreatedAt      time.Time       `json:"created_at"`
}
