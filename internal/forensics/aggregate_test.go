package forensics

import (
	"context"
	"image/color"
	"testing"

	"go.uber.org/zap"
)

func TestAggregateCompleteProfile(t *testing.T) {
	img := solidImage(8, 8, color.NRGBA{R: 60, G: 70, B: 80, A: 255})
	raw := encodePNG(t, img)

	agg := NewAggregator(0, zap.NewNop())
	profile := agg.Aggregate(context.Background(), img, raw, FormatPNG)

	if profile.Histogram == nil {
		t.Errorf("histogram missing: %s", profile.HistogramErr)
	}
	if profile.Noise == nil {
		t.Errorf("noise missing: %s", profile.NoiseErr)
	}
	if profile.Tags == nil {
		t.Error("tags map is nil, want empty map")
	}
	if profile.Metadata.Width != 8 || profile.Metadata.Height != 8 {
		t.Errorf("metadata dimensions = %dx%d, want 8x8", profile.Metadata.Width, profile.Metadata.Height)
	}
	if profile.Metadata.ByteSize != int64(len(raw)) {
		t.Errorf("metadata byte size = %d, want %d", profile.Metadata.ByteSize, len(raw))
	}
	if !profile.PixelEvidenceComplete() {
		t.Error("profile should report complete pixel evidence")
	}
}

func TestAggregateUndecodableBuffer(t *testing.T) {
	raw := []byte("not pixels at all")

	agg := NewAggregator(0, zap.NewNop())
	profile := agg.Aggregate(context.Background(), nil, raw, "")

	if profile.Histogram != nil || profile.HistogramErr == "" {
		t.Error("histogram should be error-flagged for an undecodable buffer")
	}
	if profile.Noise != nil || profile.NoiseErr == "" {
		t.Error("noise should be error-flagged for an undecodable buffer")
	}
	// Metadata still carries what is knowable without pixels.
	if profile.Metadata.ByteSize != int64(len(raw)) {
		t.Errorf("metadata byte size = %d, want %d", profile.Metadata.ByteSize, len(raw))
	}
	if profile.Tags == nil {
		t.Error("tags map is nil, want empty map")
	}
	if profile.PixelEvidenceComplete() {
		t.Error("profile should report incomplete pixel evidence")
	}
}

func TestAggregateCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	img := solidImage(8, 8, color.NRGBA{A: 255})
	agg := NewAggregator(0, zap.NewNop())
	profile := agg.Aggregate(ctx, img, encodePNG(t, img), FormatPNG)

	// Cancellation degrades the pixel extractors but never loses the
	// profile itself.
	if profile.Histogram != nil || profile.Noise != nil {
		t.Error("pixel features should be degraded under a cancelled context")
	}
	if profile.HistogramErr == "" || profile.NoiseErr == "" {
		t.Error("degraded features must carry their error markers")
	}
	if profile.Metadata.Width != 8 {
		t.Errorf("metadata width = %d, want 8", profile.Metadata.Width)
	}
}
