package forensics

import (
	"context"
	"fmt"
	"image"
	"image/color"

	"github.com/vishnukant5129/AI-vs-Real-Image/internal/domain"
)

// HistogramBuckets is the fixed per-channel bucket count. Profiles are
// only comparable across images at the same resolution, so this is not
// configurable.
const HistogramBuckets = 16

// ExtractHistogram buckets each pixel's R, G and B intensities into 16
// equal-width buckets and normalizes every channel by the total pixel
// count. Alpha is dropped before bucketing. The context is checked
// between rows so a cancelled analysis stops promptly on large images.
func ExtractHistogram(ctx context.Context, img image.Image) (*domain.ColorHistogramFeatures, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("empty pixel buffer")
	}

	var counts [3][HistogramBuckets]float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			counts[0][c.R>>4]++
			counts[1][c.G>>4]++
			counts[2][c.B>>4]++
		}
	}

	total := float64(width * height)
	hist := &domain.ColorHistogramFeatures{
		R: make([]float64, HistogramBuckets),
		G: make([]float64, HistogramBuckets),
		B: make([]float64, HistogramBuckets),
	}
	for i := 0; i < HistogramBuckets; i++ {
		hist.R[i] = counts[0][i] / total
		hist.G[i] = counts[1][i] / total
		hist.B[i] = counts[2][i] / total
	}
	return hist, nil
}

// HistogramDeviation sums the absolute deviation from the uniform
// distribution across all 48 buckets. High deviation means intensity
// mass piled into few buckets, a trait of flat synthetic fills.
func HistogramDeviation(hist *domain.ColorHistogramFeatures) float64 {
	uniform := 1.0 / HistogramBuckets
	var flat float64
	for _, channel := range [][]float64{hist.R, hist.G, hist.B} {
		for _, v := range channel {
			d := v - uniform
			if d < 0 {
				d = -d
			}
			flat += d
		}
	}
	return flat
}
