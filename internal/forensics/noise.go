package forensics

import (
	"context"
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"

	"github.com/vishnukant5129/AI-vs-Real-Image/internal/domain"
)

// ExtractNoise converts the image to greyscale and walks the samples in
// scan order, taking the absolute difference between each sample and its
// predecessor. Row boundaries are not special: the buffer is treated as
// one flat sequence. The reported value is the population standard
// deviation of those differences, rounded to 2 decimal places.
func ExtractNoise(ctx context.Context, img image.Image) (*domain.NoiseFeatures, error) {
	grey := imaging.Grayscale(img)
	bounds := grey.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("empty pixel buffer")
	}

	var sum, sumSq float64
	var count int
	var prev float64
	first := true

	for y := 0; y < height; y++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row := grey.Pix[y*grey.Stride:]
		for x := 0; x < width; x++ {
			v := float64(row[x*4])
			if !first {
				d := math.Abs(v - prev)
				sum += d
				sumSq += d * d
				count++
			}
			prev = v
			first = false
		}
	}

	if count == 0 {
		return &domain.NoiseFeatures{Std: 0}, nil
	}

	mean := sum / float64(count)
	variance := sumSq/float64(count) - mean*mean
	std := math.Sqrt(math.Max(0, variance))
	return &domain.NoiseFeatures{Std: math.Round(std*100) / 100}, nil
}
