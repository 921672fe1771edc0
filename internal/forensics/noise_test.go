package forensics

import (
	"context"
	"image"
	"image/color"
	"math"
	"testing"
)

func TestExtractNoiseUniformImage(t *testing.T) {
	img := solidImage(4, 4, color.NRGBA{R: 100, G: 100, B: 100, A: 255})

	noise, err := ExtractNoise(context.Background(), img)
	if err != nil {
		t.Fatalf("ExtractNoise: %v", err)
	}
	if noise.Std != 0 {
		t.Errorf("uniform image noise std = %v, want 0", noise.Std)
	}
}

func TestExtractNoiseSinglePixel(t *testing.T) {
	img := solidImage(1, 1, color.NRGBA{R: 40, G: 40, B: 40, A: 255})

	noise, err := ExtractNoise(context.Background(), img)
	if err != nil {
		t.Fatalf("ExtractNoise: %v", err)
	}
	if noise.Std != 0 {
		t.Errorf("single pixel noise std = %v, want 0", noise.Std)
	}
}

func TestExtractNoiseKnownPattern(t *testing.T) {
	// Greyscale samples 0,0,255,255 give differences 0,255,0: mean 85,
	// population variance 14450, std 120.2081... rounded to 120.21.
	img := image.NewGray(image.Rect(0, 0, 4, 1))
	copy(img.Pix, []uint8{0, 0, 255, 255})

	noise, err := ExtractNoise(context.Background(), img)
	if err != nil {
		t.Fatalf("ExtractNoise: %v", err)
	}
	if noise.Std != 120.21 {
		t.Errorf("noise std = %v, want 120.21", noise.Std)
	}
}

func TestExtractNoiseNonNegative(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 9, 7))
	for y := 0; y < 7; y++ {
		for x := 0; x < 9; x++ {
			v := uint8((x * y * 37) % 256)
			img.SetNRGBA(x, y, color.NRGBA{R: v, G: v / 3, B: 255 - v, A: 255})
		}
	}

	noise, err := ExtractNoise(context.Background(), img)
	if err != nil {
		t.Fatalf("ExtractNoise: %v", err)
	}
	if noise.Std < 0 || math.IsNaN(noise.Std) {
		t.Errorf("noise std = %v, want >= 0", noise.Std)
	}
}

func TestExtractNoiseCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	img := solidImage(16, 16, color.NRGBA{A: 255})
	if _, err := ExtractNoise(ctx, img); err == nil {
		t.Fatal("expected error from cancelled context")
	}
}
