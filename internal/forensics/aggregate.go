package forensics

import (
	"context"
	"fmt"
	"image"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/vishnukant5129/AI-vs-Real-Image/internal/domain"
)

// DefaultExtractorTimeout bounds a single extractor's wall-clock time.
// A timeout is absorbed the same way as any other extractor failure.
const DefaultExtractorTimeout = 500 * time.Millisecond

// Aggregator fans the feature extractors out over one decoded image and
// assembles a ForensicProfile. One extractor failing never blocks or
// discards the others' results.
type Aggregator struct {
	timeout time.Duration
	log     *zap.Logger
}

func NewAggregator(timeout time.Duration, log *zap.Logger) *Aggregator {
	if timeout <= 0 {
		timeout = DefaultExtractorTimeout
	}
	return &Aggregator{timeout: timeout, log: log}
}

// Aggregate runs all extractors concurrently against the same read-only
// decoded buffer. When img is nil (undecodable input examined directly),
// the pixel-dependent extractors are skipped and error-flagged while the
// byte-level extractors still run.
func (a *Aggregator) Aggregate(ctx context.Context, img image.Image, raw []byte, format string) domain.ForensicProfile {
	profile := domain.ForensicProfile{}

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		profile.Metadata = ExtractMetadata(img, format, int64(len(raw)))
	}()
	go func() {
		defer wg.Done()
		profile.Tags = ExtractTags(raw)
	}()

	if img == nil {
		profile.HistogramErr = ErrDecodeFailed.Error()
		profile.NoiseErr = ErrDecodeFailed.Error()
		wg.Wait()
		return profile
	}

	wg.Add(2)
	go func() {
		defer wg.Done()
		hist, err := a.runHistogram(ctx, img)
		if err != nil {
			profile.HistogramErr = err.Error()
			a.log.Warn("histogram extraction degraded", zap.Error(err))
			return
		}
		profile.Histogram = hist
	}()
	go func() {
		defer wg.Done()
		noise, err := a.runNoise(ctx, img)
		if err != nil {
			profile.NoiseErr = err.Error()
			a.log.Warn("noise extraction degraded", zap.Error(err))
			return
		}
		profile.Noise = noise
	}()

	wg.Wait()
	return profile
}

func (a *Aggregator) runHistogram(ctx context.Context, img image.Image) (hist *domain.ColorHistogramFeatures, err error) {
	defer recoverExtractor(&err)
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()
	return ExtractHistogram(ctx, img)
}

func (a *Aggregator) runNoise(ctx context.Context, img image.Image) (noise *domain.NoiseFeatures, err error) {
	defer recoverExtractor(&err)
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()
	return ExtractNoise(ctx, img)
}

// recoverExtractor turns an extractor panic into an ordinary extraction
// failure so one bad buffer cannot take the whole analysis down.
func recoverExtractor(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("extractor panic: %v", r)
	}
}
