package forensics

import (
	"fmt"

	"github.com/vishnukant5129/AI-vs-Real-Image/internal/domain"
)

// Policy holds the scoring parameters. The values are heuristic policy
// knobs, not validated forensic constants; any of them may be tuned per
// deployment, and the whole policy may be swapped for a learned model
// without touching the rest of the pipeline.
type Policy struct {
	// EmptyTagsBonus fires when no capture metadata was found.
	EmptyTagsBonus int

	// LowNoiseBonus fires when noise std falls below NoiseStdThreshold.
	LowNoiseBonus     int
	NoiseStdThreshold float64

	// FlatnessBonus fires when the histogram's deviation from uniform
	// exceeds FlatnessThreshold across all 48 buckets.
	FlatnessBonus     int
	FlatnessThreshold float64

	// SmallImageBonus fires for a JPEG under SmallImageMaxBytes.
	SmallImageBonus    int
	SmallImageMaxBytes int64

	// DecisionThreshold is the score above which the verdict flips to
	// AI-generated.
	DecisionThreshold int
}

// DefaultPolicy returns the baseline heuristic parameters.
func DefaultPolicy() Policy {
	return Policy{
		EmptyTagsBonus:     10,
		LowNoiseBonus:      30,
		NoiseStdThreshold:  5.0,
		FlatnessBonus:      10,
		FlatnessThreshold:  2.0,
		SmallImageBonus:    10,
		SmallImageMaxBytes: 50 * 1024,
		DecisionThreshold:  40,
	}
}

// Score turns a forensic profile into a verdict, a confidence in
// [0,100] and one explanation line per fired rule, in evaluation order.
// It is a pure function of the profile and the policy parameters:
// identical input always yields an identical, fully ordered result.
func (p Policy) Score(profile domain.ForensicProfile) (domain.Verdict, int, []string) {
	score := 0
	details := []string{}

	if len(profile.Tags) == 0 {
		score += p.EmptyTagsBonus
		details = append(details, "no embedded capture metadata (EXIF) found")
	}

	if profile.Noise != nil && profile.Noise.Std < p.NoiseStdThreshold {
		score += p.LowNoiseBonus
		details = append(details, fmt.Sprintf(
			"unnaturally smooth image: noise std %.2f below %.2f", profile.Noise.Std, p.NoiseStdThreshold))
	}

	if profile.Histogram != nil {
		if flat := HistogramDeviation(profile.Histogram); flat > p.FlatnessThreshold {
			score += p.FlatnessBonus
			details = append(details, fmt.Sprintf(
				"color distribution concentrated in few intensity buckets (deviation %.2f)", flat))
		}
	}

	if profile.Metadata.Format == FormatJPEG && profile.Metadata.ByteSize > 0 &&
		profile.Metadata.ByteSize < p.SmallImageMaxBytes {
		score += p.SmallImageBonus
		details = append(details, fmt.Sprintf(
			"unusually small JPEG payload: %d bytes", profile.Metadata.ByteSize))
	}

	// With pixel evidence missing the surviving signals are weaker, so
	// the score is pulled halfway toward the uncertainty midpoint.
	if !profile.PixelEvidenceComplete() {
		score += (50 - score) / 2
		details = append(details, "pixel features unavailable; verdict based on partial evidence")
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	verdict := domain.VerdictReal
	if score > p.DecisionThreshold {
		verdict = domain.VerdictAIGenerated
	}
	return verdict, score, details
}
