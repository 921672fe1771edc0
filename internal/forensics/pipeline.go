package forensics

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/vishnukant5129/AI-vs-Real-Image/internal/domain"
)

// State tracks where one analysis sits in its lifecycle.
type State int

const (
	StateReceived State = iota
	StateDecoding
	StateExtracting
	StateScoring
	StateCompleted
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateReceived:
		return "received"
	case StateDecoding:
		return "decoding"
	case StateExtracting:
		return "extracting"
	case StateScoring:
		return "scoring"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Pipeline turns raw image bytes into an AnalysisResult. It holds no
// per-request state; concurrent Analyze calls are independent.
type Pipeline struct {
	policy Policy
	agg    *Aggregator
	log    *zap.Logger
}

func NewPipeline(policy Policy, extractorTimeout time.Duration, log *zap.Logger) *Pipeline {
	return &Pipeline{
		policy: policy,
		agg:    NewAggregator(extractorTimeout, log),
		log:    log,
	}
}

// Analyze runs one image end-to-end: decode, concurrent extraction,
// scoring, result assembly. Only a format rejection or a full decode
// failure is returned as an error; individual extractor failures are
// absorbed into the profile. The input buffer is never retained past
// the call.
func (p *Pipeline) Analyze(ctx context.Context, in domain.ImageInput) (*domain.AnalysisResult, error) {
	state := StateReceived
	step := func(next State) {
		state = next
		p.log.Debug("pipeline state",
			zap.String("filename", in.Filename),
			zap.String("state", state.String()))
	}

	step(StateDecoding)
	format, ok := SniffFormat(in.Data)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, in.ContentType)
	}
	img, decodedFormat, err := decodeImage(in.Data)
	if err != nil {
		step(StateFailed)
		p.log.Warn("analysis failed at decode",
			zap.String("filename", in.Filename),
			zap.String("sniffed_format", format),
			zap.Error(err))
		return nil, err
	}

	step(StateExtracting)
	profile := p.agg.Aggregate(ctx, img, in.Data, decodedFormat)

	step(StateScoring)
	verdict, confidence, details := p.policy.Score(profile)

	step(StateCompleted)
	result := &domain.AnalysisResult{
		Filename:       in.Filename,
		Verdict:        verdict,
		Confidence:     confidence,
		RealConfidence: 100 - confidence,
		Details:        details,
		Profile:        profile,
		CreatedAt:      time.Now().UTC(),
	}

	p.log.Info("analysis completed",
		zap.String("filename", in.Filename),
		zap.String("state", state.String()),
		zap.String("result", string(verdict)),
		zap.Int("confidence", confidence))

	return result, nil
}
