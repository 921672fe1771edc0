package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/vishnukant5129/AI-vs-Real-Image/internal/config"
	"github.com/vishnukant5129/AI-vs-Real-Image/internal/domain"
	"github.com/vishnukant5129/AI-vs-Real-Image/internal/forensics"
	"github.com/vishnukant5129/AI-vs-Real-Image/internal/repository"
)

type AnalysisService interface {
	// Analyze gates the input, runs the forensic pipeline and persists
	// the result best-effort. Persistence failure never changes the
	// returned result.
	Analyze(ctx context.Context, fileBytes []byte, filename, contentType string) (*domain.AnalysisResult, error)
	// History returns previously recorded analyses newest-first. An
	// unreachable store yields an empty list, never an error.
	History(ctx context.Context, limit int) []domain.AnalysisResult
}

type analysisService struct {
	store    repository.RecordStore
	pipeline *forensics.Pipeline
	cfg      *config.Config
	log      *zap.Logger
}

func NewAnalysisService(store repository.RecordStore, cfg *config.Config, log *zap.Logger) AnalysisService {
	policy := forensics.Policy{
		EmptyTagsBonus:     cfg.Forensics.EmptyTagsBonus,
		LowNoiseBonus:      cfg.Forensics.LowNoiseBonus,
		NoiseStdThreshold:  cfg.Forensics.NoiseStdThreshold,
		FlatnessBonus:      cfg.Forensics.FlatnessBonus,
		FlatnessThreshold:  cfg.Forensics.FlatnessThreshold,
		SmallImageBonus:    cfg.Forensics.SmallImageBonus,
		SmallImageMaxBytes: cfg.Forensics.SmallImageMaxBytes,
		DecisionThreshold:  cfg.Forensics.DecisionThreshold,
	}
	return &analysisService{
		store:    store,
		pipeline: forensics.NewPipeline(policy, cfg.Forensics.ExtractorTimeout, log),
		cfg:      cfg,
		log:      log,
	}
}

func (s *analysisService) Analyze(ctx context.Context, fileBytes []byte, filename, contentType string) (*domain.AnalysisResult, error) {
	if int64(len(fileBytes)) > s.cfg.App.MaxUploadSize {
		return nil, fmt.Errorf("%w: %d bytes over limit %d",
			forensics.ErrTooLarge, len(fileBytes), s.cfg.App.MaxUploadSize)
	}

	format, ok := forensics.SniffFormat(fileBytes)
	if !ok || !s.formatAllowed(format) {
		return nil, fmt.Errorf("%w: accepted formats are %v",
			forensics.ErrUnsupportedFormat, s.cfg.App.AllowedFormats)
	}

	result, err := s.pipeline.Analyze(ctx, domain.ImageInput{
		Data:        fileBytes,
		ContentType: contentType,
		Filename:    filename,
	})
	if err != nil {
		return nil, err
	}

	s.persist(ctx, result)
	return result, nil
}

// persist hands the result to the record store when one is reachable.
// Failures are logged and swallowed: the caller already holds a complete
// result.
func (s *analysisService) persist(ctx context.Context, result *domain.AnalysisResult) {
	if s.store == nil || !s.store.Available(ctx) {
		s.log.Warn("Record store unavailable, analysis not persisted",
			zap.String("filename", result.Filename))
		return
	}

	id, err := s.store.Save(ctx, result)
	if err != nil {
		s.log.Error("Failed to persist analysis (continuing)",
			zap.String("filename", result.Filename),
			zap.Error(err))
		return
	}
	result.ID = id
}

func (s *analysisService) History(ctx context.Context, limit int) []domain.AnalysisResult {
	if limit <= 0 {
		limit = s.cfg.App.HistoryLimit
	}

	if s.store == nil || !s.store.Available(ctx) {
		s.log.Warn("Record store unavailable, returning empty history")
		return []domain.AnalysisResult{}
	}

	results, err := s.store.History(ctx, limit)
	if err != nil {
		s.log.Error("History query failed, returning empty history", zap.Error(err))
		return []domain.AnalysisResult{}
	}
	if results == nil {
		results = []domain.AnalysisResult{}
	}
	return results
}

func (s *analysisService) formatAllowed(format string) bool {
	for _, allowed := range s.cfg.App.AllowedFormats {
		if format == allowed {
			return true
		}
	}
	return false
}
