package service

import (
	"context"

	"github.com/rvanwijk/pii-guard/internal/logger"
	"github.com/rvanwijk/pii-guard/internal/redaction"
	"github.com/rvanwijk/pii-guard/models"
)

// termService is a thin facade over the redaction registry; the
// registry owns validation, persistence, and the in-memory list.
type termService struct {
	registry *redaction.Registry
	logger   *logger.Logger
}

func NewTermService(registry *redaction.Registry, log *logger.Logger) TermService {
	return &termService{
		registry: registry,
		logger:   log,
	}
}

func (s *termService) ListTerms(ctx context.Context) []models.RedactionTerm {
	return s.registry.Terms()
}

func (s *termService) AddTerm(ctx context.Context, label, value string) (models.RedactionTerm, error) {
	return s.registry.AddTerm(ctx, label, value)
}

func (s *termService) ImportTerms(ctx context.Context, text string) (int, error) {
	return s.registry.BulkImport(ctx, text)
}

func (s *termService) RemoveTerm(ctx context.Context, position int) error {
	return s.registry.RemoveTerm(ctx, position)
}

func (s *termService) ClearTerms(ctx context.Context) error {
	return s.registry.Clear(ctx)
}
