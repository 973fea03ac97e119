package service

import (
	"github.com/rvanwijk/pii-guard/internal/anonymizer"
	"github.com/rvanwijk/pii-guard/internal/config"
	"github.com/rvanwijk/pii-guard/internal/detector"
	"github.com/rvanwijk/pii-guard/internal/llm"
	"github.com/rvanwijk/pii-guard/internal/logger"
	"github.com/rvanwijk/pii-guard/internal/metrics"
	"github.com/rvanwijk/pii-guard/internal/redaction"
	"github.com/rvanwijk/pii-guard/internal/rehydrate"
	"github.com/rvanwijk/pii-guard/internal/resolver"
	"github.com/rvanwijk/pii-guard/internal/scanner"
	"github.com/rvanwijk/pii-guard/internal/vault"
	"github.com/rvanwijk/pii-guard/internal/workers"
)

type Services struct {
	Pipeline PipelineService
	Entities EntityService
	Vault    VaultService
	Terms    TermService
	AppInfo  AppInfoService
}

// NewServices wires the service layer over an unlocked vault and a
// loaded term registry. The anonymization pipeline itself is built
// here; callers only hand in the external collaborators.
func NewServices(
	unlocked *vault.Vault,
	registry *redaction.Registry,
	entityDetector detector.Detector,
	model llm.Client,
	pool *workers.DocumentPool,
	m *metrics.Metrics,
	cfg config.StructuredConfig,
	log *logger.Logger,
) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, log)
	if err != nil {
		return nil, err
	}

	anonymize := anonymizer.New(unlocked, registry, log)
	restore := rehydrate.New(unlocked, log)

	return &Services{
		Pipeline: NewPipelineService(entityDetector, anonymize, scanner.New(), restore, model, pool, cfg.LLM, m, log),
		Entities: NewEntityService(unlocked, resolver.New(cfg.Resolver), cfg.Vault, log),
		Vault:    NewVaultService(unlocked, log),
		Terms:    NewTermService(registry, log),
		AppInfo:  appInfo,
	}, nil
}
