// Package detector is the adapter for the local entity detector
// sidecar, a Presidio-style analyzer reached over loopback HTTP. The
// detector is best effort by contract: every caller must be prepared
// for ErrDetectorUnavailable and degrade to an empty span list.
package detector

//go:generate mockgen -source=detector.go -destination=../mock/detector_mock.go -package=mock

import (
	"context"
	"errors"

	"github.com/rvanwijk/pii-guard/internal/config"
	"github.com/rvanwijk/pii-guard/internal/logger"
	"github.com/rvanwijk/pii-guard/models"
)

// ErrDetectorUnavailable wraps every transport, timeout, or non-200
// failure of the analyzer endpoint.
var ErrDetectorUnavailable = errors.New("entity detector unavailable")

// Detector finds personal data spans in text.
type Detector interface {
	Detect(ctx context.Context, text string) ([]models.DetectedSpan, error)
}

// New selects the implementation for the configured endpoint: an HTTP
// adapter when a base URL is set, otherwise the disabled detector.
func New(cfg config.Detector, log *logger.Logger) (Detector, error) {
	if cfg.BaseURL == "" {
		return Disabled{}, nil
	}
	return NewHTTPDetector(cfg, log)
}

// Disabled is the no-detector implementation used when no analyzer
// endpoint is configured. Every call reports the detector unavailable;
// the pipeline then runs the custom-term pass only.
type Disabled struct{}

func (Disabled) Detect(context.Context, string) ([]models.DetectedSpan, error) {
	return nil, ErrDetectorUnavailable
}
