package config

import "time"

// Default values applied after all explicit sources. The server address
// deliberately binds loopback: the agent serves the desktop shell on the
// same machine, nothing else.
const (
	DefaultHTTPAddress       = "127.0.0.1:8721"
	DefaultRequestTimeout    = 60 * time.Second
	DefaultDetectorLanguage  = "nl"
	DefaultDetectorTimeout   = 5 * time.Second
	DefaultMinConfidence     = 0.4
	DefaultLLMTimeout        = 2 * time.Minute
	DefaultHighThreshold     = 0.9
	DefaultPossibleThreshold = 0.85
	DefaultDocumentPoolSize  = 2
	DefaultDocumentQueueSize = 16
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Detector: Detector{
			Language:       DefaultDetectorLanguage,
			MinConfidence:  DefaultMinConfidence,
			RequestTimeout: DefaultDetectorTimeout,
		},
		LLM: LLM{
			RequestTimeout: DefaultLLMTimeout,
		},
		Resolver: Resolver{
			HighThreshold:     DefaultHighThreshold,
			PossibleThreshold: DefaultPossibleThreshold,
		},
		Workers: Workers{
			DocumentPoolSize:  DefaultDocumentPoolSize,
			DocumentQueueSize: DefaultDocumentQueueSize,
		},
	}
}
