package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a agent address in format [host]:[port]
//	-d database DSN (file path for SQLite, postgres:// URI for PostgreSQL)
//	-c/-config json file path with configs
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-household household identifier for the person index
//	-detector-url entity detector base URL (empty disables detection)
//	-detector-language analysis language hint
//	-detector-min-confidence minimum detector span confidence
//	-detector-timeout detector request timeout
//	-llm-mode default backend mode (local, hybrid, cloud)
//	-llm-local-endpoint local model server base URL
//	-llm-local-model local model name
//	-llm-cloud-endpoint cloud API base URL
//	-llm-cloud-model cloud model name
//	-llm-timeout completion request timeout
//	-resolver-high high confidence similarity threshold
//	-resolver-possible possible match similarity threshold
//	-doc-pool document worker pool size
//	-doc-queue document batch queue size
//
// The vault passphrase has no flag on purpose: it must come from the
// VAULT_PASSPHRASE environment variable so it never shows up in process
// listings.
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var householdID string
	var detectorURL string
	var detectorLanguage string
	var detectorMinConfidence float64
	var detectorTimeout time.Duration
	var llmMode string
	var llmLocalEndpoint, llmLocalModel string
	var llmCloudEndpoint, llmCloudModel string
	var llmTimeout time.Duration
	var resolverHigh, resolverPossible float64
	var docPoolSize, docQueueSize int

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&householdID, "household", "", "Household identifier")
	flag.StringVar(&detectorURL, "detector-url", "", "Entity detector base URL")
	flag.StringVar(&detectorLanguage, "detector-language", "", "Detector language hint")
	flag.Float64Var(&detectorMinConfidence, "detector-min-confidence", 0, "Minimum detector span confidence")
	flag.DurationVar(&detectorTimeout, "detector-timeout", 0, "Detector request timeout")
	flag.StringVar(&llmMode, "llm-mode", "", "Default backend mode (local, hybrid, cloud)")
	flag.StringVar(&llmLocalEndpoint, "llm-local-endpoint", "", "Local model server base URL")
	flag.StringVar(&llmLocalModel, "llm-local-model", "", "Local model name")
	flag.StringVar(&llmCloudEndpoint, "llm-cloud-endpoint", "", "Cloud API base URL")
	flag.StringVar(&llmCloudModel, "llm-cloud-model", "", "Cloud model name")
	flag.DurationVar(&llmTimeout, "llm-timeout", 0, "Completion request timeout")
	flag.Float64Var(&resolverHigh, "resolver-high", 0, "High confidence similarity threshold")
	flag.Float64Var(&resolverPossible, "resolver-possible", 0, "Possible match similarity threshold")
	flag.IntVar(&docPoolSize, "doc-pool", 0, "Document worker pool size")
	flag.IntVar(&docQueueSize, "doc-queue", 0, "Document batch queue size")

	flag.Parse()

	return &StructuredConfig{
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Vault: Vault{
			HouseholdID: householdID,
		},
		Detector: Detector{
			BaseURL:        detectorURL,
			Language:       detectorLanguage,
			MinConfidence:  detectorMinConfidence,
			RequestTimeout: detectorTimeout,
		},
		LLM: LLM{
			Mode:           llmMode,
			LocalEndpoint:  llmLocalEndpoint,
			LocalModel:     llmLocalModel,
			CloudEndpoint:  llmCloudEndpoint,
			CloudModel:     llmCloudModel,
			RequestTimeout: llmTimeout,
		},
		Resolver: Resolver{
			HighThreshold:     resolverHigh,
			PossibleThreshold: resolverPossible,
		},
		Workers: Workers{
			DocumentPoolSize:  docPoolSize,
			DocumentQueueSize: docQueueSize,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string so that the
// merge step treats the address as unset.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
