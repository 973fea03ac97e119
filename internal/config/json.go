package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON-friendly field
// types, most notably [Duration] values that accept "30s"-style strings.
type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Vault struct {
		HouseholdID string `json:"household_id"`
	} `json:"vault,omitempty"`

	Detector struct {
		BaseURL        string   `json:"base_url"`
		Language       string   `json:"language"`
		MinConfidence  float64  `json:"min_confidence"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"detector,omitempty"`

	LLM struct {
		Mode           string   `json:"mode"`
		LocalEndpoint  string   `json:"local_endpoint"`
		LocalModel     string   `json:"local_model"`
		CloudEndpoint  string   `json:"cloud_endpoint"`
		CloudModel     string   `json:"cloud_model"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"llm,omitempty"`

	Resolver struct {
		HighThreshold     float64 `json:"high_threshold"`
		PossibleThreshold float64 `json:"possible_threshold"`
	} `json:"resolver,omitempty"`

	Workers struct {
		DocumentPoolSize  int `json:"document_pool_size"`
		DocumentQueueSize int `json:"document_queue_size"`
	} `json:"workers,omitempty"`
}

// parseJSON reads and decodes the JSON config file at jsonFilePath and maps
// it onto a [StructuredConfig].
//
// The vault passphrase is intentionally absent from the JSON schema: config
// files tend to end up in backups and chat attachments, the passphrase must
// not.
func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version: jsonCfg.App.Version,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Vault: Vault{
			HouseholdID: jsonCfg.Vault.HouseholdID,
		},
		Detector: Detector{
			BaseURL:        jsonCfg.Detector.BaseURL,
			Language:       jsonCfg.Detector.Language,
			MinConfidence:  jsonCfg.Detector.MinConfidence,
			RequestTimeout: time.Duration(jsonCfg.Detector.RequestTimeout),
		},
		LLM: LLM{
			Mode:           jsonCfg.LLM.Mode,
			LocalEndpoint:  jsonCfg.LLM.LocalEndpoint,
			LocalModel:     jsonCfg.LLM.LocalModel,
			CloudEndpoint:  jsonCfg.LLM.CloudEndpoint,
			CloudModel:     jsonCfg.LLM.CloudModel,
			RequestTimeout: time.Duration(jsonCfg.LLM.RequestTimeout),
		},
		Resolver: Resolver{
			HighThreshold:     jsonCfg.Resolver.HighThreshold,
			PossibleThreshold: jsonCfg.Resolver.PossibleThreshold,
		},
		Workers: Workers{
			DocumentPoolSize:  jsonCfg.Workers.DocumentPoolSize,
			DocumentQueueSize: jsonCfg.Workers.DocumentQueueSize,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
