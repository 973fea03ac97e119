package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rvanwijk/pii-guard/internal/anonymizer"
	"github.com/rvanwijk/pii-guard/internal/config"
	"github.com/rvanwijk/pii-guard/internal/crypto"
	"github.com/rvanwijk/pii-guard/internal/detector"
	"github.com/rvanwijk/pii-guard/internal/logger"
	"github.com/rvanwijk/pii-guard/internal/redaction"
	"github.com/rvanwijk/pii-guard/internal/scanner"
	"github.com/rvanwijk/pii-guard/internal/store"
	"github.com/rvanwijk/pii-guard/internal/vault"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// main runs one anonymization pass over a file or stdin and prints the
// result to stdout. Logs and the scan verdict go to stderr; the exit
// status reports whether the output came out clean.
func main() {
	printBuildInfo()

	log := logger.NewCLILogger("pii-guard-scrub")

	safe, err := run(context.Background(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("scrub failed")
	}
	if !safe {
		os.Exit(1)
	}
}

func run(ctx context.Context, log *logger.Logger) (bool, error) {
	cfg, err := config.GetScrubConfig()
	if err != nil {
		return false, fmt.Errorf("load config: %w", err)
	}

	text, err := readInput(flag.Arg(0))
	if err != nil {
		return false, err
	}

	storages, err := store.NewStorages(ctx, config.Storage{DB: cfg.Storage.DB}, log)
	if err != nil {
		return false, fmt.Errorf("open vault database: %w", err)
	}
	defer storages.Close()

	// Without a passphrase the vault stays locked: the pass runs as an
	// incognito request on request-scoped tokens and writes nothing back.
	var index anonymizer.VaultIndex
	incognito := cfg.Vault.Passphrase == ""
	if incognito {
		log.Info().Msg("no vault passphrase set, using request-scoped tokens")
	} else {
		unlocked, err := vault.Open(ctx, cfg.Vault.Passphrase, storages, crypto.NewKeyChainService(), log)
		if err != nil {
			return false, fmt.Errorf("unlock vault: %w", err)
		}
		index = unlocked
	}

	registry, err := redaction.NewRegistry(ctx, storages.Terms, log)
	if err != nil {
		return false, fmt.Errorf("load redaction terms: %w", err)
	}

	entityDetector, err := detector.New(cfg.Detector, log)
	if err != nil {
		return false, fmt.Errorf("create detector: %w", err)
	}

	spans, err := entityDetector.Detect(ctx, text)
	if err != nil {
		if cfg.Detector.BaseURL == "" {
			log.Info().Msg("no detector configured, custom terms only")
		} else {
			log.Warn().Err(err).Msg("detector unavailable, custom terms only")
		}
		spans = nil
	}

	res, err := anonymizer.New(index, registry, log).Anonymize(ctx, anonymizer.Request{
		Text:      text,
		Spans:     spans,
		Incognito: incognito,
	})
	if err != nil {
		return false, fmt.Errorf("anonymize: %w", err)
	}
	for _, warning := range res.Warnings {
		log.Warn().Msg(warning)
	}

	report := scanner.New().Scan(res.Text)

	// stdout carries the anonymized text and nothing else
	fmt.Print(res.Text)
	if res.Text != "" && !strings.HasSuffix(res.Text, "\n") {
		fmt.Println()
	}

	if !report.IsSafe {
		log.Warn().
			Strs("patterns", report.FoundPatterns).
			Int("substitutions", res.Mapping.Len()).
			Msg("residual patterns remain in the output")
		return false, nil
	}

	log.Info().Int("substitutions", res.Mapping.Len()).Msg("scan clean")

	return true, nil
}

// readInput reads the text to scrub from the named file, or from stdin
// when no file is given or the name is "-".
func readInput(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// printBuildInfo goes to stderr: stdout belongs to the scrubbed text.
func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Fprintf(os.Stderr, "Build version: %s\n", buildVersion)
	fmt.Fprintf(os.Stderr, "Build date: %s\n", buildDate)
	fmt.Fprintf(os.Stderr, "Build commit: %s\n", buildCommit)
}
