package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"ledger-reconciler/internal/config"
	"ledger-reconciler/internal/gateway"
	"ledger-reconciler/internal/usecase"
)

func main() {
	// Define command-line flags
	bankFile := flag.String("bank", "", "Path to the bank statement CSV file (required)")
	bookFile := flag.String("book", "", "Path to the general-ledger CSV file (required)")
	configFile := flag.String("config", "", "Path to a YAML config file (optional)")
	enrich := flag.Bool("enrich", false, "Send discrepant items to the AI enrichment service")
	flag.Parse()

	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg := config.Default()
	if *configFile != "" {
		loaded, err := config.Load(*configFile)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
		cfg = loaded
	}

	// Flags override file values.
	if *bankFile != "" {
		cfg.BankFeed = *bankFile
	}
	if *bookFile != "" {
		cfg.BookFeed = *bookFile
	}

	if cfg.BankFeed == "" || cfg.BookFeed == "" {
		fmt.Println("Error: bank and book feed paths are required (-bank/-book flags or config file).")
		flag.Usage()
		os.Exit(1)
	}

	// --- Dependency Injection (Wiring the application) ---

	// 1. Create the repository (the outermost layer)
	csvRepo := gateway.NewCSVFeedRepository()

	// 2. Optionally create the enrichment client
	var enricher usecase.EnrichmentClient
	if *enrich {
		apiKey := os.Getenv(cfg.Enrichment.APIKeyEnv)
		if apiKey == "" {
			log.Warn().Str("env", cfg.Enrichment.APIKeyEnv).Msg("API key not set; skipping enrichment")
		} else {
			enricher = gateway.NewGeminiClient(cfg.Enrichment.Endpoint, apiKey, cfg.Enrichment.Model, log)
		}
	}

	// 3. Create the usecase and inject the collaborators (the core logic layer)
	reconciliationUseCase := usecase.NewReconciliationUseCase(csvRepo, enricher, cfg.Enrichment.MaxItems, log)

	// --- Execute the Usecase ---
	report, err := reconciliationUseCase.Reconcile(context.Background(), cfg.BankFeed, cfg.BookFeed)
	if err != nil {
		log.Fatal().Err(err).Msg("reconciliation failed")
	}

	// --- Present the Output ---
	output, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to generate JSON report")
	}

	fmt.Println(string(output))
}
