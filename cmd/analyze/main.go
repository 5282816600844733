// Command analyze runs the filing analysis pipeline for a single filing and prints
// the result as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"filinglens/internal/analysis"
	"filinglens/internal/config"
	"filinglens/internal/domain"
	"filinglens/internal/extract"
	"filinglens/internal/fetcher"
	"filinglens/internal/llm"
	_ "filinglens/internal/llm/claude"
	_ "filinglens/internal/llm/gemini"
	_ "filinglens/internal/llm/openai"
	"filinglens/internal/logging"
	"filinglens/internal/port"
	"filinglens/internal/service"
)

func main() {
	var (
		documentURL = flag.String("url", "", "document content URL to fetch")
		textFile    = flag.String("text", "", "read already-extracted document text from this file instead of fetching")
		category    = flag.String("category", "", "filing category, e.g. accounts or confirmation-statement (required)")
		filingType  = flag.String("type", "", "filing form type, e.g. AA")
		description = flag.String("description", "", "filing description")
		date        = flag.String("date", "", "filing date (YYYY-MM-DD)")
		pages       = flag.Int("pages", 0, "page count, 0 if unknown")
		txID        = flag.String("transaction-id", "", "filing transaction id")
		offline     = flag.Bool("offline", false, "use local analysis only")
		timeout     = flag.Duration("timeout", 2*time.Minute, "overall timeout")
	)
	flag.Parse()

	if *category == "" {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(*documentURL, *textFile, *timeout, *offline, buildFiling(*category, *filingType, *description, *date, *pages, *txID)); err != nil {
		log.Fatal(err)
	}
}

func buildFiling(category, filingType, description, date string, pages int, txID string) domain.FilingRef {
	f := domain.FilingRef{
		Category:      category,
		Type:          filingType,
		Description:   description,
		Date:          date,
		TransactionID: txID,
	}
	if pages > 0 {
		f.Pages = &pages
	}
	return f
}

func run(documentURL, textFile string, timeout time.Duration, offline bool, filing domain.FilingRef) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	var content string
	if textFile != "" {
		b, err := os.ReadFile(textFile)
		if err != nil {
			return fmt.Errorf("reading %s: %w", textFile, err)
		}
		content = string(b)
	}

	var model port.AnalysisModel
	if cfg.Analyzer.Enabled() && !offline {
		model, err = llm.NewModel(&cfg.Analyzer)
		if err != nil {
			return fmt.Errorf("failed to initialize analysis model: %w", err)
		}
	}

	orchestrator := analysis.NewOrchestrator(model, analysis.Options{
		Provider:    cfg.Analyzer.Provider,
		MaxTokens:   cfg.Analyzer.MaxTokens,
		Temperature: cfg.Analyzer.Temperature,
	}, logger)
	documentSvc := service.NewDocumentService(fetcher.New(&cfg.Registry, logger), extract.NewExtractor(logger), logger)
	analysisSvc := service.NewAnalysisService(documentSvc, orchestrator, nil, logger)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	result, err := analysisSvc.Analyze(ctx, &service.AnalyzeInput{
		Filing:          filing,
		DocumentContent: content,
		DocumentURL:     documentURL,
		Network:         model != nil,
	})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
