package main

import (
	"fmt"
	"log"

	"legibrief/internal/config"
	"legibrief/internal/extract"
	"legibrief/internal/generator"
	_ "legibrief/internal/generator/claude"
	_ "legibrief/internal/generator/openai"
	"legibrief/internal/handler"
	"legibrief/internal/router"
	"legibrief/internal/service"
	"legibrief/internal/storage/local"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	gen, err := generator.NewGenerator(&cfg.Generator)
	if err != nil {
		return fmt.Errorf("failed to initialize generator: %w", err)
	}

	store, err := local.NewStore(cfg.Upload.Dir)
	if err != nil {
		return fmt.Errorf("failed to initialize upload store: %w", err)
	}
	extractor := extract.NewPDFExtractor()

	// Initialize services
	analyzeSvc := service.NewAnalyzeService(gen, cfg.Generator.MaxTokens)
	searchSvc := service.NewSearchService(gen, cfg.Generator.MaxTokens)

	// Initialize handlers
	summarizeH := handler.NewSummarizeHandler(analyzeSvc, extractor, store)
	searchH := handler.NewSearchHandler(searchSvc)
	healthH := handler.NewHealthHandler()

	// Setup router
	r := router.Setup(cfg, summarizeH, searchH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
