package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"legibrief/internal/domain"
	"legibrief/internal/normalize"
	"legibrief/internal/port"
)

// SearchService finds a bill from search criteria and returns a normalized
// BillRecord.
type SearchService interface {
	Search(ctx context.Context, query domain.SearchQuery) (domain.BillRecord, error)
}

type searchService struct {
	generator port.TextGenerator
	maxTokens int
}

// NewSearchService creates a SearchService backed by the given generator.
func NewSearchService(generator port.TextGenerator, maxTokens int) SearchService {
	return &searchService{generator: generator, maxTokens: maxTokens}
}

// Search validates the query, runs a single research generation, and verifies
// any requested year against the year the result actually reports.
func (s *searchService) Search(ctx context.Context, query domain.SearchQuery) (domain.BillRecord, error) {
	if err := validateQuery(query); err != nil {
		return domain.BillRecord{}, err
	}

	out, err := s.generator.Generate(ctx, port.GenerationRequest{
		System:    searchSystemPrompt,
		User:      buildSearchPrompt(query),
		MaxTokens: s.maxTokens,
		JSONOnly:  true,
	})
	if err != nil {
		log.Printf("searchService.Search: generation failed: %v", err)
		return domain.BillRecord{}, fmt.Errorf("searching for bill: %w", domain.ErrGenerationFailed)
	}

	payload, err := decodeObject(out)
	if err != nil {
		log.Printf("searchService.Search: decode failed: %v", err)
		return domain.BillRecord{}, domain.ErrSearchUnparseable
	}

	if query.BillYear != "" {
		if found, ok := normalize.ResolveYear(payload); ok && found != query.BillYear {
			log.Printf("searchService.Search: year mismatch: requested %s, found %s", query.BillYear, found)
			return domain.BillRecord{}, &domain.YearMismatchError{Requested: query.BillYear, Found: found}
		}
	}

	return normalize.Normalize(payload), nil
}

func validateQuery(query domain.SearchQuery) error {
	if strings.TrimSpace(query.BillState) == "" {
		return domain.ErrMissingJurisdiction
	}
	if strings.TrimSpace(query.BillName) == "" &&
		strings.TrimSpace(query.BillNumber) == "" &&
		strings.TrimSpace(query.AdditionalInfo) == "" {
		return domain.ErrInsufficientQuery
	}
	return nil
}
