package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"legibrief/internal/domain"
	"legibrief/internal/normalize"
	"legibrief/internal/port"
)

// AnalyzeService turns raw bill text into a normalized BillRecord through a
// staged generation workflow.
type AnalyzeService interface {
	Analyze(ctx context.Context, text string) (domain.BillRecord, error)
}

type analyzeService struct {
	generator port.TextGenerator
	maxTokens int
}

// NewAnalyzeService creates an AnalyzeService backed by the given generator.
func NewAnalyzeService(generator port.TextGenerator, maxTokens int) AnalyzeService {
	return &analyzeService{generator: generator, maxTokens: maxTokens}
}

// Analyze runs the classify, extract, and enrich stages and normalizes the
// combined payload. Classification and extraction failures are fatal; the
// enrich stage degrades to placeholder research text so a working extraction
// is never discarded.
func (s *analyzeService) Analyze(ctx context.Context, text string) (domain.BillRecord, error) {
	if err := s.classify(ctx, text); err != nil {
		return domain.BillRecord{}, err
	}

	initial, initialJSON, err := s.extract(ctx, text)
	if err != nil {
		return domain.BillRecord{}, err
	}

	research := s.enrich(ctx, initialJSON, text)

	combined := combine(initial, research)
	return normalize.Normalize(combined), nil
}

func (s *analyzeService) classify(ctx context.Context, text string) error {
	out, err := s.generator.Generate(ctx, port.GenerationRequest{
		System:      classifySystemPrompt,
		User:        buildClassifyPrompt(text),
		MaxTokens:   10,
		Temperature: 0.3,
	})
	if err != nil {
		log.Printf("analyzeService.classify: generation failed: %v", err)
		return fmt.Errorf("classifying document: %w", domain.ErrGenerationFailed)
	}
	if !strings.Contains(strings.ToLower(out), "yes") {
		log.Printf("analyzeService.classify: document rejected: %q", out)
		return domain.ErrNotLegislation
	}
	return nil
}

func (s *analyzeService) extract(ctx context.Context, text string) (domain.RawPayload, string, error) {
	out, err := s.generator.Generate(ctx, port.GenerationRequest{
		System:    extractSystemPrompt,
		User:      text,
		MaxTokens: s.maxTokens,
		JSONOnly:  true,
	})
	if err != nil {
		log.Printf("analyzeService.extract: generation failed: %v", err)
		return nil, "", fmt.Errorf("extracting bill information: %w", domain.ErrGenerationFailed)
	}
	payload, err := decodeObject(out)
	if err != nil {
		log.Printf("analyzeService.extract: decode failed: %v", err)
		return nil, "", fmt.Errorf("extracting bill information: %w", domain.ErrDecodeFailed)
	}
	return payload, out, nil
}

// enrich runs the research stage. Any failure, provider or decode, falls back
// to placeholder research so the caller still receives the extracted record.
func (s *analyzeService) enrich(ctx context.Context, initialJSON, text string) domain.RawPayload {
	out, err := s.generator.Generate(ctx, port.GenerationRequest{
		System:    enrichSystemPrompt,
		User:      buildEnrichPrompt(initialJSON, text),
		MaxTokens: s.maxTokens,
		JSONOnly:  true,
	})
	if err != nil {
		log.Printf("analyzeService.enrich: generation failed, using placeholders: %v", err)
		return placeholderResearch()
	}
	payload, err := decodeObject(out)
	if err != nil {
		log.Printf("analyzeService.enrich: decode failed, using placeholders: %v", err)
		return placeholderResearch()
	}
	return payload
}

// combine overlays the research fields onto the extraction payload. Every
// extraction key is carried through unchanged so alternate field spellings
// survive to normalization.
func combine(initial, research domain.RawPayload) domain.RawPayload {
	merged := make(domain.RawPayload, len(initial)+len(narrativeFieldNames)+1)
	for k, v := range initial {
		merged[k] = v
	}
	for _, field := range narrativeFieldNames {
		if v, ok := research[field]; ok {
			merged[field] = v
		}
	}
	if v, ok := research["citations"]; ok {
		merged["citations"] = v
	}
	return merged
}

var narrativeFieldNames = []string{
	"financialImplications",
	"ideologicalLeaning",
	"advocacyGroupPositions",
	"changesTo",
	"similarLaws",
	"otherFactors",
}

func placeholderResearch() domain.RawPayload {
	return domain.RawPayload{
		"financialImplications":  "The financial implications could not be determined at this time.",
		"ideologicalLeaning":     "The ideological leaning could not be determined at this time.",
		"advocacyGroupPositions": "Information on advocacy group positions could not be determined at this time.",
		"changesTo":              "The changes to existing law could not be determined at this time.",
		"similarLaws":            "Information on similar laws in other states could not be determined at this time.",
		"otherFactors":           "Additional factors to consider could not be determined at this time.",
		"citations":              []any{},
	}
}

// decodeObject parses a generated JSON object, tolerating surrounding
// whitespace and markdown code fences.
func decodeObject(out string) (domain.RawPayload, error) {
	s := strings.TrimSpace(out)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
		s = strings.TrimSpace(s)
	}
	var payload domain.RawPayload
	if err := json.Unmarshal([]byte(s), &payload); err != nil {
		return nil, err
	}
	return payload, nil
}
