// Package regexgen ties the generation collaborator to the pattern
// extractor and tester.
package regexgen

import (
	"context"
	"log/slog"

	"github.com/fedutinova/regexsmith/internal/common"
	"github.com/fedutinova/regexsmith/internal/gpt"
	"github.com/fedutinova/regexsmith/internal/pattern"
	"github.com/google/uuid"
)

type Generation struct {
	ID               uuid.UUID `json:"id"`
	Prompt           string    `json:"prompt"`
	Regex            string    `json:"regex"`
	Strategy         string    `json:"strategy,omitempty"`
	Extracted        bool      `json:"extraction_successful"`
	FullResponse     string    `json:"full_response"`
	Model            string    `json:"model,omitempty"`
	TokensUsed       int       `json:"tokens_used"`
	ProcessingTimeMs int       `json:"processing_time_ms"`
}

type Service struct {
	gen       gpt.Generator
	extractor *pattern.Extractor
}

// New builds a Service. gen may be nil, in which case Generate reports
// common.ErrNotConfigured and only Test is usable.
func New(gen gpt.Generator, extractor *pattern.Extractor) *Service {
	if extractor == nil {
		extractor = pattern.NewExtractor()
	}
	return &Service{gen: gen, extractor: extractor}
}

func (s *Service) Configured() bool {
	return s.gen != nil
}

func (s *Service) CatchAll() pattern.CatchAll {
	return s.extractor.CatchAll()
}

func (s *Service) Generate(ctx context.Context, prompt string) (*Generation, error) {
	if s.gen == nil {
		return nil, common.ErrNotConfigured
	}

	id := uuid.New()
	slog.Info("generating regex", "id", id, "prompt", prompt)

	completion, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		return nil, common.WrapUpstream("generate", err)
	}

	res := s.extractor.Extract(completion.Content)
	if res.Found {
		slog.Info("regex extracted", "id", id, "strategy", res.Strategy, "regex", res.Pattern)
	} else {
		slog.Warn("no regex in generation reply", "id", id, "response_length", len(completion.Content))
	}

	return &Generation{
		ID:               id,
		Prompt:           prompt,
		Regex:            res.String(),
		Strategy:         res.Strategy,
		Extracted:        res.Found,
		FullResponse:     completion.Content,
		Model:            completion.Model,
		TokensUsed:       completion.TokensUsed,
		ProcessingTimeMs: completion.ProcessingTimeMs,
	}, nil
}

func (s *Service) Test(p, sample string) pattern.Outcome {
	out := pattern.Test(p, sample)
	if out.Valid {
		slog.Debug("regex tested", "regex", p, "matches", out.Count)
	} else {
		slog.Debug("regex rejected", "regex", p, "error", out.Error)
	}
	return out
}
