package regexgen

import (
	"context"
	"errors"
	"testing"

	"github.com/fedutinova/regexsmith/internal/common"
	"github.com/fedutinova/regexsmith/internal/gpt"
	"github.com/fedutinova/regexsmith/internal/pattern"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	reply  string
	err    error
	prompt string
}

func (s *stubGenerator) Generate(_ context.Context, description string) (*gpt.Completion, error) {
	s.prompt = description
	if s.err != nil {
		return nil, s.err
	}
	return &gpt.Completion{Content: s.reply, Model: "stub", TokensUsed: 7, ProcessingTimeMs: 3}, nil
}

func TestService_Generate(t *testing.T) {
	gen := &stubGenerator{reply: "REGEX: ^\\d{3}-\\d{4}$"}
	svc := New(gen, nil)

	res, err := svc.Generate(context.Background(), "local phone numbers")

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, res.ID)
	assert.Equal(t, "local phone numbers", gen.prompt)
	assert.Equal(t, `^\d{3}-\d{4}$`, res.Regex)
	assert.Equal(t, pattern.StrategyLabeled, res.Strategy)
	assert.True(t, res.Extracted)
	assert.Equal(t, gen.reply, res.FullResponse)
	assert.Equal(t, "stub", res.Model)
	assert.Equal(t, 7, res.TokensUsed)
}

func TestService_GenerateNotFound(t *testing.T) {
	svc := New(&stubGenerator{reply: "I cannot help with that"}, nil)

	res, err := svc.Generate(context.Background(), "???")

	require.NoError(t, err)
	assert.False(t, res.Extracted)
	assert.Equal(t, pattern.NotFoundSentinel, res.Regex)
	assert.Empty(t, res.Strategy)
}

func TestService_GenerateMatchAllPolicy(t *testing.T) {
	svc := New(&stubGenerator{reply: "I cannot help with that"}, pattern.NewExtractor(pattern.WithCatchAll(pattern.CatchAllMatchAll)))

	res, err := svc.Generate(context.Background(), "???")

	require.NoError(t, err)
	assert.True(t, res.Extracted)
	assert.Equal(t, pattern.MatchAllPattern, res.Regex)
	assert.Equal(t, pattern.CatchAllMatchAll, svc.CatchAll())
}

func TestService_GenerateUpstreamError(t *testing.T) {
	boom := errors.New("connection refused")
	svc := New(&stubGenerator{err: boom}, nil)

	_, err := svc.Generate(context.Background(), "anything")

	require.Error(t, err)
	assert.True(t, common.IsUpstream(err))
	assert.ErrorIs(t, err, boom)
}

func TestService_NotConfigured(t *testing.T) {
	svc := New(nil, nil)

	_, err := svc.Generate(context.Background(), "anything")

	assert.False(t, svc.Configured())
	assert.True(t, common.IsNotConfigured(err))
}

func TestService_Test(t *testing.T) {
	svc := New(nil, nil)

	out := svc.Test(`\d+`, "a1b22")
	assert.True(t, out.Valid)
	assert.Equal(t, []string{"1", "22"}, out.Matches)

	bad := svc.Test("(", "x")
	assert.False(t, bad.Valid)
	assert.NotEmpty(t, bad.Error)
}
