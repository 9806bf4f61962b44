package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateGenerate(t *testing.T) {
	tests := []struct {
		name    string
		prompt  string
		maxLen  int
		wantMsg string
	}{
		{name: "ok", prompt: "email addresses", maxLen: 500},
		{name: "empty", prompt: "", maxLen: 500, wantMsg: "prompt cannot be empty"},
		{name: "too long", prompt: strings.Repeat("a", 501), maxLen: 500, wantMsg: "prompt too long, keep it under 500 characters"},
		{name: "exactly max", prompt: strings.Repeat("a", 500), maxLen: 500},
		{name: "default max", prompt: strings.Repeat("a", 501), maxLen: 0, wantMsg: "prompt too long, keep it under 500 characters"},
		{name: "runes not bytes", prompt: strings.Repeat("é", 10), maxLen: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateGenerate(GenerateRequest{Prompt: tt.prompt}, tt.maxLen)
			if tt.wantMsg == "" {
				assert.Empty(t, errs)
				return
			}
			require.Len(t, errs, 1)
			assert.Equal(t, "prompt", errs[0].Field)
			assert.Equal(t, tt.wantMsg, errs.First())
		})
	}
}

func TestValidateTest(t *testing.T) {
	empty := ""
	sample := "abc123"

	assert.Empty(t, ValidateTest(TestRequest{Regex: `\d+`, TestString: &sample}))
	assert.Empty(t, ValidateTest(TestRequest{Regex: `\d+`, TestString: &empty}))

	errs := ValidateTest(TestRequest{Regex: "", TestString: nil})
	require.Len(t, errs, 2)
	assert.Equal(t, "regex", errs[0].Field)
	assert.Equal(t, "regex cannot be empty", errs[0].Message)
	assert.Equal(t, "test_string", errs[1].Field)
	assert.Equal(t, "missing 'test_string' in request body", errs[1].Message)
	assert.Equal(t, "regex: regex cannot be empty; test_string: missing 'test_string' in request body", errs.Error())
}

func TestValidationErrors_First(t *testing.T) {
	var errs ValidationErrors
	assert.Equal(t, "", errs.First())
}
