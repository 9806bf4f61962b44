package http

import (
	"net/http"

	"github.com/fedutinova/regexsmith/internal/pattern"
)

var examplePrompts = map[string][]string{
	"email": {
		"Match email addresses",
		"Validate Gmail addresses only",
		"Email with specific domain validation",
		"Extract all emails from text",
	},
	"phone": {
		"US phone numbers with area code",
		"International phone format",
		"Phone numbers with extensions",
		"Mobile phone numbers only",
	},
	"dates": {
		"Match dates in MM/DD/YYYY format",
		"European date format DD-MM-YYYY",
		"ISO date format YYYY-MM-DD",
		"Flexible date formats",
	},
	"web": {
		"Extract URLs from text",
		"Match IPv4 addresses",
		"Find domain names",
		"HTTPS URLs only",
	},
	"finance": {
		"Credit card numbers",
		"US social security numbers",
		"Bank account numbers",
		"Currency amounts",
	},
	"text": {
		"Words starting with capital letter",
		"Extract hashtags from text",
		"Match alphanumeric codes",
		"Find quoted text",
	},
	"security": {
		"Strong password validation",
		"Extract IP addresses from logs",
		"API key patterns",
		"UUID format validation",
	},
	"validation": {
		"Validate username format",
		"Check postal codes",
		"Verify file extensions",
		"Match specific patterns",
	},
}

func (h *Handlers) examples(w http.ResponseWriter, r *http.Request) {
	total := 0
	for _, prompts := range examplePrompts {
		total += len(prompts)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"examples":          examplePrompts,
		"total_categories":  len(examplePrompts),
		"total_examples":    total,
		"keyword_fallbacks": pattern.Fallbacks(),
		"timestamp":         timestamp(),
	})
}
