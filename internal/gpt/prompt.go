package gpt

import "fmt"

const promptTemplate = `You are a regex expert. Create a regular expression for: "%s"

IMPORTANT: Respond with ONLY the regex pattern on a single line. No explanations, no formatting, no extra text.

Examples:
- For "email addresses": ^[a-zA-Z0-9._%%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$
- For "phone numbers": ^\(?[0-9]{3}\)?[-\.\s]?[0-9]{3}[-\.\s]?[0-9]{4}$

Your response should be ONLY the regex pattern.`

// BuildPrompt wraps a user description in the single-line answer instructions.
func BuildPrompt(description string) string {
	return fmt.Sprintf(promptTemplate, description)
}
