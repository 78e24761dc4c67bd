// Package gemini generates reader-facing summaries of deprecation records
// using Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	deprecations "github.com/leblancfg/deprecations-rss"
)

const model = "gemini-2.5-flash"

// maxContextChars caps how much scraped page context goes into the prompt.
const maxContextChars = 1000

// Ensure Summarizer implements deprecations.Analyzer at compile time.
var _ deprecations.Analyzer = (*Summarizer)(nil)

// Summarizer implements deprecations.Analyzer using Google Gemini.
type Summarizer struct {
	client *genai.Client
}

// NewSummarizer creates a new Summarizer.
func NewSummarizer(client *genai.Client) *Summarizer {
	return &Summarizer{client: client}
}

// Summarize produces a short plain-text summary of a deprecation record,
// suitable for feed readers.
func (s *Summarizer) Summarize(ctx context.Context, item *deprecations.DeprecationItem) (string, error) {
	if item == nil {
		return "", deprecations.Errorf(deprecations.EINVALID, "item required")
	}
	if err := item.Validate(); err != nil {
		return "", err
	}

	prompt := BuildUserPrompt(item)
	config := BuildConfig()

	result, err := s.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", deprecations.Errorf(deprecations.EINTERNAL, "gemini returned nil result")
	}

	return strings.TrimSpace(result.Text()), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You summarize AI model deprecation notices for an RSS feed. Write one clear, factual summary under 300 characters. Only include information explicitly stated in the notice. Respond with the summary text only.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt from the fields of a record.
func BuildUserPrompt(item *deprecations.DeprecationItem) string {
	context := item.Context
	if len(context) > maxContextChars {
		context = context[:maxContextChars]
	}

	name := item.ModelName
	if name == "" {
		name = item.ModelID
	}

	var sb strings.Builder
	sb.WriteString("Summarize this AI model deprecation notice:\n\n")
	fmt.Fprintf(&sb, "Provider: %s\n", item.Provider)
	fmt.Fprintf(&sb, "Model: %s\n", name)
	if item.ShutdownDate != "" {
		fmt.Fprintf(&sb, "Shutdown date: %s\n", item.ShutdownDate)
	}
	if item.ReplacementModel != "" {
		fmt.Fprintf(&sb, "Suggested replacement: %s\n", item.ReplacementModel)
	}
	fmt.Fprintf(&sb, "Notice: %s\n", context)
	return sb.String()
}
