package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/draftdiff/draftdiff"
)

const defaultModel = "gemini-2.5-flash"

// Ensure Summarizer implements draftdiff.Summarizer at compile time.
var _ draftdiff.Summarizer = (*Summarizer)(nil)

// Summarizer implements draftdiff.Summarizer using Google Gemini.
type Summarizer struct {
	client *genai.Client
	model  string
}

// NewSummarizer creates a new Summarizer. An empty model selects the default.
func NewSummarizer(client *genai.Client, model string) *Summarizer {
	if model == "" {
		model = defaultModel
	}
	return &Summarizer{client: client, model: model}
}

// Summarize produces a natural language summary of the differences between
// two document versions.
func (s *Summarizer) Summarize(ctx context.Context, req draftdiff.SummaryRequest) (string, error) {
	if len(req.OldParagraphs) == 0 && len(req.NewParagraphs) == 0 {
		return "", draftdiff.Errorf(draftdiff.EINVALID, "no content to summarize")
	}

	prompt := BuildPrompt(req)
	config := BuildConfig()

	result, err := s.client.Models.GenerateContent(ctx, s.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", draftdiff.Errorf(draftdiff.EUNAVAILABLE, "gemini request failed: %v", err)
	}
	if result == nil {
		return "", draftdiff.Errorf(draftdiff.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are an expert content analyst.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildPrompt builds the user prompt containing both versions and the
// structural heading notes.
func BuildPrompt(req draftdiff.SummaryRequest) string {
	var sb strings.Builder
	sb.WriteString("Compare the following two versions of text and summarize the key differences:\n\n")
	fmt.Fprintf(&sb, "Version 1 (%s):\n%s\n\n", req.OldName, strings.Join(req.OldParagraphs, "\n"))
	fmt.Fprintf(&sb, "Version 2 (%s):\n%s\n\n", req.NewName, strings.Join(req.NewParagraphs, "\n"))
	if len(req.HeadingNotes) > 0 {
		sb.WriteString("Structural heading changes already detected:\n")
		for _, note := range req.HeadingNotes {
			fmt.Fprintf(&sb, "- %s\n", note)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("Provide a concise summary of changes.")
	return sb.String()
}
