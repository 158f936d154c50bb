package summary

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const defaultModel = "gemini-1.5-flash"

// maxInputChars caps the text sent to the model; resumes longer than this
// are truncated from the end.
const maxInputChars = 12000

// GeminiSummarizer implements Summarizer over the Gemini API.
type GeminiSummarizer struct {
	client *genai.Client
	model  string
}

// NewGeminiSummarizer creates a summarizer. An empty API key is an error;
// callers that want summarization disabled should pass a nil Summarizer
// around instead.
func NewGeminiSummarizer(ctx context.Context, apiKey, model string) (*GeminiSummarizer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiSummarizer{client: client, model: model}, nil
}

// Summarize produces a short plain-text abstract of the document.
func (s *GeminiSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", nil
	}
	if len(text) > maxInputChars {
		text = text[:maxInputChars]
	}

	model := s.client.GenerativeModel(s.model)
	model.SetTemperature(0.1) // Low temperature for consistent output

	prompt := "Summarize the following resume in 2-3 sentences, focusing on " +
		"the candidate's profession, strongest skills and experience level. " +
		"Return plain text only.\n\n" + text

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate summary: %w", err)
	}

	return extractText(resp)
}

// Close releases the underlying client.
func (s *GeminiSummarizer) Close() error {
	return s.client.Close()
}

func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("empty response from model")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	out := strings.TrimSpace(sb.String())
	if out == "" {
		return "", fmt.Errorf("no text content in response")
	}
	return out, nil
}
