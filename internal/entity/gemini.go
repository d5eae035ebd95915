package entity

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultGeminiModel is used when no model name is configured.
const DefaultGeminiModel = "gemini-1.5-flash"

const recognizePrompt = `Extract named entities from the following text.
Only report entities labeled ORG (organizations) or PRODUCT (tools, frameworks, technologies).
Return a JSON array of objects with "text" and "label" fields and nothing else.

TEXT:
%s`

// GeminiRecognizer implements Recognizer using the Gemini API.
type GeminiRecognizer struct {
	client *genai.Client
	model  string
}

// NewGeminiRecognizer creates a Gemini-backed recognizer. An empty model name
// selects DefaultGeminiModel.
func NewGeminiRecognizer(ctx context.Context, apiKey, model string) (*GeminiRecognizer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiRecognizer{client: client, model: model}, nil
}

// Recognize asks the model for ORG and PRODUCT entities in the text.
func (r *GeminiRecognizer) Recognize(ctx context.Context, text string) ([]Entity, error) {
	model := r.client.GenerativeModel(r.model)
	model.SetTemperature(0.1) // Low temperature for consistent output
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(fmt.Sprintf(recognizePrompt, text)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	raw, err := extractTextFromResponse(resp)
	if err != nil {
		return nil, err
	}

	var entities []Entity
	if err := json.Unmarshal([]byte(raw), &entities); err != nil {
		return nil, fmt.Errorf("failed to parse entity response: %w", err)
	}
	return entities, nil
}

// Close releases the underlying client.
func (r *GeminiRecognizer) Close() error {
	return r.client.Close()
}

// extractTextFromResponse concatenates the text parts of the first candidate.
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("empty response from model")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	result := strings.TrimSpace(sb.String())
	if result == "" {
		return "", fmt.Errorf("no text content in response")
	}
	return result, nil
}
