package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"crosscast/domain/dto"
	"crosscast/domain/repository"
)

// CaptionClient generates title, description, and hashtag suggestions with
// the Gemini API. Errors are returned as-is; falling back is the caller's
// concern.
type CaptionClient struct {
	apiKey string
	model  string
}

func NewCaptionClient(apiKey, model string) repository.ICaptionSuggester {
	return &CaptionClient{apiKey: apiKey, model: model}
}

func (c *CaptionClient) Suggest(ctx context.Context, input dto.CaptionInput) (*dto.CaptionSuggestion, error) {
	if c.apiKey == "" {
		return nil, errors.New("gemini api key not configured")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  c.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	resp, err := client.Models.GenerateContent(ctx, c.model, []*genai.Content{
		genai.NewContentFromText(buildPrompt(input), genai.RoleUser),
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	return parseSuggestion(resp.Text())
}

func buildPrompt(input dto.CaptionInput) string {
	var b strings.Builder
	b.WriteString("You write metadata for short-form social videos. ")
	b.WriteString("Generate a catchy title (max 100 characters), an engaging description (2-3 sentences), ")
	b.WriteString("and 5 relevant hashtags without the # prefix. ")
	b.WriteString(`Respond with only a JSON object: {"title": "...", "description": "...", "hashtags": ["...", "..."]}.`)
	if input.Title != "" {
		fmt.Fprintf(&b, " The user's draft title is: %q.", input.Title)
	}
	if input.Description != "" {
		fmt.Fprintf(&b, " The user's draft description is: %q.", input.Description)
	}
	if len(input.Hashtags) > 0 {
		fmt.Fprintf(&b, " The user's draft hashtags are: %s.", strings.Join(input.Hashtags, ", "))
	}
	return b.String()
}

// parseSuggestion extracts the JSON object from the model output, tolerating
// markdown fences and surrounding prose.
func parseSuggestion(text string) (*dto.CaptionSuggestion, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in model output: %q", text)
	}

	var suggestion dto.CaptionSuggestion
	if err := json.Unmarshal([]byte(text[start:end+1]), &suggestion); err != nil {
		return nil, fmt.Errorf("failed to decode model output: %w", err)
	}
	if suggestion.Title == "" && suggestion.Description == "" && len(suggestion.Hashtags) == 0 {
		return nil, errors.New("model output carried no usable fields")
	}
	return &suggestion, nil
}
