package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiClient(apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is empty")
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel("gemini-1.5-pro")
	model.SetTemperature(0.7)

	return &GeminiClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiClient) Close() {
	c.client.Close()
}

// GenerateIcebreakers suggests opening messages for a fresh match based on
// both creators' roles and skills.
func (c *GeminiClient) GenerateIcebreakers(ctx context.Context, roles1, skills1, roles2, skills2 []string) ([]string, error) {
	prompt := fmt.Sprintf(`
		Generate 3 short opening messages for two creators who just matched
		on a collaboration platform.
		Creator 1 roles: %v, skills: %v
		Creator 2 roles: %v, skills: %v

		Task: Create 3 distinct opening lines Creator 1 could send to
		Creator 2, each proposing a concrete way to collaborate.
		Output: JSON array of strings. Example: ["Hey...", "Hi..."]
	`, roles1, skills1, roles2, skills2)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, err
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no content generated")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}

	responseText := strings.TrimSpace(sb.String())
	// Clean up markdown code blocks if present
	responseText = strings.TrimPrefix(responseText, "```json")
	responseText = strings.TrimPrefix(responseText, "```")
	responseText = strings.TrimSuffix(responseText, "```")

	var icebreakers []string
	if err := json.Unmarshal([]byte(responseText), &icebreakers); err != nil {
		// Fallback: take non-bracket lines as individual suggestions
		lines := strings.Split(responseText, "\n")
		for _, line := range lines {
			line = strings.TrimSpace(line)
			if line != "" && !strings.HasPrefix(line, "[") && !strings.HasSuffix(line, "]") {
				icebreakers = append(icebreakers, line)
			}
		}
		if len(icebreakers) == 0 {
			return nil, fmt.Errorf("failed to parse icebreakers: %w", err)
		}
	}

	return icebreakers, nil
}

// GenerateTagline drafts a one-line profile tagline from a creator's roles
// and vibe words.
func (c *GeminiClient) GenerateTagline(ctx context.Context, displayName string, roles, vibeWords []string) (string, error) {
	prompt := fmt.Sprintf(`
		Write a single catchy profile tagline (max 90 characters) for a
		creator on a collaboration platform.
		Name: %s
		Roles: %v
		Vibe: %v

		Output: just the tagline text, no quotes.
	`, displayName, roles, vibeWords)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no content generated")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}

	return strings.TrimSpace(sb.String()), nil
}
