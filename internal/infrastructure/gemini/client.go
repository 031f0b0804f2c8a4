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

// Place is a venue suggestion produced by the model.
type Place struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Area        string `json:"area"`
}

// FindNearbyPlaces asks the model for venue suggestions matching a free-form
// query around the given coordinates. The model is instructed to answer with
// a JSON array; markdown fences around it are tolerated.
func (c *GeminiClient) FindNearbyPlaces(ctx context.Context, query string, lat, lng float64) ([]Place, error) {
	prompt := fmt.Sprintf(`
		You are a local guide. A user near latitude %.5f, longitude %.5f asks: %q

		Task: Suggest up to 5 real places nearby that match the request.
		For each place give a name, a one-sentence description, a category
		(e.g. "cafe", "park", "coworking"), and the area or neighborhood.
		Output: JSON array of objects with keys "name", "description",
		"category", "area". Example: [{"name": "...", "description": "...", "category": "...", "area": "..."}]
	`, lat, lng, query)

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
	responseText = strings.TrimSpace(responseText)

	var places []Place
	if err := json.Unmarshal([]byte(responseText), &places); err != nil {
		return nil, fmt.Errorf("failed to parse places: %w", err)
	}

	return places, nil
}
