package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"whyEngine/business/explain"
	"whyEngine/domain"
)

// The model is only asked to explain a ranking that is already final.
// The prompt makes that explicit and demands machine-readable output.
const systemPrompt = `You are an explanation engine for a recommendation service.
You receive a list of items that have ALREADY been ranked by a deterministic constraint scoring engine.
Your job is ONLY to explain the recommendations in plain language. You must NOT change the ranking order.

For each item provide:
1. why_recommended: 1-2 sentences on why it scored well given the user's constraints.
2. tradeoffs: a brief note on what the user gives up by choosing it.
3. why_others_lower: a brief note on why items below it scored lower.
4. discovery_reason: only for items flagged is_discovery, note that the item is shown to broaden options while still meeting constraints.

Be concise, specific, and reference actual constraint values.
Respond ONLY with a valid JSON array of objects with fields: id, why_recommended, tradeoffs, why_others_lower, discovery_reason.`

type Config struct {
	APIKey string
	URL    string
	Model  string
}

type ExplainRepository struct {
	cfg        Config
	httpClient *http.Client
}

var _ explain.ExplanationGenerator = (*ExplainRepository)(nil)

func NewExplainRepository(cfg Config) *ExplainRepository {
	return &ExplainRepository{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type promptItem struct {
	ID               string                `json:"id"`
	Name             string                `json:"name"`
	Price            float64               `json:"price"`
	TimeMinutes      float64               `json:"time_minutes"`
	Score            float64               `json:"score"`
	ComfortScore     float64               `json:"comfort_score"`
	ExplorationScore float64               `json:"exploration_score"`
	IsDiscovery      bool                  `json:"is_discovery"`
	ScoreBreakdown   domain.ScoreBreakdown `json:"score_breakdown"`
}

func (r *ExplainRepository) GenerateExplanations(
	ctx context.Context,
	query string,
	constraints domain.Constraints,
	preset string,
	items []domain.ScoredItem,
) ([]domain.Explanation, error) {

	if r.cfg.APIKey == "" {
		return nil, fmt.Errorf("openai api key not configured")
	}

	userPrompt, err := buildUserPrompt(query, constraints, preset, items)
	if err != nil {
		return nil, err
	}

	reqBody := chatRequest{
		Model: r.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: 0.3,
		MaxTokens:   2000,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.cfg.URL, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+r.cfg.APIKey)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("explanation request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openai api error (status %d): %s", resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if len(chatResp.Choices) == 0 {
		return nil, fmt.Errorf("no choices returned")
	}

	content := stripCodeFences(chatResp.Choices[0].Message.Content)

	var explanations []domain.Explanation
	if err := json.Unmarshal([]byte(content), &explanations); err != nil {
		return nil, fmt.Errorf("failed to parse explanations: %w", err)
	}

	return explanations, nil
}

func buildUserPrompt(query string, c domain.Constraints, preset string, items []domain.ScoredItem) (string, error) {
	summary := make([]promptItem, 0, len(items))
	for _, item := range items {
		summary = append(summary, promptItem{
			ID:               item.Item.ItemID,
			Name:             item.Item.Name,
			Price:            item.Item.Price,
			TimeMinutes:      item.Item.TimeMinutes,
			Score:            item.Score,
			ComfortScore:     item.Item.ComfortScore,
			ExplorationScore: item.Item.ExplorationScore,
			IsDiscovery:      item.IsDiscovery,
			ScoreBreakdown:   item.Breakdown,
		})
	}

	itemsJSON, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal items: %w", err)
	}

	if preset == "" {
		preset = "none"
	}

	return fmt.Sprintf(`User query: %q

Constraints:
- Budget: %.2f
- Time: %.0f minutes
- Comfort vs Exploration slider: %.2f (0=comfort, 1=exploration)
- Preset: %s

Ranked items (already scored by the deterministic engine):
%s

Generate explanations for each item.`,
		query, c.Budget, c.TimeLimit, c.ComfortVsExploration, preset, string(itemsJSON)), nil
}

// stripCodeFences removes a leading/trailing markdown fence some models
// wrap JSON output in.
func stripCodeFences(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}

	if idx := strings.Index(content, "\n"); idx >= 0 {
		content = content[idx+1:]
	}
	content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	return strings.TrimSpace(content)
}
