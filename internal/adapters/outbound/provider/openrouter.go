// Package provider implements the domain.RepairProvider port for the two
// known external repair services. Both return raw model output; fence
// stripping happens in the orchestrator.
package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/codelens/codelens/internal/domain"
)

const repairSystemPrompt = "You are a strict code fixer. Return ONLY corrected code, no explanations."

// OpenRouterClient submits repair requests to the OpenRouter
// chat-completions API.
type OpenRouterClient struct {
	cfg        domain.ProviderConfig
	httpClient *http.Client
	log        *zap.Logger
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
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func NewOpenRouterClient(cfg domain.ProviderConfig, log *zap.Logger) *OpenRouterClient {
	if log == nil {
		log = zap.NewNop()
	}
	return &OpenRouterClient{
		cfg:        cfg,
		httpClient: &http.Client{},
		log:        log,
	}
}

func (c *OpenRouterClient) Name() string     { return domain.SourceOpenRouter }
func (c *OpenRouterClient) Configured() bool { return c.cfg.Configured() }

func (c *OpenRouterClient) SubmitRepair(ctx context.Context, code string, lang domain.Language, errorSummary string) (string, error) {
	body := chatRequest{
		Model:       c.cfg.Model,
		Temperature: 0.1,
		MaxTokens:   2000,
		Messages: []chatMessage{
			{Role: "system", Content: repairSystemPrompt},
			{Role: "user", Content: fmt.Sprintf(
				"Language: %s. Fix these errors so code parses and runs:\n%s\n\nCode:\n%s",
				lang, errorSummary, code)},
		},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("X-Title", "codelens")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling openrouter: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.log.Debug("openrouter non-200", zap.Int("status", resp.StatusCode))
		return "", fmt.Errorf("openrouter status %d: %s", resp.StatusCode, string(raw))
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", nil
	}
	return parsed.Choices[0].Message.Content, nil
}
