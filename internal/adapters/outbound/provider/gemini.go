package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/codelens/codelens/internal/domain"
)

// GeminiClient submits repair requests to the Google Generative Language
// API.
type GeminiClient struct {
	cfg        domain.ProviderConfig
	httpClient *http.Client
	log        *zap.Logger
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig struct {
		Temperature     float64 `json:"temperature"`
		MaxOutputTokens int     `json:"maxOutputTokens"`
		TopK            int     `json:"topK"`
		TopP            float64 `json:"topP"`
	} `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func NewGeminiClient(cfg domain.ProviderConfig, log *zap.Logger) *GeminiClient {
	if log == nil {
		log = zap.NewNop()
	}
	return &GeminiClient{
		cfg:        cfg,
		httpClient: &http.Client{},
		log:        log,
	}
}

func (c *GeminiClient) Name() string     { return domain.SourceGoogle }
func (c *GeminiClient) Configured() bool { return c.cfg.Configured() }

func (c *GeminiClient) SubmitRepair(ctx context.Context, code string, lang domain.Language, errorSummary string) (string, error) {
	prompt := fmt.Sprintf(
		"Return ONLY corrected code (no explanations).\nLanguage: %s. Fix these errors so code parses and runs:\n%s\n\nCode:\n",
		lang, errorSummary)

	var body geminiRequest
	body.Contents = []geminiContent{{Parts: []geminiPart{{Text: prompt}, {Text: code}}}}
	body.GenerationConfig.Temperature = 0.1
	body.GenerationConfig.MaxOutputTokens = 2000
	body.GenerationConfig.TopK = 1
	body.GenerationConfig.TopP = 0.8

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.cfg.BaseURL, c.cfg.Model, c.cfg.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling gemini: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.log.Debug("gemini non-200", zap.Int("status", resp.StatusCode))
		return "", fmt.Errorf("gemini status %d: %s", resp.StatusCode, string(raw))
	}

	var parsed geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	if len(parsed.Candidates) == 0 {
		return "", nil
	}

	var b strings.Builder
	for _, part := range parsed.Candidates[0].Content.Parts {
		b.WriteString(part.Text)
	}
	return b.String(), nil
}
