package textgen

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/tidwall/gjson"
)

const (
	groqEndpoint = "https://api.groq.com/openai/v1/chat/completions"
	groqModel    = "llama-3.1-70b-versatile"
)

type groqClient struct {
	apiKey string
	http   *retryablehttp.Client
	logger *slog.Logger
}

func newGroq(apiKey string, logger *slog.Logger) *groqClient {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 1
	rc.Logger = nil
	return &groqClient{apiKey: apiKey, http: rc, logger: logger}
}

// Generate sends one prompt through the chat completions endpoint and
// returns the first choice's content.
func (g *groqClient) Generate(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(map[string]any{
		"model":       groqModel,
		"temperature": 0.2,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal groq request: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, groqEndpoint, payload)
	if err != nil {
		return "", fmt.Errorf("build groq request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("groq request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read groq response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("groq status %d", resp.StatusCode)
	}

	text := gjson.GetBytes(body, "choices.0.message.content").String()
	if text == "" {
		return "", fmt.Errorf("groq returned no text")
	}
	return text, nil
}
