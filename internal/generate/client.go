package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// systemPrompt pins the model to a bare JSON object matching the mob record
// schema.
const systemPrompt = `You are a Minecraft Bedrock addon designer.
Return ONLY a single valid JSON object. No markdown, no comments, no explanation.

Example response:
{"name": "Flame Golem", "health": 80, "attack_damage": 12, "abilities": ["melee attack", "explode"], "loot": [{"item": "minecraft:iron_ingot", "min": 1, "max": 3}]}

Schema:
- name: string
- health: integer 1-1000
- attack_damage: integer 1-100
- abilities: array of strings
- loot: array of {"item": "minecraft:item_id", "min": integer, "max": integer}`

// ClientConfig configures the Ollama generation endpoint and HTTP behavior.
type ClientConfig struct {
	BaseURL    string
	Model      string
	HTTPClient *http.Client
}

// Client invokes an Ollama model over its generate endpoint.
type Client struct {
	cfg ClientConfig
}

// NewClient builds a generation client with defaults applied.
func NewClient(cfg ClientConfig) *Client {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = "http://localhost:11434"
	}
	if strings.TrimSpace(cfg.Model) == "" {
		cfg.Model = "deepseek-coder"
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 120 * time.Second}
	}
	return &Client{cfg: cfg}
}

// Invoke posts the prompt to the model and returns its raw text output.
// Transport failures surface as ErrUnavailable; non-2xx statuses and decode
// failures are returned as plain errors for the caller's retry loop.
func (c *Client) Invoke(ctx context.Context, prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", fmt.Errorf("prompt is required")
	}

	requestBody, err := json.Marshal(map[string]any{
		"model":  c.cfg.Model,
		"system": systemPrompt,
		"prompt": prompt,
		"stream": false,
		"format": "json",
	})
	if err != nil {
		return "", fmt.Errorf("marshal generate request: %w", err)
	}

	url := strings.TrimRight(c.cfg.BaseURL, "/") + "/api/generate"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(requestBody))
	if err != nil {
		return "", fmt.Errorf("build generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.cfg.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		body, err := io.ReadAll(io.LimitReader(res.Body, 4096))
		if err != nil {
			return "", fmt.Errorf("read generate error body: %w", err)
		}
		return "", fmt.Errorf("generate request status %d: %s", res.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload struct {
		Response string `json:"response"`
	}
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode generate response: %w", err)
	}
	if strings.TrimSpace(payload.Response) == "" {
		return "", fmt.Errorf("generate response missing output text")
	}
	return payload.Response, nil
}
