package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultRequestTimeout = 30 * time.Second

// ChatCompletionsClient talks to any OpenAI-compatible chat-completions
// endpoint. Every request carries a bounded timeout; a timeout is the same
// failure class as any other upstream error.
type ChatCompletionsClient struct {
	apiBase    string
	apiKey     string
	model      string
	timeout    time.Duration
	httpClient *http.Client
}

type ClientOptions struct {
	APIBase string
	APIKey  string
	Model   string
	Proxy   string
	Timeout time.Duration
}

func NewChatCompletionsClient(opts ClientOptions) (*ChatCompletionsClient, error) {
	apiBase := strings.TrimRight(strings.TrimSpace(opts.APIBase), "/")
	if apiBase == "" {
		return nil, fmt.Errorf("completion API base not configured")
	}
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, fmt.Errorf("completion API key not configured")
	}
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		return nil, fmt.Errorf("completion model not configured")
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	client := &http.Client{Timeout: timeout}
	if proxy := strings.TrimSpace(opts.Proxy); proxy != "" {
		proxyURL, err := url.Parse(proxy)
		if err != nil {
			return nil, fmt.Errorf("parse completion proxy: %w", err)
		}
		client.Transport = &http.Transport{Proxy: http.ProxyURL(proxyURL)}
	}

	return &ChatCompletionsClient{
		apiBase:    apiBase,
		apiKey:     strings.TrimSpace(opts.APIKey),
		model:      model,
		timeout:    timeout,
		httpClient: client,
	}, nil
}

func (c *ChatCompletionsClient) Complete(ctx context.Context, system []string, messages []Message, maxTokens int, temperature float64) (string, error) {
	payload := make([]Message, 0, len(system)+len(messages))
	for _, instruction := range system {
		if strings.TrimSpace(instruction) == "" {
			continue
		}
		payload = append(payload, Message{Role: "system", Content: instruction})
	}
	payload = append(payload, messages...)

	requestBody := map[string]interface{}{
		"model":    c.model,
		"messages": payload,
	}
	if maxTokens > 0 {
		requestBody["max_tokens"] = maxTokens
	}
	if temperature > 0 {
		requestBody["temperature"] = temperature
	}

	jsonData, err := json.Marshal(requestBody)
	if err != nil {
		return "", fmt.Errorf("marshal completion request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	endpoint := c.apiBase + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("create completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: send request: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read response: %v", ErrUpstream, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("%w: status=%d error=%s", ErrUpstream, resp.StatusCode, extractAPIError(body))
	}

	text, err := parseChatCompletionsResponse(body)
	if err != nil {
		return "", fmt.Errorf("%w: parse response: %v", ErrUpstream, err)
	}
	return text, nil
}

func parseChatCompletionsResponse(body []byte) (string, error) {
	var apiResponse struct {
		Choices []struct {
			Message struct {
				Content interface{} `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := json.Unmarshal(body, &apiResponse); err != nil {
		return "", err
	}
	if len(apiResponse.Choices) == 0 {
		return "", nil
	}
	return flattenMessageContent(apiResponse.Choices[0].Message.Content), nil
}

// flattenMessageContent handles providers that return content as a string or
// as a list of typed parts.
func flattenMessageContent(raw interface{}) string {
	switch v := raw.(type) {
	case string:
		return v
	case []interface{}:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			m, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			if text, ok := m["text"].(string); ok {
				parts = append(parts, text)
				continue
			}
			if content, ok := m["content"].(string); ok {
				parts = append(parts, content)
			}
		}
		return strings.Join(parts, "")
	default:
		return ""
	}
}

func extractAPIError(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return "empty response body"
	}

	var payload struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if msg := strings.TrimSpace(payload.Error.Message); msg != "" {
			return msg
		}
		if msg := strings.TrimSpace(payload.Message); msg != "" {
			return msg
		}
	}

	if len(trimmed) > 2000 {
		return trimmed[:2000] + "..."
	}
	return trimmed
}
