package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	GroqProviderName   = "groq"
	chatTemperature    = 0.7
	maxErrorBodyLength = 512
)

type ChatCompletionsParams struct {
	Name    string
	BaseURL string
	APIKey  string
	Model   string
	// HTTPClient is expected to carry tracing, deadlines come from the request context.
	HTTPClient *http.Client
}

// ChatCompletionsProvider talks to any OpenAI compatible chat completions endpoint.
type ChatCompletionsProvider struct {
	name       string
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
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

func NewChatCompletionsProvider(params ChatCompletionsParams) (*ChatCompletionsProvider, error) {
	if params.APIKey == "" {
		return nil, fmt.Errorf("%s api key not set", params.Name)
	}
	if params.BaseURL == "" {
		return nil, fmt.Errorf("%s base url not set", params.Name)
	}

	httpClient := params.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &ChatCompletionsProvider{
		name:       params.Name,
		baseURL:    strings.TrimSuffix(params.BaseURL, "/"),
		apiKey:     params.APIKey,
		model:      params.Model,
		httpClient: httpClient,
	}, nil
}

func (p *ChatCompletionsProvider) Name() string {
	return p.name
}

func (p *ChatCompletionsProvider) Complete(ctx context.Context, system, prompt string, maxTokens int) (string, error) {
	var messages []chatMessage
	if system != "" {
		messages = append(messages, chatMessage{Role: "system", Content: system})
	}
	messages = append(messages, chatMessage{Role: "user", Content: prompt})

	reqBytes, err := json.Marshal(chatRequest{
		Model:       p.model,
		Messages:    messages,
		Temperature: chatTemperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/v1/chat/completions", bytes.NewReader(reqBytes))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if len(respBytes) > maxErrorBodyLength {
			respBytes = respBytes[:maxErrorBodyLength]
		}
		return "", fmt.Errorf("%s returned status %d: %s", p.name, resp.StatusCode, respBytes)
	}

	var chatResp chatResponse
	if err := json.Unmarshal(respBytes, &chatResp); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if len(chatResp.Choices) == 0 {
		return "", errors.New("no choices in response")
	}

	return chatResp.Choices[0].Message.Content, nil
}
