package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"google.golang.org/genai"
)

const GeminiProviderName = "gemini"

type GeminiParams struct {
	APIKey string
	Model  string
	// Endpoint overrides the Gemini API base URL, empty means the default.
	Endpoint string
	// Transport defaults to a traced http.DefaultTransport.
	Transport http.RoundTripper
}

type GeminiProvider struct {
	client *genai.Client
	model  string
}

func NewGeminiProvider(ctx context.Context, params GeminiParams) (*GeminiProvider, error) {
	if params.APIKey == "" {
		return nil, errors.New("gemini api key not set")
	}

	transport := params.Transport
	if transport == nil {
		transport = otelhttp.NewTransport(http.DefaultTransport)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     params.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Transport: transport},
		HTTPOptions: genai.HTTPOptions{
			BaseURL: params.Endpoint,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("new genai client: %w", err)
	}

	return &GeminiProvider{
		client: client,
		model:  strings.TrimPrefix(params.Model, "models/"),
	}, nil
}

func (p *GeminiProvider) Name() string {
	return GeminiProviderName
}

// Complete sends the system prompt and the prompt as a single user turn.
func (p *GeminiProvider) Complete(ctx context.Context, system, prompt string, maxTokens int) (string, error) {
	fullPrompt := prompt
	if system != "" {
		fullPrompt = system + "\n\n" + prompt
	}

	resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(fullPrompt), &genai.GenerateContentConfig{
		MaxOutputTokens: int32(maxTokens),
	})
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("no candidates in response")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && !part.Thought {
			sb.WriteString(part.Text)
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("empty candidate, finish reason: %s", resp.Candidates[0].FinishReason)
	}

	return sb.String(), nil
}
