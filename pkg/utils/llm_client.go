package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/api/option"
)

// GenerationClientInterface asks a language model for a JSON document.
type GenerationClientInterface interface {
	GenerateJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	Close() error
}

// NewGenerationClient picks the provider by name. An empty API key yields a
// client that always reports ErrGenerationUnavailable, so startup never
// depends on a credential being present.
func NewGenerationClient(provider, apiKey, model, baseURL string) (GenerationClientInterface, error) {
	if strings.TrimSpace(apiKey) == "" {
		return DisabledGenerationClient{Provider: provider}, nil
	}

	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIGenerationClient(apiKey, model, baseURL), nil
	case "gemini":
		return NewGeminiGenerationClient(context.Background(), apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}

type DisabledGenerationClient struct {
	Provider string
}

func (d DisabledGenerationClient) GenerateJSON(context.Context, string, string) (string, error) {
	return "", fmt.Errorf("%s: %w", d.Provider, ErrGenerationUnavailable)
}

func (d DisabledGenerationClient) Close() error { return nil }

type OpenAIGenerationClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIGenerationClient(apiKey, model, baseURL string) *OpenAIGenerationClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = openai.GPT4o
	}
	return &OpenAIGenerationClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (c *OpenAIGenerationClient) GenerateJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices: %w", ErrUnexpectedBehaviorOfAI)
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *OpenAIGenerationClient) Close() error { return nil }

// GeminiGenerationClient implements GenerationClientInterface using Google's Gemini models
type GeminiGenerationClient struct {
	client *genai.Client
	model  string
}

func NewGeminiGenerationClient(ctx context.Context, apiKey, model string) (*GeminiGenerationClient, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiGenerationClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiGenerationClient) GenerateJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.ResponseMIMEType = "application/json"
	m.SystemInstruction = genai.NewUserContent(genai.Text(systemPrompt))
	m.SetTemperature(0.2)

	resp, err := m.GenerateContent(ctx, genai.Text(userPrompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates: %w", ErrUnexpectedBehaviorOfAI)
	}

	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			out.WriteString(string(text))
		}
	}
	if out.Len() == 0 {
		return "", fmt.Errorf("gemini returned no text: %w", ErrUnexpectedBehaviorOfAI)
	}
	return out.String(), nil
}

func (c *GeminiGenerationClient) Close() error {
	return c.client.Close()
}
