package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"audit-backend/internal/llm"
)

const (
	temperature = 0.1
	maxTokens   = 4096

	systemPrompt = "You are a compliance analyst. You extract structured data from CIP/CDD onboarding procedure documents and respond only with JSON."
)

// Client implements llm.Client using OpenAI Chat Completions via
// github.com/sashabaranov/go-openai.
type Client struct {
	api   *openai.Client
	model string
}

// NewClient constructs a new OpenAI client.
func NewClient(apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("LLM_MODEL is required")
	}
	return &Client{api: openai.NewClient(apiKey), model: model}, nil
}

// newClientWithConfig is used by tests to point the client at a fake server.
func newClientWithConfig(cfg openai.ClientConfig, model string) *Client {
	return &Client{api: openai.NewClientWithConfig(cfg), model: model}
}

// ExtractProcedures sends the procedure text with the fixed extraction
// prompt and maps the completion into an llm.ExtractResult.
func (c *Client) ExtractProcedures(ctx context.Context, input llm.ExtractInput) (llm.ExtractResult, error) {
	req := openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: temperature,
		MaxTokens:   maxTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildUserMessage(input)},
		},
	}

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return llm.ExtractResult{}, err
	}
	if len(resp.Choices) == 0 {
		return llm.ExtractResult{}, fmt.Errorf("openai response missing choices")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return llm.ExtractResult{}, fmt.Errorf("openai response empty content")
	}

	return llm.ExtractResult{
		Payload:    json.RawMessage(content),
		TokensUsed: resp.Usage.TotalTokens,
	}, nil
}

func buildUserMessage(input llm.ExtractInput) string {
	var b strings.Builder
	b.WriteString(llm.ExtractionPrompt())
	if name := strings.TrimSpace(input.SourceFileName); name != "" {
		b.WriteString("\nSource file: ")
		b.WriteString(name)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(input.ProceduresText)
	return b.String()
}

var _ llm.Client = (*Client)(nil)
