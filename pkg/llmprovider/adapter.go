package llmprovider

import (
	"context"
	"errors"

	"goal-planner/pkg/gemini"
	"goal-planner/pkg/openaicompat"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IClient
}

func NewGeminiAdapter(client gemini.IClient) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || len(req.Messages) == 0 {
		return nil, ErrInvalidRequest
	}

	msgs := make([]gemini.Message, len(req.Messages))
	for i, m := range req.Messages {
		msgs[i] = gemini.Message{Role: m.Role, Text: m.Text}
	}

	resp, err := a.client.GenerateContent(ctx, &gemini.Request{
		SystemInstruction: req.SystemInstruction,
		Messages:          msgs,
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
		JSONOutput:        req.JSONOutput,
	})
	if err != nil {
		status := 0
		var apiErr *gemini.APIError
		if errors.As(err, &apiErr) {
			status = apiErr.StatusCode
		}
		return nil, classify(a.Name(), status, err)
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

func (a *GeminiAdapter) Name() string {
	return "gemini"
}

func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// OpenAICompatAdapter adapts pkg/openaicompat (Qwen, DeepSeek) to the
// Provider interface.
type OpenAICompatAdapter struct {
	name   string
	client openaicompat.IClient
}

func NewOpenAICompatAdapter(name string, client openaicompat.IClient) *OpenAICompatAdapter {
	return &OpenAICompatAdapter{name: name, client: client}
}

// GenerateContent implements Provider interface
func (a *OpenAICompatAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || len(req.Messages) == 0 {
		return nil, ErrInvalidRequest
	}

	msgs := make([]openaicompat.Message, len(req.Messages))
	for i, m := range req.Messages {
		msgs[i] = openaicompat.Message{Role: m.Role, Text: m.Text}
	}

	resp, err := a.client.GenerateContent(ctx, &openaicompat.Request{
		SystemInstruction: req.SystemInstruction,
		Messages:          msgs,
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
		JSONOutput:        req.JSONOutput,
	})
	if err != nil {
		status := 0
		var apiErr *openaicompat.APIError
		if errors.As(err, &apiErr) {
			status = apiErr.StatusCode
		}
		return nil, classify(a.Name(), status, err)
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

func (a *OpenAICompatAdapter) Name() string {
	return a.name
}

func (a *OpenAICompatAdapter) Model() string {
	return a.client.Model()
}
