package openaicompat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

func newClientImpl(cfg Config) *clientImpl {
	vendor := cfg.Vendor
	if vendor == "" {
		vendor = "openaicompat"
	}
	return &clientImpl{
		vendor:     vendor,
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}
}

// GenerateContent sends a chat-completions request.
func (c *clientImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || len(req.Messages) == 0 {
		return nil, fmt.Errorf("%s: request has no messages", c.vendor)
	}

	body, err := json.Marshal(c.transformRequest(req))
	if err != nil {
		return nil, fmt.Errorf("%s: failed to marshal request: %w", c.vendor, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+chatCompletions, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create request: %w", c.vendor, err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%s: API call failed: %w", c.vendor, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &APIError{Vendor: c.vendor, StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%s: failed to decode response: %w", c.vendor, err)
	}
	return transformResponse(&out), nil
}

func (c *clientImpl) Model() string {
	return c.model
}

func (c *clientImpl) transformRequest(req *Request) chatRequest {
	out := chatRequest{
		Model:       c.model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]chatMessage, 0, len(req.Messages)+1),
	}
	if req.SystemInstruction != "" {
		out.Messages = append(out.Messages, chatMessage{Role: roleSystem, Content: req.SystemInstruction})
	}
	for _, m := range req.Messages {
		role := m.Role
		if role == "" {
			role = "user"
		}
		out.Messages = append(out.Messages, chatMessage{Role: role, Content: m.Text})
	}
	if req.JSONOutput {
		out.ResponseFormat = &responseFormat{Type: jsonObjectFormat}
	}
	return out
}

func transformResponse(resp *chatResponse) *Response {
	out := &Response{
		Usage: Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
	if len(resp.Choices) > 0 {
		out.Text = resp.Choices[0].Message.Content
		out.FinishReason = resp.Choices[0].FinishReason
	}
	return out
}
