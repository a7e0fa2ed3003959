package openaicompat

import (
	"errors"
	"fmt"
	"net/http"
)

// Config holds the client settings. APIKey and a known Vendor or an
// explicit BaseURL and Model are required.
type Config struct {
	Vendor     string
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// Validate checks the config and fills vendor defaults.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return errors.New("openaicompat: api key is required")
	}
	switch c.Vendor {
	case VendorQwen:
		c.BaseURL = orDefault(c.BaseURL, qwenBaseURL)
		c.Model = orDefault(c.Model, qwenModel)
	case VendorDeepSeek:
		c.BaseURL = orDefault(c.BaseURL, deepSeekBaseURL)
		c.Model = orDefault(c.Model, deepSeekModel)
	}
	if c.BaseURL == "" || c.Model == "" {
		return fmt.Errorf("openaicompat: base url and model are required for vendor %q", c.Vendor)
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// Request is a plain-text chat request.
type Request struct {
	SystemInstruction string
	Messages          []Message
	Temperature       float64
	MaxTokens         int
	// JSONOutput sets response_format to json_object.
	JSONOutput bool
}

// Message is one conversation turn. Role is "user" or "assistant".
type Message struct {
	Role string
	Text string
}

type Response struct {
	Text         string
	FinishReason string
	Usage        Usage
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// APIError is returned for any non-200 answer from the API.
type APIError struct {
	Vendor     string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: API error %d: %s", e.Vendor, e.StatusCode, e.Body)
}

// Temporary reports whether retrying the same request may succeed.
func (e *APIError) Temporary() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError
}

type clientImpl struct {
	vendor     string
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// Wire format of the chat-completions endpoint.

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature,omitempty"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []chatChoice `json:"choices"`
	Usage   chatUsage    `json:"usage"`
}

type chatChoice struct {
	Message      chatMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}

type chatUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}
