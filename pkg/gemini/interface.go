package gemini

import "context"

// IClient calls generateContent on one model. Safe for concurrent use.
type IClient interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

// New validates cfg, filling the default model, URL and HTTP client.
func New(cfg Config) (IClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGeminiImpl(cfg), nil
}
