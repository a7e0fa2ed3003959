package openaicompat

import "context"

// IClient is a chat-completions client.
// Implementations are safe for concurrent use.
type IClient interface {
	// GenerateContent sends one chat-completions request.
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Model returns the model being used
	Model() string
}

// New creates a client. Vendor picks the default base URL and model.
func New(cfg Config) (IClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newClientImpl(cfg), nil
}
