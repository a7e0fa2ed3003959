package llmprovider

import "context"

// Provider defines the interface for LLM providers
type Provider interface {
	// GenerateContent sends a generation request and returns a response
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "gemini", "anthropic")
	Name() string

	// Model returns the model being used
	Model() string
}

// Request represents a normalized LLM generation request
type Request struct {
	SystemInstruction string
	Messages          []Message
	Temperature       float64
	MaxTokens         int
	// JSONOutput hints that the caller expects a JSON document back.
	// Providers without a native JSON mode ignore it.
	JSONOutput bool
}

// Message represents a conversation message
type Message struct {
	Role string // "user", "assistant"
	Text string
}

// UserMessage is a shorthand for a single user turn.
func UserMessage(text string) Message {
	return Message{Role: RoleUser, Text: text}
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Response represents a normalized LLM generation response
type Response struct {
	Text         string
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
