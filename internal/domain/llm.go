package domain

import "context"

// ChatRole is the sender of a chat message
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatMessage is one turn of a chat conversation
type ChatMessage struct {
	Role    ChatRole
	Content string
}

// ResponseSchema describes the JSON document a model is asked to return.
// Providers that support structured output forward it; the others only
// switch to JSON mode.
type ResponseSchema struct {
	Name       string
	Definition map[string]any
}

// ChatRequest is a single chat-completion call
type ChatRequest struct {
	System    string
	Messages  []ChatMessage
	MaxTokens int
	// JSONMode asks the provider for a JSON object response.
	JSONMode bool
	Schema   *ResponseSchema
}

// TokenUsage reports token consumption of one call
type TokenUsage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// ChatCompletion is the text a model produced for a ChatRequest
type ChatCompletion struct {
	Content    string
	Model      string
	StopReason string
	Usage      TokenUsage
}

// ChatModel is the port to a hosted chat-completion API.
// Implementations make exactly one attempt per call.
type ChatModel interface {
	Complete(ctx context.Context, req ChatRequest) (*ChatCompletion, error)
	ModelID() string
}
