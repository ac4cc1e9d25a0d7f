package claude

import (
	"fmt"
)

// Message represents a chat message
type Message struct {
	Role    string `json:"role"` // user or assistant
	Content string `json:"content"`
}

// MessagesRequest represents a request to the Claude messages endpoint
type MessagesRequest struct {
	Model     string    `json:"model"`                // Claude model to use (e.g., "claude-3-sonnet-20240229")
	Messages  []Message `json:"messages"`             // Conversation messages
	System    string    `json:"system,omitempty"`     // System instructions
	MaxTokens int       `json:"max_tokens,omitempty"` // Maximum tokens to generate
}

// ContentBlock represents a block of content in a response.
// Claude responses can contain multiple content blocks of different types.
type ContentBlock struct {
	Type string `json:"type"` // Content type (e.g., "text", "thinking")
	Text string `json:"text"` // The actual content text
}

// MessagesResponse represents the full message response from the Claude API
type MessagesResponse struct {
	ID         string         `json:"id"`          // Message ID
	Type       string         `json:"type"`        // Message type
	Role       string         `json:"role"`        // Message role (e.g., "assistant")
	Content    []ContentBlock `json:"content"`     // Message content blocks
	Model      string         `json:"model"`       // Model used
	StopReason string         `json:"stop_reason"` // Reason why generation stopped
	Usage      *UsageInfo     `json:"usage,omitempty"`
}

// FirstText returns the text of the first text content block, or the empty
// string if the response carries no text.
func (r *MessagesResponse) FirstText() string {
	for _, block := range r.Content {
		if block.Type == "text" {
			return block.Text
		}
	}
	return ""
}

// UsageInfo contains token usage information for a request
type UsageInfo struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// APIError represents an error response from the Claude API
type APIError struct {
	Type         string `json:"type"`
	ErrorDetails struct {
		Type    string `json:"type"`    // Error type
		Message string `json:"message"` // Error message
	} `json:"error"`
}

// Error implements the error interface for APIError
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorDetails.Type, e.ErrorDetails.Message)
}
