package review

import (
	"time"
)

// Review is the outcome of one review generation. It lives for the duration
// of a single pipeline invocation and is never persisted.
type Review struct {
	ID           string    // rev-prefixed ULID
	Model        string    // model that produced the text, empty for the not-configured notice
	Text         string    // the review markdown as returned by the API
	CreatedAt    time.Time // generation time
	InputTokens  int
	OutputTokens int
}
