// Package ulid provides a thin, prefix-aware wrapper around
// github.com/oklog/ulid/v2 for generating request and review identifiers.
package ulid

import (
	"crypto/rand"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Common prefixes for different parts of the application
const (
	// Prefix for request IDs
	PrefixRequest = "req"

	// Prefix for review-related ULIDs
	PrefixReview = "rev"

	// PrefixSeparator is used to separate the prefix from the ULID
	PrefixSeparator = "-"
)

var (
	entropy     = ulid.Monotonic(rand.Reader, 0)
	entropyLock sync.Mutex
)

// ULID wraps ulid.ULID with an optional domain prefix.
type ULID struct {
	ulid.ULID
	prefix string
}

// Generate creates a new ULID with the current timestamp.
func Generate() ULID {
	return NewWithTime(time.Now())
}

// GenerateWithPrefix creates a new ULID with the current timestamp and a
// prefix providing context about what the ID represents.
func GenerateWithPrefix(prefix string) ULID {
	id := NewWithTime(time.Now())
	id.prefix = prefix
	return id
}

// NewWithTime creates a new ULID with a specific timestamp.
func NewWithTime(t time.Time) ULID {
	entropyLock.Lock()
	id := ulid.MustNew(ulid.Timestamp(t), entropy)
	entropyLock.Unlock()
	return ULID{id, ""}
}

// Parse parses a ULID string, handling both plain ULIDs and prefixed ones
// (e.g. "rev-01AN4Z07BY79KA1307SR9X4MV3").
func Parse(id string) (ULID, error) {
	parts := strings.SplitN(id, PrefixSeparator, 2)

	var rawID, prefix string
	if len(parts) == 2 {
		prefix = parts[0]
		rawID = parts[1]
	} else {
		rawID = id
	}

	parsed, err := ulid.Parse(rawID)
	if err != nil {
		return ULID{}, err
	}

	return ULID{parsed, prefix}, nil
}

// Validate checks if a string is a valid (optionally prefixed) ULID.
func Validate(id string) bool {
	_, err := Parse(id)
	return err == nil
}

// IsZero returns true if the ULID is the zero value.
func (u ULID) IsZero() bool {
	return u.ULID == ulid.ULID{}
}

// Prefix returns the prefix of the ULID.
func (u ULID) Prefix() string {
	return u.prefix
}

// String returns the string representation of the ULID.
// If the ULID has a prefix, it's included in the format "prefix-ulid".
func (u ULID) String() string {
	if u.prefix != "" {
		return u.prefix + PrefixSeparator + u.ULID.String()
	}
	return u.ULID.String()
}

// Time returns the timestamp component of the ULID.
func (u ULID) Time() time.Time {
	return ulid.Time(u.ULID.Time())
}

// MarshalJSON implements the json.Marshaler interface.
func (u ULID) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (u *ULID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// RequestID generates a new ULID with the request prefix
func RequestID() string {
	return GenerateWithPrefix(PrefixRequest).String()
}

// ReviewID generates a new ULID with the review prefix
func ReviewID() string {
	return GenerateWithPrefix(PrefixReview).String()
}
