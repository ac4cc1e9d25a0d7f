package ulid

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	id := Generate()
	assert.False(t, id.IsZero())
	assert.Empty(t, id.Prefix())
	assert.Len(t, id.String(), 26)
}

func TestGenerateWithPrefix(t *testing.T) {
	id := GenerateWithPrefix(PrefixReview)
	assert.Equal(t, PrefixReview, id.Prefix())
	assert.True(t, strings.HasPrefix(id.String(), "rev-"))
}

func TestParse(t *testing.T) {
	original := GenerateWithPrefix(PrefixRequest)

	parsed, err := Parse(original.String())
	require.NoError(t, err)
	assert.Equal(t, original.String(), parsed.String())
	assert.Equal(t, PrefixRequest, parsed.Prefix())

	plain := Generate()
	parsed, err = Parse(plain.String())
	require.NoError(t, err)
	assert.Empty(t, parsed.Prefix())

	_, err = Parse("rev-not-a-ulid")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	assert.True(t, Validate(Generate().String()))
	assert.True(t, Validate(ReviewID()))
	assert.False(t, Validate("garbage"))
	assert.False(t, Validate(""))
}

func TestMonotonicOrdering(t *testing.T) {
	ts := time.Now()
	first := NewWithTime(ts)
	second := NewWithTime(ts)
	assert.True(t, first.Compare(second.ULID) < 0)
}

func TestJSONRoundTrip(t *testing.T) {
	id := GenerateWithPrefix(PrefixReview)

	data, err := id.MarshalJSON()
	require.NoError(t, err)

	var decoded ULID
	require.NoError(t, decoded.UnmarshalJSON(data))
	assert.Equal(t, id.String(), decoded.String())
}

func TestHelperIDs(t *testing.T) {
	assert.True(t, strings.HasPrefix(RequestID(), PrefixRequest+PrefixSeparator))
	assert.True(t, strings.HasPrefix(ReviewID(), PrefixReview+PrefixSeparator))
}
