package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test Plan for CLI helpers:
// - redactKey hides short keys entirely
// - redactKey keeps a recognizable prefix and suffix for long keys

func TestRedactKey_ShortKeyFullyHidden(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", redactKey(""))
	assert.Equal(t, "********", redactKey("sk-short"))
}

func TestRedactKey_LongKeyKeepsEnds(t *testing.T) {
	t.Parallel()

	redacted := redactKey("sk-test-1234567890abcd")

	assert.Equal(t, "sk-t****abcd", redacted)
	assert.NotContains(t, redacted, "1234567890")
}
