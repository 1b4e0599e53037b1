package analyze

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncateName(t *testing.T) {
	assert.Equal(t, "short", truncateName("short", 12))
	assert.Equal(t, "exactly-12-c", truncateName("exactly-12-c", 12))
	assert.Equal(t, "abcdefghijk…", truncateName("abcdefghijklmnop", 12))
}

func TestTruncateName_NeverSplitsRunes(t *testing.T) {
	name := strings.Repeat("日", 20) + ".log"
	got := truncateName(name, 12)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, 12, utf8.RuneCountInString(got))
	assert.True(t, strings.HasSuffix(got, "…"))
}
