package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeText(t *testing.T) {
	assert.Equal(t, "hello world", SanitizeText("  <b>hello</b> world<script>alert(1)</script> "))
	assert.Equal(t, "Tom & Jerry's", SanitizeText("Tom & Jerry's"))
	assert.Empty(t, SanitizeText("   "))
}

func TestGravatarURL(t *testing.T) {
	a := GravatarURL("User@Example.com ")
	b := GravatarURL("user@example.com")
	assert.Equal(t, a, b)
	assert.True(t, strings.HasPrefix(a, "https://www.gravatar.com/avatar/"))
}

func TestPasswordHash(t *testing.T) {
	hashed, err := HashPassword("abc12345")
	assert.NoError(t, err)
	assert.True(t, CheckPassword(hashed, "abc12345"))
	assert.False(t, CheckPassword(hashed, "abc123456"))
}
