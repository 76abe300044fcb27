package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ValidPrompt(t *testing.T) {
	ClearCache()

	prompt, err := Get("content.json", "post-instruction")
	require.NoError(t, err)
	assert.NotEmpty(t, prompt)
	assert.Contains(t, prompt, "Max length:")
	assert.Contains(t, prompt, "Hashtag limit:")
}

func TestGet_InvalidFile(t *testing.T) {
	ClearCache()

	_, err := Get("nonexistent.json", "some-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read prompt file")
}

func TestGet_InvalidKey(t *testing.T) {
	ClearCache()

	_, err := Get("content.json", "nonexistent-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestMustGet_Panics(t *testing.T) {
	ClearCache()

	assert.Panics(t, func() {
		MustGet("nonexistent.json", "some-key")
	})
}

func TestFormat(t *testing.T) {
	template := "Create a post for {{.Platform}} about {{.Topic}}"
	data := map[string]string{
		"Platform": "twitter",
		"Topic":    "eclipses",
	}

	result := Format(template, data)
	assert.Equal(t, "Create a post for twitter about eclipses", result)
}

func TestFormat_EmptyData(t *testing.T) {
	template := "Hello {{.Name}}"

	result := Format(template, map[string]string{})
	assert.Equal(t, template, result) // Placeholder remains
}
