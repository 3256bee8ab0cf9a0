package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeSuggestion(t *testing.T) {
	assert.Equal(t, "spend less on takeout", sanitizeSuggestion("spend less on takeout"))
	assert.Equal(t, "héllo", sanitizeSuggestion("héllo"))
	assert.Equal(t, "ab", sanitizeSuggestion("a\xffb"))
	assert.Equal(t, "", sanitizeSuggestion("\xfe\xff"))
}
