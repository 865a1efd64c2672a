package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidUsername(t *testing.T) {
	tests := []struct {
		username string
		want     bool
	}{
		{"camper", true},
		{"fcc1a2b3c4d5e6", true},
		{"a-b-c", true},
		{"abc", true},
		{"ab", false},
		{"", false},
		{"UPPER", false},
		{"-leading", false},
		{"trailing-", false},
		{"under_score", false},
		{"with space", false},
		{"settings", false},
		{"signin", false},
		{"this-handle-is-way-too-long-to-pass", false},
	}

	for _, tt := range tests {
		t.Run(tt.username, func(t *testing.T) {
			assert.Equal(t, tt.want, validUsername(tt.username))
		})
	}
}

func TestValidEmail(t *testing.T) {
	assert.True(t, validEmail("camper@example.com"))
	assert.True(t, validEmail("first.last+tag@sub.example.org"))
	assert.False(t, validEmail(""))
	assert.False(t, validEmail("not-an-email"))
	assert.False(t, validEmail("Quincy <quincy@example.com>"))
}

func TestValidHTTPURL(t *testing.T) {
	assert.True(t, validHTTPURL("https://example.com/page"))
	assert.True(t, validHTTPURL("http://example.com"))
	assert.False(t, validHTTPURL("ftp://example.com"))
	assert.False(t, validHTTPURL("javascript:alert(1)"))
	assert.False(t, validHTTPURL("/relative/path"))
	assert.False(t, validHTTPURL(""))

	assert.True(t, optionalHTTPURL(""))
	assert.False(t, optionalHTTPURL("not a url"))
}
