package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsBannedWord(t *testing.T) {
	tests := []struct {
		name    string
		content string
		banned  bool
	}{
		{"clean post", "Welcome to the community!", false},
		{"exact banned word", "spam", true},
		{"banned word in sentence", "please stop the abuse here", true},
		{"mixed case", "This is SPAM everyone", true},
		{"substring of a larger word", "that joke was offensively bad", true},
		{"empty content", "", false},
		{"unrelated words", "the exam was hard but fair", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.banned, ContainsBannedWord(tt.content))
		})
	}
}
