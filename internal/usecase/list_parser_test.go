package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseShoppingList(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "simple list",
			text: "pasta\nlatte\npane",
			want: []string{"pasta", "latte", "pane"},
		},
		{
			name: "trims whitespace and drops blank lines",
			text: "  pasta  \n\n\tlatte\n   \npane\n",
			want: []string{"pasta", "latte", "pane"},
		},
		{
			name: "windows line endings",
			text: "pasta\r\nlatte",
			want: []string{"pasta", "latte"},
		},
		{
			name: "preserves duplicates and order",
			text: "latte\npasta\nlatte",
			want: []string{"latte", "pasta", "latte"},
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
		{
			name: "only whitespace",
			text: "  \n\t\n ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseShoppingList(tt.text))
		})
	}
}

func TestNormalizeToken(t *testing.T) {
	assert.Equal(t, "esselunga", normalizeToken("  Esselunga "))
	assert.Equal(t, "naturasì bio", normalizeToken("NaturaSì Bio"))
}
