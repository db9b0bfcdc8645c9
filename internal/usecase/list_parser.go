package usecase

import "strings"

// ParseShoppingList turns newline-delimited text (typed in or read from an
// uploaded .txt file) into a list of item tokens. Blank lines are dropped,
// surrounding whitespace is trimmed, ordering and duplicates are preserved.
func ParseShoppingList(text string) []string {
	var items []string
	for _, line := range strings.Split(text, "\n") {
		item := strings.TrimSpace(line)
		if item == "" {
			continue
		}
		items = append(items, item)
	}
	return items
}

// normalizeToken lowercases a store or item name for keyword matching.
func normalizeToken(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
