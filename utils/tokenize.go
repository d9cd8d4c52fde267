package utils

import (
	"regexp"
	"strings"
)

// tokenCharsRegex strips everything that is not an ASCII letter, digit,
// apostrophe or space. Apostrophes survive so contractions like "don't"
// stay one token.
var tokenCharsRegex = regexp.MustCompile(`[^a-zA-Z0-9' ]`)

// TokenizeMessage normalizes message text into matchable tokens:
// punctuation stripped, lowercased, split on spaces, empty tokens
// dropped. Registration, removal and scanning all go through this —
// it is the contract that makes a word registered as "Don't" match a
// message containing "don't!".
func TokenizeMessage(text string) []string {
	cleaned := strings.ToLower(tokenCharsRegex.ReplaceAllString(text, ""))

	tokens := make([]string, 0)
	for _, token := range strings.Split(cleaned, " ") {
		if token == "" {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// NormalizeWords is TokenizeMessage under the name used at the
// registration/removal boundary, where the input is a user-supplied
// word list rather than a message.
func NormalizeWords(text string) []string {
	return TokenizeMessage(text)
}
