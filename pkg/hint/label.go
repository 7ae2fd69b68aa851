// ABOUTME: Splits hint strings into grapheme clusters and compares typed characters
// ABOUTME: Both sides are NFC-normalized so composed and decomposed forms match

package hint

import (
	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// SplitHint breaks a hint into the characters a user types one at a time.
// A character is a grapheme cluster, so "é" is a single character.
func SplitHint(s string) []string {
	if s == "" {
		return nil
	}
	chars := make([]string, 0, len(s))
	state := -1
	rest := norm.NFC.String(s)
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		chars = append(chars, cluster)
	}
	return chars
}

// sameChar reports whether a typed character equals a hint character.
func sameChar(typed, want string) bool {
	if typed == want {
		return true
	}
	return norm.NFC.String(typed) == want
}
