package textstats

import (
	"regexp"
	"strings"
)

// wordPattern matches a maximal run of word characters: letters, digits and
// underscore.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Words returns the word tokens of text with their original case, in text order.
func Words(text string) []string {
	return wordPattern.FindAllString(text, -1)
}

// LowerWords returns the word tokens of the lowercased text.
func LowerWords(text string) []string {
	return wordPattern.FindAllString(strings.ToLower(text), -1)
}
