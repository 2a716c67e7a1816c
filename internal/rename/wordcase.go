package rename

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CapitalizeWords uppercases the first letter of every whitespace separated
// word.
//
// When makeLower is set each word is lowercased first, so "BOB DYLAN"
// becomes "Bob Dylan". A word opening with '(' keeps the parenthesis and
// capitalizes the rune after it. Apart from that first rune the word is left
// as it is. Words are joined with single spaces.
//
// A word that is only "(" stays a separate word and is not glued to the one
// after it: "( live" becomes "( Live", not "(Live".
func CapitalizeWords(text string, makeLower bool) string {
	words := strings.Fields(text)
	for i, word := range words {
		if makeLower {
			word = strings.ToLower(word)
		}
		words[i] = capitalizeWord(word)
	}
	return strings.Join(words, " ")
}

func capitalizeWord(word string) string {
	prefix := ""
	if strings.HasPrefix(word, "(") {
		prefix, word = "(", word[1:]
	}
	if word == "" {
		return prefix
	}
	r, size := utf8.DecodeRuneInString(word)
	return prefix + string(unicode.ToUpper(r)) + word[size:]
}
