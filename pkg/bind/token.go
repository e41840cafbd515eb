package bind

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// quotePairs maps opening quote characters to their closing counterpart.
// Standard double quotes plus the typographic and CJK variants users paste
// from phones and word processors.
var quotePairs = map[rune]rune{
	'"': '"',
	'‘': '’',
	'‚': '‛',
	'“': '”',
	'„': '‟',
	'⹂': '⹂',
	'「': '」',
	'『': '』',
	'〝': '〞',
	'﹁': '﹂',
	'﹃': '﹄',
	'＂': '＂',
	'｢': '｣',
	'«': '»',
	'‹': '›',
	'《': '》',
	'〈': '〉',
}

// Tokenize splits raw argument text into whitespace-delimited tokens. A token
// opening with a recognized quote character runs to its matching closing
// quote, spaces included. Quote characters are kept; the binder strips one
// outer pair per token it reads.
func Tokenize(raw string) []string {
	var tokens []string
	runes := []rune(raw)

	i := 0
	for i < len(runes) {
		if unicode.IsSpace(runes[i]) {
			i++
			continue
		}

		start := i
		if closing, ok := quotePairs[runes[i]]; ok {
			i++
			for i < len(runes) && runes[i] != closing {
				i++
			}
			if i < len(runes) {
				i++ // include the closing quote
			}
		} else {
			for i < len(runes) && !unicode.IsSpace(runes[i]) {
				i++
			}
		}
		tokens = append(tokens, string(runes[start:i]))
	}
	return tokens
}

// unquote strips a single matching outer quote pair, if present. Unbalanced
// quotes are left untouched.
func unquote(token string) string {
	open, size := utf8.DecodeRuneInString(token)
	closing, ok := quotePairs[open]
	if !ok {
		return token
	}
	last, lastSize := utf8.DecodeLastRuneInString(token)
	if last != closing || len(token) < size+lastSize {
		return token
	}
	return token[size : len(token)-lastSize]
}

// joinTokens rebuilds a space-separated remainder for consume-rest binding.
func joinTokens(tokens []string) string {
	return strings.Join(tokens, " ")
}
