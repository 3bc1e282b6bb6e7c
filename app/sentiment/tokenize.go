package sentiment

import (
	"strings"
	"unicode"
)

// Token is a lower-cased word or a clause boundary.
type Token struct {
	Text     string
	Boundary bool
}

// isClauseBreak reports whether r ends a clause for modifier scope.
func isClauseBreak(r rune) bool {
	switch r {
	case '.', ',', ';', ':', '!', '?':
		return true
	}
	return false
}

// Tokenize splits text into lower-cased words and clause boundaries.
// Apostrophes inside a word are kept so that contractions stay whole.
func Tokenize(text string) []Token {
	var (
		tokens []Token
		b      strings.Builder
	)
	flush := func() {
		if b.Len() == 0 {
			return
		}
		w := strings.Trim(b.String(), "'")
		if w != "" {
			tokens = append(tokens, Token{Text: w})
		}
		b.Reset()
	}
	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToLower(r))
		case r == '\'' || r == '’':
			if b.Len() > 0 {
				b.WriteRune('\'')
			}
		default:
			flush()
			if isClauseBreak(r) {
				if n := len(tokens); n > 0 && !tokens[n-1].Boundary {
					tokens = append(tokens, Token{Boundary: true})
				}
			}
		}
	}
	flush()
	return tokens
}

// Words returns only the word tokens of text.
func Words(text string) []string {
	tokens := Tokenize(text)
	words := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if !t.Boundary {
			words = append(words, t.Text)
		}
	}
	return words
}
