// Package engine resolves and renders prompt templates.
//
// A template contains placeholders of the form {{name}}, where name is one or
// more ASCII letters, digits or underscores, optionally surrounded by
// whitespace inside the braces. Rendering is a three step pipeline: Scan finds
// the variable names, a Resolver binds a value to each of them, and Render
// substitutes the values back into the text.
package engine

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// token is one placeholder occurrence: text[start:end] is the whole
// "{{ name }}" sequence.
type token struct {
	start int
	end   int
	name  string
}

// Scan returns the distinct placeholder names in text in lexicographic order.
// Malformed placeholders are not variables and are skipped silently.
func Scan(text string) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, tok := range scanTokens(text) {
		if _, ok := seen[tok.name]; ok {
			continue
		}
		seen[tok.name] = struct{}{}
		names = append(names, tok.name)
	}
	sort.Strings(names)
	return names
}

// scanTokens finds placeholder tokens left to right. A failed match at an
// opening "{{" resumes one byte later, so "{{{x}}" yields the token "{{x}}".
func scanTokens(text string) []token {
	var tokens []token
	i := 0
	for i+1 < len(text) {
		if text[i] != '{' || text[i+1] != '{' {
			i++
			continue
		}
		if tok, ok := matchToken(text, i); ok {
			tokens = append(tokens, tok)
			i = tok.end
			continue
		}
		i++
	}
	return tokens
}

// matchToken tries to read a placeholder whose "{{" starts at start.
func matchToken(text string, start int) (token, bool) {
	j := skipSpace(text, start+2)

	nameStart := j
	for j < len(text) && isNameByte(text[j]) {
		j++
	}
	if j == nameStart {
		return token{}, false
	}
	name := text[nameStart:j]

	j = skipSpace(text, j)
	if !strings.HasPrefix(text[j:], "}}") {
		return token{}, false
	}

	return token{start: start, end: j + 2, name: name}, true
}

func skipSpace(text string, i int) int {
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !unicode.IsSpace(r) {
			break
		}
		i += size
	}
	return i
}

func isNameByte(b byte) bool {
	return b == '_' ||
		('a' <= b && b <= 'z') ||
		('A' <= b && b <= 'Z') ||
		('0' <= b && b <= '9')
}
