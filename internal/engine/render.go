package engine

import (
	"fmt"
	"sort"
	"strings"
)

// Binding maps each variable name to its resolved value.
type Binding map[string]string

// Missing returns the names in vars that have no value in b, sorted.
func (b Binding) Missing(vars []string) []string {
	var missing []string
	for _, name := range vars {
		if _, ok := b[name]; !ok {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	return missing
}

// IncompleteBindingError is the panic value raised by Render when a
// placeholder has no bound value. It marks a broken caller, not bad input.
type IncompleteBindingError struct {
	Missing []string
}

func (e *IncompleteBindingError) Error() string {
	return fmt.Sprintf("engine: render called without values for %s", strings.Join(e.Missing, ", "))
}

// Render replaces every placeholder in text with its value from b.
//
// Values are inserted literally and never rescanned, so a value that itself
// looks like a placeholder survives as text. b must bind every name that Scan
// reports for text; Render panics with *IncompleteBindingError otherwise.
func Render(text string, b Binding) string {
	tokens := scanTokens(text)
	if len(tokens) == 0 {
		return text
	}

	names := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		names = append(names, tok.name)
	}
	if missing := b.Missing(names); len(missing) > 0 {
		panic(&IncompleteBindingError{Missing: dedupe(missing)})
	}

	var sb strings.Builder
	last := 0
	for _, tok := range tokens {
		sb.WriteString(text[last:tok.start])
		sb.WriteString(b[tok.name])
		last = tok.end
	}
	sb.WriteString(text[last:])
	return sb.String()
}

// dedupe removes adjacent duplicates from a sorted slice.
func dedupe(sorted []string) []string {
	out := sorted[:0]
	for i, s := range sorted {
		if i == 0 || s != sorted[i-1] {
			out = append(out, s)
		}
	}
	return out
}
