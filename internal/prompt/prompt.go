// Package prompt provides the stored prompt record and its flat-file store.
package prompt

import (
	"strings"
)

// TagSeparator joins tags for display.
const TagSeparator = ", "

// Prompt is a stored template record.
type Prompt struct {
	// ID is a UUID assigned when the prompt is added.
	ID string `json:"id"`
	// Alias is the name the prompt is used by.
	Alias string `json:"alias"`
	// Description is a short human-readable summary.
	Description string `json:"description"`
	// Tags are free-form labels.
	Tags []string `json:"tags"`
	// Template is the text containing {{placeholders}}.
	Template string `json:"template"`
}

// Clone returns a deep copy of the prompt.
func (p Prompt) Clone() Prompt {
	clone := p
	if p.Tags != nil {
		clone.Tags = make([]string, len(p.Tags))
		copy(clone.Tags, p.Tags)
	}
	return clone
}

// TagString returns the tags joined by TagSeparator.
func (p Prompt) TagString() string {
	return strings.Join(p.Tags, TagSeparator)
}

// ParseTags splits a comma separated list, trimming whitespace and dropping
// empty entries.
func ParseTags(s string) []string {
	tags := []string{}
	for _, part := range strings.Split(s, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// CleanTemplate drops every line whose trimmed form starts with '#' and trims
// the result. It is applied to text coming back from the editor.
func CleanTemplate(text string) string {
	var kept []string
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		kept = append(kept, strings.TrimRight(line, "\r"))
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}
