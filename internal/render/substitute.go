package render

import "strings"

// Replace substitutes every literal occurrence of {{tag}} in text with value.
// Matching is case-sensitive, global, not nested and not recursive: a value
// is never re-scanned for further tags.
func Replace(text, tag, value string) string {
	return strings.ReplaceAll(text, "{{"+tag+"}}", value)
}

// ReplaceConditional substitutes every occurrence of {{tag}} with
// "label value" when value is non-empty, and removes the tag entirely
// (label included) when it is not. Used for fields whose label must
// disappear with the field, e.g. "RG nº:" or "Cônjuge:".
func ReplaceConditional(text, label, tag, value string) string {
	if strings.TrimSpace(value) == "" {
		return Replace(text, tag, "")
	}

	return Replace(text, tag, label+" "+value)
}

// HasTag reports whether a literal {{tag}} still occurs in text.
func HasTag(text, tag string) bool {
	return strings.Contains(text, "{{"+tag+"}}")
}
