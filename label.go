package draftdiff

import (
	"regexp"
	"strings"
)

// charLimitRe matches the character-limit annotations content teams attach
// to field labels, e.g. "Meta Title (Character limit: 60 max)".
var charLimitRe = regexp.MustCompile(`\(Character limit[^)]*\)`)

// fieldTriggers maps normalized label strings to canonical metadata fields.
// Several author phrasings collapse onto one field. The table is read-only
// shared configuration for all parsing paths.
var fieldTriggers = map[string]string{
	"meta title":       FieldMetaTitle,
	"title tag":        FieldMetaTitle,
	"meta description": FieldMetaDescription,
	"existing url":     FieldURL,
	"url":              FieldURL,
	"h1":               FieldH1,
}

// NormalizeLabel canonicalizes a raw field label: character-limit
// annotations are removed, leftover parentheses stripped, and the remainder
// trimmed and lowercased. The result is only used for trigger lookup; stored
// values always keep their original text.
func NormalizeLabel(s string) string {
	s = charLimitRe.ReplaceAllString(s, "")
	s = strings.NewReplacer("(", "", ")", "").Replace(s)
	return strings.ToLower(strings.TrimSpace(s))
}

// FieldForLabel resolves a raw label to its canonical metadata field.
// The bool result is false if the label is not a recognized trigger.
func FieldForLabel(label string) (string, bool) {
	field, ok := fieldTriggers[NormalizeLabel(label)]
	return field, ok
}
