// SPDX-License-Identifier: MPL-2.0

package sidebar

import (
	"strings"
	"unicode/utf8"
)

// MarkdownExt is the extension of discovered documents.
const MarkdownExt = ".md"

// DocumentID strips the Markdown extension from a slash-separated relative path.
func DocumentID(document string) string {
	return strings.TrimSuffix(document, MarkdownExt)
}

// Capitalize upper-cases the first character of every space-separated word and
// leaves the rest of each word as is.
func Capitalize(title string) string {
	words := strings.Split(title, " ")
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		if size == 0 {
			continue
		}
		words[i] = strings.ToUpper(string(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// categorySegments drops the leading version segment and the file name.
func categorySegments(document string) []string {
	segments := strings.Split(document, "/")
	if len(segments) <= 2 {
		return nil
	}
	return segments[1 : len(segments)-1]
}

// CategoryLabel derives the category label of a document from its directories:
// hyphens become spaces, words are capitalized and segments joined by a space.
func CategoryLabel(document string) string {
	segments := categorySegments(document)
	parts := make([]string, len(segments))
	for i, seg := range segments {
		parts[i] = Capitalize(strings.ReplaceAll(seg, "-", " "))
	}
	return strings.Join(parts, " ")
}

// TargetGroup picks the top-level group for a document.
func (o Options) TargetGroup(document string) string {
	segments := categorySegments(document)
	if len(segments) > 0 && segments[0] == o.APIMarker {
		return o.APIGroup
	}
	return o.DefaultGroup
}
