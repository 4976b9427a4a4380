package wikilink

import (
	"regexp"
	"strings"
)

// Kind classifies a wiki reference.
type Kind string

const (
	KindVerse      Kind = "verse"
	KindChapter    Kind = "chapter"
	KindArticle    Kind = "article"
	KindUnresolved Kind = "unresolved"
)

// IsBible reports whether the kind points into the Bible reader.
func (k Kind) IsBible() bool {
	return k == KindVerse || k == KindChapter
}

// tokenPattern matches [[...]] with at least one character that is not "]".
var tokenPattern = regexp.MustCompile(`\[\[([^\]]+)\]\]`)

// Token is one [[...]] occurrence in wiki markup.
type Token struct {
	Raw       string `json:"raw"`       // full match including brackets
	Reference string `json:"reference"` // inner text, trimmed
	Kind      Kind   `json:"kind"`
	Start     int    `json:"start"` // byte offset of "[[" in the source
	End       int    `json:"end"`   // byte offset just past "]]"
}

// Tokenize returns every non-overlapping [[...]] token of content, left to right.
func Tokenize(content string) []Token {
	matches := tokenPattern.FindAllStringSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return nil
	}

	tokens := make([]Token, 0, len(matches))
	for _, m := range matches {
		ref := strings.TrimSpace(content[m[2]:m[3]])
		tokens = append(tokens, Token{
			Raw:       content[m[0]:m[1]],
			Reference: ref,
			Kind:      classify(ref),
			Start:     m[0],
			End:       m[1],
		})
	}
	return tokens
}

// ExtractReferences returns the trimmed inner text of every token in source order.
// Duplicates are kept.
func ExtractReferences(content string) []string {
	tokens := Tokenize(content)
	refs := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		refs = append(refs, tok.Reference)
	}
	return refs
}

func isBibleReference(ref string) bool {
	return strings.ContainsAny(ref, "0123456789")
}

func classify(ref string) Kind {
	return Resolve(ref).Kind
}
