// Package wikilink resolves the [[...]] cross-reference tokens of wiki markup.
//
// A token whose trimmed content contains a digit is a Bible reference
// ("Jean 3:16", "Psaumes 23", "1 Samuel 17"); anything else is an article
// title. Every token becomes an anchor; references that cannot be parsed link
// to the search page instead of being dropped.
//
// Usage:
//
//	html := wikilink.Linkify("Voir [[Jean 3:16]] et [[Pierre]].")
//	refs := wikilink.ExtractReferences(content)
package wikilink

import (
	"html"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// Link classes. Stylesheets and the reader's link indexer rely on these values.
const (
	ClassVerse      = "wiki-link wiki-link-verse"
	ClassChapter    = "wiki-link wiki-link-chapter"
	ClassArticle    = "wiki-link wiki-link-article"
	ClassUnresolved = "wiki-link wiki-link-unresolved"
)

// spaceClass also accepts the no-break spaces French typography puts between
// a book name and its chapter.
const spaceClass = `[\s\x{00A0}\x{202F}]`

// biblePattern: optional ordinal, book name made of letters and spaces,
// chapter, optional ":verse".
var biblePattern = regexp.MustCompile(
	`^((?:[1-3]` + spaceClass + `+)?[A-Za-zÀ-ÿ\s\x{00A0}\x{202F}]+)` + spaceClass + `+(\d+)(?::(\d+))?$`,
)

// Link is a resolved reference.
type Link struct {
	Kind      Kind   `json:"kind"`
	Reference string `json:"reference"`
	Href      string `json:"href"`
	Text      string `json:"text"`
	Class     string `json:"class"`
	BookSlug  string `json:"book_slug,omitempty"`
	Chapter   int    `json:"chapter,omitempty"`
	Verse     int    `json:"verse,omitempty"`
}

// HTML renders the link as an anchor element. Attribute values and text are escaped.
func (l Link) HTML() string {
	var b strings.Builder
	b.WriteString(`<a href="`)
	b.WriteString(html.EscapeString(l.Href))
	b.WriteString(`" class="`)
	b.WriteString(l.Class)
	b.WriteString(`">`)
	b.WriteString(html.EscapeString(l.Text))
	b.WriteString(`</a>`)
	return b.String()
}

type bibleReference struct {
	book     string
	chapter  int
	verse    int
	hasVerse bool
}

func parseBibleReference(ref string) (bibleReference, bool) {
	m := biblePattern.FindStringSubmatch(ref)
	if m == nil {
		return bibleReference{}, false
	}

	chapter, err := strconv.Atoi(m[2])
	if err != nil {
		return bibleReference{}, false
	}

	parsed := bibleReference{
		book:    strings.Join(strings.Fields(m[1]), " "),
		chapter: chapter,
	}
	if m[3] != "" {
		verse, err := strconv.Atoi(m[3])
		if err != nil {
			return bibleReference{}, false
		}
		parsed.verse = verse
		parsed.hasVerse = true
	}
	return parsed, true
}

// Resolve turns the inner text of a token into a link. It never fails:
// unparseable Bible references and titles without a usable slug resolve to a
// search link.
func Resolve(reference string) Link {
	ref := strings.TrimSpace(reference)

	if !isBibleReference(ref) {
		slug := Slugify(ref)
		if slug == "" {
			return unresolved(ref)
		}
		return Link{
			Kind:      KindArticle,
			Reference: ref,
			Href:      "/wiki/" + slug,
			Text:      ref,
			Class:     ClassArticle,
		}
	}

	parsed, ok := parseBibleReference(ref)
	if !ok {
		return unresolved(ref)
	}

	slug := bookToSlug(parsed.book)
	link := Link{
		Kind:      KindChapter,
		Reference: ref,
		Href:      "/bible/" + slug + "/" + strconv.Itoa(parsed.chapter),
		Text:      ref,
		Class:     ClassChapter,
		BookSlug:  slug,
		Chapter:   parsed.chapter,
	}
	if parsed.hasVerse {
		link.Kind = KindVerse
		link.Class = ClassVerse
		link.Verse = parsed.verse
		link.Href += "/" + strconv.Itoa(parsed.verse)
	}
	return link
}

// unresolved links to the search page and keeps the brackets visible.
func unresolved(ref string) Link {
	return Link{
		Kind:      KindUnresolved,
		Reference: ref,
		Href:      "/search?q=" + encodeQueryComponent(ref),
		Text:      "[[" + ref + "]]",
		Class:     ClassUnresolved,
	}
}

// Linkify replaces every [[...]] token of content with an anchor. Text outside
// tokens is copied unchanged.
func Linkify(content string) string {
	tokens := Tokenize(content)
	if len(tokens) == 0 {
		return content
	}

	var b strings.Builder
	b.Grow(len(content) + len(tokens)*48)
	last := 0
	for _, tok := range tokens {
		b.WriteString(content[last:tok.Start])
		b.WriteString(Resolve(tok.Reference).HTML())
		last = tok.End
	}
	b.WriteString(content[last:])
	return b.String()
}

// encodeQueryComponent escapes like encodeURIComponent: spaces become %20.
func encodeQueryComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
