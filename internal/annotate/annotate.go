// Package annotate finds known Bible entities in verse text.
//
// Matching is case-insensitive and prefers the longest candidate at each
// position, so "Ponce Pilate" wins over "Pilate". The result is a list of
// segments whose concatenated text is always the input text.
//
// Usage:
//
//	segments := annotate.Annotate(verse.Text, entities)
//
//	m := annotate.NewMatcher(chapterEntities)
//	for _, v := range verses {
//		segments := m.Annotate(v.Text)
//	}
package annotate

import (
	"log"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/scriptorium-fr/scriptorium/internal/entities"
)

// Segment is a piece of the input. Entity is nil for plain text.
type Segment struct {
	Text   string                `json:"text"`
	Entity *entities.BibleEntity `json:"entity,omitempty"`
}

func (s Segment) IsEntity() bool {
	return s.Entity != nil
}

type Segments []Segment

// Text concatenates every segment.
func (s Segments) Text() string {
	var b strings.Builder
	for _, seg := range s {
		b.WriteString(seg.Text)
	}
	return b.String()
}

// Entities returns the distinct matched entities in order of first appearance.
func (s Segments) Entities() []entities.BibleEntity {
	var out []entities.BibleEntity
	seen := make(map[*entities.BibleEntity]bool)
	for _, seg := range s {
		if seg.Entity == nil || seen[seg.Entity] {
			continue
		}
		seen[seg.Entity] = true
		out = append(out, *seg.Entity)
	}
	return out
}

type candidate struct {
	text   string
	entity int
	runes  int
}

// Matcher holds a compiled pattern for one entity list. It is safe for
// concurrent use. Entity pointers in returned segments point at the matcher's
// own copy of the list and must not be modified.
type Matcher struct {
	entities   []entities.BibleEntity
	candidates []candidate
	pattern    *regexp.Regexp
}

// NewMatcher compiles the names and aliases of list. The list is copied.
func NewMatcher(list []entities.BibleEntity) *Matcher {
	m := &Matcher{entities: make([]entities.BibleEntity, len(list))}
	copy(m.entities, list)

	for i, e := range m.entities {
		m.addCandidate(e.Name, i)
		for _, alias := range e.Aliases {
			m.addCandidate(alias, i)
		}
	}
	if len(m.candidates) == 0 {
		return m
	}

	// Longest first; the alternation below is leftmost-first, so order decides
	// which candidate wins when several match at the same position.
	sort.SliceStable(m.candidates, func(i, j int) bool {
		return m.candidates[i].runes > m.candidates[j].runes
	})

	alternatives := make([]string, len(m.candidates))
	for i, c := range m.candidates {
		alternatives[i] = regexp.QuoteMeta(c.text)
	}
	pattern, err := regexp.Compile(`(?i)(?:` + strings.Join(alternatives, "|") + `)`)
	if err != nil {
		log.Printf("annotate: entity pattern rejected, annotating as plain text: %v", err)
		return m
	}
	m.pattern = pattern
	return m
}

// addCandidate skips empty names and names that are not valid UTF-8; the
// latter cannot be compiled into a pattern.
func (m *Matcher) addCandidate(text string, entity int) {
	if text == "" || !utf8.ValidString(text) {
		return
	}
	m.candidates = append(m.candidates, candidate{
		text:   text,
		entity: entity,
		runes:  utf8.RuneCountInString(text),
	})
}

// owner returns the entity of the first candidate equal to matched under
// case folding. Ties between entities sharing a name go to the one declared first.
func (m *Matcher) owner(matched string) *entities.BibleEntity {
	for _, c := range m.candidates {
		if strings.EqualFold(c.text, matched) {
			return &m.entities[c.entity]
		}
	}
	return nil
}

// Annotate splits text into plain and entity segments. Empty text yields no
// segments; text without any match yields a single plain segment.
func (m *Matcher) Annotate(text string) Segments {
	if text == "" {
		return Segments{}
	}
	if m.pattern == nil {
		return Segments{{Text: text}}
	}

	matches := m.pattern.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return Segments{{Text: text}}
	}

	segments := make(Segments, 0, 2*len(matches)+1)
	plainStart := 0
	for _, loc := range matches {
		matched := text[loc[0]:loc[1]]
		entity := m.owner(matched)
		if entity == nil {
			continue
		}
		if loc[0] > plainStart {
			segments = append(segments, Segment{Text: text[plainStart:loc[0]]})
		}
		segments = append(segments, Segment{Text: matched, Entity: entity})
		plainStart = loc[1]
	}
	if plainStart < len(text) {
		segments = append(segments, Segment{Text: text[plainStart:]})
	}
	return segments
}

// Annotate compiles list and annotates text in one call.
func Annotate(text string, list []entities.BibleEntity) Segments {
	return NewMatcher(list).Annotate(text)
}
