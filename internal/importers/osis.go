package importers

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/scriptorium-fr/scriptorium/internal/services"
)

// OSISDocument is the verse content of an OSIS file.
type OSISDocument struct {
	Work   string // osisIDWork of the osisText element, empty when absent
	Verses []services.VerseInput
}

// skippedElements hold editorial material that is not verse text.
var skippedElements = map[string]bool{
	"note":  true,
	"title": true,
}

// ParseOSIS reads every verse of an OSIS document.
func ParseOSIS(r io.Reader) (*OSISDocument, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse OSIS XML: %w", err)
	}

	root := xmlquery.FindOne(doc, "//*[local-name()='osisText']")
	if root == nil {
		return nil, fmt.Errorf("not an OSIS document: osisText element missing")
	}

	p := &osisParser{}
	p.walk(root)
	p.flush()

	return &OSISDocument{
		Work:   root.SelectAttr("osisIDWork"),
		Verses: p.verses,
	}, nil
}

type osisParser struct {
	verses  []services.VerseInput
	current string // osisID of the open milestone verse
	text    strings.Builder
}

func (p *osisParser) walk(n *xmlquery.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case xmlquery.TextNode, xmlquery.CharDataNode:
			if p.current != "" {
				p.text.WriteString(c.Data)
			}
		case xmlquery.ElementNode:
			if skippedElements[c.Data] {
				continue
			}
			if c.Data == "verse" {
				p.verse(c)
				continue
			}
			p.walk(c)
		}
	}
}

func (p *osisParser) verse(n *xmlquery.Node) {
	switch {
	case n.SelectAttr("eID") != "":
		p.flush()
	case n.SelectAttr("sID") != "":
		p.flush()
		p.current = firstID(n.SelectAttr("osisID"))
		if p.current == "" {
			p.current = firstID(n.SelectAttr("sID"))
		}
	default:
		// Container verse: its children are the text.
		p.flush()
		p.current = firstID(n.SelectAttr("osisID"))
		p.walk(n)
		p.flush()
	}
}

func (p *osisParser) flush() {
	if p.current == "" {
		return
	}
	if in, ok := parseOSISRef(p.current); ok {
		in.Text = strings.Join(strings.Fields(p.text.String()), " ")
		p.verses = append(p.verses, in)
	}
	p.current = ""
	p.text.Reset()
}

// firstID returns the first of a space-separated osisID list.
func firstID(ids string) string {
	fields := strings.Fields(ids)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// parseOSISRef parses "Book.Chapter.Verse", e.g. "1John.4.8".
func parseOSISRef(ref string) (services.VerseInput, bool) {
	parts := strings.Split(ref, ".")
	if len(parts) != 3 {
		return services.VerseInput{}, false
	}
	chapter, err := strconv.Atoi(parts[1])
	if err != nil {
		return services.VerseInput{}, false
	}
	verse, err := strconv.Atoi(parts[2])
	if err != nil {
		return services.VerseInput{}, false
	}
	return services.VerseInput{OSISBook: parts[0], Chapter: chapter, Verse: verse}, true
}
