package render

import (
	"html"
	"strings"

	"github.com/scriptorium-fr/scriptorium/internal/annotate"
)

// RenderSegments renders annotated verse text. Plain text is escaped and each
// entity match is wrapped in a span carrying the entity's id, slug and type.
func RenderSegments(segments annotate.Segments) string {
	var b strings.Builder
	for _, seg := range segments {
		if !seg.IsEntity() {
			b.WriteString(html.EscapeString(seg.Text))
			continue
		}

		e := seg.Entity
		b.WriteString(`<span class="bible-entity bible-entity-`)
		b.WriteString(html.EscapeString(string(e.EntityType)))
		b.WriteString(`" data-entity-id="`)
		b.WriteString(html.EscapeString(e.ID))
		b.WriteString(`" data-entity-slug="`)
		b.WriteString(html.EscapeString(e.Slug))
		b.WriteString(`">`)
		b.WriteString(html.EscapeString(seg.Text))
		b.WriteString(`</span>`)
	}
	return b.String()
}
