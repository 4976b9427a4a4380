package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/scriptorium-fr/scriptorium/internal/annotate"
	"github.com/scriptorium-fr/scriptorium/internal/entities"
)

type anchor struct {
	href  string
	class string
	text  string
}

func collectAnchors(t *testing.T, doc string) []anchor {
	t.Helper()
	root, err := html.Parse(strings.NewReader(doc))
	require.NoError(t, err)

	var out []anchor
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			a := anchor{}
			for _, attr := range n.Attr {
				switch attr.Key {
				case "href":
					a.href = attr.Val
				case "class":
					a.class = attr.Val
				}
			}
			if n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
				a.text = n.FirstChild.Data
			}
			out = append(out, a)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return out
}

func TestArticleRenderer_Render(t *testing.T) {
	r, err := NewArticleRenderer(8)
	require.NoError(t, err)

	out, err := r.Render("# Nicodème\n\nVoir [[Jean 3:16]] et [[Ponce Pilate]].\n\n- [[Jean 3:16-18]]\n")
	require.NoError(t, err)

	assert.Contains(t, out, "<h1 id=")
	assert.Contains(t, out, "Nicodème</h1>")

	anchors := collectAnchors(t, out)
	require.Len(t, anchors, 3)
	assert.Equal(t, anchor{"/bible/jean/3/16", "wiki-link wiki-link-verse", "Jean 3:16"}, anchors[0])
	assert.Equal(t, anchor{"/wiki/ponce-pilate", "wiki-link wiki-link-article", "Ponce Pilate"}, anchors[1])
	assert.Equal(t, "/search?q=Jean%203%3A16-18", anchors[2].href)
	assert.Equal(t, "[[Jean 3:16-18]]", anchors[2].text)
}

func TestArticleRenderer_DropsRawHTML(t *testing.T) {
	r, err := NewArticleRenderer(8)
	require.NoError(t, err)

	out, err := r.Render("Voir [[Jean 3:16]].\n\n" +
		"<script>alert(document.cookie)</script>\n\n" +
		"<img src=x onerror=alert(1)>\n\n" +
		"Texte <b onclick=\"x()\">gras</b> et [lien](javascript:alert(1)).\n")
	require.NoError(t, err)

	assert.NotContains(t, out, "<script")
	assert.NotContains(t, out, "onerror=")
	assert.NotContains(t, out, "onclick=")
	assert.NotContains(t, out, "javascript:")

	anchors := collectAnchors(t, out)
	require.Len(t, anchors, 2)
	assert.Equal(t, anchor{"/bible/jean/3/16", "wiki-link wiki-link-verse", "Jean 3:16"}, anchors[0])
	assert.Equal(t, "lien", anchors[1].text)
}

func TestArticleRenderer_WikiLinkMarkup(t *testing.T) {
	r, err := NewArticleRenderer(8)
	require.NoError(t, err)

	out, err := r.Render("*[[Tom & Jerry]]*, [[<b>Pierre</b>]] et `[[Jean 3:16]]`\n")
	require.NoError(t, err)

	assert.Contains(t, out, `<em><a href="/wiki/tom-jerry" class="wiki-link wiki-link-article">Tom &amp; Jerry</a></em>`)
	assert.Contains(t, out, `&lt;b&gt;Pierre&lt;/b&gt;</a>`)
	assert.NotContains(t, out, "<b>")
	assert.Contains(t, out, "<code>[[Jean 3:16]]</code>")

	anchors := collectAnchors(t, out)
	require.Len(t, anchors, 2)
	assert.Equal(t, "/wiki/b-pierre-b", anchors[1].href)
}

func TestArticleRenderer_Cache(t *testing.T) {
	r, err := NewArticleRenderer(2)
	require.NoError(t, err)

	first, err := r.Render("**a**")
	require.NoError(t, err)
	second, err := r.Render("**a**")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, r.CachedEntries())

	_, err = r.Render("b")
	require.NoError(t, err)
	_, err = r.Render("c")
	require.NoError(t, err)
	assert.Equal(t, 2, r.CachedEntries())

	r.Purge()
	assert.Zero(t, r.CachedEntries())
}

func TestNewArticleRenderer_DefaultSize(t *testing.T) {
	r, err := NewArticleRenderer(0)
	require.NoError(t, err)
	assert.NotNil(t, r)
}

func TestRenderSegments(t *testing.T) {
	pilate := entities.BibleEntity{
		ID:         "e1",
		Name:       "Ponce Pilate",
		Slug:       "ponce-pilate",
		EntityType: entities.EntityTypePerson,
	}
	segments := annotate.Annotate("<Ponce Pilate> & co", []entities.BibleEntity{pilate})

	out := RenderSegments(segments)
	assert.Equal(t,
		`&lt;<span class="bible-entity bible-entity-person" data-entity-id="e1" data-entity-slug="ponce-pilate">Ponce Pilate</span>&gt; &amp; co`,
		out)
}

func TestRenderSegments_PlainOnly(t *testing.T) {
	assert.Equal(t, "Au commencement", RenderSegments(annotate.Annotate("Au commencement", nil)))
	assert.Empty(t, RenderSegments(annotate.Annotate("", nil)))
}
