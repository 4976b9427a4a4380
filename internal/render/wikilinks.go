package render

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/scriptorium-fr/scriptorium/internal/wikilink"
)

// KindWikiLink is the AST kind of a resolved [[...]] reference.
var KindWikiLink = ast.NewNodeKind("WikiLink")

// WikiLink is an inline node holding a resolved reference.
type WikiLink struct {
	ast.BaseInline
	Link wikilink.Link
}

func (n *WikiLink) Kind() ast.NodeKind {
	return KindWikiLink
}

func (n *WikiLink) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"Href":  n.Link.Href,
		"Class": n.Link.Class,
	}, nil)
}

// wikiLinkParser runs before goldmark's link parser, which also triggers on "[".
type wikiLinkParser struct{}

func (p *wikiLinkParser) Trigger() []byte {
	return []byte{'['}
}

func (p *wikiLinkParser) Parse(_ ast.Node, block text.Reader, _ parser.Context) ast.Node {
	line, _ := block.PeekLine()
	tokens := wikilink.Tokenize(string(line))
	if len(tokens) == 0 || tokens[0].Start != 0 {
		return nil
	}
	block.Advance(tokens[0].End)
	return &WikiLink{Link: wikilink.Resolve(tokens[0].Reference)}
}

type wikiLinkRenderer struct{}

func (r *wikiLinkRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindWikiLink, r.render)
}

func (r *wikiLinkRenderer) render(w util.BufWriter, _ []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	// Link.HTML escapes both the href and the text.
	if _, err := w.WriteString(n.(*WikiLink).Link.HTML()); err != nil {
		return ast.WalkStop, err
	}
	return ast.WalkSkipChildren, nil
}

// wikiLinks is a goldmark extension turning [[...]] into wiki anchors without
// letting raw HTML through the renderer.
type wikiLinks struct{}

func (wikiLinks) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithInlineParsers(
		util.Prioritized(&wikiLinkParser{}, 199),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&wikiLinkRenderer{}, 199),
	))
}
