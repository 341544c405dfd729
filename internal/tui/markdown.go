package tui

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

//nolint:gochecknoglobals // Parser is stateless and safe to share.
var markdownParser = goldmark.New().Parser()

// inlineMarkdown renders the emphasis in a short Markdown paragraph with
// terminal styles. Block structure other than paragraphs is flattened.
func (r *pageRenderer) inlineMarkdown(src string) string {
	source := []byte(src)
	doc := markdownParser.Parse(text.NewReader(source))

	var paragraphs []string
	for block := doc.FirstChild(); block != nil; block = block.NextSibling() {
		var b strings.Builder
		r.writeInline(&b, block, source, 0)
		if s := strings.TrimSpace(b.String()); s != "" {
			paragraphs = append(paragraphs, s)
		}
	}
	return strings.Join(paragraphs, "\n\n")
}

func (r *pageRenderer) writeInline(b *strings.Builder, n ast.Node, source []byte, level int) {
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		switch node := child.(type) {
		case *ast.Text:
			segment := string(node.Segment.Value(source))
			b.WriteString(r.emphasis(segment, level))
			if node.SoftLineBreak() || node.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.Emphasis:
			r.writeInline(b, node, source, max(level, node.Level))
		default:
			r.writeInline(b, node, source, level)
		}
	}
}

func (r *pageRenderer) emphasis(s string, level int) string {
	switch {
	case level >= 2:
		return r.paint(ValueStyle, s)
	case level == 1:
		return r.paint(ItalicStyle, s)
	default:
		return s
	}
}
