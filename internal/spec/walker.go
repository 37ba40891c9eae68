package spec

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/ppiankov/check-examples/internal/model"
)

// Parser turns markdown into a flat list of top-level blocks.
// It holds no per-document state and can be reused.
type Parser struct {
	md goldmark.Markdown
}

// NewParser builds a CommonMark parser with the named goldmark extensions.
// Unknown names are ignored; see UnknownExtensions.
func NewParser(extensions []string) *Parser {
	return &Parser{
		md: goldmark.New(goldmark.WithExtensions(collectExtensions(extensions)...)),
	}
}

var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"tables":        extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"autolink":      extension.Linkify,
	"tasklist":      extension.TaskList,
	"definition":    extension.DefinitionList,
	"footnote":      extension.Footnote,
}

// UnknownExtensions returns the names NewParser would ignore
func UnknownExtensions(names []string) []string {
	var unknown []string
	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		if _, ok := extensionRegistry[key]; !ok {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

func collectExtensions(names []string) []goldmark.Extender {
	var extenders []goldmark.Extender
	seen := map[goldmark.Extender]struct{}{}

	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		ext, ok := extensionRegistry[key]
		if !ok {
			continue
		}
		if _, dup := seen[ext]; dup {
			continue
		}
		extenders = append(extenders, ext)
		seen[ext] = struct{}{}
	}

	return extenders
}

// Parse converts the source into a Document. Only direct children of the
// document root are recorded; blocks nested in quotes or lists show up as
// a single BlockOther.
func (p *Parser) Parse(src *Source) *model.Document {
	body := src.Body
	root := p.md.Parser().Parse(text.NewReader(body))

	doc := &model.Document{Path: src.Path, Title: src.Title}
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		block := toBlock(n, body)
		if block.Line > 0 {
			block.Line += src.LineOffset
		}
		doc.Blocks = append(doc.Blocks, block)
	}

	return doc
}

func toBlock(n ast.Node, source []byte) model.Block {
	switch node := n.(type) {
	case *ast.Heading:
		return model.Block{
			Kind: model.BlockHeading,
			Text: headingText(node, source),
			Line: firstLine(node, source),
		}
	case *ast.FencedCodeBlock:
		return model.Block{
			Kind: model.BlockFencedCode,
			Lang: string(node.Language(source)),
			Text: rawText(node, source),
			Line: fenceLine(node, source),
		}
	default:
		return model.Block{Kind: model.BlockOther, Line: firstLine(n, source)}
	}
}

// headingText returns the text of the heading's first inline child.
// goldmark splits a plain run at escapes and entity boundaries, so
// consecutive text nodes are joined until the first non-text inline.
func headingText(h *ast.Heading, source []byte) string {
	first := h.FirstChild()
	if first == nil {
		return ""
	}
	if !isPlainText(first) {
		return string(first.Text(source))
	}

	var buf strings.Builder
	for n := first; n != nil && isPlainText(n); n = n.NextSibling() {
		switch t := n.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(t.Value)
		}
	}

	return strings.TrimSpace(buf.String())
}

func isPlainText(n ast.Node) bool {
	switch n.(type) {
	case *ast.Text, *ast.String:
		return true
	}
	return false
}

func rawText(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(source))
	}
	return buf.String()
}

func firstLine(n ast.Node, source []byte) int {
	if n.Type() == ast.TypeBlock && n.Lines().Len() > 0 {
		return lineAt(source, n.Lines().At(0).Start)
	}
	return 0
}

// fenceLine returns the line of the opening fence
func fenceLine(n *ast.FencedCodeBlock, source []byte) int {
	if n.Info != nil {
		return lineAt(source, n.Info.Segment.Start)
	}
	if n.Lines().Len() > 0 {
		return lineAt(source, n.Lines().At(0).Start) - 1
	}
	return 0
}

func lineAt(source []byte, offset int) int {
	if offset > len(source) {
		offset = len(source)
	}
	return bytes.Count(source[:offset], []byte("\n")) + 1
}

// Walk visits every example in document order together with the section
// label in effect at that point. The label starts as model.UnknownSection
// and is replaced by each heading's text.
func Walk(doc *model.Document, langs []string, visit func(section string, example model.Block)) {
	section := model.UnknownSection
	for _, b := range doc.Blocks {
		switch b.Kind {
		case model.BlockHeading:
			section = b.Text
		case model.BlockFencedCode:
			if model.IsExampleLang(b.Lang, langs) {
				visit(section, b)
			}
		}
	}
}
