package model

// BlockKind discriminates the top-level markdown elements the walker cares about
type BlockKind int

const (
	BlockOther      BlockKind = iota // Paragraphs, lists, quotes, breaks, HTML
	BlockHeading                     // ATX or setext heading
	BlockFencedCode                  // Fenced code block with an optional info string
)

// String returns a short name for the kind
func (k BlockKind) String() string {
	switch k {
	case BlockHeading:
		return "heading"
	case BlockFencedCode:
		return "fenced_code"
	default:
		return "other"
	}
}

// Block is one top-level element of a parsed document
type Block struct {
	Kind BlockKind `json:"kind"`           // Element kind
	Text string    `json:"text,omitempty"` // Heading text or raw code content
	Lang string    `json:"lang,omitempty"` // Fenced code language tag (first word of info string)
	Line int       `json:"line,omitempty"` // 1-based source line where the block starts
}

// Document is the ordered sequence of top-level blocks of a markdown source
type Document struct {
	Path   string  `json:"path"`            // File the document was read from
	Title  string  `json:"title,omitempty"` // Front matter title, if any
	Blocks []Block `json:"blocks"`          // Top-level blocks in document order
}

// Examples returns the fenced code blocks whose language tag is in langs
func (d *Document) Examples(langs []string) []Block {
	var out []Block
	for _, b := range d.Blocks {
		if b.Kind == BlockFencedCode && IsExampleLang(b.Lang, langs) {
			out = append(out, b)
		}
	}
	return out
}

// IsExampleLang reports whether lang is one of the recognized example tags.
// Matching is exact.
func IsExampleLang(lang string, langs []string) bool {
	for _, l := range langs {
		if lang == l {
			return true
		}
	}
	return false
}
