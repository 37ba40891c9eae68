// Package spec loads the markdown specification document and walks its
// top-level blocks.
package spec

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
)

// Source is the loaded text of a specification document
type Source struct {
	Path       string
	Body       []byte // Markdown with any front matter removed
	Title      string // Front matter title, empty without front matter
	LineOffset int    // Lines removed from the top of the file along with the front matter

	// FrontMatterErr is set when the file opens with "---" but the block
	// is not YAML. The body is then kept as-is.
	FrontMatterErr error
}

// Path returns the location of the spec file inside dir
func Path(dir, file string) string {
	return filepath.Join(dir, file)
}

// Load reads <dir>/<file>. A missing file, or a dir that is not a
// directory, is not an error: found is false and src is nil. Any other read
// failure is returned.
//
// A leading "---" block is stripped only when it decodes to a non-empty YAML
// mapping; otherwise the "---" lines are thematic breaks and stay in Body.
func Load(dir, file string, stripFrontMatter bool) (src *Source, found bool, err error) {
	path := Path(dir, file)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read spec file: %w", err)
	}

	src = &Source{Path: path, Body: data}
	if !stripFrontMatter || !HasFrontMatter(data) {
		return src, true, nil
	}

	meta, body, fmErr := ParseFrontMatter(data)
	if fmErr != nil {
		src.FrontMatterErr = fmErr
		return src, true, nil
	}
	if meta.IsEmpty() {
		return src, true, nil
	}

	src.Body = body
	src.Title = meta.Title
	if bytes.HasSuffix(data, body) {
		src.LineOffset = bytes.Count(data[:len(data)-len(body)], []byte("\n"))
	}

	return src, true, nil
}
