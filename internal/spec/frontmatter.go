package spec

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"
)

// FrontMatter is the subset of page metadata the checker reports
type FrontMatter struct {
	Title  string         `yaml:"title"`
	Layout string         `yaml:"layout"`
	Custom map[string]any `yaml:",inline"`
}

// IsEmpty reports whether the block held no keys at all
func (m FrontMatter) IsEmpty() bool {
	return m.Title == "" && m.Layout == "" && len(m.Custom) == 0
}

var yamlFormat = frontmatter.NewFormat("---", "---", yaml.Unmarshal)

// HasFrontMatter reports whether data opens with a YAML front matter delimiter
func HasFrontMatter(data []byte) bool {
	line, _, _ := bytes.Cut(data, []byte("\n"))
	return string(bytes.TrimRight(line, " \t\r")) == "---"
}

// ParseFrontMatter splits a leading YAML block from the markdown body.
// Only the "---" delimited YAML form is recognized.
func ParseFrontMatter(source []byte) (FrontMatter, []byte, error) {
	var meta FrontMatter

	body, err := frontmatter.Parse(bytes.NewReader(source), &meta, yamlFormat)
	if err != nil {
		return FrontMatter{}, nil, fmt.Errorf("parse front matter: %w", err)
	}

	return meta, body, nil
}
