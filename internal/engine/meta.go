package engine

import (
	"fmt"
	"strings"

	"github.com/typeglass/fontcompare/internal/yamlutil"
)

// Default page geometry, in points.
const (
	defaultPageWidthPt = 538.58 // A4 content width (595.28 minus margins)
	defaultMarginPt    = 28.35  // 1cm
	defaultTextSizePt  = 11.0
)

// metadata is the document front matter. PageWidth is the content width;
// margins are added on both sides.
type metadata struct {
	Title     string  `yaml:"title"`
	Author    string  `yaml:"author"`
	PageWidth float64 `yaml:"pageWidth"`
	Margin    float64 `yaml:"margin"`
	TextSize  float64 `yaml:"textSize"`
}

// defaults fills unset geometry fields.
func (m *metadata) defaults() {
	if m.PageWidth <= 0 {
		m.PageWidth = defaultPageWidthPt
	}
	if m.Margin <= 0 {
		m.Margin = defaultMarginPt
	}
	if m.TextSize <= 0 {
		m.TextSize = defaultTextSizePt
	}
}

const frontMatterFence = "---"

// splitFrontMatter separates an optional leading YAML front matter block
// (delimited by "---" lines) from the document body. A document without a
// front matter block is returned unchanged with default metadata.
func splitFrontMatter(src string) (metadata, string, error) {
	var meta metadata

	rest, ok := strings.CutPrefix(src, frontMatterFence+"\n")
	if !ok {
		meta.defaults()
		return meta, src, nil
	}

	block, body, ok := strings.Cut(rest, "\n"+frontMatterFence+"\n")
	if !ok {
		// Also accept a closing fence at end of input.
		if trimmed, found := strings.CutSuffix(rest, "\n"+frontMatterFence); found {
			block, body = trimmed, ""
		} else {
			return meta, "", fmt.Errorf("unterminated front matter block")
		}
	}

	if err := yamlutil.Unmarshal([]byte(block), &meta); err != nil {
		return meta, "", fmt.Errorf("parsing front matter: %w", err)
	}
	meta.defaults()
	return meta, body, nil
}
