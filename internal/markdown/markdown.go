package markdown

import (
	"bytes"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/inkwell-dev/inkwell/internal/logger"
)

// Renderer converts comment text to its display form. It is stateless after
// construction and safe for concurrent use.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func New() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(extension.Strikethrough),
		// Raw HTML passes through here and is stripped by the sanitizer,
		// so markdown constructs wrapping it still render.
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
	return &Renderer{md: md, policy: bluemonday.UGCPolicy()}
}

// Process returns content unchanged when isMarkdown is false, otherwise the
// sanitized HTML rendering. Deterministic, never persisted back.
func (r *Renderer) Process(content string, isMarkdown bool) string {
	if !isMarkdown {
		return content
	}

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(content), &buf); err != nil {
		// Conversion failures degrade to the raw text rather than erroring
		// the whole read path.
		logger.Log.Error("markdown conversion failed", "error", err)
		return content
	}

	return strings.TrimSpace(r.policy.Sanitize(buf.String()))
}
