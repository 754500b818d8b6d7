package exdoc

import (
	"bytes"
	"fmt"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// previewShell wraps the rendered fragment in a complete HTML5 document
// with just enough styling for a readable snapshot.
const previewShell = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: 'Helvetica Neue', Arial, sans-serif; margin: 2em; color: #222; }
pre { padding: 1em; border: 1px solid #ddd; border-radius: 4px; overflow-x: auto; }
code { font-family: 'Menlo', 'Consolas', monospace; font-size: 13px; }
h1 { border-bottom: 2px solid #eee; padding-bottom: 0.3em; }
</style>
</head>
<body>
%s
</body>
</html>`

// previewRenderer turns an example source file into a standalone HTML page
// the browser can display for the snapshot.
type previewRenderer struct {
	md goldmark.Markdown
}

// newPreviewRenderer creates a renderer with GFM extensions and inline
// syntax highlighting, so the preview page needs no external stylesheet.
func newPreviewRenderer() *previewRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(false), // inline styles, no stylesheet to inject
				),
			),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
		),
	)
	return &previewRenderer{md: md}
}

// RenderPreview builds the preview page for an example: title, docstring,
// and the highlighted source. A source without a docstring block downgrades
// to a source-only preview; the structural error is the pipeline's to
// report, not the capture path's.
func (r *previewRenderer) RenderPreview(ex Example, source string) (string, error) {
	var md strings.Builder
	md.WriteString("# " + ex.Title + " Example\n\n")
	if doc, err := ExtractDocstring(source); err == nil {
		md.WriteString(CleanDocstring(doc) + "\n\n")
	}
	md.WriteString("```python\n" + source + "\n```\n")

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(md.String()), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPreviewRender, err)
	}
	return fmt.Sprintf(previewShell, ex.Title, buf.String()), nil
}
