// Package export writes a clarification record to disk as markdown or HTML
// so it can be shared outside the terminal.
package export

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/iszyeffiong/clarifier/internal/clarify"
)

const htmlHeader = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Problem Clarification</title>
<style>
body { max-width: 46rem; margin: 2rem auto; padding: 0 1rem; font-family: system-ui, sans-serif; line-height: 1.5; }
h2 { margin-top: 1.6em; }
</style>
</head>
<body>
`

const htmlFooter = `</body>
</html>
`

// Markdown renders a clarification as a markdown document.
func Markdown(res *clarify.Result) []byte {
	var b strings.Builder
	b.WriteString("# Problem Clarification\n\n")

	for _, s := range res.Sections() {
		fmt.Fprintf(&b, "## %s\n\n", s.Title)
		if s.Prose != "" {
			b.WriteString(s.Prose)
			b.WriteString("\n\n")
		}
		if len(s.Items) > 0 {
			for _, item := range s.Items {
				fmt.Fprintf(&b, "- %s\n", item)
			}
			b.WriteString("\n")
		}
	}

	return []byte(b.String())
}

// WriteMarkdown saves the markdown rendering to path.
func WriteMarkdown(res *clarify.Result, path string) error {
	return os.WriteFile(path, Markdown(res), 0644)
}

// WriteHTML converts the markdown rendering to a standalone HTML page and
// saves it to path.
func WriteHTML(res *clarify.Result, path string) error {
	var buf bytes.Buffer
	buf.WriteString(htmlHeader)
	if err := goldmark.Convert(Markdown(res), &buf); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	buf.WriteString(htmlFooter)
	return os.WriteFile(path, buf.Bytes(), 0644)
}
