package codegen

import (
	"bytes"
	"fmt"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Style is the chroma style used for the code view.
const Style = "github"

// Highlight renders src as HTML with inline styles. Unknown languages are
// emitted as plain text.
func Highlight(src, lang string) (string, error) {
	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(Style)
	if style == nil {
		style = styles.Fallback
	}

	formatter := html.New(
		html.WithClasses(false),
		html.TabWidth(2),
	)

	iterator, err := lexer.Tokenise(nil, src)
	if err != nil {
		return "", fmt.Errorf("codegen: tokenise %s: %w", lang, err)
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return "", fmt.Errorf("codegen: highlight: %w", err)
	}
	return buf.String(), nil
}
