package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/vango-dev/featuregrid/pkg/vdom"
)

// PageData contains all data needed to render a complete HTML page.
type PageData struct {
	// Body is the root VNode for the page content
	Body *vdom.VNode

	// Title is the page title
	Title string

	// Lang is the language attribute for the html element.
	// Defaults to "en" if not specified.
	Lang string

	// Dark adds the "dark" class to the html element.
	Dark bool

	// BodyClass is the class attribute of the body element.
	BodyClass string

	// StyleSheets contains paths to external stylesheets
	StyleSheets []string

	// Scripts contains script tags to include in the head
	Scripts []ScriptTag

	// Styles contains inline CSS blocks
	Styles []string

	// ClientScript is inline JavaScript appended at the end of the body.
	ClientScript string
}

// ScriptTag represents a script element.
type ScriptTag struct {
	Src   string // src attribute
	Defer bool   // defer attribute
}

// RenderPage renders a complete HTML document to the given writer.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	htmlClass := ""
	if page.Dark {
		htmlClass = ` class="dark"`
	}

	if _, err := fmt.Fprintf(w, "<!DOCTYPE html>\n<html lang=\"%s\"%s>\n", escapeAttr(lang), htmlClass); err != nil {
		return err
	}

	if err := r.renderHead(w, page); err != nil {
		return err
	}

	bodyOpen := "<body>\n"
	if page.BodyClass != "" {
		bodyOpen = fmt.Sprintf("<body class=\"%s\">\n", escapeAttr(page.BodyClass))
	}
	if _, err := io.WriteString(w, bodyOpen); err != nil {
		return err
	}

	if err := r.RenderToWriter(w, page.Body); err != nil {
		return err
	}

	if page.ClientScript != "" {
		// "</" inside an inline script would end it early.
		script := strings.ReplaceAll(page.ClientScript, "</", `<\/`)
		if _, err := fmt.Fprintf(w, "\n<script>%s</script>", script); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "\n</body>\n</html>\n")
	return err
}

// renderHead renders the document head section.
func (r *Renderer) renderHead(w io.Writer, page PageData) error {
	var b strings.Builder

	b.WriteString("<head>\n")
	b.WriteString(`  <meta charset="utf-8">` + "\n")
	b.WriteString(`  <meta name="viewport" content="width=device-width, initial-scale=1">` + "\n")

	if page.Title != "" {
		fmt.Fprintf(&b, "  <title>%s</title>\n", escapeHTML(page.Title))
	}

	for _, href := range page.StyleSheets {
		fmt.Fprintf(&b, `  <link rel="stylesheet" href="%s">`+"\n", escapeAttr(href))
	}

	for _, script := range page.Scripts {
		if script.Src == "" {
			continue
		}
		deferAttr := ""
		if script.Defer {
			deferAttr = " defer"
		}
		fmt.Fprintf(&b, `  <script src="%s"%s></script>`+"\n", escapeAttr(script.Src), deferAttr)
	}

	for _, style := range page.Styles {
		fmt.Fprintf(&b, "  <style>%s</style>\n", style)
	}

	b.WriteString("</head>\n")

	_, err := io.WriteString(w, b.String())
	return err
}
