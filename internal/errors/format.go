package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// palette holds the ANSI sequences used by Format. The zero palette
// prints plain text.
type palette struct {
	reset, red, cyan, gray, bold string
}

var ansi = palette{
	reset: "\033[0m",
	red:   "\033[31m",
	cyan:  "\033[36m",
	gray:  "\033[90m",
	bold:  "\033[1m",
}

// colors is the palette in use. NO_COLOR in the environment starts it
// off.
var colors = defaultPalette()

func defaultPalette() palette {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return palette{}
	}
	return ansi
}

// SetColor turns ANSI colors in Format on or off.
func SetColor(on bool) {
	if on {
		colors = ansi
	} else {
		colors = palette{}
	}
}

func (p palette) paint(code, text string) string {
	if code == "" {
		return text
	}
	return code + text + p.reset
}

// Format returns the error formatted for terminal display. Catalog and
// config errors with a location show the offending source lines.
func (e *Error) Format() string {
	c := colors
	var b strings.Builder

	title := "ERROR"
	if e.Code != "" {
		title += " " + e.Code
	}
	fmt.Fprintf(&b, "\n%s %s\n", c.paint(c.red+c.bold, title+":"), e.Message)

	if e.Location != nil {
		fmt.Fprintf(&b, "\n  %s\n", c.paint(c.cyan, e.Location.String()))
		e.writeSnippet(&b, c)
	}
	if e.Detail != "" {
		b.WriteString("\n")
		for _, line := range wrapText(e.Detail, 70) {
			fmt.Fprintf(&b, "  %s\n", line)
		}
	}
	if e.Suggestion != "" {
		fmt.Fprintf(&b, "\n  %s %s\n", c.paint(c.cyan, "Hint:"), e.Suggestion)
	}
	if e.Example != "" {
		fmt.Fprintf(&b, "\n  %s\n", c.paint(c.cyan, "Example:"))
		for _, line := range strings.Split(e.Example, "\n") {
			fmt.Fprintf(&b, "    %s\n", line)
		}
	}
	if e.Wrapped != nil {
		fmt.Fprintf(&b, "\n  %s %s\n", c.paint(c.gray, "Cause:"), e.Wrapped)
	}

	b.WriteString("\n")
	return b.String()
}

// writeSnippet prints the source lines around the location with the
// offending line and column marked.
func (e *Error) writeSnippet(b *strings.Builder, c palette) {
	if len(e.Context) == 0 {
		return
	}

	first := max(e.Location.Line-contextRadius, 1)
	width := len(strconv.Itoa(first + len(e.Context) - 1))
	gutter := c.paint(c.gray, "│")

	b.WriteString("\n")
	for i, src := range e.Context {
		n := first + i
		marker := "  "
		if n == e.Location.Line {
			marker = c.paint(c.red, "→ ")
		}
		fmt.Fprintf(b, "  %s%*d %s %s\n", marker, width, n, gutter, src)

		if n == e.Location.Line && e.Location.Column > 0 {
			fmt.Fprintf(b, "    %s %s %s%s\n",
				strings.Repeat(" ", width), gutter,
				strings.Repeat(" ", e.Location.Column-1), c.paint(c.red, "^"))
		}
	}
}

type jsonError struct {
	Code       string    `json:"code,omitempty"`
	Category   Category  `json:"category"`
	Message    string    `json:"message"`
	Detail     string    `json:"detail,omitempty"`
	Location   *Location `json:"location,omitempty"`
	Suggestion string    `json:"suggestion,omitempty"`
}

// FormatJSON returns the error as a JSON object, the body of HTTP error
// responses.
func (e *Error) FormatJSON() string {
	data, err := json.Marshal(jsonError{
		Code:       e.Code,
		Category:   e.Category,
		Message:    e.Message,
		Detail:     e.Detail,
		Location:   e.Location,
		Suggestion: e.Suggestion,
	})
	if err != nil {
		return fmt.Sprintf(`{"code":%q,"message":%q}`, e.Code, e.Message)
	}
	return string(data)
}

// LogValue implements slog.LogValuer, so logged errors keep their code
// and source position as separate fields.
func (e *Error) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("code", e.Code),
		slog.String("message", e.Message),
	}
	if e.Detail != "" {
		attrs = append(attrs, slog.String("detail", e.Detail))
	}
	if e.Location != nil {
		attrs = append(attrs, slog.String("location", e.Location.String()))
	}
	if e.Wrapped != nil {
		attrs = append(attrs, slog.String("cause", e.Wrapped.Error()))
	}
	return slog.GroupValue(attrs...)
}

// wrapText wraps text to the specified width.
func wrapText(text string, width int) []string {
	var lines []string
	var current strings.Builder

	for _, word := range strings.Fields(text) {
		if current.Len() > 0 && current.Len()+len(word)+1 > width {
			lines = append(lines, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteByte(' ')
		}
		current.WriteString(word)
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return lines
}

// Fprint writes err to w: the full format for an *Error in err's chain,
// a plain line otherwise.
func Fprint(w io.Writer, err error) {
	var fe *Error
	if errors.As(err, &fe) {
		io.WriteString(w, fe.Format())
		return
	}
	c := colors
	fmt.Fprintf(w, "\n%s %s\n\n", c.paint(c.red+c.bold, "ERROR:"), err)
}

// PrintError prints a formatted error to stderr.
func PrintError(err error) {
	Fprint(os.Stderr, err)
}
