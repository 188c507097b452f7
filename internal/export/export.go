// Package export writes a builder's current grid as static files: a
// standalone index.html preview, the generated component source and the
// selection as JSON.
//
// Files go to a Sink. DirSink writes to a local directory and S3Sink
// uploads to a bucket:
//
//	target, _ := export.ParseTarget("s3://marketing-previews/grids/")
//	sink, _ := export.NewSink(ctx, target, cfg.Export.Region)
//	files, err := export.New(sink).Export(ctx, b)
package export

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/vango-dev/featuregrid/internal/builder"
	"github.com/vango-dev/featuregrid/internal/catalog/ui"
	"github.com/vango-dev/featuregrid/internal/errors"
	"github.com/vango-dev/featuregrid/pkg/render"
	"github.com/vango-dev/featuregrid/pkg/vdom"
)

// Exported file names.
const (
	IndexFile = "index.html"
	CodeFile  = "FeatureGrid.jsx"
	StateFile = "grid.json"
)

// Sink stores exported files.
type Sink interface {
	// Put stores data under name.
	Put(ctx context.Context, name, contentType string, data []byte) error

	// Location describes where name is stored, for display.
	Location(name string) string
}

// Exporter renders a builder into a Sink.
type Exporter struct {
	sink   Sink
	logger *slog.Logger
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Exporter) {
		e.logger = logger
	}
}

// New creates an Exporter writing to sink.
func New(sink Sink, opts ...Option) *Exporter {
	e := &Exporter{sink: sink, logger: slog.Default()}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.With("component", "export")
	return e
}

// File is one exported file.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Export writes the builder's grid and returns the locations written, in
// order. It stops at the first failure.
func (e *Exporter) Export(ctx context.Context, b *builder.Builder) ([]string, error) {
	files, err := Files(b)
	if err != nil {
		return nil, err
	}

	written := make([]string, 0, len(files))
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return written, errors.New("E402").WithDetail("export cancelled").Wrap(err)
		}
		if err := e.sink.Put(ctx, f.Name, f.ContentType, f.Data); err != nil {
			return written, err
		}
		loc := e.sink.Location(f.Name)
		e.logger.Info("exported", "file", loc, "bytes", len(f.Data))
		written = append(written, loc)
	}
	return written, nil
}

// Files renders the export files without writing them.
func Files(b *builder.Builder) ([]File, error) {
	page, err := Page(b)
	if err != nil {
		return nil, err
	}
	code, err := b.Code()
	if err != nil {
		return nil, err
	}
	state, err := json.MarshalIndent(b.State(), "", "  ")
	if err != nil {
		return nil, errors.New("E402").Wrap(err)
	}

	return []File{
		{IndexFile, "text/html; charset=utf-8", page},
		{CodeFile, "text/javascript; charset=utf-8", []byte(code)},
		{StateFile, "application/json", append(state, '\n')},
	}, nil
}

// Page renders the preview as a standalone HTML document. Interactive
// cards render in their current state; the page has no client script.
func Page(b *builder.Builder) ([]byte, error) {
	preview, err := b.Preview()
	if err != nil {
		return nil, err
	}

	desc, variant := b.Layout()
	state := b.State()

	bodyClass := "bg-white text-gray-900"
	if state.Dark {
		bodyClass = "bg-gray-900 text-white"
	}

	var buf bytes.Buffer
	renderer := render.NewRenderer(render.RendererConfig{StripHandlers: true})
	err = renderer.RenderPage(&buf, render.PageData{
		Title:     strings.TrimSpace(desc.Name + " " + variant.Name),
		Dark:      state.Dark,
		BodyClass: "antialiased " + bodyClass,
		Scripts:   []render.ScriptTag{{Src: ui.TailwindCDN}},
		Body:      vdom.Main(vdom.Class("min-h-screen"), preview),
	})
	if err != nil {
		return nil, errors.New("E308").Wrap(err)
	}
	return buf.Bytes(), nil
}
