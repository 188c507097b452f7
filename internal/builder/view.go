package builder

import (
	"strconv"

	"github.com/vango-dev/featuregrid/internal/catalog/ui"
	"github.com/vango-dev/featuregrid/internal/codegen"
	"github.com/vango-dev/featuregrid/internal/errors"
	"github.com/vango-dev/featuregrid/pkg/layout"
	"github.com/vango-dev/featuregrid/pkg/vdom"
)

// Preview builds the feature-grid section alone, as it would appear on a
// page. Every slot's card is resolved with that slot's props.
func (b *Builder) Preview() (*vdom.VNode, error) {
	return b.section(false)
}

func (b *Builder) section(editable bool) (*vdom.VNode, error) {
	slot := func(i int) *vdom.VNode {
		sel := b.SelectionFor(i)
		card := b.resolver.Resolve(sel.Category, sel.Name, b.Props(i))
		if !editable {
			return card
		}
		return vdom.Div(
			vdom.Class(ui.CN(
				"relative h-full cursor-pointer rounded-lg transition-shadow",
				ifClass(i == b.state.Block, "ring-2 ring-offset-2 ring-"+b.accentOr("blue")+"-500"),
			)),
			vdom.Data("block", strconv.Itoa(i)),
			vdom.TitleAttr("Block "+strconv.Itoa(i+1)+": "+sel.String()),
			vdom.OnClick(func() { _ = b.SelectBlock(i) }),
			card,
		)
	}

	node, err := layout.Render(b.desc, b.vari, b.state.ViewMode, slot)
	if err != nil {
		return nil, errors.New("E308").
			WithDetailf("layout %s/%s", b.desc.ID, b.vari.ID).
			Wrap(err)
	}
	return node, nil
}

// Render builds the whole builder UI: the toolbar, the sidebar of the
// current stage and the preview or code pane.
func (b *Builder) Render() (*vdom.VNode, error) {
	var pane *vdom.VNode
	if b.state.PreviewMode == PreviewCode {
		html, err := b.CodeHTML()
		if err != nil {
			return nil, err
		}
		pane = vdom.Div(
			vdom.Class("overflow-auto rounded-lg text-sm"),
			vdom.Data("pane", "code"),
			vdom.Raw(html),
		)
	} else {
		section, err := b.section(true)
		if err != nil {
			return nil, err
		}
		pane = vdom.Div(
			vdom.Class(b.state.ViewMode.FrameClasses(), "transition-all duration-300"),
			vdom.Data("pane", "preview"),
			section,
		)
	}

	var sidebar *vdom.VNode
	if b.Stage() == StageCard {
		sidebar = b.cardSidebar()
	} else {
		sidebar = b.layoutSidebar()
	}

	shell := "bg-gray-50 text-gray-900"
	if b.state.Dark {
		shell = "dark bg-gray-900 text-white"
	}

	return vdom.Div(
		vdom.ID("builder"),
		vdom.Class("flex h-screen flex-col overflow-hidden", shell),
		vdom.Data("stage", b.Stage().String()),
		b.toolbar(),
		vdom.Div(
			vdom.Class("flex flex-1 overflow-hidden"),
			vdom.Aside(vdom.Class("w-80 flex-shrink-0 overflow-y-auto border-r p-4"), sidebar),
			vdom.Main(vdom.Class("flex-1 overflow-auto p-6"), pane),
		),
	), nil
}

func (b *Builder) toolbar() *vdom.VNode {
	themes := make([]*vdom.VNode, 0, len(b.cat.Themes))
	for _, t := range b.cat.Themes {
		selected := t.ID == b.state.Theme
		themes = append(themes, vdom.Button(
			vdom.Type("button"),
			vdom.Class("h-6 w-6 rounded-full", t.Swatch(), ifClass(selected, "ring-2 ring-offset-2 ring-gray-400")),
			vdom.AriaLabel(t.Name+" theme"),
			vdom.AriaPressed(selected),
			vdom.Data("theme", t.ID),
			vdom.OnClick(func() { _ = b.SetTheme(t.ID) }),
		))
	}

	modes := make([]*vdom.VNode, 0, len(layout.ViewModes))
	for _, m := range layout.ViewModes {
		modes = append(modes, toggleButton(string(m), m == b.state.ViewMode, func() { _ = b.SetViewMode(string(m)) }))
	}

	return vdom.Header(
		vdom.Class("flex flex-shrink-0 items-center justify-between border-b px-6 py-3"),
		vdom.H1(vdom.Class("text-xl font-bold"), "Feature Grid Builder"),
		vdom.Div(
			vdom.Class("flex items-center gap-6"),
			vdom.Div(vdom.Class("flex items-center gap-2"), themes),
			vdom.Div(
				vdom.Class("flex items-center gap-2 text-sm"),
				vdom.Span("Dark"),
				ui.Switch(b.state.Dark, "Dark mode", func() { b.SetDark(!b.state.Dark) }),
			),
			vdom.Div(vdom.Class("flex gap-1"), vdom.Data("group", "view-mode"), modes),
			vdom.Div(
				vdom.Class("flex gap-1"),
				vdom.Data("group", "preview-mode"),
				toggleButton("Preview", b.state.PreviewMode == PreviewRendered, func() { _ = b.SetPreviewMode(string(PreviewRendered)) }),
				toggleButton("Code", b.state.PreviewMode == PreviewCode, func() { _ = b.SetPreviewMode(string(PreviewCode)) }),
			),
		),
	)
}

func (b *Builder) layoutSidebar() *vdom.VNode {
	layouts := make([]*vdom.VNode, 0, len(b.cat.Layouts))
	for _, l := range b.cat.Layouts {
		layouts = append(layouts, pickerButton(
			l.Name, l.Description, "",
			l.ID == b.desc.ID,
			func() { _ = b.SelectLayout(l.ID) },
			vdom.Data("layout", l.ID),
		))
	}

	variants := make([]*vdom.VNode, 0, len(b.desc.Variants))
	for _, v := range b.desc.Variants {
		variants = append(variants, toggleButton(v.Name, v.ID == b.vari.ID, func() { _ = b.SelectVariant(v.ID) }))
	}

	return vdom.Div(
		vdom.Class("space-y-6"),
		vdom.Section(
			vdom.H2(vdom.Class("mb-2 font-semibold"), "Layout"),
			vdom.Div(vdom.Class("space-y-2"), layouts),
		),
		vdom.Section(
			vdom.H2(vdom.Class("mb-2 font-semibold"), "Variant"),
			vdom.Div(vdom.Class("flex flex-wrap gap-2"), vdom.Data("group", "variant"), variants),
		),
		vdom.If(b.desc.Guide != "", vdom.Div(
			vdom.Class("prose prose-sm text-muted-foreground"),
			vdom.Raw(b.desc.Guide),
		)),
		vdom.Section(
			vdom.H2(vdom.Class("mb-2 font-semibold"), "Default card"),
			vdom.P(vdom.Class("font-mono text-sm"), b.state.Card.String()),
			vdom.P(vdom.Class("text-xs text-muted-foreground"), "Click a block in the preview to choose its card."),
		),
	)
}

func (b *Builder) cardSidebar() *vdom.VNode {
	block := b.state.Block
	current := b.SelectionFor(block)

	groups := make([]*vdom.VNode, 0, len(b.cat.Categories))
	for _, cat := range b.cat.Categories {
		items := make([]*vdom.VNode, 0, len(cat.Cards))
		for _, card := range cat.Cards {
			selected := current == Selection{Category: cat.ID, Name: card.ID}
			items = append(items, pickerButton(
				card.Name, card.Description, card.Preview,
				selected,
				func() { b.SelectCard(cat.ID, card.ID) },
				vdom.Data("card", cat.ID+"/"+card.ID),
			))
		}
		groups = append(groups, vdom.Section(
			vdom.H3(vdom.Class("mb-1 font-semibold"), cat.Name),
			vdom.P(vdom.Class("mb-2 text-xs text-muted-foreground"), cat.Description),
			vdom.Div(vdom.Class("space-y-2"), items),
		))
	}

	return vdom.Div(
		vdom.Class("space-y-6"),
		vdom.Div(
			vdom.Class("flex items-center gap-2"),
			ui.Button(
				ui.Ghost(),
				ui.Sm(),
				ui.WithLabel("Back to layout"),
				ui.WithOnClick(b.Back),
				ui.WithChildren(ui.Icon("arrow-left", "h-4 w-4")),
			),
			vdom.H2(vdom.Class("font-semibold"), "Block "+strconv.Itoa(block+1)),
		),
		groups,
	)
}

func toggleButton(label string, active bool, onClick func()) *vdom.VNode {
	opts := []ui.ButtonOption{ui.Sm(), ui.WithPressed(active), ui.WithOnClick(onClick), ui.WithChildren(label)}
	if !active {
		opts = append(opts, ui.Ghost())
	}
	return ui.Button(opts...)
}

func pickerButton(title, description, preview string, selected bool, onClick func(), extra ...any) *vdom.VNode {
	args := []any{
		vdom.Type("button"),
		vdom.Class(
			"w-full rounded-lg border p-3 text-left transition-colors",
			ifClass(selected, "border-primary bg-primary/5"),
			ifClass(!selected, "hover:bg-accent"),
		),
		vdom.AriaPressed(selected),
		vdom.OnClick(onClick),
		vdom.Div(vdom.Class("font-medium"), title),
		vdom.If(description != "", vdom.Div(vdom.Class("text-xs text-muted-foreground"), description)),
		vdom.If(preview != "", vdom.Div(vdom.Class("mt-1 text-xs italic"), preview)),
	}
	return vdom.Button(append(args, extra...)...)
}

func ifClass(cond bool, class string) string {
	if cond {
		return class
	}
	return ""
}

func (b *Builder) accentOr(def string) string {
	if a := b.accent(); a != "" {
		return a
	}
	return def
}

// Code returns the generated component source for the current selection.
func (b *Builder) Code() (string, error) {
	count := b.SlotCount()
	slots := make([]codegen.Slot, count)
	for i := range count {
		sel := b.SelectionFor(i)
		slots[i] = codegen.Slot{Category: sel.Category, Name: sel.Name}
	}

	cols := b.vari.Cols
	if cols == 0 {
		cols = 3
	}

	src, err := codegen.Generate(codegen.Selection{
		Layout:    b.desc.ID,
		Variant:   b.vari.ID,
		Theme:     b.state.Theme,
		Dark:      b.state.Dark,
		GridClass: layout.Desktop.GridClasses(cols),
		Slots:     slots,
	})
	if err != nil {
		return "", errors.New("E308").WithDetail("code generation").Wrap(err)
	}
	return src, nil
}

// CodeHTML returns Code syntax-highlighted as HTML.
func (b *Builder) CodeHTML() (string, error) {
	src, err := b.Code()
	if err != nil {
		return "", err
	}
	html, err := codegen.Highlight(src, "jsx")
	if err != nil {
		return "", errors.New("E308").WithDetail("code highlighting").Wrap(err)
	}
	return html, nil
}
