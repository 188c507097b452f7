package catalog

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vango-dev/featuregrid/internal/errors"
	"github.com/vango-dev/featuregrid/pkg/layout"
)

// hclFile is the top-level structure of a catalog file.
type hclFile struct {
	Layouts    []*hclLayout   `hcl:"layout,block"`
	Categories []*hclCategory `hcl:"category,block"`
	Themes     []*hclTheme    `hcl:"theme,block"`
}

type hclLayout struct {
	ID          string        `hcl:"id,label"`
	Name        string        `hcl:"name"`
	Description string        `hcl:"description,optional"`
	Icon        string        `hcl:"icon,optional"`
	Guide       string        `hcl:"guide,optional"`
	Variants    []*hclVariant `hcl:"variant,block"`
	Body        hcl.Body      `hcl:",body"`
}

type hclVariant struct {
	ID   string `hcl:"id,label"`
	Name string `hcl:"name"`

	// Cols and Visible are either a number or "auto".
	Cols    hcl.Expression `hcl:"cols,optional"`
	Visible hcl.Expression `hcl:"visible,optional"`

	Rows        int    `hcl:"rows,optional"`
	Items       int    `hcl:"items,optional"`
	Infinite    bool   `hcl:"infinite,optional"`
	Arrangement string `hcl:"arrangement,optional"`
	Alignment   string `hcl:"alignment,optional"`
	Levels      int    `hcl:"levels,optional"`
	Inverted    bool   `hcl:"inverted,optional"`

	Body hcl.Body `hcl:",body"`
}

type hclCategory struct {
	ID          string     `hcl:"id,label"`
	Name        string     `hcl:"name"`
	Description string     `hcl:"description,optional"`
	Icon        string     `hcl:"icon,optional"`
	Cards       []*hclCard `hcl:"card,block"`
	Body        hcl.Body   `hcl:",body"`
}

type hclCard struct {
	ID          string   `hcl:"id,label"`
	Name        string   `hcl:"name"`
	Description string   `hcl:"description,optional"`
	Preview     string   `hcl:"preview,optional"`
	Body        hcl.Body `hcl:",body"`
}

type hclTheme struct {
	ID    string   `hcl:"id,label"`
	Name  string   `hcl:"name"`
	Color string   `hcl:"color,optional"`
	Body  hcl.Body `hcl:",body"`
}

// decode parses src and converts it into a Catalog. Guides are left as
// Markdown.
func decode(src []byte, filename string) (*Catalog, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, diagError("E201", diags)
	}

	var parsed hclFile
	if diags := gohcl.DecodeBody(f.Body, nil, &parsed); diags.HasErrors() {
		return nil, diagError("E201", diags)
	}

	cat := &Catalog{}
	for _, hl := range parsed.Layouts {
		desc := layout.Descriptor{
			ID:          hl.ID,
			Name:        hl.Name,
			Description: hl.Description,
			Icon:        hl.Icon,
			Guide:       hl.Guide,
		}
		for _, hv := range hl.Variants {
			v, err := decodeVariant(hv)
			if err != nil {
				return nil, err
			}
			desc.Variants = append(desc.Variants, v)
			cat.ranges = append(cat.ranges, rangeOf("variant", hl.ID+"/"+hv.ID, defRange(hv.Body)))
		}
		cat.Layouts = append(cat.Layouts, desc)
		cat.ranges = append(cat.ranges, rangeOf("layout", hl.ID, defRange(hl.Body)))
	}

	for _, hc := range parsed.Categories {
		c := Category{ID: hc.ID, Name: hc.Name, Description: hc.Description, Icon: hc.Icon}
		for _, card := range hc.Cards {
			c.Cards = append(c.Cards, CardInfo{
				ID:          card.ID,
				Name:        card.Name,
				Description: card.Description,
				Preview:     card.Preview,
			})
			cat.ranges = append(cat.ranges, rangeOf("card", hc.ID+"/"+card.ID, defRange(card.Body)))
		}
		cat.Categories = append(cat.Categories, c)
		cat.ranges = append(cat.ranges, rangeOf("category", hc.ID, defRange(hc.Body)))
	}

	for _, ht := range parsed.Themes {
		color := ht.Color
		if color == "" {
			color = ht.ID
		}
		cat.Themes = append(cat.Themes, Theme{ID: ht.ID, Name: ht.Name, Color: color})
		cat.ranges = append(cat.ranges, rangeOf("theme", ht.ID, defRange(ht.Body)))
	}

	return cat, nil
}

func decodeVariant(hv *hclVariant) (layout.Variant, error) {
	v := layout.Variant{
		ID:          hv.ID,
		Name:        hv.Name,
		Rows:        hv.Rows,
		Items:       hv.Items,
		Infinite:    hv.Infinite,
		Arrangement: hv.Arrangement,
		Alignment:   hv.Alignment,
		Levels:      hv.Levels,
		Inverted:    hv.Inverted,
	}

	var err error
	if v.Cols, v.AutoCols, err = numberOrAuto("cols", hv.Cols); err != nil {
		return v, err
	}
	if v.Visible, v.AutoVisible, err = numberOrAuto("visible", hv.Visible); err != nil {
		return v, err
	}

	for _, f := range []struct {
		name string
		n    int
	}{{"rows", v.Rows}, {"items", v.Items}, {"levels", v.Levels}} {
		if f.n < 0 {
			r := defRange(hv.Body)
			return v, errors.New("E205").
				WithLocation(r.Filename, r.Start.Line, r.Start.Column).
				WithDetailf("variant %q: %s must not be negative, got %d", hv.ID, f.name, f.n)
		}
	}

	return v, nil
}

// numberOrAuto evaluates a union attribute: a positive whole number, or
// the string "auto". An absent attribute yields (0, false).
func numberOrAuto(name string, expr hcl.Expression) (int, bool, error) {
	if expr == nil {
		return 0, false, nil
	}

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return 0, false, diagError("E205", diags)
	}
	if val.IsNull() {
		return 0, false, nil
	}

	r := expr.Range()
	invalid := func(format string, args ...any) error {
		return errors.New("E205").
			WithLocation(r.Filename, r.Start.Line, r.Start.Column).
			WithDetailf("%s: "+format, append([]any{name}, args...)...).
			WithSuggestion(fmt.Sprintf(`Use a whole number or "auto", e.g. %s = 3`, name))
	}

	switch val.Type() {
	case cty.String:
		var s string
		if err := gocty.FromCtyValue(val, &s); err != nil {
			return 0, false, invalid("%v", err)
		}
		if s != "auto" {
			return 0, false, invalid("unexpected string %q", s)
		}
		return 0, true, nil
	case cty.Number:
		var n int
		if err := gocty.FromCtyValue(val, &n); err != nil {
			return 0, false, invalid("%v", err)
		}
		if n < 1 {
			return 0, false, invalid("must be at least 1, got %d", n)
		}
		return n, false, nil
	default:
		return 0, false, invalid("unsupported type %s", val.Type().FriendlyName())
	}
}

// diagError converts HCL diagnostics into a coded error positioned at the
// first error.
func diagError(code string, diags hcl.Diagnostics) error {
	err := errors.New(code).Wrap(diags)
	for _, d := range diags {
		if d.Severity != hcl.DiagError {
			continue
		}
		err.WithDetail(d.Summary + ": " + d.Detail)
		if d.Subject != nil {
			err.WithLocation(d.Subject.Filename, d.Subject.Start.Line, d.Subject.Start.Column)
		}
		break
	}
	return err
}

// sourceRange remembers where a catalog entry was defined, for validation
// errors.
type sourceRange struct {
	kind string
	id   string
	rng  hcl.Range
}

func rangeOf(kind, id string, r hcl.Range) sourceRange {
	return sourceRange{kind: kind, id: id, rng: r}
}

// defRange returns the position of a block's body.
func defRange(body hcl.Body) hcl.Range {
	if body == nil {
		return hcl.Range{}
	}
	return body.MissingItemRange()
}
