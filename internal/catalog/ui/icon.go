package ui

import "github.com/vango-dev/featuregrid/pkg/vdom"

// iconPaths holds the path data of the inline icons, 24x24 stroke icons.
var iconPaths = map[string][]string{
	"zap":            {"M13 2 3 14h9l-1 8 10-12h-9l1-8z"},
	"arrow-right":    {"M5 12h14", "m12 5 7 7-7 7"},
	"arrow-left":     {"M19 12H5", "m12 19-7-7 7-7"},
	"arrow-up-right": {"M7 7h10v10", "M7 17 17 7"},
	"play":           {"m6 3 14 9-14 9V3z"},
	"check":          {"M20 6 9 17l-5-5"},
	"star":           {"m12 2 3.09 6.26L22 9.27l-5 4.87 1.18 6.88L12 17.77l-6.18 3.25L7 14.14 2 9.27l6.91-1.01L12 2z"},
	"heart":          {"M19 14c1.49-1.46 3-3.21 3-5.5A5.5 5.5 0 0 0 16.5 3c-1.76 0-3 .5-4.5 2-1.5-1.5-2.74-2-4.5-2A5.5 5.5 0 0 0 2 8.5c0 2.3 1.5 4.05 3 5.5l7 7Z"},
	"users":          {"M16 21v-2a4 4 0 0 0-4-4H6a4 4 0 0 0-4 4v2", "M22 21v-2a4 4 0 0 0-3-3.87", "M16 3.13a4 4 0 0 1 0 7.75"},
	"trending-up":    {"M22 7 13.5 15.5 8.5 10.5 2 17", "M16 7h6v6"},
	"bar-chart":      {"M3 3v18h18", "M18 17V9", "M13 17V5", "M8 17v-3"},
	"clock":          {"M12 6v6l4 2"},
	"dollar-sign":    {"M12 2v20", "M17 5H9.5a3.5 3.5 0 0 0 0 7h5a3.5 3.5 0 0 1 0 7H6"},
	"map-pin":        {"M20 10c0 6-8 12-8 12s-8-6-8-12a8 8 0 0 1 16 0Z"},
	"sun":            {"M12 2v2", "M12 20v2", "m4.93 4.93 1.41 1.41", "m17.66 17.66 1.41 1.41", "M2 12h2", "M20 12h2"},
	"shield":         {"M12 22s8-4 8-10V5l-8-3-8 3v7c0 6 8 10 8 10z"},
	"layers":         {"m12 2 10 5-10 5L2 7l10-5z", "m2 17 10 5 10-5", "m2 12 10 5 10-5"},
	"message":        {"M21 15a2 2 0 0 1-2 2H7l-4 4V5a2 2 0 0 1 2-2h14a2 2 0 0 1 2 2z"},
	"git-compare":    {"M18 15V9a3 3 0 0 0-3-3h-4", "M6 9v6a3 3 0 0 0 3 3h4"},
	"circle-alert":   {"M12 8v4", "M12 16h.01"},
}

// Icon renders an inline SVG icon. Unknown names render an empty svg.
func Icon(name string, className ...string) *vdom.VNode {
	paths := make([]*vdom.VNode, 0, len(iconPaths[name]))
	for _, d := range iconPaths[name] {
		paths = append(paths, vdom.CustomElement("path", vdom.Attr{Key: "d", Value: d}))
	}

	return vdom.CustomElement("svg",
		vdom.Class(CN(append([]string{"h-5 w-5"}, className...)...)),
		vdom.Attr{Key: "viewBox", Value: "0 0 24 24"},
		vdom.Attr{Key: "fill", Value: "none"},
		vdom.Attr{Key: "stroke", Value: "currentColor"},
		vdom.Attr{Key: "stroke-width", Value: "2"},
		vdom.Attr{Key: "stroke-linecap", Value: "round"},
		vdom.Attr{Key: "stroke-linejoin", Value: "round"},
		vdom.Data("icon", name),
		vdom.AriaHidden(true),
		paths,
	)
}

// HasIcon reports whether name is a known icon.
func HasIcon(name string) bool {
	_, ok := iconPaths[name]
	return ok
}
