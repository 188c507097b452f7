// Package cards maps (category, name) pairs to card renderers.
//
// A Registry is the dispatch table. It is built once at startup, injected
// into whatever needs it and only read afterwards. A Resolver turns a
// selection plus Props into a *vdom.VNode and never fails: unknown pairs
// and panicking cards render as a visible placeholder.
//
//	reg := cards.NewRegistry()
//	reg.Register("interactive", "flip-card", flipCard{})
//
//	res := cards.NewResolver(reg)
//	node := res.Resolve("interactive", "flip-card", cards.Props{Flipped: true})
package cards
