package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vango-dev/featuregrid/internal/builder"
	"github.com/vango-dev/featuregrid/internal/catalog/ui"
	"github.com/vango-dev/featuregrid/internal/errors"
	"github.com/vango-dev/featuregrid/pkg/cards"
	"github.com/vango-dev/featuregrid/pkg/layout"
	"github.com/vango-dev/featuregrid/pkg/render"
	"github.com/vango-dev/featuregrid/pkg/vdom"
)

const maxActionBytes = 16 << 10

// handlePage serves the builder, creating a session when the request has
// none.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	session := s.openSession(w, r, s.sessions, SessionCookie, "/")
	if session == nil {
		return
	}
	s.writePage(w, session, "Feature Grid Builder", "", session.State().Dark)
}

// handleShowcase serves the card gallery. Its sessions are separate from
// the builder's.
func (s *Server) handleShowcase(w http.ResponseWriter, r *http.Request) {
	session := s.openSession(w, r, s.showcases, ShowcaseCookie, "/showcase")
	if session == nil {
		return
	}
	s.writePage(w, session, "Feature Cards Showcase", "/showcase/ws", false)
}

// openSession returns the request's session from sm, creating one and
// setting its cookie when there is none. On failure it writes the error
// and returns nil.
func (s *Server) openSession(w http.ResponseWriter, r *http.Request, sm *SessionManager, cookie, path string) *Session {
	if session := lookupSession(r, sm, cookie); session != nil {
		return session
	}

	session, err := sm.Create()
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Code(err) == "E502" {
			status = http.StatusServiceUnavailable
		}
		writeError(w, status, err)
		return nil
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookie,
		Value:    session.ID,
		Path:     path,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return session
}

// writePage renders the session's current frame into a full page. The
// client script connects to socket, or to /ws when it is empty.
func (s *Server) writePage(w http.ResponseWriter, session *Session, title, socket string, dark bool) {
	frame, err := session.Current()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	body := []any{
		vdom.ID("app"),
		vdom.Data("seq", strconv.FormatUint(frame.Seq, 10)),
	}
	if socket != "" {
		body = append(body, vdom.Data("ws", socket))
	}
	page := render.PageData{
		Title:        title,
		Dark:         dark,
		BodyClass:    "antialiased",
		Scripts:      []render.ScriptTag{{Src: ui.TailwindCDN}},
		Body:         vdom.Div(append(body, vdom.Raw(frame.HTML))...),
		ClientScript: clientScript,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	renderer := render.NewRenderer(render.RendererConfig{})
	if err := renderer.RenderPage(w, page); err != nil {
		s.logger.Error("page render failed", "error", err)
	}
}

type actionResponse struct {
	Seq   uint64        `json:"seq"`
	State builder.State `json:"state"`
}

// handleAction applies one JSON action to the cookie session.
func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	session := s.sessionFromRequest(r)
	if session == nil {
		writeError(w, http.StatusNotFound, errors.New("E501"))
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxActionBytes))
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, errors.New("E503").Wrap(err))
		return
	}
	action, err := builder.ParseAction(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	start := time.Now()
	frame, state, err := session.Apply(action)
	s.metrics.RecordEvent(eventLabel(action.Type), time.Since(start), err)
	if err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Code(err) == "E501" {
			status = http.StatusNotFound
		}
		writeError(w, status, err)
		return
	}

	writeJSON(w, http.StatusOK, actionResponse{Seq: frame.Seq, State: state})
}

type catalogResponse struct {
	Layouts    []catalogLayout   `json:"layouts"`
	Categories []catalogCategory `json:"categories"`
	Themes     []catalogTheme    `json:"themes"`
	Registered []string          `json:"registered"`
}

type catalogLayout struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Variants    []catalogVariant `json:"variants"`
}

type catalogVariant struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Slots int    `json:"slots"`
}

type catalogCategory struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	Cards []catalogCard `json:"cards"`
}

type catalogCard struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Registered  bool   `json:"registered"`
}

type catalogTheme struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// handleCatalog lists layouts, categories and the registered pairs.
func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	reg := s.resolver.Registry()
	resp := catalogResponse{Registered: []string{}}

	for _, d := range s.cat.Layouts {
		l := catalogLayout{ID: d.ID, Name: d.Name, Description: d.Description}
		for _, v := range d.Variants {
			n, _ := layout.SlotCount(d.ID, v)
			l.Variants = append(l.Variants, catalogVariant{ID: v.ID, Name: v.Name, Slots: n})
		}
		resp.Layouts = append(resp.Layouts, l)
	}
	for _, c := range s.cat.Categories {
		cat := catalogCategory{ID: c.ID, Name: c.Name, Cards: []catalogCard{}}
		for _, card := range c.Cards {
			_, ok := reg.Get(c.ID, card.ID)
			cat.Cards = append(cat.Cards, catalogCard{
				ID:          card.ID,
				Name:        card.Name,
				Description: card.Description,
				Registered:  ok,
			})
		}
		resp.Categories = append(resp.Categories, cat)
	}
	for _, t := range s.cat.Themes {
		resp.Themes = append(resp.Themes, catalogTheme{ID: t.ID, Name: t.Name, Color: t.Color})
	}
	for _, e := range reg.Entries() {
		resp.Registered = append(resp.Registered, e.String())
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleCard renders one card. Unknown pairs answer 404 with the fallback
// markup as the body.
func (s *Server) handleCard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	props := cards.Props{
		Accent:  q.Get("accent"),
		Flipped: queryBool(q.Get("flipped")),
		Dark:    queryBool(q.Get("dark")),
	}
	if v, err := strconv.Atoi(q.Get("value")); err == nil {
		props.Value = v
	}

	node, outcome := s.resolver.Lookup(chi.URLParam(r, "category"), chi.URLParam(r, "name"), props)

	renderer := render.NewRenderer(render.RendererConfig{StripHandlers: true})
	html, err := renderer.RenderToString(node)
	if err != nil {
		writeError(w, http.StatusInternalServerError, errors.New("E308").Wrap(err))
		return
	}

	status := http.StatusOK
	switch outcome {
	case cards.OutcomeNotFound:
		status = http.StatusNotFound
	case cards.OutcomeFailed:
		status = http.StatusInternalServerError
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	io.WriteString(w, html)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"sessions":  s.sessions.Count(),
		"showcases": s.showcases.Count(),
	})
}

// sessionFromRequest returns the builder session of the request, or nil.
func (s *Server) sessionFromRequest(r *http.Request) *Session {
	return lookupSession(r, s.sessions, SessionCookie)
}

// lookupSession returns the session of sm named by cookie, or nil.
func lookupSession(r *http.Request, sm *SessionManager, cookie string) *Session {
	c, err := r.Cookie(cookie)
	if err != nil {
		return nil
	}
	session := sm.Get(c.Value)
	if session != nil {
		session.Touch()
	}
	return session
}

func queryBool(s string) bool {
	b, _ := strconv.ParseBool(s)
	return b
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes err as the JSON form of a coded error.
func writeError(w http.ResponseWriter, status int, err error) {
	fe := errors.FromError(err, "E506")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	io.WriteString(w, fe.FormatJSON())
}
