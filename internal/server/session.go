package server

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/vango-dev/featuregrid/internal/builder"
	"github.com/vango-dev/featuregrid/internal/errors"
	"github.com/vango-dev/featuregrid/pkg/render"
	"github.com/vango-dev/featuregrid/pkg/vdom"
)

// Screen is the stateful view a session renders and dispatches events
// into: a *builder.Builder or a *showcase.Showcase.
type Screen interface {
	Render() (*vdom.VNode, error)
}

// Session is one browser's screen. Transitions are serialized by mu, so
// actions from a session apply in the order they arrive.
type Session struct {
	ID      string
	Created time.Time

	mu       sync.Mutex
	screen   Screen
	renderer *render.Renderer
	handlers map[string]any
	seq      uint64
	html     string

	lastActive atomic.Int64
	closed     atomic.Bool
	done       chan struct{}
	logger     *slog.Logger
}

func newSession(id string, screen Screen, logger *slog.Logger) *Session {
	now := time.Now()
	s := &Session{
		ID:       id,
		Created:  now,
		screen:   screen,
		renderer: render.NewRenderer(render.RendererConfig{}),
		done:     make(chan struct{}),
		logger:   logger.With("session_id", id),
	}
	s.lastActive.Store(now.UnixNano())
	return s
}

// Touch marks the session as active now.
func (s *Session) Touch() {
	s.lastActive.Store(time.Now().UnixNano())
}

// LastActive returns the time of the last request or event.
func (s *Session) LastActive() time.Time {
	return time.Unix(0, s.lastActive.Load())
}

// Close ends the session. Connections watching Done are torn down and
// later actions fail with E501.
func (s *Session) Close() {
	if s.closed.Swap(true) {
		return
	}
	close(s.done)
	s.logger.Debug("session ended")
}

// Done returns a channel that's closed when the session ends.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// IsClosed reports whether Close has been called.
func (s *Session) IsClosed() bool {
	return s.closed.Load()
}

// Frame is one rendered version of the screen.
type Frame struct {
	Seq  uint64
	HTML string
}

// Current returns the latest render, rendering first if needed.
func (s *Session) Current() (Frame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.seq == 0 {
		if err := s.rerenderLocked(); err != nil {
			return Frame{}, err
		}
	}
	return Frame{Seq: s.seq, HTML: s.html}, nil
}

// State returns a copy of the builder state, or the zero State when the
// session does not run a builder.
func (s *Session) State() builder.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok := s.screen.(*builder.Builder); ok {
		return b.State()
	}
	return builder.State{}
}

// Apply performs a and re-renders. A rejected action leaves the state and
// the current frame untouched. The returned state belongs to the returned
// frame.
func (s *Session) Apply(a builder.Action) (Frame, builder.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkOpen(); err != nil {
		return Frame{}, builder.State{}, err
	}
	s.Touch()

	b, ok := s.screen.(*builder.Builder)
	if !ok {
		return Frame{}, builder.State{}, errors.New("E307").
			WithDetailf("session %s does not run the builder", s.ID)
	}
	if err := b.Apply(a); err != nil {
		return Frame{}, builder.State{}, err
	}
	if err := s.rerenderLocked(); err != nil {
		return Frame{}, builder.State{}, err
	}
	return Frame{Seq: s.seq, HTML: s.html}, b.State(), nil
}

func (s *Session) checkOpen() error {
	if s.closed.Load() {
		return errors.New("E501").WithDetailf("session %s has ended", s.ID)
	}
	return nil
}

// Dispatch runs the handler registered for hid and event in the frame
// identified by seq, then re-renders.
//
// An event for an older frame is not run: Dispatch returns the current
// frame with an E504 error so the client can resynchronize.
func (s *Session) Dispatch(seq uint64, hid, event, value string) (Frame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkOpen(); err != nil {
		return Frame{}, err
	}
	s.Touch()

	if seq != s.seq {
		return Frame{Seq: s.seq, HTML: s.html}, errors.New("E504").
			WithDetailf("event for frame %d, current frame is %d", seq, s.seq)
	}

	handler, ok := s.handlers[hid+"_on"+event]
	if !ok {
		return Frame{}, errors.New("E505").
			WithDetailf("no %s handler for element %s", event, hid)
	}

	if err := invoke(handler, value); err != nil {
		return Frame{}, err
	}
	if err := s.rerenderLocked(); err != nil {
		return Frame{}, err
	}
	return Frame{Seq: s.seq, HTML: s.html}, nil
}

// invoke calls a collected handler, converting panics into errors.
func invoke(handler any, value string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.New("E506").WithDetailf("handler panicked: %v", r)
		}
	}()

	switch h := handler.(type) {
	case func():
		h()
	case func(string):
		h(value)
	default:
		return errors.New("E505").WithDetail(fmt.Sprintf("unsupported handler type %T", handler))
	}
	return nil
}

func (s *Session) rerenderLocked() error {
	node, err := s.screen.Render()
	if err != nil {
		return err
	}

	s.renderer.Reset()
	html, err := s.renderer.RenderToString(node)
	if err != nil {
		return errors.New("E308").Wrap(err)
	}

	s.handlers = s.renderer.Handlers()
	s.html = html
	s.seq++
	s.logger.Debug("rendered", "seq", s.seq, "handlers", len(s.handlers))
	return nil
}
