package server

import (
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/vango-dev/featuregrid/internal/builder"
	"github.com/vango-dev/featuregrid/internal/catalog"
	"github.com/vango-dev/featuregrid/internal/errors"
	"github.com/vango-dev/featuregrid/internal/showcase"
	"github.com/vango-dev/featuregrid/pkg/cards"
)

func newBuilderFunc(t *testing.T) func() (Screen, error) {
	t.Helper()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatal(err)
	}
	reg, err := catalog.NewRegistry()
	if err != nil {
		t.Fatal(err)
	}
	resolver := cards.NewResolver(reg)
	return func() (Screen, error) { return builder.New(cat, resolver) }
}

func TestSessionDispatch(t *testing.T) {
	b, err := newBuilderFunc(t)()
	if err != nil {
		t.Fatal(err)
	}
	s := newSession("s1", b, slog.Default())

	frame, err := s.Current()
	if err != nil {
		t.Fatal(err)
	}
	if frame.Seq != 1 {
		t.Fatalf("seq = %d, want 1", frame.Seq)
	}
	again, _ := s.Current()
	if again.Seq != 1 {
		t.Errorf("Current re-rendered: seq = %d", again.Seq)
	}

	next, err := s.Dispatch(1, hidOf(t, frame.HTML), "click", "")
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if next.Seq != 2 || s.State().Layout != "bento" {
		t.Errorf("seq = %d layout = %q", next.Seq, s.State().Layout)
	}

	stale, err := s.Dispatch(1, "h1", "click", "")
	if errors.Code(err) != "E504" {
		t.Errorf("stale err = %v, want E504", err)
	}
	if stale.Seq != 2 || stale.HTML != next.HTML {
		t.Error("stale dispatch should return the current frame")
	}

	if _, err := s.Dispatch(2, "h1", "input", "3"); errors.Code(err) != "E505" {
		t.Errorf("missing handler err = %v, want E505", err)
	}
}

func TestSessionApplyRejected(t *testing.T) {
	b, _ := newBuilderFunc(t)()
	s := newSession("s1", b, slog.Default())
	before, _ := s.Current()

	if _, _, err := s.Apply(builder.Action{Type: builder.ActionSelectVariant, ID: "nope"}); errors.Code(err) != "E302" {
		t.Fatalf("err = %v, want E302", err)
	}
	after, _ := s.Current()
	if after != before {
		t.Error("a rejected action must not re-render")
	}
}

func TestSessionApplyReturnsMatchingState(t *testing.T) {
	b, _ := newBuilderFunc(t)()
	s := newSession("s1", b, slog.Default())

	frame, state, err := s.Apply(builder.Action{Type: builder.ActionSelectLayout, ID: "timeline"})
	if err != nil {
		t.Fatal(err)
	}
	if frame.Seq != 1 || state.Layout != "timeline" {
		t.Errorf("seq = %d layout = %q, want 1 and timeline", frame.Seq, state.Layout)
	}
}

func TestSessionClosed(t *testing.T) {
	b, _ := newBuilderFunc(t)()
	s := newSession("s1", b, slog.Default())
	frame, _ := s.Current()

	s.Close()
	s.Close()

	select {
	case <-s.Done():
	default:
		t.Fatal("Done should be closed")
	}
	if !s.IsClosed() {
		t.Error("IsClosed = false")
	}
	if _, _, err := s.Apply(builder.Action{Type: builder.ActionSetDark, On: true}); errors.Code(err) != "E501" {
		t.Errorf("Apply err = %v, want E501", err)
	}
	if _, err := s.Dispatch(frame.Seq, "h1", "click", ""); errors.Code(err) != "E501" {
		t.Errorf("Dispatch err = %v, want E501", err)
	}
}

func TestEventLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"click", "click"},
		{"input", "input"},
		{"change", "change"},
		{builder.ActionSelectLayout, builder.ActionSelectLayout},
		{builder.ActionSetValue, builder.ActionSetValue},
		{"junk-1", "other"},
		{"", "other"},
		{"mouseover", "other"},
	}
	for _, tt := range tests {
		if got := eventLabel(tt.in); got != tt.want {
			t.Errorf("eventLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestInvokeRecoversPanics(t *testing.T) {
	err := invoke(func() { panic("boom") }, "")
	if errors.Code(err) != "E506" {
		t.Errorf("err = %v, want E506", err)
	}
	if err := invoke(func(int) {}, ""); errors.Code(err) != "E505" {
		t.Errorf("err = %v, want E505", err)
	}

	var got string
	if err := invoke(func(v string) { got = v }, "42"); err != nil || got != "42" {
		t.Errorf("input handler: err = %v got = %q", err, got)
	}
}

func TestSessionManagerLimitAndSweep(t *testing.T) {
	opened, closed := 0, 0
	sm := NewSessionManager(newBuilderFunc(t), 2, time.Minute, nil)
	sm.SetOnSessionCreate(func(*Session) { opened++ })
	sm.SetOnSessionClose(func(*Session) { closed++ })

	a, err := sm.Create()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := sm.Create(); err != nil {
		t.Fatal(err)
	}
	if _, err := sm.Create(); errors.Code(err) != "E502" {
		t.Fatalf("third Create err = %v, want E502", err)
	}
	if a.ID == "" || sm.Get(a.ID) != a {
		t.Error("Get should return the created session")
	}

	a.lastActive.Store(time.Now().Add(-2 * time.Minute).UnixNano())
	if n := sm.Sweep(time.Now()); n != 1 {
		t.Errorf("Sweep removed %d, want 1", n)
	}
	if sm.Get(a.ID) != nil || sm.Count() != 1 {
		t.Errorf("after sweep: count = %d", sm.Count())
	}
	if !a.IsClosed() {
		t.Error("swept session should be closed")
	}

	sm.Shutdown()
	if sm.Count() != 0 {
		t.Error("Shutdown should remove all sessions")
	}
	if opened != 2 || closed != 2 {
		t.Errorf("opened = %d closed = %d, want 2 and 2", opened, closed)
	}

	sm.Close("missing")
	if closed != 2 {
		t.Error("closing an unknown id should not call the callback")
	}
}

func TestShowcaseSession(t *testing.T) {
	cat, err := catalog.Load()
	if err != nil {
		t.Fatal(err)
	}
	reg, err := catalog.NewRegistry()
	if err != nil {
		t.Fatal(err)
	}
	sc, err := showcase.New(cat, cards.NewResolver(reg))
	if err != nil {
		t.Fatal(err)
	}
	s := newSession("s1", sc, slog.Default())

	frame, err := s.Current()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(frame.HTML, `id="showcase"`) {
		t.Fatalf("frame is not the showcase: %.80s", frame.HTML)
	}

	if _, _, err := s.Apply(builder.Action{Type: builder.ActionSetDark, On: true}); errors.Code(err) != "E307" {
		t.Errorf("Apply() error = %v, want E307", err)
	}
	if st := s.State(); st.Layout != "" || st.Dark {
		t.Errorf("State() = %+v, want the zero state", st)
	}
}
