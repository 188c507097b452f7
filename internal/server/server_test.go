package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/vango-dev/featuregrid/internal/catalog"
	"github.com/vango-dev/featuregrid/internal/config"
	"github.com/vango-dev/featuregrid/pkg/cards"
	"github.com/vango-dev/featuregrid/pkg/middleware"
)

func newTestServer(t *testing.T, mutate func(*config.Config), opts ...Option) *Server {
	t.Helper()

	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	reg, err := catalog.NewRegistry()
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	cfg := config.New()
	if mutate != nil {
		mutate(cfg)
	}
	return New(cfg, cat, cards.NewResolver(reg), opts...)
}

// newClient returns an HTTP client that keeps cookies.
func newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	return &http.Client{Jar: jar}
}

func get(t *testing.T, c *http.Client, u string) (*http.Response, string) {
	t.Helper()
	resp, err := c.Get(u)
	if err != nil {
		t.Fatalf("GET %s: %v", u, err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp, string(body)
}

func TestPageCreatesSession(t *testing.T) {
	s := newTestServer(t, nil)
	ts := httptest.NewServer(s)
	defer ts.Close()
	client := newClient(t)

	resp, body := get(t, client, ts.URL+"/")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	for _, want := range []string{
		"<title>Feature Grid Builder</title>",
		`<div data-seq="1" id="app">`,
		`id="builder"`,
		`data-stage="layout"`,
		`new WebSocket(`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q", want)
		}
	}
	if s.Sessions().Count() != 1 {
		t.Fatalf("sessions = %d, want 1", s.Sessions().Count())
	}

	// The cookie brings the same session back.
	get(t, client, ts.URL+"/")
	if s.Sessions().Count() != 1 {
		t.Errorf("reload created a session: %d", s.Sessions().Count())
	}
}

func TestShowcasePage(t *testing.T) {
	s := newTestServer(t, nil)
	ts := httptest.NewServer(s)
	defer ts.Close()
	client := newClient(t)

	resp, body := get(t, client, ts.URL+"/showcase")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	for _, want := range []string{
		"<title>Feature Cards Showcase</title>",
		`<div data-seq="1" data-ws="/showcase/ws" id="app">`,
		`id="showcase"`,
		`data-selected="interactive"`,
		"Basic Cards",
		"Lightning Fast",
		"3 examples",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q", want)
		}
	}

	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == ShowcaseCookie {
			cookie = c
		}
	}
	if cookie == nil || cookie.Path != "/showcase" {
		t.Fatalf("showcase cookie = %+v", cookie)
	}
	if s.Showcases().Count() != 1 || s.Sessions().Count() != 0 {
		t.Errorf("showcases = %d, sessions = %d, want 1 and 0", s.Showcases().Count(), s.Sessions().Count())
	}

	get(t, client, ts.URL+"/showcase")
	if s.Showcases().Count() != 1 {
		t.Errorf("reload created a showcase session: %d", s.Showcases().Count())
	}
}

func TestPageSessionLimit(t *testing.T) {
	s := newTestServer(t, func(c *config.Config) { c.Server.MaxSessions = 1 })
	ts := httptest.NewServer(s)
	defer ts.Close()

	get(t, newClient(t), ts.URL+"/")
	resp, body := get(t, newClient(t), ts.URL+"/")
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", resp.StatusCode)
	}
	if !strings.Contains(body, `"code":"E502"`) {
		t.Errorf("body = %s", body)
	}
}

func postAction(t *testing.T, c *http.Client, base, body string) (*http.Response, string) {
	t.Helper()
	resp, err := c.Post(base+"/api/actions", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	return resp, string(b)
}

func TestActions(t *testing.T) {
	s := newTestServer(t, nil)
	ts := httptest.NewServer(s)
	defer ts.Close()
	client := newClient(t)

	resp, _ := postAction(t, client, ts.URL, `{"type":"back"}`)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("without a session: status = %d, want 404", resp.StatusCode)
	}

	get(t, client, ts.URL+"/")

	tests := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{"select layout", `{"type":"select-layout","id":"bento"}`, http.StatusOK, ""},
		{"unknown layout", `{"type":"select-layout","id":"spiral"}`, http.StatusUnprocessableEntity, "E301"},
		{"select block", `{"type":"select-block","slot":1}`, http.StatusOK, ""},
		{"select card", `{"type":"select-card","category":"data-viz","name":"performance-meter"}`, http.StatusOK, ""},
		{"bad json", `{"type":`, http.StatusBadRequest, "E307"},
		{"unknown type", `{"type":"explode"}`, http.StatusUnprocessableEntity, "E307"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := postAction(t, client, ts.URL, tt.body)
			if resp.StatusCode != tt.status {
				t.Fatalf("status = %d, want %d: %s", resp.StatusCode, tt.status, body)
			}
			if tt.code != "" && !strings.Contains(body, `"code":"`+tt.code+`"`) {
				t.Errorf("body = %s, want code %s", body, tt.code)
			}
		})
	}

	_, body := postAction(t, client, ts.URL, `{"type":"set-dark","on":true}`)
	var got actionResponse
	if err := json.Unmarshal([]byte(body), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.State.Layout != "bento" || !got.State.Dark || got.State.Block != 1 {
		t.Errorf("state = %+v", got.State)
	}
	if sel := got.State.Assignments[1]; sel.Name != "performance-meter" {
		t.Errorf("assignment = %+v", sel)
	}
}

func TestCatalogEndpoint(t *testing.T) {
	ts := httptest.NewServer(newTestServer(t, nil))
	defer ts.Close()

	resp, body := get(t, http.DefaultClient, ts.URL+"/api/catalog")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var got catalogResponse
	if err := json.Unmarshal([]byte(body), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Layouts) != 8 || len(got.Categories) != 7 || len(got.Themes) != 4 {
		t.Errorf("counts = %d layouts, %d categories, %d themes", len(got.Layouts), len(got.Categories), len(got.Themes))
	}
	if len(got.Registered) != 22 {
		t.Errorf("registered = %d, want 22", len(got.Registered))
	}
	if v := got.Layouts[0].Variants[0]; v.Slots == 0 {
		t.Errorf("variant %s has no slots", v.ID)
	}
	for _, c := range got.Categories {
		for _, card := range c.Cards {
			if !card.Registered {
				t.Errorf("%s/%s not registered", c.ID, card.ID)
			}
		}
	}
}

func TestCardEndpoint(t *testing.T) {
	ts := httptest.NewServer(newTestServer(t, nil))
	defer ts.Close()

	tests := []struct {
		path   string
		status int
		want   string
	}{
		{"/cards/interactive/flip-card", http.StatusOK, "Lightning Fast"},
		{"/cards/interactive/flip-card?flipped=true", http.StatusOK, "Performance Details"},
		{"/cards/interactive/pricing-calculator?value=120", http.StatusOK, "$60"},
		{"/cards/interactive/nonexistent", http.StatusNotFound, "interactive/nonexistent"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, body := get(t, http.DefaultClient, ts.URL+tt.path)
			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			if !strings.Contains(body, tt.want) {
				t.Errorf("body missing %q:\n%s", tt.want, body)
			}
			if strings.Contains(body, "data-hid") {
				t.Error("standalone cards should not carry hydration ids")
			}
		})
	}
}

func TestHealthAndMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := middleware.NewMetrics(middleware.WithRegistry(reg))
	s := newTestServer(t, nil, WithMetrics(m, reg))
	ts := httptest.NewServer(s)
	defer ts.Close()

	get(t, newClient(t), ts.URL+"/")

	resp, body := get(t, http.DefaultClient, ts.URL+"/healthz")
	if resp.StatusCode != http.StatusOK || !strings.Contains(body, `"sessions":1`) {
		t.Errorf("healthz = %d %s", resp.StatusCode, body)
	}

	_, body = get(t, http.DefaultClient, ts.URL+"/metrics")
	for _, want := range []string{
		`featuregrid_active_sessions 1`,
		`featuregrid_http_requests_total{method="GET",route="/",status="200"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics missing %q", want)
		}
	}
	if n, err := testutil.GatherAndCount(reg, "featuregrid_http_request_duration_seconds"); err != nil || n == 0 {
		t.Error("no duration series")
	}
}

func TestActionMetricLabelsBounded(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := middleware.NewMetrics(middleware.WithRegistry(reg))
	s := newTestServer(t, nil, WithMetrics(m, reg))
	ts := httptest.NewServer(s)
	defer ts.Close()

	c := newClient(t)
	get(t, c, ts.URL+"/")

	for i := 0; i < 200; i++ {
		resp, _ := postAction(t, c, ts.URL, fmt.Sprintf(`{"type":"junk-%d"}`, i))
		if resp.StatusCode != http.StatusUnprocessableEntity {
			t.Fatalf("junk action status = %d", resp.StatusCode)
		}
	}
	postAction(t, c, ts.URL, `{"type":"set-dark","on":true}`)

	n, err := testutil.GatherAndCount(reg, "featuregrid_events_total")
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("events_total series = %d, want 2 (other/error and set-dark/success)", n)
	}
	_, body := get(t, http.DefaultClient, ts.URL+"/metrics")
	if want := `featuregrid_events_total{event="other",status="error"} 200`; !strings.Contains(body, want) {
		t.Errorf("metrics missing %q", want)
	}
}

func TestCheckOrigin(t *testing.T) {
	s := newTestServer(t, func(c *config.Config) {
		c.Server.AllowedOrigins = []string{"https://preview.example.com"}
	})

	tests := []struct {
		origin string
		want   bool
	}{
		{"", true},
		{"http://builder.local", true},
		{"https://preview.example.com", true},
		{"https://evil.example.com", false},
		{"::not a url", false},
	}
	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, "http://builder.local/ws", nil)
		if tt.origin != "" {
			r.Header.Set("Origin", tt.origin)
		}
		if got := s.checkOrigin(r); got != tt.want {
			t.Errorf("checkOrigin(%q) = %v, want %v", tt.origin, got, tt.want)
		}
	}
}

func TestServeListenerShutsDown(t *testing.T) {
	s := newTestServer(t, nil)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.ServeListener(ctx, ln) }()

	u := url.URL{Scheme: "http", Host: ln.Addr().String(), Path: "/healthz"}
	var resp *http.Response
	for range 50 {
		resp, err = http.Get(u.String())
		if err == nil {
			resp.Body.Close()
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	if err != nil {
		t.Fatalf("server never answered: %v", err)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("ServeListener = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

var hidPattern = regexp.MustCompile(`<[^>]*data-layout="bento"[^>]*data-hid="(h\d+)"`)

// hidOf returns the hydration id of the bento layout picker.
func hidOf(t *testing.T, html string) string {
	t.Helper()
	m := hidPattern.FindStringSubmatch(html)
	if m == nil {
		t.Fatalf("bento picker not found")
	}
	return m[1]
}
