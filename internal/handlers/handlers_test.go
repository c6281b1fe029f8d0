package handlers

import (
	"bufio"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pr-poehali-dev/ai-promotion-design/internal/analysis"
	"github.com/pr-poehali-dev/ai-promotion-design/internal/analysis/analysistest"
	"github.com/pr-poehali-dev/ai-promotion-design/internal/config"
	"github.com/pr-poehali-dev/ai-promotion-design/internal/content"
	"github.com/pr-poehali-dev/ai-promotion-design/internal/page"
)

const cookieName = "nt_session"

type testEnv struct {
	router *chi.Mux
	store  *page.Store
	clock  *analysistest.ManualClock
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newLimitedTestEnv(t, 0, 0)
}

func newLimitedTestEnv(t *testing.T, perMinute, burst int) *testEnv {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	clock := analysistest.NewManualClock()
	catalog := content.NewCatalog()

	factory := func(id string) *page.Controller {
		return page.NewController(id, page.Deps{
			Locator: catalog,
			Analyzer: &analysistest.StubAnalyzer{Result: &analysis.Result{
				WordCount:      2,
				Sentiment:      analysis.SentimentPositive,
				Complexity:     analysis.ComplexityHigh,
				KeyTerms:       []string{"hello", "world"},
				ElapsedSeconds: 0.33,
			}},
			SimOptions: []analysis.Option{analysis.WithClock(clock)},

			RequestsPerMinute: perMinute,
			Burst:             burst,
		}, log)
	}
	store, err := page.NewStore(10, factory, log)
	require.NoError(t, err)
	t.Cleanup(store.CloseAll)

	cfg := &config.Config{
		Analysis: config.AnalysisConfig{MaxTextLength: 100},
		Session:  config.SessionConfig{MaxSessions: 10, IdleTTL: time.Hour, CookieName: cookieName},
		Events:   config.EventsConfig{HeartbeatInterval: 50 * time.Millisecond},
	}

	r := chi.NewRouter()
	RegisterRoutes(r, NewHandler(store, cfg, log), log)
	return &testEnv{router: r, store: store, clock: clock}
}

func (e *testEnv) do(t *testing.T, method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// startSession loads the page and returns the session cookie it set.
func (e *testEnv) startSession(t *testing.T) *http.Cookie {
	t.Helper()
	rec := e.do(t, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	for _, c := range rec.Result().Cookies() {
		if c.Name == cookieName {
			return c
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	body := decodeBody(t, rec)
	errBody, ok := body["error"].(map[string]any)
	require.True(t, ok, rec.Body.String())
	code, _ := errBody["code"].(string)
	return code
}

func TestLandingPage_StartsSession(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `<section id="research"`)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, cookieName, cookie.Name)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, 1, env.store.Len())

	again := env.do(t, http.MethodGet, "/", "", cookie)
	require.Equal(t, http.StatusOK, again.Code)
	assert.Empty(t, again.Result().Cookies(), "existing session is reused")
	assert.Contains(t, again.Body.String(), `data-session="`+cookie.Value+`"`)
	assert.Equal(t, 1, env.store.Len())
}

func TestLandingPage_UnknownCookieGetsFreshSession(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/", "", &http.Cookie{Name: cookieName, Value: "forged"})
	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.NotEqual(t, "forged", cookies[0].Value)
}

func TestState(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.startSession(t)

	rec := env.do(t, http.MethodGet, "/api/page/state", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, cookie.Value, body["sessionId"])
	assert.Equal(t, map[string]any{"activeSectionId": "home"}, body["navigation"])
	assert.Len(t, body["sections"], 6)
	assert.Equal(t, "idle", body["analysis"].(map[string]any)["state"])
	assert.NotContains(t, body, "graph")
}

func TestNavigate(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.startSession(t)

	tests := []struct {
		name     string
		section  string
		scrolled bool
	}{
		{"known section", "cases", true},
		{"same section again", "cases", true},
		{"unknown section", "pricing", false},
		{"empty id", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodPost, "/api/page/navigate", `{"sectionId":"`+tt.section+`"}`, cookie)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			body := decodeBody(t, rec)
			assert.Equal(t, tt.scrolled, body["scrolled"])
			assert.Equal(t, map[string]any{"activeSectionId": tt.section}, body["state"])

			state := decodeBody(t, env.do(t, http.MethodGet, "/api/page/state", "", cookie))
			assert.Equal(t, map[string]any{"activeSectionId": tt.section}, state["navigation"])
		})
	}
}

func TestNavigate_BadRequests(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.startSession(t)

	tests := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{"empty body", "", http.StatusBadRequest, "bad_request"},
		{"malformed", `{"sectionId":`, http.StatusBadRequest, "bad_request"},
		{"unknown field", `{"section":"home"}`, http.StatusBadRequest, "bad_request"},
		{"too long", `{"sectionId":"` + strings.Repeat("x", 65) + `"}`, http.StatusUnprocessableEntity, "validation_error"},
		{"too large", `{"sectionId":"` + strings.Repeat("x", maxBodyBytes) + `"}`, http.StatusRequestEntityTooLarge, "request_too_large"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodPost, "/api/page/navigate", tt.body, cookie)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.code, errorCode(t, rec))
		})
	}

	state := decodeBody(t, env.do(t, http.MethodGet, "/api/page/state", "", cookie))
	assert.Equal(t, map[string]any{"activeSectionId": "home"}, state["navigation"], "rejected requests change nothing")
}

func TestSubmitAnalysis_Lifecycle(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.startSession(t)

	blank := env.do(t, http.MethodPost, "/api/page/analysis", `{"text":"   "}`, cookie)
	require.Equal(t, http.StatusOK, blank.Code)
	assert.Equal(t, false, decodeBody(t, blank)["accepted"])

	accepted := env.do(t, http.MethodPost, "/api/page/analysis", `{"text":"hello world"}`, cookie)
	require.Equal(t, http.StatusAccepted, accepted.Code)
	body := decodeBody(t, accepted)
	assert.Equal(t, true, body["accepted"])
	assert.Equal(t, "processing", body["analysis"].(map[string]any)["state"])

	busy := env.do(t, http.MethodPost, "/api/page/analysis", `{"text":"another"}`, cookie)
	require.Equal(t, http.StatusOK, busy.Code)
	assert.Equal(t, false, decodeBody(t, busy)["accepted"])

	fragment := env.do(t, http.MethodGet, "/fragments/analysis", "", cookie)
	assert.Contains(t, fragment.Body.String(), "Обработка...")

	env.clock.Advance(analysis.DefaultDelay)

	state := decodeBody(t, env.do(t, http.MethodGet, "/api/page/state", "", cookie))
	snap := state["analysis"].(map[string]any)
	assert.Equal(t, "complete", snap["state"])
	assert.Equal(t, []any{"hello", "world"}, snap["result"].(map[string]any)["keyTerms"])

	fragment = env.do(t, http.MethodGet, "/fragments/analysis", "", cookie)
	assert.Contains(t, fragment.Body.String(), "Ключевые термины: hello, world")
	assert.Contains(t, fragment.Body.String(), "Запустить анализ")
}

func TestSubmitAnalysis_TooLong(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.startSession(t)

	rec := env.do(t, http.MethodPost, "/api/page/analysis", `{"text":"`+strings.Repeat("я", 101)+`"}`, cookie)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "validation_error", errorCode(t, rec))

	ok := env.do(t, http.MethodPost, "/api/page/analysis", `{"text":"`+strings.Repeat("я", 100)+`"}`, cookie)
	assert.Equal(t, http.StatusAccepted, ok.Code, "limit counts characters, not bytes")
}

func TestGraph(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.startSession(t)

	rec := env.do(t, http.MethodGet, "/api/page/graph", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp GraphResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Nodes, 20)

	connections := 0
	for i, n := range resp.Nodes {
		assert.NotContains(t, n.Connections, i)
		connections += len(n.Connections)
	}
	assert.Len(t, resp.Edges, connections)

	again := env.do(t, http.MethodGet, "/api/page/graph", "", cookie)
	assert.JSONEq(t, rec.Body.String(), again.Body.String(), "graph is fixed for the session")
}

type sseStream struct {
	lines chan string
	body  io.Closer
}

func openStream(t *testing.T, srv *httptest.Server, cookie *http.Cookie) *sseStream {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/page/events", nil)
	require.NoError(t, err)
	req.AddCookie(cookie)

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	s := &sseStream{lines: make(chan string, 64), body: resp.Body}
	go func() {
		defer close(s.lines)
		sc := bufio.NewScanner(resp.Body)
		for sc.Scan() {
			s.lines <- sc.Text()
		}
	}()
	t.Cleanup(func() { _ = resp.Body.Close() })
	return s
}

// next waits for the named event and returns its data line.
func (s *sseStream) next(t *testing.T, event string) string {
	t.Helper()
	timeout := time.After(3 * time.Second)
	want := "event: " + event
	for {
		select {
		case line, ok := <-s.lines:
			require.True(t, ok, "stream ended before %q", event)
			if line != want {
				continue
			}
			select {
			case data := <-s.lines:
				return strings.TrimPrefix(data, "data: ")
			case <-timeout:
				t.Fatalf("no data for %q", event)
			}
		case <-timeout:
			t.Fatalf("timed out waiting for %q", event)
		}
	}
}

func TestEvents_StreamsNavigationAndScroll(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.startSession(t)
	srv := httptest.NewServer(env.router)
	t.Cleanup(srv.Close)

	stream := openStream(t, srv, cookie)
	connected := stream.next(t, "connected")
	assert.Contains(t, connected, `"sessionId":"`+cookie.Value+`"`)

	rec := env.do(t, http.MethodPost, "/api/page/navigate", `{"sectionId":"contact"}`, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.JSONEq(t, `{"activeSectionId":"contact"}`, stream.next(t, "navigation"))
	assert.JSONEq(t, `{"sectionId":"contact","anchor":"#contact","behavior":"smooth"}`, stream.next(t, "scroll"))

	rec = env.do(t, http.MethodPost, "/api/page/analysis", `{"text":"hello world"}`, cookie)
	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Contains(t, stream.next(t, "analysis"), `"state":"processing"`)

	env.clock.Advance(analysis.DefaultDelay)
	assert.Contains(t, stream.next(t, "analysis"), `"state":"complete"`)

	assert.NotEmpty(t, stream.next(t, "heartbeat"))
}

func TestEvents_EndWhenSessionCloses(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.startSession(t)
	srv := httptest.NewServer(env.router)
	t.Cleanup(srv.Close)

	stream := openStream(t, srv, cookie)
	stream.next(t, "connected")

	env.store.CloseAll()

	deadline := time.After(3 * time.Second)
	for {
		select {
		case _, ok := <-stream.lines:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("stream still open after session closed")
		}
	}
}

func TestNavigate_RateLimited(t *testing.T) {
	env := newLimitedTestEnv(t, 1, 2)
	cookie := env.startSession(t)

	for range 2 {
		rec := env.do(t, http.MethodPost, "/api/page/navigate", `{"sectionId":"cases"}`, cookie)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := env.do(t, http.MethodPost, "/api/page/navigate", `{"sectionId":"cases"}`, cookie)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "rate_limited", errorCode(t, rec))

	rec = env.do(t, http.MethodPost, "/api/page/analysis", `{"text":"hello"}`, cookie)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	other := env.startSession(t)
	rec = env.do(t, http.MethodPost, "/api/page/navigate", `{"sectionId":"cases"}`, other)
	assert.Equal(t, http.StatusOK, rec.Code, "limits are per session")
}

// unflushable hides the recorder's Flush method.
type unflushable struct {
	rec *httptest.ResponseRecorder
}

func (u unflushable) Header() http.Header         { return u.rec.Header() }
func (u unflushable) Write(b []byte) (int, error) { return u.rec.Write(b) }
func (u unflushable) WriteHeader(code int)        { u.rec.WriteHeader(code) }

func TestEvents_RequiresFlusher(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.startSession(t)

	req := httptest.NewRequest(http.MethodGet, "/api/page/events", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(unflushable{rec: rec}, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "streaming_unsupported", errorCode(t, rec))
	assert.NotEqual(t, "text/event-stream", rec.Header().Get("Content-Type"))
}

func TestAnalysisFragment_FreshSession(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/fragments/analysis", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-state="idle"`)
	assert.NotContains(t, rec.Body.String(), "<pre")
}
