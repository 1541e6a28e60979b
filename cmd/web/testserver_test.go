package main

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/mvirtane/leadwizard/internal/e2etest"
	"github.com/stretchr/testify/require"
)

// testLookupEnv returns a lookup function with test defaults that the given
// overrides win over. The loading delay is shortened so the auto-advance
// fires within the test's polling window.
func testLookupEnv(overrides map[string]string) func(string) (string, bool) {
	defaults := map[string]string{
		"LEADWIZARD_ADDR":          "localhost:0",
		"LEADWIZARD_LOADING_DELAY": "50ms",
	}
	return func(key string) (string, bool) {
		if value, ok := overrides[key]; ok {
			return value, true
		}
		if value, ok := defaults[key]; ok {
			return value, true
		}
		return "", false
	}
}

func startTestServer(t *testing.T, overrides map[string]string) *e2etest.Server {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	srv, err := e2etest.StartServer(ctx, io.Discard, testLookupEnv(overrides), run)
	require.NoError(t, err)
	return srv
}

// fakeTelegram stands in for the Bot API so tests can assert on what the
// relay actually sent.
type fakeTelegram struct {
	srv *httptest.Server

	mu    sync.Mutex
	paths []string
	texts []string
}

func newFakeTelegram(t *testing.T, ok bool) *fakeTelegram {
	t.Helper()
	fake := &fakeTelegram{}
	fake.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			ChatID string `json:"chat_id"`
			Text   string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		fake.mu.Lock()
		fake.paths = append(fake.paths, r.URL.Path)
		fake.texts = append(fake.texts, payload.Text)
		fake.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		if !ok {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"ok":false,"description":"Bad Request: chat not found"}`))
			return
		}
		_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":1}}`))
	}))
	t.Cleanup(fake.srv.Close)
	return fake
}

// Env returns the relay configuration pointing at the fake.
func (f *fakeTelegram) Env() map[string]string {
	return map[string]string{
		"TELEGRAM_BOT_TOKEN":    "test-token",
		"TELEGRAM_CHAT_ID":      "1234",
		"TELEGRAM_API_BASE_URL": f.srv.URL,
	}
}

func (f *fakeTelegram) Requests() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.paths)
}

func (f *fakeTelegram) LastPath() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.paths) == 0 {
		return ""
	}
	return f.paths[len(f.paths)-1]
}

func (f *fakeTelegram) LastText() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.texts) == 0 {
		return ""
	}
	return f.texts[len(f.texts)-1]
}
