package relay_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/mvirtane/leadwizard/internal/relay"
	"github.com/stretchr/testify/require"
)

func TestSendUnconfiguredSkipsNetwork(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	tests := []struct {
		name string
		cfg  relay.Config
	}{
		{name: "no token", cfg: relay.Config{ChatID: "123", BaseURL: server.URL}},
		{name: "no chat id", cfg: relay.Config{Token: "token", BaseURL: server.URL}},
		{name: "nothing", cfg: relay.Config{BaseURL: server.URL}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := relay.New(tt.cfg)
			require.False(t, client.Configured())

			delivered, err := client.Send(context.Background(), "hello")
			require.NoError(t, err)
			require.False(t, delivered)
		})
	}
	require.Equal(t, int32(0), calls.Load(), "unconfigured client must not touch the network")
}

func TestSendDelivers(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":1}}`))
	}))
	defer server.Close()

	client := relay.New(relay.Config{Token: "bot-token", ChatID: "-100123", BaseURL: server.URL})
	require.True(t, client.Configured())

	delivered, err := client.Send(context.Background(), "New lead")
	require.NoError(t, err)
	require.True(t, delivered)

	require.Equal(t, "/botbot-token/sendMessage", gotPath)
	require.Equal(t, "-100123", gotBody["chat_id"])
	require.Equal(t, "New lead", gotBody["text"])
	require.Equal(t, true, gotBody["disable_web_page_preview"])
}

func TestSendEndpointRejects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"ok":false,"description":"chat not found"}`))
	}))
	defer server.Close()

	client := relay.New(relay.Config{Token: "token", ChatID: "123", BaseURL: server.URL})
	delivered, err := client.Send(context.Background(), "New lead")
	require.ErrorIs(t, err, relay.ErrRejected)
	require.False(t, delivered)
}

func TestSendMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>gateway error</html>`))
	}))
	defer server.Close()

	client := relay.New(relay.Config{Token: "token", ChatID: "123", BaseURL: server.URL})
	delivered, err := client.Send(context.Background(), "New lead")
	require.ErrorIs(t, err, relay.ErrRejected)
	require.False(t, delivered)
}

func TestSendNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	server.Close()

	client := relay.New(relay.Config{Token: "token", ChatID: "123", BaseURL: server.URL})
	delivered, err := client.Send(context.Background(), "New lead")
	require.Error(t, err)
	require.False(t, delivered)
}
