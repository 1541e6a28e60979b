// Package relay forwards formatted submissions to the operator's Telegram
// chat. When the bot token or chat id is not configured, the client degrades
// to a noop that accepts without attempting delivery.
package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mvirtane/leadwizard/internal/errors"
)

const defaultBaseURL = "https://api.telegram.org"

// ErrRejected means the endpoint answered but did not confirm delivery.
var ErrRejected = errors.NewSentinel("notification rejected by endpoint")

// Config carries the relay secrets and knobs. It is constructed once from
// process configuration and injected so the client never reads ambient
// environment state.
type Config struct {
	// Token is the bot access token embedded in the request path.
	Token string
	// ChatID is the destination chat identifier.
	ChatID string
	// BaseURL overrides the endpoint, used by tests. Defaults to the
	// public Telegram API.
	BaseURL string
	// Timeout bounds the single delivery attempt.
	Timeout time.Duration
}

// Client sends notifications to Telegram. It holds no per-session state and
// is safe to share across sessions.
type Client struct {
	cfg    Config
	client *http.Client
}

// New builds a relay client. Missing secrets are not an error: the client
// reports unconfigured and Send becomes a noop.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
	}
}

// Configured reports whether both required secrets are present.
func (c *Client) Configured() bool {
	return strings.TrimSpace(c.cfg.Token) != "" && strings.TrimSpace(c.cfg.ChatID) != ""
}

type sendMessageRequest struct {
	ChatID                string `json:"chat_id"`
	Text                  string `json:"text"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview"`
}

type sendMessageResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// Send makes at most one delivery attempt and reports whether the endpoint
// confirmed it. When the client is unconfigured it returns (false, nil)
// without any network I/O: the submission is accepted but not delivered.
// Retrying is the caller's responsibility; there is none here.
func (c *Client) Send(ctx context.Context, text string) (bool, error) {
	if !c.Configured() {
		return false, nil
	}

	body, err := json.Marshal(sendMessageRequest{
		ChatID:                c.cfg.ChatID,
		Text:                  text,
		DisableWebPagePreview: true,
	})
	if err != nil {
		return false, errors.Wrap(err, "marshal sendMessage request")
	}

	url := c.cfg.BaseURL + "/bot" + c.cfg.Token + "/sendMessage"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return false, errors.Wrap(err, "create sendMessage request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return false, errors.Wrap(err, "post notification")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	var parsed sendMessageResponse
	if err = json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&parsed); err != nil {
		return false, errors.Wrap(ErrRejected, "decode response", slog.Int("status", resp.StatusCode))
	}
	if !parsed.OK {
		return false, errors.Wrap(ErrRejected, "endpoint returned not ok",
			slog.Int("status", resp.StatusCode),
			slog.String("description", parsed.Description))
	}
	return true, nil
}
