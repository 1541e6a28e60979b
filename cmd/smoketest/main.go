package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/mvirtane/leadwizard/internal/e2etest"
	"github.com/mvirtane/leadwizard/internal/errors"
	"github.com/mvirtane/leadwizard/internal/logging"
)

// TestWizard walks the first step of the wizard against a deployed instance.
// It answers nothing and goes straight back so the probe leaves no lead
// behind.
func TestWizard(client *e2etest.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second) //nolint:mnd // 10 seconds
	defer cancel()

	if err := client.WaitForReady(ctx, "/api/healthy"); err != nil {
		return errors.Wrap(err, "wait for ready")
	}

	doc, err := client.GetDoc(ctx, "/")
	if err != nil {
		return errors.Wrap(err, "get wizard page")
	}
	if doc.Find("main#wizard").Length() != 1 {
		return errors.New("wizard container not found")
	}

	if doc, err = client.SubmitForm(ctx, "/", "/wizard/advance", nil); err != nil {
		return errors.Wrap(err, "start wizard")
	}
	if step, _ := doc.Find("main#wizard").Attr("data-step"); step != "q1" {
		return errors.New("unexpected step after start", slog.String("step", step))
	}

	if doc, err = client.SubmitForm(ctx, "/", "/wizard/back", nil); err != nil {
		return errors.Wrap(err, "back to intro")
	}
	if step, _ := doc.Find("main#wizard").Attr("data-step"); step != "intro" {
		return errors.New("unexpected step after back", slog.String("step", step))
	}
	return nil
}

func main() {
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)
	ctx := context.Background()

	if len(os.Args) != 2 { //nolint:mnd // we expect only hostname to be passed as argument.
		logger.LogAttrs(ctx, slog.LevelError, "usage: smoketest <hostname>")
		os.Exit(1)
	}

	var (
		hostname = os.Args[1]
		url      = "https://" + hostname
		client   *e2etest.Client
		err      error
	)
	ctx = logging.WithAttrs(ctx, slog.String("hostname", url))

	if client, err = e2etest.NewClient(url); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error creating client", errors.SlogError(err))
		os.Exit(1)
	}
	if err = TestWizard(client); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error testing wizard", errors.SlogError(err))
		os.Exit(1)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Smoke test successful 🙌")
	os.Exit(0)
}
