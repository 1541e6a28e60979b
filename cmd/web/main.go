package main

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/joho/godotenv"
	"github.com/mvirtane/leadwizard/internal/envstruct"
	"github.com/mvirtane/leadwizard/internal/errors"
	"github.com/mvirtane/leadwizard/internal/logging"
	"github.com/mvirtane/leadwizard/internal/pprofserver"
	"github.com/mvirtane/leadwizard/internal/relay"
	"github.com/mvirtane/leadwizard/internal/submission"
	"github.com/mvirtane/leadwizard/internal/wizard"
)

type application struct {
	logger         *slog.Logger
	sessionManager *scs.SessionManager
	wizards        *wizard.Manager
	submitter      *submission.Service
	policy         submission.Policy
}

type config struct {
	Addr      string `env:"LEADWIZARD_ADDR" envDefault:"localhost:4000"`
	PprofPort string `env:"LEADWIZARD_PPROF_PORT" envDefault:""`
	// The relay secrets are optional: missing secrets put the relay into a
	// degraded accepted-but-not-delivered state instead of failing startup.
	TelegramToken   string `env:"TELEGRAM_BOT_TOKEN" envDefault:""`
	TelegramChatID  string `env:"TELEGRAM_CHAT_ID" envDefault:""`
	TelegramBaseURL string `env:"TELEGRAM_API_BASE_URL" envDefault:"https://api.telegram.org"`
	DeliveryPolicy  string `env:"LEADWIZARD_DELIVERY_POLICY" envDefault:"lenient"`
	LoadingDelay    string `env:"LEADWIZARD_LOADING_DELAY" envDefault:"2s"`
	SessionTTL      string `env:"LEADWIZARD_SESSION_TTL" envDefault:"30m"`
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var cfg config
	if err := envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}

	policy, err := submission.ParsePolicy(cfg.DeliveryPolicy)
	if err != nil {
		return errors.Wrap(err, "parse delivery policy")
	}
	loadingDelay, err := time.ParseDuration(cfg.LoadingDelay)
	if err != nil {
		return errors.Wrap(err, "parse loading delay")
	}
	sessionTTL, err := time.ParseDuration(cfg.SessionTTL)
	if err != nil {
		return errors.Wrap(err, "parse session TTL")
	}

	if cfg.PprofPort != "" {
		pprofserver.Launch(cfg.PprofPort, logger)
	}

	relayClient := relay.New(relay.Config{
		Token:   cfg.TelegramToken,
		ChatID:  cfg.TelegramChatID,
		BaseURL: cfg.TelegramBaseURL,
	})
	if !relayClient.Configured() {
		logger.LogAttrs(ctx, slog.LevelWarn,
			"telegram relay not configured, submissions will be accepted but not delivered")
	}

	wizards := wizard.NewManager(loadingDelay, sessionTTL)
	defer wizards.Close()

	sessionManager := scs.New()
	sessionManager.Lifetime = sessionTTL

	app := application{
		logger:         logger,
		sessionManager: sessionManager,
		wizards:        wizards,
		submitter:      submission.NewService(relayClient, logger),
		policy:         policy,
	}

	return app.configureAndStartServer(ctx, cfg.Addr)
}

func main() {
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
	}))
	logger := slog.New(loggerHandler)

	// A missing .env file is fine, the environment may be configured directly.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Error(err.Error())
		os.Exit(1)
	}

	if err := run(context.Background(), logger, os.LookupEnv); err != nil {
		logger.LogAttrs(context.Background(), slog.LevelError, "server failed", errors.SlogError(err))
		os.Exit(1)
	}
}
