package main

import (
	"fmt"
	"os"

	"github.com/mvirtane/leadwizard/internal/envstruct"
	"github.com/mvirtane/leadwizard/internal/errors"
	"github.com/mvirtane/leadwizard/internal/relay"
	"github.com/mvirtane/leadwizard/internal/survey"
	"github.com/spf13/cobra"
)

type relayConfig struct {
	Token   string `env:"TELEGRAM_BOT_TOKEN" envDefault:""`
	ChatID  string `env:"TELEGRAM_CHAT_ID" envDefault:""`
	BaseURL string `env:"TELEGRAM_API_BASE_URL" envDefault:"https://api.telegram.org"`
}

func relayFromEnv() (*relay.Client, error) {
	var cfg relayConfig
	if err := envstruct.Populate(&cfg, os.LookupEnv); err != nil {
		return nil, errors.Wrap(err, "populate relay config")
	}
	return relay.New(relay.Config{
		Token:   cfg.Token,
		ChatID:  cfg.ChatID,
		BaseURL: cfg.BaseURL,
	}), nil
}

func newRelayCommand() *cobra.Command {
	relayCmd := &cobra.Command{
		Use:   "relay",
		Short: "Inspect and exercise the Telegram relay",
	}
	relayCmd.AddCommand(newRelayTestCommand())
	relayCmd.AddCommand(newRelayPreviewCommand())
	return relayCmd
}

func newRelayTestCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "Send a test notification with the configured secrets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := relayFromEnv()
			if err != nil {
				return err
			}
			if !client.Configured() {
				fmt.Fprintln(cmd.OutOrStdout(), "Relay not configured, nothing sent")
				return nil
			}
			delivered, err := client.Send(cmd.Context(), "Test notification from leadwizard")
			if err != nil {
				return err
			}
			if delivered {
				fmt.Fprintln(cmd.OutOrStdout(), "Test notification delivered")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Notification not sent")
			}
			return nil
		},
	}
}

func newRelayPreviewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Print the notification text for a representative submission",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprint(cmd.OutOrStdout(), survey.FormatSubmission(sampleSubmission()))
			return nil
		},
	}
}

// sampleSubmission answers every question with its first options so the
// preview exercises the full formatted layout.
func sampleSubmission() survey.Submission {
	answers := survey.NewAnswerSet()
	for _, q := range survey.Questions() {
		switch q.Kind {
		case survey.MultiSelect:
			for _, option := range q.Options[:2] {
				answers.Toggle(q.ID, option)
			}
		case survey.FreeText:
			answers.SetValue(q.ID, "Prefers afternoon calls")
		default:
			answers.SetValue(q.ID, q.Options[0])
		}
	}
	return survey.NewSubmission(answers, survey.ContactInfo{
		FirstName: "Sample",
		Email:     "sample@example.com",
		Phone:     "5551234567",
		Company:   "Example Freight",
		Consent:   true,
	})
}
