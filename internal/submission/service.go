// Package submission is the single authoritative path from a captured survey
// to the operator notification: it formats the snapshot and relays it once.
package submission

import (
	"context"
	"log/slog"

	"github.com/mvirtane/leadwizard/internal/errors"
	"github.com/mvirtane/leadwizard/internal/relay"
	"github.com/mvirtane/leadwizard/internal/survey"
)

// Policy controls how a delivery failure surfaces at the HTTP boundary.
// Exactly one policy is active at a time, chosen by configuration.
type Policy string

const (
	// PolicyLenient answers 200 {ok:true,sent:false}: the submitter always
	// sees the survey complete and delivery failures are visible only in
	// server logs.
	PolicyLenient Policy = "lenient"
	// PolicyStrict answers 500 {ok:false} on delivery failure.
	PolicyStrict Policy = "strict"
)

// ErrUnknownPolicy rejects configuration values outside lenient/strict.
var ErrUnknownPolicy = errors.NewSentinel("unknown delivery-failure policy")

// ParsePolicy validates a configured policy string.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case PolicyLenient, PolicyStrict:
		return Policy(s), nil
	default:
		return "", errors.Wrap(ErrUnknownPolicy, "parse policy", slog.String("policy", s))
	}
}

// Service formats submissions and hands them to the relay.
type Service struct {
	relay  *relay.Client
	logger *slog.Logger
}

func NewService(relayClient *relay.Client, logger *slog.Logger) *Service {
	return &Service{
		relay:  relayClient,
		logger: logger,
	}
}

// Configured reports whether the relay has its secrets.
func (s *Service) Configured() bool {
	return s.relay.Configured()
}

// Submit renders the notification text and makes the single delivery attempt.
// Acceptance and delivery are distinct outcomes: sent=false with a nil error
// means the submission was accepted while the relay is unconfigured. Delivery
// failures are logged here; how they surface to the submitter is the
// boundary's policy decision, not this service's.
func (s *Service) Submit(ctx context.Context, sub survey.Submission) (bool, error) {
	text := survey.FormatSubmission(sub)

	sent, err := s.relay.Send(ctx, text)
	if err != nil {
		s.logger.LogAttrs(ctx, slog.LevelError, "submission delivery failed", errors.SlogError(err))
		return false, err
	}
	if !sent {
		s.logger.LogAttrs(ctx, slog.LevelInfo, "relay not configured, submission accepted without delivery")
		return false, nil
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "submission delivered")
	return true, nil
}
