package wizard

import (
	"testing"
	"time"

	"github.com/mvirtane/leadwizard/internal/survey"
	"github.com/stretchr/testify/require"
)

func newTestSession() *Session {
	return newSession("test", 20*time.Millisecond)
}

func validContact() survey.ContactInfo {
	return survey.ContactInfo{
		FirstName: "Marko",
		Email:     "marko@example.com",
		Phone:     "5551234567",
		Consent:   true,
	}
}

func waitForStep(t *testing.T, s *Session, want survey.Step) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if s.Step() == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	require.Equal(t, want, s.Step())
}

func TestAdvanceGatesOnSelection(t *testing.T) {
	s := newTestSession()
	require.True(t, s.Advance()) // intro has no gate
	require.Equal(t, survey.StepQ1, s.Step())

	require.False(t, s.CanAdvance())
	require.False(t, s.Advance())
	require.Equal(t, survey.StepQ1, s.Step())
	require.NotEmpty(t, s.View().ErrorMessage)

	s.SelectOption("Owner-operator")
	require.True(t, s.CanAdvance())
	require.True(t, s.Advance())
	require.Equal(t, survey.StepQ2, s.Step())
	require.Empty(t, s.View().ErrorMessage)
}

func TestSelectOptionRejectsUnknownValues(t *testing.T) {
	s := newTestSession()
	s.GoTo(survey.StepQ1)
	s.SelectOption("Astronaut")
	require.False(t, s.CanAdvance())
}

func TestSkipBypassesValidation(t *testing.T) {
	s := newTestSession()
	s.GoTo(survey.StepQ1)
	require.True(t, s.Skip())
	require.Equal(t, survey.StepQ2, s.Step())
}

func TestToggleMultiCapSurfacesError(t *testing.T) {
	s := newTestSession()
	s.GoTo(survey.StepQ4)

	s.ToggleMulti("Dispatching")
	s.ToggleMulti("Factoring")
	s.ToggleMulti("Route planning")
	require.Empty(t, s.View().ErrorMessage)

	s.ToggleMulti("Compliance support")
	view := s.View()
	require.Equal(t, []string{"Dispatching", "Factoring", "Route planning"}, view.Answers["q4"].Values)
	require.NotEmpty(t, view.ErrorMessage)

	// Removing one clears the error and frees a slot.
	s.ToggleMulti("Factoring")
	require.Empty(t, s.View().ErrorMessage)
}

func TestLoadingAutoAdvances(t *testing.T) {
	s := newTestSession()
	s.GoTo(survey.StepQ9)
	require.True(t, s.Advance()) // free text passes without input
	require.Equal(t, survey.StepLoading, s.Step())

	waitForStep(t, s, survey.StepContact)
}

func TestResetCancelsPendingTimer(t *testing.T) {
	s := newTestSession()
	s.GoTo(survey.StepLoading)
	s.Reset()
	require.Equal(t, survey.StepIntro, s.Step())

	// The cancelled timer must not fire behind our back.
	time.Sleep(50 * time.Millisecond)
	require.Equal(t, survey.StepIntro, s.Step())
}

func TestCloseCancelsPendingTimer(t *testing.T) {
	s := newTestSession()
	s.GoTo(survey.StepLoading)
	s.Close()
	time.Sleep(50 * time.Millisecond)
	require.Equal(t, survey.StepLoading, s.Step())
}

func TestContactGate(t *testing.T) {
	s := newTestSession()
	s.GoTo(survey.StepContact)
	require.False(t, s.CanAdvance())

	s.SetContact(validContact())
	require.True(t, s.CanAdvance())

	partial := validContact()
	partial.Consent = false
	s.SetContact(partial)
	require.False(t, s.CanAdvance())
}

func TestBeginSubmitSingleFlight(t *testing.T) {
	s := newTestSession()
	s.GoTo(survey.StepContact)
	s.SetContact(validContact())

	sub, err := s.BeginSubmit()
	require.NoError(t, err)
	require.Equal(t, "Marko", sub.Contact.FirstName)
	require.Equal(t, StatusSubmitting, s.Status())

	_, err = s.BeginSubmit()
	require.ErrorIs(t, err, ErrSubmitInFlight)

	s.FinishSubmit(nil)
	require.Equal(t, StatusSubmitted, s.Status())

	_, err = s.BeginSubmit()
	require.ErrorIs(t, err, ErrAlreadySubmitted)
}

func TestBeginSubmitValidates(t *testing.T) {
	s := newTestSession()
	s.GoTo(survey.StepContact)
	contact := validContact()
	contact.Email = "a@b"
	s.SetContact(contact)

	_, err := s.BeginSubmit()
	require.ErrorIs(t, err, survey.ErrInvalidEmail)
	require.Equal(t, StatusIdle, s.Status())
	require.NotEmpty(t, s.View().ErrorMessage)
}

func TestBeginSubmitSnapshotIsImmutable(t *testing.T) {
	s := newTestSession()
	s.GoTo(survey.StepQ4)
	s.ToggleMulti("Dispatching")
	s.GoTo(survey.StepContact)
	s.SetContact(validContact())

	sub, err := s.BeginSubmit()
	require.NoError(t, err)

	s.FinishSubmit(nil)
	s.Reset()
	require.Equal(t, []string{"Dispatching"}, sub.Answers["q4"].Values)
}

func TestFinishSubmitRecordsError(t *testing.T) {
	s := newTestSession()
	s.GoTo(survey.StepContact)
	s.SetContact(validContact())
	_, err := s.BeginSubmit()
	require.NoError(t, err)

	s.FinishSubmit(survey.ErrMissingFields) // any non-nil error
	require.Equal(t, StatusError, s.Status())
}

func TestResetClearsEverything(t *testing.T) {
	s := newTestSession()
	s.GoTo(survey.StepQ1)
	s.SelectOption("Owner-operator")
	s.GoTo(survey.StepContact)
	s.SetContact(validContact())
	s.Reset()

	view := s.View()
	require.Equal(t, survey.StepIntro, view.Step)
	require.Empty(t, view.Answers["q1"].Value)
	require.Empty(t, view.Contact.FirstName)
	require.Equal(t, StatusIdle, view.Status)
}

func TestConfettiFiresOnce(t *testing.T) {
	s := newTestSession()
	s.GoTo(survey.StepFinal)
	require.True(t, s.View().Confetti)
	require.False(t, s.View().Confetti)

	// Reset re-arms the latch for the next run.
	s.Reset()
	s.GoTo(survey.StepFinal)
	require.True(t, s.View().Confetti)
}

func TestProgress(t *testing.T) {
	s := newTestSession()
	require.Equal(t, 0, s.View().Progress)

	s.GoTo(survey.StepQ1)
	view := s.View()
	require.Equal(t, 1, view.Progress)
	require.Equal(t, 9, view.ProgressTotal)

	s.GoTo(survey.StepQ9)
	require.Equal(t, 9, s.View().Progress)

	s.GoTo(survey.StepContact)
	require.Equal(t, 0, s.View().Progress)
}
