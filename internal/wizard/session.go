package wizard

import (
	"sync"
	"time"

	"github.com/mvirtane/leadwizard/internal/errors"
	"github.com/mvirtane/leadwizard/internal/survey"
)

// Status tracks the single submission a session may make.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSubmitted  Status = "submitted"
	StatusError      Status = "error"
)

var (
	ErrSubmitInFlight   = errors.NewSentinel("a submission is already in progress")
	ErrAlreadySubmitted = errors.NewSentinel("this session has already been submitted")
)

// User-visible gating messages. They surface inline and are never logged.
const (
	msgSelectOption   = "Please select an option to continue."
	msgSelectAtLeast  = "Please pick at least one option."
	msgTooManyPicks   = "You can pick up to three options."
	msgDeliveryFailed = "We could not send your details. Please try again."
)

// Session holds one visitor's wizard state. All mutation is serialized
// through the session mutex; the auto-advance timer re-enters through the
// same lock.
type Session struct {
	mu sync.Mutex

	id      string
	step    survey.Step
	answers survey.AnswerSet
	contact survey.ContactInfo
	status  Status
	errMsg  string

	// loadingDelay is how long the loading step shows before the one-shot
	// timer advances to contact.
	loadingDelay  time.Duration
	timer         *time.Timer
	confettiFired bool

	lastTouched time.Time
	closed      bool
}

func newSession(id string, loadingDelay time.Duration) *Session {
	return &Session{
		id:           id,
		step:         survey.StepIntro,
		answers:      survey.NewAnswerSet(),
		status:       StatusIdle,
		loadingDelay: loadingDelay,
		lastTouched:  time.Now(),
	}
}

func (s *Session) ID() string {
	return s.id
}

// View is an immutable copy of the session for rendering.
type View struct {
	Step          survey.Step
	Answers       survey.AnswerSet
	Contact       survey.ContactInfo
	Status        Status
	ErrorMessage  string
	Progress      int
	ProgressTotal int
	Confetti      bool
}

// View snapshots the session. The final step's confetti latch fires on the
// first snapshot that sees it and never again.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	confetti := false
	if s.step == survey.StepFinal && !s.confettiFired {
		s.confettiFired = true
		confetti = true
	}

	progress := 0
	for i, q := range survey.QuestionSteps() {
		if s.step == q {
			progress = i + 1
			break
		}
	}

	return View{
		Step:          s.step,
		Answers:       s.answers.Clone(),
		Contact:       s.contact,
		Status:        s.status,
		ErrorMessage:  s.errMsg,
		Progress:      progress,
		ProgressTotal: len(survey.QuestionSteps()),
		Confetti:      confetti,
	}
}

// GoTo jumps unconditionally to the given step and clears any pending error.
func (s *Session) GoTo(step survey.Step) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !step.Valid() {
		return
	}
	s.errMsg = ""
	s.enterStep(step)
}

// Advance moves forward along the transition table when the current step's
// gate passes. A failed gate sets the inline error message instead.
func (s *Session) Advance() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, ok := Next(s.step, ActionAdvance)
	if !ok {
		return false
	}
	if msg := s.gateMessage(); msg != "" {
		s.errMsg = msg
		return false
	}
	s.errMsg = ""
	s.enterStep(next)
	return true
}

// Retreat moves backward along the transition table. Validation never gates
// going back.
func (s *Session) Retreat() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := Next(s.step, ActionRetreat)
	if !ok {
		return false
	}
	s.errMsg = ""
	s.enterStep(prev)
	return true
}

// Skip bypasses validation entirely. It is only wired on question steps.
func (s *Session) Skip() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, ok := Next(s.step, ActionSkip)
	if !ok {
		return false
	}
	s.errMsg = ""
	s.enterStep(next)
	return true
}

// Done leaves the final step through the explicit done action.
func (s *Session) Done() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, ok := Next(s.step, ActionDone)
	if !ok {
		return false
	}
	s.errMsg = ""
	s.enterStep(next)
	return true
}

// SelectOption records a single-select answer for the current question step.
// Options outside the catalog are ignored.
func (s *Session) SelectOption(value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, ok := survey.QuestionFor(s.step)
	if !ok || q.Kind != survey.SingleSelect {
		return
	}
	for _, option := range q.Options {
		if option == value {
			s.answers.SetValue(q.ID, value)
			s.errMsg = ""
			return
		}
	}
}

// ToggleMulti adds or removes a multi-select option. Rejecting a fourth
// addition leaves the selections unchanged and surfaces an inline error.
func (s *Session) ToggleMulti(value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, ok := survey.QuestionFor(s.step)
	if !ok || q.Kind != survey.MultiSelect {
		return
	}
	known := false
	for _, option := range q.Options {
		if option == value {
			known = true
			break
		}
	}
	if !known {
		return
	}
	if !s.answers.Toggle(q.ID, value) {
		s.errMsg = msgTooManyPicks
		return
	}
	s.errMsg = ""
}

// SetFreeText records the free-text answer for the current question step.
// Empty text is allowed.
func (s *Session) SetFreeText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, ok := survey.QuestionFor(s.step)
	if !ok || q.Kind != survey.FreeText {
		return
	}
	s.answers.SetValue(q.ID, text)
}

// SetContact stores the contact fields without validating them. Validation
// happens on the submit attempt.
func (s *Session) SetContact(contact survey.ContactInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contact = contact
}

// CanAdvance reports whether the current step's gate passes.
func (s *Session) CanAdvance() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := Next(s.step, ActionAdvance); !ok {
		return false
	}
	return s.gateMessage() == ""
}

// BeginSubmit validates the contact details and claims the session's single
// submission slot. The returned snapshot is what gets relayed.
func (s *Session) BeginSubmit() (survey.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.status {
	case StatusSubmitting:
		return survey.Submission{}, ErrSubmitInFlight
	case StatusSubmitted:
		return survey.Submission{}, ErrAlreadySubmitted
	}
	if err := s.contact.Validate(); err != nil {
		s.errMsg = err.Error()
		return survey.Submission{}, err
	}
	s.errMsg = ""
	s.status = StatusSubmitting
	return survey.NewSubmission(s.answers, s.contact), nil
}

// FinishSubmit records the outcome of the submission attempt. err covers
// transport failure only; an accepted-but-not-delivered outcome is not an
// error here.
func (s *Session) FinishSubmit(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.status = StatusError
		s.errMsg = msgDeliveryFailed
		return
	}
	s.status = StatusSubmitted
}

// Status returns the submission status.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Step returns the current step.
func (s *Session) Step() survey.Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

// Reset clears all mutable state back to initial values and returns to
// intro. The caller is expected to have confirmed the exit with the user.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelTimer()
	s.step = survey.StepIntro
	s.answers = survey.NewAnswerSet()
	s.contact = survey.ContactInfo{}
	s.status = StatusIdle
	s.errMsg = ""
	s.confettiFired = false
}

// Touch refreshes the idle-expiry clock.
func (s *Session) Touch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastTouched = time.Now()
}

func (s *Session) lastTouchedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastTouched
}

// Close cancels the pending auto-advance timer on session teardown.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelTimer()
	s.closed = true
}

// gateMessage returns the inline message blocking advancement from the
// current step, or "" when the gate passes. Callers hold the lock.
func (s *Session) gateMessage() string {
	if q, ok := survey.QuestionFor(s.step); ok {
		if s.answers.Answered(q) {
			return ""
		}
		if q.Kind == survey.MultiSelect {
			return msgSelectAtLeast
		}
		return msgSelectOption
	}
	if s.step == survey.StepContact {
		if err := s.contact.Validate(); err != nil {
			return err.Error()
		}
	}
	return ""
}

// enterStep switches steps, cancelling any pending timer and scheduling the
// loading auto-advance when the loading step becomes current. Callers hold
// the lock.
func (s *Session) enterStep(step survey.Step) {
	s.cancelTimer()
	s.step = step
	if step == survey.StepLoading && !s.closed {
		s.timer = time.AfterFunc(s.loadingDelay, s.autoAdvance)
	}
}

// autoAdvance fires from the one-shot loading timer.
func (s *Session) autoAdvance() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.step != survey.StepLoading {
		return
	}
	s.timer = nil
	next, ok := Next(survey.StepLoading, ActionAdvance)
	if !ok {
		return
	}
	s.step = next
}

func (s *Session) cancelTimer() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
