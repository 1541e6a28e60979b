// Package wizard owns the step-sequencing state machine: navigation along a
// fixed transition table, validation gating, conditional skipping, and the
// timed loading auto-advance.
package wizard

import (
	"log/slog"

	"github.com/mvirtane/leadwizard/internal/errors"
	"github.com/mvirtane/leadwizard/internal/survey"
)

// Action is a navigation input on the current step.
type Action string

const (
	ActionAdvance Action = "advance"
	ActionRetreat Action = "retreat"
	ActionSkip    Action = "skip"
	ActionDone    Action = "done"
)

// transitionTable maps (step, action) to the next step. Steps without an
// entry for an action do not transition on it.
type transitionTable map[survey.Step]map[Action]survey.Step

// newTransitionTable builds the full step graph.
//
// Forward: intro→q1→…→q9→loading→contact→final, then final→done only through
// the explicit done action. Backward mirrors the forward chain except that
// contact retreats to q9: loading is never a navigation target from the back
// direction. Question steps can always be skipped. The results step is
// deliberately left without edges; it stays in the step set but is disabled
// in the default flow.
func newTransitionTable() transitionTable {
	t := transitionTable{
		survey.StepIntro:   {ActionAdvance: survey.StepQ1},
		survey.StepLoading: {ActionAdvance: survey.StepContact},
		survey.StepResults: {},
		survey.StepContact: {
			ActionAdvance: survey.StepFinal,
			ActionRetreat: survey.StepQ9,
		},
		survey.StepFinal: {ActionDone: survey.StepDone},
		survey.StepDone:  {},
	}

	qs := survey.QuestionSteps()
	for i, q := range qs {
		next := survey.StepLoading
		if i+1 < len(qs) {
			next = qs[i+1]
		}
		prev := survey.StepIntro
		if i > 0 {
			prev = qs[i-1]
		}
		t[q] = map[Action]survey.Step{
			ActionAdvance: next,
			ActionSkip:    next,
			ActionRetreat: prev,
		}
	}
	return t
}

// validate checks the table is total over the step set and that its edges
// respect the graph's constraints. It runs once at package initialisation, so
// a malformed table cannot make it into a running server.
func (t transitionTable) validate() error {
	var errorList []error
	for _, step := range survey.Steps() {
		edges, ok := t[step]
		if !ok {
			errorList = append(errorList, errors.New("step missing from transition table",
				slog.String("step", string(step))))
			continue
		}
		for action, target := range edges {
			if !target.Valid() {
				errorList = append(errorList, errors.New("transition to unknown step",
					slog.String("step", string(step)),
					slog.String("action", string(action)),
					slog.String("target", string(target))))
			}
			if action == ActionRetreat && target == survey.StepLoading {
				errorList = append(errorList, errors.New("loading must not be a retreat target",
					slog.String("step", string(step))))
			}
		}
	}
	if len(t[survey.StepDone]) != 0 {
		errorList = append(errorList, errors.New("done must be terminal"))
	}
	if len(errorList) != 0 {
		return errors.Join(errorList...)
	}
	return nil
}

var table = func() transitionTable {
	t := newTransitionTable()
	if err := t.validate(); err != nil {
		panic(err)
	}
	return t
}()

// Next looks up the transition for (step, action).
func Next(step survey.Step, action Action) (survey.Step, bool) {
	next, ok := table[step][action]
	return next, ok
}
