package survey

// Step is one node in the wizard's fixed navigation graph.
type Step string

const (
	StepIntro   Step = "intro"
	StepQ1      Step = "q1"
	StepQ2      Step = "q2"
	StepQ3      Step = "q3"
	StepQ4      Step = "q4"
	StepQ5      Step = "q5"
	StepQ6      Step = "q6"
	StepQ7      Step = "q7"
	StepQ8      Step = "q8"
	StepQ9      Step = "q9"
	StepLoading Step = "loading"
	StepResults Step = "results"
	StepContact Step = "contact"
	StepFinal   Step = "final"
	StepDone    Step = "done"
)

// Steps returns every step in document order.
func Steps() []Step {
	return []Step{
		StepIntro,
		StepQ1, StepQ2, StepQ3, StepQ4, StepQ5, StepQ6, StepQ7, StepQ8, StepQ9,
		StepLoading,
		StepResults,
		StepContact,
		StepFinal,
		StepDone,
	}
}

// QuestionSteps returns the steps that count toward progress display.
func QuestionSteps() []Step {
	return []Step{StepQ1, StepQ2, StepQ3, StepQ4, StepQ5, StepQ6, StepQ7, StepQ8, StepQ9}
}

// IsQuestion reports whether the step is one of q1…q9.
func (s Step) IsQuestion() bool {
	for _, q := range QuestionSteps() {
		if s == q {
			return true
		}
	}
	return false
}

// Valid reports whether s is a known step tag.
func (s Step) Valid() bool {
	for _, known := range Steps() {
		if s == known {
			return true
		}
	}
	return false
}
