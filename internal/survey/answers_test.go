package survey_test

import (
	"testing"

	"github.com/mvirtane/leadwizard/internal/survey"
	"github.com/stretchr/testify/require"
)

func TestAnswerSetToggle(t *testing.T) {
	answers := survey.NewAnswerSet()

	require.True(t, answers.Toggle("q4", "Dispatching"))
	require.True(t, answers.Toggle("q4", "Factoring"))
	require.True(t, answers.Toggle("q4", "Compliance support"))

	// A fourth selection is rejected and the first three stay untouched.
	require.False(t, answers.Toggle("q4", "Route planning"))
	require.Equal(t, []string{"Dispatching", "Factoring", "Compliance support"}, answers["q4"].Values)

	// Toggling an existing selection removes it and frees a slot.
	require.True(t, answers.Toggle("q4", "Factoring"))
	require.Equal(t, []string{"Dispatching", "Compliance support"}, answers["q4"].Values)
	require.True(t, answers.Toggle("q4", "Route planning"))
	require.Equal(t, []string{"Dispatching", "Compliance support", "Route planning"}, answers["q4"].Values)
}

func TestAnswerSetAnswered(t *testing.T) {
	answers := survey.NewAnswerSet()

	single, ok := survey.QuestionByID("q1")
	require.True(t, ok)
	multi, ok := survey.QuestionByID("q4")
	require.True(t, ok)
	text, ok := survey.QuestionByID("q9")
	require.True(t, ok)

	require.False(t, answers.Answered(single))
	require.False(t, answers.Answered(multi))
	// Free text is optional, it never gates advancement.
	require.True(t, answers.Answered(text))

	answers.SetValue("q1", "Owner-operator")
	require.True(t, answers.Answered(single))

	answers.Toggle("q4", "Dispatching")
	require.True(t, answers.Answered(multi))
}

func TestAnswerSetClone(t *testing.T) {
	answers := survey.NewAnswerSet()
	answers.SetValue("q1", "Owner-operator")
	answers.Toggle("q4", "Dispatching")

	clone := answers.Clone()
	answers.SetValue("q1", "Dispatcher")
	answers.Toggle("q4", "Factoring")

	require.Equal(t, "Owner-operator", clone["q1"].Value)
	require.Equal(t, []string{"Dispatching"}, clone["q4"].Values)
}
