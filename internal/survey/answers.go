package survey

import "slices"

// Answer holds the captured value for one question. Single-select and
// free-text questions use Value; multi-select questions use Values in the
// order the user picked them.
type Answer struct {
	Value  string   `json:"value,omitempty"`
	Values []string `json:"values,omitempty"`
}

// AnswerSet maps question ids to their in-progress answers.
type AnswerSet map[string]Answer

// NewAnswerSet returns an empty answer set.
func NewAnswerSet() AnswerSet {
	return make(AnswerSet)
}

// SetValue records a single-select or free-text answer.
func (a AnswerSet) SetValue(id, value string) {
	a[id] = Answer{Value: value}
}

// Toggle adds or removes value from a multi-select answer. Adding a selection
// past MaxMultiSelections leaves the answer unchanged and returns false.
func (a AnswerSet) Toggle(id, value string) bool {
	answer := a[id]
	if i := slices.Index(answer.Values, value); i >= 0 {
		answer.Values = slices.Delete(answer.Values, i, i+1)
		a[id] = answer
		return true
	}
	if len(answer.Values) >= MaxMultiSelections {
		return false
	}
	answer.Values = append(answer.Values, value)
	a[id] = answer
	return true
}

// Answered reports whether the question has a non-empty answer. Free-text
// questions are optional and always count as answered.
func (a AnswerSet) Answered(q Question) bool {
	answer := a[q.ID]
	switch q.Kind {
	case MultiSelect:
		return len(answer.Values) > 0
	case FreeText:
		return true
	default:
		return answer.Value != ""
	}
}

// Selected reports whether value is currently part of the answer for id.
func (a AnswerSet) Selected(id, value string) bool {
	answer := a[id]
	if answer.Value == value {
		return true
	}
	return slices.Contains(answer.Values, value)
}

// Clone returns a deep copy so a submission snapshot cannot be mutated by
// later wizard actions.
func (a AnswerSet) Clone() AnswerSet {
	clone := make(AnswerSet, len(a))
	for id, answer := range a {
		clone[id] = Answer{
			Value:  answer.Value,
			Values: slices.Clone(answer.Values),
		}
	}
	return clone
}

// ContactInfo carries the lead's contact details collected on the contact step.
type ContactInfo struct {
	FirstName string `json:"firstName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Company   string `json:"company,omitempty"`
	Consent   bool   `json:"consent"`
}

// Submission is the immutable snapshot relayed to the operator. It is built
// once per session on the final submit.
type Submission struct {
	Answers AnswerSet
	Contact ContactInfo
}

// NewSubmission snapshots the answers and contact details.
func NewSubmission(answers AnswerSet, contact ContactInfo) Submission {
	return Submission{
		Answers: answers.Clone(),
		Contact: contact,
	}
}
