package survey

// QuestionKind tells how a question collects its answer.
type QuestionKind int

const (
	SingleSelect QuestionKind = iota
	MultiSelect
	FreeText
)

func (k QuestionKind) String() string {
	switch k {
	case MultiSelect:
		return "multi-select"
	case FreeText:
		return "free-text"
	default:
		return "single-select"
	}
}

// MaxMultiSelections bounds how many options a multi-select answer can hold.
const MaxMultiSelections = 3

// Question is one entry in the fixed nine-question catalog.
type Question struct {
	ID      string
	Step    Step
	Label   string
	Prompt  string
	Kind    QuestionKind
	Options []string
}

// questions is the fixed catalog in presentation order. The order and labels
// also fix the layout of the formatted submission.
var questions = []Question{
	{
		ID:     "q1",
		Step:   StepQ1,
		Label:  "Role",
		Prompt: "What best describes you?",
		Kind:   SingleSelect,
		Options: []string{
			"Owner-operator",
			"Fleet owner",
			"Company driver",
			"Dispatcher",
		},
	},
	{
		ID:     "q2",
		Step:   StepQ2,
		Label:  "Fleet size",
		Prompt: "How many trucks do you run?",
		Kind:   SingleSelect,
		Options: []string{
			"1 truck",
			"2-5 trucks",
			"6-15 trucks",
			"16+ trucks",
		},
	},
	{
		ID:     "q3",
		Step:   StepQ3,
		Label:  "Equipment",
		Prompt: "What equipment do you operate?",
		Kind:   SingleSelect,
		Options: []string{
			"Dry van",
			"Reefer",
			"Flatbed",
			"Step deck",
			"Box truck",
		},
	},
	{
		ID:     "q4",
		Step:   StepQ4,
		Label:  "Services needed",
		Prompt: "Which services are you looking for? Pick up to three.",
		Kind:   MultiSelect,
		Options: []string{
			"Dispatching",
			"Rate negotiation",
			"Paperwork & invoicing",
			"Compliance support",
			"Factoring",
			"Route planning",
		},
	},
	{
		ID:     "q5",
		Step:   StepQ5,
		Label:  "Operating authority",
		Prompt: "What is your authority situation?",
		Kind:   SingleSelect,
		Options: []string{
			"Own MC authority",
			"Leased to a carrier",
			"Authority in progress",
			"No authority yet",
		},
	},
	{
		ID:     "q6",
		Step:   StepQ6,
		Label:  "Experience",
		Prompt: "How long have you been in trucking?",
		Kind:   SingleSelect,
		Options: []string{
			"Less than a year",
			"1-3 years",
			"More than 3 years",
		},
	},
	{
		ID:     "q7",
		Step:   StepQ7,
		Label:  "Preferred lanes",
		Prompt: "Where do you want to run?",
		Kind:   SingleSelect,
		Options: []string{
			"Local",
			"Regional",
			"OTR (48 states)",
		},
	},
	{
		ID:     "q8",
		Step:   StepQ8,
		Label:  "Monthly gross target",
		Prompt: "What gross revenue are you aiming for?",
		Kind:   SingleSelect,
		Options: []string{
			"Under $15k",
			"$15k-$25k",
			"$25k-$40k",
			"Over $40k",
		},
	},
	{
		ID:     "q9",
		Step:   StepQ9,
		Label:  "Notes",
		Prompt: "Anything else we should know?",
		Kind:   FreeText,
	},
}

// Questions returns the fixed catalog in order.
func Questions() []Question {
	return questions
}

// QuestionFor looks up the question shown on the given step.
func QuestionFor(step Step) (Question, bool) {
	for _, q := range questions {
		if q.Step == step {
			return q, true
		}
	}
	return Question{}, false
}

// QuestionByID looks up a question by its answer key.
func QuestionByID(id string) (Question, bool) {
	for _, q := range questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}
