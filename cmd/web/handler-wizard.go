package main

import (
	"net/http"

	"github.com/mvirtane/leadwizard/internal/survey"
	"github.com/mvirtane/leadwizard/internal/wizard"
)

type optionView struct {
	Value    string
	Selected bool
}

type wizardTemplateData struct {
	Step          string
	IsQuestion    bool
	IsMulti       bool
	IsText        bool
	Prompt        string
	Options       []optionView
	TextValue     string
	Contact       survey.ContactInfo
	PhoneDisplay  string
	Error         string
	Progress      int
	ProgressTotal int
	Confetti      bool
	Refresh       bool
	Submitting    bool
}

func newWizardTemplateData(view wizard.View) wizardTemplateData {
	data := wizardTemplateData{
		Step:          string(view.Step),
		IsQuestion:    view.Step.IsQuestion(),
		Contact:       view.Contact,
		PhoneDisplay:  survey.FormatPhone(view.Contact.Phone),
		Error:         view.ErrorMessage,
		Progress:      view.Progress,
		ProgressTotal: view.ProgressTotal,
		Confetti:      view.Confetti,
		// The loading step polls until the one-shot timer has advanced the
		// session to contact.
		Refresh:    view.Step == survey.StepLoading,
		Submitting: view.Status == wizard.StatusSubmitting,
	}

	if q, ok := survey.QuestionFor(view.Step); ok {
		data.Prompt = q.Prompt
		data.IsMulti = q.Kind == survey.MultiSelect
		data.IsText = q.Kind == survey.FreeText
		data.TextValue = view.Answers[q.ID].Value
		for _, option := range q.Options {
			data.Options = append(data.Options, optionView{
				Value:    option,
				Selected: view.Answers.Selected(q.ID, option),
			})
		}
	}
	return data
}

func (app *application) wizardPage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		app.notFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		app.methodNotAllowed(w, r, http.MethodGet)
		return
	}

	session := app.wizardSession(r)
	app.render(w, r, http.StatusOK, newWizardTemplateData(session.View()))
}

type wizardActionKind int

const (
	wizardAdvance wizardActionKind = iota
	wizardBack
	wizardSkip
	wizardAnswer
	wizardToggle
	wizardReset
	wizardDone
)

// wizardAction builds a POST handler that applies one navigation or answer
// mutation and redirects back to the wizard page.
func (app *application) wizardAction(kind wizardActionKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			app.methodNotAllowed(w, r, http.MethodPost)
			return
		}
		if err := r.ParseForm(); err != nil {
			app.clientError(w, r, http.StatusBadRequest)
			return
		}

		session := app.wizardSession(r)
		switch kind {
		case wizardAdvance:
			// The free-text question saves its draft through the same form
			// that advances.
			if _, ok := r.PostForm["text"]; ok {
				session.SetFreeText(r.PostFormValue("text"))
			}
			session.Advance()
		case wizardBack:
			session.Retreat()
		case wizardSkip:
			session.Skip()
		case wizardAnswer:
			session.SelectOption(r.PostFormValue("option"))
		case wizardToggle:
			session.ToggleMulti(r.PostFormValue("option"))
		case wizardReset:
			// Submitting the reset form is the user's confirmation.
			session.Reset()
		case wizardDone:
			session.Done()
		}

		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// wizardContact stores the contact fields and attempts the single submission.
func (app *application) wizardContact(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.methodNotAllowed(w, r, http.MethodPost)
		return
	}
	if err := r.ParseForm(); err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}

	session := app.wizardSession(r)
	session.SetContact(survey.ContactInfo{
		FirstName: r.PostFormValue("firstName"),
		Email:     r.PostFormValue("email"),
		Phone:     r.PostFormValue("phone"),
		Company:   r.PostFormValue("company"),
		Consent:   r.PostFormValue("consent") != "",
	})

	sub, err := session.BeginSubmit()
	if err != nil {
		// Validation and duplicate-submit failures surface inline on the
		// re-rendered contact step.
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	_, submitErr := app.submitter.Submit(r.Context(), sub)
	session.FinishSubmit(submitErr)

	// Under the lenient policy the submitter always sees the survey
	// complete; only the strict policy keeps a failed delivery on the
	// contact step.
	if submitErr != nil && app.strictPolicy() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	session.GoTo(survey.StepFinal)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
