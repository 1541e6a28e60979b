package main

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/mvirtane/leadwizard/internal/submission"
	"github.com/mvirtane/leadwizard/internal/survey"
)

type submitRequest struct {
	// Answer values are either a single string or an array of strings for
	// the multi-select question.
	Answers map[string]any    `json:"answers"`
	Contact map[string]string `json:"contact"`
}

type submitResponse struct {
	OK   bool `json:"ok"`
	Sent bool `json:"sent"`
}

type submitHealthResponse struct {
	OK                 bool `json:"ok"`
	TelegramConfigured bool `json:"telegramConfigured"`
}

type submitErrorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

func (app *application) strictPolicy() bool {
	return app.policy == submission.PolicyStrict
}

// submit is the JSON API used by external embeds of the widget. GET doubles
// as a health probe reporting whether the relay secrets are configured.
func (app *application) submit(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		app.writeJSON(w, r, http.StatusOK, submitHealthResponse{
			OK:                 true,
			TelegramConfigured: app.submitter.Configured(),
		})
	case http.MethodPost:
		app.submitPost(w, r)
	default:
		w.Header().Set("Allow", strings.Join([]string{http.MethodGet, http.MethodPost}, ", "))
		app.writeJSON(w, r, http.StatusMethodNotAllowed, submitErrorResponse{OK: false, Error: "method not allowed"})
	}
}

func (app *application) submitPost(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		app.writeJSON(w, r, http.StatusBadRequest, submitErrorResponse{OK: false, Error: "invalid request body"})
		return
	}

	sub := survey.NewSubmission(answersFromPayload(req.Answers), contactFromPayload(req.Contact))

	sent, err := app.submitter.Submit(r.Context(), sub)
	if err != nil {
		if app.strictPolicy() {
			app.writeJSON(w, r, http.StatusInternalServerError, submitErrorResponse{OK: false, Error: "delivery failed"})
			return
		}
		app.writeJSON(w, r, http.StatusOK, submitResponse{OK: true, Sent: false})
		return
	}
	app.writeJSON(w, r, http.StatusOK, submitResponse{OK: true, Sent: sent})
}

// answersFromPayload rebuilds an AnswerSet from the loosely-typed JSON body.
// Unknown question ids are dropped and the multi-select cap holds.
func answersFromPayload(payload map[string]any) survey.AnswerSet {
	answers := survey.NewAnswerSet()
	for _, q := range survey.Questions() {
		value, ok := payload[q.ID]
		if !ok {
			continue
		}
		switch v := value.(type) {
		case string:
			if q.Kind != survey.MultiSelect {
				answers.SetValue(q.ID, v)
			}
		case []any:
			if q.Kind != survey.MultiSelect {
				continue
			}
			for _, item := range v {
				if s, isString := item.(string); isString {
					answers.Toggle(q.ID, s)
				}
			}
		}
	}
	return answers
}

func contactFromPayload(payload map[string]string) survey.ContactInfo {
	consent := strings.ToLower(payload["consent"])
	return survey.ContactInfo{
		FirstName: payload["firstName"],
		Email:     payload["email"],
		Phone:     payload["phone"],
		Company:   payload["company"],
		Consent:   consent == "true" || consent == "yes" || consent == "on" || consent == "1",
	}
}

func (app *application) writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		app.logger.Debug("write response", "method", r.Method, "uri", r.URL.RequestURI(), "error", err.Error())
	}
}
