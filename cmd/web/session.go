package main

import (
	"net/http"

	"github.com/mvirtane/leadwizard/internal/wizard"
)

const wizardSessionKey = "wizardSessionID"

// wizardSession returns the live wizard session for the request, creating a
// fresh one when the cookie is new or the old session has expired.
func (app *application) wizardSession(r *http.Request) *wizard.Session {
	ctx := r.Context()
	if id := app.sessionManager.GetString(ctx, wizardSessionKey); id != "" {
		if session, ok := app.wizards.Get(id); ok {
			return session
		}
	}
	session := app.wizards.Create()
	app.sessionManager.Put(ctx, wizardSessionKey, session.ID())
	return session
}
