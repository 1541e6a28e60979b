package main

import (
	"net/http"

	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	mux := http.NewServeMux()

	// Browser-facing wizard routes carry session, CSRF and rendering context.
	session := alice.New(app.sessionManager.LoadAndSave, noSurf, app.commonContext)

	mux.Handle("/", session.ThenFunc(app.wizardPage))
	mux.Handle("/wizard/advance", session.ThenFunc(app.wizardAction(wizardAdvance)))
	mux.Handle("/wizard/back", session.ThenFunc(app.wizardAction(wizardBack)))
	mux.Handle("/wizard/skip", session.ThenFunc(app.wizardAction(wizardSkip)))
	mux.Handle("/wizard/answer", session.ThenFunc(app.wizardAction(wizardAnswer)))
	mux.Handle("/wizard/toggle", session.ThenFunc(app.wizardAction(wizardToggle)))
	mux.Handle("/wizard/reset", session.ThenFunc(app.wizardAction(wizardReset)))
	mux.Handle("/wizard/done", session.ThenFunc(app.wizardAction(wizardDone)))
	mux.Handle("/wizard/contact", session.ThenFunc(app.wizardContact))

	// The JSON submit API is for external embeds and skips the CSRF/session
	// machinery.
	mux.Handle("/submit", http.HandlerFunc(app.submit))

	mux.Handle("/api/healthy", http.HandlerFunc(app.healthy))

	return app.recoverPanic(app.logRequest(secureHeaders(mux)))
}
