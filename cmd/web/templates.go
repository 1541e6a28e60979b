package main

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"

	"github.com/mvirtane/leadwizard/internal/contexthelpers"
	"github.com/mvirtane/leadwizard/internal/errors"
	"github.com/mvirtane/leadwizard/ui"
)

// pageTemplate parses the embedded wizard templates.
//
// The FuncMap has to be initialized before parsing; the real funcs are bound
// per request in the render function.
func pageTemplate() (*template.Template, error) {
	return template.New("wizard").Funcs(template.FuncMap{
		"nonce": func() string {
			panic("not implemented")
		},
		"csrf": func() string {
			panic("not implemented")
		},
	}).ParseFS(ui.Files, "templates/base.gohtml", "templates/pages/wizard/*.gohtml")
}

func (app *application) render(w http.ResponseWriter, r *http.Request, status int, data any) {
	t, err := pageTemplate()
	if err != nil {
		app.serverError(w, r, errors.Wrap(err, "parse template"))
		return
	}

	buf := new(bytes.Buffer)
	ctx := r.Context()
	nonce := fmt.Sprintf("nonce=\"%s\"", contexthelpers.CSPNonce(ctx))
	csrf := fmt.Sprintf("<input type=\"hidden\" name=\"csrf_token\" value=\"%s\"/>", contexthelpers.CSRFToken(ctx))
	t.Funcs(template.FuncMap{
		"nonce": func() template.HTMLAttr {
			return template.HTMLAttr(nonce) //nolint:gosec // the nonce is not user-provided.
		},
		"csrf": func() template.HTML {
			return template.HTML(csrf) //nolint:gosec // the token is not user-provided.
		},
	})
	if err = t.ExecuteTemplate(buf, "base", data); err != nil {
		app.serverError(w, r, errors.Wrap(err, "execute template"))
		return
	}

	w.WriteHeader(status)

	_, _ = buf.WriteTo(w)
}
