// Package render picks the response format once per request and shapes every
// outcome accordingly: HTML pages for browser clients, the shared JSON
// envelope for API clients.
package render

import (
	"embed"
	"html/template"
	"net/http"
	"strings"

	"moviehub/pkg/utils"

	"go.uber.org/zap"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Engine holds the parsed page templates.
type Engine struct {
	tmpl *template.Template
	log  *zap.Logger
}

func NewEngine(log *zap.Logger) (*Engine, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	return &Engine{
		tmpl: tmpl,
		log:  log,
	}, nil
}

// WantsJSON inspects the request's declared content type. Clients that accept
// or send application/json get JSON bodies, everyone else gets HTML.
func WantsJSON(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		return true
	}
	return strings.Contains(r.Header.Get("Content-Type"), "application/json")
}

// For chooses the responder for this request. The choice is made once and
// passed down instead of re-checking headers in every handler.
func (e *Engine) For(r *http.Request) *Responder {
	return &Responder{
		engine: e,
		json:   WantsJSON(r),
	}
}

// Responder writes handler outcomes in the format negotiated for the request.
type Responder struct {
	engine *Engine
	json   bool
}

// JSON reports whether the request negotiated a JSON response.
func (rd *Responder) JSON() bool {
	return rd.json
}

// PageData is what every HTML template receives.
type PageData struct {
	Message string
	Data    any
}

// Page renders the named template, or the JSON envelope for API clients.
func (rd *Responder) Page(w http.ResponseWriter, status int, page, message string, data any) {
	if rd.json {
		utils.ResponseJSON(w, status, status < 400, message, data, nil)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := rd.engine.tmpl.ExecuteTemplate(w, page, PageData{Message: message, Data: data}); err != nil {
		rd.engine.log.Error("Failed to render template",
			zap.String("page", page),
			zap.Error(err),
		)
	}
}

// Error renders the generic error page, or a JSON error body.
func (rd *Responder) Error(w http.ResponseWriter, status int, message string, errors any) {
	if rd.json {
		utils.ResponseJSON(w, status, false, message, nil, errors)
		return
	}

	rd.Page(w, status, "error.html", message, nil)
}

// Redirect sends browser clients to location. API clients get the outcome as
// a JSON body with the given status instead, a redirect means nothing to them.
func (rd *Responder) Redirect(w http.ResponseWriter, r *http.Request, location string, status int, message string) {
	if rd.json {
		utils.ResponseJSON(w, status, status < 400, message, nil, nil)
		return
	}

	http.Redirect(w, r, location, http.StatusSeeOther)
}
