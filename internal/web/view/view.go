package view

import (
	"net/http"

	commonhttp "github.com/mzhuravlev/feedback-board/internal/common/http"
)

// Page is what a handler hands to the renderer: the page name, an
// optional one-time flash notice, field-level form errors and the
// page payload itself.
type Page struct {
	Name   string            `json:"page"`
	Flash  string            `json:"flash,omitempty"`
	Errors map[string]string `json:"errors,omitempty"`
	Data   any               `json:"data,omitempty"`
}

type Renderer interface {
	Render(w http.ResponseWriter, status int, page Page)
}

// JSONRenderer serves every page as a JSON document. A template-based
// renderer can replace it without touching the handlers.
type JSONRenderer struct{}

func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

func (JSONRenderer) Render(w http.ResponseWriter, status int, page Page) {
	commonhttp.WriteJSON(w, status, page)
}
