package projection

import (
	"embed"
	"html/template"
	"io"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

type actionControl struct {
	Action string
	ID     string
	Label  string
	Class  string
}

var funcs = template.FuncMap{
	"action": func(act, id, label string) actionControl {
		class := act
		if act == "remove" {
			class = "remove-item"
		}
		return actionControl{Action: act, ID: id, Label: label, Class: class}
	},
}

// Templates parses the projection partials: "badge", "cart_table" and
// "checkout_summary". Page templates are parsed into a clone of the result.
func Templates() (*template.Template, error) {
	return template.New("projection").Funcs(funcs).ParseFS(templateFS, "templates/*.gohtml")
}

type HTML struct {
	t *template.Template
}

func NewHTML() (*HTML, error) {
	t, err := Templates()
	if err != nil {
		return nil, err
	}
	return &HTML{t: t}, nil
}

func (h *HTML) Badge(w io.Writer, b Badge) error {
	return h.t.ExecuteTemplate(w, "badge", b)
}

func (h *HTML) CartTable(w io.Writer, t CartTable) error {
	return h.t.ExecuteTemplate(w, "cart_table", t)
}

func (h *HTML) CheckoutSummary(w io.Writer, s CheckoutSummary) error {
	return h.t.ExecuteTemplate(w, "checkout_summary", s)
}
