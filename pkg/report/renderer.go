// Package report renders questionnaire records into self-contained HTML
// printouts, one document per record.
package report

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/flosch/pongo2/v6"
	"github.com/microcosm-cc/bluemonday"

	"github.com/guardia-pa/guardia/pkg/form"
	"github.com/guardia-pa/guardia/pkg/questionnaire"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer turns records into printable documents. Construct with New.
type Renderer struct {
	mu        sync.Mutex
	set       *pongo2.TemplateSet
	templates map[string]*pongo2.Template
	registry  questionnaire.Registry
	policy    *bluemonday.Policy
	now       func() time.Time
}

// New builds a renderer with the embedded templates. Free-text answers are
// stripped of any markup before they reach the template.
func New() *Renderer {
	return &Renderer{
		set:       pongo2.NewSet("report", pongo2.NewFSLoader(templateFS)),
		templates: make(map[string]*pongo2.Template),
		policy:    bluemonday.StrictPolicy(),
		now:       time.Now,
	}
}

type row struct {
	Label string
	Value string
}

type section struct {
	Title string
	Rows  []row
}

// Render produces the printout for one record of the given variant.
func (r *Renderer) Render(variant form.Variant, record form.Record) ([]byte, error) {
	name, err := templateName(variant)
	if err != nil {
		return nil, err
	}
	tmpl, err := r.template(name)
	if err != nil {
		return nil, err
	}

	var sections []section
	for _, step := range r.registry.Steps(variant) {
		sec := section{Title: step.Title}
		for _, field := range r.registry.Fields(variant, step.ID) {
			if field.ShowWhen != nil && !field.ShowWhen(record) {
				continue
			}
			sec.Rows = append(sec.Rows, row{
				Label: field.Label,
				Value: r.formatValue(field, record[field.Name]),
			})
		}
		sections = append(sections, sec)
	}

	var buf bytes.Buffer
	err = tmpl.ExecuteWriter(pongo2.Context{
		"sections":  sections,
		"generated": r.now().Format("02/01/2006 15:04"),
	}, &buf)
	if err != nil {
		return nil, fmt.Errorf("report: render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

func templateName(variant form.Variant) (string, error) {
	switch variant {
	case form.VariantVictim:
		return "templates/victim.html", nil
	case form.VariantAuthor:
		return "templates/author.html", nil
	}
	return "", fmt.Errorf("report: unknown variant %q", variant)
}

func (r *Renderer) template(name string) (*pongo2.Template, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if tmpl, ok := r.templates[name]; ok {
		return tmpl, nil
	}
	tmpl, err := r.set.FromFile(name)
	if err != nil {
		return nil, fmt.Errorf("report: load template %q: %w", name, err)
	}
	r.templates[name] = tmpl
	return tmpl, nil
}

// formatValue flattens an answer for display. Unanswered fields show a dash
// so the printed form still lists every question.
func (r *Renderer) formatValue(field questionnaire.Field, value any) string {
	switch v := value.(type) {
	case nil:
		return "—"
	case bool:
		if v {
			return "Sim"
		}
		return "Não"
	case string:
		if v == "" {
			return "—"
		}
		if field.Kind == questionnaire.KindTextArea {
			return r.policy.Sanitize(v)
		}
		return v
	case []string:
		if len(v) == 0 {
			return "—"
		}
		return strings.Join(v, ", ")
	case []any:
		if len(v) == 0 {
			return "—"
		}
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, fmt.Sprint(item))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(v)
	}
}
