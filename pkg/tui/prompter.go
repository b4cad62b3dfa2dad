package tui

import (
	"context"

	"github.com/guardia-pa/guardia/pkg/form"
	"github.com/guardia-pa/guardia/pkg/questionnaire"
)

// StepPrompter asks one step's questions and writes the answers through a
// per-step state store, so the controller only hears about effective changes.
type StepPrompter struct {
	driver PromptDriver
	store  *form.StateStore
	fields []questionnaire.Field
}

// NewStepPrompter seeds the prompter with the step's field inventory and a
// snapshot of the aggregate. onChange receives each effective patch.
func NewStepPrompter(driver PromptDriver, fields []questionnaire.Field, snapshot form.Record, onChange form.NotifyFunc) *StepPrompter {
	return &StepPrompter{
		driver: driver,
		store:  form.NewStateStore(snapshot, onChange),
		fields: fields,
	}
}

// Run prompts every visible field in order. Hidden fields (ShowWhen false
// against the current answers) are skipped, and visibility is re-evaluated
// after each answer so a trigger field reveals its dependents immediately.
func (p *StepPrompter) Run(ctx context.Context) error {
	for _, field := range p.fields {
		if field.ShowWhen != nil && !field.ShowWhen(p.store.Current()) {
			continue
		}
		value, err := p.ask(ctx, field)
		if err != nil {
			return err
		}
		p.store.Patch(form.Record{field.Name: value})
	}
	return nil
}

func (p *StepPrompter) ask(ctx context.Context, field questionnaire.Field) (any, error) {
	current := p.store.Current()[field.Name]

	switch field.Kind {
	case questionnaire.KindBool:
		def, _ := current.(bool)
		return p.driver.Confirm(ctx, ConfirmConfig{Message: field.Label, Default: def})

	case questionnaire.KindSelect:
		cfg := SelectConfig{Message: field.Label, Options: field.Options, DefaultIndex: -1}
		if cur, ok := current.(string); ok {
			cfg.DefaultIndex = indexOf(field.Options, cur)
		}
		i, err := p.driver.Select(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if i < 0 || i >= len(field.Options) {
			return "", nil
		}
		return field.Options[i], nil

	case questionnaire.KindMultiSelect:
		cfg := SelectConfig{Message: field.Label, Options: field.Options}
		if cur, ok := current.([]string); ok {
			cfg.Defaults = indicesOf(field.Options, cur)
		}
		indices, err := p.driver.MultiSelect(ctx, cfg)
		if err != nil {
			return nil, err
		}
		picked := make([]string, 0, len(indices))
		for _, i := range indices {
			if i >= 0 && i < len(field.Options) {
				picked = append(picked, field.Options[i])
			}
		}
		return picked, nil

	case questionnaire.KindTextArea:
		def, _ := current.(string)
		return p.driver.TextArea(ctx, TextAreaConfig{Message: field.Label, Default: def})

	default:
		// text, number, date and time all read as free input; the backend
		// stores them as strings.
		def, _ := current.(string)
		return p.driver.Input(ctx, InputConfig{Message: field.Label, Default: def, Help: kindHelp(field.Kind)})
	}
}

func kindHelp(kind questionnaire.FieldKind) string {
	switch kind {
	case questionnaire.KindDate:
		return "Formato: AAAA-MM-DD"
	case questionnaire.KindTime:
		return "Formato: HH:MM"
	case questionnaire.KindNumber:
		return "Somente números"
	}
	return ""
}
