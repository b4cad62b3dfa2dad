package questionnaire

import (
	"github.com/guardia-pa/guardia/pkg/form"
	"github.com/guardia-pa/guardia/pkg/validation"
)

// ruleSpec is the authoring shape for one step's rules. Conditionals carry
// the trigger field their predicate reads so the registry test can prove the
// invariant that every predicate input is populatable by some step of the
// same variant.
type ruleSpec struct {
	required    []validation.Required
	conditional []conditionalSpec
}

type conditionalSpec struct {
	field   string
	trigger string
	when    validation.Condition
}

func (s ruleSpec) ruleSet() validation.RuleSet {
	rs := validation.RuleSet{Required: s.required}
	for _, c := range s.conditional {
		rs.Conditional = append(rs.Conditional, validation.Conditional{Field: c.field, When: c.when})
	}
	return rs
}

// Registry resolves step sequences, field inventories and rule sets for both
// form variants. The zero value is ready to use.
type Registry struct{}

var _ form.RuleSource = Registry{}

// Steps returns the ordered step descriptors of a variant.
func (Registry) Steps(variant form.Variant) []form.Step {
	switch variant {
	case form.VariantVictim:
		return victimSteps
	case form.VariantAuthor:
		return authorSteps
	}
	return nil
}

// Fields returns the inputs of one step, in display order.
func (Registry) Fields(variant form.Variant, stepID string) []Field {
	switch variant {
	case form.VariantVictim:
		return victimFields[stepID]
	case form.VariantAuthor:
		return authorFields[stepID]
	}
	return nil
}

// Defaults returns the boolean seed values merged into the aggregate when a
// step is first shown.
func (Registry) Defaults(variant form.Variant, stepID string) form.Record {
	var defaults map[string]any
	switch variant {
	case form.VariantVictim:
		defaults = victimDefaults[stepID]
	case form.VariantAuthor:
		defaults = authorDefaults[stepID]
	}
	if len(defaults) == 0 {
		return nil
	}
	out := make(form.Record, len(defaults))
	for k, v := range defaults {
		out[k] = v
	}
	return out
}

// Rules implements form.RuleSource. Steps without a registered rule set
// report false and validate trivially.
func (Registry) Rules(variant form.Variant, stepID string) (validation.RuleSet, bool) {
	var spec ruleSpec
	var ok bool
	switch variant {
	case form.VariantVictim:
		spec, ok = victimRules[stepID]
	case form.VariantAuthor:
		spec, ok = authorRules[stepID]
	}
	if !ok {
		return validation.RuleSet{}, false
	}
	return spec.ruleSet(), true
}

func ruleSpecs(variant form.Variant) map[string]ruleSpec {
	switch variant {
	case form.VariantVictim:
		return victimRules
	case form.VariantAuthor:
		return authorRules
	}
	return nil
}
