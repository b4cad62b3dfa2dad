// Package questionnaire defines the two intake questionnaires of the unit:
// the victim form and the author form. Step sequences, field inventories and
// validation rule sets are fixed at build time; this package is the single
// registry the form controller and renderers resolve them from.
package questionnaire

// FieldKind tells a renderer which prompt or input a field needs.
type FieldKind string

const (
	KindText        FieldKind = "text"
	KindTextArea    FieldKind = "textarea"
	KindNumber      FieldKind = "number"
	KindDate        FieldKind = "date"
	KindTime        FieldKind = "time"
	KindBool        FieldKind = "bool"
	KindSelect      FieldKind = "select"
	KindMultiSelect FieldKind = "multiselect"
)

// Field describes one input of a step: its record key, display label, prompt
// kind and, for selects, the fixed option list. ShowWhen, when set, hides the
// field until the predicate over the aggregate data holds; it mirrors the
// conditional-requiredness predicates so a field only prompts when relevant.
type Field struct {
	Name     string
	Label    string
	Kind     FieldKind
	Options  []string
	ShowWhen func(data map[string]any) bool
}

// Shared option lists used across both variants.
var (
	presenceOptions  = []string{"PRESENTE", "AUSENTE", "ENDEREÇO NÃO LOCALIZADO", "MUDANÇA DE ENDEREÇO", "Outro"}
	municipalities   = []string{"BELÉM", "ANANINDEUA", "Outro"}
	visitingUnits    = []string{"GUARDA MUNICIPAL DE ANANINDEUA", "6º BPM", "29º BPM", "30º BPM", "Outro"}
	maritalStatuses  = []string{"CASADO(A)", "UNIÃO ESTÁVEL", "SOLTEIRO(A)", "DIVORCIADO(A)", "VIÚVO(A)", "Outro"}
	incomeOptions    = []string{"UM SALÁRIO", "MENOS DE UM SALÁRIO", "MAIS DE UM SALÁRIO", "NÃO DECLAROU"}
	genderOptions    = []string{"FEMININO", "MASCULINO"}
	violenceTypes    = []string{"FÍSICA", "PSICOLÓGICA", "SEXUAL", "PATRIMONIAL", "MORAL"}
	useFrequencies   = []string{"DIARIAMENTE", "SEMANALMENTE", "MENSALMENTE", "OCASIONALMENTE", "NÃO USA"}
	contactFrequency = []string{"DIARIAMENTE", "SEMANALMENTE", "MENSALMENTE", "OCASIONALMENTE", "NÃO HOUVE CONTATO"}
)

func eqString(field, want string) func(map[string]any) bool {
	return func(data map[string]any) bool {
		v, _ := data[field].(string)
		return v == want
	}
}

func isTrue(field string) func(map[string]any) bool {
	return func(data map[string]any) bool {
		v, _ := data[field].(bool)
		return v
	}
}

func isFalse(field string) func(map[string]any) bool {
	return func(data map[string]any) bool {
		v, _ := data[field].(bool)
		return !v
	}
}
