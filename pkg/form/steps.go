package form

// Variant identifies which questionnaire a form session belongs to. Each
// variant carries its own step sequence and validation rule sets.
type Variant string

const (
	VariantVictim Variant = "victim"
	VariantAuthor Variant = "author"
)

// StepRenderer maps the current aggregate data and a change sink to whatever
// surface presents the step. It is presentational; the controller never
// inspects it.
type StepRenderer func(data Record, onChange func(Record))

// Step describes one page of a multi-step form. Instances are built once at
// startup per variant and never mutated.
type Step struct {
	ID     string
	Title  string
	Icon   string
	Render StepRenderer
}
