package form

import (
	"context"
	"errors"
	"math"

	"github.com/guardia-pa/guardia/pkg/validation"
)

// Phase is the controller's position in its lifecycle.
type Phase string

const (
	PhaseEditing    Phase = "editing"
	PhaseSubmitting Phase = "submitting"
	PhaseDone       Phase = "done"
	PhaseCancelled  Phase = "cancelled"
)

var (
	// ErrValidationBlocked is returned by Finish when the last step still has
	// violations. The violations themselves go through the Notify callback.
	ErrValidationBlocked = errors.New("form: validation blocked submission")

	// ErrNoCancelHandler is returned by Cancel when the session was opened
	// without one.
	ErrNoCancelHandler = errors.New("form: no cancel handler configured")

	errNoSteps     = errors.New("form: controller requires at least one step")
	errNotEditing  = errors.New("form: session is no longer editable")
	errNilOnSubmit = errors.New("form: controller requires an OnSubmit callback")
	errNilRuleSrc  = errors.New("form: controller requires a rule source")
	errBadVariant  = errors.New("form: controller requires a variant")
)

// RuleSource resolves the validation rule set for a step of a variant. A
// false return means no rules apply to that step and validation passes
// trivially; unknown step ids are deliberately permissive.
type RuleSource interface {
	Rules(variant Variant, stepID string) (validation.RuleSet, bool)
}

// SubmitFunc persists the finished aggregate. The controller treats a
// returned error as retryable: the session drops back to editing with its
// data intact.
type SubmitFunc func(ctx context.Context, data Record) error

// Config wires a Controller. Steps, Rules and OnSubmit are mandatory.
type Config struct {
	Variant     Variant
	Steps       []Step
	Rules       RuleSource
	InitialData Record
	EditingID   string // empty for create, record id for edit
	OnSubmit    SubmitFunc
	OnCancel    func()
	Notify      func(violations []string)
}

// Controller drives one form session: it owns the aggregate record, tracks
// the step position and gates every forward transition on validation of the
// full cross-step aggregate.
type Controller struct {
	cfg   Config
	phase Phase
	step  int
	data  Record
}

// NewController opens a session in editing(0).
func NewController(cfg Config) (*Controller, error) {
	if len(cfg.Steps) == 0 {
		return nil, errNoSteps
	}
	if cfg.OnSubmit == nil {
		return nil, errNilOnSubmit
	}
	if cfg.Rules == nil {
		return nil, errNilRuleSrc
	}
	if cfg.Variant == "" {
		return nil, errBadVariant
	}
	return &Controller{
		cfg:   cfg,
		phase: PhaseEditing,
		data:  Clone(cfg.InitialData),
	}, nil
}

func (c *Controller) Phase() Phase     { return c.phase }
func (c *Controller) StepIndex() int   { return c.step }
func (c *Controller) StepCount() int   { return len(c.cfg.Steps) }
func (c *Controller) Variant() Variant { return c.cfg.Variant }

// EditingID reports the record id being edited; empty means a create session.
func (c *Controller) EditingID() string { return c.cfg.EditingID }

// CurrentStep returns the descriptor for the active step.
func (c *Controller) CurrentStep() Step {
	return c.cfg.Steps[c.step]
}

// Data returns the live aggregate record. Callers must treat it as read-only
// and go through UpdateData for changes.
func (c *Controller) Data() Record {
	return c.data
}

// Progress is derived, never stored: percentage of steps entered so far.
func (c *Controller) Progress() int {
	return int(math.Round(100 * float64(c.step+1) / float64(len(c.cfg.Steps))))
}

// UpdateData merges patch into the aggregate unconditionally. This is the
// terminal sink for step edits, so no equality gate applies here; the gate
// lives in the per-step StateStore that calls it.
func (c *Controller) UpdateData(patch Record) {
	c.data = Merge(c.data, patch)
}

// Validate evaluates the rule set of step i against the full aggregate. A
// step with no registered rule set validates clean.
func (c *Controller) Validate(i int) []string {
	if i < 0 || i >= len(c.cfg.Steps) {
		return nil
	}
	rs, ok := c.cfg.Rules.Rules(c.cfg.Variant, c.cfg.Steps[i].ID)
	if !ok {
		return nil
	}
	return validation.Evaluate(rs, c.data)
}

// Next advances to the following step when the current one validates clean.
// Violations are surfaced through Notify and the position is left unchanged.
func (c *Controller) Next() bool {
	if c.phase != PhaseEditing {
		return false
	}
	if violations := c.Validate(c.step); len(violations) > 0 {
		c.surface(violations)
		return false
	}
	if c.step+1 >= len(c.cfg.Steps) {
		return false
	}
	c.step++
	return true
}

// Previous steps back unconditionally; going back never validates.
func (c *Controller) Previous() bool {
	if c.phase != PhaseEditing || c.step == 0 {
		return false
	}
	c.step--
	return true
}

// Finish validates the last step and hands the aggregate to OnSubmit. On
// submit failure the session returns to editing so the data survives for a
// retry; on success the session is done and its data is owned by the caller.
func (c *Controller) Finish(ctx context.Context) error {
	if c.phase != PhaseEditing {
		return errNotEditing
	}
	if violations := c.Validate(c.step); len(violations) > 0 {
		c.surface(violations)
		return ErrValidationBlocked
	}
	c.phase = PhaseSubmitting
	if err := c.cfg.OnSubmit(ctx, c.data); err != nil {
		c.phase = PhaseEditing
		return err
	}
	c.phase = PhaseDone
	return nil
}

// Cancel discards the aggregate and closes the session. It only applies when
// a cancel handler was supplied at construction.
func (c *Controller) Cancel() error {
	if c.phase != PhaseEditing {
		return errNotEditing
	}
	if c.cfg.OnCancel == nil {
		return ErrNoCancelHandler
	}
	c.phase = PhaseCancelled
	c.data = Record{}
	c.cfg.OnCancel()
	return nil
}

// Reset replaces the aggregate wholesale with a new record to edit and
// returns the session to the first step. A record swap never keeps the old
// step position.
func (c *Controller) Reset(initial Record) {
	if c.phase != PhaseEditing {
		return
	}
	c.data = Clone(initial)
	c.step = 0
}

func (c *Controller) surface(violations []string) {
	if c.cfg.Notify != nil {
		c.cfg.Notify(violations)
	}
}
