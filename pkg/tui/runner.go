package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/guardia-pa/guardia/pkg/form"
	"github.com/guardia-pa/guardia/pkg/questionnaire"
	"github.com/guardia-pa/guardia/pkg/validation"
)

const (
	actionNext     = "Próximo"
	actionPrevious = "Anterior"
	actionEdit     = "Editar campos desta etapa"
	actionFinish   = "Finalizar"
	actionCancel   = "Cancelar"
)

// maxSummarized caps how many violations print before the rest collapse
// into a counter line.
const maxSummarized = 3

// RunForm walks a form session in the terminal until it finishes, is
// cancelled or the user aborts. Each iteration prompts the current step's
// fields and then asks where to go; moving forward is gated on the
// controller's validation of the full aggregate.
func RunForm(ctx context.Context, driver PromptDriver, ctrl *form.Controller, reg questionnaire.Registry) error {
	for ctrl.Phase() == form.PhaseEditing {
		if err := ctx.Err(); err != nil {
			return err
		}

		step := ctrl.CurrentStep()
		header := fmt.Sprintf("%s — etapa %d de %d (%d%%)", step.Title, ctrl.StepIndex()+1, ctrl.StepCount(), ctrl.Progress())
		if err := driver.Info(ctx, header); err != nil {
			return err
		}

		seedDefaults(ctrl, reg, step.ID)

		prompter := NewStepPrompter(driver, reg.Fields(ctrl.Variant(), step.ID), ctrl.Data(), func(patch form.Record) {
			ctrl.UpdateData(patch)
		})
		if err := prompter.Run(ctx); err != nil {
			return err
		}

		action, err := driver.Select(ctx, SelectConfig{
			Message: "O que deseja fazer?",
			Options: availableActions(ctrl),
		})
		if err != nil {
			return err
		}

		switch actionAt(ctrl, action) {
		case actionNext:
			if !ctrl.Next() {
				showViolations(ctx, driver, ctrl)
			}
		case actionPrevious:
			ctrl.Previous()
		case actionEdit:
			// Loop back into the same step.
		case actionFinish:
			err := ctrl.Finish(ctx)
			switch {
			case err == nil:
				return driver.Info(ctx, "Questionário salvo com sucesso.")
			case errors.Is(err, form.ErrValidationBlocked):
				showViolations(ctx, driver, ctrl)
			default:
				// Submit failed; the session stays editable for a retry.
				if infoErr := driver.Info(ctx, "Erro ao salvar. Os dados foram mantidos, tente novamente."); infoErr != nil {
					return infoErr
				}
			}
		case actionCancel:
			if err := ctrl.Cancel(); err != nil {
				return err
			}
			return driver.Info(ctx, "Questionário cancelado.")
		}
	}
	return nil
}

// seedDefaults merges a step's boolean seeds for keys the aggregate does not
// hold yet, so untouched toggles still submit as explicit answers.
func seedDefaults(ctrl *form.Controller, reg questionnaire.Registry, stepID string) {
	defaults := reg.Defaults(ctrl.Variant(), stepID)
	if len(defaults) == 0 {
		return
	}
	patch := form.Record{}
	for key, value := range defaults {
		if _, ok := ctrl.Data()[key]; !ok {
			patch[key] = value
		}
	}
	if len(patch) > 0 {
		ctrl.UpdateData(patch)
	}
}

func availableActions(ctrl *form.Controller) []string {
	var actions []string
	if ctrl.StepIndex() == ctrl.StepCount()-1 {
		actions = append(actions, actionFinish)
	} else {
		actions = append(actions, actionNext)
	}
	if ctrl.StepIndex() > 0 {
		actions = append(actions, actionPrevious)
	}
	return append(actions, actionEdit, actionCancel)
}

func actionAt(ctrl *form.Controller, i int) string {
	actions := availableActions(ctrl)
	if i < 0 || i >= len(actions) {
		return actionCancel
	}
	return actions[i]
}

func showViolations(ctx context.Context, driver PromptDriver, ctrl *form.Controller) {
	violations := ctrl.Validate(ctrl.StepIndex())
	if len(violations) == 0 {
		return
	}
	_ = driver.Info(ctx, validation.Summarize(violations, maxSummarized))
}
