package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/guardia-pa/guardia/pkg/form"
	"github.com/guardia-pa/guardia/pkg/questionnaire"
)

var errTest = errors.New("backend offline")

func newVictimController(t *testing.T, onSubmit form.SubmitFunc) *form.Controller {
	t.Helper()
	reg := questionnaire.Registry{}
	ctrl, err := form.NewController(form.Config{
		Variant:  form.VariantVictim,
		Steps:    reg.Steps(form.VariantVictim),
		Rules:    reg,
		OnSubmit: onSubmit,
		OnCancel: func() {},
	})
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	return ctrl
}

func TestRunFormBlocksOnViolationsThenCancels(t *testing.T) {
	driver := &scriptDriver{
		selectFallback: -1,
		// First menu choice tries to advance with everything blank, the
		// second cancels. Step 0 actions: next, edit, cancel.
		menuQueue: []int{0, 2},
	}
	ctrl := newVictimController(t, func(context.Context, form.Record) error {
		t.Fatal("submit must not run")
		return nil
	})

	if err := RunForm(context.Background(), driver, ctrl, questionnaire.Registry{}); err != nil {
		t.Fatalf("RunForm: %v", err)
	}

	if ctrl.Phase() != form.PhaseCancelled {
		t.Fatalf("phase = %s, want cancelled", ctrl.Phase())
	}

	var sawSummary, sawCancelled bool
	for _, msg := range driver.infos {
		if strings.Contains(msg, "campos obrigatórios não preenchidos") {
			sawSummary = true
		}
		if strings.Contains(msg, "cancelado") {
			sawCancelled = true
		}
	}
	if !sawSummary {
		t.Fatalf("expected a violation summary, infos: %q", driver.infos)
	}
	if !sawCancelled {
		t.Fatalf("expected a cancellation notice, infos: %q", driver.infos)
	}
}

func TestRunFormCompletesVictimQuestionnaire(t *testing.T) {
	driver := &scriptDriver{
		selectFallback: 0,
		inputs: map[string]string{
			"Data da Visita":     "2025-02-12",
			"Hora da Visita":     "14:30",
			"Nome da Vítima":     "Maria da Silva",
			"Data de Nascimento": "1990-05-01",
			"Nome do Autor":      "José",
			"Endereço do Autor":  "Rua das Acácias, 12",
			"Perímetro":          "Centro",
		},
		confirms: map[string]bool{
			"Medidas protetivas estão sendo cumpridas?": true,
		},
		// Advance through the three leading steps, then finish.
		menuQueue: []int{0, 0, 0, 0},
	}

	var submitted form.Record
	ctrl := newVictimController(t, func(_ context.Context, data form.Record) error {
		submitted = data
		return nil
	})

	if err := RunForm(context.Background(), driver, ctrl, questionnaire.Registry{}); err != nil {
		t.Fatalf("RunForm: %v", err)
	}

	if ctrl.Phase() != form.PhaseDone {
		t.Fatalf("phase = %s, want done", ctrl.Phase())
	}
	if submitted["victimName"] != "Maria da Silva" {
		t.Fatalf("submitted victimName = %v", submitted["victimName"])
	}
	if submitted["municipality"] != "BELÉM" {
		t.Fatalf("submitted municipality = %v", submitted["municipality"])
	}
	// Untouched boolean seeds submit as explicit false answers.
	if submitted["hasChildren"] != false {
		t.Fatalf("hasChildren = %v, want false", submitted["hasChildren"])
	}

	var sawSaved bool
	for _, msg := range driver.infos {
		if strings.Contains(msg, "salvo com sucesso") {
			sawSaved = true
		}
	}
	if !sawSaved {
		t.Fatalf("expected a success notice, infos: %q", driver.infos)
	}
}

func TestRunFormSubmitFailureKeepsSession(t *testing.T) {
	attempts := 0
	driver := &scriptDriver{
		selectFallback: 0,
		inputs: map[string]string{
			"Data da Visita":     "2025-02-12",
			"Hora da Visita":     "14:30",
			"Nome da Vítima":     "Maria",
			"Data de Nascimento": "1990-05-01",
			"Nome do Autor":      "José",
			"Endereço do Autor":  "Rua X",
			"Perímetro":          "Centro",
		},
		confirms: map[string]bool{
			"Medidas protetivas estão sendo cumpridas?": true,
		},
		// Next, next, next, finish (fails), finish again (succeeds).
		menuQueue: []int{0, 0, 0, 0, 0},
	}

	ctrl := newVictimController(t, func(context.Context, form.Record) error {
		attempts++
		if attempts == 1 {
			return errTest
		}
		return nil
	})

	if err := RunForm(context.Background(), driver, ctrl, questionnaire.Registry{}); err != nil {
		t.Fatalf("RunForm: %v", err)
	}
	if attempts != 2 {
		t.Fatalf("attempts = %d, want 2", attempts)
	}
	if ctrl.Phase() != form.PhaseDone {
		t.Fatalf("phase = %s, want done", ctrl.Phase())
	}

	var sawRetryNotice bool
	for _, msg := range driver.infos {
		if strings.Contains(msg, "tente novamente") {
			sawRetryNotice = true
		}
	}
	if !sawRetryNotice {
		t.Fatalf("expected a retry notice, infos: %q", driver.infos)
	}
}

func TestRunFormPreviousRevisits(t *testing.T) {
	driver := &scriptDriver{
		selectFallback: 0,
		inputs: map[string]string{
			"Data da Visita": "2025-02-12",
			"Hora da Visita": "14:30",
		},
		// Advance to step 2, go back, then cancel. Step 1 actions:
		// next, previous, edit, cancel. Step 0 actions: next, edit, cancel.
		menuQueue: []int{0, 1, 2},
	}

	ctrl := newVictimController(t, func(context.Context, form.Record) error { return nil })
	if err := RunForm(context.Background(), driver, ctrl, questionnaire.Registry{}); err != nil {
		t.Fatalf("RunForm: %v", err)
	}
	if ctrl.Phase() != form.PhaseCancelled {
		t.Fatalf("phase = %s, want cancelled", ctrl.Phase())
	}
}
