package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/guardia-pa/guardia/pkg/api"
	"github.com/guardia-pa/guardia/pkg/auth"
	"github.com/guardia-pa/guardia/pkg/form"
	"github.com/guardia-pa/guardia/pkg/listing"
	"github.com/guardia-pa/guardia/pkg/questionnaire"
	"github.com/guardia-pa/guardia/pkg/tui"
)

// questionnaireWiring parameterizes the victim and author command trees,
// which differ only in collection, field names and permissions.
type questionnaireWiring struct {
	use       string
	short     string
	label     string
	variant   form.Variant
	service   func(*api.Client) *api.QuestionnaireService
	nameField string
	idFields  []string

	permRead   auth.Permission
	permCreate auth.Permission
	permUpdate auth.Permission
	permDelete auth.Permission
}

var victimWiring = questionnaireWiring{
	use:        "victims",
	short:      "Questionários de atendimento à vítima",
	label:      "atendimento",
	variant:    form.VariantVictim,
	service:    (*api.Client).VictimQuestionnaires,
	nameField:  "victimName",
	idFields:   []string{"cpf", "rg"},
	permRead:   auth.PermReadVictim,
	permCreate: auth.PermCreateVictim,
	permUpdate: auth.PermUpdateVictim,
	permDelete: auth.PermDeleteVictim,
}

var authorWiring = questionnaireWiring{
	use:        "authors",
	short:      "Questionários de atendimento ao autor",
	label:      "atendimento",
	variant:    form.VariantAuthor,
	service:    (*api.Client).AuthorQuestionnaires,
	nameField:  "authorName",
	idFields:   []string{"authorCPF", "authorRG"},
	permRead:   auth.PermReadAuthor,
	permCreate: auth.PermCreateAuthor,
	permUpdate: auth.PermUpdateAuthor,
	permDelete: auth.PermDeleteAuthor,
}

func questionnaireCmd(a *app, w questionnaireWiring) *cobra.Command {
	cmd := &cobra.Command{
		Use:   w.use,
		Short: w.short,
	}
	cmd.AddCommand(
		questionnaireListCmd(a, w),
		questionnaireSearchCmd(a, w),
		questionnaireNewCmd(a, w),
		questionnaireEditCmd(a, w),
		questionnaireDeleteCmd(a, w),
	)
	return cmd
}

func (w questionnaireWiring) newListController(a *app) (*listing.Controller[form.Record], error) {
	return listing.NewController(listing.Config[form.Record]{
		Store:       w.service(a.client),
		ID:          api.RecordID,
		Match:       listing.RecordMatcher(w.nameField, w.idFields...),
		Confirm:     confirmVia(a.driver),
		Notify:      stdoutNotifier{},
		Log:         a.log,
		PageSize:    a.cfg.PageSize,
		EntityLabel: w.label,
	})
}

func questionnaireListCmd(a *app, w questionnaireWiring) *cobra.Command {
	var page int
	var term string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Lista os questionários registrados",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requirePermission(w.permRead); err != nil {
				return err
			}
			ctrl, err := w.newListController(a)
			if err != nil {
				return err
			}
			if err := ctrl.FetchAll(cmd.Context()); err != nil {
				return err
			}
			ctrl.Search(term)
			for i := 1; i < page && ctrl.PageNumber() < ctrl.TotalPages(); i++ {
				ctrl.NextPage()
			}
			printRecords(w, ctrl.CurrentPage())
			fmt.Printf("Página %d de %d (%d registros)\n", ctrl.PageNumber(), ctrl.TotalPages(), len(ctrl.Visible()))
			return nil
		},
	}
	cmd.Flags().IntVarP(&page, "page", "p", 1, "página a exibir")
	cmd.Flags().StringVarP(&term, "search", "s", "", "filtra por nome, CPF ou RG")
	return cmd
}

func questionnaireSearchCmd(a *app, w questionnaireWiring) *cobra.Command {
	var cpf, rg string

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Busca no servidor por CPF ou RG",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requirePermission(w.permRead); err != nil {
				return err
			}
			if cpf == "" && rg == "" {
				return fmt.Errorf("informe --cpf ou --rg")
			}
			records, err := w.service(a.client).SearchByDocument(cmd.Context(), cpf, rg)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Println("Nenhum registro encontrado.")
				return nil
			}
			printRecords(w, records)
			return nil
		},
	}
	cmd.Flags().StringVar(&cpf, "cpf", "", "CPF a buscar")
	cmd.Flags().StringVar(&rg, "rg", "", "RG a buscar")
	return cmd
}

func questionnaireNewCmd(a *app, w questionnaireWiring) *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Registra um novo questionário",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requirePermission(w.permCreate); err != nil {
				return err
			}
			return w.runForm(cmd.Context(), a, nil, "")
		},
	}
}

func questionnaireEditCmd(a *app, w questionnaireWiring) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <id>",
		Short: "Edita um questionário existente",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requirePermission(w.permUpdate); err != nil {
				return err
			}
			record, err := w.service(a.client).Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return w.runForm(cmd.Context(), a, record, args[0])
		},
	}
}

func questionnaireDeleteCmd(a *app, w questionnaireWiring) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Exclui um questionário",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requirePermission(w.permDelete); err != nil {
				return err
			}
			ctrl, err := w.newListController(a)
			if err != nil {
				return err
			}
			err = ctrl.Remove(cmd.Context(), args[0])
			if errors.Is(err, listing.ErrRemovalDeclined) {
				fmt.Println("Exclusão cancelada.")
				return nil
			}
			return err
		},
	}
}

// runForm opens a form session over the terminal. A non-empty editingID
// switches the submit path to an update of that record.
func (w questionnaireWiring) runForm(ctx context.Context, a *app, initial form.Record, editingID string) error {
	reg := questionnaire.Registry{}
	service := w.service(a.client)

	ctrl, err := form.NewController(form.Config{
		Variant:     w.variant,
		Steps:       reg.Steps(w.variant),
		Rules:       reg,
		InitialData: initial,
		EditingID:   editingID,
		OnSubmit: func(ctx context.Context, data form.Record) error {
			if editingID != "" {
				_, err := service.Update(ctx, editingID, data)
				return err
			}
			_, err := service.Create(ctx, data)
			return err
		},
		OnCancel: func() {
			a.log.Infow("form cancelled", "variant", w.variant, "editing", editingID)
		},
	})
	if err != nil {
		return err
	}
	return tui.RunForm(ctx, a.driver, ctrl, reg)
}

func printRecords(w questionnaireWiring, records []form.Record) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNOME\tDOCUMENTOS")
	for _, record := range records {
		name, _ := record[w.nameField].(string)
		docs := ""
		for _, field := range w.idFields {
			if doc, ok := record[field].(string); ok && doc != "" {
				if docs != "" {
					docs += " / "
				}
				docs += doc
			}
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", api.RecordID(record), name, docs)
	}
	_ = tw.Flush()
}

// confirmVia adapts the prompt driver to the listing confirmer.
func confirmVia(driver tui.PromptDriver) listing.Confirmer {
	return listing.ConfirmerFunc(func(prompt string) (bool, error) {
		return driver.Confirm(context.Background(), tui.ConfirmConfig{Message: prompt})
	})
}

type stdoutNotifier struct{}

func (stdoutNotifier) Success(msg string) { fmt.Println(msg) }
func (stdoutNotifier) Error(msg string)   { fmt.Fprintln(os.Stderr, msg) }
