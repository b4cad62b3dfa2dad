package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/guardia-pa/guardia/pkg/auth"
	"github.com/guardia-pa/guardia/pkg/tui"
)

func loginCmd(a *app) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Autentica no sistema e guarda a sessão",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if email == "" {
				answer, err := a.driver.Input(ctx, tui.InputConfig{
					Message: "Email",
					Validator: func(s string) error {
						if strings.TrimSpace(s) == "" {
							return fmt.Errorf("email é obrigatório")
						}
						return nil
					},
				})
				if err != nil {
					return err
				}
				email = strings.TrimSpace(answer)
			}

			senha, err := a.driver.Password(ctx, tui.InputConfig{
				Message: "Senha",
				Validator: func(s string) error {
					if s == "" {
						return fmt.Errorf("senha é obrigatória")
					}
					return nil
				},
			})
			if err != nil {
				return err
			}

			token, err := a.client.Login(ctx, email, senha)
			if err != nil {
				return fmt.Errorf("erro ao fazer login: %w", err)
			}
			session, err := auth.NewSession(email, token)
			if err != nil {
				return err
			}
			if err := a.store.Save(email, token); err != nil {
				return err
			}
			a.session = session

			a.log.Infow("login", "email", email, "role", session.User().Role)
			return a.driver.Info(ctx, fmt.Sprintf("Autenticado como %s (%s).", email, session.User().Role))
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "email da conta")
	return cmd
}

func logoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Encerra a sessão atual",
		RunE: func(cmd *cobra.Command, args []string) error {
			a.session.Clear()
			if err := a.store.Clear(); err != nil {
				return err
			}
			return a.driver.Info(cmd.Context(), "Sessão encerrada.")
		},
	}
}
