package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/guardia-pa/guardia/pkg/api"
	"github.com/guardia-pa/guardia/pkg/auth"
	"github.com/guardia-pa/guardia/pkg/tui"
)

func usersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Gerencia as contas de operadores",
	}
	cmd.AddCommand(usersListCmd(a), usersCreateCmd(a), usersDeleteCmd(a))
	return cmd
}

func usersListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lista as contas cadastradas",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requirePermission(auth.PermReadUser); err != nil {
				return err
			}
			users, err := a.client.Users().List(cmd.Context())
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNOME\tEMAIL\tPERFIL")
			for _, user := range users {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", user.ID, user.Nome, user.Email, user.Role)
			}
			return tw.Flush()
		},
	}
}

func usersCreateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Cadastra uma nova conta",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requirePermission(auth.PermCreateUser); err != nil {
				return err
			}
			ctx := cmd.Context()

			nome, err := a.driver.Input(ctx, tui.InputConfig{Message: "Nome", Validator: required("nome")})
			if err != nil {
				return err
			}
			email, err := a.driver.Input(ctx, tui.InputConfig{Message: "Email", Validator: required("email")})
			if err != nil {
				return err
			}
			senha, err := a.driver.Password(ctx, tui.InputConfig{Message: "Senha", Validator: required("senha")})
			if err != nil {
				return err
			}
			roles := []string{string(auth.RoleUser), string(auth.RoleAdmin), string(auth.RoleSuperAdmin)}
			roleIdx, err := a.driver.Select(ctx, tui.SelectConfig{Message: "Perfil", Options: roles})
			if err != nil {
				return err
			}
			if roleIdx < 0 {
				roleIdx = 0
			}

			user, err := a.client.Users().Create(ctx, api.User{
				Nome:  strings.TrimSpace(nome),
				Email: strings.TrimSpace(email),
				Senha: senha,
				Role:  roles[roleIdx],
			})
			if err != nil {
				return err
			}
			a.log.Infow("user created", "id", user.ID, "role", user.Role)
			return a.driver.Info(ctx, fmt.Sprintf("Conta %s criada.", user.Email))
		},
	}
}

func usersDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Exclui uma conta",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requirePermission(auth.PermDeleteUser); err != nil {
				return err
			}
			ctx := cmd.Context()
			ok, err := a.driver.Confirm(ctx, tui.ConfirmConfig{Message: "Tem certeza que deseja excluir este usuário?"})
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("Exclusão cancelada.")
				return nil
			}
			if err := a.client.Users().Delete(ctx, args[0]); err != nil {
				return err
			}
			return a.driver.Info(ctx, "Usuário excluído com sucesso.")
		},
	}
}

func required(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s é obrigatório", name)
		}
		return nil
	}
}
