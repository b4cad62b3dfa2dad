package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/guardia-pa/guardia/pkg/auth"
	"github.com/guardia-pa/guardia/pkg/form"
	"github.com/guardia-pa/guardia/pkg/report"
)

func reportCmd(a *app) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "report <victim|author> <id>",
		Short: "Gera o documento HTML de um atendimento",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requirePermission(auth.PermPrintReports); err != nil {
				return err
			}

			var variant form.Variant
			service := a.client.VictimQuestionnaires()
			switch args[0] {
			case "victim":
				variant = form.VariantVictim
			case "author":
				variant = form.VariantAuthor
				service = a.client.AuthorQuestionnaires()
			default:
				return fmt.Errorf("tipo desconhecido %q: use victim ou author", args[0])
			}

			record, err := service.Get(cmd.Context(), args[1])
			if err != nil {
				return err
			}
			html, err := report.New().Render(variant, record)
			if err != nil {
				return err
			}

			if out == "" {
				_, err = os.Stdout.Write(html)
				return err
			}
			if err := os.WriteFile(out, html, 0o644); err != nil {
				return err
			}
			fmt.Printf("Documento gravado em %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "arquivo de saída (padrão: stdout)")
	return cmd
}

func dashboardCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Mostra os indicadores agregados dos atendimentos",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requirePermission(auth.PermViewDashboard); err != nil {
				return err
			}
			ctx := cmd.Context()
			reports := a.client.Reports()

			months, err := reports.VictimsPerMonth(ctx)
			if err != nil {
				return err
			}
			fmt.Println("Vítimas por mês:")
			for _, bucket := range months {
				fmt.Printf("  %s: %d\n", bucket.Label, bucket.Count)
			}

			types, err := reports.ViolenceTypes(ctx)
			if err != nil {
				return err
			}
			fmt.Println("Tipos de violência:")
			for _, bucket := range types {
				fmt.Printf("  %s: %d\n", bucket.Label, bucket.Count)
			}

			municipalities, err := reports.AuthorsByMunicipality(ctx)
			if err != nil {
				return err
			}
			fmt.Println("Autores por município:")
			for _, bucket := range municipalities {
				fmt.Printf("  %s: %d\n", bucket.Label, bucket.Count)
			}

			avg, err := reports.AvgChildren(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("Média de filhos: vítimas %.1f, autores %.1f\n", avg.Victims, avg.Authors)

			housing, err := reports.HousingIncome(ctx)
			if err != nil {
				return err
			}
			fmt.Println("Moradia por faixa de renda:")
			for _, bucket := range housing {
				fmt.Printf("  %s / %s: %d\n", bucket.Housing, bucket.Income, bucket.Count)
			}

			ages, err := reports.AgeDistribution(ctx)
			if err != nil {
				return err
			}
			fmt.Println("Distribuição etária:")
			for _, bucket := range ages {
				fmt.Printf("  %s: vítimas %d, autores %d\n", bucket.Range, bucket.Victims, bucket.Authors)
			}
			return nil
		},
	}
}
