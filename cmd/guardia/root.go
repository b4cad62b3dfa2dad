package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/guardia-pa/guardia/internal/config"
	"github.com/guardia-pa/guardia/pkg/api"
	"github.com/guardia-pa/guardia/pkg/auth"
	"github.com/guardia-pa/guardia/pkg/tui"
)

// app holds the wired collaborators shared by every subcommand. It is built
// once per invocation, after flags are parsed.
type app struct {
	cfg     config.Config
	log     *zap.SugaredLogger
	store   *auth.FileStore
	session *auth.Session
	client  *api.Client
	driver  tui.PromptDriver
}

func rootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "guardia",
		Short: "Sistema de atendimento da Patrulha Maria da Penha",
		Long: `Guardia registra os questionários de atendimento a vítimas e autores
de violência doméstica, gerencia as contas de operadores e imprime os
documentos de cada atendimento.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath(), "caminho do arquivo de configuração")

	a := &app{}
	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return a.init(configPath)
	}
	cmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		if a.log != nil {
			_ = a.log.Sync()
		}
	}

	cmd.AddCommand(
		loginCmd(a),
		logoutCmd(a),
		questionnaireCmd(a, victimWiring),
		questionnaireCmd(a, authorWiring),
		usersCmd(a),
		reportCmd(a),
		dashboardCmd(a),
	)
	return cmd
}

func (a *app) init(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		return err
	}
	a.log = logger.Sugar()

	tokenFile := cfg.TokenFile
	if tokenFile == "" {
		tokenFile = filepath.Join(filepath.Dir(defaultConfigPath()), "credentials.json")
	}
	a.store = auth.NewFileStore(tokenFile)
	if session, err := a.store.Load(); err == nil {
		a.session = session
	}

	a.client = api.NewClient(cfg.APIBaseURL,
		api.WithTimeout(cfg.Timeout),
		api.WithLogger(a.log),
		api.WithTokenSource(api.TokenFunc(func() string { return a.session.Token() })),
		api.WithOnUnauthorized(func() {
			a.session.Clear()
			_ = a.store.Clear()
			fmt.Fprintln(os.Stderr, "Sessão expirada. Faça login novamente.")
		}),
	)
	a.driver = tui.NewSurveyDriver()
	return nil
}

// requirePermission gates a command on the stored session.
func (a *app) requirePermission(p auth.Permission) error {
	if !a.session.IsAuthenticated() {
		return fmt.Errorf("não autenticado: execute 'guardia login'")
	}
	if !a.session.HasPermission(p) {
		return fmt.Errorf("seu perfil não tem permissão para esta ação")
	}
	return nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".config", "guardia", "config.yaml")
}
