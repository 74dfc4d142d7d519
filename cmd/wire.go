package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/bnema/mindscreen-cli/internal/adapters/api/screening"
	"github.com/bnema/mindscreen-cli/internal/adapters/render/terminal"
	tomlsession "github.com/bnema/mindscreen-cli/internal/adapters/session/toml"
	"github.com/bnema/mindscreen-cli/internal/adapters/stream/socketio"
	"github.com/bnema/mindscreen-cli/internal/application"
	"github.com/bnema/mindscreen-cli/internal/config"
	"github.com/bnema/mindscreen-cli/internal/domain"
	"github.com/bnema/mindscreen-cli/internal/logger"
	"github.com/bnema/mindscreen-cli/internal/ports"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type app struct {
	cfg      config.Config
	log      *zap.Logger
	store    ports.SessionStore
	api      ports.ScreeningAPI
	form     domain.Form
	guard    *application.SessionGuard
	auth     *application.AuthService
	pipeline *application.PipelineService
	account  *application.AccountService
}

func wireApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.LogLevel, os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	sessionCfg := viper.New()
	if cfg.SessionPath != "" {
		sessionCfg.Set(tomlsession.SessionPathKey, cfg.SessionPath)
	}
	store, err := tomlsession.NewStore(sessionCfg)
	if err != nil {
		return nil, fmt.Errorf("wire session store: %w", err)
	}

	api, err := screening.NewClient(screening.Options{
		BaseURL: cfg.ServerURL,
		Timeout: cfg.RequestTimeout,
		Logger:  log.Named("api"),
	})
	if err != nil {
		return nil, fmt.Errorf("wire screening client: %w", err)
	}

	stream, err := socketio.NewClient(socketio.Options{
		URL:    cfg.SocketURL,
		Logger: log.Named("status"),
	})
	if err != nil {
		return nil, fmt.Errorf("wire status channel: %w", err)
	}

	return &app{
		cfg:      cfg,
		log:      log,
		store:    store,
		api:      api,
		form:     domain.ScreeningForm(),
		guard:    application.NewSessionGuard(store, log.Named("session")),
		auth:     application.NewAuthService(api, store, ports.SystemClock{}, log.Named("auth")),
		pipeline: application.NewPipelineService(api, stream, log.Named("pipeline"), application.WithDrainWindow(cfg.StatusDrain)),
		account:  application.NewAccountService(api, log.Named("account")),
	}, nil
}

func (a *app) close() {
	_ = logger.Sync(a.log)
}

type viewOptions struct {
	suppressResult bool
	animate        bool
}

func newView(cmd *cobra.Command, opts viewOptions) *terminal.View {
	errOut := cmd.ErrOrStderr()
	return terminal.New(terminal.Options{
		Out:            cmd.OutOrStdout(),
		ErrOut:         errOut,
		SuppressResult: opts.suppressResult,
		Animate:        opts.animate && isTerminal(errOut),
	})
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
