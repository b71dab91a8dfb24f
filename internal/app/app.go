package app

import (
	"context"
	"errors"
	"flag"
	"io"

	"github.com/agbru/speedwatch/internal/cli"
	"github.com/agbru/speedwatch/internal/config"
	apperrors "github.com/agbru/speedwatch/internal/errors"
	"github.com/agbru/speedwatch/internal/growth"
	"github.com/agbru/speedwatch/internal/logging"
	"github.com/agbru/speedwatch/internal/routines"
	"github.com/agbru/speedwatch/internal/sysmon"
	"github.com/agbru/speedwatch/internal/ui"
)

// Application represents the speedwatch application instance.
type Application struct {
	Config    config.AppConfig
	Routines  *routines.Registry
	Limits    growth.Limits
	Sampler   sysmon.Sampler
	ErrWriter io.Writer
	logger    logging.Logger
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithRegistry sets the routines the application can time.
func WithRegistry(r *routines.Registry) AppOption {
	return func(a *Application) { a.Routines = r }
}

// WithLimits sets the floating-point limits estimates saturate at.
func WithLimits(l growth.Limits) AppOption {
	return func(a *Application) { a.Limits = l }
}

// WithSampler sets the system load sampler. A nil sampler skips the check.
func WithSampler(s sysmon.Sampler) AppOption {
	return func(a *Application) { a.Sampler = s }
}

// New creates a new Application instance by parsing command-line arguments.
// args[0] is the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{
		ErrWriter: errWriter,
		Limits:    growth.Float64Limits,
		Sampler:   sysmon.System,
	}
	for _, opt := range opts {
		opt(app)
	}
	if app.Routines == nil {
		app.Routines = routines.NewDefaultRegistry()
	}

	programName := "speedwatch"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, app.Routines.List())
	if err != nil {
		return nil, err
	}
	app.Config = cfg
	return app, nil
}

// Run executes the application based on the configured mode and returns the
// process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	ui.InitTheme(a.Config.NoColor)
	a.logger = logging.NewConsoleLogger(a.ErrWriter, "speedwatch", a.Config.LogLevel)

	if a.Config.List {
		return a.runList(out)
	}
	return a.runWatch(ctx, out)
}

// runList prints the available routines and models.
func (a *Application) runList(out io.Writer) int {
	models, err := growth.NewRegistry(a.Limits).Lookup("all")
	if err != nil {
		return cli.HandleError(err, a.ErrWriter)
	}
	cli.PrintCatalog(out, a.Routines, models)
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
