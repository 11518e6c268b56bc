package cli

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/specialistvlad/assetpath/internal/app"
	"github.com/specialistvlad/assetpath/internal/catalog/hclcatalog"
)

// command holds the state shared by the command tree during one execution.
type command struct {
	outW    io.Writer
	errW    io.Writer
	envFile string
	cfg     app.Config
	app     *app.App
}

// Execute runs the command line given by args. Help output and command
// results go to outW, logs to errW. The returned error, if any, is an
// *ExitError.
func Execute(ctx context.Context, args []string, outW, errW io.Writer) error {
	root := NewRootCommand(outW, errW)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		return toExitError(err)
	}
	return nil
}

// NewRootCommand builds the assetpath command tree.
func NewRootCommand(outW, errW io.Writer) *cobra.Command {
	c := &command{outW: outW, errW: errW}

	root := &cobra.Command{
		Use:   "assetpath",
		Short: "Resolve declared asset identifiers into URLs.",
		Long: `assetpath resolves asset identifiers declared in a catalog of nested
groups into fully qualified URLs.

Without --catalog the built-in catalog is used. Flags can also be supplied
through ASSETPATH_* environment variables or a .env file.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}
	root.SetOut(outW)
	root.SetErr(errW)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	flags := root.PersistentFlags()
	flags.StringVar(&c.cfg.CatalogPath, "catalog", "", "Path to a catalog .hcl file or directory. Empty uses the built-in catalog.")
	flags.StringVar(&c.cfg.BaseURL, "base-url", "", "Override the base URL prepended to every resolved path.")
	flags.StringVar(&c.envFile, "env-file", "", "Load environment variables from this file (default ./.env when present).")
	flags.StringVar(&c.cfg.LogFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")
	flags.StringVar(&c.cfg.LogLevel, "log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	root.AddCommand(c.newResolveCommand(), c.newListCommand(), c.newServeCommand())
	return root
}

// setup loads the environment, validates the configuration and builds the
// application before any subcommand runs.
func (c *command) setup(cmd *cobra.Command, _ []string) error {
	if err := app.LoadEnvFile(c.envFile); err != nil {
		return usageError(err)
	}
	if err := bindEnv(cmd.Flags()); err != nil {
		return usageError(err)
	}

	c.cfg.LogFormat = strings.ToLower(c.cfg.LogFormat)
	c.cfg.LogLevel = strings.ToLower(c.cfg.LogLevel)
	cfg, err := app.NewConfig(c.cfg)
	if err != nil {
		return usageError(err)
	}

	a, err := app.NewApp(cmd.Context(), c.outW, c.errW, cfg, hclcatalog.NewLoader())
	if err != nil {
		return err
	}
	a.Logger().Debug("CLI setup finished.", "command", cmd.Name())
	c.app = a
	return nil
}

func minArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < n {
			return usageError(errors.New(cmd.Name() + ": requires at least one asset identifier"))
		}
		return nil
	}
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usageError(errors.New(cmd.Name() + ": unexpected arguments: " + strings.Join(args, " ")))
	}
	return nil
}
