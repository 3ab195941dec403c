package cli

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/smarttravellers/tripplanner/internal/config"
	"github.com/spf13/cobra"
)

const defaultConfigPath = "./config/application.yaml"

type rootOptions struct {
	configPath string
}

func (o *rootOptions) loadConfig() (config.Application, error) {
	return config.Load(o.configPath)
}

// NewRootCmd creates the top-level "tripplanner" command with the serve and plan subcommands.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "tripplanner",
		Short:         "Plan themed trips within a budget",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", defaultConfigPath, "Path to the YAML configuration file")

	root.AddCommand(
		newServeCmd(opts),
		newPlanCmd(opts),
	)
	return root
}

// isTerminal reports whether w writes to an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
