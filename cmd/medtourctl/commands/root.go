package commands

import (
	"medtour/internal/utils"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the medtourctl command tree
func NewRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:          "medtourctl",
		Short:        "Operate the medical travel catalog",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return utils.SetupLogger(logLevel, "text")
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(seedCmd(), linkCmd(), slidesCmd())
	return root
}

func Execute() error {
	return NewRootCmd().Execute()
}
