package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/philipparndt/cadoverlay/internal/config"
	"github.com/philipparndt/cadoverlay/internal/session"
	"github.com/philipparndt/cadoverlay/version"
	"github.com/spf13/cobra"
)

// newRootCmd builds the command tree
func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "cadoverlay",
		Short: "3D model viewer with auto-positioned annotation overlays",
		Long: `cadoverlay shows an STL model with annotation labels that follow their
anchor points on screen without overlapping, and windows pinned to a grid dock.`,
		Version:      version.GetVersion(),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("cadoverlay %s\n", version.GetFullVersion()))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newViewCmd())
	root.AddCommand(newPanelCmd())
	root.AddCommand(newSimulateCmd())
	root.AddCommand(newPinCmd())
	root.AddCommand(newUnpinCmd())
	root.AddCommand(newHideCmd())
	root.AddCommand(newShowCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// Execute runs the root command
func Execute() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openSession loads the scene file and opens a session for it
func openSession(cmd *cobra.Command, path string) (*session.Session, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return session.Open(cfg, loggerFromContext(cmd.Context()))
}
