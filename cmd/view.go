package cmd

import (
	"github.com/philipparndt/cadoverlay/internal/app"
	"github.com/spf13/cobra"
)

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view <scene.toml>",
		Short: "Open the scene in the raylib viewer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, args[0])
			if err != nil {
				return err
			}
			defer s.Close()
			return app.Run(s, loggerFromContext(cmd.Context()))
		},
	}
}

func newPanelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "panel <scene.toml>",
		Short: "Open the scene in the fyne panel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, args[0])
			if err != nil {
				return err
			}
			defer s.Close()
			return app.RunPanel(s, loggerFromContext(cmd.Context()))
		},
	}
}
