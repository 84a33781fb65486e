package cmd

import (
	"github.com/philipparndt/cadoverlay/internal/annotation"
	"github.com/spf13/cobra"
)

func newPinCmd() *cobra.Command {
	var ticks int

	cmd := &cobra.Command{
		Use:   "pin <scene.toml> <uid>",
		Short: "Pin an annotation label as a window where it currently floats",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkTicks(ticks); err != nil {
				return err
			}
			s, err := openSession(cmd, args[0])
			if err != nil {
				return err
			}
			defer s.Close()

			uid := args[1]
			if err := s.Settle(cmd.Context(), ticks, nil); err != nil {
				return err
			}
			if err := s.Pin(uid); err != nil {
				return err
			}

			an, err := s.Store.Get(uid)
			if err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "pinned %s at cell %d,%d (%s)", uid, an.GridPos.X, an.GridPos.Y, s.Store.Path())
			return nil
		},
	}

	cmd.Flags().IntVar(&ticks, "ticks", 60, "positioning ticks to settle before pinning")
	return cmd
}

func newUnpinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unpin <scene.toml> <uid>",
		Short: "Turn a pinned window back into a floating label",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, args[0])
			if err != nil {
				return err
			}
			defer s.Close()

			uid := args[1]
			if err := s.Unpin(uid); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "unpinned %s, shown as %s", uid, annotation.DisplayLabel)
			return nil
		},
	}
}

func newHideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hide <scene.toml> <uid>",
		Short: "Close the label or window of an annotation",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, args[0])
			if err != nil {
				return err
			}
			defer s.Close()

			uid := args[1]
			if err := s.Hide(uid); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "hid %s", uid)
			return nil
		},
	}
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <scene.toml> <uid>",
		Short: "Show an annotation or anchor as a floating label",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, args[0])
			if err != nil {
				return err
			}
			defer s.Close()

			uid := args[1]
			if err := s.Show(uid); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "showing %s as %s", uid, annotation.DisplayLabel)
			return nil
		},
	}
}
