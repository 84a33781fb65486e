package cmd

import (
	"fmt"
	"time"

	"github.com/philipparndt/cadoverlay/pkg/analysis"
	"github.com/spf13/cobra"
)

func newSimulateCmd() *cobra.Command {
	var (
		ticks int
		orbit float64
	)

	cmd := &cobra.Command{
		Use:   "simulate <scene.toml>",
		Short: "Run the positioning loop headless and print the final boxes",
		Long: `Runs the positioning engine without a window for a number of ticks,
optionally orbiting the camera a full --orbit degrees over the run, then
prints every box with its anchor.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkTicks(ticks); err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())
			s, err := openSession(cmd, args[0])
			if err != nil {
				return err
			}
			defer s.Close()

			step := orbitStep(orbit, ticks)
			var before func()
			if step != 0 {
				before = func() { s.Scene.Orbit(step) }
			}

			start := time.Now()
			if err := s.Settle(cmd.Context(), ticks, before); err != nil {
				return err
			}
			logger.Debug("simulation done", "ticks", ticks, "elapsed", time.Since(start).Round(time.Millisecond))

			out := cmd.OutOrStdout()
			sum := analysis.Summarize(s.Model())
			fmt.Fprintln(out, styleDim.Render(fmt.Sprintf("model: %d triangles, %.1f x %.1f x %.1f",
				sum.TriangleCount, sum.Dimensions.X, sum.Dimensions.Y, sum.Dimensions.Z)))
			fmt.Fprintln(out, styleTitle.Render(fmt.Sprintf("%d boxes after %d ticks", s.Engine.Len(), ticks)))
			fmt.Fprintln(out, renderBoxTable(s.Engine.Boxes()))
			if orbit != 0 {
				fmt.Fprintln(out, styleDim.Render(fmt.Sprintf("camera orbited %.1f°", orbit)))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&ticks, "ticks", 120, "number of positioning ticks to run")
	cmd.Flags().Float64Var(&orbit, "orbit", 0, "degrees to orbit the camera over the run")
	return cmd
}

// checkTicks rejects tick counts that would leave nothing to settle
func checkTicks(ticks int) error {
	if ticks <= 0 {
		return fmt.Errorf("--ticks must be positive, got %d", ticks)
	}
	return nil
}

// orbitStep spreads deg degrees of camera orbit over ticks ticks
func orbitStep(deg float64, ticks int) float64 {
	if ticks <= 0 {
		return 0
	}
	return deg / float64(ticks)
}
