package main

import (
	"fmt"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/halcyon-labs/skyframe"
	"github.com/halcyon-labs/skyframe/gm"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark batch frame conversion on random positions",
	RunE:  runBench,
}

func init() {
	benchCmd.Flags().Int("n", 1_000_000, "number of positions to convert")
	benchCmd.Flags().String("to", "galactic", "target frame: icrs, galactic or fk5")
	benchCmd.Flags().String("profile", "", "write a profile: cpu or mem")

	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, _ []string) error {
	n, _ := cmd.Flags().GetInt("n")
	to, _ := cmd.Flags().GetString("to")
	mode, _ := cmd.Flags().GetString("profile")

	if n <= 0 {
		return fmt.Errorf("need a positive position count, got %d", n)
	}

	switch mode {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	case "":
	default:
		return fmt.Errorf("unknown profile mode %q", mode)
	}

	target, err := targetFrame(to, viper.GetFloat64("equinox"))
	if err != nil {
		return err
	}

	ps := make([]skyframe.Position, n)
	for i := range ps {
		ps[i] = skyframe.ICRSOf(gm.RandomAngle().Radians(), gm.RandomLat().Radians())
	}

	start := time.Now()

	out, err := skyframe.ConvertAll(target, ps)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	logger.Info().
		Int("n", n).
		Stringer("to", target).
		Dur("elapsed", elapsed).
		Float64("ns_per_op", float64(elapsed.Nanoseconds())/float64(n)).
		Msg("converted batch")

	fmt.Fprintln(cmd.OutOrStdout(), formatPosition(out[0], outputFormat(cmd)))
	return nil
}
