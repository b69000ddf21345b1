package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/halcyon-labs/skyframe"
)

var sepCmd = &cobra.Command{
	Use:   "sep <lon1> <lat1> <lon2> <lat2>",
	Short: "Angular separation between two sky positions",
	Args:  cobra.ExactArgs(4),
	RunE:  runSep,
}

func init() {
	sepCmd.Flags().String("frame", "icrs", "frame of the first position: icrs, galactic or fk5")
	sepCmd.Flags().String("other-frame", "", "frame of the second position (default: same as --frame)")
	sepCmd.Flags().Float64("equinox", 2000, "equinox for fk5 positions as a Julian year (default from config)")

	rootCmd.AddCommand(sepCmd)
}

func runSep(cmd *cobra.Command, args []string) error {
	frame, _ := cmd.Flags().GetString("frame")
	otherFrame, _ := cmd.Flags().GetString("other-frame")
	rad, _ := cmd.Flags().GetBool("rad")

	if otherFrame == "" {
		otherFrame = frame
	}

	equinox := equinoxFlag(cmd, "equinox")

	a, err := parsePosition(frame, equinox, args[0], args[1], rad)
	if err != nil {
		return err
	}

	b, err := parsePosition(otherFrame, equinox, args[2], args[3], rad)
	if err != nil {
		return err
	}

	sep, err := skyframe.Separation(a, b)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%.12f rad  (%.9f deg)\n", sep, sep*180/math.Pi)
	return nil
}
