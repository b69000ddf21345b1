package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/halcyon-labs/skyframe"
)

var convertCmd = &cobra.Command{
	Use:   "convert <lon> <lat>",
	Short: "Convert a sky position into another frame",
	Args:  cobra.ExactArgs(2),
	RunE:  runConvert,
}

func init() {
	convertCmd.Flags().String("from", "icrs", "source frame: icrs, galactic or fk5")
	convertCmd.Flags().String("to", "galactic", "target frame: icrs, galactic or fk5")
	convertCmd.Flags().Float64("equinox", 2000, "equinox of the source frame as a Julian year (fk5 only, default from config)")
	convertCmd.Flags().Float64("to-equinox", 2000, "equinox of the target frame as a Julian year (fk5 only, default from config)")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	rad, _ := cmd.Flags().GetBool("rad")

	p, err := parsePosition(from, equinoxFlag(cmd, "equinox"), args[0], args[1], rad)
	if err != nil {
		return err
	}

	target, err := targetFrame(to, equinoxFlag(cmd, "to-equinox"))
	if err != nil {
		return err
	}

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		m, err := skyframe.RotationMatrix(target, p.Frame())
		if err == nil {
			logger.Info().
				Stringer("from", p.Frame()).
				Stringer("to", target).
				Interface("matrix", m).
				Msg("resolved rotation")
		}
	}

	out, err := skyframe.Convert(target, p)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), formatPosition(out, outputFormat(cmd)))
	return nil
}
