// Command skyconv converts astronomical sky positions between the ICRS,
// galactic and equinox-parameterized FK5 reference frames and computes
// angular separations.
package main

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	sexa "github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/halcyon-labs/skyframe"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
	With().Timestamp().Logger()

var rootCmd = &cobra.Command{
	Use:   "skyconv",
	Short: "Convert sky positions between the ICRS, galactic and FK5 frames",
	Long: `skyconv converts astronomical sky positions between the ICRS, galactic
and equinox-parameterized FK5 reference frames and computes angular
separations between them.

Positions are given as sexagesimal strings (right ascension in hours,
declination and galactic coordinates in degrees) or, with --rad, as plain
radian values.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error().Err(err).Msg("skyconv")
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default $HOME/.skyconv.yaml)")
	rootCmd.PersistentFlags().String("format", "", "output format: sexa, deg or rad (default from config)")
	rootCmd.PersistentFlags().Bool("rad", false, "read coordinate arguments as radians instead of sexagesimal text")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".skyconv")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetDefault("format", "sexa")
	viper.SetDefault("equinox", 2000.0)

	viper.SetEnvPrefix("SKYCONV")
	viper.AutomaticEnv()

	// it's fine if no config file is found, the defaults apply
	_ = viper.ReadInConfig()
}

// parsePosition builds a position in the named frame from the two coordinate
// arguments.
func parsePosition(frame string, equinox float64, lonArg, latArg string, rad bool) (skyframe.Position, error) {
	if rad {
		lon, err := strconv.ParseFloat(lonArg, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", lonArg, err)
		}

		lat, err := strconv.ParseFloat(latArg, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", latArg, err)
		}

		switch strings.ToLower(frame) {
		case "icrs":
			return skyframe.ICRSOf(lon, lat), nil
		case "galactic", "gal":
			return skyframe.GalacticOf(lon, lat), nil
		case "fk5":
			return skyframe.FK5Of(equinox, lon, lat), nil
		}

		return nil, fmt.Errorf("unknown frame %q", frame)
	}

	switch strings.ToLower(frame) {
	case "icrs":
		return skyframe.ParseICRS(lonArg, latArg)
	case "galactic", "gal":
		return skyframe.ParseGalactic(lonArg, latArg)
	case "fk5":
		return skyframe.ParseFK5(equinox, lonArg, latArg)
	}

	return nil, fmt.Errorf("unknown frame %q", frame)
}

func targetFrame(name string, equinox float64) (skyframe.Frame, error) {
	switch strings.ToLower(name) {
	case "icrs":
		return skyframe.ICRSFrame, nil
	case "galactic", "gal":
		return skyframe.GalacticFrame, nil
	case "fk5":
		return skyframe.FK5Frame(equinox), nil
	}

	return skyframe.Frame{}, fmt.Errorf("unknown frame %q", name)
}

// formatPosition renders the position in the requested output format.
func formatPosition(p skyframe.Position, format string) string {
	lon, lat := p.LonLat()

	switch format {
	case "rad":
		return fmt.Sprintf("%s: %.12f %.12f", p.Frame(), lon, lat)

	case "deg":
		return fmt.Sprintf("%s: %.9f %.9f", p.Frame(), lon*180/math.Pi, lat*180/math.Pi)

	default:
		latFmt := sexa.FmtAngle(unit.AngleFromDeg(lat * 180 / math.Pi))

		// galactic longitudes read as degrees, equatorial ones as hours
		if p.Frame().Kind == skyframe.KindGalactic {
			return fmt.Sprintf("%s: %.2s %.2s", p.Frame(), sexa.FmtAngle(unit.AngleFromDeg(lon*180/math.Pi)), latFmt)
		}

		return fmt.Sprintf("%s: %.2s %.2s", p.Frame(), sexa.FmtRA(unit.RAFromDeg(lon*180/math.Pi)), latFmt)
	}
}

func outputFormat(cmd *cobra.Command) string {
	if format, _ := cmd.Flags().GetString("format"); format != "" {
		return format
	}

	return viper.GetString("format")
}

func equinoxFlag(cmd *cobra.Command, name string) float64 {
	if cmd.Flags().Changed(name) {
		equinox, _ := cmd.Flags().GetFloat64(name)
		return equinox
	}

	return viper.GetFloat64("equinox")
}
