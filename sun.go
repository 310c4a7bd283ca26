package main

import (
	"fmt"

	"github.com/Kubis4/PVmizer-GEO-sub002/solar"
	"github.com/spf13/cobra"
)

func sunCmd() *cobra.Command {
	var (
		day  int
		hour float64
	)

	cmd := &cobra.Command{
		Use:   "sun [site.yaml]",
		Short: "Show the sun position, irradiance and building shadow",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSite(args)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("day") {
				s.Day = day
			}
			if cmd.Flags().Changed("hour") {
				s.Hour = hour
			}
			if err := s.Validate(); err != nil {
				return err
			}

			loc := s.Location
			pos := s.Sun()
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Location:   %.4f, %.4f\n", loc.Latitude, loc.Longitude)
			fmt.Fprintf(w, "Day %d, %s solar time\n", s.Day, solar.FormatClock(s.Hour))
			fmt.Fprintf(w, "Elevation:  %.1f°\n", pos.ElevationDeg())
			fmt.Fprintf(w, "Azimuth:    %.1f° from north\n", pos.CompassAzimuthDeg())

			rise, set := solar.DayRange(loc.Latitude, loc.Longitude, s.Day, loc.UTCOffsetHours())
			fmt.Fprintf(w, "Sunrise:    %s\n", solar.FormatClock(rise))
			fmt.Fprintf(w, "Sunset:     %s\n", solar.FormatClock(set))
			fmt.Fprintf(w, "Day length: %.1f h\n", solar.DayLength(loc.Latitude, loc.Longitude, s.Day, loc.UTCOffsetHours()))

			if !pos.AboveHorizon() {
				fmt.Fprintln(w, "The sun is below the horizon.")
				return nil
			}
			fmt.Fprintf(w, "DNI:        %.0f W/m²\n", solar.DNI(pos.ElevationRad, s.WeatherFactor))
			fmt.Fprintf(w, "Global:     %.0f W/m²\n", solar.GlobalIntensity(pos.ElevationRad, loc.ElevationM, 1))
			fmt.Fprintf(w, "Derating:   %.3f\n", solar.TemperatureDerating(pos.ElevationRad))

			if q := solar.GroundShadow(pos.Direction, s.Bounds(), 0); q != nil {
				fmt.Fprintln(w, "Building shadow:")
				for _, c := range q {
					fmt.Fprintf(w, "  (%.2f, %.2f)\n", c.X, c.Y)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&day, "day", "d", 0, "day of year (1-366), overriding the site")
	cmd.Flags().Float64Var(&hour, "hour", 0, "local solar hour (0-24), overriding the site")
	return cmd
}
