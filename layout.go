package main

import (
	"fmt"
	"log"

	"github.com/Kubis4/PVmizer-GEO-sub002/panel"
	"github.com/spf13/cobra"
)

func layoutCmd() *cobra.Command {
	var (
		verbose  bool
		noShadow bool
	)

	cmd := &cobra.Command{
		Use:   "layout [site.yaml]",
		Short: "Lay panels out on the roof and estimate their output",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSite(args)
			if err != nil {
				return err
			}

			faces := s.RoofFaces()
			var placements []panel.Placement
			var yield panel.Yield
			impact := panel.ChimneyImpact(s.Chimneys(), s.RoofArea())
			for i, f := range faces {
				ps := panel.Tile(f, s.Panel)
				if len(ps) == 0 {
					log.Printf("no panels fit on face %d (%.1f × %.1f m)", i, f.Width, f.Height)
					continue
				}
				combined := panel.TiltFactor(s.Panel.Tilt(f)) * panel.OrientationFactor(f.AzimuthDeg()) * impact
				y := panel.Annual(len(ps), s.Panel.PowerW, combined)
				yield.SystemPowerKW += y.SystemPowerKW
				yield.AnnualKWh += y.AnnualKWh
				yield.DailyKWh += y.DailyKWh
				placements = append(placements, ps...)
			}
			if yield.SystemPowerKW > 0 {
				yield.CombinedFactor = yield.AnnualKWh / (yield.SystemPowerKW * panel.AnnualYieldPerKWp * panel.PerformanceRatio)
			}

			sun := s.Sun()
			cond := panel.Conditions{
				Sun:           sun,
				WeatherFactor: s.WeatherFactor,
				DayOfYear:     s.Day,
			}
			if !noShadow && sun.AboveHorizon() {
				scene, err := s.Scene()
				if err != nil {
					return err
				}
				cond.Light = scene.PanelLight(placements, sun, s.Day)
			}
			r := panel.Evaluate(placements, s.Panel.Efficiency, s.Losses, cond)

			w := cmd.OutOrStdout()
			if s.Name != "" {
				fmt.Fprintf(w, "%s\n", s.Name)
			}
			fmt.Fprintf(w, "Panels:            %d on %d face(s), %.1f m²\n", len(placements), len(faces), s.RoofArea())
			fmt.Fprintf(w, "Rated power:       %.2f kW\n", r.RatedPowerKW)
			fmt.Fprintf(w, "Sun elevation:     %.1f°\n", r.SunElevationDeg)
			fmt.Fprintf(w, "DNI:               %.0f W/m²\n", r.DNI)
			fmt.Fprintf(w, "Temperature:       %.3f\n", r.TemperatureFactor)
			fmt.Fprintf(w, "Shading:           %.3f\n", r.ShadingFactor)
			fmt.Fprintf(w, "DC power:          %.2f kW\n", r.DCPowerKW)
			fmt.Fprintf(w, "AC power:          %.2f kW\n", r.ACPowerKW)
			fmt.Fprintf(w, "System efficiency: %.1f%%\n", r.SystemEfficiency)
			fmt.Fprintf(w, "Energy today:      %.1f kWh\n", r.DailyEnergyKWh)
			fmt.Fprintf(w, "Annual estimate:   %.0f kWh (%.1f kWh/day, factor %.3f)\n",
				yield.AnnualKWh, yield.DailyKWh, yield.CombinedFactor)

			if verbose {
				for i, p := range r.Panels {
					c := placements[i].Center
					fmt.Fprintf(w, "  %3d (%6.2f, %6.2f, %5.2f) %6.0f W/m² %5.3f kW shading %.2f\n",
						i, c.X, c.Y, c.Z, p.Irradiance, p.PowerKW, p.Shading)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print every panel")
	cmd.Flags().BoolVar(&noShadow, "no-shadow", false, "ignore obstacles")
	return cmd
}
