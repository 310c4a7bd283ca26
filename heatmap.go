package main

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/Kubis4/PVmizer-GEO-sub002/sweep"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/plot/vg"
)

func heatmapCmd() *cobra.Command {
	var (
		year     int
		step     time.Duration
		out      string
		sunHours string
		cacheDir string
		noCache  bool
		point    string
		workers  int
	)

	cmd := &cobra.Command{
		Use:   "heatmap [site.yaml]",
		Short: "Plot a year of sunlight at a point on the roof",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSite(args)
			if err != nil {
				return err
			}
			scene, err := s.Scene()
			if err != nil {
				return err
			}

			p := sweep.Params{
				Year:           year,
				Latitude:       s.Location.Latitude,
				Longitude:      s.Location.Longitude,
				UTCOffsetHours: s.Location.UTCOffsetHours(),
				SiteElevationM: s.Location.ElevationM,
				WeatherFactor:  s.WeatherFactor,
				Step:           step,
				Point:          s.RoofCenter(),
				Scene:          scene,
				Workers:        workers,
			}
			if point != "" {
				if p.Point, err = parseVec(point); err != nil {
					return err
				}
			}

			var g *sweep.Grid
			if noCache {
				g, err = sweep.Year(cmd.Context(), p)
			} else {
				g, err = sweep.CachedYear(cmd.Context(), p, sweep.Cache{Dir: cacheDir})
			}
			if err != nil {
				return err
			}

			var total float64
			var sun time.Duration
			for d := 1; d <= len(g.Days); d++ {
				total += g.DailyInsolation(d)
				sun += g.SunHours(d)
			}
			log.Printf("%d: %.0f kWh/m² direct, %.0f hours of sun at (%.2f, %.2f, %.2f)",
				year, total, sun.Hours(), p.Point.X, p.Point.Y, p.Point.Z)

			if err := g.HeatMap().Save(20*vg.Centimeter, 15*vg.Centimeter, out); err != nil {
				return err
			}
			if sunHours != "" {
				plt, err := g.SunHoursPlot()
				if err != nil {
					return err
				}
				if err := plt.Save(20*vg.Centimeter, 10*vg.Centimeter, sunHours); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&year, "year", "y", time.Now().Year(), "year to sample")
	cmd.Flags().DurationVar(&step, "step", sweep.DefaultStep, "time between samples")
	cmd.Flags().StringVarP(&out, "out", "o", "heatmap.png", "heat map output file (png, svg or pdf)")
	cmd.Flags().StringVar(&sunHours, "sun-hours", "", "also plot daily hours of sun to this file")
	cmd.Flags().StringVar(&cacheDir, "cache-dir", sweep.DefaultCacheDir, "directory for cached sweeps")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "always recompute the sweep")
	cmd.Flags().StringVar(&point, "point", "", "X,Y,Z of the sampled point (default: center of the roof)")
	cmd.Flags().IntVar(&workers, "workers", 0, "days sampled in parallel (default: GOMAXPROCS)")
	return cmd
}

func parseVec(s string) (r3.Vec, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return r3.Vec{}, fmt.Errorf("point %q: want X,Y,Z", s)
	}
	var v [3]float64
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return r3.Vec{}, fmt.Errorf("point %q: %w", s, err)
		}
		v[i] = f
	}
	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}, nil
}
