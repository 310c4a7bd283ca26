package main

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/Kubis4/PVmizer-GEO-sub002/drawing"
	"github.com/spf13/cobra"
)

func footprintCmd() *cobra.Command {
	var (
		scale     float64
		noSnap    bool
		tolerance float64
		square    []int
	)

	cmd := &cobra.Command{
		Use:   "footprint [flags] [--] X,Y X,Y X,Y...",
		Short: "Measure and validate a building footprint drawn point by point",
		Long: `Footprint places each point as a click in a drawing session, snapping
near-right corners, then closes the outline and reports its edges, area
and whether it can be extruded into a building. Use -- before the points
if any coordinate is negative.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := drawing.DefaultSnapConfig()
			snap.Enabled = !noSnap
			snap.ToleranceDeg = tolerance
			sess := drawing.NewSession(snap)

			for _, arg := range args {
				p, err := parsePoint(arg)
				if err != nil {
					return err
				}
				placed, ok := sess.Click(p)
				if !ok {
					log.Printf("dropped point %s on top of the previous one", arg)
				} else if placed != p {
					log.Printf("snapped %s to %.3f,%.3f", arg, placed.X, placed.Y)
				}
			}
			if err := sess.Complete(); err != nil {
				return err
			}
			for _, i := range square {
				if err := sess.ForceRightAngle(i); err != nil {
					if errors.Is(err, drawing.ErrNotApplicable) {
						log.Printf("corner %d: %v", i, err)
						continue
					}
					return err
				}
			}

			pts := sess.Footprint.Points
			w := cmd.OutOrStdout()
			for i, p := range pts {
				q := pts[(i+1)%len(pts)]
				fmt.Fprintf(w, "%2d (%.3f, %.3f) edge %s\n", i, p.X, p.Y, drawing.FormatLength(p.Distance(q)*scale))
			}
			m := sess.Measurements(scale)
			fmt.Fprintln(w, drawing.FormatArea(m.AreaM2))
			fmt.Fprintf(w, "Perimeter: %s\n", drawing.FormatLength(m.PerimeterM))

			if err := drawing.Validate(pts, scale); err != nil {
				return err
			}
			fmt.Fprintln(w, "Footprint is valid.")
			return nil
		},
	}

	cmd.Flags().Float64VarP(&scale, "scale", "s", 1, "meters per drawing unit")
	cmd.Flags().BoolVar(&noSnap, "no-snap", false, "disable right-angle snapping")
	cmd.Flags().Float64Var(&tolerance, "tolerance", drawing.DefaultSnapTolerance, "snap tolerance in degrees")
	cmd.Flags().IntSliceVar(&square, "square", nil, "force right angles at these corners after closing")
	return cmd
}

func parsePoint(s string) (drawing.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return drawing.Point{}, fmt.Errorf("point %q: want X,Y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return drawing.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return drawing.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	return drawing.Pt(x, y), nil
}
