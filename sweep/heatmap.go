package sweep

import (
	"fmt"
	"image/color"
	"time"

	"github.com/Kubis4/PVmizer-GEO-sub002/solar"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
)

func newPlot() *plot.Plot {
	plt := plot.New()
	plt.BackgroundColor = color.Black
	for _, elt := range []*color.Color{
		&plt.Title.TextStyle.Color,
		&plt.X.Color,
		&plt.X.Tick.Color,
		&plt.X.Tick.Label.Color,
		&plt.X.Label.TextStyle.Color,
		&plt.Y.Color,
		&plt.Y.Tick.Color,
		&plt.Y.Tick.Label.Color,
		&plt.Y.Label.TextStyle.Color,
	} {
		*elt = color.White
	}
	return plt
}

// Intensity returns the global solar intensity of s in W/m², as seen by
// the point the grid was sampled at, scaled by the weather factor of the
// sweep.
func (g *Grid) Intensity(s Sample) float64 {
	return g.WeatherFactor * solar.GlobalIntensity(s.ElevationRad, g.SiteElevationM, s.Light)
}

// HeatMap plots the solar intensity over the year, with the day of the
// year on the X axis and the time of day on the Y axis.
func (g *Grid) HeatMap() *plot.Plot {
	plt := newPlot()
	plt.Title.Text = fmt.Sprintf("Solar intensity, %d", g.Year)
	plt.X.Tick.Marker = dayOfYearTicks{g.Year}
	plt.Y.Tick.Marker = timeOfDayTicks{targetTicks: 8}

	// TODO: Add a key. Unfortunately, there doesn't seem to be a
	// built-in way to do a color bar. There's plotter.ColorBar, but I
	// think it's meant to fill the whole plot, so maybe I have to
	// overlay one plot on another?

	// Narrow the rows down to just the lit times.
	rMin, rMax := -1, -1
	for _, day := range g.Days {
		for r, s := range day {
			if g.Intensity(s) <= 0 {
				continue
			}
			if rMin < 0 || r < rMin {
				rMin = r
			}
			if r > rMax {
				rMax = r
			}
		}
	}
	if rMin < 0 {
		return plt
	}

	grid := &intensityGrid{g, rMin, rMax}
	pal := palette.Heat(256, 1)
	hm := plotter.NewHeatMap(grid, pal)
	hm.Underflow = color.Black
	hm.Rasterized = true
	plt.Add(hm)

	return plt
}

// intensityGrid adapts a Grid to plotter.GridXYZ, covering rows rMin
// through rMax.
type intensityGrid struct {
	g          *Grid
	rMin, rMax int
}

func (ig *intensityGrid) Dims() (c, r int) {
	return len(ig.g.Days), ig.rMax - ig.rMin + 1
}

func (ig *intensityGrid) Z(c, r int) float64 {
	return ig.g.Intensity(ig.g.Days[c][r+ig.rMin])
}

// X returns the day of year of column c.
func (ig *intensityGrid) X(c int) float64 {
	return float64(c + 1)
}

// Y returns the time of day of row r as a time.Duration.
func (ig *intensityGrid) Y(r int) float64 {
	return float64(time.Duration(r+ig.rMin) * ig.g.Step)
}

func (ig *intensityGrid) Min() float64 {
	// Return 1 rather than 0 so that the "0" value when the sun isn't
	// in the sky renders in the underflow color.
	return 1
}

func (ig *intensityGrid) Max() float64 {
	// Solar radiation at sea level on the equator at noon.
	return 1042
}

// SunHoursPlot plots the hours of direct sun at the point for each day of
// the year.
func (g *Grid) SunHoursPlot() (*plot.Plot, error) {
	plt := newPlot()
	plt.Title.Text = fmt.Sprintf("Direct sun, %d", g.Year)
	plt.X.Tick.Marker = solsticeTicks{g.Year}
	plt.Y.Tick.Marker = durationTicks{targetTicks: 6}
	plt.Y.Min = 0

	xys := make(plotter.XYs, len(g.Days))
	for i := range g.Days {
		xys[i].X = float64(i + 1)
		xys[i].Y = float64(g.SunHours(i + 1))
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Color = color.RGBA{R: 255, G: 200, B: 0, A: 255}
	plt.Add(line)
	return plt, nil
}
