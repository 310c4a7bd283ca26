// Package sweep samples the sun over a whole year at a point, optionally
// shaded by a scene, and plots the result.
package sweep

import (
	"context"
	"runtime"
	"time"

	"github.com/Kubis4/PVmizer-GEO-sub002/shade"
	"github.com/Kubis4/PVmizer-GEO-sub002/solar"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultStep is the time between samples if Params.Step is 0.
const DefaultStep = 10 * time.Minute

// Params configures a year sweep.
type Params struct {
	Year int

	// Latitude and Longitude are in degrees, north and east positive.
	Latitude, Longitude float64

	// UTCOffsetHours is the offset of the local clock that sample times
	// are expressed in. Daylight saving is not applied.
	UTCOffsetHours float64

	SiteElevationM float64
	WeatherFactor  float64
	Step           time.Duration

	// Point is where light is measured. It only matters with a Scene.
	Point r3.Vec

	// Scene, if non-nil, shades Point. It must not be modified during
	// the sweep.
	Scene *shade.Scene

	// Workers bounds the number of days sampled in parallel. 0 means
	// GOMAXPROCS.
	Workers int
}

func (p Params) step() time.Duration {
	if p.Step <= 0 {
		return DefaultStep
	}
	return p.Step
}

// A Sample is the sun at one moment.
type Sample struct {
	ElevationRad float64
	DNI          float64 // W/m²
	Light        float64 // Fraction of direct light reaching the point
}

// A Grid holds the samples of a year, indexed by day of year (from 0)
// and time slot of the day.
type Grid struct {
	Year           int
	Step           time.Duration
	SiteElevationM float64
	WeatherFactor  float64
	Days           [][]Sample
}

// Year samples the sun every p.Step over p.Year.
func Year(ctx context.Context, p Params) (*Grid, error) {
	step := p.step()
	loc := time.FixedZone("", int(p.UTCOffsetHours*3600))
	nDays := time.Date(p.Year, 12, 31, 0, 0, 0, 0, time.UTC).YearDay()
	slots := int(24 * time.Hour / step)

	g := &Grid{
		Year:           p.Year,
		Step:           step,
		SiteElevationM: p.SiteElevationM,
		WeatherFactor:  p.WeatherFactor,
		Days:           make([][]Sample, nDays),
	}

	eg, ctx := errgroup.WithContext(ctx)
	workers := p.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	eg.SetLimit(workers)
	for d := range g.Days {
		d := d
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			midnight := time.Date(p.Year, 1, 1+d, 0, 0, 0, 0, loc)
			day := make([]Sample, slots)
			for s := range day {
				t := midnight.Add(time.Duration(s) * step)
				day[s] = p.sample(t, d+1)
			}
			g.Days[d] = day
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return g, nil
}

func (p Params) sample(t time.Time, dayOfYear int) Sample {
	pos := solar.PositionAt(t, p.Latitude, p.Longitude)
	s := Sample{
		ElevationRad: pos.ElevationRad,
		DNI:          solar.DNI(pos.ElevationRad, p.WeatherFactor),
	}
	switch {
	case !pos.AboveHorizon():
	case p.Scene == nil:
		s.Light = 1
	default:
		s.Light = p.Scene.Light(p.Point, pos.Direction, dayOfYear).Light
	}
	return s
}

// CachedYear is like Year, but first looks for the result in c and saves
// it there if it was missing.
func CachedYear(ctx context.Context, p Params, c Cache) (*Grid, error) {
	meshes, kinds := []*shade.Mesh{}, []shade.Kind{}
	if p.Scene != nil {
		meshes, kinds = p.Scene.Meshes(), p.Scene.Kinds()
	}
	ck, err := c.Key(meshes, kinds, p.Year, p.Latitude, p.Longitude, p.UTCOffsetHours,
		p.SiteElevationM, p.WeatherFactor, p.step(), p.Point)
	if err != nil {
		return nil, err
	}
	g := new(Grid)
	if ck.Load(g) {
		return g, nil
	}
	g, err = Year(ctx, p)
	if err != nil {
		return nil, err
	}
	ck.Save(g)
	return g, nil
}

// Slots returns the number of samples per day.
func (g *Grid) Slots() int {
	if len(g.Days) == 0 {
		return 0
	}
	return len(g.Days[0])
}

// DailyInsolation returns the direct energy reaching a surface facing the
// sun at the point on the given day of the year (from 1), in kWh/m².
func (g *Grid) DailyInsolation(dayOfYear int) float64 {
	var wh float64
	for _, s := range g.day(dayOfYear) {
		wh += s.DNI * s.Light * g.Step.Hours()
	}
	return wh / 1000
}

// SunHours returns the duration of direct sun at the point on the given
// day of the year (from 1). Partly shaded samples count in proportion to
// their light.
func (g *Grid) SunHours(dayOfYear int) time.Duration {
	var d time.Duration
	for _, s := range g.day(dayOfYear) {
		d += time.Duration(s.Light * float64(g.Step))
	}
	return d
}

func (g *Grid) day(dayOfYear int) []Sample {
	if dayOfYear < 1 || dayOfYear > len(g.Days) {
		return nil
	}
	return g.Days[dayOfYear-1]
}
