package sweep

import (
	"fmt"
	"time"

	"gonum.org/v1/plot"
)

// timeOfDayTicks renders a time.Duration since midnight as a time of day.
type timeOfDayTicks struct {
	targetTicks int // Create around targetTicks number of ticks
}

func (o timeOfDayTicks) Ticks(min, max float64) []plot.Tick {
	return durationTickMarks(min, max, o.targetTicks, func(t, _ time.Duration) string {
		var dayBase = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
		return dayBase.Add(t).Format("3:04PM")
	})
}

type durationTicks struct {
	targetTicks int // Create around targetTicks number of ticks
}

func (o durationTicks) Ticks(min, max float64) []plot.Tick {
	return durationTickMarks(min, max, o.targetTicks, func(t, best time.Duration) string {
		if best%time.Hour == 0 {
			return fmt.Sprintf("%dh", int(t.Hours()))
		} else if best%time.Minute == 0 {
			return fmt.Sprintf("%dh%dm", int(t.Hours()), int(t.Minutes())%60)
		}
		return t.String()
	})
}

// durationTickMarks generates ticks over a range of time.Durations, with a
// major tick labeled by label every so many minor ticks.
func durationTickMarks(min, max float64, targetTicks int, label func(t, best time.Duration) string) []plot.Tick {
	minD, maxD := time.Duration(min), time.Duration(max)

	// Find a good duration between ticks
	best, minor := optimizeDurationTicks(minD, maxD, targetTicks)
	if minor == 0 {
		minor = best
	}

	var ticks []plot.Tick
	first := int((minD + minor - 1) / minor)
	last := int(maxD / minor)
	minorFactor := int(best / minor)
	for i := first; i <= last; i++ {
		t := time.Duration(i) * minor
		tick := plot.Tick{Value: float64(t)}
		if i%minorFactor == 0 {
			tick.Label = label(t, best)
		}
		ticks = append(ticks, tick)
	}
	return ticks
}

var durationScales = []time.Duration{12 * time.Hour, 3 * time.Hour, time.Hour, 30 * time.Minute, 10 * time.Minute, 5 * time.Minute, time.Minute}

func optimizeDurationTicks(minD, maxD time.Duration, targetTicks int) (best, minor time.Duration) {
	// Compute how many ticks would appear in [minD, maxD] for each
	// scale and pick the closest to targetTicks.
	bestNDelta := 0
	for i, scale := range durationScales {
		first := int((minD + scale - 1) / scale)
		last := int(maxD / scale)
		if n := last - first + 1; n > 0 {
			delta := n - targetTicks
			if delta < 0 {
				delta = -delta
			}
			if best == 0 || delta < bestNDelta {
				best, bestNDelta = scale, delta
				if i+1 < len(durationScales) {
					minor = durationScales[i+1]
				} else {
					minor = 0
				}
			}
		}
	}
	if best == 0 {
		best, minor = durationScales[0], durationScales[1]
	}
	return best, minor
}

// dayOfYearTicks marks the first of every month on an axis of days of
// year, labeling every quarter.
type dayOfYearTicks struct {
	year int
}

func (o dayOfYearTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	lastMajorYear := 0
	for month := time.January; month <= time.December; month++ {
		t := time.Date(o.year, month, 1, 12, 0, 0, 0, time.UTC)
		v := float64(t.YearDay())
		if v < min || v > max {
			continue
		}
		label := ""
		if (t.Month()-1)%3 == 0 {
			if lastMajorYear == t.Year() {
				label = t.Format("1/02")
			} else {
				lastMajorYear = t.Year()
				label = t.Format("1/02/2006")
			}
		}
		ticks = append(ticks, plot.Tick{Value: v, Label: label})
	}
	return ticks
}

// solsticeTicks marks the equinoxes and solstices on an axis of days of
// year.
type solsticeTicks struct {
	year int
}

func (o solsticeTicks) Ticks(min, max float64) []plot.Tick {
	start := time.Date(o.year, 1, 1, 12, 0, 0, 0, time.UTC).AddDate(0, 0, int(min)-1)
	ticks := []plot.Tick{{
		Value: min,
		Label: start.Format("1/02/2006"),
	}}
	add := func(month time.Month, day int) {
		t := time.Date(o.year, month, day, 12, 0, 0, 0, time.UTC)
		v := float64(t.YearDay())
		if v <= min || v > max {
			return
		}
		ticks = append(ticks, plot.Tick{Value: v, Label: t.Format("1/02")})
	}
	add(3, 20)
	add(6, 21)
	add(9, 22)
	add(12, 22)
	return ticks
}
