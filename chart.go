package networth

import (
	"math"

	"github.com/etnz/networth/date"
)

const (
	// Ticks is the number of labels on each chart axis.
	Ticks = 8
	// degenerate is the value range under which the y-axis uses a unit pad.
	degenerate = 1e-9
)

// Point is a chart point. X is the index of the value in the series.
type Point struct {
	X, Y float64
}

// Chart is the render-ready form of a value series.
//
// Points are evenly spaced whatever the calendar gaps, while the x labels
// reflect the elapsed calendar time.
type Chart struct {
	Points     []Point
	Dates      []date.Date // Dates[i] is the date of Points[i]
	MinX, MaxX float64
	MinY, MaxY float64
	YLabels    []string // top to bottom
	XLabels    []string // left to right
}

// EmptyChart returns the chart of an empty series.
func EmptyChart() Chart {
	return Chart{MinX: 0, MaxX: 1, MinY: 0, MaxY: 1}
}

// IsEmpty reports whether the chart has nothing to plot.
func (c Chart) IsEmpty() bool { return len(c.Points) == 0 }

// BuildChart turns a value series into a Chart, labels formatted in currency.
func BuildChart(series *date.History[float64], currency string) Chart {
	n := series.Len()
	if n == 0 {
		return EmptyChart()
	}

	c := Chart{
		Points: make([]Point, 0, n),
		Dates:  make([]date.Date, 0, n),
		MinX:   0,
		MaxX:   math.Max(1, float64(n-1)),
	}
	low, high := math.Inf(1), math.Inf(-1)
	for day, value := range series.Values() {
		c.Points = append(c.Points, Point{X: float64(len(c.Points)), Y: value})
		c.Dates = append(c.Dates, day)
		low, high = math.Min(low, value), math.Max(high, value)
	}
	c.MinY, c.MaxY = padRange(low, high)
	c.YLabels = yLabels(c.MinY, c.MaxY, currency)
	c.XLabels = xLabels(c.Dates)
	return c
}

// padRange extends [low, high] by 5% of its width, or by 1 when it is degenerate.
func padRange(low, high float64) (float64, float64) {
	width := high - low
	if math.Abs(width) < degenerate {
		return low - 1, high + 1
	}
	pad := 0.05 * width
	return low - pad, high + pad
}

// yLabels returns Ticks evenly spaced labels from high down to low.
func yLabels(low, high float64, currency string) []string {
	step := (high - low) / (Ticks - 1)
	labels := make([]string, 0, Ticks)
	for i := Ticks - 1; i >= 0; i-- {
		labels = append(labels, M(low+float64(i)*step, currency).String())
	}
	return labels
}

// xLabels returns Ticks labels spread over the calendar days between the
// first and the last date, or a single label for a single date.
func xLabels(dates []date.Date) []string {
	if len(dates) == 1 {
		return []string{dates[0].Short()}
	}
	first, last := dates[0], dates[len(dates)-1]
	labels := make([]string, 0, Ticks)
	for _, offset := range dayOffsets(first.DaysUntil(last)) {
		labels = append(labels, first.Add(offset).Short())
	}
	return labels
}

// dayOffsets returns Ticks day offsets evenly spread over totalDays.
func dayOffsets(totalDays int) []int {
	offsets := make([]int, 0, Ticks)
	for i := range Ticks {
		offsets = append(offsets, int(math.Round(float64(totalDays*i)/(Ticks-1))))
	}
	return offsets
}
