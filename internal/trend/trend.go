// Package trend computes the point layout for the two temperature trend
// charts: a six-point polyline centered on the day-set average.
package trend

import (
	"fmt"

	"github.com/xiaoheizi112/Weather-Forecast/internal/model"
)

// offsetScale is the vertical pixels per degree of deviation from the
// period average.
const offsetScale = 3

// Labels sit above-left of each point by this fixed offset.
const (
	labelOffsetX = -10
	labelOffsetY = -10
)

// Point is a chart position in pixels. Y grows downward.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Segment is one straight polyline piece between consecutive points.
type Segment struct {
	From Point `json:"from"`
	To   Point `json:"to"`
}

// Label is the temperature text drawn next to a point.
type Label struct {
	Pos  Point  `json:"pos"`
	Text string `json:"text"`
}

// Curve is the full draw plan for one trend chart: circle marks at each
// point, straight segments between consecutive points, and a degree-marked
// label per point.
type Curve struct {
	Points   [model.DayCount]Point       `json:"points"`
	Segments [model.DayCount - 1]Segment `json:"segments"`
	Labels   [model.DayCount]Label       `json:"labels"`
}

// Layout places six temperatures on a chart of the given height. Each
// point sits at its anchor x; its y deviates from mid-height by three
// pixels per degree of difference from the truncated average, warmer days
// above the midline.
func Layout(temps [model.DayCount]int, anchors [model.DayCount]Point, chartHeight int) [model.DayCount]Point {
	sum := 0
	for _, t := range temps {
		sum += t
	}
	average := sum / model.DayCount
	middle := chartHeight / 2

	var points [model.DayCount]Point
	for i, t := range temps {
		offset := (t - average) * offsetScale
		points[i] = Point{X: anchors[i].X, Y: middle - offset}
	}
	return points
}

// BuildCurve lays the temperatures out and derives the connecting
// segments and labels.
func BuildCurve(temps [model.DayCount]int, anchors [model.DayCount]Point, chartHeight int) Curve {
	curve := Curve{Points: Layout(temps, anchors, chartHeight)}
	for i := 0; i < model.DayCount-1; i++ {
		curve.Segments[i] = Segment{From: curve.Points[i], To: curve.Points[i+1]}
	}
	for i, p := range curve.Points {
		curve.Labels[i] = Label{
			Pos:  Point{X: p.X + labelOffsetX, Y: p.Y + labelOffsetY},
			Text: fmt.Sprintf("%d°", temps[i]),
		}
	}
	return curve
}
