// Package render turns a forecast into the view models the widget layer
// paints: today's summary, the six-day strip and the two temperature
// trend charts.
package render

import (
	"strings"

	"github.com/xiaoheizi112/Weather-Forecast/internal/model"
	"github.com/xiaoheizi112/Weather-Forecast/internal/trend"
)

// The first three strip slots replace the weekday name with a relative
// label.
var relativeDayLabels = [3]string{"今天", "明天", "后天"}

// Accent colors for the two trend charts.
var (
	highAccent = Color{255, 255, 0} // yellow
	lowAccent  = Color{0, 0, 255}   // blue
)

type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Badge is an air-quality label with its level-specific background color.
// Styled is false for unrecognized levels, which get no special styling.
type Badge struct {
	Level  string           `json:"level"`
	Color  model.BadgeColor `json:"color"`
	Styled bool             `json:"styled"`
}

// Summary is today's primary display block.
type Summary struct {
	City          string `json:"city"`
	DateLine      string `json:"date_line"`
	Temp          string `json:"temp"`
	TempRange     string `json:"temp_range"`
	Condition     string `json:"condition"`
	Icon          string `json:"icon"`
	Advisory      string `json:"advisory"`
	WindDirection string `json:"wind_direction"`
	WindLevel     string `json:"wind_level"`
	PM25          string `json:"pm25"`
	Humidity      string `json:"humidity"`
	AirBadge      Badge  `json:"air_badge"`
}

// StripEntry is one column of the six-day strip.
type StripEntry struct {
	DayLabel      string `json:"day_label"`
	Date          string `json:"date"` // MM-DD
	Icon          string `json:"icon"`
	Condition     string `json:"condition"`
	AirBadge      Badge  `json:"air_badge"`
	WindDirection string `json:"wind_direction"`
	WindLevel     string `json:"wind_level"`
}

// Chart is one trend polyline with its accent color.
type Chart struct {
	Name  string      `json:"name"`
	Color Color       `json:"color"`
	Curve trend.Curve `json:"curve"`
}

// Charts holds the pair drawn on every repaint: highs then lows.
type Charts struct {
	High Chart `json:"high"`
	Low  Chart `json:"low"`
}

// BuildSummary renders slot 0 into the primary display block.
func BuildSummary(forecast *model.Forecast) Summary {
	today := forecast.Today()
	return Summary{
		City:          today.City + "市",
		DateLine:      today.Date + "  " + today.Week,
		Temp:          today.TempCurrent + "℃",
		TempRange:     today.TempLow + "℃~" + today.TempHigh + "℃",
		Condition:     model.ConditionDisplay(today.Condition),
		Icon:          model.ConditionIcon(today.Condition),
		Advisory:      today.Advisory,
		WindDirection: today.WindDirection,
		WindLevel:     today.WindLevel,
		PM25:          today.PM25,
		Humidity:      today.Humidity,
		AirBadge:      buildBadge(today.AirLevel),
	}
}

// BuildStrip renders all six slots into strip columns.
func BuildStrip(forecast *model.Forecast) [model.DayCount]StripEntry {
	var strip [model.DayCount]StripEntry
	for i, day := range forecast.Days {
		strip[i] = StripEntry{
			DayLabel:      dayLabel(i, day.Week),
			Date:          shortDate(day.Date),
			Icon:          model.ConditionIcon(day.Condition),
			Condition:     model.ConditionDisplay(day.Condition),
			AirBadge:      buildBadge(day.AirLevel),
			WindDirection: day.WindDirection,
			WindLevel:     day.WindLevel,
		}
	}
	return strip
}

// BuildCharts lays both trend polylines out over six equal columns, with
// each point at its column center.
func BuildCharts(forecast *model.Forecast, chartWidth, chartHeight int) Charts {
	anchors := columnAnchors(chartWidth)
	return Charts{
		High: Chart{
			Name:  "high",
			Color: highAccent,
			Curve: trend.BuildCurve(forecast.Highs(), anchors, chartHeight),
		},
		Low: Chart{
			Name:  "low",
			Color: lowAccent,
			Curve: trend.BuildCurve(forecast.Lows(), anchors, chartHeight),
		},
	}
}

func columnAnchors(chartWidth int) [model.DayCount]trend.Point {
	var anchors [model.DayCount]trend.Point
	columnWidth := chartWidth / model.DayCount
	for i := range anchors {
		anchors[i] = trend.Point{X: i*columnWidth + columnWidth/2}
	}
	return anchors
}

func buildBadge(level string) Badge {
	color, ok := model.AirLevelColor(level)
	return Badge{Level: level, Color: color, Styled: ok}
}

func dayLabel(slot int, week string) string {
	if slot < len(relativeDayLabels) {
		return relativeDayLabels[slot]
	}
	return week
}

// shortDate reduces YYYY-MM-DD to MM-DD; anything else passes through.
func shortDate(date string) string {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return date
	}
	return parts[1] + "-" + parts[2]
}
