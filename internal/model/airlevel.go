package model

// BadgeColor is the background color for an air-quality badge.
type BadgeColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// airLevelColors maps the five categorical air-quality levels to their
// badge colors. Unrecognized levels get no special styling.
var airLevelColors = map[string]BadgeColor{
	"优":  {150, 213, 32},
	"良":  {255, 170, 127},
	"轻度": {255, 199, 199},
	"中度": {255, 17, 17},
	"重度": {153, 0, 0},
}

// AirLevelColor returns the badge color for an air-quality level. The
// second result is false for levels outside the known five.
func AirLevelColor(level string) (BadgeColor, bool) {
	c, ok := airLevelColors[level]
	return c, ok
}
