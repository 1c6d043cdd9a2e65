package model

import (
	"fmt"
	"strconv"
	"time"
)

// DayCount is the number of usable forecast slots: today plus five days.
// The upstream API may return a seventh day, which is ignored.
const DayCount = 6

// Record holds one forecast day as delivered by the upstream API.
// Temperatures are transported as text; use TempValue to convert.
type Record struct {
	City          string `json:"city,omitempty"`
	Date          string `json:"date"` // YYYY-MM-DD
	Week          string `json:"week"`
	Condition     string `json:"condition"`
	TempCurrent   string `json:"temp_current,omitempty"`
	TempLow       string `json:"temp_low"`
	TempHigh      string `json:"temp_high"`
	WindDirection string `json:"wind_direction"`
	WindLevel     string `json:"wind_level"`
	AirLevel      string `json:"air_level"`
	Humidity      string `json:"humidity"`
	PM25          string `json:"pm25,omitempty"`
	Advisory      string `json:"advisory,omitempty"`
}

// Forecast is the fixed six-slot forecast sequence. Slot 0 is today and
// drives the primary display; slots 0-5 drive the day strip and the trend
// charts. It is replaced wholesale on every successful fetch.
type Forecast struct {
	Days      [DayCount]Record `json:"days"`
	FetchedAt time.Time        `json:"fetched_at"`
}

// Today returns the record for slot 0.
func (f *Forecast) Today() Record {
	return f.Days[0]
}

// Day returns the record for slot i.
func (f *Forecast) Day(i int) (Record, error) {
	if i < 0 || i >= DayCount {
		return Record{}, fmt.Errorf("forecast day %d out of range [0,%d)", i, DayCount)
	}
	return f.Days[i], nil
}

// Highs returns the six daily high temperatures as integers.
func (f *Forecast) Highs() [DayCount]int {
	var temps [DayCount]int
	for i := range f.Days {
		temps[i] = TempValue(f.Days[i].TempHigh)
	}
	return temps
}

// Lows returns the six daily low temperatures as integers.
func (f *Forecast) Lows() [DayCount]int {
	var temps [DayCount]int
	for i := range f.Days {
		temps[i] = TempValue(f.Days[i].TempLow)
	}
	return temps
}

// TempValue converts a transported temperature string to an integer.
// Empty or unparsable values count as 0, matching the display behavior.
func TempValue(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}
