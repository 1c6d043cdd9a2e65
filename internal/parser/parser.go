// Package parser converts the raw tianqiapi v9 JSON payload into the
// fixed six-slot forecast sequence.
package parser

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/xiaoheizi112/Weather-Forecast/internal/model"
)

// ErrMalformedPayload reports a payload that yields no forecast at all:
// invalid JSON, a non-object top level, or a missing/empty data array.
// Missing leaf fields inside a day object are not malformed; they degrade
// to empty strings for that field only.
var ErrMalformedPayload = errors.New("malformed weather payload")

// advisorySlot is the fixed position of the advisory entry inside the
// upstream index array.
const advisorySlot = 3

type payload struct {
	City string `json:"city"`
	AQI  struct {
		PM25 string `json:"pm25"`
	} `json:"aqi"`
	Data []dayObject `json:"data"`
}

type dayObject struct {
	Date     string   `json:"date"`
	Week     string   `json:"week"`
	Wea      string   `json:"wea"`
	Tem      string   `json:"tem"`
	Tem1     string   `json:"tem1"` // daily high
	Tem2     string   `json:"tem2"` // daily low
	Win      []string `json:"win"`
	WinSpeed string   `json:"win_speed"`
	AirLevel string   `json:"air_level"`
	Humidity string   `json:"humidity"`
	Index    []struct {
		Desc string `json:"desc"`
	} `json:"index"`
}

// Parse decodes a weather API response body into a Forecast. The city
// name and PM2.5 reading arrive once at the top level and are stamped
// onto slot 0, which drives the primary display.
func Parse(rawData []byte) (*model.Forecast, error) {
	var p payload
	if err := json.Unmarshal(rawData, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if len(p.Data) == 0 {
		return nil, fmt.Errorf("%w: no data array", ErrMalformedPayload)
	}

	forecast := &model.Forecast{}
	for i := 0; i < model.DayCount && i < len(p.Data); i++ {
		forecast.Days[i] = toRecord(p.Data[i])
	}
	forecast.Days[0].City = p.City
	forecast.Days[0].PM25 = p.AQI.PM25

	return forecast, nil
}

func toRecord(day dayObject) model.Record {
	rec := model.Record{
		Date:        day.Date,
		Week:        day.Week,
		Condition:   day.Wea,
		TempCurrent: day.Tem,
		TempLow:     day.Tem2,
		TempHigh:    day.Tem1,
		WindLevel:   day.WinSpeed,
		AirLevel:    day.AirLevel,
		Humidity:    day.Humidity,
	}
	if len(day.Win) > 0 {
		rec.WindDirection = day.Win[0]
	}
	if len(day.Index) > advisorySlot {
		rec.Advisory = day.Index[advisorySlot].Desc
	}
	return rec
}
