package parser

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/xiaoheizi112/Weather-Forecast/internal/model"
)

func loadFixture(t *testing.T, name string) []byte {
	t.Helper()
	rawData, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("read fixture %s: %v", name, err)
	}
	return rawData
}

func TestParseFullPayload(t *testing.T) {
	forecast, err := Parse(loadFixture(t, "forecast_v9.json"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	today := forecast.Today()
	want := model.Record{
		City:          "北京",
		Date:          "2026-08-25",
		Week:          "星期二",
		Condition:     "多云转晴",
		TempCurrent:   "28",
		TempLow:       "22",
		TempHigh:      "31",
		WindDirection: "东南风",
		WindLevel:     "2级",
		AirLevel:      "良",
		Humidity:      "58%",
		PM25:          "43",
		Advisory:      "昼夜温差大，注意防范感冒",
	}
	if today != want {
		t.Fatalf("today mismatch:\n got %+v\nwant %+v", today, want)
	}

	for i := 0; i < model.DayCount; i++ {
		day, err := forecast.Day(i)
		if err != nil {
			t.Fatalf("day %d: %v", i, err)
		}
		if day.Date == "" || day.Condition == "" {
			t.Errorf("day %d not populated: %+v", i, day)
		}
	}

	// City and PM2.5 arrive once at the top level and belong to slot 0 only.
	if d, _ := forecast.Day(1); d.City != "" || d.PM25 != "" {
		t.Errorf("slot 1 should not carry city/pm25: %+v", d)
	}
}

func TestParseHighsAndLows(t *testing.T) {
	forecast, err := Parse(loadFixture(t, "forecast_v9.json"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	wantHighs := [model.DayCount]int{31, 32, 28, 26, 27, 29}
	wantLows := [model.DayCount]int{22, 23, 21, 20, 19, 20}
	if forecast.Highs() != wantHighs {
		t.Errorf("highs = %v, want %v", forecast.Highs(), wantHighs)
	}
	if forecast.Lows() != wantLows {
		t.Errorf("lows = %v, want %v", forecast.Lows(), wantLows)
	}
}

func TestParseIgnoresSeventhDay(t *testing.T) {
	forecast, err := Parse(loadFixture(t, "forecast_v9.json"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	// The fixture carries 7 day objects; only 6 slots exist.
	if last, _ := forecast.Day(model.DayCount - 1); last.Date != "2026-08-30" {
		t.Fatalf("last slot = %q, want 2026-08-30", last.Date)
	}
}

func TestParseInvalidJSON(t *testing.T) {
	if _, err := Parse([]byte(`{"city": "北京"`)); !errors.Is(err, ErrMalformedPayload) {
		t.Fatalf("expected ErrMalformedPayload, got %v", err)
	}
}

func TestParseTopLevelNotObject(t *testing.T) {
	if _, err := Parse([]byte(`[1, 2, 3]`)); !errors.Is(err, ErrMalformedPayload) {
		t.Fatalf("expected ErrMalformedPayload, got %v", err)
	}
}

func TestParseMissingDataArray(t *testing.T) {
	if _, err := Parse([]byte(`{"city": "北京", "aqi": {"pm25": "43"}}`)); !errors.Is(err, ErrMalformedPayload) {
		t.Fatalf("expected ErrMalformedPayload, got %v", err)
	}
}

func TestParseEmptyDataArray(t *testing.T) {
	if _, err := Parse([]byte(`{"city": "北京", "data": []}`)); !errors.Is(err, ErrMalformedPayload) {
		t.Fatalf("expected ErrMalformedPayload, got %v", err)
	}
}

func TestParseMissingLeafFields(t *testing.T) {
	rawData := []byte(`{
		"city": "北京",
		"data": [
			{"date": "2026-08-25", "wea": "晴"}
		]
	}`)

	forecast, err := Parse(rawData)
	if err != nil {
		t.Fatalf("partial day object must not fail the parse: %v", err)
	}

	today := forecast.Today()
	if today.Date != "2026-08-25" || today.Condition != "晴" {
		t.Fatalf("present fields lost: %+v", today)
	}
	if today.Week != "" || today.WindDirection != "" || today.Advisory != "" || today.Humidity != "" {
		t.Fatalf("missing fields should be empty: %+v", today)
	}
}

func TestParseShortIndexArray(t *testing.T) {
	rawData := []byte(`{
		"city": "北京",
		"data": [
			{"date": "2026-08-25", "index": [{"desc": "a"}, {"desc": "b"}]}
		]
	}`)

	forecast, err := Parse(rawData)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got := forecast.Today().Advisory; got != "" {
		t.Fatalf("advisory should be empty for short index array, got %q", got)
	}
}

func TestParseFewerThanSixDays(t *testing.T) {
	rawData := []byte(`{
		"city": "北京",
		"data": [
			{"date": "2026-08-25", "wea": "晴"},
			{"date": "2026-08-26", "wea": "多云"}
		]
	}`)

	forecast, err := Parse(rawData)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if d, _ := forecast.Day(1); d.Date != "2026-08-26" {
		t.Fatalf("slot 1 = %+v", d)
	}
	if d, _ := forecast.Day(2); d != (model.Record{}) {
		t.Fatalf("slot 2 should be a zero record: %+v", d)
	}
}
