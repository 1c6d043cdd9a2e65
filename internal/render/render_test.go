package render

import (
	"fmt"
	"testing"

	"github.com/xiaoheizi112/Weather-Forecast/internal/model"
)

func sampleForecast() *model.Forecast {
	f := &model.Forecast{}
	weeks := []string{"星期二", "星期三", "星期四", "星期五", "星期六", "星期日"}
	conditions := []string{"多云转晴", "晴", "阴转小雨", "中雨", "小雨转多云", "多云"}
	levels := []string{"良", "优", "良", "优", "优", "良"}
	for i := 0; i < model.DayCount; i++ {
		f.Days[i] = model.Record{
			Date:          fmt.Sprintf("2026-08-%d", 25+i),
			Week:          weeks[i],
			Condition:     conditions[i],
			TempLow:       "20",
			TempHigh:      "30",
			WindDirection: "南风",
			WindLevel:     "2级",
			AirLevel:      levels[i],
		}
	}
	f.Days[0].City = "北京"
	f.Days[0].TempCurrent = "28"
	f.Days[0].PM25 = "43"
	f.Days[0].Humidity = "58%"
	f.Days[0].Advisory = "昼夜温差大，注意防范感冒"
	return f
}

func TestBuildSummary(t *testing.T) {
	s := BuildSummary(sampleForecast())

	if s.City != "北京市" {
		t.Errorf("city = %q", s.City)
	}
	if s.DateLine != "2026-08-25  星期二" {
		t.Errorf("date line = %q", s.DateLine)
	}
	if s.Temp != "28℃" || s.TempRange != "20℃~30℃" {
		t.Errorf("temps = %q / %q", s.Temp, s.TempRange)
	}
	// Display keeps the transition form; the icon follows the target.
	if s.Condition != "多云转晴" {
		t.Errorf("condition = %q", s.Condition)
	}
	if s.Icon != "Qing.png" {
		t.Errorf("icon = %q", s.Icon)
	}
	if !s.AirBadge.Styled || s.AirBadge.Color != (model.BadgeColor{R: 255, G: 170, B: 127}) {
		t.Errorf("air badge = %+v", s.AirBadge)
	}
}

func TestBuildStrip(t *testing.T) {
	strip := BuildStrip(sampleForecast())

	wantLabels := []string{"今天", "明天", "后天", "星期五", "星期六", "星期日"}
	for i, entry := range strip {
		if entry.DayLabel != wantLabels[i] {
			t.Errorf("slot %d: label = %q, want %q", i, entry.DayLabel, wantLabels[i])
		}
	}
	if strip[0].Date != "08-25" {
		t.Errorf("slot 0 date = %q, want 08-25", strip[0].Date)
	}
	if strip[2].Icon != "XiaoYu.png" {
		t.Errorf("slot 2 icon = %q, want XiaoYu.png (转 target)", strip[2].Icon)
	}
	if strip[3].Icon != "ZhongYu.png" {
		t.Errorf("slot 3 icon = %q", strip[3].Icon)
	}
}

func TestBuildStripUnknownAirLevel(t *testing.T) {
	f := sampleForecast()
	f.Days[1].AirLevel = "爆表"
	strip := BuildStrip(f)

	if strip[1].AirBadge.Styled {
		t.Fatalf("unrecognized level must not be styled: %+v", strip[1].AirBadge)
	}
	if strip[1].AirBadge.Level != "爆表" {
		t.Fatalf("badge keeps the raw level text: %+v", strip[1].AirBadge)
	}
}

func TestBuildCharts(t *testing.T) {
	f := sampleForecast()
	charts := BuildCharts(f, 480, 80)

	// All highs equal 30, so the high polyline is flat at mid-height.
	for i, p := range charts.High.Curve.Points {
		if p.Y != 40 {
			t.Errorf("high point %d: y = %d, want 40", i, p.Y)
		}
		wantX := i*80 + 40
		if p.X != wantX {
			t.Errorf("high point %d: x = %d, want %d", i, p.X, wantX)
		}
	}

	if charts.High.Color != (Color{255, 255, 0}) {
		t.Errorf("high accent = %+v", charts.High.Color)
	}
	if charts.Low.Color != (Color{0, 0, 255}) {
		t.Errorf("low accent = %+v", charts.Low.Color)
	}
	if charts.High.Curve.Labels[0].Text != "30°" {
		t.Errorf("high label 0 = %q", charts.High.Curve.Labels[0].Text)
	}
}

func TestShortDateMalformed(t *testing.T) {
	if got := shortDate("today"); got != "today" {
		t.Fatalf("shortDate passthrough = %q", got)
	}
}

func TestConditionIconFallback(t *testing.T) {
	if got := model.ConditionIcon("外星雨"); got != model.IconUndefined {
		t.Fatalf("unknown condition icon = %q", got)
	}
}
