package calc

import (
	"math"
	"testing"
	"time"

	"github.com/guttosm/stockmetrics/internal/domain/models"
)

const eps = 1e-9

func day(n int) time.Time {
	return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func bars(closes ...float64) []models.PriceBar {
	out := make([]models.PriceBar, len(closes))
	for i, c := range closes {
		out[i] = models.PriceBar{Date: day(i), Close: c}
	}
	return out
}

func TestDailyReturn(t *testing.T) {
	if got := DailyReturn(110, 100); math.Abs(got-0.10) > eps {
		t.Fatalf("DailyReturn(110,100)=%v, want 0.10", got)
	}
	if got := DailyReturn(100, 100); got != 0 {
		t.Fatalf("DailyReturn(100,100)=%v, want 0", got)
	}
	if got := DailyReturn(90, 100); math.Abs(got+0.10) > eps {
		t.Fatalf("DailyReturn(90,100)=%v, want -0.10", got)
	}
}

func TestFormatPercent(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0.000"},
		{0.10000000000000009, "10.000"},
		{-0.09999999999999998, "-10.000"},
		{0.123456, "12.346"},
		{0.0001234, "0.012"},
		{-0.0001, "-0.010"},
		{0.5, "50.000"},
	}
	for _, c := range cases {
		if got := FormatPercent(c.in); got != c.want {
			t.Fatalf("FormatPercent(%v)=%q, want %q", c.in, got, c.want)
		}
	}
}

func TestEffectiveStart(t *testing.T) {
	b := bars(100, 101, 102, 103)
	cases := []struct {
		name string
		from time.Time
		want int
	}{
		{name: "before all bars", from: day(-5), want: 0},
		{name: "on first bar", from: day(0), want: 0},
		{name: "on second bar steps back", from: day(1), want: 0},
		{name: "on last bar steps back", from: day(3), want: 2},
		{name: "after all bars", from: day(9), want: 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := EffectiveStart(b, tc.from); got != tc.want {
				t.Fatalf("want %d got %d", tc.want, got)
			}
		})
	}
}

func TestEffectiveStart_GapInCalendar(t *testing.T) {
	// from falls on a non-trading day between two bars
	b := []models.PriceBar{
		{Date: day(0), Close: 1},
		{Date: day(3), Close: 2},
		{Date: day(4), Close: 3},
	}
	if got := EffectiveStart(b, day(2)); got != 0 {
		t.Fatalf("want 0 got %d", got)
	}
}

func TestReturnSeries_StepsBackOneBar(t *testing.T) {
	b := bars(100, 110, 99)
	got, err := ReturnSeries(b, day(1), nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 records got %d", len(got))
	}
	if !got[0].Date.Equal(day(1)) || math.Abs(got[0].DecimalReturn-0.10) > eps || got[0].PercentileReturn != "10.000" {
		t.Fatalf("unexpected first record: %+v", got[0])
	}
	if !got[1].Date.Equal(day(2)) || math.Abs(got[1].DecimalReturn+0.10) > eps || got[1].PercentileReturn != "-10.000" {
		t.Fatalf("unexpected second record: %+v", got[1])
	}
}

func TestReturnSeries_UpperBound(t *testing.T) {
	b := bars(100, 101, 102, 103, 104)
	to := day(3)
	got, err := ReturnSeries(b, day(2), &to)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 records got %d", len(got))
	}
	if !got[0].Date.Equal(day(2)) || !got[1].Date.Equal(day(3)) {
		t.Fatalf("unexpected dates: %s, %s", got[0].Date, got[1].Date)
	}
}

func TestReturnSeries_EmptyCases(t *testing.T) {
	cases := []struct {
		name string
		bars []models.PriceBar
		from time.Time
	}{
		{name: "no bars", bars: nil, from: day(0)},
		{name: "single bar", bars: bars(100), from: day(0)},
		{name: "from after all bars", bars: bars(100, 101), from: day(10)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ReturnSeries(tc.bars, tc.from, nil)
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if got == nil || len(got) != 0 {
				t.Fatalf("want empty non-nil series, got %+v", got)
			}
		})
	}
}

func TestReturnSeries_WindowBeforeTo(t *testing.T) {
	// the only bars inside [from, to] leave a single bar selected
	b := bars(100, 101, 102)
	to := day(0)
	got, err := ReturnSeries(b, day(0), &to)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("want empty got %d", len(got))
	}
}

func TestSelectWindow_TruncatesTo30(t *testing.T) {
	closes := make([]float64, 45)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	b := bars(closes...)

	sel := SelectWindow(b, day(-1), nil)
	if len(sel) != MaxWindowBars {
		t.Fatalf("want %d bars got %d", MaxWindowBars, len(sel))
	}
	if !sel[0].Date.Equal(day(0)) || !sel[len(sel)-1].Date.Equal(day(29)) {
		t.Fatalf("unexpected window bounds %s..%s", sel[0].Date, sel[len(sel)-1].Date)
	}

	got, err := ReturnSeries(b, day(-1), nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != MaxWindowBars-1 {
		t.Fatalf("want %d returns got %d", MaxWindowBars-1, len(got))
	}
}

func TestBuildReturns_ZeroClose(t *testing.T) {
	if _, err := BuildReturns(bars(0, 10)); err == nil {
		t.Fatalf("expected error on zero previous close")
	}
}
