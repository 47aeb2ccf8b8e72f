package trip

import (
	"testing"

	"route-weather-api/internal/providers/amap"
)

func step(polyline, duration string, cities ...amap.StepCity) amap.RouteStep {
	return amap.RouteStep{Polyline: polyline, Duration: duration, Cities: cities}
}

func TestExtractCrossCities(t *testing.T) {
	tests := []struct {
		name     string
		steps    []amap.RouteStep
		expected []CrossCity
	}{
		{
			name: "dedup by adcode preserves first-seen order",
			steps: []amap.RouteStep{
				step("", "0",
					amap.StepCity{Adcode: "110000", City: "北京市"},
					amap.StepCity{Adcode: "120000", City: "天津市"},
				),
				step("", "0",
					amap.StepCity{Adcode: "110000", City: "北京市"},
					amap.StepCity{Adcode: "310000", City: "上海市"},
				),
			},
			expected: []CrossCity{
				{Adcode: "110000", Name: "北京市"},
				{Adcode: "120000", Name: "天津市"},
				{Adcode: "310000", Name: "上海市"},
			},
		},
		{
			name: "entries without adcode are discarded",
			steps: []amap.RouteStep{
				step("", "0",
					amap.StepCity{Adcode: "", City: "nowhere"},
					amap.StepCity{Adcode: "320100", City: "南京市"},
				),
			},
			expected: []CrossCity{{Adcode: "320100", Name: "南京市"}},
		},
		{
			name: "missing city name falls back to adcode",
			steps: []amap.RouteStep{
				step("", "0", amap.StepCity{Adcode: "320100"}),
			},
			expected: []CrossCity{{Adcode: "320100", Name: "320100"}},
		},
		{
			name:     "no city data",
			steps:    []amap.RouteStep{step("1,1;2,2", "60")},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractCrossCities(tt.steps)
			if len(got) != len(tt.expected) {
				t.Fatalf("ExtractCrossCities() = %v, want %v", got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("city %d = %+v, want %+v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestSamplePoints(t *testing.T) {
	t.Run("single target interpolates into second segment", func(t *testing.T) {
		// durations 60s + 120s, one target at 90s: 25% into segment two
		steps := []amap.RouteStep{
			step("0,0;1,1;2,2;3,3;4,4", "60"),
			step("5,5;6,6;7,7;8,8;9,9", "120"),
		}
		got := SamplePoints(steps, 1)
		if len(got) != 1 {
			t.Fatalf("SamplePoints() = %v, want 1 point", got)
		}
		// frac 0.25 over 4 intervals lands on index 1
		if got[0].Location != "6,6" {
			t.Errorf("location = %q, want %q", got[0].Location, "6,6")
		}
		if got[0].ETAMinutes != 1 {
			t.Errorf("eta_minutes = %d, want 1", got[0].ETAMinutes)
		}
	})

	t.Run("zero total duration yields no points", func(t *testing.T) {
		steps := []amap.RouteStep{step("0,0;1,1", "0")}
		if got := SamplePoints(steps, 12); got != nil {
			t.Errorf("SamplePoints() = %v, want nil", got)
		}
	})

	t.Run("no polyline points yields no points", func(t *testing.T) {
		steps := []amap.RouteStep{step("", "600")}
		if got := SamplePoints(steps, 12); got != nil {
			t.Errorf("SamplePoints() = %v, want nil", got)
		}
	})

	t.Run("duplicate locations are dropped", func(t *testing.T) {
		// all 12 targets interpolate to the first point of a 2-point segment
		steps := []amap.RouteStep{step("0,0;1,1", "100")}
		got := SamplePoints(steps, 12)
		if len(got) != 1 {
			t.Fatalf("SamplePoints() = %v, want 1 point after dedup", got)
		}
		if got[0].Location != "0,0" {
			t.Errorf("location = %q, want %q", got[0].Location, "0,0")
		}
	})

	t.Run("bounded by max points", func(t *testing.T) {
		steps := []amap.RouteStep{
			step("0,0;1,1;2,2;3,3;4,4;5,5;6,6;7,7;8,8;9,9", "36000"),
		}
		got := SamplePoints(steps, 3)
		if len(got) > 3 {
			t.Errorf("SamplePoints() returned %d points, want at most 3", len(got))
		}
	})
}

func TestSpreadETA(t *testing.T) {
	tests := []struct {
		name      string
		i, n      int
		durationS int
		expected  int
	}{
		{"first of three over an hour", 0, 3, 3600, 15},
		{"second of three over an hour", 1, 3, 3600, 30},
		{"third of three over an hour", 2, 3, 3600, 45},
		{"zero duration", 0, 3, 0, 0},
		{"single city", 0, 1, 7200, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SpreadETA(tt.i, tt.n, tt.durationS); got != tt.expected {
				t.Errorf("SpreadETA(%d, %d, %d) = %d, want %d", tt.i, tt.n, tt.durationS, got, tt.expected)
			}
		})
	}
}
