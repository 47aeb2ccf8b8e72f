package trip

import (
	"route-weather-api/internal/providers/amap"
)

// DefaultMaxWaypoints bounds how many points the fallback sampler emits.
const DefaultMaxWaypoints = 12

// CrossCity is a distinct city the route passes through, deduplicated by
// adcode in first-seen order.
type CrossCity struct {
	Adcode string
	Name   string
}

// SampledPoint is a representative route point with its elapsed-time ETA.
type SampledPoint struct {
	Location   string
	ETAMinutes int
}

// ExtractCrossCities scans every step's city list in order and keeps the
// first occurrence of each adcode. Entries without an adcode are discarded;
// a missing city name falls back to the adcode.
func ExtractCrossCities(steps []amap.RouteStep) []CrossCity {
	var out []CrossCity
	seen := make(map[string]struct{})
	for _, st := range steps {
		for _, c := range st.Cities {
			if c.Adcode == "" {
				continue
			}
			if _, ok := seen[c.Adcode]; ok {
				continue
			}
			seen[c.Adcode] = struct{}{}
			name := c.City.String()
			if name == "" {
				name = c.Adcode
			}
			out = append(out, CrossCity{Adcode: c.Adcode, Name: name})
		}
	}
	return out
}

type segment struct {
	points   []string
	duration int
}

// SamplePoints picks up to maxPoints representative points evenly spaced in
// elapsed time across the route, approximating each point's ETA by
// distributing the total duration proportionally over the steps. Duplicate
// locations are dropped, first occurrence wins.
func SamplePoints(steps []amap.RouteStep, maxPoints int) []SampledPoint {
	if maxPoints <= 0 {
		maxPoints = DefaultMaxWaypoints
	}

	var segments []segment
	total := 0
	for _, st := range steps {
		dur := st.DurationSeconds()
		total += dur
		if pts := st.Points(); len(pts) > 0 {
			segments = append(segments, segment{points: pts, duration: dur})
		}
	}
	if total <= 0 || len(segments) == 0 {
		return nil
	}

	var out []SampledPoint
	tAcc := 0
	segIdx := 0
	for k := 1; k <= maxPoints; k++ {
		target := total * k / (maxPoints + 1)

		for segIdx < len(segments) && tAcc+segments[segIdx].duration < target {
			tAcc += segments[segIdx].duration
			segIdx++
		}
		if segIdx >= len(segments) {
			break
		}
		seg := segments[segIdx]
		if seg.duration <= 0 {
			// zero-duration segment, skip without consuming a target
			continue
		}

		frac := float64(target-tAcc) / float64(seg.duration)
		if frac < 0 {
			frac = 0
		} else if frac > 1 {
			frac = 1
		}
		ptIdx := 0
		if len(seg.points) > 1 {
			ptIdx = int(frac * float64(len(seg.points)-1))
		}
		out = append(out, SampledPoint{Location: seg.points[ptIdx], ETAMinutes: target / 60})
	}

	seen := make(map[string]struct{}, len(out))
	dedup := out[:0]
	for _, p := range out {
		if _, ok := seen[p.Location]; ok {
			continue
		}
		seen[p.Location] = struct{}{}
		dedup = append(dedup, p)
	}
	return dedup
}

// SpreadETA places city index i of n evenly across the trip duration. This
// deliberately ignores actual inter-city distances.
func SpreadETA(i, n, durationS int) int {
	if durationS <= 0 || n <= 0 {
		return 0
	}
	return int(float64(i+1) / float64(n+1) * (float64(durationS) / 60.0))
}
