package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/siili/climbingroutes/pkg/geometry"
	"github.com/siili/climbingroutes/pkg/route"
)

// SegmentInfo contains information about one segment of a route
type SegmentInfo struct {
	From   int
	To     int
	Start  geometry.Vector3
	End    geometry.Vector3
	Length float64
	Rise   float64 // vertical change along the segment
}

// RouteStats contains various measurements of a route
type RouteStats struct {
	BoundingBox      geometry.BoundingBox
	Dimensions       geometry.Vector3
	WaypointCount    int
	SegmentCount     int
	TotalLength      float64
	MinSegmentLength float64
	MaxSegmentLength float64
	AvgSegmentLength float64
	HeightGain       float64 // sum of upward segment rises
	Degenerate       int     // segments between coincident waypoints
	Segments         []SegmentInfo
}

// AnalyzeRoute measures a route from its current segments
func AnalyzeRoute(r *route.Chain) *RouteStats {
	result := &RouteStats{
		BoundingBox:   geometry.BoundsOf(r.Positions()),
		WaypointCount: r.Len(),
		Segments:      make([]SegmentInfo, 0, r.Len()),
	}
	result.Dimensions = result.BoundingBox.Size()

	minLength := math.MaxFloat64
	maxLength := 0.0

	for _, w := range r.Waypoints() {
		s, ok := w.Segment()
		if !ok {
			continue
		}

		info := SegmentInfo{
			From:   s.From,
			To:     s.To,
			Start:  s.Start(),
			End:    s.End(),
			Length: s.Length,
		}
		info.Rise = info.End.Y - info.Start.Y
		result.Segments = append(result.Segments, info)

		result.TotalLength += s.Length
		if info.Rise > 0 {
			result.HeightGain += info.Rise
		}
		if s.Degenerate {
			result.Degenerate++
		}
		if s.Length < minLength {
			minLength = s.Length
		}
		if s.Length > maxLength {
			maxLength = s.Length
		}
	}

	result.SegmentCount = len(result.Segments)
	if result.SegmentCount > 0 {
		result.MinSegmentLength = minLength
		result.MaxSegmentLength = maxLength
		result.AvgSegmentLength = result.TotalLength / float64(result.SegmentCount)
	}

	return result
}

// FindLongestSegments returns the N longest segments of the route
func FindLongestSegments(result *RouteStats, count int) []SegmentInfo {
	segments := make([]SegmentInfo, len(result.Segments))
	copy(segments, result.Segments)

	sort.SliceStable(segments, func(i, j int) bool {
		return segments[i].Length > segments[j].Length
	})

	if count < 0 {
		count = 0
	}
	if count > len(segments) {
		count = len(segments)
	}

	return segments[:count]
}

// FindNearestWaypoint returns the index of the waypoint nearest to a point, or -1 for
// an empty route
func FindNearestWaypoint(r *route.Chain, point geometry.Vector3) (int, float64) {
	nearest := -1
	minDistance := math.MaxFloat64

	for i, p := range r.Positions() {
		distance := point.Distance(p)
		if distance < minDistance {
			minDistance = distance
			nearest = i
		}
	}

	return nearest, minDistance
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "m"
	}
	return fmt.Sprintf("%.3f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}
