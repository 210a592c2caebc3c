package markup

import "math"

// RainbowStops is the fixed spectrum used by the rainbow marker.
var RainbowStops = []RGB{
	{255, 0, 0},   // red
	{255, 127, 0}, // orange
	{255, 255, 0}, // yellow
	{0, 255, 0},   // green
	{0, 255, 255}, // cyan
	{0, 0, 255},   // blue
	{139, 0, 255}, // violet
}

// Gradient returns steps colors running linearly from start to end, both
// endpoints included. For steps <= 1 it returns just start.
func Gradient(start, end RGB, steps int) []RGB {
	if steps <= 1 {
		return []RGB{start}
	}
	out := make([]RGB, steps)
	for i := range out {
		ratio := float64(i) / float64(steps-1)
		out[i] = lerp(start, end, ratio)
	}
	return out
}

// MultiGradient returns steps colors walking through stops in order. The
// steps are spread evenly over the len(stops)-1 segments; the final color is
// close to, but not necessarily equal to, the last stop. Use Gradient when
// both endpoints must be exact.
//
// MultiGradient panics if stops is empty.
func MultiGradient(stops []RGB, steps int) []RGB {
	if len(stops) == 0 {
		panic("markup: MultiGradient requires at least one color")
	}
	if steps < 0 {
		steps = 0
	}
	out := make([]RGB, steps)
	if len(stops) == 1 {
		for i := range out {
			out[i] = stops[0]
		}
		return out
	}

	segments := len(stops) - 1
	perSegment := float64(steps) / float64(segments)
	for i := range out {
		pos := float64(i) / perSegment
		idx := min(int(pos), segments-1)
		out[i] = lerp(stops[idx], stops[idx+1], pos-float64(idx))
	}
	return out
}

// Interpolate mixes start and end by ratio, which is clamped to [0,1].
func Interpolate(start, end RGB, ratio float64) RGB {
	return lerp(start, end, math.Max(0, math.Min(1, ratio)))
}

func lerp(a, b RGB, t float64) RGB {
	return RGB{
		R: channel(a.R, b.R, t),
		G: channel(a.G, b.G, t),
		B: channel(a.B, b.B, t),
	}
}

// channel rounds half up and clamps to a byte.
func channel(a, b uint8, t float64) uint8 {
	v := math.Floor(float64(a) + t*(float64(b)-float64(a)) + 0.5)
	return uint8(math.Max(0, math.Min(255, v)))
}
