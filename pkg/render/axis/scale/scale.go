// Package scale turns raw data ranges into "nice" axis ranges.
//
// A nice range starts and ends on a multiple of an interval taken from
// the ladder {1, 2, 5, 10}×10^k, so tick labels read as round numbers:
//
//	out, ticks, step := scale.ComputeRange([2]float64{0.25, 96.7}, 10)
//	// out == [0 100], ticks == 11, step == 10
//
// ComputeRange is pure and terminates in a bounded number of steps for
// any finite input, including equal, reversed and extreme-magnitude pairs.
package scale

import "math"

const (
	// MinTicks is the smallest tick count an axis can show (both ends).
	MinTicks = 2

	// MaxTicks caps the tick count, matching the label limit of an axis.
	MaxTicks = 25

	// perturb is the relative half-width used to widen a zero-span range.
	perturb = 0.01

	// snapEps absorbs floating point noise when dividing by the interval.
	snapEps = 1e-9
)

// ladder holds the nice mantissas and the geometric midpoints that
// separate them. A mantissa below cuts[i] selects ladder[i].
var (
	ladder = [...]float64{1, 2, 5, 10}
	cuts   = [...]float64{math.Sqrt2, math.Sqrt(10), math.Sqrt(50)}
)

// ComputeRange expands in to a nice range and reports how many ticks
// (including both end ticks) span it and the distance between them.
//
// requestedTicks is clamped to [MinTicks, MaxTicks]. The returned range
// keeps the orientation of in: a reversed input yields a reversed output,
// while interval is always the positive step size. An input with zero
// span is widened by 1% of its magnitude (or ±0.01 around zero) first.
func ComputeRange(in [2]float64, requestedTicks int) (out [2]float64, ticks int, interval float64) {
	n := clampTicks(requestedTicks)
	reversed := in[0] > in[1]
	lo, hi := sorted(in)
	if lo == hi {
		lo, hi = widen(lo)
	}

	out, ticks, interval = niceRange(lo, hi, n)
	if reversed {
		out[0], out[1] = out[1], out[0]
	}
	return out, ticks, interval
}

// Nice returns the nice interval closest (by ratio) to the raw step x.
// x must be positive and finite.
func Nice(x float64) float64 { return nearestRung(x).value() }

// rung is a step ladder[idx]×10^exp with idx in 0..2 (1, 2 or 5). Keeping
// the exponent as an integer lets the ladder be climbed exactly, whatever
// rounding Log10 does near powers of ten.
type rung struct {
	exp int
	idx int
}

func (r rung) value() float64 { return ladder[r.idx] * math.Pow10(r.exp) }

// next returns the rung one step up the ladder.
func (r rung) next() rung {
	if r.idx++; r.idx == len(ladder)-1 {
		return rung{exp: r.exp + 1}
	}
	return r
}

func nearestRung(x float64) rung {
	exp := int(math.Floor(math.Log10(x)))
	mant := x / math.Pow10(exp)
	// Log10 may land one off near exact powers of ten.
	switch {
	case mant >= 10:
		exp++
		mant /= 10
	case mant < 1:
		exp--
		mant *= 10
	}
	for i, c := range cuts {
		if mant < c {
			return rung{exp: exp, idx: i}
		}
	}
	return rung{exp: exp + 1}
}

func niceRange(lo, hi float64, n int) ([2]float64, int, float64) {
	half := hi/2 - lo/2
	if !finitePositive(half) {
		return plain(lo, hi)
	}

	// log10(span/(n-1)) computed without forming span, which may overflow.
	logIdeal := math.Log10(half) + math.Log10(2) - math.Log10(float64(n-1))
	ideal := math.Pow(10, logIdeal)
	if !finitePositive(ideal) {
		return plain(lo, hi)
	}

	// Each rung at least doubles the step, so a handful of rounds always
	// brings the count under MaxTicks.
	r := nearestRung(ideal)
	for range 8 {
		step := r.value()
		if !finitePositive(step) {
			return plain(lo, hi)
		}
		out, ticks, ok := snap(lo, hi, step)
		if !ok {
			return plain(lo, hi)
		}
		if ticks <= MaxTicks {
			return out, ticks, step
		}
		r = r.next()
	}
	return plain(lo, hi)
}

// snap expands [lo, hi] outwards to multiples of step.
func snap(lo, hi, step float64) ([2]float64, int, bool) {
	qLo := settle(lo / step)
	qHi := settle(hi / step)
	first := math.Floor(qLo)
	last := math.Ceil(qHi)
	if last <= first {
		last = first + 1
	}

	out := [2]float64{first * step, last * step}
	if math.IsInf(out[0], 0) || math.IsInf(out[1], 0) {
		return out, 0, false
	}
	steps := last - first
	if steps > MaxTicks*16 {
		// Far too many steps; let the caller climb the ladder.
		return out, MaxTicks + 1, true
	}
	return out, int(steps) + 1, true
}

// settle rounds q to the nearest integer when it is within snapEps of it.
func settle(q float64) float64 {
	if r := math.Round(q); math.Abs(q-r) < snapEps*math.Max(1, math.Abs(r)) {
		return r
	}
	return q
}

// plain is the last-resort layout for ranges too wide to subdivide: the
// range itself with two ticks.
func plain(lo, hi float64) ([2]float64, int, float64) {
	step := hi - lo
	if !finitePositive(step) {
		step = math.MaxFloat64
	}
	return [2]float64{lo, hi}, MinTicks, step
}

func widen(v float64) (float64, float64) {
	if v == 0 {
		return -perturb, perturb
	}
	d := math.Abs(v) * perturb
	lo, hi := v-d, v+d
	switch {
	case lo == hi:
		// v is so small that 1% of it underflows.
		return v - perturb, v + perturb
	case math.IsInf(hi, 1):
		return v - 2*d, v
	case math.IsInf(lo, -1):
		return v, v + 2*d
	}
	return lo, hi
}

func sorted(in [2]float64) (float64, float64) {
	if in[0] > in[1] {
		return in[1], in[0]
	}
	return in[0], in[1]
}

func clampTicks(n int) int {
	return max(MinTicks, min(MaxTicks, n))
}

func finitePositive(x float64) bool {
	return x > 0 && !math.IsInf(x, 1) && !math.IsNaN(x)
}
