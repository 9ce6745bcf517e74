// Package geometry derives named distance ratios from a landmark set. Ratio
// definitions are data: an ordered table of (name, numerator, denominator)
// entries, each side a mean over one or more landmark segments. A ratio whose
// landmarks are absent is undefined and simply omitted from the bundle.
package geometry

import (
	"math"

	"StyleSense/pkg/landmark"
)

// Anchor resolves to a single point: either one landmark or the midpoint of
// two (the proportion analysis measures from the shoulder midline, not a
// single shoulder).
type Anchor struct {
	A landmark.Name
	B landmark.Name
}

func At(n landmark.Name) Anchor     { return Anchor{A: n} }
func Mid(a, b landmark.Name) Anchor { return Anchor{A: a, B: b} }
func (a Anchor) midpoint() bool     { return a.B != "" }

// Segment is a straight-line measurement between two anchors.
type Segment struct {
	From Anchor
	To   Anchor
}

// Length is the mean length of one or more segments (leg length averages the
// left and right sides).
type Length struct {
	Segments []Segment
}

func Span(from, to Anchor) Length {
	return Length{Segments: []Segment{{From: from, To: to}}}
}

func MeanSpan(segments ...Segment) Length {
	return Length{Segments: segments}
}

// RatioDef names one derived ratio.
type RatioDef struct {
	Name string
	Num  Length
	Den  Length
}

// Bundle maps ratio names to values. Absent names are undefined measurements,
// never zero.
type Bundle struct {
	values map[string]float64
}

func (b *Bundle) Get(name string) (float64, bool) {
	if b == nil {
		return 0, false
	}
	v, ok := b.values[name]
	return v, ok
}

func (b *Bundle) Len() int {
	if b == nil {
		return 0
	}
	return len(b.values)
}

// Values returns a copy of all defined ratios, for diagnostics.
func (b *Bundle) Values() map[string]float64 {
	out := make(map[string]float64, len(b.values))
	for k, v := range b.values {
		out[k] = v
	}
	return out
}

// Distance is the Euclidean distance between two points.
func Distance(p1, p2 landmark.Point) float64 {
	return math.Sqrt((p1.X-p2.X)*(p1.X-p2.X) + (p1.Y-p2.Y)*(p1.Y-p2.Y))
}

// Midpoint of two points.
func Midpoint(p1, p2 landmark.Point) landmark.Point {
	return landmark.Point{X: (p1.X + p2.X) / 2, Y: (p1.Y + p2.Y) / 2}
}

// Compute evaluates every definition against the set. Deterministic: the same
// set always produces the same bundle. Definitions whose landmarks are absent,
// or whose denominator is degenerate (zero length), yield no entry.
func Compute(set *landmark.Set, defs []RatioDef) *Bundle {
	values := make(map[string]float64, len(defs))

	for _, def := range defs {
		num, ok := resolveLength(set, def.Num)
		if !ok {
			continue
		}
		den, ok := resolveLength(set, def.Den)
		if !ok || den == 0 {
			continue
		}
		values[def.Name] = num / den
	}

	return &Bundle{values: values}
}

func resolveLength(set *landmark.Set, l Length) (float64, bool) {
	if len(l.Segments) == 0 {
		return 0, false
	}

	var sum float64
	for _, seg := range l.Segments {
		from, ok := resolveAnchor(set, seg.From)
		if !ok {
			return 0, false
		}
		to, ok := resolveAnchor(set, seg.To)
		if !ok {
			return 0, false
		}
		sum += Distance(from, to)
	}

	return sum / float64(len(l.Segments)), true
}

func resolveAnchor(set *landmark.Set, a Anchor) (landmark.Point, bool) {
	p1, ok := set.Get(a.A)
	if !ok {
		return landmark.Point{}, false
	}
	if !a.midpoint() {
		return p1, true
	}
	p2, ok := set.Get(a.B)
	if !ok {
		return landmark.Point{}, false
	}
	return Midpoint(p1, p2), true
}
