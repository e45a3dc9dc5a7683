package vm

import (
	"math"
	"strconv"
)

// Value is a tagged union over exactly three variants: Nil, Bool, and
// Number. There is no heap-allocated variant — strings, closures, and
// classes are out of scope.
type Value interface {
	isValue()
	String() string
}

func Nil() Value { return VNil{} }

type VNil struct{}

func (VNil) isValue()       {}
func (VNil) String() string { return "nil" }

type VBool bool

func (VBool) isValue() {}
func (v VBool) String() string {
	if v {
		return "true"
	}
	return "false"
}

type VNum float64

func (VNum) isValue() {}

// String renders the shortest round-trip decimal representation of the
// number, matching the printed form the spec requires: integer values
// render without a trailing ".0", and the non-finite cases render in
// the lowercase C/Rust style ("inf", "-inf") rather than Go's default
// "+Inf"/"-Inf".
func (v VNum) String() string {
	x := float64(v)
	switch {
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	case math.IsNaN(x):
		return "NaN"
	default:
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
}

// ValuePool is an append-only ordered sequence of Values. Insertion
// returns the zero-based index; there is no removal or deduplication.
type ValuePool struct {
	values []Value
}

func (p *ValuePool) Add(v Value) (idx int) {
	idx = len(p.values)
	p.values = append(p.values, v)
	return
}

func (p *ValuePool) Get(idx int) Value { return p.values[idx] }
func (p *ValuePool) Len() int          { return len(p.values) }

// Truthy reports whether v is truthy: everything except Nil and
// Bool(false) is truthy, including Number(0.0).
func Truthy(v Value) bool {
	switch v := v.(type) {
	case VNil:
		return false
	case VBool:
		return bool(v)
	default:
		return true
	}
}

// Eq reports Value equality: same variant and equal payload. Values of
// differing variants are never equal. NaN is never equal to itself,
// inherited from IEEE-754 float comparison.
func Eq(v, w Value) bool {
	switch v := v.(type) {
	case VNil:
		_, ok := w.(VNil)
		return ok
	case VBool:
		ww, ok := w.(VBool)
		return ok && v == ww
	case VNum:
		ww, ok := w.(VNum)
		return ok && v == ww
	default:
		return false
	}
}
