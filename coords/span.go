package coords

import "iter"

// BoundMode controls which ends of a Span rectangle are included, per axis.
// The zero value InclExcl (include start, exclude end) is the default and
// matches half-open slice semantics.
type BoundMode int

const (
	// InclExcl includes the start bound and excludes the end bound.
	InclExcl BoundMode = iota
	// InclIncl includes both bounds.
	InclIncl
	// ExclIncl excludes the start bound and includes the end bound.
	ExclIncl
	// ExclExcl excludes both bounds.
	ExclExcl
)

// startIncluded reports whether the start bound belongs to the span.
func (m BoundMode) startIncluded() bool { return m == InclExcl || m == InclIncl }

// endIncluded reports whether the end bound belongs to the span.
func (m BoundMode) endIncluded() bool { return m == InclIncl || m == ExclIncl }

// axis computes the first and last values (inclusive) and the step for one
// axis of a span. ok is false when the axis contributes no values.
func (m BoundMode) axis(start, end int) (first, last, step int, ok bool) {
	step = 1
	if start > end {
		step = -1
	}
	first, last = start, end
	if !m.startIncluded() {
		first += step
	}
	if !m.endIncluded() {
		last -= step
	}
	if step > 0 {
		return first, last, step, first <= last
	}

	return first, last, step, first >= last
}

// Span iterates every coordinate in the axis-aligned rectangle with corners
// start and end, in row-major order (all columns of a row before the next
// row). Iteration direction per axis follows the start→end ordering: an axis
// where end < start is walked descending. mode selects which bounds are
// included; the default InclExcl includes start and excludes end. A span
// whose excluded bounds collapse it (e.g. a single point under ExclExcl)
// yields nothing.
//
// The returned sequence is finite and restartable: each range starts over.
// Complexity: O(rows×cols) per pass.
func Span(start, end RowCol, mode BoundMode) iter.Seq[RowCol] {
	return func(yield func(RowCol) bool) {
		rFirst, rLast, rStep, rOK := mode.axis(start.Row, end.Row)
		cFirst, cLast, cStep, cOK := mode.axis(start.Col, end.Col)
		if !rOK || !cOK {
			return
		}
		for r := rFirst; r != rLast+rStep; r += rStep {
			for c := cFirst; c != cLast+cStep; c += cStep {
				if !yield(RowCol{Row: r, Col: c}) {
					return
				}
			}
		}
	}
}
