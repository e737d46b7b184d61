package seek

import "context"

// span is a contiguous sub-range [lo, hi) of the input assigned to one worker.
// A reverse span is scanned from hi-1 down to lo.
type span struct {
	lo, hi  int
	reverse bool
}

func (s span) len() int { return s.hi - s.lo }

// splitHalves partitions n elements into the lower and upper worker spans.
//
// Forward:    [0, n/2)       ascending | [n/2, n)       ascending
// OuterFirst: [0, (n-1)/2]   ascending | [(n-1)/2+1, n) descending
func splitHalves(n int, order ScanOrder) [2]span {
	if order == OuterFirst {
		mid := (n - 1) / 2
		return [2]span{
			{lo: 0, hi: mid + 1},
			{lo: mid + 1, hi: n, reverse: true},
		}
	}
	mid := n / 2
	return [2]span{
		{lo: 0, hi: mid},
		{lo: mid, hi: n},
	}
}

// scanSpan looks for target inside sp and returns its absolute position in s.
// Positions are found relative to the span's view and translated back by the
// span offset. ctx is polled every interval elements.
func scanSpan[T comparable](ctx context.Context, s []T, target T, sp span, interval int) (int, bool, error) {
	view := s[sp.lo:sp.hi]
	if len(view) == 0 {
		return NotFound, false, nil
	}
	next := interval
	for n := range len(view) {
		if n == next {
			if err := ctx.Err(); err != nil {
				return NotFound, false, err
			}
			next += interval
		}
		rel := n
		if sp.reverse {
			rel = len(view) - 1 - n
		}
		if view[rel] == target {
			return sp.lo + rel, true, nil
		}
	}
	return NotFound, false, nil
}
