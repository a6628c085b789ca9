package layout

// Distribute computes evenly spaced positions for elements between start and
// end along one axis. The first element lands on start and the last on end;
// a single element lands on the midpoint. The other axis keeps each
// element's current coordinate.
//
// Distribute does not move anything; callers apply the returned points.
func Distribute(elements []Positionable, start, end float64, horizontal bool) []Point {
	n := len(elements)
	if n == 0 {
		return nil
	}

	out := make([]Point, n)
	for i, el := range elements {
		var v float64
		if n == 1 {
			v = (start + end) / 2
		} else {
			v = start + (end-start)*float64(i)/float64(n-1)
		}
		out[i] = withAxis(el.Position(), v, horizontal)
	}
	return out
}

// Align computes sequential positions starting at startPos, separating
// consecutive elements by spacing plus the extent of the previous element.
// Like Distribute, it only returns the positions.
func Align(elements []Positionable, startPos, spacing float64, horizontal bool) []Point {
	if len(elements) == 0 {
		return nil
	}

	out := make([]Point, len(elements))
	cursor := startPos
	for i, el := range elements {
		out[i] = withAxis(el.Position(), cursor, horizontal)
		size := el.Size()
		if horizontal {
			cursor += size.Width + spacing
		} else {
			cursor += size.Height + spacing
		}
	}
	return out
}

func withAxis(p Point, v float64, horizontal bool) Point {
	if horizontal {
		p.X = v
	} else {
		p.Y = v
	}
	return p
}
