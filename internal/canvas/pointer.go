package canvas

import "image"

// pointerState tracks the click sequence a drawing gesture is built from:
// the anchor of the sequence, the most recent click, the one before it, and
// the full click history. hasFirst distinguishes "no sequence in progress"
// from a sequence that started at the origin.
type pointerState struct {
	first    image.Point
	hasFirst bool
	start    image.Point
	previous image.Point
	points   []image.Point
}

// recordClick folds p into the sequence. The first click of a sequence
// anchors it; later clicks shift start to p and previous to the old start.
func (ps *pointerState) recordClick(p image.Point) {
	if !ps.hasFirst {
		ps.first = p
		ps.hasFirst = true
		ps.start = p
		ps.previous = p
	} else {
		ps.previous = ps.start
		ps.start = p
	}
	ps.points = append(ps.points, p)
}

// active reports whether a sequence is in progress.
func (ps *pointerState) active() bool { return ps.hasFirst }

// reset clears the sequence so the next click starts a fresh one.
func (ps *pointerState) reset() {
	*ps = pointerState{}
}

// undo removes the most recent click. The new last click becomes start; if
// the history empties, the sequence ends entirely.
func (ps *pointerState) undo() {
	if len(ps.points) == 0 {
		return
	}
	ps.points = ps.points[:len(ps.points)-1]
	if len(ps.points) == 0 {
		ps.reset()
		return
	}
	ps.start = ps.points[len(ps.points)-1]
	if len(ps.points) > 1 {
		ps.previous = ps.points[len(ps.points)-2]
	} else {
		ps.previous = ps.start
	}
}
