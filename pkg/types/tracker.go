package types

// TrackerInfo carries the state of one pointer-tracking session from press
// to release. The element that owns the gesture sets Processed to claim an
// event; an unclaimed event falls through to default click/selection
// handling in the caller.
type TrackerInfo struct {
	Start    Point
	Previous Point
	Current  Point
	Mods     Modifiers

	Processed bool
}

// Distance returns the total displacement of the session so far.
func (t *TrackerInfo) Distance() Point {
	return t.Current.Sub(t.Start)
}
