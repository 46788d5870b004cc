package types

// Payload is the bag of named items carried by one drag gesture. Names are
// unique; insertion order is irrelevant. The presence of a name is usually
// the signal — most payloads in the engine map an identity token to nil.
type Payload map[string][]byte

// NewPayload returns an empty payload.
func NewPayload() Payload {
	return make(Payload)
}

// Set stores content under name, replacing any previous entry.
func (p Payload) Set(name string, content []byte) {
	p[name] = content
}

// Has reports whether name is present in the payload.
func (p Payload) Has(name string) bool {
	_, ok := p[name]
	return ok
}

// Get returns the content stored under name, or nil.
func (p Payload) Get(name string) []byte {
	return p[name]
}

// Names returns the item names in unspecified order.
func (p Payload) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	return names
}

// DropInfo is the immutable snapshot passed to every tracking and drop
// call: the payload plus the cursor position at the time of the
// notification.
type DropInfo struct {
	Data  Payload
	Where Point
}

// TrackingStatus is the edge signal sent to a drop target as the pointer
// moves with an active payload.
type TrackingStatus int

const (
	// Entering is sent exactly once when a compatible payload first
	// appears over a target.
	Entering TrackingStatus = iota
	// Hovering is re-sent for every pointer move while the payload stays
	// over the target.
	Hovering
	// Leaving ends tracking, whether by moving away, dropping, or
	// cancelling the gesture.
	Leaving
)

// String returns the status name for logs and test failures.
func (s TrackingStatus) String() string {
	switch s {
	case Entering:
		return "entering"
	case Hovering:
		return "hovering"
	case Leaving:
		return "leaving"
	}
	return "unknown"
}
