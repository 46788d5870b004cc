package dnd

import (
	"github.com/gobwas/glob"

	"dragd/internal/element"
	"dragd/internal/errors"
	"dragd/pkg/types"
)

// DropBase implements the drop-target base protocol: an interest set of
// payload-name patterns, the is-tracking flag driven by Entering, Hovering
// and Leaving edges, and the unconditional tracking reset on drop. Concrete
// targets embed it and override Draw and Drop.
type DropBase struct {
	element.Proxy
	token    string
	names    []string
	globs    []glob.Glob
	prepared bool
	tracking bool
}

// NewDropBase returns a drop-target base wrapping subject with the given
// interest set. Names may be glob patterns ("text/*"); an uncompilable
// pattern is rejected.
func NewDropBase(subject element.Element, names ...string) (*DropBase, error) {
	d := &DropBase{Proxy: element.NewProxy(subject), token: NewToken()}
	if err := d.Register(names...); err != nil {
		return nil, err
	}
	return d, nil
}

// Register replaces the interest set. The tracking protocol never mutates
// it; re-registration is the only way to change interest after
// construction.
func (d *DropBase) Register(names ...string) error {
	globs := make([]glob.Glob, 0, len(names))
	for _, name := range names {
		g, err := glob.Compile(name)
		if err != nil {
			return errors.NewPatternError("invalid interest pattern", name, err)
		}
		globs = append(globs, g)
	}
	d.names = append([]string(nil), names...)
	d.globs = globs
	return nil
}

// Prepare adds the target's own identity token to its interest set, so the
// target can be addressed directly as well as by content name. Concrete
// targets call it once at construction; idempotent.
func (d *DropBase) Prepare() {
	d.prepared = true
}

// Token returns the target's identity token.
func (d *DropBase) Token() string {
	return d.token
}

// Names returns the effective interest set: the registered patterns plus,
// once prepared, the identity token.
func (d *DropBase) Names() []string {
	names := append([]string(nil), d.names...)
	if d.prepared {
		names = append(names, d.token)
	}
	return names
}

// IsTracking reports whether a compatible payload is currently hovering
// this target.
func (d *DropBase) IsTracking() bool {
	return d.tracking
}

// WantsDrop reports whether the payload carries at least one name matching
// the interest set.
func (d *DropBase) WantsDrop(info types.DropInfo) bool {
	if d.prepared && info.Data.Has(d.token) {
		return true
	}
	for name := range info.Data {
		for _, g := range d.globs {
			if g.Match(name) {
				return true
			}
		}
	}
	return false
}

// TrackDrop updates the tracking flag from the incoming edge: Leaving
// always clears it, Entering and Hovering set it only for a compatible
// payload. A redraw is requested only when the flag actually changes, so
// repeated identical edges stay idempotent.
func (d *DropBase) TrackDrop(ctx *element.Context, info types.DropInfo, status types.TrackingStatus) {
	was := d.tracking
	if status == types.Leaving {
		d.tracking = false
	} else if d.WantsDrop(info) {
		d.tracking = true
	}
	if d.tracking != was {
		ctx.View.Refresh()
	}
}

// Drop ends tracking unconditionally and rejects the payload. Concrete
// targets call this first, then decide acceptance; the reset must happen
// whether or not the drop is accepted.
func (d *DropBase) Drop(ctx *element.Context, info types.DropInfo) bool {
	d.tracking = false
	return false
}
