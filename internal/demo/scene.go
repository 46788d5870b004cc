// Package demo assembles the interaction tree both front ends host: a
// scrolling list of draggable items under an insertion-point drop target,
// stacked above a drop box that accepts external payloads.
package demo

import (
	"fmt"
	"strings"

	"dragd/internal/config"
	"dragd/internal/dnd"
	"dragd/internal/element"
	"dragd/internal/items"
	"dragd/internal/list"
	"dragd/internal/log"
	"dragd/internal/view"
	"dragd/pkg/types"
)

// Metrics carries the front-end specific geometry: terminals measure in
// cells, the GUI in device pixels.
type Metrics struct {
	ItemHeight    float32
	DragThreshold float32
	// ListShare is the fraction of the view height given to the list
	// region; the drop box takes the rest.
	ListShare float32
}

// Scene is one assembled interaction tree plus the view hosting it.
type Scene struct {
	View     *view.View
	List     *list.List
	Sel      *list.SelectionList
	Inserter *dnd.DropInserter
	Box      *dnd.DropBox
	Port     *element.Port

	root    *split
	metrics Metrics

	// OnChange fires after any structural edit, with the list's current
	// content. Front ends persist it and update their status line.
	OnChange func(current []items.Item)
	// OnStatus fires with a short human-readable note about the last
	// protocol event.
	OnStatus func(status string)
}

// Build assembles the scene from configuration and item content.
func Build(cfg *config.Config, host view.Host, content []items.Item, m Metrics) (*Scene, error) {
	if m.ListShare <= 0 || m.ListShare >= 1 {
		m.ListShare = 0.8
	}
	s := &Scene{metrics: m}

	s.List = list.New(m.ItemHeight, s.buildItems(content)...)
	s.Sel = list.NewSelectionList(s.List)

	ins, err := dnd.NewDropInserter(s.Sel, cfg.Accept.Patterns...)
	if err != nil {
		return nil, err
	}
	s.Inserter = ins
	s.Port = element.NewPort(ins)

	box, err := dnd.NewDropBox(element.NewLabel("drop payloads here"), cfg.Accept.Patterns...)
	if err != nil {
		return nil, err
	}
	s.Box = box

	s.root = newSplit(s.Port, box, m.ListShare)
	s.View = view.New(host, s.root)
	s.View.SetTheme(cfg.EngineTheme())

	s.wire()
	return s, nil
}

// Scroll shifts the list viewport by dy and reports whether it moved.
func (s *Scene) Scroll(dy float32) bool {
	b := s.root.ChildBounds(s.View.Bounds(), 0)
	ctx := element.NewContext(s.View, nil, s.View.Theme(), b, s.Port)
	if !s.Port.ScrollBy(ctx, dy) {
		return false
	}
	s.View.Refresh()
	return true
}

// buildItems turns item records into draggable list entries.
func (s *Scene) buildItems(content []items.Item) []element.Element {
	out := make([]element.Element, 0, len(content))
	for _, it := range content {
		d := dnd.NewDraggable(element.NewLabel(it.Title))
		d.SetDragThreshold(s.metrics.DragThreshold)
		d.Enable(!it.Disabled)
		out = append(out, d)
	}
	return out
}

// Items reads the current list content back out of the element tree, in
// document order.
func (s *Scene) Items() []items.Item {
	out := make([]items.Item, 0, s.List.Size())
	for i := 0; i < s.List.Size(); i++ {
		d, ok := s.List.At(i).(*dnd.Draggable)
		if !ok {
			continue
		}
		it := items.Item{Disabled: !d.Enabled()}
		if l, ok := d.Subject().(*element.Label); ok {
			it.Title = l.Text()
		}
		out = append(out, it)
	}
	return out
}

// Reload replaces the list content, clearing any selection.
func (s *Scene) Reload(content []items.Item) {
	s.List.SetItems(s.buildItems(content)...)
	s.View.Refresh()
}

func (s *Scene) wire() {
	s.Inserter.OnMove = func(index int, indices []int) {
		s.changed()
		s.status("moved %d item(s)", len(indices))
	}
	s.Inserter.OnErase = func(indices []int) {
		s.changed()
		s.status("erased %d item(s)", len(indices))
	}
	s.Inserter.OnDrop = func(info types.DropInfo, index int) bool {
		added := s.insertPayload(info, index)
		if added == 0 {
			return false
		}
		s.changed()
		s.status("inserted %d item(s)", added)
		return true
	}
	s.Inserter.OnSelect = func(selection []int, anchor int) {
		s.status("%d selected", len(selection))
	}
	s.Box.OnDrop = func(info types.DropInfo) bool {
		added := s.insertPayload(info, s.List.Size())
		if added == 0 {
			return false
		}
		s.changed()
		s.status("received %d item(s)", added)
		return true
	}
}

// insertPayload turns the payload's conventional items into list entries at
// the given index. Identity tokens carry no content and are skipped.
func (s *Scene) insertPayload(info types.DropInfo, index int) int {
	var added []element.Element
	for _, name := range info.Data.Names() {
		if dnd.IsToken(name) {
			continue
		}
		for _, title := range payloadTitles(name, info.Data.Get(name)) {
			d := dnd.NewDraggable(element.NewLabel(title))
			d.SetDragThreshold(s.metrics.DragThreshold)
			added = append(added, d)
		}
	}
	if len(added) == 0 {
		return 0
	}
	s.List.Insert(index, added...)
	return len(added)
}

// payloadTitles extracts displayable titles from one payload item: URI
// lists contribute one title per line, anything else its content, falling
// back to the item name.
func payloadTitles(name string, content []byte) []string {
	text := strings.TrimSpace(string(content))
	if text == "" {
		return []string{name}
	}
	if name == "text/uri-list" {
		var out []string
		for _, line := range strings.Split(text, "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			out = append(out, baseName(line))
		}
		return out
	}
	return []string{text}
}

// baseName trims a URI to its last path segment.
func baseName(uri string) string {
	trimmed := strings.TrimRight(uri, "/")
	if i := strings.LastIndex(trimmed, "/"); i >= 0 && i+1 < len(trimmed) {
		return trimmed[i+1:]
	}
	return trimmed
}

func (s *Scene) changed() {
	if s.OnChange != nil {
		s.OnChange(s.Items())
	}
}

func (s *Scene) status(format string, args ...interface{}) {
	if s.OnStatus == nil {
		return
	}
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	s.OnStatus(msg)
	log.Debugf("scene: %s", msg)
}
