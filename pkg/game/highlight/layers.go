package highlight

import (
	"github.com/zyedidia/generic/mapset"

	"tilegrid/pkg/engine/world"
)

// Layers holds the selected and preview marks. The zero value is not usable;
// create one with NewLayers.
type Layers struct {
	selected mapset.Set[int]
	preview  mapset.Set[int]
}

// NewLayers creates empty mark layers
func NewLayers() *Layers {
	return &Layers{
		selected: mapset.New[int](),
		preview:  mapset.New[int](),
	}
}

func (l *Layers) layer(kind MarkKind) mapset.Set[int] {
	if kind == MarkPreview {
		return l.preview
	}
	return l.selected
}

// Apply clears every mark of u.Kind, then marks u.Cells
func (l *Layers) Apply(u Update) {
	layer := l.layer(u.Kind)
	layer.Clear()
	u.Cells.Each(func(index int) {
		layer.Put(index)
	})
}

// Clear removes every mark of the given kind
func (l *Layers) Clear(kind MarkKind) {
	l.layer(kind).Clear()
}

// Marks reports which layers mark the given cell
func (l *Layers) Marks(index int) (selected, preview bool) {
	return l.selected.Has(index), l.preview.Has(index)
}

// Selected returns a copy of the selected marks
func (l *Layers) Selected() world.Region {
	return copyRegion(l.selected)
}

// Preview returns a copy of the preview marks
func (l *Layers) Preview() world.Region {
	return copyRegion(l.preview)
}

// Clone returns an independent copy of both layers
func (l *Layers) Clone() *Layers {
	c := NewLayers()
	l.selected.Each(c.selected.Put)
	l.preview.Each(c.preview.Put)
	return c
}

func copyRegion(s mapset.Set[int]) world.Region {
	indices := make([]int, 0, s.Size())
	s.Each(func(index int) {
		indices = append(indices, index)
	})
	return world.RegionOf(indices...)
}
