package ecs

import "github.com/milk9111/clickwalk/ecs/component"

// Query returns the live entities that carry every kind, in the dense order
// of the smallest store.
func (w *World) Query(kinds ...component.AnyKind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}

	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		if k == nil {
			return nil
		}
		s := w.store(k.ID(), false)
		if s == nil || s.Len() == 0 {
			return nil
		}
		sets = append(sets, s)
	}

	// iterate smaller set
	smallest := sets[0]
	for _, s := range sets[1:] {
		if s.Len() < smallest.Len() {
			smallest = s
		}
	}

	src := smallest.Entities()
	out := make([]Entity, 0, len(src))
	for _, e := range src {
		match := w.IsAlive(e)
		for _, s := range sets {
			if !match {
				break
			}
			match = s.Has(e)
		}
		if match {
			out = append(out, e)
		}
	}
	return out
}

// First returns any entity carrying kind.
func (w *World) First(kind component.AnyKind) (Entity, bool) {
	ents := w.Query(kind)
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}
