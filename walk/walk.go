// Package walk provides one-pass traversal over STIX entity trees.
package walk

import (
	"iter"

	stix "github.com/stixkit/stix-go"
)

// Iter returns a lazy pre-order sequence over root and every descendant
// reachable through the stix.Walkable interface. Each node is yielded exactly
// once; entities that do not implement stix.Walkable are leaves. The sequence
// is single use.
//
// A nil root yields nothing.
func Iter(root stix.Entity) iter.Seq[stix.Entity] {
	return func(yield func(stix.Entity) bool) {
		if root == nil {
			return
		}
		visit(root, yield)
	}
}

func visit(e stix.Entity, yield func(stix.Entity) bool) bool {
	if !yield(e) {
		return false
	}

	w, ok := e.(stix.Walkable)
	if !ok {
		return true
	}

	for _, child := range w.Children() {
		if child == nil {
			continue
		}
		if !visit(child, yield) {
			return false
		}
	}
	return true
}

// Walk calls fn for root and every descendant in pre-order. Traversal stops
// at the first error, which is returned.
func Walk(root stix.Entity, fn func(stix.Entity) error) error {
	for e := range Iter(root) {
		if err := fn(e); err != nil {
			return err
		}
	}
	return nil
}
