package walk

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	stix "github.com/stixkit/stix-go"
)

type node struct {
	tag      string
	children []stix.Entity
}

func (n *node) EntityType() string      { return n.tag }
func (n *node) Children() []stix.Entity { return n.children }

// leaf does not implement stix.Walkable.
type leaf struct {
	tag string
}

func (l *leaf) EntityType() string { return l.tag }

func TestIter(t *testing.T) {
	root := &node{tag: "package", children: []stix.Entity{
		&node{tag: "indicator", children: []stix.Entity{
			&leaf{tag: "observable"},
			nil,
			&leaf{tag: "title"},
		}},
		&leaf{tag: "ttp"},
	}}

	var tags []string
	for e := range Iter(root) {
		tags = append(tags, e.EntityType())
	}

	expect := []string{"package", "indicator", "observable", "title", "ttp"}
	if diff := cmp.Diff(expect, tags); len(diff) != 0 {
		t.Errorf("traversal mismatch (-expect +actual):\n%s", diff)
	}
}

func TestIterNilRoot(t *testing.T) {
	for range Iter(nil) {
		t.Fatal("expect no nodes for nil root")
	}
}

func TestIterEarlyStop(t *testing.T) {
	root := &node{tag: "package", children: []stix.Entity{
		&leaf{tag: "first"},
		&leaf{tag: "second"},
	}}

	var count int
	for range Iter(root) {
		count++
		if count == 2 {
			break
		}
	}

	if e, a := 2, count; e != a {
		t.Errorf("expect %d nodes, got %d", e, a)
	}
}

func TestWalk(t *testing.T) {
	root := &node{tag: "package", children: []stix.Entity{
		&leaf{tag: "boom"},
		&leaf{tag: "after"},
	}}

	boom := errors.New("boom")
	var visited []string
	err := Walk(root, func(e stix.Entity) error {
		visited = append(visited, e.EntityType())
		if e.EntityType() == "boom" {
			return boom
		}
		return nil
	})

	if !errors.Is(err, boom) {
		t.Fatalf("expect boom error, got %v", err)
	}

	expect := []string{"package", "boom"}
	if diff := cmp.Diff(expect, visited); len(diff) != 0 {
		t.Errorf("traversal mismatch (-expect +actual):\n%s", diff)
	}
}
