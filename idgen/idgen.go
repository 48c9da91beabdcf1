// Package idgen mints qualified identifiers for entities in an output
// document and exposes the identifier namespace those IDs live in.
package idgen

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Namespace is a namespace URI together with the alias it is declared under.
type Namespace struct {
	URI   string
	Alias string
}

// ExampleNamespace is the default identifier namespace. Note the URI has no
// trailing slash; sample documents historically declared the slash form, and
// the resolution engine reconciles the two.
var ExampleNamespace = Namespace{
	URI:   "http://example.com",
	Alias: "example",
}

// DefaultPrefix is the local-part prefix used when CreateID is called with an
// empty prefix.
const DefaultPrefix = "guid"

// Generator mints qualified IDs of the form "alias:prefix-uuid" within a
// single identifier namespace. The zero value is not usable; use New.
//
// A Generator is safe for concurrent use.
type Generator struct {
	mu sync.Mutex
	ns Namespace
}

// New returns a Generator minting IDs in the given namespace.
func New(ns Namespace) *Generator {
	return &Generator{ns: ns}
}

// Namespace returns the identifier namespace for this generator.
func (g *Generator) Namespace() Namespace {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.ns
}

// SetNamespace changes the identifier namespace for subsequently minted IDs.
func (g *Generator) SetNamespace(ns Namespace) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ns = ns
}

// CreateID returns a new qualified identifier, e.g.
// "example:indicator-1f480124-bd4b-4f4c-9d34-31bf4932be10". An empty prefix
// uses DefaultPrefix.
func (g *Generator) CreateID(prefix string) string {
	if prefix == "" {
		prefix = DefaultPrefix
	}

	g.mu.Lock()
	alias := g.ns.Alias
	g.mu.Unlock()

	return fmt.Sprintf("%s:%s-%s", alias, prefix, uuid.New())
}
