// Package vocab holds the default namespace tables for the supported
// vocabularies: canonical prefixes, published schema locations, and the
// baseline namespaces present in every exported document.
//
// The tables are static configuration embedded with the library. They are
// loaded once and shared by reference; a Tables value is immutable and safe
// for concurrent use.
package vocab

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed namespaces.yaml
var embeddedTables []byte

// entry is one namespace record in the tables file.
type entry struct {
	Namespace      string `yaml:"namespace"`
	Prefix         string `yaml:"prefix"`
	SchemaLocation string `yaml:"schema_location,omitempty"`
	XMLInfra       bool   `yaml:"xml,omitempty"`
}

type tablesFile struct {
	Baseline   map[string]string `yaml:"baseline"`
	Namespaces []entry           `yaml:"namespaces"`
}

// Tables is an immutable view over the default vocabulary tables.
type Tables struct {
	prefixes        map[string]string
	schemaLocations map[string]string
	xmlInfra        map[string]struct{}
	baseline        map[string]string
}

// Parse builds Tables from YAML table data. Every entry must carry a
// namespace and a prefix; a namespace may appear only once.
func Parse(data []byte) (*Tables, error) {
	var f tablesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse namespace tables: %w", err)
	}

	t := &Tables{
		prefixes:        make(map[string]string, len(f.Namespaces)),
		schemaLocations: make(map[string]string),
		xmlInfra:        make(map[string]struct{}),
		baseline:        make(map[string]string, len(f.Baseline)),
	}

	for _, e := range f.Namespaces {
		if e.Namespace == "" || e.Prefix == "" {
			return nil, fmt.Errorf("namespace table entry missing namespace or prefix: %+v", e)
		}
		if _, ok := t.prefixes[e.Namespace]; ok {
			return nil, fmt.Errorf("duplicate namespace table entry for %q", e.Namespace)
		}

		t.prefixes[e.Namespace] = e.Prefix
		if e.SchemaLocation != "" {
			t.schemaLocations[e.Namespace] = e.SchemaLocation
		}
		if e.XMLInfra {
			t.xmlInfra[e.Namespace] = struct{}{}
		}
	}

	for prefix, ns := range f.Baseline {
		if _, ok := t.prefixes[ns]; !ok {
			return nil, fmt.Errorf("baseline namespace %q has no table entry", ns)
		}
		t.baseline[prefix] = ns
	}

	return t, nil
}

var (
	defaultOnce   sync.Once
	defaultTables *Tables
)

// Default returns the embedded vocabulary tables. The embedded data is part
// of the library; a parse failure is a build defect and panics.
func Default() *Tables {
	defaultOnce.Do(func() {
		t, err := Parse(embeddedTables)
		if err != nil {
			panic(fmt.Sprintf("vocab: embedded tables invalid: %v", err))
		}
		defaultTables = t
	})
	return defaultTables
}

// PrefixFor returns the canonical prefix for the given namespace URI.
func (t *Tables) PrefixFor(namespace string) (string, bool) {
	p, ok := t.prefixes[namespace]
	return p, ok
}

// SchemaLocationFor returns the published schema location for the given
// namespace URI. Not every namespace has a published schema.
func (t *Tables) SchemaLocationFor(namespace string) (string, bool) {
	loc, ok := t.schemaLocations[namespace]
	return loc, ok
}

// IsWellKnown reports whether the namespace is one of the vocabularies' own
// namespaces. Well-known namespaces keep their canonical prefixes; input
// documents cannot rebind them.
func (t *Tables) IsWellKnown(namespace string) bool {
	_, ok := t.prefixes[namespace]
	return ok
}

// IsXMLInfra reports whether the namespace is a core XML infrastructure
// namespace. These never have schema locations of their own.
func (t *Tables) IsXMLInfra(namespace string) bool {
	_, ok := t.xmlInfra[namespace]
	return ok
}

// Baseline returns a copy of the prefix to namespace pairs that appear in
// every exported document.
func (t *Tables) Baseline() map[string]string {
	out := make(map[string]string, len(t.baseline))
	for prefix, ns := range t.baseline {
		out[prefix] = ns
	}
	return out
}

// Len returns the number of namespaces in the tables.
func (t *Tables) Len() int {
	return len(t.prefixes)
}
