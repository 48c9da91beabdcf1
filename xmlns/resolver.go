package xmlns

import (
	"bytes"
	"sort"

	stix "github.com/stixkit/stix-go"
	"github.com/stixkit/stix-go/walk"
)

// Resolver resolves the namespace declarations for whole document trees. It
// creates a fresh Registry per document, so a Resolver may be reused across
// serializations.
type Resolver struct {
	types  *stix.TypeRegistry
	optFns []func(*Options)
}

// NewResolver returns a Resolver using the given type metadata.
func NewResolver(types *stix.TypeRegistry, optFns ...func(*Options)) *Resolver {
	return &Resolver{types: types, optFns: optFns}
}

// Resolve walks the tree rooted at root, collects namespace facts from every
// node, and finalizes them into a Resolution. The override maps follow the
// Registry.Finalize semantics.
func (r *Resolver) Resolve(root stix.Entity, nsOverride, schemaLocOverride map[string]string) (*Resolution, error) {
	registry := NewRegistry(r.types, r.optFns...)

	for e := range walk.Iter(root) {
		registry.Collect(e)
	}

	namespaces, schemaLocs, err := registry.Finalize(nsOverride, schemaLocOverride)
	if err != nil {
		return nil, err
	}

	return &Resolution{
		Namespaces:      namespaces,
		SchemaLocations: schemaLocs,
	}, nil
}

// Resolution holds the finalized mappings for one document and renders them
// into the literal strings placed on the document's root element.
type Resolution struct {
	Namespaces      Namespaces
	SchemaLocations SchemaLocations
}

// XMLNS renders the xmlns declarations, one xmlns:prefix="namespace" pair per
// line, sorted by namespace URI and joined with newline-tab for splicing into
// a root element.
func (r *Resolution) XMLNS() string {
	type binding struct {
		prefix, ns string
	}

	bindings := make([]binding, 0, len(r.Namespaces))
	for prefix, ns := range r.Namespaces {
		bindings = append(bindings, binding{prefix: prefix, ns: ns})
	}
	sort.Slice(bindings, func(i, j int) bool {
		if bindings[i].ns != bindings[j].ns {
			return bindings[i].ns < bindings[j].ns
		}
		return bindings[i].prefix < bindings[j].prefix
	})

	buf := bytes.NewBuffer(nil)
	for i, b := range bindings {
		if i > 0 {
			buf.WriteString("\n\t")
		}
		buf.WriteString(`xmlns:`)
		buf.WriteString(b.prefix)
		buf.WriteString(`="`)
		buf.WriteString(b.ns)
		buf.WriteString(`"`)
	}
	return buf.String()
}

// SchemaLocation renders the xsi:schemaLocation attribute with its
// namespace/location pairs sorted by namespace URI. With no pairs it returns
// the empty string.
func (r *Resolution) SchemaLocation() string {
	if len(r.SchemaLocations) == 0 {
		return ""
	}

	buf := bytes.NewBuffer(nil)
	buf.WriteString("xsi:schemaLocation=\"\n\t")
	for i, ns := range sortedKeys(r.SchemaLocations) {
		if i > 0 {
			buf.WriteString("\n\t")
		}
		buf.WriteString(ns)
		buf.WriteString(" ")
		buf.WriteString(r.SchemaLocations[ns])
	}
	buf.WriteString(`"`)
	return buf.String()
}

// DeclarationBlock renders the xmlns declarations and the xsi:schemaLocation
// attribute together, ready to splice into a document's root element.
func (r *Resolution) DeclarationBlock() string {
	xmlns := r.XMLNS()
	schemaLoc := r.SchemaLocation()

	switch {
	case xmlns == "":
		return schemaLoc
	case schemaLoc == "":
		return xmlns
	}
	return xmlns + "\n\t" + schemaLoc
}
