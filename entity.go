// Package stix defines the entity model surface consumed by the namespace
// resolution engine, and the static type metadata registry replacing runtime
// type introspection.
package stix

// Entity is a node in a STIX document tree. Implementations report the type
// tag they were registered under in a TypeRegistry; all other namespace
// metadata is looked up from the registry rather than carried per instance.
type Entity interface {
	// EntityType returns the type tag for this entity, e.g.
	// "indicator:IndicatorType".
	EntityType() string
}

// Walkable is an optional interface an Entity may implement to expose child
// nodes to a document traversal. Entities that do not implement Walkable are
// treated as leaves.
type Walkable interface {
	Children() []Entity
}

// ParsedSource is an optional interface implemented by entities that were
// decoded from an existing XML document. The returned maps carry the
// namespace declarations found in that source document and are reconciled
// with the vocabulary defaults when the document is serialized again.
//
// Programmatically constructed entities do not implement ParsedSource.
type ParsedSource interface {
	// InputNamespaces returns the prefix to namespace mapping declared by
	// the source document.
	InputNamespaces() map[string]string

	// InputSchemaLocations returns the namespace to schema location mapping
	// declared by the source document.
	InputSchemaLocations() map[string]string
}
