// Package xmlns resolves namespace prefixes and schema locations for a STIX
// document tree before it is serialized to XML.
//
// Usage guidelines:
//
// Registry accumulates namespace facts while a document tree is visited, then
// computes the final prefix and schemaLocation mappings on demand. Collect is
// called once per node, Finalize once per document.
//
// Resolver wraps the traversal, collection and finalization steps and renders
// the finalized mappings into the literal declaration strings placed on a
// document's root element.
package xmlns
