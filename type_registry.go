package stix

// TypeInfo holds the static namespace metadata for one entity type.
//
// Vocabulary packages register a TypeInfo for every entity type they define.
// The namespace resolution engine consults this table instead of inspecting
// entity values at runtime.
type TypeInfo struct {
	// Namespace is the home namespace URI of the type. Types with no home
	// namespace contribute nothing to namespace resolution.
	Namespace string

	// Prefix is an explicit namespace prefix for the type. When set it
	// overrides any prefix derived from QName.
	Prefix string

	// QName is the qualified xsi:type name of the type in "prefix:Local"
	// form. When Prefix is empty, the prefix portion of QName is used as the
	// namespace alias.
	QName string
}

// TypeRegistry maps entity type tags to their namespace metadata.
//
// Vocabulary packages build a registry once at startup holding every entity
// type for the vocabulary, and share it across all serializations.
type TypeRegistry struct {
	entries map[string]TypeInfo
}

// NewTypeRegistry returns an empty type registry.
func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{entries: map[string]TypeInfo{}}
}

// Register adds or replaces the metadata for the given type tag.
func (t *TypeRegistry) Register(tag string, info TypeInfo) {
	t.entries[tag] = info
}

// Lookup returns the metadata registered for the given type tag.
func (t *TypeRegistry) Lookup(tag string) (TypeInfo, bool) {
	info, ok := t.entries[tag]
	return info, ok
}

// Len returns the number of registered types.
func (t *TypeRegistry) Len() int {
	return len(t.entries)
}
