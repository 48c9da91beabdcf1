package xmlns

import (
	"fmt"
	"sort"
	"strings"

	stix "github.com/stixkit/stix-go"
	"github.com/stixkit/stix-go/idgen"
	"github.com/stixkit/stix-go/logging"
	"github.com/stixkit/stix-go/vocab"
)

// Sample documents historically declared the example namespace with a
// trailing slash, while minted IDs use the slash-free form. Finalize treats
// the two as the same vocabulary.
const (
	exampleNamespace      = "http://example.com"
	exampleNamespaceSlash = "http://example.com/"
)

// Namespaces maps prefixes to namespace URIs.
type Namespaces map[string]string

// SchemaLocations maps namespace URIs to schema location URLs.
type SchemaLocations map[string]string

// Options configures a Registry or Resolver.
type Options struct {
	// Tables are the default vocabulary tables. Defaults to vocab.Default().
	Tables *vocab.Tables

	// IDNamespace is the identifier namespace/alias pair seeded into every
	// finalized namespace map. Defaults to idgen.ExampleNamespace.
	IDNamespace idgen.Namespace

	// Logger receives advisory diagnostics such as unresolved schema
	// locations. Defaults to logging.Noop.
	Logger logging.Logger
}

func resolveOptions(optFns []func(*Options)) Options {
	opts := Options{
		Tables:      vocab.Default(),
		IDNamespace: idgen.ExampleNamespace,
		Logger:      logging.Noop{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return opts
}

// Registry accumulates namespace usage facts for one document serialization.
//
// A Registry is populated by Collect, one call per visited entity, and sealed
// by a single Finalize call. It is not safe for concurrent use; for parallel
// collection give each goroutine its own Registry and Merge the partials
// before finalizing one of them.
type Registry struct {
	types *stix.TypeRegistry
	opts  Options

	// Entity types already inspected. Alias derivation runs over this set
	// once, during Finalize.
	visited map[string]struct{}

	// Prefix/namespace and namespace/schemaLocation declarations carried by
	// entities parsed from an external source.
	inputNamespaces map[string]string
	inputSchemaLocs map[string]string

	finalized           bool
	finalizedNamespaces Namespaces
	finalizedSchemaLocs SchemaLocations
}

// NewRegistry returns an empty registry resolving against the given type
// metadata.
func NewRegistry(types *stix.TypeRegistry, optFns ...func(*Options)) *Registry {
	return &Registry{
		types:           types,
		opts:            resolveOptions(optFns),
		visited:         map[string]struct{}{},
		inputNamespaces: map[string]string{},
		inputSchemaLocs: map[string]string{},
	}
}

// Collect records the namespace facts contributed by one entity.
//
// The entity's type is added to the visited set; re-collecting an already
// visited type contributes nothing further from the type metadata. Input
// namespace and schemaLocation declarations are instance data and are
// unioned on every call.
func (r *Registry) Collect(e stix.Entity) {
	if e == nil {
		return
	}

	r.visited[e.EntityType()] = struct{}{}

	ps, ok := e.(stix.ParsedSource)
	if !ok {
		return
	}
	for prefix, ns := range ps.InputNamespaces() {
		r.inputNamespaces[prefix] = ns
	}
	for ns, loc := range ps.InputSchemaLocations() {
		r.inputSchemaLocs[ns] = loc
	}
}

// Merge unions the collection state of other into r. Both registries must be
// unfinalized; merging after Finalize returns ErrFinalized.
func (r *Registry) Merge(other *Registry) error {
	if r.finalized || other.finalized {
		return ErrFinalized
	}

	for tag := range other.visited {
		r.visited[tag] = struct{}{}
	}
	for prefix, ns := range other.inputNamespaces {
		r.inputNamespaces[prefix] = ns
	}
	for ns, loc := range other.inputSchemaLocs {
		r.inputSchemaLocs[ns] = loc
	}
	return nil
}

// deriveAliases inspects every visited type and splits its namespace
// contribution into an aliased binding or the unaliased bucket.
func (r *Registry) deriveAliases() (collected map[string]string, unaliased map[string]struct{}) {
	collected = map[string]string{}
	unaliased = map[string]struct{}{}

	for tag := range r.visited {
		info, ok := r.types.Lookup(tag)
		if !ok || info.Namespace == "" {
			continue
		}

		if info.Prefix != "" {
			collected[info.Prefix] = info.Namespace
			continue
		}

		// An xsi:type QName of the form "prefix:Local" carries the alias.
		parts := strings.Split(info.QName, ":")
		if len(parts) == 2 {
			collected[parts[0]] = info.Namespace
			continue
		}

		unaliased[info.Namespace] = struct{}{}
	}
	return collected, unaliased
}

// Finalize computes the document's prefix and schemaLocation mappings.
//
// nsOverride (prefix to namespace) and schemaLocOverride (namespace to
// location) are optional caller-supplied values; nil means none. A prefix
// bound to two different namespaces by any pair of sources is a
// *PrefixConflictError and no finalized maps are published.
//
// Finalize seals the registry on success: later calls return the previously
// computed maps and ignore their arguments.
func (r *Registry) Finalize(nsOverride, schemaLocOverride map[string]string) (Namespaces, SchemaLocations, error) {
	if r.finalized {
		return r.finalizedNamespaces, r.finalizedSchemaLocs, nil
	}

	namespaces, err := r.finalizeNamespaces(nsOverride)
	if err != nil {
		return nil, nil, err
	}

	schemaLocs := r.finalizeSchemaLocations(namespaces, schemaLocOverride)

	r.finalizedNamespaces = namespaces
	r.finalizedSchemaLocs = schemaLocs
	r.finalized = true
	return namespaces, schemaLocs, nil
}

// Finalized reports whether Finalize has completed for this registry.
func (r *Registry) Finalized() bool {
	return r.finalized
}

func (r *Registry) finalizeNamespaces(nsOverride map[string]string) (Namespaces, error) {
	collected, unaliased := r.deriveAliases()

	// Baseline namespaces appear in every document, plus the identifier
	// namespace under its own alias.
	working := r.opts.Tables.Baseline()
	working[r.opts.IDNamespace.Alias] = r.opts.IDNamespace.URI

	input := r.fixExampleNamespace(working)

	// Input declarations for namespaces the vocabularies do not own. The
	// well-known ones keep their canonical prefixes regardless of what the
	// source document declared.
	for prefix, ns := range input {
		if r.opts.Tables.IsWellKnown(ns) {
			continue
		}
		if err := checkAndInsert(working, prefix, ns); err != nil {
			return nil, err
		}
	}

	// Namespaces seen on types with no derivable alias resolve through the
	// default tables.
	for _, ns := range sortedSet(unaliased) {
		prefix, ok := r.opts.Tables.PrefixFor(ns)
		if !ok {
			return nil, fmt.Errorf("no default prefix for namespace %q", ns)
		}
		if err := checkAndInsert(working, prefix, ns); err != nil {
			return nil, err
		}
	}

	// Bindings derived from type metadata.
	for prefix, ns := range collected {
		if err := checkAndInsert(working, prefix, ns); err != nil {
			return nil, err
		}
	}

	// Overlay the computed bindings onto the caller overrides. A real
	// conflict is fatal from either side; a non-conflicting duplicate
	// resolves to the computed value.
	out := make(Namespaces, len(nsOverride)+len(working))
	for prefix, ns := range nsOverride {
		out[prefix] = ns
	}
	for prefix, ns := range working {
		if err := checkAndInsert(out, prefix, ns); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// fixExampleNamespace returns a copy of the input namespace map with the
// slash-terminated example namespace dropped when the same prefix already
// resolves to the slash-free form used for minted IDs.
func (r *Registry) fixExampleNamespace(working map[string]string) map[string]string {
	input := make(map[string]string, len(r.inputNamespaces))
	for prefix, ns := range r.inputNamespaces {
		if ns == exampleNamespaceSlash && working[prefix] == exampleNamespace {
			continue
		}
		input[prefix] = ns
	}
	return input
}

func (r *Registry) finalizeSchemaLocations(namespaces Namespaces, schemaLocOverride map[string]string) SchemaLocations {
	out := make(SchemaLocations, len(schemaLocOverride)+len(r.inputSchemaLocs))
	for ns, loc := range schemaLocOverride {
		out[ns] = loc
	}

	// Input locations fill gaps only; caller overrides win over them.
	for ns, loc := range r.inputSchemaLocs {
		if _, ok := out[ns]; ok {
			continue
		}
		out[ns] = loc
	}

	// Resolve every finalized namespace. The published default locations win
	// over anything collected so far.
	for _, ns := range sortedValues(namespaces) {
		if loc, ok := r.opts.Tables.SchemaLocationFor(ns); ok {
			out[ns] = loc
			continue
		}
		if _, ok := out[ns]; ok {
			continue
		}
		if ns == r.opts.IDNamespace.URI || r.opts.Tables.IsXMLInfra(ns) {
			continue
		}

		r.opts.Logger.Logf(logging.Warn, "unable to map namespace %q to a schemaLocation", ns)
	}
	return out
}

// ValidateNamespaces checks a namespace to prefix mapping for two namespaces
// sharing one prefix. Such a mapping renders an invalid XML document; each
// duplicate is reported through the logger but never fails resolution.
func (r *Registry) ValidateNamespaces(nsToPrefix map[string]string) {
	seen := map[string]string{}
	for _, ns := range sortedKeys(nsToPrefix) {
		prefix := nsToPrefix[ns]
		if first, ok := seen[prefix]; ok {
			r.opts.Logger.Logf(logging.Warn,
				"namespace alias %q mapped to %q and %q", prefix, first, ns)
			continue
		}
		seen[prefix] = ns
	}
}

func sortedSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func sortedKeys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// sortedValues returns the distinct namespace URIs of a prefix mapping in
// sorted order.
func sortedValues(m Namespaces) []string {
	set := make(map[string]struct{}, len(m))
	for _, ns := range m {
		set[ns] = struct{}{}
	}
	return sortedSet(set)
}
