// Command stixns prints the resolved xmlns and xsi:schemaLocation
// declarations for an existing STIX XML document, reconciling the document's
// own declarations with the default vocabulary tables.
package main

import (
	"encoding/xml"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	stix "github.com/stixkit/stix-go"
	"github.com/stixkit/stix-go/logging"
	"github.com/stixkit/stix-go/xmlns"
)

const xsiNamespace = "http://www.w3.org/2001/XMLSchema-instance"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("stixns", flag.ContinueOnError)
	fs.SetOutput(stderr)
	quiet := fs.Bool("q", false, "suppress resolution warnings")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: stixns [-q] <document.xml>\n\n")
		fmt.Fprintln(stderr, "Prints the finalized namespace declaration block for a STIX document.")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Options:")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if len(fs.Args()) != 1 {
		fmt.Fprintln(stderr, "error: exactly one XML file argument is required")
		fs.Usage()
		return 2
	}

	f, err := os.Open(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	defer f.Close()

	doc, err := readDocument(f)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	var logger logging.Logger = logging.NewStandardLogger(stderr)
	if *quiet {
		logger = logging.Noop{}
	}

	resolver := xmlns.NewResolver(stix.NewTypeRegistry(), func(o *xmlns.Options) {
		o.Logger = logger
	})

	resolution, err := resolver.Resolve(doc, nil, nil)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	fmt.Fprintln(stdout, resolution.DeclarationBlock())
	return 0
}

// document is the root of a parsed XML document reduced to its namespace
// declarations.
type document struct {
	namespaces      map[string]string
	schemaLocations map[string]string
}

func (*document) EntityType() string                        { return "document" }
func (d *document) InputNamespaces() map[string]string      { return d.namespaces }
func (d *document) InputSchemaLocations() map[string]string { return d.schemaLocations }

// readDocument decodes up to the document's root start element and lifts its
// xmlns:* declarations and xsi:schemaLocation pairs.
func readDocument(r io.Reader) (*document, error) {
	decoder := xml.NewDecoder(r)

	for {
		token, err := decoder.Token()
		if err != nil {
			return nil, fmt.Errorf("read root element: %w", err)
		}

		start, ok := token.(xml.StartElement)
		if !ok {
			continue
		}

		doc := &document{
			namespaces:      map[string]string{},
			schemaLocations: map[string]string{},
		}
		for _, attr := range start.Attr {
			switch {
			case attr.Name.Space == "xmlns":
				doc.namespaces[attr.Name.Local] = attr.Value
			case attr.Name.Space == xsiNamespace && attr.Name.Local == "schemaLocation":
				pairs := strings.Fields(attr.Value)
				for i := 0; i+1 < len(pairs); i += 2 {
					doc.schemaLocations[pairs[i]] = pairs[i+1]
				}
			}
		}
		return doc, nil
	}
}
