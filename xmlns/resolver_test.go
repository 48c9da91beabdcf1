package xmlns

import (
	"strings"
	"testing"

	stix "github.com/stixkit/stix-go"
)

func TestResolve(t *testing.T) {
	child := &parsedEntity{
		fakeEntity: fakeEntity{tag: "indicator:IndicatorType"},
		inputNS:    map[string]string{"acme": "http://acme.example/threat-intel-1"},
	}
	root := &fakeEntity{
		tag:      "StructuredText",
		children: []stix.Entity{child, &fakeEntity{tag: "AddressObjectType"}},
	}

	resolver := NewResolver(testTypes())
	resolution, err := resolver.Resolve(root, nil, nil)
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}

	// Contributions from every visited node are present.
	if e, a := indicatorNS, resolution.Namespaces["indicator"]; e != a {
		t.Errorf("expect %q, got %q", e, a)
	}
	if e, a := addressNS, resolution.Namespaces["AddressObj"]; e != a {
		t.Errorf("expect %q, got %q", e, a)
	}
	if e, a := "http://acme.example/threat-intel-1", resolution.Namespaces["acme"]; e != a {
		t.Errorf("expect %q, got %q", e, a)
	}
	if e, a := "http://example.com", resolution.Namespaces["example"]; e != a {
		t.Errorf("expect %q, got %q", e, a)
	}
}

func TestResolveConflict(t *testing.T) {
	resolver := NewResolver(testTypes())

	_, err := resolver.Resolve(
		&fakeEntity{tag: "AddressObjectType"},
		map[string]string{"AddressObj": "http://acme.example/address-9"},
		nil,
	)
	if err == nil {
		t.Fatal("expect error, got none")
	}
}

func TestResolutionXMLNS(t *testing.T) {
	resolution := &Resolution{
		Namespaces: Namespaces{
			"xsi":  "http://www.w3.org/2001/XMLSchema-instance",
			"stix": "http://stix.mitre.org/stix-1",
		},
	}

	expect := strings.Join([]string{
		`xmlns:stix="http://stix.mitre.org/stix-1"`,
		`xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"`,
	}, "\n\t")

	if e, a := expect, resolution.XMLNS(); e != a {
		t.Errorf("expect %q, got %q", e, a)
	}
}

func TestResolutionXMLNSSortsByNamespace(t *testing.T) {
	// The prefix order ("a" < "z") must not leak into the output order.
	resolution := &Resolution{
		Namespaces: Namespaces{
			"z": "http://acme.example/alpha-1",
			"a": "http://acme.example/beta-1",
		},
	}

	expect := strings.Join([]string{
		`xmlns:z="http://acme.example/alpha-1"`,
		`xmlns:a="http://acme.example/beta-1"`,
	}, "\n\t")

	if e, a := expect, resolution.XMLNS(); e != a {
		t.Errorf("expect %q, got %q", e, a)
	}
}

func TestResolutionSchemaLocation(t *testing.T) {
	cases := map[string]struct {
		locs   SchemaLocations
		expect string
	}{
		"empty": {
			locs:   SchemaLocations{},
			expect: "",
		},
		"single pair": {
			locs: SchemaLocations{
				"http://stix.mitre.org/stix-1": "http://stix.mitre.org/XMLSchema/core/1.1.1/stix_core.xsd",
			},
			expect: "xsi:schemaLocation=\"\n\t" +
				"http://stix.mitre.org/stix-1 http://stix.mitre.org/XMLSchema/core/1.1.1/stix_core.xsd\"",
		},
		"pairs sorted by namespace": {
			locs: SchemaLocations{
				"http://stix.mitre.org/stix-1":   "http://stix.mitre.org/XMLSchema/core/1.1.1/stix_core.xsd",
				"http://stix.mitre.org/common-1": "http://stix.mitre.org/XMLSchema/common/1.1.1/stix_common.xsd",
			},
			expect: "xsi:schemaLocation=\"\n\t" +
				"http://stix.mitre.org/common-1 http://stix.mitre.org/XMLSchema/common/1.1.1/stix_common.xsd\n\t" +
				"http://stix.mitre.org/stix-1 http://stix.mitre.org/XMLSchema/core/1.1.1/stix_core.xsd\"",
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			resolution := &Resolution{SchemaLocations: c.locs}
			if e, a := c.expect, resolution.SchemaLocation(); e != a {
				t.Errorf("expect %q, got %q", e, a)
			}
		})
	}
}

func TestResolutionDeclarationBlock(t *testing.T) {
	resolution := &Resolution{
		Namespaces: Namespaces{
			"stix": "http://stix.mitre.org/stix-1",
		},
		SchemaLocations: SchemaLocations{
			"http://stix.mitre.org/stix-1": "http://stix.mitre.org/XMLSchema/core/1.1.1/stix_core.xsd",
		},
	}

	expect := `xmlns:stix="http://stix.mitre.org/stix-1"` + "\n\t" +
		"xsi:schemaLocation=\"\n\t" +
		"http://stix.mitre.org/stix-1 http://stix.mitre.org/XMLSchema/core/1.1.1/stix_core.xsd\""

	if e, a := expect, resolution.DeclarationBlock(); e != a {
		t.Errorf("expect %q, got %q", e, a)
	}

	empty := &Resolution{}
	if e, a := "", empty.DeclarationBlock(); e != a {
		t.Errorf("expect empty block, got %q", a)
	}

	nsOnly := &Resolution{Namespaces: Namespaces{"stix": "http://stix.mitre.org/stix-1"}}
	if e, a := `xmlns:stix="http://stix.mitre.org/stix-1"`, nsOnly.DeclarationBlock(); e != a {
		t.Errorf("expect %q, got %q", e, a)
	}
}
