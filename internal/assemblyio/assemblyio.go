// Package assemblyio loads a catalog.Assembly from a YAML or JSON document
// on disk, and normalizes the comma-separated item lists the CLI accepts
// on the command line into the split, trimmed, non-empty sequences the
// engine expects.
package assemblyio

import (
	"fmt"
	"os"
	"strings"

	"sigs.k8s.io/yaml"

	"github.com/tchupp/weave/engine/catalog"
)

// document is the on-disk shape of an assembly file. sigs.k8s.io/yaml
// decodes YAML by converting it to JSON first, so a document written as
// JSON is accepted unchanged and a document written as YAML need only be
// valid YAML — either way this one set of struct tags governs both.
type document struct {
	Families []struct {
		Family string   `json:"family"`
		Items  []string `json:"items"`
	} `json:"families"`
	Exclusions []struct {
		Conditions []string `json:"conditions"`
		Exclusions []string `json:"exclusions"`
	} `json:"exclusions"`
	Inclusions []struct {
		Conditions []string `json:"conditions"`
		Inclusions []string `json:"inclusions"`
	} `json:"inclusions"`
}

// Load reads the assembly document at path (YAML or JSON) and decodes it
// into a catalog.Assembly.
func Load(path string) (catalog.Assembly, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return catalog.Assembly{}, fmt.Errorf("reading assembly %s: %w", path, err)
	}

	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return catalog.Assembly{}, fmt.Errorf("parsing assembly %s: %w", path, err)
	}

	assembly := catalog.Assembly{
		Families:   make([]catalog.FamilySpec, len(doc.Families)),
		Exclusions: make([]catalog.ExclusionRule, len(doc.Exclusions)),
		Inclusions: make([]catalog.InclusionRule, len(doc.Inclusions)),
	}
	for i, f := range doc.Families {
		assembly.Families[i] = catalog.FamilySpec{Family: f.Family, Items: f.Items}
	}
	for i, e := range doc.Exclusions {
		assembly.Exclusions[i] = catalog.ExclusionRule{Conditions: e.Conditions, Exclusions: e.Exclusions}
	}
	for i, n := range doc.Inclusions {
		assembly.Inclusions[i] = catalog.InclusionRule{Conditions: n.Conditions, Inclusions: n.Inclusions}
	}
	return assembly, nil
}

// Builder compiles the loaded assembly into a CatalogBuilder, ready for
// Build. Kept separate from Load so CLI commands can inspect or extend
// the assembly before compiling it.
func Builder(assembly catalog.Assembly) *catalog.CatalogBuilder {
	b := catalog.NewCatalogBuilder()
	for _, f := range assembly.Families {
		b.AddItems(f.Family, f.Items...)
	}
	for _, e := range assembly.Exclusions {
		b.AddExclusionRule(e.Conditions, e.Exclusions)
	}
	for _, n := range assembly.Inclusions {
		b.AddInclusionRule(n.Conditions, n.Inclusions)
	}
	return b
}

// SplitItems normalizes a comma-separated command-line argument into the
// split, trimmed, non-empty item sequence the engine expects. An empty
// string normalizes to an empty (nil) sequence rather than a sequence
// containing one empty token.
func SplitItems(arg string) []catalog.Item {
	if strings.TrimSpace(arg) == "" {
		return nil
	}
	parts := strings.Split(arg, ",")
	items := make([]catalog.Item, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			items = append(items, p)
		}
	}
	return items
}
