// catalog-validator checks a template definitions file before it ships:
// structural rules per template, duplicate ids and per-module coverage.
//
// Usage: catalog-validator <definitions.json>
package main

import (
	"fmt"
	"os"

	"carousel-workers/pkg/catalog"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <definitions.json>\n", os.Args[0])
		os.Exit(2)
	}
	path := os.Args[1]

	cat, err := catalog.LoadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "INVALID: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("OK: %d templates in %s\n", cat.Len(), path)

	warnings := coverageWarnings(cat)
	for _, w := range warnings {
		fmt.Printf("WARNING: %s\n", w)
	}
	if len(warnings) > 0 {
		os.Exit(0)
	}
	fmt.Println("coverage: every module type and value subtype has candidates")
}

// coverageWarnings flags module/subtype combinations with no templates. Such
// a catalog is loadable, but any slide of that category will fail selection.
func coverageWarnings(cat *catalog.Catalog) []string {
	var warnings []string
	for _, mt := range []catalog.ModuleType{
		catalog.ModuleHook, catalog.ModuleTransition, catalog.ModuleValue, catalog.ModuleCTA,
	} {
		if len(cat.ByModule(mt, "")) == 0 {
			warnings = append(warnings, fmt.Sprintf("no templates for module type %q", mt))
		}
	}
	for _, vs := range []catalog.ValueSubtype{
		catalog.SubtypeData, catalog.SubtypeInsight, catalog.SubtypeSolution, catalog.SubtypeExample,
	} {
		if len(cat.ByModule(catalog.ModuleValue, vs)) == 0 {
			warnings = append(warnings, fmt.Sprintf("no value templates for subtype %q", vs))
		}
	}
	return warnings
}
