// Package astgen renders Go node types from a grammar table.
package astgen

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lpahlavi/jlox/pkg/grammar"
)

// Header starts every generated file.
const Header = "// Code generated by genast. DO NOT EDIT."

// Generate validates the table and renders one file per family. Output is
// deterministic: the same table always yields byte-identical files.
// reserved names identifiers already declared in the target package; a
// generated declaration with one of those names is an error.
func Generate(table grammar.Table, reserved ...string) (map[string][]byte, error) {
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("astgen: %w", err)
	}
	if err := checkCollisions(table, reserved); err != nil {
		return nil, fmt.Errorf("astgen: %w", err)
	}
	gen := newGenerator(table)
	files := make(map[string][]byte, len(table.Families))
	for _, fam := range table.Families {
		src, err := gen.renderFamily(fam)
		if err != nil {
			return nil, fmt.Errorf("astgen: render %s: %w", fam.Name, err)
		}
		files[FileName(fam.Name)] = src
	}
	return files, nil
}

// FileName is the generated file name for a family.
func FileName(family string) string {
	return strings.ToLower(family) + "_gen.go"
}

// SortedNames returns the file names of files in lexical order.
func SortedNames(files map[string][]byte) []string {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type generator struct {
	table    grammar.Table
	tokenPkg string
}

func newGenerator(table grammar.Table) *generator {
	tokenPkg := table.TokenImport
	if idx := strings.LastIndex(tokenPkg, "/"); idx >= 0 {
		tokenPkg = tokenPkg[idx+1:]
	}
	return &generator{table: table, tokenPkg: tokenPkg}
}

func (g *generator) goType(typ string) string {
	if elem, ok := grammar.ListElem(typ); ok {
		return "[]" + g.goType(elem)
	}
	switch typ {
	case grammar.TypeToken:
		return g.tokenPkg + ".Token"
	case grammar.TypeObject:
		return "any"
	}
	if family, variant, ok := strings.Cut(typ, "."); ok {
		return "*" + structName(family, variant)
	}
	return typ
}

func structName(family, variant string) string {
	return exportIdent(variant) + exportIdent(family)
}

func markerName(family string) string {
	return unexportIdent(family) + "Node"
}
