package astgen

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lpahlavi/jlox/pkg/grammar"
)

// GeneratedNames lists the package-level identifiers Generate declares for
// table, in sorted order.
func GeneratedNames(table grammar.Table) []string {
	var names []string
	for _, fam := range table.Families {
		names = append(names, fam.Name, fam.Name+"Visitor", "Accept"+fam.Name)
		for _, variant := range fam.Variants {
			name := structName(fam.Name, variant.Name)
			names = append(names, name, "New"+name)
		}
	}
	sort.Strings(names)
	return names
}

// DeclaredNames returns the package-level identifiers declared in the
// hand-written sources of dir. Generated and test files are skipped; a
// missing directory declares nothing.
func DeclaredNames(dir string) ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.go"))
	if err != nil {
		return nil, fmt.Errorf("astgen: list %s: %w", dir, err)
	}
	fset := token.NewFileSet()
	var names []string
	for _, path := range paths {
		base := filepath.Base(path)
		if strings.HasSuffix(base, "_gen.go") || strings.HasSuffix(base, "_test.go") {
			continue
		}
		file, err := parser.ParseFile(fset, path, nil, parser.SkipObjectResolution)
		if err != nil {
			return nil, fmt.Errorf("astgen: parse %s: %w", path, err)
		}
		names = append(names, topLevelNames(file)...)
	}
	sort.Strings(names)
	return names, nil
}

func topLevelNames(file *ast.File) []string {
	var names []string
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			if d.Recv == nil {
				names = append(names, d.Name.Name)
			}
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				switch s := spec.(type) {
				case *ast.TypeSpec:
					names = append(names, s.Name.Name)
				case *ast.ValueSpec:
					for _, ident := range s.Names {
						names = append(names, ident.Name)
					}
				}
			}
		}
	}
	return names
}

func checkCollisions(table grammar.Table, reserved []string) error {
	if len(reserved) == 0 {
		return nil
	}
	taken := make(map[string]bool, len(reserved))
	for _, name := range reserved {
		taken[name] = true
	}
	var errs []error
	for _, name := range GeneratedNames(table) {
		if taken[name] {
			errs = append(errs, fmt.Errorf("generated %s collides with a hand-written declaration", name))
		}
	}
	return errors.Join(errs...)
}
