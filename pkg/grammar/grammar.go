// Package grammar describes the node hierarchy of the syntax tree as data.
//
// A Table is a list of families (Expr, Stmt); each family has variants and
// each variant has typed fields. The AST generator consumes a Table to emit
// the Go node types, so the table is the single source of truth for pkg/ast.
package grammar

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed lox.yml
var loxGrammar []byte

// Primitive field types.
const (
	TypeToken  = "Token"
	TypeObject = "Object"
)

// Table is a whole grammar.
type Table struct {
	Package     string   `yaml:"package"`
	TokenImport string   `yaml:"token_import"`
	Families    []Family `yaml:"families"`
}

// Family is a grammar rule: a named group of node variants.
type Family struct {
	Name     string    `yaml:"name"`
	Variants []Variant `yaml:"variants"`
}

// Variant is one concrete node type of a family.
type Variant struct {
	Name   string
	Fields []Field
}

// Field is a named, typed child of a variant.
type Field struct {
	Name string
	Type string
}

// UnmarshalYAML decodes the compact "Name : Type field, ..." rule form.
func (v *Variant) UnmarshalYAML(node *yaml.Node) error {
	var rule string
	if err := node.Decode(&rule); err != nil {
		return fmt.Errorf("line %d: variant must be a rule string: %w", node.Line, err)
	}
	parsed, err := ParseRule(rule)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*v = parsed
	return nil
}

// MarshalYAML renders the compact rule form.
func (v Variant) MarshalYAML() (any, error) {
	return v.String(), nil
}

func (v Variant) String() string {
	parts := make([]string, 0, len(v.Fields))
	for _, f := range v.Fields {
		parts = append(parts, f.Type+" "+f.Name)
	}
	return v.Name + " : " + strings.Join(parts, ", ")
}

// ParseRule parses "Binary : Expr left, Token operator, Expr right".
func ParseRule(rule string) (Variant, error) {
	name, rest, ok := strings.Cut(rule, ":")
	if !ok {
		return Variant{}, fmt.Errorf("rule %q: missing ':'", rule)
	}
	variant := Variant{Name: strings.TrimSpace(name)}
	if variant.Name == "" {
		return Variant{}, fmt.Errorf("rule %q: missing variant name", rule)
	}
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return variant, nil
	}
	for _, raw := range strings.Split(rest, ",") {
		words := strings.Fields(raw)
		if len(words) != 2 {
			return Variant{}, fmt.Errorf("rule %q: field %q must be \"Type name\"", rule, strings.TrimSpace(raw))
		}
		variant.Fields = append(variant.Fields, Field{Type: words[0], Name: words[1]})
	}
	return variant, nil
}

// Default returns the Lox grammar embedded in the binary.
func Default() (Table, error) {
	return Decode(loxGrammar)
}

// Load reads and validates a grammar file.
func Load(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("grammar: read %s: %w", path, err)
	}
	table, err := Decode(data)
	if err != nil {
		return Table{}, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// Decode parses and validates a YAML grammar.
func Decode(data []byte) (Table, error) {
	var table Table
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&table); err != nil {
		return Table{}, fmt.Errorf("grammar: parse: %w", err)
	}
	if err := table.Validate(); err != nil {
		return Table{}, err
	}
	return table, nil
}

// Family returns the named family.
func (t Table) Family(name string) (Family, bool) {
	for _, fam := range t.Families {
		if fam.Name == name {
			return fam, true
		}
	}
	return Family{}, false
}

// Variant returns the named variant of the family.
func (f Family) Variant(name string) (Variant, bool) {
	for _, v := range f.Variants {
		if v.Name == name {
			return v, true
		}
	}
	return Variant{}, false
}

// Validate checks the table invariants and reports every violation found.
func (t Table) Validate() error {
	var errs []error
	if t.Package == "" {
		errs = append(errs, errors.New("missing package"))
	}
	if t.TokenImport == "" {
		errs = append(errs, errors.New("missing token_import"))
	}
	if len(t.Families) == 0 {
		errs = append(errs, errors.New("no families"))
	}
	families := make(map[string]bool, len(t.Families))
	for _, fam := range t.Families {
		if !isIdent(fam.Name) {
			errs = append(errs, fmt.Errorf("family name %q is not an identifier", fam.Name))
		}
		if families[fam.Name] {
			errs = append(errs, fmt.Errorf("duplicate family %s", fam.Name))
		}
		families[fam.Name] = true
	}
	for _, fam := range t.Families {
		if len(fam.Variants) == 0 {
			errs = append(errs, fmt.Errorf("family %s has no variants", fam.Name))
		}
		variants := make(map[string]bool, len(fam.Variants))
		for _, v := range fam.Variants {
			if !isIdent(v.Name) {
				errs = append(errs, fmt.Errorf("%s: variant name %q is not an identifier", fam.Name, v.Name))
			}
			if variants[v.Name] {
				errs = append(errs, fmt.Errorf("%s: duplicate variant %s", fam.Name, v.Name))
			}
			variants[v.Name] = true
			fields := make(map[string]bool, len(v.Fields))
			for _, f := range v.Fields {
				if !isIdent(f.Name) {
					errs = append(errs, fmt.Errorf("%s.%s: field name %q is not an identifier", fam.Name, v.Name, f.Name))
				}
				if fields[f.Name] {
					errs = append(errs, fmt.Errorf("%s.%s: duplicate field %s", fam.Name, v.Name, f.Name))
				}
				fields[f.Name] = true
				if err := t.checkType(f.Type); err != nil {
					errs = append(errs, fmt.Errorf("%s.%s.%s: %w", fam.Name, v.Name, f.Name, err))
				}
			}
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("grammar: invalid table: %w", errors.Join(errs...))
	}
	return nil
}

func (t Table) checkType(typ string) error {
	if elem, ok := ListElem(typ); ok {
		return t.checkType(elem)
	}
	switch typ {
	case TypeToken, TypeObject:
		return nil
	}
	familyName, variantName, qualified := strings.Cut(typ, ".")
	fam, ok := t.Family(familyName)
	if !ok {
		return fmt.Errorf("unknown type %q", typ)
	}
	if qualified {
		if _, ok := fam.Variant(variantName); !ok {
			return fmt.Errorf("unknown variant %q", typ)
		}
	}
	return nil
}

// ListElem returns T for a "List<T>" type.
func ListElem(typ string) (string, bool) {
	if strings.HasPrefix(typ, "List<") && strings.HasSuffix(typ, ">") {
		return typ[len("List<") : len(typ)-1], true
	}
	return "", false
}

func isIdent(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
