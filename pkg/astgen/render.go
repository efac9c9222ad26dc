package astgen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"

	"github.com/lpahlavi/jlox/pkg/grammar"
)

func (g *generator) renderFamily(fam grammar.Family) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s\n\n", Header)
	fmt.Fprintf(&buf, "package %s\n\n", g.table.Package)
	fmt.Fprintf(&buf, "import (\n")
	fmt.Fprintf(&buf, "\t%q\n\n", "fmt")
	fmt.Fprintf(&buf, "\t%q\n", g.table.TokenImport)
	fmt.Fprintf(&buf, ")\n\n")

	g.renderInterface(&buf, fam)
	for _, variant := range fam.Variants {
		g.renderVariant(&buf, fam, variant)
	}
	g.renderVisitor(&buf, fam)
	g.renderAccept(&buf, fam)

	return formatSource(buf.Bytes())
}

func (g *generator) renderInterface(buf *bytes.Buffer, fam grammar.Family) {
	fmt.Fprintf(buf, "// %s is implemented by every %s node.\n", fam.Name, fam.Name)
	fmt.Fprintf(buf, "type %s interface {\n", fam.Name)
	fmt.Fprintf(buf, "\tNode\n")
	fmt.Fprintf(buf, "\t%s()\n", markerName(fam.Name))
	fmt.Fprintf(buf, "}\n\n")
}

func (g *generator) renderVariant(buf *bytes.Buffer, fam grammar.Family, variant grammar.Variant) {
	name := structName(fam.Name, variant.Name)

	fmt.Fprintf(buf, "// %s is generated from the rule %q.\n", name, variant.String())
	fmt.Fprintf(buf, "type %s struct {\n", name)
	fmt.Fprintf(buf, "\tnodeImpl\n")
	if len(variant.Fields) > 0 {
		fmt.Fprintf(buf, "\n")
	}
	for _, field := range variant.Fields {
		fmt.Fprintf(buf, "\t%s %s\n", exportIdent(field.Name), g.goType(field.Type))
	}
	fmt.Fprintf(buf, "}\n\n")

	params := make([]string, 0, len(variant.Fields)+1)
	params = append(params, "pos "+g.tokenPkg+".Position")
	inits := make([]string, 0, len(variant.Fields)+1)
	inits = append(inits, "nodeImpl: nodeImpl{pos: pos}")
	for _, field := range variant.Fields {
		param := paramIdent(field.Name)
		params = append(params, param+" "+g.goType(field.Type))
		inits = append(inits, exportIdent(field.Name)+": "+param)
	}
	fmt.Fprintf(buf, "// New%s builds a node positioned at pos.\n", name)
	fmt.Fprintf(buf, "func New%s(%s) *%s {\n", name, strings.Join(params, ", "), name)
	fmt.Fprintf(buf, "\treturn &%s{%s}\n", name, strings.Join(inits, ", "))
	fmt.Fprintf(buf, "}\n\n")

	fmt.Fprintf(buf, "func (*%s) %s() {}\n\n", name, markerName(fam.Name))
}

func (g *generator) renderVisitor(buf *bytes.Buffer, fam grammar.Family) {
	fmt.Fprintf(buf, "// %sVisitor is implemented by passes over %s nodes.\n", fam.Name, fam.Name)
	fmt.Fprintf(buf, "type %sVisitor[R any] interface {\n", fam.Name)
	for _, variant := range fam.Variants {
		name := structName(fam.Name, variant.Name)
		fmt.Fprintf(buf, "\tVisit%s(node *%s) (R, error)\n", name, name)
	}
	fmt.Fprintf(buf, "}\n\n")
}

func (g *generator) renderAccept(buf *bytes.Buffer, fam grammar.Family) {
	fmt.Fprintf(buf, "// Accept%s dispatches node to the matching method of v.\n", fam.Name)
	fmt.Fprintf(buf, "func Accept%s[R any](node %s, v %sVisitor[R]) (R, error) {\n", fam.Name, fam.Name, fam.Name)
	fmt.Fprintf(buf, "\tswitch n := node.(type) {\n")
	for _, variant := range fam.Variants {
		name := structName(fam.Name, variant.Name)
		fmt.Fprintf(buf, "\tcase *%s:\n", name)
		fmt.Fprintf(buf, "\t\treturn v.Visit%s(n)\n", name)
	}
	fmt.Fprintf(buf, "\tdefault:\n")
	fmt.Fprintf(buf, "\t\tvar zero R\n")
	fmt.Fprintf(buf, "\t\treturn zero, fmt.Errorf(\"%s: unknown %s node %%T\", node)\n", g.table.Package, fam.Name)
	fmt.Fprintf(buf, "\t}\n")
	fmt.Fprintf(buf, "}\n")
}

func formatSource(src []byte) ([]byte, error) {
	formatted, err := format.Source(src)
	if err != nil {
		return src, err
	}
	return formatted, nil
}
