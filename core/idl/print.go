package idl

import (
	"fmt"
	"sort"
	"strings"
)

// String renders the document in SDL notation: one definition per block,
// in document order.
func (d *Document) String() string {
	var b strings.Builder
	for i, def := range d.Definitions {
		if i > 0 {
			b.WriteString("\n")
		}
		printDefinition(&b, def)
	}
	return b.String()
}

func printDefinition(b *strings.Builder, def Definition) {
	switch v := def.(type) {
	case *ObjectTypeDefinition:
		printDescription(b, v.Description, "")
		fmt.Fprintf(b, "type %s%s {\n", v.Name, printDirectives(v.Directives))
		for _, f := range v.Fields {
			printDescription(b, f.Description, "  ")
			fmt.Fprintf(b, "  %s: %s%s\n", f.Name, f.Type, printDirectives(f.Directives))
		}
		b.WriteString("}\n")
	case *InputObjectTypeDefinition:
		printDescription(b, v.Description, "")
		fmt.Fprintf(b, "input %s {\n", v.Name)
		for _, f := range v.Fields {
			fmt.Fprintf(b, "  %s: %s\n", f.Name, f.Type)
		}
		b.WriteString("}\n")
	case *ScalarTypeDefinition:
		printDescription(b, v.Description, "")
		fmt.Fprintf(b, "scalar %s\n", v.Name)
	case *EnumTypeDefinition:
		printDescription(b, v.Description, "")
		fmt.Fprintf(b, "enum %s {\n", v.Name)
		for _, val := range v.Values {
			fmt.Fprintf(b, "  %s\n", val)
		}
		b.WriteString("}\n")
	}
}

func printDirectives(dirs []Directive) string {
	var b strings.Builder
	for _, dir := range dirs {
		fmt.Fprintf(&b, " @%s", dir.Name)
		if len(dir.Arguments) > 0 {
			keys := make([]string, 0, len(dir.Arguments))
			for k := range dir.Arguments {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			parts := make([]string, len(keys))
			for i, k := range keys {
				parts[i] = fmt.Sprintf("%s: %q", k, dir.Arguments[k])
			}
			fmt.Fprintf(&b, "(%s)", strings.Join(parts, ", "))
		}
	}
	return b.String()
}

func printDescription(b *strings.Builder, desc string, indent string) {
	if desc == "" {
		return
	}
	fmt.Fprintf(b, "%s\"\"\"%s\"\"\"\n", indent, desc)
}
