package bbfile

import (
	"fmt"
	"strings"

	"github.com/ha1tch/breadboard/pkg/breadboard"
)

// GenerateDOT converts a breadboard to Graphviz DOT format. Places become
// record nodes listing their affordances; each connection becomes an edge
// labelled with the affordance name. Connections whose target does not
// exist point at a dashed "unresolved" node.
func GenerateDOT(b *breadboard.Breadboard, title string) string {
	var sb strings.Builder

	sb.WriteString("digraph Breadboard {\n")
	sb.WriteString("    rankdir=LR;\n")
	sb.WriteString("    node [fontname=\"Helvetica\", fontsize=11, shape=box];\n")
	sb.WriteString("    edge [fontname=\"Helvetica\", fontsize=10];\n")
	sb.WriteString("\n")

	if title == "" {
		title = b.Name
	}
	if title != "" {
		sb.WriteString("    labelloc=\"t\";\n")
		sb.WriteString(fmt.Sprintf("    label=\"%s\";\n", escapeDOT(title)))
		sb.WriteString("\n")
	}

	// Places, grouped into clusters when a group is set
	groups := make(map[string][]breadboard.Place)
	var groupOrder []string
	for _, p := range b.Places {
		g := p.GroupName()
		if g == "" {
			writePlaceNode(&sb, p, "    ")
			continue
		}
		if _, ok := groups[g]; !ok {
			groupOrder = append(groupOrder, g)
		}
		groups[g] = append(groups[g], p)
	}
	for i, g := range groupOrder {
		sb.WriteString(fmt.Sprintf("    subgraph cluster_%d {\n", i))
		sb.WriteString(fmt.Sprintf("        label=\"%s\";\n", escapeDOT(g)))
		for _, p := range groups[g] {
			writePlaceNode(&sb, p, "        ")
		}
		sb.WriteString("    }\n")
	}
	sb.WriteString("\n")

	unresolved := false
	for _, p := range b.Places {
		for _, a := range p.Affordances {
			if a.ConnectsTo == nil {
				continue
			}
			target := placeNodeID(*a.ConnectsTo)
			if b.FindPlace(*a.ConnectsTo) == nil {
				target = "__unresolved"
				unresolved = true
			}
			sb.WriteString(fmt.Sprintf("    %s -> %s [label=\"%s\"];\n",
				placeNodeID(p.ID), target, escapeDOT(a.Name)))
		}
	}

	if unresolved {
		sb.WriteString("    __unresolved [label=\"[Unknown]\", style=dashed];\n")
	}

	sb.WriteString("}\n")

	return sb.String()
}

func writePlaceNode(sb *strings.Builder, p breadboard.Place, indent string) {
	label := escapeDOT(p.Name)
	if len(p.Affordances) > 0 {
		names := make([]string, len(p.Affordances))
		for i, a := range p.Affordances {
			names[i] = escapeDOT(a.Name)
		}
		label = fmt.Sprintf("%s\\n\\n%s", label, strings.Join(names, "\\l")+"\\l")
	}
	sb.WriteString(fmt.Sprintf("%s%s [label=\"%s\"];\n", indent, placeNodeID(p.ID), label))
}

func placeNodeID(id breadboard.ID) string {
	return fmt.Sprintf("p%d", id)
}

func escapeDOT(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
