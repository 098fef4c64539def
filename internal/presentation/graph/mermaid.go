// Package graph draws wizard definitions as Mermaid flowcharts.
package graph

import (
	"fmt"
	"strings"

	"github.com/mughesh03/aromatone/pkg/wizard"
)

// Overlay marks the position of a session on the chart. Step is 1-based;
// steps before it are drawn as visited.
type Overlay struct {
	Step      int
	Completed bool
}

// GenerateMermaid renders the step sequence of def. Each forward edge is
// labelled with the rules that gate it; the last step leads to the
// completion node.
func GenerateMermaid(def *wizard.Definition, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	ids := make([]string, len(def.Steps))
	for i, step := range def.Steps {
		ids[i] = sanitizeMermaidID(step.ID)
		title := step.Title
		if title == "" {
			title = step.ID
		}
		opener, closer := "[", "]"
		if i == 0 {
			opener, closer = "([", "])"
		}
		fmt.Fprintf(&sb, "    %s%s\"%d. %s\"%s\n", ids[i], opener, i+1, escape(title), closer)
	}

	done := "done"
	label := "Complete"
	if def.Redirect != "" {
		label = "Complete → " + def.Redirect
	}
	fmt.Fprintf(&sb, "    %s((\"%s\"))\n", done, escape(label))

	for i, step := range def.Steps {
		to := done
		if i+1 < len(ids) {
			to = ids[i+1]
		}
		if len(step.Rules) == 0 {
			fmt.Fprintf(&sb, "    %s --> %s\n", ids[i], to)
		} else {
			rules := make([]string, len(step.Rules))
			for j, r := range step.Rules {
				rules[j] = escape(r.Describe())
			}
			fmt.Fprintf(&sb, "    %s -- \"%s\" --> %s\n", ids[i], strings.Join(rules, "<br/>"), to)
		}
		if i > 0 {
			fmt.Fprintf(&sb, "    %s -. back .-> %s\n", ids[i], ids[i-1])
		}
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Black text keeps the labels readable on light fills in both themes.
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
		for i, id := range ids {
			step := i + 1
			switch {
			case overlay.Completed || step < overlay.Step:
				fmt.Fprintf(&sb, "    class %s visited;\n", id)
			case step == overlay.Step:
				fmt.Fprintf(&sb, "    class %s current;\n", id)
			}
		}
		if overlay.Completed {
			fmt.Fprintf(&sb, "    class %s current;\n", done)
		}
	}

	return sb.String()
}

func escape(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	if s == "done" {
		s = "step_done"
	}
	return s
}
