package container

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// GraphInfo is a snapshot of every binding, sorted by name.
type GraphInfo struct {
	Bindings []BindingInfo `json:"bindings"`
}

func (c *Container) Graph() GraphInfo {
	c.mu.Lock()
	defer c.mu.Unlock()

	names := c.names()
	info := GraphInfo{Bindings: make([]BindingInfo, 0, len(names))}
	for _, name := range names {
		info.Bindings = append(info.Bindings, c.describe(c.bindings[name]))
	}
	return info
}

func (c *Container) PrintGraph() {
	c.FprintGraph(os.Stdout)
}

// FprintGraph writes one line per binding: a filled dot when an instance is
// held, then the name and the bound names it is wired to.
func (c *Container) FprintGraph(w io.Writer) {
	info := c.Graph()

	if len(info.Bindings) == 0 {
		_, _ = fmt.Fprintln(w, "(empty container)")
		return
	}

	for _, b := range info.Bindings {
		status := "○"
		if b.Cached {
			status = "●"
		}

		if len(b.Wiring) == 0 {
			_, _ = fmt.Fprintf(w, "%s %s\n", status, b.Name)
			continue
		}

		deps := make([]string, len(b.Wiring))
		for i, wire := range b.Wiring {
			deps[i] = wire.Name
		}
		_, _ = fmt.Fprintf(w, "%s %s ← %s\n", status, b.Name, strings.Join(deps, ", "))
	}
}

func (c *Container) SprintGraph() string {
	var sb strings.Builder
	c.FprintGraph(&sb)
	return sb.String()
}

// FprintGraphDOT writes the graph in Graphviz format. Inherited edges are
// dashed and labelled with the injection key.
func (c *Container) FprintGraphDOT(w io.Writer) {
	info := c.Graph()

	_, _ = fmt.Fprintln(w, "digraph bindings {")
	_, _ = fmt.Fprintln(w, "  rankdir=LR;")
	_, _ = fmt.Fprintln(w, "  node [shape=box];")

	for _, b := range info.Bindings {
		style := ""
		if b.Cached {
			style = ", style=filled, fillcolor=lightblue"
		}
		_, _ = fmt.Fprintf(w, "  %q [label=%q%s];\n", b.Name, b.Name, style)
	}

	_, _ = fmt.Fprintln(w)

	for _, b := range info.Bindings {
		for _, wire := range b.Wiring {
			if wire.Via != "" {
				_, _ = fmt.Fprintf(w, "  %q -> %q [label=%q, style=dashed];\n", b.Name, wire.Name, wire.Key)
				continue
			}
			_, _ = fmt.Fprintf(w, "  %q -> %q [label=%q];\n", b.Name, wire.Name, wire.Key)
		}
	}

	_, _ = fmt.Fprintln(w, "}")
}

func (c *Container) SprintGraphDOT() string {
	var sb strings.Builder
	c.FprintGraphDOT(&sb)
	return sb.String()
}
