// Package console prints container state for terminals.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/km-arc/jerkface/framework/container"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	gray   = color.New(color.FgHiBlack).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

// Graph writes one line per binding of c:
//
//	● dsn                value
//	○ users  UserRepo    singleton  ← db (via Service)
//
// A filled dot marks a binding holding an instance.
func Graph(w io.Writer, c *container.Container) {
	info := c.Graph()
	if len(info.Bindings) == 0 {
		_, _ = fmt.Fprintln(w, gray("(empty container)"))
		return
	}

	width := 0
	for _, b := range info.Bindings {
		width = max(width, len(b.Name))
	}

	for _, b := range info.Bindings {
		status := gray("○")
		if b.Cached {
			status = green("●")
		}

		name := bold(b.Name + strings.Repeat(" ", width-len(b.Name)))

		if b.Kind == container.KindValue {
			_, _ = fmt.Fprintf(w, "%s %s  %s\n", status, name, gray("value"))
			continue
		}

		line := fmt.Sprintf("%s %s  %s %s", status, name, cyan(b.Type), yellow(b.Lifetime))
		if len(b.Wiring) > 0 {
			line += "  ← " + wiring(b.Wiring)
		}
		_, _ = fmt.Fprintln(w, line)
	}
}

func wiring(wires []container.Wire) string {
	parts := make([]string, len(wires))
	for i, wire := range wires {
		parts[i] = wire.Name
		if wire.Key != wire.Name {
			parts[i] = wire.Key + "=" + wire.Name
		}
		if wire.Via != "" {
			parts[i] += gray(" (via " + wire.Via + ")")
		}
	}
	return strings.Join(parts, ", ")
}

// Extensions writes the extension store, one base per line.
func Extensions(w io.Writer, c *container.Container) {
	for _, ext := range c.Extensions() {
		deps := make([]string, len(ext.Dependencies))
		for i, d := range ext.Dependencies {
			deps[i] = d.Key + "=" + d.Name
		}
		_, _ = fmt.Fprintf(w, "%s ⇒ %s\n", cyan(ext.Base), strings.Join(deps, ", "))
	}
}
