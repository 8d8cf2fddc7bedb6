package cmds

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	p.WriteUsage(p.Output)
}

func (p *Executor) WriteUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	writeCommands(w, p.commands, 1)
}

func writeCommands(w io.Writer, commands map[string]*Command, depth int) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)

	indent := strings.Repeat("  ", depth)
	for _, name := range names {
		command := commands[name]
		if command == nil || slices.Contains(command.Aliases, name) {
			continue
		}

		line := indent + name
		if len(command.Aliases) > 0 {
			line += " (" + strings.Join(command.Aliases, ", ") + ")"
		}
		if command.Description != "" {
			line += "\t" + command.Description
		}
		fmt.Fprintln(w, line)

		if len(command.Subs) > 0 {
			writeCommands(w, command.Subs, depth+1)
		}
	}
}
