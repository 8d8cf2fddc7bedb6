package cmds

import (
	"fmt"
	"os"
)

var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

// Execute runs args against the global executor. Bad words print the usage and
// exit with status 2.
func Execute(args []string) {
	if err := GlobalExecutor.Execute(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		GlobalExecutor.PrintUsage()
		os.Exit(2)
	}
}
