package debugs

import (
	"context"
	"io"
	"maps"
	"slices"

	"github.com/reusee/bf/execs"
	"github.com/reusee/bf/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens an interactive starlark session with globals bound. It returns
// when the session reads end of input.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		names := slices.Sorted(maps.Keys(globals))
		logger.InfoContext(ctx, "tap: "+what,
			"globals", names,
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread := &starlark.Thread{
			Name: what,
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, starlarkGlobals(globals))
	}
}

func starlarkGlobals(globals map[string]any) starlark.StringDict {
	ret := make(starlark.StringDict, len(globals))
	for name, value := range globals {
		ret[name] = toStarlarkValue(value)
	}
	return ret
}

// ExecutionGlobals describes a stopped execution for a tap session.
func ExecutionGlobals(res execs.Result) map[string]any {
	globals := map[string]any{
		"status":     res.Status,
		"pc":         res.PC,
		"operations": res.Operations,
		"error":      res.Err,
	}
	if res.Tape != nil {
		var cells []int
		for _, c := range res.Tape.Trimmed() {
			cells = append(cells, int(c))
		}
		globals["tape"] = cells
		globals["pointer"] = res.Tape.Pointer()
		globals["cell"] = res.Tape.Read()
	}
	return globals
}

// Dump writes the globals as starlark literals, for non-interactive runs.
func Dump(w io.Writer, globals map[string]any) error {
	values := starlarkGlobals(globals)
	for _, name := range slices.Sorted(maps.Keys(globals)) {
		if _, err := io.WriteString(w, name+" = "+values[name].String()+"\n"); err != nil {
			return err
		}
	}
	return nil
}
