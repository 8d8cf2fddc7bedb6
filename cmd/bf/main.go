package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/reusee/bf/batches"
	"github.com/reusee/bf/bfconfigs"
	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/configs"
	"github.com/reusee/bf/debugs"
	"github.com/reusee/bf/execs"
	"github.com/reusee/bf/logs"
	"github.com/reusee/bf/modes"
	"github.com/reusee/bf/programs"
	"github.com/reusee/bf/sources"
	"github.com/reusee/dscope"
)

var (
	programFlag = cmds.Var[string]("-program", "program location: file path, http(s) URL or - for stdin")
	inputFlag   = cmds.Var[string]("-input", "read input from file instead of stdin")
	outputFlag  = cmds.Var[string]("-output", "write output to file instead of stdout")
	batchFlag   = cmds.Switch("-batch", "run the program once per JSON line of input")
	tapFlag     = cmds.Switch("-tap", "inspect the machine in a starlark REPL when a run aborts")
)

func main() {
	cmds.Execute(os.Args[1:])
	os.Exit(run())
}

func run() (code int) {
	defer he(os.Stderr, &code)

	ctx := context.Background()

	if *programFlag == "" {
		ce(fmt.Errorf("%w: -program is required", ErrUsage))
	}
	inputIsStdin := *inputFlag == "" || isStdin(*inputFlag, os.Stdin)
	if inputIsStdin && isStdin(*programFlag, os.Stdin) {
		// both would drain stdin
		ce(fmt.Errorf("%w: program %s is standard input, set -input to another file", ErrUsage, *programFlag))
	}

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		loader configs.Loader,
		getConfig bfconfigs.GetExecConfig,
		jobs bfconfigs.Jobs,
		load sources.Load,
		newSpan logs.NewSpan,
		tap debugs.Tap,
	) {
		ce(loader.Check())
		config, err := getConfig()
		ce(err)

		source, err := load(ctx, *programFlag)
		ce(err)
		program, err := programs.Parse(string(source))
		ce(err)
		logger.InfoContext(ctx, "program parsed",
			"instructions", program.Len(),
			"config", fmt.Sprintf("%+v", config),
		)

		in := io.Reader(os.Stdin)
		if *inputFlag != "" {
			f, err := os.Open(*inputFlag)
			ce(err)
			defer f.Close()
			in = f
		}
		out := io.Writer(os.Stdout)
		var outFile *os.File
		if *outputFlag != "" {
			outFile, err = os.Create(*outputFlag)
			ce(err)
			defer outFile.Close()
			out = outFile
		}

		if *batchFlag {
			ctx, stop := interruptContext(ctx)
			defer stop()
			ctx, _ = newSpan(ctx, "")
			ce(runBatch(ctx, batches.Runner{
				Program: program,
				Config:  config,
				Jobs:    int(jobs),
				Logger:  logger,
			}, in, out))
		} else {
			res, err := runSingle(program, config, in, out)
			ce(err)
			if res.Status == execs.StatusAborted {
				reportAbort(os.Stderr, res)
				if *tapFlag {
					globals := debugs.ExecutionGlobals(res)
					ce(debugs.Dump(os.Stderr, globals))
					tap(ctx, "abort", globals)
				}
				code = 1
			}
		}

		if outFile != nil {
			ce(outFile.Close())
		}
	})

	return
}
