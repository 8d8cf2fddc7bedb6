package bfconfigs

import (
	"fmt"

	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/configs"
	"github.com/reusee/bf/execs"
	"github.com/reusee/bf/vars"
)

var (
	memoryFlag = cmds.Var[int]("-memory", "number of tape cells")
	limitFlag  = cmds.Var[*int]("-limit", "abort after this many operations, 0 for no limit")
	eofFlag    = cmds.Var[string]("-eof", "cell value on input exhaustion: zero, unchanged or max")
	jobsFlag   = cmds.Var[int]("-jobs", "batch records executed concurrently")
)

type MemorySize int

var _ configs.Configurable = MemorySize(0)

func (MemorySize) ConfigExpr() string {
	return "MemorySize"
}

func (Module) MemorySize(
	loader configs.Loader,
) MemorySize {
	return MemorySize(vars.FirstNonZero(
		*memoryFlag,
		configs.First[int](loader, "memory_size"),
		execs.DefaultConfig().MemorySize,
	))
}

// OperationLimit is zero when unbounded. A -limit word, including -limit 0,
// overrides config files.
type OperationLimit int

var _ configs.Configurable = OperationLimit(0)

func (OperationLimit) ConfigExpr() string {
	return "OperationLimit"
}

func (Module) OperationLimit(
	loader configs.Loader,
) OperationLimit {
	if *limitFlag != nil {
		return OperationLimit(**limitFlag)
	}
	return OperationLimit(configs.First[int](loader, "operation_limit"))
}

// EOFPolicyName is the unparsed policy name, empty for the default.
type EOFPolicyName string

var _ configs.Configurable = EOFPolicyName("")

func (EOFPolicyName) ConfigExpr() string {
	return "EOFPolicyName"
}

func (Module) EOFPolicyName(
	loader configs.Loader,
) EOFPolicyName {
	return EOFPolicyName(vars.FirstNonZero(
		*eofFlag,
		configs.First[string](loader, "eof_policy"),
	))
}

type Jobs int

var _ configs.Configurable = Jobs(0)

func (Jobs) ConfigExpr() string {
	return "Jobs"
}

func (Module) Jobs(
	loader configs.Loader,
) Jobs {
	return Jobs(vars.FirstNonZero(
		*jobsFlag,
		configs.First[int](loader, "jobs"),
		1,
	))
}

// GetExecConfig assembles and validates the execution config.
type GetExecConfig func() (execs.Config, error)

func (Module) GetExecConfig(
	memorySize MemorySize,
	limit OperationLimit,
	eofName EOFPolicyName,
) GetExecConfig {
	return func() (config execs.Config, err error) {
		config = execs.DefaultConfig()
		config.MemorySize = int(memorySize)
		config.OperationLimit = int(limit)
		if eofName != "" {
			config.EOFPolicy, err = execs.ParseEOFPolicy(string(eofName))
			if err != nil {
				return config, err
			}
		}
		if err := config.Validate(); err != nil {
			return config, fmt.Errorf("bad config: %w", err)
		}
		return config, nil
	}
}
