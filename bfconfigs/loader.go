package bfconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/configs"
	"github.com/reusee/bf/logs"
)

//go:embed schema.cue
var schema string

var configFlag = cmds.Collect[string]("-config", "read config from a cue file, may be repeated")

// ConfigFiles lists the config files in precedence order.
type ConfigFiles []string

var filenames = []string{
	"bf.cue",
	".bf.cue",
}

func (Module) ConfigFiles() (ret ConfigFiles) {
	// explicit files first, missing ones are reported by the loader
	ret = append(ret, *configFlag...)

	var dirs []string
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, "/etc")

	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				ret = append(ret, path)
			}
		}
	}
	return
}

func (Module) ConfigsLoader(
	files ConfigFiles,
	logger logs.Logger,
) configs.Loader {
	if len(files) > 0 {
		logger.Info("config file",
			"paths", []string(files),
		)
	}
	return configs.NewLoader(files, schema)
}
