package debugs

import (
	"github.com/reusee/bf/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
