package nets

import (
	"github.com/reusee/bf/logs"
	"github.com/reusee/dscope"
)

// Module provides the network stack used to fetch remote programs. A
// configs.Loader must be provided by the enclosing scope.
type Module struct {
	dscope.Module
	Logs logs.Module
}
